package dto

// DataResponse envoltura estándar de respuestas exitosas: el frontend lee
// siempre response.data.data.
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// OK construye la envoltura de éxito.
func OK(data any) DataResponse {
	return DataResponse{Success: true, Data: data}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
