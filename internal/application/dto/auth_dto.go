package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// UsuarioResponse representación pública de un usuario (nunca incluye el hash).
type UsuarioResponse struct {
	IDUsuario      string `json:"id_usuario"`
	Usuario        string `json:"usuario"`
	NombreCompleto string `json:"nombre_completo"`
	Correo         string `json:"correo"`
	NombreRol      string `json:"nombre_rol"`
}

// LoginResponse token más el usuario autenticado.
type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}
