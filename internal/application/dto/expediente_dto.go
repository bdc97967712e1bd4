package dto

import "time"

// CrearExpedienteRequest alta de expediente (siempre inicia EN_REGISTRO).
type CrearExpedienteRequest struct {
	NumeroExpediente string `json:"numero_expediente"`
	Titulo           string `json:"titulo"`
	Descripcion      string `json:"descripcion"`
}

// RevisarRequest decisión del coordinador sobre un expediente en revisión.
type RevisarRequest struct {
	Accion        string `json:"accion"` // APROBAR | RECHAZAR
	Justificacion string `json:"justificacion"`
}

// FiltroExpedientesRequest filtros del listado; fechas en formato 2006-01-02.
type FiltroExpedientesRequest struct {
	IDEstado    string `query:"id_estado"`
	FechaInicio string `query:"fecha_inicio"`
	FechaFin    string `query:"fecha_fin"`
}

// ExpedienteResponse expediente con los campos derivados que consume el frontend.
type ExpedienteResponse struct {
	IDExpediente         string     `json:"id_expediente"`
	NumeroExpediente     string     `json:"numero_expediente"`
	Titulo               string     `json:"titulo"`
	Descripcion          string     `json:"descripcion"`
	IDEstado             int        `json:"id_estado"`
	NombreEstado         string     `json:"nombre_estado"`
	IDTecnicoRegistra    string     `json:"id_tecnico_registra"`
	TecnicoRegistra      string     `json:"tecnico_registra,omitempty"`
	TecnicoEmail         string     `json:"tecnico_email,omitempty"`
	CoordinadorRevisa    *string    `json:"coordinador_revisa,omitempty"`
	FechaRegistro        time.Time  `json:"fecha_registro"`
	FechaRevision        *time.Time `json:"fecha_revision,omitempty"`
	JustificacionRechazo *string    `json:"justificacion_rechazo,omitempty"`
	TotalIndicios        int        `json:"total_indicios"`
}

// EstadoResponse entrada del catálogo de estados.
type EstadoResponse struct {
	IDEstado     int    `json:"id_estado"`
	NombreEstado string `json:"nombre_estado"`
}
