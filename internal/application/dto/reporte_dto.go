package dto

import "time"

// EstadisticasResponse conteos por estado para el dashboard.
type EstadisticasResponse struct {
	TotalExpedientes int `json:"total_expedientes"`
	EnRegistro       int `json:"en_registro"`
	EnRevision       int `json:"en_revision"`
	Aprobados        int `json:"aprobados"`
	Rechazados       int `json:"rechazados"`
}

// ReporteRequest filtros del reporte; fechas obligatorias, estado opcional.
type ReporteRequest struct {
	FechaInicio string `query:"fecha_inicio"`
	FechaFin    string `query:"fecha_fin"`
	IDEstado    string `query:"id_estado"`
}

// FilaReporteResponse una fila del reporte de expedientes. La tabla del
// reporte usa los nombres cortos tecnico y coordinador, a diferencia del
// listado de expedientes.
type FilaReporteResponse struct {
	IDExpediente      string     `json:"id_expediente"`
	NumeroExpediente  string     `json:"numero_expediente"`
	Titulo            string     `json:"titulo"`
	FechaRegistro     time.Time  `json:"fecha_registro"`
	IDEstado          int        `json:"id_estado"`
	NombreEstado      string     `json:"nombre_estado"`
	TecnicoRegistra   string     `json:"tecnico"`
	CoordinadorRevisa *string    `json:"coordinador,omitempty"`
	FechaRevision     *time.Time `json:"fecha_revision,omitempty"`
	TotalIndicios     int        `json:"total_indicios"`
}
