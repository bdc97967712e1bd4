package repository

import (
	"context"
	"time"
)

// EstadisticasResult conteos por estado, proyección pura sobre expedientes.
type EstadisticasResult struct {
	Total      int
	EnRegistro int
	EnRevision int
	Aprobados  int
	Rechazados int
}

// FilaReporte una fila del reporte por rango de fechas, con el conteo de
// indicios ya unido.
type FilaReporte struct {
	IDExpediente      string
	NumeroExpediente  string
	Titulo            string
	FechaRegistro     time.Time
	IDEstado          int
	NombreEstado      string
	TecnicoRegistra   string
	CoordinadorRevisa *string
	FechaRevision     *time.Time
	TotalIndicios     int
}

// ReporteRepository consultas de solo lectura para estadísticas y reportes.
// Sin efectos; se recalculan en cada llamada.
type ReporteRepository interface {
	Estadisticas(ctx context.Context) (EstadisticasResult, error)
	// Reporte filtra por día calendario inclusivo sobre fecha_registro y
	// opcionalmente por estado.
	Reporte(ctx context.Context, desde, hasta time.Time, idEstado *int) ([]FilaReporte, error)
}
