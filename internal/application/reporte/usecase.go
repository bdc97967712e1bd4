package reporte

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/wilmarbg/dicri-api/internal/application/dto"
	"github.com/wilmarbg/dicri-api/internal/application/expediente"
	"github.com/wilmarbg/dicri-api/internal/domain"
	"github.com/wilmarbg/dicri-api/internal/domain/entity"
	"github.com/wilmarbg/dicri-api/internal/domain/repository"
)

// Periodo rango de fechas inclusivo del reporte, ya validado.
type Periodo struct {
	Desde time.Time
	Hasta time.Time
}

// ReportePDFGenerator renderiza el reporte como documento PDF.
type ReportePDFGenerator interface {
	GenerarReportePDF(ctx context.Context, periodo Periodo, filas []repository.FilaReporte) ([]byte, error)
}

// ReporteUseCase consultas de solo lectura: estadísticas del dashboard y
// reporte por rango de fechas. Proyecciones puras sobre expedientes, sin
// efectos y recalculadas en cada llamada.
type ReporteUseCase struct {
	reporteRepo repository.ReporteRepository
	pdfGen      ReportePDFGenerator
}

// NewReporteUseCase construye el caso de uso. pdfGen puede ser nil si no se
// expone la descarga en PDF.
func NewReporteUseCase(reporteRepo repository.ReporteRepository, pdfGen ReportePDFGenerator) *ReporteUseCase {
	return &ReporteUseCase{reporteRepo: reporteRepo, pdfGen: pdfGen}
}

// Estadisticas conteos por estado para el dashboard.
func (uc *ReporteUseCase) Estadisticas(ctx context.Context) (*dto.EstadisticasResponse, error) {
	res, err := uc.reporteRepo.Estadisticas(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.EstadisticasResponse{
		TotalExpedientes: res.Total,
		EnRegistro:       res.EnRegistro,
		EnRevision:       res.EnRevision,
		Aprobados:        res.Aprobados,
		Rechazados:       res.Rechazados,
	}, nil
}

// Reporte filas del reporte para el período indicado.
func (uc *ReporteUseCase) Reporte(ctx context.Context, in dto.ReporteRequest) ([]dto.FilaReporteResponse, error) {
	periodo, idEstado, err := validarFiltros(in)
	if err != nil {
		return nil, err
	}
	filas, err := uc.reporteRepo.Reporte(ctx, periodo.Desde, periodo.Hasta, idEstado)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FilaReporteResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.FilaReporteResponse{
			IDExpediente:      f.IDExpediente,
			NumeroExpediente:  f.NumeroExpediente,
			Titulo:            f.Titulo,
			FechaRegistro:     f.FechaRegistro,
			IDEstado:          f.IDEstado,
			NombreEstado:      f.NombreEstado,
			TecnicoRegistra:   f.TecnicoRegistra,
			CoordinadorRevisa: f.CoordinadorRevisa,
			FechaRevision:     f.FechaRevision,
			TotalIndicios:     f.TotalIndicios,
		})
	}
	return out, nil
}

// ReportePDF renderiza el mismo reporte como PDF descargable.
func (uc *ReporteUseCase) ReportePDF(ctx context.Context, in dto.ReporteRequest) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, fmt.Errorf("%w: generación de PDF no configurada", domain.ErrValidacion)
	}
	periodo, idEstado, err := validarFiltros(in)
	if err != nil {
		return nil, err
	}
	filas, err := uc.reporteRepo.Reporte(ctx, periodo.Desde, periodo.Hasta, idEstado)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerarReportePDF(ctx, periodo, filas)
}

func validarFiltros(in dto.ReporteRequest) (Periodo, *int, error) {
	if in.FechaInicio == "" || in.FechaFin == "" {
		return Periodo{}, nil, fmt.Errorf("%w: fecha_inicio y fecha_fin son requeridas", domain.ErrValidacion)
	}
	desde, err := expediente.ParsearFecha(in.FechaInicio)
	if err != nil {
		return Periodo{}, nil, err
	}
	hasta, err := expediente.ParsearFecha(in.FechaFin)
	if err != nil {
		return Periodo{}, nil, err
	}
	if hasta.Before(desde) {
		return Periodo{}, nil, fmt.Errorf("%w: fecha_fin anterior a fecha_inicio", domain.ErrValidacion)
	}
	var idEstado *int
	if in.IDEstado != "" {
		id, err := strconv.Atoi(in.IDEstado)
		if err != nil || !entity.EstadoValido(id) {
			return Periodo{}, nil, fmt.Errorf("%w: id_estado inválido %q", domain.ErrValidacion, in.IDEstado)
		}
		idEstado = &id
	}
	return Periodo{Desde: desde, Hasta: hasta}, idEstado, nil
}
