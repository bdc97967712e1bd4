package postgres

import (
	"context"
	"time"

	"github.com/wilmarbg/dicri-api/internal/domain/entity"
	"github.com/wilmarbg/dicri-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo consultas de solo lectura para estadísticas y reportes.
// Proyecciones puras sobre expedientes; sin caché, se recalculan por llamada.
type ReporteRepo struct {
	db dbtx
}

// NewReporteRepository construye el adaptador de reportes.
func NewReporteRepository(db dbtx) *ReporteRepo {
	return &ReporteRepo{db: db}
}

// Estadisticas conteos por estado en una sola pasada.
func (r *ReporteRepo) Estadisticas(ctx context.Context) (repository.EstadisticasResult, error) {
	query := `
		SELECT count(*),
		       count(*) FILTER (WHERE id_estado = $1),
		       count(*) FILTER (WHERE id_estado = $2),
		       count(*) FILTER (WHERE id_estado = $3),
		       count(*) FILTER (WHERE id_estado = $4)
		FROM expedientes`
	var res repository.EstadisticasResult
	err := r.db.QueryRow(ctx, query,
		entity.EstadoEnRegistro, entity.EstadoEnRevision, entity.EstadoAprobado, entity.EstadoRechazado,
	).Scan(&res.Total, &res.EnRegistro, &res.EnRevision, &res.Aprobados, &res.Rechazados)
	if err != nil {
		return repository.EstadisticasResult{}, storageErr("estadisticas expedientes", err)
	}
	return res, nil
}

// Reporte filas del período [desde, hasta] inclusivo sobre fecha_registro,
// con el conteo de indicios unido; estado opcional.
func (r *ReporteRepo) Reporte(ctx context.Context, desde, hasta time.Time, idEstado *int) ([]repository.FilaReporte, error) {
	query := `
		SELECT e.id_expediente, e.numero_expediente, e.titulo, e.fecha_registro,
		       e.id_estado, est.nombre_estado,
		       t.nombre_completo, c.nombre_completo, e.fecha_revision,
		       (SELECT count(*) FROM indicios i WHERE i.id_expediente = e.id_expediente) AS total_indicios
		FROM expedientes e
		JOIN estados est ON est.id_estado = e.id_estado
		JOIN usuarios t ON t.id_usuario = e.id_tecnico_registra
		LEFT JOIN usuarios c ON c.id_usuario = e.id_coordinador_revisa
		WHERE e.fecha_registro::date >= $1::date
		  AND e.fecha_registro::date <= $2::date
		  AND ($3::int IS NULL OR e.id_estado = $3)
		ORDER BY e.fecha_registro DESC`
	rows, err := r.db.Query(ctx, query, desde, hasta, idEstado)
	if err != nil {
		return nil, storageErr("reporte expedientes", err)
	}
	defer rows.Close()

	var list []repository.FilaReporte
	for rows.Next() {
		var f repository.FilaReporte
		if err := rows.Scan(&f.IDExpediente, &f.NumeroExpediente, &f.Titulo, &f.FechaRegistro,
			&f.IDEstado, &f.NombreEstado,
			&f.TecnicoRegistra, &f.CoordinadorRevisa, &f.FechaRevision,
			&f.TotalIndicios); err != nil {
			return nil, storageErr("scan fila reporte", err)
		}
		list = append(list, f)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("reporte expedientes", err)
	}
	return list, nil
}
