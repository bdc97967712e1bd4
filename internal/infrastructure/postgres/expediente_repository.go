package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/wilmarbg/dicri-api/internal/domain"
	"github.com/wilmarbg/dicri-api/internal/domain/entity"
	"github.com/wilmarbg/dicri-api/internal/domain/repository"
)

var _ repository.ExpedienteRepository = (*ExpedienteRepo)(nil)

// ExpedienteRepo implementación del puerto ExpedienteRepository sobre PostgreSQL.
// Los expedientes nunca se borran: el historial de aprobaciones y rechazos se
// conserva para reportes.
type ExpedienteRepo struct {
	db dbtx
}

// NewExpedienteRepository construye el adaptador; acepta el pool o una tx.
func NewExpedienteRepository(db dbtx) *ExpedienteRepo {
	return &ExpedienteRepo{db: db}
}

const expedienteColumns = `id_expediente, numero_expediente, titulo, descripcion, id_estado,
	id_tecnico_registra, id_coordinador_revisa, fecha_registro, fecha_revision, justificacion_rechazo`

// Create persiste un expediente nuevo. La unicidad del número (sin mayúsculas
// ni espacios extremos) la garantiza un índice único funcional.
func (r *ExpedienteRepo) Create(ctx context.Context, e *entity.Expediente) error {
	query := `
		INSERT INTO expedientes (` + expedienteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.NumeroExpediente, e.Titulo, e.Descripcion, e.IDEstado,
		e.IDTecnicoRegistra, e.IDCoordinadorRevisa, e.FechaRegistro, e.FechaRevision, e.JustificacionRechazo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNumeroExpedienteDuplicado
		}
		return storageErr("insert expediente", err)
	}
	return nil
}

// GetByID obtiene un expediente por ID. Devuelve nil, nil si no existe.
func (r *ExpedienteRepo) GetByID(ctx context.Context, id string) (*entity.Expediente, error) {
	query := `SELECT ` + expedienteColumns + ` FROM expedientes WHERE id_expediente = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id), "get expediente by id")
}

// GetForUpdate lee el expediente bloqueando la fila. Solo tiene sentido
// dentro de una transacción del TxRunner: el bloqueo serializa las
// transiciones concurrentes sobre el mismo expediente.
func (r *ExpedienteRepo) GetForUpdate(ctx context.Context, id string) (*entity.Expediente, error) {
	query := `SELECT ` + expedienteColumns + ` FROM expedientes WHERE id_expediente = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRow(ctx, query, id), "get expediente for update")
}

// Save persiste un expediente mutado por el motor de ciclo de vida.
func (r *ExpedienteRepo) Save(ctx context.Context, e *entity.Expediente) error {
	query := `
		UPDATE expedientes
		SET titulo = $2, descripcion = $3, id_estado = $4, id_coordinador_revisa = $5,
		    fecha_revision = $6, justificacion_rechazo = $7
		WHERE id_expediente = $1`
	tag, err := r.db.Exec(ctx, query,
		e.ID, e.Titulo, e.Descripcion, e.IDEstado, e.IDCoordinadorRevisa, e.FechaRevision, e.JustificacionRechazo,
	)
	if err != nil {
		return storageErr("update expediente", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const listadoQuery = `
	SELECT e.id_expediente, e.numero_expediente, e.titulo, e.descripcion, e.id_estado,
	       e.id_tecnico_registra, e.id_coordinador_revisa, e.fecha_registro, e.fecha_revision,
	       e.justificacion_rechazo,
	       est.nombre_estado, t.nombre_completo, t.correo, c.nombre_completo,
	       (SELECT count(*) FROM indicios i WHERE i.id_expediente = e.id_expediente) AS total_indicios
	FROM expedientes e
	JOIN estados est ON est.id_estado = e.id_estado
	JOIN usuarios t ON t.id_usuario = e.id_tecnico_registra
	LEFT JOIN usuarios c ON c.id_usuario = e.id_coordinador_revisa`

// List devuelve expedientes con filtros conjuntivos, más recientes primero.
// Las fechas son límites inclusivos de día calendario sobre fecha_registro.
func (r *ExpedienteRepo) List(ctx context.Context, filtro repository.FiltroExpedientes) ([]repository.ExpedienteListado, error) {
	query := listadoQuery + `
	WHERE ($1::int IS NULL OR e.id_estado = $1)
	  AND ($2::date IS NULL OR e.fecha_registro::date >= $2::date)
	  AND ($3::date IS NULL OR e.fecha_registro::date <= $3::date)
	ORDER BY e.fecha_registro DESC`
	rows, err := r.db.Query(ctx, query, filtro.IDEstado, filtro.FechaInicio, filtro.FechaFin)
	if err != nil {
		return nil, storageErr("list expedientes", err)
	}
	defer rows.Close()

	var list []repository.ExpedienteListado
	for rows.Next() {
		l, err := scanListado(rows)
		if err != nil {
			return nil, storageErr("scan expediente", err)
		}
		list = append(list, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list expedientes", err)
	}
	return list, nil
}

// GetListadoByID devuelve el modelo de lectura de un expediente. nil, nil si no existe.
func (r *ExpedienteRepo) GetListadoByID(ctx context.Context, id string) (*repository.ExpedienteListado, error) {
	query := listadoQuery + ` WHERE e.id_expediente = $1`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, storageErr("get listado expediente", err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, storageErr("get listado expediente", err)
		}
		return nil, nil
	}
	l, err := scanListado(rows)
	if err != nil {
		return nil, storageErr("scan expediente", err)
	}
	return l, nil
}

func (r *ExpedienteRepo) scanOne(row pgx.Row, op string) (*entity.Expediente, error) {
	var e entity.Expediente
	err := row.Scan(&e.ID, &e.NumeroExpediente, &e.Titulo, &e.Descripcion, &e.IDEstado,
		&e.IDTecnicoRegistra, &e.IDCoordinadorRevisa, &e.FechaRegistro, &e.FechaRevision, &e.JustificacionRechazo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr(op, err)
	}
	return &e, nil
}

func scanListado(rows pgx.Rows) (*repository.ExpedienteListado, error) {
	var l repository.ExpedienteListado
	err := rows.Scan(&l.ID, &l.NumeroExpediente, &l.Titulo, &l.Descripcion, &l.IDEstado,
		&l.IDTecnicoRegistra, &l.IDCoordinadorRevisa, &l.FechaRegistro, &l.FechaRevision,
		&l.JustificacionRechazo,
		&l.NombreEstado, &l.TecnicoRegistra, &l.TecnicoCorreo, &l.CoordinadorRevisa,
		&l.TotalIndicios)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
