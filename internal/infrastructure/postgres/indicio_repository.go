package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/wilmarbg/dicri-api/internal/domain"
	"github.com/wilmarbg/dicri-api/internal/domain/entity"
	"github.com/wilmarbg/dicri-api/internal/domain/repository"
)

var _ repository.IndicioRepository = (*IndicioRepo)(nil)

// IndicioRepo implementación del puerto IndicioRepository sobre PostgreSQL.
type IndicioRepo struct {
	db dbtx
}

// NewIndicioRepository construye el adaptador; acepta el pool o una tx.
func NewIndicioRepository(db dbtx) *IndicioRepo {
	return &IndicioRepo{db: db}
}

const indicioColumns = `id_indicio, id_expediente, codigo_indicio, id_tipo_indicio, descripcion,
	color, tamano, peso, unidad_peso, ubicacion_hallazgo, observaciones,
	id_tecnico_registra, fecha_registro`

// Create persiste un indicio. La unicidad (expediente, código) la garantiza
// un constraint único.
func (r *IndicioRepo) Create(ctx context.Context, i *entity.Indicio) error {
	query := `
		INSERT INTO indicios (` + indicioColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		i.ID, i.IDExpediente, i.Codigo, i.IDTipoIndicio, i.Descripcion,
		i.Color, i.Tamano, i.Peso, i.UnidadPeso, i.UbicacionHallazgo, i.Observaciones,
		i.IDTecnicoRegistra, i.FechaRegistro,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodigoIndicioDuplicado
		}
		return storageErr("insert indicio", err)
	}
	return nil
}

// GetByID obtiene un indicio por ID. Devuelve nil, nil si no existe.
func (r *IndicioRepo) GetByID(ctx context.Context, id string) (*entity.Indicio, error) {
	query := `SELECT ` + indicioColumns + ` FROM indicios WHERE id_indicio = $1`
	var i entity.Indicio
	err := r.db.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.IDExpediente, &i.Codigo, &i.IDTipoIndicio, &i.Descripcion,
		&i.Color, &i.Tamano, &i.Peso, &i.UnidadPeso, &i.UbicacionHallazgo, &i.Observaciones,
		&i.IDTecnicoRegistra, &i.FechaRegistro,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get indicio by id", err)
	}
	return &i, nil
}

// ListByExpediente devuelve los indicios en orden de inserción (secuencia).
func (r *IndicioRepo) ListByExpediente(ctx context.Context, idExpediente string) ([]*entity.Indicio, error) {
	query := `SELECT ` + indicioColumns + ` FROM indicios WHERE id_expediente = $1 ORDER BY secuencia`
	rows, err := r.db.Query(ctx, query, idExpediente)
	if err != nil {
		return nil, storageErr("list indicios", err)
	}
	defer rows.Close()
	var list []*entity.Indicio
	for rows.Next() {
		var i entity.Indicio
		if err := rows.Scan(
			&i.ID, &i.IDExpediente, &i.Codigo, &i.IDTipoIndicio, &i.Descripcion,
			&i.Color, &i.Tamano, &i.Peso, &i.UnidadPeso, &i.UbicacionHallazgo, &i.Observaciones,
			&i.IDTecnicoRegistra, &i.FechaRegistro,
		); err != nil {
			return nil, storageErr("scan indicio", err)
		}
		list = append(list, &i)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list indicios", err)
	}
	return list, nil
}

// CountByExpediente conteo de indicios del expediente.
func (r *IndicioRepo) CountByExpediente(ctx context.Context, idExpediente string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM indicios WHERE id_expediente = $1`, idExpediente).Scan(&n)
	if err != nil {
		return 0, storageErr("count indicios", err)
	}
	return n, nil
}

// ExisteCodigo comparación exacta del código dentro del expediente.
func (r *IndicioRepo) ExisteCodigo(ctx context.Context, idExpediente, codigo string) (bool, error) {
	var existe bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM indicios WHERE id_expediente = $1 AND codigo_indicio = $2)`,
		idExpediente, codigo,
	).Scan(&existe)
	if err != nil {
		return false, storageErr("existe codigo indicio", err)
	}
	return existe, nil
}

// Delete elimina un indicio por ID.
func (r *IndicioRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM indicios WHERE id_indicio = $1`, id)
	if err != nil {
		return storageErr("delete indicio", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
