package repository

import (
	"context"

	"github.com/wilmarbg/dicri-api/internal/domain/entity"
)

// IndicioRepository define el puerto de persistencia para Indicio.
// Create y Delete solo se invocan tras pasar las guardas del motor de ciclo
// de vida, dentro de la misma transacción que bloquea el expediente padre.
type IndicioRepository interface {
	Create(ctx context.Context, i *entity.Indicio) error
	GetByID(ctx context.Context, id string) (*entity.Indicio, error)
	// ListByExpediente devuelve los indicios en orden de inserción.
	ListByExpediente(ctx context.Context, idExpediente string) ([]*entity.Indicio, error)
	CountByExpediente(ctx context.Context, idExpediente string) (int, error)
	// ExisteCodigo comparación exacta del código dentro del expediente.
	ExisteCodigo(ctx context.Context, idExpediente, codigo string) (bool, error)
	Delete(ctx context.Context, id string) error
}
