package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wilmarbg/dicri-api/internal/application/expediente"
	"github.com/wilmarbg/dicri-api/internal/application/indicio"
	"github.com/wilmarbg/dicri-api/internal/domain/repository"
)

// Ensure TxRunner implementa los puertos transaccionales de ambos casos de uso.
var _ expediente.TxRunner = (*TxRunner)(nil)
var _ indicio.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Combinado
// con ExpedienteRepo.GetForUpdate garantiza a lo sumo una transición ganadora
// por expediente y por estado lógico: la petición perdedora observa el estado
// ya avanzado y falla la guarda.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	expRepo repository.ExpedienteRepository,
	indRepo repository.IndicioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return storageErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	expRepo := NewExpedienteRepository(tx)
	indRepo := NewIndicioRepository(tx)

	if err := fn(expRepo, indRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
