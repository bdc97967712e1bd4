package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wilmarbg/dicri-api/internal/domain"
)

// dbtx abstrae *pgxpool.Pool y pgx.Tx para que un mismo repositorio funcione
// dentro o fuera de una transacción.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// storageErr marca una falla de infraestructura como error transitorio de
// almacenamiento, distinguible de las fallas de reglas de negocio.
func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrAlmacenamiento, op, err)
}
