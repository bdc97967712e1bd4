package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wilmarbg/dicri-api/internal/domain"
	"github.com/wilmarbg/dicri-api/internal/domain/entity"
	"github.com/wilmarbg/dicri-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	db dbtx
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(db dbtx) *UsuarioRepo {
	return &UsuarioRepo{db: db}
}

const usuarioColumns = `id_usuario, usuario, nombre_completo, correo, password_hash, rol, activo, fecha_creacion`

// Create persiste un nuevo usuario (solo usado por el seed).
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + usuarioColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		u.ID, u.Usuario, u.NombreCompleto, u.Correo, u.PasswordHash, u.Rol, u.Activo, u.FechaCreacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el usuario ya existe", domain.ErrValidacion)
		}
		return storageErr("insert usuario", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve nil, nil si no existe.
func (r *UsuarioRepo) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE id_usuario = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id), "get usuario by id")
}

// GetByUsuario obtiene un usuario por nombre de usuario. Devuelve nil, nil si no existe.
func (r *UsuarioRepo) GetByUsuario(ctx context.Context, usuario string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE usuario = $1 LIMIT 1`
	return r.scanOne(r.db.QueryRow(ctx, query, usuario), "get usuario by usuario")
}

func (r *UsuarioRepo) scanOne(row pgx.Row, op string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Usuario, &u.NombreCompleto, &u.Correo, &u.PasswordHash, &u.Rol, &u.Activo, &u.FechaCreacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr(op, err)
	}
	return &u, nil
}
