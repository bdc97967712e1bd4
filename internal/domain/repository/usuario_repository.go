package repository

import (
	"context"

	"github.com/wilmarbg/dicri-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	// GetByUsuario busca por nombre de usuario (login). Devuelve nil, nil si no existe.
	GetByUsuario(ctx context.Context, usuario string) (*entity.Usuario, error)
}
