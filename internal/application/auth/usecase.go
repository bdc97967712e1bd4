package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/wilmarbg/dicri-api/internal/application/dto"
	"github.com/wilmarbg/dicri-api/internal/domain"
	"github.com/wilmarbg/dicri-api/internal/domain/entity"
	"github.com/wilmarbg/dicri-api/internal/domain/repository"
	"github.com/wilmarbg/dicri-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login y verificación.
// La gestión de usuarios es de un sistema externo; aquí solo se resuelven
// credenciales contra el repositorio.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Login verifica usuario/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Usuario == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: usuario y password son requeridos", domain.ErrValidacion)
	}
	user, err := uc.usuarioRepo.GetByUsuario(ctx, in.Usuario)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNoAutenticado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrNoAutenticado
	}
	if !user.Activo {
		return nil, domain.ErrProhibido
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Usuario, user.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  ToUsuarioResponse(user),
	}, nil
}

// GetUsuario devuelve la representación pública de un usuario por id.
// Usado por /auth/verify para refrescar el snapshot del usuario autenticado.
func (uc *AuthUseCase) GetUsuario(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	user, err := uc.usuarioRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUsuarioNotFound
	}
	out := ToUsuarioResponse(user)
	return &out, nil
}

// ToUsuarioResponse mapea la entidad a su representación pública.
func ToUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		IDUsuario:      u.ID,
		Usuario:        u.Usuario,
		NombreCompleto: u.NombreCompleto,
		Correo:         u.Correo,
		NombreRol:      u.Rol,
	}
}
