package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wilmarbg/dicri-api/internal/application/auth"
	"github.com/wilmarbg/dicri-api/internal/application/dto"
	"github.com/wilmarbg/dicri-api/internal/domain"
	"github.com/wilmarbg/dicri-api/internal/domain/entity"
	pkgjwt "github.com/wilmarbg/dicri-api/pkg/jwt"
)

type memUsuarioRepo struct {
	usuarios map[string]*entity.Usuario
}

func (r *memUsuarioRepo) Create(_ context.Context, u *entity.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *memUsuarioRepo) GetByID(_ context.Context, id string) (*entity.Usuario, error) {
	return r.usuarios[id], nil
}

func (r *memUsuarioRepo) GetByUsuario(_ context.Context, usuario string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Usuario == usuario {
			return u, nil
		}
	}
	return nil, nil
}

const testSecret = "secret-para-tests"

func nuevoUseCase(t *testing.T, activo bool) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &memUsuarioRepo{usuarios: map[string]*entity.Usuario{
		"tec-1": {
			ID:             "tec-1",
			Usuario:        "jperez",
			NombreCompleto: "Juan Pérez",
			Correo:         "jperez@dicri.gob.gt",
			PasswordHash:   string(hash),
			Rol:            entity.RolTecnico,
			Activo:         activo,
		},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "dicri-test"})
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc := nuevoUseCase(t, true)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Usuario: "jperez", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "jperez", out.User.Usuario)
	assert.Equal(t, "Juan Pérez", out.User.NombreCompleto)
	assert.Equal(t, entity.RolTecnico, out.User.NombreRol)

	// El token emitido es verificable y transporta identidad y rol.
	userID, usuario, rol, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "tec-1", userID)
	assert.Equal(t, "jperez", usuario)
	assert.Equal(t, entity.RolTecnico, rol)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := nuevoUseCase(t, true)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Usuario: "jperez", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrNoAutenticado)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := nuevoUseCase(t, true)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Usuario: "nadie", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrNoAutenticado)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc := nuevoUseCase(t, false)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Usuario: "jperez", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrProhibido)
}

func TestLogin_CamposVacios(t *testing.T) {
	uc := nuevoUseCase(t, true)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Usuario: "", Password: ""})
	assert.ErrorIs(t, err, domain.ErrValidacion)
}

func TestGetUsuario(t *testing.T) {
	uc := nuevoUseCase(t, true)

	out, err := uc.GetUsuario(context.Background(), "tec-1")
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", out.NombreCompleto)

	_, err = uc.GetUsuario(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrUsuarioNotFound)
}
