// seed puebla la base de datos con los usuarios de demostración del sistema.
// Los catálogos (estados y tipos de indicio) se insertan en la migración de
// esquema; este comando solo crea cuentas.
//
// Uso: go run ./cmd/seed
// Lee la configuración de la base de datos del entorno, igual que cmd/api.
// Es idempotente: los usuarios ya existentes se conservan.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wilmarbg/dicri-api/internal/domain/entity"
	"github.com/wilmarbg/dicri-api/internal/infrastructure/postgres"
	"github.com/wilmarbg/dicri-api/pkg/config"
)

// cuentas de demostración; la contraseña se pasa por entorno o usa el default
// de desarrollo.
var cuentas = []struct {
	usuario, nombre, correo, rol string
}{
	{"tecnico1", "Carlos Pérez", "carlos.perez@dicri.gob.gt", entity.RolTecnico},
	{"tecnico2", "María López", "maria.lopez@dicri.gob.gt", entity.RolTecnico},
	{"coordinador1", "Ana García", "ana.garcia@dicri.gob.gt", entity.RolCoordinador},
	{"admin", "Administrador del Sistema", "admin@dicri.gob.gt", entity.RolAdministrador},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "dicri2024"
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar hash: %v\n", err)
		os.Exit(1)
	}

	repo := postgres.NewUsuarioRepository(pool)
	creados := 0
	for _, c := range cuentas {
		existente, err := repo.GetByUsuario(ctx, c.usuario)
		if err != nil {
			fmt.Fprintf(os.Stderr, "consultar usuario %s: %v\n", c.usuario, err)
			os.Exit(1)
		}
		if existente != nil {
			fmt.Printf("usuario %s ya existe, se conserva\n", c.usuario)
			continue
		}
		u := &entity.Usuario{
			ID:             uuid.New().String(),
			Usuario:        c.usuario,
			NombreCompleto: c.nombre,
			Correo:         c.correo,
			PasswordHash:   string(hash),
			Rol:            c.rol,
			Activo:         true,
			FechaCreacion:  time.Now(),
		}
		if err := repo.Create(ctx, u); err != nil {
			fmt.Fprintf(os.Stderr, "crear usuario %s: %v\n", c.usuario, err)
			os.Exit(1)
		}
		fmt.Printf("usuario %s creado (%s)\n", c.usuario, c.rol)
		creados++
	}

	fmt.Printf("seed completado: %d usuarios nuevos\n", creados)
}
