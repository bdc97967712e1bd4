package entity

import "time"

// Roles válidos para Usuario.
const (
	RolTecnico       = "Tecnico"
	RolCoordinador   = "Coordinador"
	RolAdministrador = "Administrador"
)

// Usuario representa un usuario del sistema DICRI. La gestión de usuarios es
// externa; el servicio solo los autentica y resuelve su rol.
type Usuario struct {
	ID             string
	Usuario        string // nombre de usuario para login
	NombreCompleto string
	Correo         string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	Rol            string // Tecnico, Coordinador, Administrador
	Activo         bool
	FechaCreacion  time.Time
}
