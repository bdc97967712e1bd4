package workflow

import "github.com/wilmarbg/dicri-api/internal/domain/entity"

// Capacidad es un permiso funcional. La autorización se decide por
// capacidades y no por comparación literal de roles: Administrador acumula
// las capacidades de técnico y coordinador.
type Capacidad int

const (
	// CapRegistrar permite crear expedientes y gestionar sus indicios.
	CapRegistrar Capacidad = iota
	// CapRevisar permite aprobar o rechazar expedientes en revisión.
	CapRevisar
)

// capacidadesPorRol es la única tabla de autorización del sistema.
// Coordinador NO tiene capacidad de registro (comportamiento vigente del
// sistema, confirmado con el propietario).
var capacidadesPorRol = map[string][]Capacidad{
	entity.RolTecnico:       {CapRegistrar},
	entity.RolCoordinador:   {CapRevisar},
	entity.RolAdministrador: {CapRegistrar, CapRevisar},
}

// Tiene indica si el rol posee la capacidad. Roles desconocidos no poseen
// ninguna.
func Tiene(rol string, c Capacidad) bool {
	for _, cap := range capacidadesPorRol[rol] {
		if cap == c {
			return true
		}
	}
	return false
}

// Actor es la identidad ya resuelta del solicitante, inyectada por petición.
// Nunca se deriva dentro del dominio.
type Actor struct {
	ID  string
	Rol string
}
