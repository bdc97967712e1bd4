package entity

import "time"

// Expediente representa un caso de recolección de evidencias. Nunca se
// elimina físicamente: aprobaciones y rechazos se conservan como historial.
type Expediente struct {
	ID                   string
	NumeroExpediente     string // único en todo el sistema (comparación sin mayúsculas y sin espacios extremos)
	Titulo               string
	Descripcion          string
	IDEstado             int
	IDTecnicoRegistra    string
	IDCoordinadorRevisa  *string
	FechaRegistro        time.Time
	FechaRevision        *time.Time
	JustificacionRechazo *string
}

// EsEditable indica si el expediente admite cambios de campos y de indicios.
// Solo en registro, o rechazado a la espera de correcciones.
func (e *Expediente) EsEditable() bool {
	return e.IDEstado == EstadoEnRegistro || e.IDEstado == EstadoRechazado
}

// EsTerminal indica si el expediente alcanzó un estado final de revisión.
// RECHAZADO no es terminal: el técnico puede corregir y reenviar.
func (e *Expediente) EsTerminal() bool {
	return e.IDEstado == EstadoAprobado
}
