// Package workflow contiene la máquina de estados del ciclo de vida de un
// expediente y sus guardas de autorización. Es la única fuente de verdad
// sobre qué transición es válida, para quién y con qué efectos; los casos de
// uso solo la ejecutan dentro de una transacción.
//
// Ciclo de vida:
//
//	EN_REGISTRO ──EnviarARevision──▶ EN_REVISION ──Aprobar──▶ APROBADO
//	     ▲                                │
//	     └───────EnviarARevision──── RECHAZADO ◀──Rechazar────┘
package workflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/wilmarbg/dicri-api/internal/domain"
	"github.com/wilmarbg/dicri-api/internal/domain/entity"
)

// Evento identifica la transición intentada, para reportar errores con el
// par (estado actual, evento).
type Evento string

const (
	EventoEnviarARevision Evento = "ENVIAR_REVISION"
	EventoAprobar         Evento = "APROBAR"
	EventoRechazar        Evento = "RECHAZAR"
	EventoEditarIndicios  Evento = "EDITAR_INDICIOS"
)

// AccionRevision valores aceptados por el endpoint de revisión.
const (
	AccionAprobar  = "APROBAR"
	AccionRechazar = "RECHAZAR"
)

// errTransicion construye el error de transición nombrando el estado actual
// y el evento intentado; nunca se ignora en silencio.
func errTransicion(evento Evento, idEstado int) error {
	return fmt.Errorf("%w: evento %s no permitido desde el estado %s",
		domain.ErrTransicionInvalida, evento, entity.NombreEstado(idEstado))
}

// EnviarARevision aplica EN_REGISTRO|RECHAZADO → EN_REVISION.
// Guardas: el solicitante debe ser el técnico que registró el expediente (o
// Administrador) y el expediente debe tener al menos un indicio. En caso de
// rechazo previo, la justificación se conserva como historial hasta una
// aprobación.
func EnviarARevision(exp *entity.Expediente, actor Actor, totalIndicios int) error {
	if exp.IDEstado != entity.EstadoEnRegistro && exp.IDEstado != entity.EstadoRechazado {
		return errTransicion(EventoEnviarARevision, exp.IDEstado)
	}
	if !Tiene(actor.Rol, CapRegistrar) {
		return fmt.Errorf("%w: el rol %s no puede enviar a revisión", domain.ErrProhibido, actor.Rol)
	}
	if actor.Rol != entity.RolAdministrador && actor.ID != exp.IDTecnicoRegistra {
		return fmt.Errorf("%w: solo el técnico que registró el expediente puede enviarlo a revisión", domain.ErrProhibido)
	}
	if totalIndicios < 1 {
		return fmt.Errorf("%w: el expediente no tiene indicios registrados", domain.ErrTransicionInvalida)
	}
	exp.IDEstado = entity.EstadoEnRevision
	return nil
}

// Revisar aplica EN_REVISION → APROBADO|RECHAZADO según la acción.
// Guardas: capacidad de revisión; RECHAZAR exige justificación no vacía.
// Efectos: registra revisor y fecha; APROBAR limpia cualquier justificación
// previa, RECHAZAR la almacena.
func Revisar(exp *entity.Expediente, actor Actor, accion, justificacion string, ahora time.Time) error {
	evento, idDestino, err := resolverAccion(accion)
	if err != nil {
		return err
	}
	if exp.IDEstado != entity.EstadoEnRevision {
		return errTransicion(evento, exp.IDEstado)
	}
	if !Tiene(actor.Rol, CapRevisar) {
		return fmt.Errorf("%w: el rol %s no puede revisar expedientes", domain.ErrProhibido, actor.Rol)
	}
	justificacion = strings.TrimSpace(justificacion)
	if idDestino == entity.EstadoRechazado && justificacion == "" {
		return fmt.Errorf("%w: la justificación es obligatoria para rechazar", domain.ErrValidacion)
	}

	exp.IDEstado = idDestino
	exp.IDCoordinadorRevisa = &actor.ID
	exp.FechaRevision = &ahora
	if idDestino == entity.EstadoAprobado {
		exp.JustificacionRechazo = nil
	} else {
		exp.JustificacionRechazo = &justificacion
	}
	return nil
}

func resolverAccion(accion string) (Evento, int, error) {
	switch accion {
	case AccionAprobar:
		return EventoAprobar, entity.EstadoAprobado, nil
	case AccionRechazar:
		return EventoRechazar, entity.EstadoRechazado, nil
	default:
		return "", 0, fmt.Errorf("%w: acción de revisión desconocida %q", domain.ErrValidacion, accion)
	}
}

// AutorizarEdicionIndicios valida que el actor pueda agregar o eliminar
// indicios del expediente: capacidad de registro y estado editable.
func AutorizarEdicionIndicios(exp *entity.Expediente, actor Actor) error {
	if !Tiene(actor.Rol, CapRegistrar) {
		return fmt.Errorf("%w: el rol %s no puede modificar indicios", domain.ErrProhibido, actor.Rol)
	}
	if !exp.EsEditable() {
		return errTransicion(EventoEditarIndicios, exp.IDEstado)
	}
	return nil
}

// AutorizarCreacion valida que el actor pueda registrar un expediente nuevo.
func AutorizarCreacion(actor Actor) error {
	if !Tiene(actor.Rol, CapRegistrar) {
		return fmt.Errorf("%w: el rol %s no puede registrar expedientes", domain.ErrProhibido, actor.Rol)
	}
	return nil
}
