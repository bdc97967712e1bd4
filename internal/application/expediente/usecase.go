package expediente

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wilmarbg/dicri-api/internal/application/dto"
	"github.com/wilmarbg/dicri-api/internal/domain"
	"github.com/wilmarbg/dicri-api/internal/domain/entity"
	"github.com/wilmarbg/dicri-api/internal/domain/repository"
	"github.com/wilmarbg/dicri-api/internal/domain/workflow"
)

// ExpedienteUseCase orquesta el ciclo de vida de los expedientes. Toda
// mutación pasa por aquí: las guardas de workflow se evalúan dentro de la
// misma transacción que escribe, con la fila del expediente bloqueada, de
// modo que dos revisiones concurrentes producen exactamente un ganador.
type ExpedienteUseCase struct {
	expRepo  repository.ExpedienteRepository
	txRunner TxRunner
	metricas Recorder
}

// NewExpedienteUseCase construye el caso de uso. metricas puede ser nil.
func NewExpedienteUseCase(expRepo repository.ExpedienteRepository, txRunner TxRunner, metricas Recorder) *ExpedienteUseCase {
	return &ExpedienteUseCase{expRepo: expRepo, txRunner: txRunner, metricas: metricas}
}

// Crear registra un expediente nuevo en estado EN_REGISTRO.
func (uc *ExpedienteUseCase) Crear(ctx context.Context, actor workflow.Actor, in dto.CrearExpedienteRequest) (*dto.ExpedienteResponse, error) {
	if err := workflow.AutorizarCreacion(actor); err != nil {
		return nil, err
	}
	numero := strings.TrimSpace(in.NumeroExpediente)
	titulo := strings.TrimSpace(in.Titulo)
	if numero == "" {
		return nil, fmt.Errorf("%w: numero_expediente es requerido", domain.ErrValidacion)
	}
	if titulo == "" {
		return nil, fmt.Errorf("%w: titulo es requerido", domain.ErrValidacion)
	}

	exp := &entity.Expediente{
		ID:                uuid.New().String(),
		NumeroExpediente:  numero,
		Titulo:            titulo,
		Descripcion:       strings.TrimSpace(in.Descripcion),
		IDEstado:          entity.EstadoEnRegistro,
		IDTecnicoRegistra: actor.ID,
		FechaRegistro:     time.Now(),
	}
	if err := uc.expRepo.Create(ctx, exp); err != nil {
		return nil, err
	}
	if uc.metricas != nil {
		uc.metricas.IncExpedienteCreado()
	}
	out := desdeEntidad(exp)
	return &out, nil
}

// GetByID devuelve un expediente con sus campos derivados.
func (uc *ExpedienteUseCase) GetByID(ctx context.Context, id string) (*dto.ExpedienteResponse, error) {
	listado, err := uc.expRepo.GetListadoByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listado == nil {
		return nil, domain.ErrNotFound
	}
	out := desdeListado(listado)
	return &out, nil
}

// List devuelve los expedientes que cumplen los filtros, más recientes primero.
func (uc *ExpedienteUseCase) List(ctx context.Context, in dto.FiltroExpedientesRequest) ([]dto.ExpedienteResponse, error) {
	filtro, err := parsearFiltro(in)
	if err != nil {
		return nil, err
	}
	listados, err := uc.expRepo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpedienteResponse, 0, len(listados))
	for i := range listados {
		out = append(out, desdeListado(&listados[i]))
	}
	return out, nil
}

// EnviarARevision aplica la transición EN_REGISTRO|RECHAZADO → EN_REVISION.
// La guarda de propiedad, el conteo de indicios y la escritura ocurren bajo
// el bloqueo de fila del expediente.
func (uc *ExpedienteUseCase) EnviarARevision(ctx context.Context, actor workflow.Actor, id string) (*dto.ExpedienteResponse, error) {
	err := uc.txRunner.Run(ctx, func(expRepo repository.ExpedienteRepository, indRepo repository.IndicioRepository) error {
		exp, err := expRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if exp == nil {
			return domain.ErrNotFound
		}
		total, err := indRepo.CountByExpediente(ctx, exp.ID)
		if err != nil {
			return err
		}
		if err := workflow.EnviarARevision(exp, actor, total); err != nil {
			return err
		}
		return expRepo.Save(ctx, exp)
	})
	if err != nil {
		return nil, err
	}
	if uc.metricas != nil {
		uc.metricas.IncTransicion(string(workflow.EventoEnviarARevision))
	}
	return uc.GetByID(ctx, id)
}

// Revisar aplica APROBAR o RECHAZAR sobre un expediente EN_REVISION.
func (uc *ExpedienteUseCase) Revisar(ctx context.Context, actor workflow.Actor, id string, in dto.RevisarRequest) (*dto.ExpedienteResponse, error) {
	accion := strings.ToUpper(strings.TrimSpace(in.Accion))
	err := uc.txRunner.Run(ctx, func(expRepo repository.ExpedienteRepository, indRepo repository.IndicioRepository) error {
		exp, err := expRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if exp == nil {
			return domain.ErrNotFound
		}
		if err := workflow.Revisar(exp, actor, accion, in.Justificacion, time.Now()); err != nil {
			return err
		}
		return expRepo.Save(ctx, exp)
	})
	if err != nil {
		return nil, err
	}
	if uc.metricas != nil {
		uc.metricas.IncTransicion(accion)
	}
	return uc.GetByID(ctx, id)
}

// Estados devuelve el catálogo fijo de estados.
func (uc *ExpedienteUseCase) Estados() []dto.EstadoResponse {
	estados := entity.Estados()
	out := make([]dto.EstadoResponse, 0, len(estados))
	for _, e := range estados {
		out = append(out, dto.EstadoResponse{IDEstado: e.ID, NombreEstado: e.Nombre})
	}
	return out
}

func parsearFiltro(in dto.FiltroExpedientesRequest) (repository.FiltroExpedientes, error) {
	var filtro repository.FiltroExpedientes
	if in.IDEstado != "" {
		id, err := strconv.Atoi(in.IDEstado)
		if err != nil || !entity.EstadoValido(id) {
			return filtro, fmt.Errorf("%w: id_estado inválido %q", domain.ErrValidacion, in.IDEstado)
		}
		filtro.IDEstado = &id
	}
	if in.FechaInicio != "" {
		t, err := ParsearFecha(in.FechaInicio)
		if err != nil {
			return filtro, err
		}
		filtro.FechaInicio = &t
	}
	if in.FechaFin != "" {
		t, err := ParsearFecha(in.FechaFin)
		if err != nil {
			return filtro, err
		}
		filtro.FechaFin = &t
	}
	return filtro, nil
}

// ParsearFecha interpreta una fecha de filtro en formato 2006-01-02.
func ParsearFecha(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha inválida %q, se espera YYYY-MM-DD", domain.ErrValidacion, s)
	}
	return t, nil
}

func desdeEntidad(e *entity.Expediente) dto.ExpedienteResponse {
	return dto.ExpedienteResponse{
		IDExpediente:         e.ID,
		NumeroExpediente:     e.NumeroExpediente,
		Titulo:               e.Titulo,
		Descripcion:          e.Descripcion,
		IDEstado:             e.IDEstado,
		NombreEstado:         entity.NombreEstado(e.IDEstado),
		IDTecnicoRegistra:    e.IDTecnicoRegistra,
		FechaRegistro:        e.FechaRegistro,
		FechaRevision:        e.FechaRevision,
		JustificacionRechazo: e.JustificacionRechazo,
	}
}

func desdeListado(l *repository.ExpedienteListado) dto.ExpedienteResponse {
	out := desdeEntidad(&l.Expediente)
	out.NombreEstado = l.NombreEstado
	out.TecnicoRegistra = l.TecnicoRegistra
	out.TecnicoEmail = l.TecnicoCorreo
	out.CoordinadorRevisa = l.CoordinadorRevisa
	out.TotalIndicios = l.TotalIndicios
	return out
}
