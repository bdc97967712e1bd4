package indicio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wilmarbg/dicri-api/internal/application/dto"
	"github.com/wilmarbg/dicri-api/internal/domain"
	"github.com/wilmarbg/dicri-api/internal/domain/entity"
	"github.com/wilmarbg/dicri-api/internal/domain/repository"
	"github.com/wilmarbg/dicri-api/internal/domain/workflow"
)

// IndicioUseCase gestiona los indicios de un expediente. Las altas y bajas
// están sujetas a las guardas del motor de ciclo de vida: capacidad de
// registro y expediente en estado editable.
type IndicioUseCase struct {
	expRepo  repository.ExpedienteRepository
	indRepo  repository.IndicioRepository
	txRunner TxRunner
	metricas Recorder
}

// NewIndicioUseCase construye el caso de uso. metricas puede ser nil.
func NewIndicioUseCase(expRepo repository.ExpedienteRepository, indRepo repository.IndicioRepository, txRunner TxRunner, metricas Recorder) *IndicioUseCase {
	return &IndicioUseCase{expRepo: expRepo, indRepo: indRepo, txRunner: txRunner, metricas: metricas}
}

// Agregar registra un indicio sobre un expediente editable.
func (uc *IndicioUseCase) Agregar(ctx context.Context, actor workflow.Actor, in dto.CrearIndicioRequest) (*dto.IndicioResponse, error) {
	ind, err := construirIndicio(actor, in)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(expRepo repository.ExpedienteRepository, indRepo repository.IndicioRepository) error {
		exp, err := expRepo.GetForUpdate(ctx, in.IDExpediente)
		if err != nil {
			return err
		}
		if exp == nil {
			return domain.ErrNotFound
		}
		if err := workflow.AutorizarEdicionIndicios(exp, actor); err != nil {
			return err
		}
		existe, err := indRepo.ExisteCodigo(ctx, exp.ID, ind.Codigo)
		if err != nil {
			return err
		}
		if existe {
			return domain.ErrCodigoIndicioDuplicado
		}
		return indRepo.Create(ctx, ind)
	})
	if err != nil {
		return nil, err
	}
	if uc.metricas != nil {
		uc.metricas.IncIndicioCreado()
	}
	out := desdeEntidad(ind)
	return &out, nil
}

// Eliminar borra un indicio. Mismas guardas de estado que Agregar.
func (uc *IndicioUseCase) Eliminar(ctx context.Context, actor workflow.Actor, idIndicio string) error {
	return uc.txRunner.Run(ctx, func(expRepo repository.ExpedienteRepository, indRepo repository.IndicioRepository) error {
		ind, err := indRepo.GetByID(ctx, idIndicio)
		if err != nil {
			return err
		}
		if ind == nil {
			return domain.ErrNotFound
		}
		exp, err := expRepo.GetForUpdate(ctx, ind.IDExpediente)
		if err != nil {
			return err
		}
		if exp == nil {
			return domain.ErrNotFound
		}
		if err := workflow.AutorizarEdicionIndicios(exp, actor); err != nil {
			return err
		}
		return indRepo.Delete(ctx, idIndicio)
	})
}

// ListarPorExpediente devuelve los indicios en orden de inserción.
func (uc *IndicioUseCase) ListarPorExpediente(ctx context.Context, idExpediente string) ([]dto.IndicioResponse, error) {
	exp, err := uc.expRepo.GetByID(ctx, idExpediente)
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, domain.ErrNotFound
	}
	indicios, err := uc.indRepo.ListByExpediente(ctx, idExpediente)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IndicioResponse, 0, len(indicios))
	for _, ind := range indicios {
		out = append(out, desdeEntidad(ind))
	}
	return out, nil
}

// Tipos devuelve el catálogo fijo de tipos de indicio.
func (uc *IndicioUseCase) Tipos() []dto.TipoIndicioResponse {
	tipos := entity.TiposIndicio()
	out := make([]dto.TipoIndicioResponse, 0, len(tipos))
	for _, t := range tipos {
		out = append(out, dto.TipoIndicioResponse{IDTipoIndicio: t.ID, NombreTipo: t.Nombre})
	}
	return out
}

// construirIndicio valida el payload y materializa la entidad.
func construirIndicio(actor workflow.Actor, in dto.CrearIndicioRequest) (*entity.Indicio, error) {
	codigo := strings.TrimSpace(in.CodigoIndicio)
	descripcion := strings.TrimSpace(in.Descripcion)
	if in.IDExpediente == "" {
		return nil, fmt.Errorf("%w: id_expediente es requerido", domain.ErrValidacion)
	}
	if codigo == "" {
		return nil, fmt.Errorf("%w: codigo_indicio es requerido", domain.ErrValidacion)
	}
	if descripcion == "" {
		return nil, fmt.Errorf("%w: descripcion es requerida", domain.ErrValidacion)
	}
	if !entity.TipoIndicioValido(in.IDTipoIndicio) {
		return nil, fmt.Errorf("%w: id_tipo_indicio inválido %d", domain.ErrValidacion, in.IDTipoIndicio)
	}
	peso, unidad, err := validarPeso(in.Peso, in.UnidadPeso)
	if err != nil {
		return nil, err
	}

	return &entity.Indicio{
		ID:                uuid.New().String(),
		IDExpediente:      in.IDExpediente,
		Codigo:            codigo,
		IDTipoIndicio:     in.IDTipoIndicio,
		Descripcion:       descripcion,
		Color:             normalizarOpcional(in.Color),
		Tamano:            normalizarOpcional(in.Tamano),
		Peso:              peso,
		UnidadPeso:        unidad,
		UbicacionHallazgo: normalizarOpcional(in.UbicacionHallazgo),
		Observaciones:     normalizarOpcional(in.Observaciones),
		IDTecnicoRegistra: actor.ID,
		FechaRegistro:     time.Now(),
	}, nil
}

// validarPeso hace cumplir el invariante: unidad presente si y solo si hay peso.
func validarPeso(peso *decimal.Decimal, unidad *string) (*decimal.Decimal, *string, error) {
	if peso == nil {
		if normalizarOpcional(unidad) != nil {
			return nil, nil, fmt.Errorf("%w: unidad_peso sin peso", domain.ErrValidacion)
		}
		return nil, nil, nil
	}
	if peso.IsNegative() {
		return nil, nil, fmt.Errorf("%w: el peso no puede ser negativo", domain.ErrValidacion)
	}
	u := normalizarOpcional(unidad)
	if u == nil {
		return nil, nil, fmt.Errorf("%w: unidad_peso es requerida cuando se indica peso", domain.ErrValidacion)
	}
	if !entity.UnidadPesoValida(*u) {
		return nil, nil, fmt.Errorf("%w: unidad_peso inválida %q", domain.ErrValidacion, *u)
	}
	return peso, u, nil
}

// normalizarOpcional convierte cadenas vacías o de espacios en nil.
func normalizarOpcional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func desdeEntidad(i *entity.Indicio) dto.IndicioResponse {
	nombreTipo := ""
	for _, t := range entity.TiposIndicio() {
		if t.ID == i.IDTipoIndicio {
			nombreTipo = t.Nombre
			break
		}
	}
	return dto.IndicioResponse{
		IDIndicio:         i.ID,
		IDExpediente:      i.IDExpediente,
		CodigoIndicio:     i.Codigo,
		IDTipoIndicio:     i.IDTipoIndicio,
		NombreTipo:        nombreTipo,
		Descripcion:       i.Descripcion,
		Color:             i.Color,
		Tamano:            i.Tamano,
		Peso:              i.Peso,
		UnidadPeso:        i.UnidadPeso,
		UbicacionHallazgo: i.UbicacionHallazgo,
		Observaciones:     i.Observaciones,
		IDTecnicoRegistra: i.IDTecnicoRegistra,
		FechaRegistro:     i.FechaRegistro,
	}
}
