package expediente_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appexp "github.com/wilmarbg/dicri-api/internal/application/expediente"
	"github.com/wilmarbg/dicri-api/internal/application/dto"
	"github.com/wilmarbg/dicri-api/internal/domain"
	"github.com/wilmarbg/dicri-api/internal/domain/entity"
	"github.com/wilmarbg/dicri-api/internal/domain/repository"
	"github.com/wilmarbg/dicri-api/internal/domain/workflow"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: los casos de uso se prueban contra los puertos, sin DB.
// ──────────────────────────────────────────────────────────────────────────────

type fakeExpedienteRepo struct {
	mu          sync.Mutex
	expedientes map[string]*entity.Expediente
	indicios    *fakeIndicioRepo
}

func newFakeExpedienteRepo(ind *fakeIndicioRepo) *fakeExpedienteRepo {
	return &fakeExpedienteRepo{expedientes: map[string]*entity.Expediente{}, indicios: ind}
}

func (r *fakeExpedienteRepo) Create(_ context.Context, e *entity.Expediente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, otro := range r.expedientes {
		if strings.EqualFold(strings.TrimSpace(otro.NumeroExpediente), strings.TrimSpace(e.NumeroExpediente)) {
			return domain.ErrNumeroExpedienteDuplicado
		}
	}
	copia := *e
	r.expedientes[e.ID] = &copia
	return nil
}

func (r *fakeExpedienteRepo) GetByID(_ context.Context, id string) (*entity.Expediente, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.expedientes[id]
	if !ok {
		return nil, nil
	}
	copia := *e
	return &copia, nil
}

func (r *fakeExpedienteRepo) GetForUpdate(ctx context.Context, id string) (*entity.Expediente, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeExpedienteRepo) Save(_ context.Context, e *entity.Expediente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copia := *e
	r.expedientes[e.ID] = &copia
	return nil
}

func (r *fakeExpedienteRepo) List(ctx context.Context, _ repository.FiltroExpedientes) ([]repository.ExpedienteListado, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []repository.ExpedienteListado
	for _, e := range r.expedientes {
		out = append(out, r.listado(e))
	}
	return out, nil
}

func (r *fakeExpedienteRepo) GetListadoByID(_ context.Context, id string) (*repository.ExpedienteListado, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.expedientes[id]
	if !ok {
		return nil, nil
	}
	l := r.listado(e)
	return &l, nil
}

func (r *fakeExpedienteRepo) listado(e *entity.Expediente) repository.ExpedienteListado {
	total := 0
	if r.indicios != nil {
		total = r.indicios.total(e.ID)
	}
	return repository.ExpedienteListado{
		Expediente:    *e,
		NombreEstado:  entity.NombreEstado(e.IDEstado),
		TotalIndicios: total,
	}
}

type fakeIndicioRepo struct {
	mu       sync.Mutex
	indicios []*entity.Indicio
}

func (r *fakeIndicioRepo) total(idExpediente string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, i := range r.indicios {
		if i.IDExpediente == idExpediente {
			n++
		}
	}
	return n
}

func (r *fakeIndicioRepo) Create(_ context.Context, i *entity.Indicio) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copia := *i
	r.indicios = append(r.indicios, &copia)
	return nil
}

func (r *fakeIndicioRepo) GetByID(_ context.Context, id string) (*entity.Indicio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.indicios {
		if i.ID == id {
			copia := *i
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeIndicioRepo) ListByExpediente(_ context.Context, idExpediente string) ([]*entity.Indicio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Indicio
	for _, i := range r.indicios {
		if i.IDExpediente == idExpediente {
			copia := *i
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeIndicioRepo) CountByExpediente(_ context.Context, idExpediente string) (int, error) {
	return r.total(idExpediente), nil
}

func (r *fakeIndicioRepo) ExisteCodigo(_ context.Context, idExpediente, codigo string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.indicios {
		if i.IDExpediente == idExpediente && i.Codigo == codigo {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeIndicioRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for n, i := range r.indicios {
		if i.ID == id {
			r.indicios = append(r.indicios[:n], r.indicios[n+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeTxRunner ejecuta el callback directamente; la atomicidad real la
// aportan las implementaciones de postgres.
type fakeTxRunner struct {
	expRepo *fakeExpedienteRepo
	indRepo *fakeIndicioRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(repository.ExpedienteRepository, repository.IndicioRepository) error) error {
	return fn(r.expRepo, r.indRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Arranque común
// ──────────────────────────────────────────────────────────────────────────────

var (
	tecnico     = workflow.Actor{ID: "tec-1", Rol: entity.RolTecnico}
	otroTecnico = workflow.Actor{ID: "tec-2", Rol: entity.RolTecnico}
	coordinador = workflow.Actor{ID: "coo-1", Rol: entity.RolCoordinador}
)

func nuevoEntorno(t *testing.T) (*appexp.ExpedienteUseCase, *fakeExpedienteRepo, *fakeIndicioRepo) {
	t.Helper()
	indRepo := &fakeIndicioRepo{}
	expRepo := newFakeExpedienteRepo(indRepo)
	runner := &fakeTxRunner{expRepo: expRepo, indRepo: indRepo}
	return appexp.NewExpedienteUseCase(expRepo, runner, nil), expRepo, indRepo
}

func crearExpediente(t *testing.T, uc *appexp.ExpedienteUseCase, numero string) *dto.ExpedienteResponse {
	t.Helper()
	out, err := uc.Crear(context.Background(), tecnico, dto.CrearExpedienteRequest{
		NumeroExpediente: numero,
		Titulo:           "Robo",
		Descripcion:      "Robo a mano armada",
	})
	require.NoError(t, err)
	return out
}

func agregarIndicio(t *testing.T, indRepo *fakeIndicioRepo, idExpediente, codigo string) {
	t.Helper()
	require.NoError(t, indRepo.Create(context.Background(), &entity.Indicio{
		ID:           "ind-" + codigo,
		IDExpediente: idExpediente,
		Codigo:       codigo,
		Descripcion:  "Cuchillo",
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

func TestCrear_IniciaEnRegistro(t *testing.T) {
	uc, _, _ := nuevoEntorno(t)

	out := crearExpediente(t, uc, "EXP-2024-001")
	assert.Equal(t, entity.EstadoEnRegistro, out.IDEstado)
	assert.Equal(t, "EN_REGISTRO", out.NombreEstado)
	assert.Equal(t, tecnico.ID, out.IDTecnicoRegistra)
	assert.NotEmpty(t, out.IDExpediente)
}

func TestCrear_NumeroDuplicado(t *testing.T) {
	uc, expRepo, _ := nuevoEntorno(t)

	crearExpediente(t, uc, "EXP-2024-001")
	_, err := uc.Crear(context.Background(), tecnico, dto.CrearExpedienteRequest{
		NumeroExpediente: "  exp-2024-001  ", // mismo número con mayúsculas y espacios distintos
		Titulo:           "Otro caso",
	})
	require.ErrorIs(t, err, domain.ErrNumeroExpedienteDuplicado)
	assert.Len(t, expRepo.expedientes, 1, "el repositorio debe contener exactamente un expediente")
}

func TestCrear_CamposRequeridos(t *testing.T) {
	uc, _, _ := nuevoEntorno(t)

	_, err := uc.Crear(context.Background(), tecnico, dto.CrearExpedienteRequest{Titulo: "Robo"})
	assert.ErrorIs(t, err, domain.ErrValidacion)

	_, err = uc.Crear(context.Background(), tecnico, dto.CrearExpedienteRequest{NumeroExpediente: "EXP-1", Titulo: "   "})
	assert.ErrorIs(t, err, domain.ErrValidacion)
}

func TestCrear_CoordinadorProhibido(t *testing.T) {
	uc, _, _ := nuevoEntorno(t)

	_, err := uc.Crear(context.Background(), coordinador, dto.CrearExpedienteRequest{
		NumeroExpediente: "EXP-2024-001",
		Titulo:           "Robo",
	})
	assert.ErrorIs(t, err, domain.ErrProhibido)
}

// ──────────────────────────────────────────────────────────────────────────────
// EnviarARevision / Revisar
// ──────────────────────────────────────────────────────────────────────────────

func TestEnviarARevision_SinIndicios(t *testing.T) {
	uc, _, _ := nuevoEntorno(t)
	exp := crearExpediente(t, uc, "EXP-2024-001")

	_, err := uc.EnviarARevision(context.Background(), tecnico, exp.IDExpediente)
	require.ErrorIs(t, err, domain.ErrTransicionInvalida)

	actual, err := uc.GetByID(context.Background(), exp.IDExpediente)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoEnRegistro, actual.IDEstado, "un envío fallido no muta el estado")
}

func TestEnviarARevision_OtroTecnico(t *testing.T) {
	uc, _, indRepo := nuevoEntorno(t)
	exp := crearExpediente(t, uc, "EXP-2024-001")
	agregarIndicio(t, indRepo, exp.IDExpediente, "IND-001")

	_, err := uc.EnviarARevision(context.Background(), otroTecnico, exp.IDExpediente)
	require.ErrorIs(t, err, domain.ErrProhibido)

	actual, err := uc.GetByID(context.Background(), exp.IDExpediente)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoEnRegistro, actual.IDEstado)
}

func TestEnviarARevision_NotFound(t *testing.T) {
	uc, _, _ := nuevoEntorno(t)
	_, err := uc.EnviarARevision(context.Background(), tecnico, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Escenario concreto del flujo feliz: registro → indicio → revisión → aprobación.
func TestFlujoCompleto_Aprobacion(t *testing.T) {
	uc, _, indRepo := nuevoEntorno(t)
	ctx := context.Background()

	exp := crearExpediente(t, uc, "EXP-2024-001")
	agregarIndicio(t, indRepo, exp.IDExpediente, "IND-001")

	enviado, err := uc.EnviarARevision(ctx, tecnico, exp.IDExpediente)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoEnRevision, enviado.IDEstado)
	assert.Equal(t, 1, enviado.TotalIndicios)

	aprobado, err := uc.Revisar(ctx, coordinador, exp.IDExpediente, dto.RevisarRequest{Accion: "APROBAR"})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoAprobado, aprobado.IDEstado)
	assert.NotNil(t, aprobado.FechaRevision)
	assert.Nil(t, aprobado.JustificacionRechazo)
}

// Escenario concreto del ciclo de rechazo y reenvío con historial.
func TestFlujoCompleto_RechazoYReenvio(t *testing.T) {
	uc, _, indRepo := nuevoEntorno(t)
	ctx := context.Background()

	exp := crearExpediente(t, uc, "EXP-2024-002")
	agregarIndicio(t, indRepo, exp.IDExpediente, "IND-001")

	_, err := uc.EnviarARevision(ctx, tecnico, exp.IDExpediente)
	require.NoError(t, err)

	rechazado, err := uc.Revisar(ctx, coordinador, exp.IDExpediente, dto.RevisarRequest{
		Accion:        "RECHAZAR",
		Justificacion: "Falta descripción",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoRechazado, rechazado.IDEstado)
	require.NotNil(t, rechazado.JustificacionRechazo)
	assert.Equal(t, "Falta descripción", *rechazado.JustificacionRechazo)

	// El técnico corrige agregando un segundo indicio y reenvía.
	agregarIndicio(t, indRepo, exp.IDExpediente, "IND-002")
	reenviado, err := uc.EnviarARevision(ctx, tecnico, exp.IDExpediente)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoEnRevision, reenviado.IDEstado)
	assert.Equal(t, 2, reenviado.TotalIndicios)
	require.NotNil(t, reenviado.JustificacionRechazo,
		"la justificación anterior sigue disponible como historial")
	assert.Equal(t, "Falta descripción", *reenviado.JustificacionRechazo)
}

func TestRevisar_RechazoSinJustificacion(t *testing.T) {
	uc, _, indRepo := nuevoEntorno(t)
	ctx := context.Background()

	exp := crearExpediente(t, uc, "EXP-2024-003")
	agregarIndicio(t, indRepo, exp.IDExpediente, "IND-001")
	_, err := uc.EnviarARevision(ctx, tecnico, exp.IDExpediente)
	require.NoError(t, err)

	_, err = uc.Revisar(ctx, coordinador, exp.IDExpediente, dto.RevisarRequest{Accion: "RECHAZAR", Justificacion: "  "})
	require.ErrorIs(t, err, domain.ErrValidacion)

	actual, err := uc.GetByID(ctx, exp.IDExpediente)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoEnRevision, actual.IDEstado, "el estado permanece EN_REVISION")
}

// Dos revisiones sobre el mismo expediente EN_REVISION: exactamente una gana;
// la perdedora observa TransicionInvalida (el estado ya avanzó).
func TestRevisar_Duplicada_UnSoloGanador(t *testing.T) {
	uc, _, indRepo := nuevoEntorno(t)
	ctx := context.Background()

	exp := crearExpediente(t, uc, "EXP-2024-004")
	agregarIndicio(t, indRepo, exp.IDExpediente, "IND-001")
	_, err := uc.EnviarARevision(ctx, tecnico, exp.IDExpediente)
	require.NoError(t, err)

	_, err = uc.Revisar(ctx, coordinador, exp.IDExpediente, dto.RevisarRequest{Accion: "APROBAR"})
	require.NoError(t, err)

	_, err = uc.Revisar(ctx, coordinador, exp.IDExpediente, dto.RevisarRequest{Accion: "RECHAZAR", Justificacion: "tarde"})
	require.ErrorIs(t, err, domain.ErrTransicionInvalida)

	actual, err := uc.GetByID(ctx, exp.IDExpediente)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoAprobado, actual.IDEstado,
		"releer tras la transición confirmada devuelve el estado post-transición")
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros y catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestList_FiltrosInvalidos(t *testing.T) {
	uc, _, _ := nuevoEntorno(t)

	_, err := uc.List(context.Background(), dto.FiltroExpedientesRequest{IDEstado: "99"})
	assert.ErrorIs(t, err, domain.ErrValidacion)

	_, err = uc.List(context.Background(), dto.FiltroExpedientesRequest{FechaInicio: "15/03/2024"})
	assert.ErrorIs(t, err, domain.ErrValidacion)
}

func TestEstados_CatalogoCompleto(t *testing.T) {
	uc, _, _ := nuevoEntorno(t)

	estados := uc.Estados()
	require.Len(t, estados, 4)
	assert.Equal(t, dto.EstadoResponse{IDEstado: 1, NombreEstado: "EN_REGISTRO"}, estados[0])
	assert.Equal(t, dto.EstadoResponse{IDEstado: 4, NombreEstado: "RECHAZADO"}, estados[3])
}
