package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wilmarbg/dicri-api/internal/application/dto"
	"github.com/wilmarbg/dicri-api/internal/application/expediente"
)

// ExpedienteHandler maneja el ciclo de vida de expedientes.
type ExpedienteHandler struct {
	uc *expediente.ExpedienteUseCase
}

// NewExpedienteHandler construye el handler de expedientes.
func NewExpedienteHandler(uc *expediente.ExpedienteUseCase) *ExpedienteHandler {
	return &ExpedienteHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear expediente (inicia EN_REGISTRO)
// @Tags         expedientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CrearExpedienteRequest  true  "numero_expediente, titulo, descripcion"
// @Success      201   {object}  dto.DataResponse{data=dto.ExpedienteResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/expedientes [post]
func (h *ExpedienteHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearExpedienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), actorDesdeCtx(c), in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar expedientes con filtros opcionales
// @Tags         expedientes
// @Produce      json
// @Security     BearerAuth
// @Param        id_estado     query  int     false  "1..4"
// @Param        fecha_inicio  query  string  false  "2006-01-02"
// @Param        fecha_fin     query  string  false  "2006-01-02"
// @Success      200  {object}  dto.DataResponse{data=[]dto.ExpedienteResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/expedientes [get]
func (h *ExpedienteHandler) List(c *fiber.Ctx) error {
	var in dto.FiltroExpedientesRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos"})
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByID godoc
// @Summary      Consultar un expediente
// @Tags         expedientes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del expediente"
// @Success      200  {object}  dto.DataResponse{data=dto.ExpedienteResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expedientes/{id} [get]
func (h *ExpedienteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// EnviarARevision godoc
// @Summary      Enviar un expediente a revisión
// @Tags         expedientes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del expediente"
// @Success      200  {object}  dto.DataResponse{data=dto.ExpedienteResponse}
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/expedientes/{id}/enviar-revision [post]
func (h *ExpedienteHandler) EnviarARevision(c *fiber.Ctx) error {
	out, err := h.uc.EnviarARevision(c.Context(), actorDesdeCtx(c), c.Params("id"))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Revisar godoc
// @Summary      Aprobar o rechazar un expediente en revisión
// @Tags         expedientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string             true  "ID del expediente"
// @Param        body  body  dto.RevisarRequest true  "accion: APROBAR|RECHAZAR, justificacion (requerida al rechazar)"
// @Success      200   {object}  dto.DataResponse{data=dto.ExpedienteResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/expedientes/{id}/revisar [post]
func (h *ExpedienteHandler) Revisar(c *fiber.Ctx) error {
	var in dto.RevisarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Revisar(c.Context(), actorDesdeCtx(c), c.Params("id"), in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Estados godoc
// @Summary      Catálogo de estados del ciclo de vida
// @Tags         expedientes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DataResponse{data=[]dto.EstadoResponse}
// @Router       /api/expedientes/estados [get]
func (h *ExpedienteHandler) Estados(c *fiber.Ctx) error {
	return c.JSON(dto.OK(h.uc.Estados()))
}
