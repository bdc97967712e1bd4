package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wilmarbg/dicri-api/internal/application/dto"
	"github.com/wilmarbg/dicri-api/internal/application/indicio"
)

// IndicioHandler maneja los indicios adjuntos a expedientes.
type IndicioHandler struct {
	uc *indicio.IndicioUseCase
}

// NewIndicioHandler construye el handler de indicios.
func NewIndicioHandler(uc *indicio.IndicioUseCase) *IndicioHandler {
	return &IndicioHandler{uc: uc}
}

// Crear godoc
// @Summary      Registrar un indicio en un expediente editable
// @Tags         indicios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CrearIndicioRequest  true  "id_expediente, codigo_indicio, id_tipo_indicio, descripcion, atributos físicos"
// @Success      201   {object}  dto.DataResponse{data=dto.IndicioResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/indicios [post]
func (h *IndicioHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearIndicioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Agregar(c.Context(), actorDesdeCtx(c), in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// ListByExpediente godoc
// @Summary      Listar los indicios de un expediente
// @Tags         indicios
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del expediente"
// @Success      200  {object}  dto.DataResponse{data=[]dto.IndicioResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/indicios/expediente/{id} [get]
func (h *IndicioHandler) ListByExpediente(c *fiber.Ctx) error {
	out, err := h.uc.ListarPorExpediente(c.Context(), c.Params("id"))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Eliminar godoc
// @Summary      Eliminar un indicio de un expediente editable
// @Tags         indicios
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del indicio"
// @Success      204  "sin contenido"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/indicios/{id} [delete]
func (h *IndicioHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), actorDesdeCtx(c), c.Params("id")); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Tipos godoc
// @Summary      Catálogo de tipos de indicio
// @Tags         indicios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DataResponse{data=[]dto.TipoIndicioResponse}
// @Router       /api/indicios/tipos [get]
func (h *IndicioHandler) Tipos(c *fiber.Ctx) error {
	return c.JSON(dto.OK(h.uc.Tipos()))
}
