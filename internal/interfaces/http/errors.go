package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wilmarbg/dicri-api/internal/application/dto"
	"github.com/wilmarbg/dicri-api/internal/domain"
)

// respuestaError traduce un error de dominio a su estatus HTTP y cuerpo
// {code, message}. Los errores de dominio vienen envueltos con %w, por
// eso se resuelve con errors.Is y no por igualdad.
func respuestaError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidacion):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNoAutenticado), errors.Is(err, domain.ErrUsuarioNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrProhibido):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrNumeroExpedienteDuplicado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EXPEDIENTE_DUPLICADO", Message: err.Error()})
	case errors.Is(err, domain.ErrCodigoIndicioDuplicado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INDICIO_DUPLICADO", Message: err.Error()})
	case errors.Is(err, domain.ErrTransicionInvalida):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "TRANSICION_INVALIDA", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
