package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wilmarbg/dicri-api/internal/application/auth"
	"github.com/wilmarbg/dicri-api/internal/application/dto"
)

// AuthHandler maneja login y verificación de sesión.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "usuario, password"
// @Success      200   {object}  dto.DataResponse{data=dto.LoginResponse}
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Verify godoc
// @Summary      Verificar el token y devolver el usuario autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DataResponse{data=dto.UsuarioResponse}
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/verify [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	out, err := h.uc.GetUsuario(c.Context(), GetUserID(c))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OK(out))
}
