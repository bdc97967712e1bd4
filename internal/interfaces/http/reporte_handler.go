package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wilmarbg/dicri-api/internal/application/dto"
	"github.com/wilmarbg/dicri-api/internal/application/reporte"
)

// ReporteHandler maneja estadísticas y reportes de expedientes.
type ReporteHandler struct {
	uc *reporte.ReporteUseCase
}

// NewReporteHandler construye el handler de reportes.
func NewReporteHandler(uc *reporte.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// Estadisticas godoc
// @Summary      Conteos de expedientes por estado
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DataResponse{data=dto.EstadisticasResponse}
// @Router       /api/expedientes/estadisticas [get]
func (h *ReporteHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estadisticas(c.Context())
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Reporte godoc
// @Summary      Reporte de expedientes por rango de fechas
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        fecha_inicio  query  string  true   "2006-01-02"
// @Param        fecha_fin     query  string  true   "2006-01-02"
// @Param        id_estado     query  int     false  "1..4"
// @Success      200  {object}  dto.DataResponse{data=[]dto.FilaReporteResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/expedientes/reporte [get]
func (h *ReporteHandler) Reporte(c *fiber.Ctx) error {
	var in dto.ReporteRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos"})
	}
	out, err := h.uc.Reporte(c.Context(), in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// ReportePDF godoc
// @Summary      Reporte de expedientes en PDF
// @Tags         reportes
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        fecha_inicio  query  string  true   "2006-01-02"
// @Param        fecha_fin     query  string  true   "2006-01-02"
// @Param        id_estado     query  int     false  "1..4"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/expedientes/reporte/pdf [get]
func (h *ReporteHandler) ReportePDF(c *fiber.Ctx) error {
	var in dto.ReporteRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos"})
	}
	pdfBytes, err := h.uc.ReportePDF(c.Context(), in)
	if err != nil {
		return respuestaError(c, err)
	}
	nombre := "reporte-expedientes-" + time.Now().Format("20060102-150405") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(pdfBytes)
}
