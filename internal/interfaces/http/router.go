package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wilmarbg/dicri-api/internal/application/auth"
	"github.com/wilmarbg/dicri-api/internal/application/expediente"
	"github.com/wilmarbg/dicri-api/internal/application/indicio"
	"github.com/wilmarbg/dicri-api/internal/application/reporte"
	"github.com/wilmarbg/dicri-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ExpedienteUC *expediente.ExpedienteUseCase
	IndicioUC    *indicio.IndicioUseCase
	ReporteUC    *reporte.ReporteUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público, verify requiere token.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/verify", AuthMiddleware(deps.JWTSecret), authHandler.Verify)

	// Rutas protegidas (requieren Bearer Token).
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// El registro queda restringido por rol en la ruta; el dominio vuelve a
	// verificar capacidades y propiedad dentro de la transacción.
	puedeRegistrar := RequireRole(entity.RolTecnico, entity.RolAdministrador)
	puedeRevisar := RequireRole(entity.RolCoordinador, entity.RolAdministrador)

	// Expedientes (protegido). Las rutas fijas van antes de /:id.
	expedientes := protected.Group("/expedientes")
	expedienteHandler := NewExpedienteHandler(deps.ExpedienteUC)
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	expedientes.Get("/", expedienteHandler.List)
	expedientes.Post("/", puedeRegistrar, expedienteHandler.Crear)
	expedientes.Get("/estadisticas", reporteHandler.Estadisticas)
	expedientes.Get("/estados", expedienteHandler.Estados)
	expedientes.Get("/reporte", reporteHandler.Reporte)
	expedientes.Get("/reporte/pdf", reporteHandler.ReportePDF)
	expedientes.Get("/:id", expedienteHandler.GetByID)
	expedientes.Post("/:id/enviar-revision", puedeRegistrar, expedienteHandler.EnviarARevision)
	expedientes.Post("/:id/revisar", puedeRevisar, expedienteHandler.Revisar)

	// Indicios (protegido)
	indicios := protected.Group("/indicios")
	indicioHandler := NewIndicioHandler(deps.IndicioUC)
	indicios.Get("/tipos", indicioHandler.Tipos)
	indicios.Get("/expediente/:id", indicioHandler.ListByExpediente)
	indicios.Post("/", puedeRegistrar, indicioHandler.Crear)
	indicios.Delete("/:id", puedeRegistrar, indicioHandler.Eliminar)
}
