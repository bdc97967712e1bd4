package expediente

import (
	"context"

	"github.com/wilmarbg/dicri-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la evaluación de guardas y la
// escritura de una transición compartan el mismo límite transaccional: o todo
// se confirma, o nada se escribe.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		expRepo repository.ExpedienteRepository,
		indRepo repository.IndicioRepository,
	) error) error
}

// Recorder puerto de métricas del motor. La implementación concreta vive en
// infraestructura; nil deshabilita la instrumentación.
type Recorder interface {
	IncExpedienteCreado()
	IncTransicion(evento string)
}
