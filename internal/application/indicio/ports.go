package indicio

import (
	"context"

	"github.com/wilmarbg/dicri-api/internal/domain/repository"
)

// TxRunner misma garantía transaccional que en el motor de expedientes:
// agregar o eliminar un indicio bloquea la fila del expediente padre, de modo
// que una revisión concurrente no puede intercalarse entre la guarda de
// estado y la escritura.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		expRepo repository.ExpedienteRepository,
		indRepo repository.IndicioRepository,
	) error) error
}

// Recorder puerto de métricas; nil deshabilita la instrumentación.
type Recorder interface {
	IncIndicioCreado()
}
