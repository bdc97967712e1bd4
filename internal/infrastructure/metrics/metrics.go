package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contadores Prometheus de la aplicación. Un puntero nil es válido y
// no registra nada, lo que permite usar los casos de uso en tests sin
// registro global.
type Metrics struct {
	ExpedientesCreados prometheus.Counter
	IndiciosCreados    prometheus.Counter
	Transiciones       *prometheus.CounterVec
}

// New crea y registra las métricas en el registro por defecto.
func New() *Metrics {
	return &Metrics{
		ExpedientesCreados: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dicri_expedientes_creados_total",
			Help: "Total de expedientes registrados",
		}),
		IndiciosCreados: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dicri_indicios_creados_total",
			Help: "Total de indicios registrados",
		}),
		Transiciones: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dicri_transiciones_total",
			Help: "Transiciones de ciclo de vida aplicadas, por evento",
		}, []string{"evento"}),
	}
}

// IncExpedienteCreado incrementa el contador de expedientes.
func (m *Metrics) IncExpedienteCreado() {
	if m != nil {
		m.ExpedientesCreados.Inc()
	}
}

// IncIndicioCreado incrementa el contador de indicios.
func (m *Metrics) IncIndicioCreado() {
	if m != nil {
		m.IndiciosCreados.Inc()
	}
}

// IncTransicion incrementa el contador del evento aplicado.
func (m *Metrics) IncTransicion(evento string) {
	if m != nil {
		m.Transiciones.WithLabelValues(evento).Inc()
	}
}
