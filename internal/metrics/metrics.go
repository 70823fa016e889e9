package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fallback reasons
const (
	ReasonUnconfigured = "unconfigured"
	ReasonNetwork      = "network"
	ReasonStatus       = "status"
	ReasonMalformed    = "malformed"
)

// Write outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeLocal   = "local"
)

// Metrics owns a private registry so tests can create as many as they like
type Metrics struct {
	reg       *prometheus.Registry
	fallbacks *prometheus.CounterVec
	writes    *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	return &Metrics{
		reg: reg,
		fallbacks: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "cafe_backend_fallbacks_total",
			Help: "Reads answered with bundled sample data.",
		}, []string{"kind", "reason"}),
		writes: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "cafe_backend_writes_total",
			Help: "Write operations by action and outcome.",
		}, []string{"action", "outcome"}),
	}
}

func (m *Metrics) Fallback(kind, reason string) {
	m.fallbacks.WithLabelValues(kind, reason).Inc()
}

func (m *Metrics) Write(action, outcome string) {
	m.writes.WithLabelValues(action, outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// Registry is exposed for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}
