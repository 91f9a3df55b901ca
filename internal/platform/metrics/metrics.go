package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Motivos de fallback del contenido.
const (
	ReasonNotConfigured = "not_configured"
	ReasonError         = "error"
	ReasonEmpty         = "empty"
	ReasonPanic         = "panic"
)

// Metrics agrupa los colectores del servicio sobre un registry propio
// (no el global), así cada router/test tiene el suyo.
type Metrics struct {
	registry *prometheus.Registry

	contentFallbacks *prometheus.CounterVec
	contentLoad      prometheus.Histogram
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		contentFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petcare",
			Subsystem: "content",
			Name:      "fallback_total",
			Help:      "Veces que testimonials/plans cayeron al contenido embebido.",
		}, []string{"kind", "reason"}),
		contentLoad: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "petcare",
			Subsystem: "content",
			Name:      "load_duration_seconds",
			Help:      "Duración de una carga completa de contenido.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.contentFallbacks, m.contentLoad)
	return m
}

// Los métodos aceptan receptor nil para que las métricas sean opcionales.

func (m *Metrics) ContentFallback(kind, reason string) {
	if m == nil {
		return
	}
	m.contentFallbacks.WithLabelValues(kind, reason).Inc()
}

func (m *Metrics) ContentLoaded(d time.Duration) {
	if m == nil {
		return
	}
	m.contentLoad.Observe(d.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry expone el registry (tests).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
