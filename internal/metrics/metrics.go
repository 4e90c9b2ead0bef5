package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	renders       *prometheus.CounterVec
	renderLatency prometheus.Observer
	archived      prometheus.Counter
	ingested      prometheus.Counter
	streamClients prometheus.Gauge
}

// New registers the dashboard collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	renders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_renders_total",
		Help: "Dashboards rendered, by view.",
	}, []string{"view"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dashboard_render_seconds",
		Help:    "Time spent generating and composing one dashboard.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
	})
	archived := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "insight_reports_archived_total",
		Help: "Insight reports written to the archive.",
	})
	ingested := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ingest_samples_total",
		Help: "Real-time samples received over MQTT.",
	})
	clients := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dashboard_stream_clients",
		Help: "Websocket clients currently subscribed to the live stream.",
	})

	reg.MustRegister(renders, latency, archived, ingested, clients)

	return &Metrics{
		renders:       renders,
		renderLatency: latency,
		archived:      archived,
		ingested:      ingested,
		streamClients: clients,
	}
}

// Nop returns metrics bound to a throwaway registry.
func Nop() *Metrics { return New(prometheus.NewRegistry()) }

func (m *Metrics) ObserveRender(view string, d time.Duration) {
	m.renders.WithLabelValues(view).Inc()
	m.renderLatency.Observe(d.Seconds())
}

func (m *Metrics) IncArchived()           { m.archived.Inc() }
func (m *Metrics) IncIngested()           { m.ingested.Inc() }
func (m *Metrics) SetStreamClients(n int) { m.streamClients.Set(float64(n)) }
