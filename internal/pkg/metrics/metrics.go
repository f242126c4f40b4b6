package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the dashboard on a private registry
type Metrics struct {
	registry     *prometheus.Registry
	transitions  *prometheus.CounterVec
	exports      *prometheus.CounterVec
	exportedRows prometheus.Counter
	requests     *prometheus.CounterVec
	wsClients    prometheus.Gauge
}

// New creates and registers the dashboard collectors
func New(appName string) *Metrics {
	constLabels := prometheus.Labels{"app": appName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "dbdashboard",
			Name:        "view_transitions_total",
			Help:        "View state transitions applied, by event.",
			ConstLabels: constLabels,
		}, []string{"event"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "dbdashboard",
			Name:        "audit_exports_total",
			Help:        "Audit log CSV exports, by channel.",
			ConstLabels: constLabels,
		}, []string{"channel"}),
		exportedRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "dbdashboard",
			Name:        "audit_exported_rows_total",
			Help:        "Audit log entries written to CSV exports.",
			ConstLabels: constLabels,
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "dbdashboard",
			Name:        "http_requests_total",
			Help:        "HTTP requests served, by method, route and status.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		wsClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "dbdashboard",
			Name:        "websocket_clients",
			Help:        "Connected snapshot WebSocket clients.",
			ConstLabels: constLabels,
		}),
	}

	m.registry.MustRegister(m.transitions, m.exports, m.exportedRows, m.requests, m.wsClients)
	return m
}

// ObserveTransition counts a view state transition
func (m *Metrics) ObserveTransition(event string) {
	m.transitions.WithLabelValues(event).Inc()
}

// ObserveExport counts an audit log export of rows entries
func (m *Metrics) ObserveExport(channel string, rows int) {
	m.exports.WithLabelValues(channel).Inc()
	m.exportedRows.Add(float64(rows))
}

// ObserveRequest counts a served HTTP request
func (m *Metrics) ObserveRequest(method, route, status string) {
	m.requests.WithLabelValues(method, route, status).Inc()
}

// SetWebSocketClients records the number of connected WebSocket clients
func (m *Metrics) SetWebSocketClients(n int) {
	m.wsClients.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
