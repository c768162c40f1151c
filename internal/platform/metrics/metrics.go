package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	ResidentsCreated   prometheus.Counter
	ResidentsDeleted   prometheus.Counter
	ValidationFailures *prometheus.CounterVec
	RegistrySize       prometheus.Gauge
	RequestDuration    *prometheus.HistogramVec
}

// New creates all metrics and registers them with reg. Tests pass a fresh
// prometheus.NewRegistry() to avoid duplicate registration panics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ResidentsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "residents_created_total",
			Help: "Total number of residents created in the registry",
		}),
		ResidentsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "residents_deleted_total",
			Help: "Total number of residents deleted from the registry",
		}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "residents_validation_failures_total",
			Help: "Create requests rejected by validation, by offending field",
		}, []string{"field"}),
		RegistrySize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "residents_registry_size",
			Help: "Current number of residents held in memory",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "residents_http_request_duration_seconds",
			Help:    "HTTP request latency by method, route pattern and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// IncrementResidentsCreated increments the created counter by 1
func (m *Metrics) IncrementResidentsCreated() {
	m.ResidentsCreated.Inc()
}

// IncrementResidentsDeleted increments the deleted counter by 1
func (m *Metrics) IncrementResidentsDeleted() {
	m.ResidentsDeleted.Inc()
}

func (m *Metrics) IncrementValidationFailure(field string) {
	m.ValidationFailures.WithLabelValues(field).Inc()
}

func (m *Metrics) SetRegistrySize(count int) {
	m.RegistrySize.Set(float64(count))
}

func (m *Metrics) ObserveRequestDuration(method, route string, status int, d time.Duration) {
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
