// Package metrics provides Prometheus metrics for the extremes service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Report outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithHistogramBuckets sets custom buckets for the duration histograms.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.buckets = buckets
		}
	}
}

// WithRegistry sets the registry metrics are registered on and served from.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}

// Manager owns the service metrics. A nil *Manager is valid and records nothing.
type Manager struct {
	namespace string
	buckets   []float64
	registry  *prometheus.Registry

	reportsBuilt    *prometheus.CounterVec
	reportDuration  prometheus.Histogram
	engineDuration  prometheus.Histogram
	pointsRetrieved prometheus.Counter
	pointsIngested  prometheus.Counter
	catalogLookups  *prometheus.CounterVec
}

// NewManager registers every metric on a fresh registry unless WithRegistry
// supplies one.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "extremes",
		buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	auto := promauto.With(m.registry)

	m.reportsBuilt = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "report",
		Name:      "built_total",
		Help:      "Extremes reports requested, by outcome",
	}, []string{"outcome"})

	m.reportDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "report",
		Name:      "duration_seconds",
		Help:      "End-to-end report build time including retrieval",
		Buckets:   m.buckets,
	})

	m.engineDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "engine",
		Name:      "build_duration_seconds",
		Help:      "Time spent computing min/max summaries",
		Buckets:   m.buckets,
	})

	m.pointsRetrieved = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "store",
		Name:      "points_retrieved_total",
		Help:      "Points read from the series store",
	})

	m.pointsIngested = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "store",
		Name:      "points_ingested_total",
		Help:      "Points written through the ingestion API",
	})

	m.catalogLookups = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "catalog",
		Name:      "lookups_total",
		Help:      "Series description lookups, by cache result",
	}, []string{"result"})

	return m
}

// Registry returns the registry backing the manager.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveReport records one report request.
func (m *Manager) ObserveReport(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.reportsBuilt.WithLabelValues(outcome).Inc()
	m.reportDuration.Observe(elapsed.Seconds())
}

// ObserveEngineBuild records one engine Build.
func (m *Manager) ObserveEngineBuild(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.engineDuration.Observe(elapsed.Seconds())
}

// AddPointsRetrieved counts points read from the store.
func (m *Manager) AddPointsRetrieved(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.pointsRetrieved.Add(float64(n))
}

// AddPointsIngested counts points written through ingestion.
func (m *Manager) AddPointsIngested(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.pointsIngested.Add(float64(n))
}

// CatalogLookup counts description lookups served from cache (hit) or store (miss).
func (m *Manager) CatalogLookup(hits, misses int) {
	if m == nil {
		return
	}
	if hits > 0 {
		m.catalogLookups.WithLabelValues("hit").Add(float64(hits))
	}
	if misses > 0 {
		m.catalogLookups.WithLabelValues("miss").Add(float64(misses))
	}
}
