package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"payment-insights-go/internal/filter"
)

// Metrics observes the dashboard cache and build times. A nil Metrics
// records nothing.
type Metrics struct {
	cacheHits     *prometheus.CounterVec
	cacheMisses   *prometheus.CounterVec
	buildDuration *prometheus.HistogramVec
}

// NewMetrics registers the pipeline collectors on reg. Collectors already
// registered by an earlier call are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	labels := []string{"platform", "frequency"}
	m := &Metrics{
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_cache_hits_total",
			Help: "Number of dashboards served from the cache.",
		}, labels),
		cacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_cache_miss_total",
			Help: "Number of dashboards served without a cache hit.",
		}, labels),
		buildDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dashboard_build_duration_seconds",
			Help:    "Duration required to build a dashboard.",
			Buckets: prometheus.DefBuckets,
		}, labels),
	}

	for _, collector := range []prometheus.Collector{m.cacheHits, m.cacheMisses, m.buildDuration} {
		err := reg.Register(collector)
		if err == nil {
			continue
		}
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, err
		}
		switch c := already.ExistingCollector.(type) {
		case *prometheus.CounterVec:
			if collector == m.cacheHits {
				m.cacheHits = c
			} else {
				m.cacheMisses = c
			}
		case *prometheus.HistogramVec:
			m.buildDuration = c
		default:
			return nil, fmt.Errorf("pipeline metrics: unexpected collector type %T", c)
		}
	}
	return m, nil
}

func (m *Metrics) recordHit(sel filter.Selection, hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.cacheHits.WithLabelValues(sel.Platform, sel.Frequency).Inc()
		return
	}
	m.cacheMisses.WithLabelValues(sel.Platform, sel.Frequency).Inc()
}

func (m *Metrics) observeBuild(sel filter.Selection, d time.Duration) {
	if m == nil {
		return
	}
	m.buildDuration.WithLabelValues(sel.Platform, sel.Frequency).Observe(d.Seconds())
}
