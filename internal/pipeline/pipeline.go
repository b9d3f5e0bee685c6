// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"payment-insights-go/internal/cache"
	"payment-insights-go/internal/config"
	"payment-insights-go/internal/dataset"
	"payment-insights-go/internal/filter"
	"payment-insights-go/internal/logger"
	"payment-insights-go/internal/processor"
	"payment-insights-go/internal/types"
)

const defaultCacheTimeout = 500 * time.Millisecond

// Service serves dashboards for one loaded table. Identical concurrent
// selections share a single build; results go through the cache when one is
// configured.
type Service struct {
	table   *dataset.Table
	catalog config.Catalog
	cache   *cache.Cache
	group   singleflight.Group
	timeout time.Duration
	log     *logger.Logger
	metrics *Metrics
}

// Option customizes a Service.
type Option func(*Service)

// WithCacheTimeout bounds each cache round-trip.
func WithCacheTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithLogger replaces the default logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics records cache hits and build durations.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService wires a table with its catalog and an optional cache.
func NewService(table *dataset.Table, catalog config.Catalog, c *cache.Cache, opts ...Option) *Service {
	s := &Service{
		table:   table,
		catalog: catalog,
		cache:   c,
		timeout: defaultCacheTimeout,
		log:     logger.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.Component("pipeline")
	return s
}

// Table returns the loaded table.
func (s *Service) Table() *dataset.Table {
	return s.table
}

// Catalog returns the active catalog.
func (s *Service) Catalog() config.Catalog {
	return s.catalog
}

// Dashboard validates sel and returns its dashboard. Cache failures are
// logged and the dashboard is built directly.
func (s *Service) Dashboard(ctx context.Context, sel filter.Selection) (types.Dashboard, error) {
	if err := sel.Validate(); err != nil {
		return types.Dashboard{}, err
	}
	sel = sel.Normalized()

	v, err, _ := s.group.Do(sel.Key(), func() (any, error) {
		return s.cached(ctx, sel), nil
	})
	if err != nil {
		return types.Dashboard{}, err
	}
	return v.(types.Dashboard), nil
}

func (s *Service) cached(ctx context.Context, sel filter.Selection) types.Dashboard {
	build := func() types.Dashboard {
		start := time.Now()
		d := processor.Build(s.table, sel, s.catalog)
		s.metrics.observeBuild(sel, time.Since(start))
		return d
	}
	if !s.cache.Enabled() {
		s.metrics.recordHit(sel, false)
		return build()
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	log := s.log.WithField("selection", sel.Key())
	key, err := s.cache.BuildKey(ctx, "dashboard", s.table.Fingerprint(), sel.Key())
	if err != nil {
		log.WithField("error", err.Error()).Warn("cache unavailable, building uncached")
		s.metrics.recordHit(sel, false)
		return build()
	}

	var d types.Dashboard
	hit, err := s.cache.FetchJSON(ctx, key, &d, func(context.Context) (any, error) {
		return build(), nil
	})
	if err != nil {
		log.WithField("error", err.Error()).Warn("cache unavailable, building uncached")
		s.metrics.recordHit(sel, false)
		return build()
	}
	s.metrics.recordHit(sel, hit)
	log.WithField("hit", hit).Debug("dashboard served")
	return d
}

// Invalidate drops every cached dashboard.
func (s *Service) Invalidate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	ver, err := s.cache.Bump(ctx)
	if err != nil {
		return err
	}
	if s.cache.Enabled() {
		s.log.WithField("version", ver).Info("dashboard cache invalidated")
	}
	return nil
}
