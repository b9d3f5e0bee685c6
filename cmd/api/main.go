package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"payment-insights-go/internal/cache"
	"payment-insights-go/internal/config"
	"payment-insights-go/internal/dataset"
	"payment-insights-go/internal/httpapi"
	"payment-insights-go/internal/logger"
	"payment-insights-go/internal/pipeline"
	"payment-insights-go/internal/source"
)

func main() {
	_ = godotenv.Load() // loads .env

	cfg, err := config.Load()
	if err != nil {
		logger.New().WithError(err).Fatal("invalid configuration")
	}
	log := logger.NewWithOptions(cfg.LoggerOptions())
	log.WithField("service", "payment-insights-go").Info("starting service")

	catalog, err := config.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		log.WithError(err).Fatal("invalid catalog")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithField("dataset_path", cfg.DatasetPath).WithField("dataset_url", cfg.DatasetURL).Info("loading dataset")
	table, err := source.Open(ctx, cfg.DatasetPath, cfg.DatasetURL, cfg.DatasetFetchTimeout)
	if err != nil {
		log.WithError(err).Fatal("failed to load dataset")
	}
	summary := dataset.Describe(table)
	log.WithField("responses", summary.TotalResponses).
		WithField("fingerprint", summary.Fingerprint).
		Info("dataset loaded")

	var dashCache *cache.Cache
	if cfg.CacheEnabled() {
		client, err := cache.New(ctx, cfg.RedisAddr)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, dashboards will not be cached")
		} else {
			defer client.Close()
			dashCache = cache.NewCache(client, cfg.CacheTTL)
		}
	}

	registry := prometheus.NewRegistry()
	metrics, err := pipeline.NewMetrics(registry)
	if err != nil {
		log.WithError(err).Fatal("metrics registration failed")
	}

	svc := pipeline.NewService(table, catalog, dashCache, pipeline.WithLogger(log), pipeline.WithMetrics(metrics))
	// catalog changes are not part of the cache key
	if err := svc.Invalidate(ctx); err != nil {
		log.WithError(err).Warn("cache invalidation failed")
	}

	router := httpapi.NewRouter(httpapi.NewHandler(svc, log), httpapi.RouterConfig{
		ExportRateLimit: cfg.ExportRateLimit,
		RequestTimeout:  cfg.RequestTimeout,
		Production:      cfg.Environment == "production",
		Metrics:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("shutdown failed")
		}
	}()

	log.WithField("addr", srv.Addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("server terminated")
	}
	log.Info("server stopped")
}
