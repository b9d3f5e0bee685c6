// Package httpapi exposes the dashboard over HTTP.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"

	"payment-insights-go/internal/logger"
)

// RouterConfig tunes the middleware stack.
type RouterConfig struct {
	ExportRateLimit int
	RequestTimeout  time.Duration
	Production      bool
	// Metrics serves /metrics when set.
	Metrics         http.Handler
}

// NewRouter mounts every endpoint behind the shared middleware.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'none'",
		SSLRedirect:           cfg.Production,
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:         !cfg.Production,
	})

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	rate := cfg.ExportRateLimit
	if rate <= 0 {
		rate = 20
	}

	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		secureMiddleware.Handler,
		requestLogger(h.log),
	)

	r.Get("/healthz", h.handleHealth)
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}
	r.Route("/api", func(api chi.Router) {
		api.Get("/options", h.handleOptions)
		api.Get("/dataset", h.handleDataset)
		api.Get("/dashboard", h.handleDashboard)
		api.Get("/crosstab", h.handleCrossTab)

		api.Group(func(gr chi.Router) {
			gr.Use(httprate.Limit(rate, time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					Problem(w, http.StatusTooManyRequests, "Too Many Requests", "export rate limit reached")
				}),
			))
			gr.Get("/dashboard/export.csv", h.handleCSV)
			gr.Get("/dashboard/export.xlsx", h.handleXLSX)
		})
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		Problem(w, http.StatusNotFound, "Not Found", "")
	})
	return r
}

func requestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.WithRequest(r).
				WithField("status", ww.Status()).
				WithField("duration_ms", time.Since(start).Milliseconds()).
				Info("request handled")
		})
	}
}
