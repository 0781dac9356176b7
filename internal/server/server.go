package server

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"

	"github.com/swedensai/seo-website/internal/config"
	"github.com/swedensai/seo-website/internal/handlers"
	"github.com/swedensai/seo-website/internal/metrics"
	"github.com/swedensai/seo-website/pkg/apperror"
	"github.com/swedensai/seo-website/pkg/logger"
)

var Module = fx.Module("server",
	fx.Provide(
		NewRateLimiter,
		NewRouter,
	),
	fx.Invoke(StartServer),
)

// Assets holds the embedded static files served under /static/.
type Assets struct {
	FS fs.FS
}

// RouterParams are the dependencies for creating the router
type RouterParams struct {
	fx.In

	Config   *config.Config
	Log      *slog.Logger
	Handlers *handlers.Handlers
	Errors   *apperror.ErrorHandler
	Metrics  *metrics.Metrics
	Limiter  *RateLimiter
	Assets   Assets `optional:"true"`
}

// NewRouter creates the chi router with middleware and every route.
func NewRouter(p RouterParams) http.Handler {
	h := p.Handlers
	log := p.Log.With(logger.Scope("http"))

	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger(log),
		recoverer(log, p.Errors),
		instrument(p.Metrics),
	)

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	if p.Assets.FS != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(p.Assets.FS))))
	}

	r.Get("/health", h.Health)
	if p.Config.MetricsEnabled {
		r.Handle("/metrics", p.Metrics.Handler())
	}

	r.Get("/", h.Landing)
	r.Get("/service", h.Service)

	r.Group(func(r chi.Router) {
		r.Use(p.Limiter.Middleware(p.Errors))

		r.Get("/pricing", h.Pricing)
		r.Post("/pricing", h.Wrap(h.Signup))
		r.Post("/pricing/plan", h.Wrap(h.SelectPlan))

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", h.Dashboard)
			r.Post("/generate-report", h.GenerateReport)
			r.Post("/analyze", h.Analyze)
			r.Get("/content-ideas", h.ContentIdeas)
			r.Get("/reports/{id}/pdf", h.Wrap(h.ReportPDF))
		})
	})

	return r
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, router http.Handler, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting HTTP server",
				slog.String("address", server.Addr),
				slog.String("environment", cfg.Environment),
				slog.String("backend", cfg.API.BaseURL),
			)

			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}
