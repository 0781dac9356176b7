package main

import (
	"embed"
	"io/fs"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/swedensai/seo-website/internal/config"
	"github.com/swedensai/seo-website/internal/dashboard"
	"github.com/swedensai/seo-website/internal/handlers"
	"github.com/swedensai/seo-website/internal/metrics"
	"github.com/swedensai/seo-website/internal/server"
	"github.com/swedensai/seo-website/internal/signup"
	"github.com/swedensai/seo-website/pkg/logger"
	"github.com/swedensai/seo-website/pkg/seoapi"
)

//go:embed static
var staticFS embed.FS

func main() {
	// .env.local overrides .env; variables already set in the environment win over .env
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatal("Failed to access static files:", err)
	}

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),
		fx.Supply(server.Assets{FS: staticSub}),

		// Infrastructure
		logger.Module,
		config.Module,
		metrics.Module,
		seoapi.Module,

		// Domain
		dashboard.Module,
		signup.Module,

		// HTTP
		handlers.Module,
		server.Module,
	).Run()
}
