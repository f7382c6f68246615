// Package router provides HTTP routing configuration using Chi.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/remiblancher/padsign/internal/api/handler"
	"github.com/remiblancher/padsign/internal/api/middleware"
	"github.com/remiblancher/padsign/internal/api/service"
	"github.com/remiblancher/padsign/internal/engine"
	"github.com/remiblancher/padsign/internal/proxy"
)

// Config holds router configuration.
type Config struct {
	// Services lists enabled services: "api", "proxy", "all".
	Services []string

	// Version is the reported server version.
	Version string

	// Engine is the signing engine handle; nil disables signing.
	Engine engine.Engine

	// ProxyClient is the outbound client used by the fetch forwarder.
	// Nil gets a default.
	ProxyClient *http.Client
}

// HasService checks if a service is enabled.
func (c *Config) HasService(name string) bool {
	for _, s := range c.Services {
		if s == "all" || s == name {
			return true
		}
	}
	return false
}

// New creates a new Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.CORS)

	// Health endpoints (always enabled)
	healthHandler := handler.NewHealthHandler(cfg.Version, cfg.Services, cfg.Engine != nil)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// API routes
	if cfg.HasService("api") {
		signService := service.NewSignService(cfg.Engine)
		signHandler := handler.NewSignHandler(signService)

		r.Route("/api/v1", func(r chi.Router) {
			r.Post("/inspect", signHandler.Inspect)
			r.Post("/validate", signHandler.Validate)
			r.Post("/sign", signHandler.Sign)
		})
	}

	// Fetch forwarder
	if cfg.HasService("proxy") {
		fetchHandler := proxy.New(cfg.ProxyClient)
		r.Get("/fetch", fetchHandler.Fetch)
		r.Post("/fetch", fetchHandler.Fetch)
	}

	return r
}
