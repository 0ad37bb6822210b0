// Package server assembles the catalogd HTTP surface: Echo routing and
// middleware, the Huma API and the operational endpoints.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/catalog-browser/internal/api/handlers"
	"github.com/donaldgifford/catalog-browser/internal/api/middleware"
	"github.com/donaldgifford/catalog-browser/internal/config"
)

// Server is the catalogd HTTP server.
type Server struct {
	echo *echo.Echo
	api  huma.API
	cfg  config.ServerConfig
	log  *slog.Logger
}

// New builds the router. version is reported in the OpenAPI document.
func New(cfg config.ServerConfig, catalog handlers.Catalog, version string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	e.Use(echo.WrapMiddleware(otelhttp.NewMiddleware("catalogd")))
	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(catalog)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("catalogd", version))
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(catalog))
	handlers.RegisterCategoryRoutes(api, handlers.NewCategoriesHandler(catalog))

	return &Server{echo: e, api: api, cfg: cfg, log: log}
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// API returns the Huma API, mainly for OpenAPI export.
func (s *Server) API() huma.API {
	return s.api
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
}

// Run serves until ctx is cancelled, then shuts down gracefully within
// shutdownTimeout.
func (s *Server) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting server", "addr", s.Addr())
		if err := s.echo.Start(s.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	s.log.Info("server stopped")
	return nil
}
