package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"city-lookup/internal/config"
	"city-lookup/internal/form"
	"city-lookup/internal/lookup"
	"city-lookup/internal/middleware"
	"city-lookup/internal/registry"

	"github.com/gin-gonic/gin"
)

const (
	sessionTTL        = 24 * time.Hour
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// App encapsulates application dependencies
type App struct {
	router        *gin.Engine
	logger        *slog.Logger
	lookupService lookup.Service
	form          *form.Form
	cfg           *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	return newApp(cfg, logger, lookup.NewLookupService(cfg, logger))
}

func newApp(cfg *config.Config, logger *slog.Logger, lookupService lookup.Service) (*App, error) {
	// A broken registry entry would only surface as a malformed upstream URL
	if err := registry.Validate(); err != nil {
		return nil, fmt.Errorf("city registry is invalid: %w", err)
	}

	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics())

	app := &App{
		router:        router,
		logger:        logger,
		lookupService: lookupService,
		form:          form.New(lookupService, form.NewStore(sessionTTL), logger),
		cfg:           cfg,
	}

	logger.Info("application initialized", "cities", len(registry.Names()))

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run listens on addr and serves until ctx is cancelled
func (app *App) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return app.Serve(ctx, ln)
}

// Serve handles requests on ln until ctx is cancelled, then drains in-flight
// requests for up to shutdownTimeout.
func (app *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           app.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
