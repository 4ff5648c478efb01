package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g docs.go -o ../../docs --parseDependency

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"city-lookup/internal/config"

	_ "city-lookup/docs" // Import generated docs
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	app, err := NewApp(cfg, logger)
	if err != nil {
		logger.Error("failed to create app", "error", err)
		os.Exit(1)
	}

	// Stop accepting requests on SIGINT/SIGTERM and let in-flight lookups finish
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting server",
		"addr", cfg.GetServerAddr(),
		"upstream", cfg.Upstream.BaseURL,
		"upstream_timeout", cfg.Upstream.Timeout,
	)
	if err := app.Run(ctx, cfg.GetServerAddr()); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
