// ABOUTME: Main entry point for the Web2One API server
// ABOUTME: Loads configuration, wires all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"web2one-api/pkg/app"
	"web2one-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := app.NewLogger(cfg.Log, os.Stdout)
	logger.Info("Starting Web2One API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"provider":   cfg.Generation.Provider,
		"relays":     len(cfg.Fetch.Relays),
	})

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize application", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = application.Serve(ctx)
	stop()
	_ = application.Close()

	if err != nil {
		logger.Error("Server stopped with error", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
}
