// Package main is the entry point for runevault.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/runevault/internal/config"
	"github.com/samdwyer/runevault/internal/service"
	"github.com/samdwyer/runevault/internal/storage/sqlite"
	"github.com/samdwyer/runevault/internal/telemetry"
	"github.com/samdwyer/runevault/internal/yield"
)

func main() {
	os.Exit(run())
}

// run wires the service and dispatches the subcommand. It returns the exit
// code so deferred cleanup runs before the process exits.
func run() int {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}

	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	opts := []service.Option{
		service.WithLogger(logger),
		service.WithEngine(yield.Engine{ComboCap: cfg.ComboCap}),
	}

	if cfg.TracingEnabled() {
		shutdown, err := telemetry.Setup(ctx, cfg.OTelEndpoint)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	} else {
		opts = append(opts, service.WithTracer(telemetry.NoopTracer()))
	}

	if cfg.DBPath != "" {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			log.Printf("Failed to open store: %v", err)
			return 1
		}
		defer store.Close()
		opts = append(opts, service.WithStore(store))
	}

	a := &app{
		svc: service.New(opts...),
		cfg: cfg,
		out: os.Stdout,
	}
	if err := a.run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "runevault: %v\n", err)
		return 1
	}
	return 0
}
