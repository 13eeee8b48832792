// FitScout - Fitness Venue Discovery and Matching Engine
// Copyright 2026 FitScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fitscout/fitscout

// Package main is the entry point for the FitScout server.
//
// FitScout matches people to fitness venues: free-text search with
// relevance ranking, a rule-based chat assistant, and preference-driven
// recommendations over a curated venue catalog. Everything is served
// from memory; there is no external datastore.
//
// # Startup Order
//
//  1. Configuration: Koanf v2 layered sources (defaults, YAML file,
//     FITSCOUT_* environment variables)
//  2. Logging: zerolog, JSON or console format
//  3. Catalog and matching engine
//  4. HTTP server under a suture supervision tree
//
// # Configuration
//
// Every setting has a working default; the server starts with no
// configuration at all. Common overrides:
//
//	export FITSCOUT_SERVER_PORT=9090
//	export FITSCOUT_LOGGING_LEVEL=debug
//	export FITSCOUT_LOGGING_FORMAT=console
//	export FITSCOUT_RATE_LIMIT_DISABLED=true
//	./fitscout
//
// # Signal Handling
//
// SIGINT and SIGTERM trigger graceful shutdown: the server stops
// accepting connections and drains in-flight requests, bounded by
// server.shutdown_timeout.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fitscout/fitscout/internal/api"
	"github.com/fitscout/fitscout/internal/catalog"
	"github.com/fitscout/fitscout/internal/config"
	"github.com/fitscout/fitscout/internal/logging"
	"github.com/fitscout/fitscout/internal/match"
	"github.com/fitscout/fitscout/internal/supervisor"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config errors are logged with the default logger since the
		// configured one is not available yet.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting FitScout")

	cat := catalog.New()
	logging.Info().Int("venues", cat.Len()).Msg("Venue catalog loaded")

	engine := match.NewEngine(cat, match.Config{
		DefaultLimit:        cfg.Engine.DefaultLimit,
		MaxLimit:            cfg.Engine.MaxLimit,
		ChatRelatedLimit:    cfg.Engine.ChatRelatedLimit,
		ContentWeight:       cfg.Engine.ContentWeight,
		CollaborativeWeight: cfg.Engine.CollaborativeWeight,
		PopularityWeight:    cfg.Engine.PopularityWeight,
	}, logging.With().Logger())

	router := api.NewRouter(cfg, cat, engine, version)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// sutureslog wants a slog.Logger; bridge it to zerolog.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(supervisor.NewHTTPService(server, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain the error channel so shutdown errors are not lost.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("FitScout stopped gracefully")
}
