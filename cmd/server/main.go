// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

// Package main is the entry point for the SkillCompass server.
//
// SkillCompass recommends courses from a curated catalog based on a
// user's skills, experience, and target domain, and organizes the
// matches into a short/medium/long-term learning plan.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered settings from env vars, config file, and
//     built-in defaults (Koanf v2, highest priority wins)
//  2. Catalog: the embedded 25-course catalog, or a YAML catalog file
//     when CATALOG_PATH points at one
//  3. Recommender: scorer and ranker built from the recommend config
//  4. HTTP server: form page, versioned JSON API, and /metrics,
//     supervised by a suture tree with restart backoff
//
// # Configuration
//
// Common environment variables:
//   - HTTP_HOST, HTTP_PORT: listen address (default 0.0.0.0:8080)
//   - CATALOG_PATH: optional YAML catalog replacing the embedded one
//   - RECOMMEND_MIN_SCORE, RECOMMEND_TOP_N: ranking knobs
//   - LOG_LEVEL, LOG_FORMAT: zerolog settings
//   - CORS_ORIGINS, RATE_LIMIT_REQUESTS, DISABLE_RATE_LIMIT
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting connections and waits for in-flight requests up to the
// configured shutdown timeout.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/skillcompass/skillcompass/internal/api"
	"github.com/skillcompass/skillcompass/internal/catalog"
	"github.com/skillcompass/skillcompass/internal/config"
	"github.com/skillcompass/skillcompass/internal/logging"
	"github.com/skillcompass/skillcompass/internal/recommend"
	"github.com/skillcompass/skillcompass/internal/supervisor"
	"github.com/skillcompass/skillcompass/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		// Config errors fall back to the default logger.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting SkillCompass")

	courses, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load course catalog")
	}
	if cfg.Catalog.Path != "" {
		logging.Info().Str("path", cfg.Catalog.Path).Int("courses", len(courses)).Msg("Catalog loaded from file")
	} else {
		logging.Info().Int("courses", len(courses)).Msg("Using embedded catalog")
	}

	scorerCfg := recommend.DefaultConfig()
	scorerCfg.SkillWeight = cfg.Recommend.SkillWeight
	scorerCfg.DomainBonus = cfg.Recommend.DomainBonus
	scorer := recommend.NewScorer(scorerCfg)
	ranker := recommend.NewRanker(scorer, cfg.Recommend.MinScore, cfg.Recommend.TopN)

	handlers := api.NewHandlers(courses, ranker)
	router := api.SetupChi(api.RouterConfig{
		Handlers: handlers,
		Middleware: api.NewChiMiddleware(api.ChiMiddlewareConfig{
			CORSOrigins:       cfg.Security.CORSOrigins,
			RateLimitRequests: cfg.Security.RateLimitReqs,
			RateLimitWindow:   cfg.Security.RateLimitWindow,
			RateLimitDisabled: cfg.Security.RateLimitDisabled,
		}),
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog.
	tree, err := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", cfg.Server.Addr()).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
