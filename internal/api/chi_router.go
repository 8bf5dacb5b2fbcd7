// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skillcompass/skillcompass/internal/middleware"
)

// RouterConfig gathers everything SetupChi needs.
type RouterConfig struct {
	Handlers   *Handlers
	Middleware *ChiMiddleware
}

// SetupChi builds the full HTTP router: the form page at the root, the
// versioned JSON API under /api/v1, and the Prometheus scrape endpoint.
func SetupChi(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(SecurityHeaders)
	r.Use(cfg.Middleware.CORS())

	r.Get("/", cfg.Handlers.Index)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Prometheus)
		r.Use(cfg.Middleware.RateLimit())

		r.Post("/recommendations", cfg.Handlers.Recommend)
		r.Get("/courses", cfg.Handlers.Courses)
		r.Get("/profiles/samples", cfg.Handlers.SampleProfiles)

		r.Get("/health", cfg.Handlers.Health)
		r.Get("/health/live", cfg.Handlers.Live)
		r.Get("/health/ready", cfg.Handlers.Ready)
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		WriteError(w, req, http.StatusNotFound, ErrCodeNotFound, "resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		WriteError(w, req, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "method not allowed")
	})

	return r
}
