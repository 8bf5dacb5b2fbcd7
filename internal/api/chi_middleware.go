// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/skillcompass/skillcompass/internal/logging"
	"github.com/skillcompass/skillcompass/internal/middleware"
)

// ChiMiddlewareConfig holds the knobs for the security middleware.
type ChiMiddlewareConfig struct {
	// CORSOrigins is the list of allowed origins. ["*"] allows all.
	CORSOrigins []string

	// RateLimitRequests is the number of requests allowed per window.
	RateLimitRequests int

	// RateLimitWindow is the rate limit window duration.
	RateLimitWindow time.Duration

	// RateLimitDisabled turns the limiter into a pass-through.
	RateLimitDisabled bool
}

// ChiMiddleware builds the CORS and rate-limiting middleware used by the
// router from a single config.
type ChiMiddleware struct {
	config ChiMiddlewareConfig
}

// NewChiMiddleware creates the middleware factory.
func NewChiMiddleware(config ChiMiddlewareConfig) *ChiMiddleware {
	if config.RateLimitRequests <= 0 {
		config.RateLimitRequests = 100
	}
	if config.RateLimitWindow <= 0 {
		config.RateLimitWindow = time.Minute
	}
	if len(config.CORSOrigins) == 0 {
		config.CORSOrigins = []string{"*"}
	}
	return &ChiMiddleware{config: config}
}

// CORS returns the CORS middleware.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   m.config.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})
}

// RateLimit returns the per-IP rate limiting middleware. When disabled
// it returns a pass-through so the router wiring stays uniform.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is disabled")
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		m.config.RateLimitRequests,
		m.config.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			WriteError(w, r, http.StatusTooManyRequests, ErrCodeTooManyRequests,
				"Rate limit exceeded, please slow down")
		}),
	)
}

// SecurityHeaders sets conservative browser security headers on every
// response, including the HTML form page.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}
