// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/skillcompass/skillcompass/internal/middleware"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return SetupChi(RouterConfig{
		Handlers: newTestHandlers(t),
		Middleware: NewChiMiddleware(ChiMiddlewareConfig{
			CORSOrigins:       []string{"*"},
			RateLimitRequests: 1000,
			RateLimitWindow:   time.Minute,
		}),
	})
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/api/v1/courses", "", http.StatusOK},
		{http.MethodGet, "/api/v1/profiles/samples", "", http.StatusOK},
		{http.MethodGet, "/api/v1/health", "", http.StatusOK},
		{http.MethodGet, "/api/v1/health/live", "", http.StatusOK},
		{http.MethodGet, "/api/v1/health/ready", "", http.StatusOK},
		{http.MethodPost, "/api/v1/recommendations", `{"technical_skills":"python"}`, http.StatusOK},
		{http.MethodGet, "/api/v1/nope", "", http.StatusNotFound},
		{http.MethodDelete, "/api/v1/courses", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != tt.want {
				t.Errorf("status = %d, want %d, body: %s", rr.Code, tt.want, rr.Body.String())
			}
		})
	}
}

func TestRouterSetsRequestID(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if rr.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected X-Request-ID on response")
	}
}

func TestRouterSetsSecurityHeaders(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rr.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
	if got := rr.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q, want DENY", got)
	}
}

func TestRouterNotFoundEnvelope(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/missing", nil))

	resp := decodeResponse(t, rr)
	if resp.Success || resp.Error == nil || resp.Error.Code != ErrCodeNotFound {
		t.Errorf("response = %+v, want NOT_FOUND envelope", resp)
	}
}

func TestRateLimitEnforced(t *testing.T) {
	router := SetupChi(RouterConfig{
		Handlers: newTestHandlers(t),
		Middleware: NewChiMiddleware(ChiMiddlewareConfig{
			RateLimitRequests: 2,
			RateLimitWindow:   time.Minute,
		}),
	})

	var last int
	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		req.RemoteAddr = "10.1.2.3:5000"
		router.ServeHTTP(rr, req)
		last = rr.Code
	}

	if last != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want 429", last)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	router := SetupChi(RouterConfig{
		Handlers: newTestHandlers(t),
		Middleware: NewChiMiddleware(ChiMiddlewareConfig{
			RateLimitRequests: 1,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
		}),
	})

	for i := 0; i < 5; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		req.RemoteAddr = "10.1.2.3:5000"
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d status = %d with limiter disabled", i, rr.Code)
		}
	}
}
