// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

// Package metrics defines the Prometheus metrics for SkillCompass and
// small helpers for recording them. Metrics are registered once at
// package load via promauto and exposed at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequestsTotal counts HTTP requests by method, path, and status.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillcompass_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	// APIRequestDuration tracks request latency by method and path.
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skillcompass_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// APIActiveRequests gauges in-flight requests.
	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "skillcompass_api_active_requests",
			Help: "Number of API requests currently being processed",
		},
	)

	// RecommendationsGenerated counts recommendations produced per request,
	// labeled by the user's derived level.
	RecommendationsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillcompass_recommendations_generated_total",
			Help: "Total number of course recommendations generated",
		},
		[]string{"user_level"},
	)

	// MatchScoreDistribution tracks the distribution of match scores
	// across all scored recommendations.
	MatchScoreDistribution = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "skillcompass_match_score",
			Help:    "Distribution of recommendation match scores",
			Buckets: []float64{20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)

	// ProfileRejections counts profile submissions rejected by validation.
	ProfileRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skillcompass_profile_rejections_total",
			Help: "Total number of profile submissions rejected by validation",
		},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, path, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, path, status).Inc()
	APIRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordRecommendations records a generated recommendation set.
func RecordRecommendations(userLevel string, scores []int) {
	RecommendationsGenerated.WithLabelValues(userLevel).Add(float64(len(scores)))
	for _, s := range scores {
		MatchScoreDistribution.Observe(float64(s))
	}
}

// RecordProfileRejection records a profile submission that failed validation.
func RecordProfileRejection() {
	ProfileRejections.Inc()
}

// TrackActiveRequest increments the in-flight gauge and returns a
// function that decrements it.
//
//	defer metrics.TrackActiveRequest()()
func TrackActiveRequest() func() {
	APIActiveRequests.Inc()
	return func() {
		APIActiveRequests.Dec()
	}
}
