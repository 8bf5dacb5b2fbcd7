// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/skillcompass/skillcompass/internal/catalog"
	"github.com/skillcompass/skillcompass/internal/logging"
	"github.com/skillcompass/skillcompass/internal/metrics"
	"github.com/skillcompass/skillcompass/internal/recommend"
	"github.com/skillcompass/skillcompass/internal/validation"
)

// Handlers bundles the HTTP handlers with their shared read-only state:
// the loaded catalog and the configured ranker. Both are safe for
// concurrent use without locking because nothing mutates them after
// construction.
type Handlers struct {
	courses []catalog.Course
	ranker  *recommend.Ranker
	caps    recommend.PathCaps
}

// NewHandlers creates the handler set.
func NewHandlers(courses []catalog.Course, ranker *recommend.Ranker) *Handlers {
	return &Handlers{
		courses: courses,
		ranker:  ranker,
		caps:    recommend.DefaultPathCaps(),
	}
}

// ProfileSummary echoes the normalized profile back to the client.
type ProfileSummary struct {
	Education       string        `json:"education,omitempty"`
	Major           string        `json:"major,omitempty"`
	TechnicalSkills []string      `json:"technical_skills"`
	SoftSkills      []string      `json:"soft_skills"`
	TargetDomain    string        `json:"target_domain,omitempty"`
	StudyDuration   string        `json:"study_duration,omitempty"`
	ExperienceYears int           `json:"experience_years"`
	Level           catalog.Level `json:"level"`
}

// RecommendationResponse is the data payload of a successful
// recommendation request.
type RecommendationResponse struct {
	// ProfileSummary is the normalized profile that was scored.
	ProfileSummary ProfileSummary `json:"profile_summary"`

	// Recommendations is the ranked list with full course detail.
	Recommendations []recommend.Recommendation `json:"recommendations"`

	// LearningPath is the bucketed plan.
	LearningPath recommend.LearningPath `json:"learning_path"`

	// Export is the fixed-shape JSON export.
	Export recommend.Output `json:"export"`
}

// Recommend handles POST /api/v1/recommendations: decode, validate,
// score, rank, bucket, and shape the export.
func (h *Handlers) Recommend(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rw.BadRequest("invalid JSON body: " + err.Error())
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		metrics.RecordProfileRejection()
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	profile, err := req.ToProfile()
	if err != nil {
		if errors.Is(err, recommend.ErrNoTechnicalSkills) {
			metrics.RecordProfileRejection()
			rw.ValidationError("Please enter at least one technical skill", nil)
			return
		}
		rw.BadRequest(err.Error())
		return
	}

	recs := h.ranker.Rank(&profile, h.courses, req.TopN)
	path := recommend.BuildLearningPath(recs, h.caps)
	export := recommend.BuildOutput(recs, path)

	level := profile.Level()
	scores := make([]int, len(recs))
	for i, rec := range recs {
		scores[i] = rec.MatchScore
	}
	metrics.RecordRecommendations(level.String(), scores)

	logging.Ctx(r.Context()).Info().
		Str("user_level", level.String()).
		Int("recommendations", len(recs)).
		Msg("Recommendations generated")

	rw.Success(RecommendationResponse{
		ProfileSummary: ProfileSummary{
			Education:       profile.Education,
			Major:           profile.Major,
			TechnicalSkills: profile.TechnicalSkills,
			SoftSkills:      profile.SoftSkills,
			TargetDomain:    profile.TargetDomain,
			StudyDuration:   profile.StudyDuration,
			ExperienceYears: profile.ExperienceYears,
			Level:           level,
		},
		Recommendations: recs,
		LearningPath:    path,
		Export:          export,
	})
}

// CourseListResponse is the data payload of the catalog listing.
type CourseListResponse struct {
	Courses []catalog.Course `json:"courses"`
	Count   int              `json:"count"`
}

// Courses handles GET /api/v1/courses: the full catalog.
func (h *Handlers) Courses(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, CourseListResponse{
		Courses: h.courses,
		Count:   len(h.courses),
	})
}

// SampleProfilesResponse is the data payload of the samples listing.
type SampleProfilesResponse struct {
	Profiles []recommend.Profile `json:"profiles"`
	Count    int                 `json:"count"`
}

// SampleProfiles handles GET /api/v1/profiles/samples: the five demo
// profiles selectable on the form page.
func (h *Handlers) SampleProfiles(w http.ResponseWriter, r *http.Request) {
	profiles := recommend.SampleProfiles()
	WriteSuccess(w, r, SampleProfilesResponse{
		Profiles: profiles,
		Count:    len(profiles),
	})
}

// HealthStatus is the data payload of the health endpoints.
type HealthStatus struct {
	Status  string `json:"status"`
	Courses int    `json:"courses"`
}

// Health handles GET /api/v1/health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, HealthStatus{Status: "ok", Courses: len(h.courses)})
}

// Live handles GET /api/v1/health/live: process liveness.
func (h *Handlers) Live(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, HealthStatus{Status: "alive", Courses: len(h.courses)})
}

// Ready handles GET /api/v1/health/ready: the service is ready once the
// catalog is loaded.
func (h *Handlers) Ready(w http.ResponseWriter, r *http.Request) {
	if len(h.courses) == 0 {
		WriteError(w, r, http.StatusServiceUnavailable, ErrCodeInternalError, "catalog not loaded")
		return
	}
	WriteSuccess(w, r, HealthStatus{Status: "ready", Courses: len(h.courses)})
}
