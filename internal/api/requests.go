// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

package api

import (
	"github.com/skillcompass/skillcompass/internal/recommend"
)

// RecommendationRequest is the profile submission body for
// POST /api/v1/recommendations. Skills arrive as comma-separated
// strings, matching the form fields.
type RecommendationRequest struct {
	// Education is the user's educational background.
	Education string `json:"education" validate:"omitempty,max=200"`

	// Major is informational only; scoring does not consume it.
	Major string `json:"major" validate:"omitempty,max=200"`

	// TechnicalSkills is a comma-separated skill list. Required; must
	// yield at least one skill after normalization.
	TechnicalSkills string `json:"technical_skills" validate:"required,max=2000"`

	// SoftSkills is a comma-separated skill list, may be empty.
	SoftSkills string `json:"soft_skills" validate:"omitempty,max=2000"`

	// TargetDomain is the subject area the user wants to move into.
	TargetDomain string `json:"target_domain" validate:"omitempty,max=200"`

	// StudyDuration is the user's stated availability, informational only.
	StudyDuration string `json:"study_duration" validate:"omitempty,max=100"`

	// ExperienceYears is the user's professional experience in years.
	ExperienceYears int `json:"experience_years" validate:"min=0,max=60"`

	// TopN overrides the default recommendation count when set.
	TopN int `json:"top_n" validate:"omitempty,min=1,max=25"`
}

// ToProfile converts the request into a validated profile.
// Returns recommend.ErrNoTechnicalSkills when no technical skill
// survives normalization.
func (req *RecommendationRequest) ToProfile() (recommend.Profile, error) {
	return recommend.NewProfile(recommend.Profile{
		Education:       req.Education,
		Major:           req.Major,
		TechnicalSkills: recommend.SplitSkills(req.TechnicalSkills),
		SoftSkills:      recommend.SplitSkills(req.SoftSkills),
		TargetDomain:    req.TargetDomain,
		StudyDuration:   req.StudyDuration,
		ExperienceYears: req.ExperienceYears,
	})
}
