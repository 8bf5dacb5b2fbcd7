// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

package recommend

import (
	"errors"
	"strings"

	"github.com/skillcompass/skillcompass/internal/catalog"
)

// ErrNoTechnicalSkills is returned when a profile has no technical skills
// left after normalization. It is the single user-visible validation
// failure of profile construction.
var ErrNoTechnicalSkills = errors.New("profile must include at least one technical skill")

// Profile is a user's declared background, built once per request and
// read-only afterwards.
type Profile struct {
	// Name labels the profile (used by the sample profiles).
	Name string `json:"name"`

	// Education is the user's educational background, free-form.
	Education string `json:"education"`

	// Major is informational only; scoring does not consume it.
	Major string `json:"major,omitempty"`

	// TechnicalSkills is the normalized (lowercased, trimmed, deduplicated)
	// skill list. Never empty on a validated profile.
	TechnicalSkills []string `json:"technical_skills"`

	// SoftSkills is normalized like TechnicalSkills but may be empty.
	// Scoring does not consume it.
	SoftSkills []string `json:"soft_skills"`

	// TargetDomain is the subject area the user wants to move into.
	// Empty means no domain preference.
	TargetDomain string `json:"target_domain,omitempty"`

	// StudyDuration is the user's stated weekly availability,
	// informational only.
	StudyDuration string `json:"study_duration,omitempty"`

	// ExperienceYears is the user's professional experience. Defaults
	// to 0 when the form does not collect it.
	ExperienceYears int `json:"experience_years"`

	// Goals is a free-form statement of intent.
	Goals string `json:"goals,omitempty"`
}

// NewProfile builds a validated profile from raw form values. Skill
// strings are lowercased, trimmed, and deduplicated while preserving
// their input order. Returns ErrNoTechnicalSkills if no technical skill
// survives normalization.
func NewProfile(p Profile) (Profile, error) {
	p.TechnicalSkills = NormalizeSkills(p.TechnicalSkills)
	p.SoftSkills = NormalizeSkills(p.SoftSkills)
	p.TargetDomain = strings.TrimSpace(p.TargetDomain)
	if p.ExperienceYears < 0 {
		p.ExperienceYears = 0
	}
	if len(p.TechnicalSkills) == 0 {
		return Profile{}, ErrNoTechnicalSkills
	}
	return p, nil
}

// NormalizeSkills lowercases and trims each entry, drops empties, and
// removes duplicates while preserving first-seen order.
func NormalizeSkills(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, s := range raw {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// SplitSkills parses a comma-separated skill string into a normalized
// skill list, matching how the profile form collects skills.
func SplitSkills(raw string) []string {
	return NormalizeSkills(strings.Split(raw, ","))
}

// Level derives the user's proficiency level from skill count and
// experience: 3 or fewer skills or under a year of experience reads as
// beginner, 6 or fewer skills or under three years as intermediate,
// anything beyond as advanced.
func (p *Profile) Level() catalog.Level {
	skills := len(p.TechnicalSkills)
	switch {
	case skills <= 3 || p.ExperienceYears < 1:
		return catalog.LevelBeginner
	case skills <= 6 || p.ExperienceYears < 3:
		return catalog.LevelIntermediate
	default:
		return catalog.LevelAdvanced
	}
}

// skillSet returns the technical skills as a lookup set.
func (p *Profile) skillSet() map[string]bool {
	set := make(map[string]bool, len(p.TechnicalSkills))
	for _, s := range p.TechnicalSkills {
		set[s] = true
	}
	return set
}
