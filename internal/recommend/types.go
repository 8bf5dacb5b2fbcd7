// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

// Package recommend implements the course matching core: scoring a user
// profile against catalog courses, ranking the results, bucketing them
// into a learning path, and shaping the JSON export.
//
// Everything in this package is a pure function over in-memory values.
// Given a validated profile and a well-formed catalog, nothing here can
// fail, block, or touch shared state, which is what makes the engine
// safe under concurrent HTTP requests with no locking.
package recommend

import (
	"fmt"

	"github.com/skillcompass/skillcompass/internal/catalog"
)

// Timeline classifies when a recommended course is advisable to start.
type Timeline int

const (
	// TimelineShortTerm suggests starting within 1-3 months.
	TimelineShortTerm Timeline = iota

	// TimelineMediumTerm suggests starting within 3-6 months.
	TimelineMediumTerm

	// TimelineLongTerm suggests starting within 6-12 months.
	TimelineLongTerm
)

// String returns the wire name of the timeline bucket.
func (t Timeline) String() string {
	switch t {
	case TimelineShortTerm:
		return "short-term"
	case TimelineMediumTerm:
		return "medium-term"
	case TimelineLongTerm:
		return "long-term"
	default:
		return fmt.Sprintf("Timeline(%d)", int(t))
	}
}

// MarshalText implements encoding.TextMarshaler so timelines serialize
// as "short-term", "medium-term", or "long-term".
func (t Timeline) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Timeline) UnmarshalText(text []byte) error {
	switch string(text) {
	case "short-term":
		*t = TimelineShortTerm
	case "medium-term":
		*t = TimelineMediumTerm
	case "long-term":
		*t = TimelineLongTerm
	default:
		return fmt.Errorf("unknown timeline %q", text)
	}
	return nil
}

// Recommendation is one qualifying course with its match result.
// It carries the full course detail so presentation layers can render
// it without a second catalog lookup.
type Recommendation struct {
	// CourseID is the catalog id of the matched course.
	CourseID int `json:"course_id"`

	// Title is the course name.
	Title string `json:"title"`

	// Provider is the platform offering the course.
	Provider string `json:"provider"`

	// Duration is the human-readable course length.
	Duration string `json:"duration"`

	// Level is the course difficulty.
	Level catalog.Level `json:"level"`

	// Cost is the human-readable price.
	Cost string `json:"cost"`

	// MatchScore is the 0-100 fit score.
	MatchScore int `json:"match_score"`

	// Justification explains the score in user-facing language.
	Justification string `json:"justification"`

	// Timeline is the learning-plan bucket for this course.
	Timeline Timeline `json:"timeline"`

	// CareerPath is the role the course leads toward.
	CareerPath string `json:"career_path"`

	// Domain is the course subject area.
	Domain string `json:"domain"`

	// SkillsCovered lists the skills the course teaches.
	SkillsCovered []string `json:"skills_covered"`

	// Prerequisites lists skills assumed before enrolling.
	Prerequisites []string `json:"prerequisites"`

	// Link is the enrollment URL.
	Link string `json:"link"`
}
