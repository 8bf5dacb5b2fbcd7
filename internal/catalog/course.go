// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

// Package catalog defines the course catalog: the Course record type, the
// difficulty Level enum, the embedded default catalog, and an optional
// YAML file loader. The catalog is loaded once at startup and shared
// read-only by reference; nothing mutates it after load.
package catalog

import (
	"fmt"
	"strings"
)

// Level is the difficulty level of a course or the proficiency level of a user.
type Level int

const (
	// LevelBeginner indicates introductory material with no assumed background.
	LevelBeginner Level = iota

	// LevelIntermediate indicates material that assumes working fundamentals.
	LevelIntermediate

	// LevelAdvanced indicates material that assumes substantial prior depth.
	LevelAdvanced
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelBeginner:
		return "beginner"
	case LevelIntermediate:
		return "intermediate"
	case LevelAdvanced:
		return "advanced"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// MarshalText implements encoding.TextMarshaler so levels serialize as their names.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return LevelBeginner, nil
	case "intermediate":
		return LevelIntermediate, nil
	case "advanced":
		return LevelAdvanced, nil
	default:
		return LevelBeginner, fmt.Errorf("unknown level %q", s)
	}
}

// Course is a single catalog entry.
type Course struct {
	// ID uniquely identifies the course within the catalog.
	ID int `json:"id"`

	// Title is the course name shown to users.
	Title string `json:"title"`

	// Provider is the platform or organization offering the course.
	Provider string `json:"provider"`

	// Duration is a human-readable duration, e.g. "6 weeks".
	Duration string `json:"duration"`

	// Level is the course difficulty.
	Level Level `json:"level"`

	// Cost is a human-readable price, e.g. "Free" or "$89".
	Cost string `json:"cost"`

	// Prerequisites lists skill names assumed before enrolling.
	// Empty means the course is open to anyone.
	Prerequisites []string `json:"prerequisites"`

	// SkillsCovered lists the skills the course teaches.
	SkillsCovered []string `json:"skills_covered"`

	// CareerPath is the role the course leads toward.
	CareerPath string `json:"career_path"`

	// Link is the enrollment URL.
	Link string `json:"link"`

	// Domain is the subject area, e.g. "Data Science".
	Domain string `json:"domain"`
}
