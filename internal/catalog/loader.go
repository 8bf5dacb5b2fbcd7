// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

package catalog

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// courseSpec mirrors Course for YAML unmarshaling, with the level as a
// plain string so catalog files stay human-editable.
type courseSpec struct {
	ID            int      `koanf:"id"`
	Title         string   `koanf:"title"`
	Provider      string   `koanf:"provider"`
	Duration      string   `koanf:"duration"`
	Level         string   `koanf:"level"`
	Cost          string   `koanf:"cost"`
	Prerequisites []string `koanf:"prerequisites"`
	SkillsCovered []string `koanf:"skills_covered"`
	CareerPath    string   `koanf:"career_path"`
	Link          string   `koanf:"link"`
	Domain        string   `koanf:"domain"`
}

// Load returns the course catalog. With an empty path the embedded default
// catalog is returned; otherwise the YAML file at path is loaded instead.
// The result is validated either way.
func Load(path string) ([]Course, error) {
	if path == "" {
		courses := Default()
		if err := validate(courses); err != nil {
			return nil, fmt.Errorf("embedded catalog invalid: %w", err)
		}
		return courses, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load catalog file %s: %w", path, err)
	}

	var specs []courseSpec
	if err := k.Unmarshal("courses", &specs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog file %s: %w", path, err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no courses", path)
	}

	courses := make([]Course, 0, len(specs))
	for _, spec := range specs {
		level, err := ParseLevel(spec.Level)
		if err != nil {
			return nil, fmt.Errorf("course %d (%s): %w", spec.ID, spec.Title, err)
		}
		courses = append(courses, Course{
			ID:            spec.ID,
			Title:         spec.Title,
			Provider:      spec.Provider,
			Duration:      spec.Duration,
			Level:         level,
			Cost:          spec.Cost,
			Prerequisites: emptyIfNil(spec.Prerequisites),
			SkillsCovered: emptyIfNil(spec.SkillsCovered),
			CareerPath:    spec.CareerPath,
			Link:          spec.Link,
			Domain:        spec.Domain,
		})
	}

	if err := validate(courses); err != nil {
		return nil, fmt.Errorf("catalog file %s invalid: %w", path, err)
	}
	return courses, nil
}

// validate checks catalog integrity: unique positive IDs and non-empty titles.
func validate(courses []Course) error {
	seen := make(map[int]bool, len(courses))
	for _, c := range courses {
		if c.ID <= 0 {
			return fmt.Errorf("course %q has non-positive id %d", c.Title, c.ID)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate course id %d", c.ID)
		}
		seen[c.ID] = true
		if c.Title == "" {
			return fmt.Errorf("course %d has empty title", c.ID)
		}
	}
	return nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
