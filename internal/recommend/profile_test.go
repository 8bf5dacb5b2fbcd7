// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

package recommend

import (
	"errors"
	"reflect"
	"testing"

	"github.com/skillcompass/skillcompass/internal/catalog"
)

func TestNormalizeSkills(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{name: "lowercases and trims", input: []string{" Python ", "SQL"}, want: []string{"python", "sql"}},
		{name: "drops empties", input: []string{"python", "", "  "}, want: []string{"python"}},
		{name: "dedupes preserving order", input: []string{"python", "SQL", "Python"}, want: []string{"python", "sql"}},
		{name: "empty input", input: []string{}, want: []string{}},
		{name: "nil input", input: nil, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSkills(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeSkills(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitSkills(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "comma separated", input: "Python, SQL,excel", want: []string{"python", "sql", "excel"}},
		{name: "trailing comma", input: "python,", want: []string{"python"}},
		{name: "only commas", input: ",,,", want: []string{}},
		{name: "empty string", input: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSkills(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSkills(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewProfileRejectsEmptySkills(t *testing.T) {
	tests := []struct {
		name   string
		skills []string
	}{
		{name: "nil", skills: nil},
		{name: "empty", skills: []string{}},
		{name: "whitespace only", skills: []string{"  ", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProfile(Profile{TechnicalSkills: tt.skills})
			if !errors.Is(err, ErrNoTechnicalSkills) {
				t.Errorf("NewProfile error = %v, want ErrNoTechnicalSkills", err)
			}
		})
	}
}

func TestNewProfileNormalizes(t *testing.T) {
	p, err := NewProfile(Profile{
		TechnicalSkills: []string{" Python ", "SQL", "python"},
		SoftSkills:      []string{" Teamwork "},
		TargetDomain:    "  Data Science  ",
		ExperienceYears: -2,
	})
	if err != nil {
		t.Fatalf("NewProfile failed: %v", err)
	}

	if !reflect.DeepEqual(p.TechnicalSkills, []string{"python", "sql"}) {
		t.Errorf("technical skills = %v, want [python sql]", p.TechnicalSkills)
	}
	if !reflect.DeepEqual(p.SoftSkills, []string{"teamwork"}) {
		t.Errorf("soft skills = %v, want [teamwork]", p.SoftSkills)
	}
	if p.TargetDomain != "Data Science" {
		t.Errorf("target domain = %q, want trimmed", p.TargetDomain)
	}
	if p.ExperienceYears != 0 {
		t.Errorf("negative experience = %d, want clamped to 0", p.ExperienceYears)
	}
}

func TestProfileLevel(t *testing.T) {
	tests := []struct {
		name       string
		skills     int
		experience int
		want       catalog.Level
	}{
		{name: "few skills no experience", skills: 3, experience: 0, want: catalog.LevelBeginner},
		{name: "many skills no experience", skills: 8, experience: 0, want: catalog.LevelBeginner},
		{name: "few skills some experience", skills: 2, experience: 5, want: catalog.LevelBeginner},
		{name: "four skills one year", skills: 4, experience: 1, want: catalog.LevelIntermediate},
		{name: "six skills five years", skills: 6, experience: 5, want: catalog.LevelIntermediate},
		{name: "many skills two years", skills: 9, experience: 2, want: catalog.LevelIntermediate},
		{name: "seven skills three years", skills: 7, experience: 3, want: catalog.LevelAdvanced},
		{name: "many skills long experience", skills: 10, experience: 8, want: catalog.LevelAdvanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := make([]string, tt.skills)
			for i := range skills {
				skills[i] = string(rune('a' + i))
			}
			p := Profile{TechnicalSkills: skills, ExperienceYears: tt.experience}
			if got := p.Level(); got != tt.want {
				t.Errorf("Level() with %d skills, %d years = %v, want %v",
					tt.skills, tt.experience, got, tt.want)
			}
		})
	}
}
