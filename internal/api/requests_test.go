// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

package api

import (
	"errors"
	"reflect"
	"testing"

	"github.com/skillcompass/skillcompass/internal/recommend"
	"github.com/skillcompass/skillcompass/internal/validation"
)

func TestToProfileNormalizesSkills(t *testing.T) {
	req := RecommendationRequest{
		Education:       "Bachelor's Degree",
		TechnicalSkills: " Python, SQL , python,  ",
		SoftSkills:      "Communication",
		TargetDomain:    "  Data Science  ",
		ExperienceYears: 2,
	}

	profile, err := req.ToProfile()
	if err != nil {
		t.Fatalf("ToProfile: %v", err)
	}
	if want := []string{"python", "sql"}; !reflect.DeepEqual(profile.TechnicalSkills, want) {
		t.Errorf("technical skills = %v, want %v", profile.TechnicalSkills, want)
	}
	if want := []string{"communication"}; !reflect.DeepEqual(profile.SoftSkills, want) {
		t.Errorf("soft skills = %v, want %v", profile.SoftSkills, want)
	}
	if profile.TargetDomain != "Data Science" {
		t.Errorf("target domain = %q, want trimmed", profile.TargetDomain)
	}
}

func TestToProfileRejectsEmptySkills(t *testing.T) {
	req := RecommendationRequest{TechnicalSkills: " , ,, "}

	_, err := req.ToProfile()
	if !errors.Is(err, recommend.ErrNoTechnicalSkills) {
		t.Errorf("err = %v, want ErrNoTechnicalSkills", err)
	}
}

func TestRequestValidationTags(t *testing.T) {
	tests := []struct {
		name    string
		req     RecommendationRequest
		wantErr bool
	}{
		{
			name:    "valid minimal",
			req:     RecommendationRequest{TechnicalSkills: "python"},
			wantErr: false,
		},
		{
			name:    "valid full",
			req:     RecommendationRequest{TechnicalSkills: "python, sql", ExperienceYears: 5, TopN: 5},
			wantErr: false,
		},
		{
			name:    "missing technical skills",
			req:     RecommendationRequest{Education: "PhD"},
			wantErr: true,
		},
		{
			name:    "negative experience",
			req:     RecommendationRequest{TechnicalSkills: "python", ExperienceYears: -1},
			wantErr: true,
		},
		{
			name:    "experience too large",
			req:     RecommendationRequest{TechnicalSkills: "python", ExperienceYears: 61},
			wantErr: true,
		},
		{
			name:    "top_n too large",
			req:     RecommendationRequest{TechnicalSkills: "python", TopN: 26},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateStruct(&tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
