// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

package recommend

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/skillcompass/skillcompass/internal/catalog"
)

func TestBuildOutputShape(t *testing.T) {
	recs := []Recommendation{
		{
			CourseID: 4, Title: "Data Science Foundations", Provider: "edX",
			MatchScore: 72, Justification: "Strong match.",
			Timeline: TimelineMediumTerm, CareerPath: "Data Scientist",
		},
		{
			CourseID: 5, Title: "SQL for Data Analysis", Provider: "Coursera",
			MatchScore: 65, Justification: "Strong match.",
			Timeline: TimelineShortTerm, CareerPath: "Data Analyst",
		},
	}
	path := BuildLearningPath(recs, DefaultPathCaps())
	out := BuildOutput(recs, path)

	if len(out.UserRecommendations) != 2 {
		t.Fatalf("got %d summaries, want 2", len(out.UserRecommendations))
	}
	first := out.UserRecommendations[0]
	if first.CourseTitle != "Data Science Foundations" || first.MatchScore != 72 {
		t.Errorf("first summary = %+v, want ranked order preserved", first)
	}

	if len(out.LearningTimeline.ShortTerm) != 1 {
		t.Fatalf("short term has %d entries, want 1", len(out.LearningTimeline.ShortTerm))
	}
	entry := out.LearningTimeline.ShortTerm[0]
	if entry.CourseTitle != "SQL for Data Analysis" {
		t.Errorf("short-term entry = %q, want SQL course", entry.CourseTitle)
	}
	if entry.Reason != "Builds on current skills and leads to Data Analyst role" {
		t.Errorf("reason = %q, want templated career-path reason", entry.Reason)
	}
}

func TestOutputJSONRoundTrip(t *testing.T) {
	profile := mustProfile(t, SampleProfiles()[1])
	recs := newTestRanker().Rank(&profile, catalog.Default(), 0)
	path := BuildLearningPath(recs, DefaultPathCaps())
	out := BuildOutput(recs, path)

	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Output
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(back.UserRecommendations) != len(out.UserRecommendations) {
		t.Fatalf("round trip changed recommendation count: %d vs %d",
			len(back.UserRecommendations), len(out.UserRecommendations))
	}
	for i := range out.UserRecommendations {
		if back.UserRecommendations[i] != out.UserRecommendations[i] {
			t.Errorf("summary %d changed in round trip: %+v vs %+v",
				i, back.UserRecommendations[i], out.UserRecommendations[i])
		}
	}
	if len(back.LearningTimeline.ShortTerm) != len(out.LearningTimeline.ShortTerm) ||
		len(back.LearningTimeline.MediumTerm) != len(out.LearningTimeline.MediumTerm) ||
		len(back.LearningTimeline.LongTerm) != len(out.LearningTimeline.LongTerm) {
		t.Error("round trip changed timeline bucket sizes")
	}
}

func TestOutputJSONFieldNames(t *testing.T) {
	recs := []Recommendation{
		{Title: "X", Provider: "Y", MatchScore: 50, Justification: "j",
			Timeline: TimelineShortTerm, CareerPath: "Z"},
	}
	out := BuildOutput(recs, BuildLearningPath(recs, DefaultPathCaps()))

	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)

	for _, field := range []string{
		`"user_recommendations"`, `"learning_timeline"`,
		`"short_term"`, `"medium_term"`, `"long_term"`,
		`"course_title"`, `"provider"`, `"match_score"`,
		`"justification"`, `"timeline"`, `"career_path"`, `"reason"`,
	} {
		if !strings.Contains(s, field) {
			t.Errorf("export JSON missing field %s: %s", field, s)
		}
	}
	if !strings.Contains(s, `"timeline":"short-term"`) {
		t.Errorf("timeline not serialized as wire name: %s", s)
	}
}

func TestBuildOutputEmpty(t *testing.T) {
	out := BuildOutput(nil, BuildLearningPath(nil, DefaultPathCaps()))

	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)

	// Empty results serialize as empty arrays, never null.
	if strings.Contains(s, "null") {
		t.Errorf("empty output contains null: %s", s)
	}
}
