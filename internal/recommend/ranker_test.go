// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

package recommend

import (
	"testing"

	"github.com/skillcompass/skillcompass/internal/catalog"
)

func newTestRanker() *Ranker {
	return NewRanker(NewScorer(DefaultConfig()), 20, 10)
}

func TestRankSortedDescending(t *testing.T) {
	profile := mustProfile(t, SampleProfiles()[2]) // IT Professional
	recs := newTestRanker().Rank(&profile, catalog.Default(), 0)

	if len(recs) == 0 {
		t.Fatal("expected recommendations for a skilled profile")
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].MatchScore > recs[i-1].MatchScore {
			t.Errorf("recommendations not sorted: score[%d]=%d > score[%d]=%d",
				i, recs[i].MatchScore, i-1, recs[i-1].MatchScore)
		}
	}
}

func TestRankThresholdAndTruncation(t *testing.T) {
	for _, sample := range SampleProfiles() {
		profile := mustProfile(t, sample)
		recs := newTestRanker().Rank(&profile, catalog.Default(), 0)

		if len(recs) > 10 {
			t.Errorf("profile %q: %d recommendations, want at most 10", profile.Name, len(recs))
		}
		for _, rec := range recs {
			if rec.MatchScore < 20 {
				t.Errorf("profile %q: course %d below threshold with score %d",
					profile.Name, rec.CourseID, rec.MatchScore)
			}
		}
	}
}

func TestRankExplicitTopN(t *testing.T) {
	profile := mustProfile(t, SampleProfiles()[0])
	recs := newTestRanker().Rank(&profile, catalog.Default(), 3)

	if len(recs) > 3 {
		t.Errorf("got %d recommendations, want at most 3", len(recs))
	}
}

func TestRankTiesPreserveCatalogOrder(t *testing.T) {
	// Identical courses score identically; the stable sort must keep
	// their catalog order.
	profile := mustProfile(t, Profile{TechnicalSkills: []string{"python"}})
	courses := []catalog.Course{
		{ID: 1, Title: "First", Level: catalog.LevelBeginner, SkillsCovered: []string{"python"}, Prerequisites: []string{}},
		{ID: 2, Title: "Second", Level: catalog.LevelBeginner, SkillsCovered: []string{"python"}, Prerequisites: []string{}},
		{ID: 3, Title: "Third", Level: catalog.LevelBeginner, SkillsCovered: []string{"python"}, Prerequisites: []string{}},
	}

	recs := newTestRanker().Rank(&profile, courses, 0)
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}
	for i, wantID := range []int{1, 2, 3} {
		if recs[i].CourseID != wantID {
			t.Errorf("position %d has course %d, want %d (stable order)", i, recs[i].CourseID, wantID)
		}
	}
}

func TestRankEmptyCatalog(t *testing.T) {
	profile := mustProfile(t, Profile{TechnicalSkills: []string{"python"}})
	recs := newTestRanker().Rank(&profile, []catalog.Course{}, 0)

	if len(recs) != 0 {
		t.Errorf("empty catalog produced %d recommendations, want 0", len(recs))
	}
}

func TestRankFiltersLowScores(t *testing.T) {
	// A high threshold filters everything out; an empty result is valid.
	profile := mustProfile(t, Profile{TechnicalSkills: []string{"nothing-relevant"}})
	ranker := NewRanker(NewScorer(DefaultConfig()), 99, 10)

	recs := ranker.Rank(&profile, catalog.Default(), 0)
	if len(recs) != 0 {
		t.Errorf("got %d recommendations above score 99, want 0", len(recs))
	}
}

func TestRankRecommendationCarriesCourseDetail(t *testing.T) {
	profile := mustProfile(t, SampleProfiles()[1]) // Career Switcher
	recs := newTestRanker().Rank(&profile, catalog.Default(), 0)

	if len(recs) == 0 {
		t.Fatal("expected recommendations")
	}
	for _, rec := range recs {
		if rec.Title == "" || rec.Provider == "" || rec.Duration == "" || rec.CareerPath == "" {
			t.Errorf("course %d: incomplete detail: %+v", rec.CourseID, rec)
		}
		if rec.Justification == "" {
			t.Errorf("course %d: empty justification", rec.CourseID)
		}
	}
}
