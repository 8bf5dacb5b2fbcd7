// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

package recommend

import (
	"sort"

	"github.com/skillcompass/skillcompass/internal/catalog"
)

// Ranker scores a whole catalog against a profile and returns the best
// matches in descending score order.
type Ranker struct {
	scorer *Scorer

	// minScore is the threshold below which a course is not recommended.
	minScore int

	// topN is the default result count when the caller does not override it.
	topN int
}

// NewRanker creates a ranker. minScore and topN below 1 fall back to the
// standard 20 and 10.
func NewRanker(scorer *Scorer, minScore, topN int) *Ranker {
	if minScore < 1 {
		minScore = 20
	}
	if topN < 1 {
		topN = 10
	}
	return &Ranker{scorer: scorer, minScore: minScore, topN: topN}
}

// Rank scores every course, keeps those at or above the threshold, sorts
// descending by score, and truncates to topN. Ties preserve catalog
// order (stable sort) so results are deterministic. topN <= 0 uses the
// ranker's default. An empty result is valid, not an error.
func (r *Ranker) Rank(profile *Profile, courses []catalog.Course, topN int) []Recommendation {
	if topN <= 0 {
		topN = r.topN
	}

	recs := make([]Recommendation, 0, len(courses))
	for i := range courses {
		course := &courses[i]
		match := r.scorer.Score(profile, course)
		if match.Score < r.minScore {
			continue
		}
		recs = append(recs, Recommendation{
			CourseID:      course.ID,
			Title:         course.Title,
			Provider:      course.Provider,
			Duration:      course.Duration,
			Level:         course.Level,
			Cost:          course.Cost,
			MatchScore:    match.Score,
			Justification: match.Justification,
			Timeline:      match.Timeline,
			CareerPath:    course.CareerPath,
			Domain:        course.Domain,
			SkillsCovered: course.SkillsCovered,
			Prerequisites: course.Prerequisites,
			Link:          course.Link,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})

	if len(recs) > topN {
		recs = recs[:topN]
	}
	return recs
}

// MinScore returns the recommendation threshold.
func (r *Ranker) MinScore() int {
	return r.minScore
}

// TopN returns the default result count.
func (r *Ranker) TopN() int {
	return r.topN
}
