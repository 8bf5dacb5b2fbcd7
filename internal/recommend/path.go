// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

package recommend

// PathCaps limits how many courses land in each learning-path bucket.
type PathCaps struct {
	ShortTerm  int
	MediumTerm int
	LongTerm   int
}

// DefaultPathCaps returns the standard bucket sizes: a fuller short-term
// plan and smaller stretch plans.
func DefaultPathCaps() PathCaps {
	return PathCaps{ShortTerm: 3, MediumTerm: 2, LongTerm: 2}
}

// LearningPath is a ranked recommendation list partitioned by timeline.
// Each bucket preserves score-descending order from the ranker.
type LearningPath struct {
	ShortTerm  []Recommendation `json:"short_term_plan"`
	MediumTerm []Recommendation `json:"medium_term_plan"`
	LongTerm   []Recommendation `json:"long_term_plan"`
}

// BuildLearningPath partitions ranked recommendations into the three
// timeline buckets in a single pass, truncating each bucket to its cap.
// Buckets may be empty.
func BuildLearningPath(recs []Recommendation, caps PathCaps) LearningPath {
	path := LearningPath{
		ShortTerm:  make([]Recommendation, 0, caps.ShortTerm),
		MediumTerm: make([]Recommendation, 0, caps.MediumTerm),
		LongTerm:   make([]Recommendation, 0, caps.LongTerm),
	}

	for _, rec := range recs {
		switch rec.Timeline {
		case TimelineShortTerm:
			if len(path.ShortTerm) < caps.ShortTerm {
				path.ShortTerm = append(path.ShortTerm, rec)
			}
		case TimelineMediumTerm:
			if len(path.MediumTerm) < caps.MediumTerm {
				path.MediumTerm = append(path.MediumTerm, rec)
			}
		case TimelineLongTerm:
			if len(path.LongTerm) < caps.LongTerm {
				path.LongTerm = append(path.LongTerm, rec)
			}
		}
	}

	return path
}
