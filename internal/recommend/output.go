// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

package recommend

import "fmt"

// Output is the fixed-shape JSON export: the ranked recommendation
// summaries plus the learning timeline.
type Output struct {
	UserRecommendations []RecommendationSummary `json:"user_recommendations"`
	LearningTimeline    Timetable               `json:"learning_timeline"`
}

// RecommendationSummary is the export view of one recommendation.
type RecommendationSummary struct {
	CourseTitle   string   `json:"course_title"`
	Provider      string   `json:"provider"`
	MatchScore    int      `json:"match_score"`
	Justification string   `json:"justification"`
	Timeline      Timeline `json:"timeline"`
	CareerPath    string   `json:"career_path"`
}

// Timetable groups timeline entries into the three named plan arrays.
type Timetable struct {
	ShortTerm  []TimelineEntry `json:"short_term"`
	MediumTerm []TimelineEntry `json:"medium_term"`
	LongTerm   []TimelineEntry `json:"long_term"`
}

// TimelineEntry is one course in a plan bucket with its templated reason.
type TimelineEntry struct {
	CourseTitle string `json:"course_title"`
	Reason      string `json:"reason"`
}

// BuildOutput maps a ranked list and its learning path into the export
// shape. A pure, total mapping with no failure modes.
func BuildOutput(recs []Recommendation, path LearningPath) Output {
	out := Output{
		UserRecommendations: make([]RecommendationSummary, 0, len(recs)),
		LearningTimeline: Timetable{
			ShortTerm:  timelineEntries(path.ShortTerm),
			MediumTerm: timelineEntries(path.MediumTerm),
			LongTerm:   timelineEntries(path.LongTerm),
		},
	}

	for _, rec := range recs {
		out.UserRecommendations = append(out.UserRecommendations, RecommendationSummary{
			CourseTitle:   rec.Title,
			Provider:      rec.Provider,
			MatchScore:    rec.MatchScore,
			Justification: rec.Justification,
			Timeline:      rec.Timeline,
			CareerPath:    rec.CareerPath,
		})
	}

	return out
}

// timelineEntries renders one plan bucket into export entries.
func timelineEntries(recs []Recommendation) []TimelineEntry {
	entries := make([]TimelineEntry, 0, len(recs))
	for _, rec := range recs {
		entries = append(entries, TimelineEntry{
			CourseTitle: rec.Title,
			Reason:      fmt.Sprintf("Builds on current skills and leads to %s role", rec.CareerPath),
		})
	}
	return entries
}
