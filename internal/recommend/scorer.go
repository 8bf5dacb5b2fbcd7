// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

package recommend

import (
	"fmt"
	"strings"

	"github.com/skillcompass/skillcompass/internal/catalog"
)

// Config holds the scoring weights and thresholds. Keeping these as data
// rather than constants lets deployments tune match behavior and lets
// justification wording change without touching scoring logic.
type Config struct {
	// SkillWeight is the maximum contribution of skill overlap.
	SkillWeight float64

	// DomainBonus is the flat bonus when the target domain aligns with
	// the course's domain or career path.
	DomainBonus int

	// PrereqPoints maps the number of missing prerequisites (0, 1, 2, 3+)
	// to points; counts past the end use the last entry.
	PrereqPoints []int

	// LevelDefault is the level-fit score for pairings not in the matrix.
	LevelDefault int

	// BandExcellent, BandStrong, and BandGood are the score thresholds
	// that select the justification template.
	BandExcellent int
	BandStrong    int
	BandGood      int
}

// DefaultConfig returns the standard scoring configuration.
func DefaultConfig() Config {
	return Config{
		SkillWeight:   40,
		DomainBonus:   15,
		PrereqPoints:  []int{20, 15, 10, 5},
		LevelDefault:  10,
		BandExcellent: 80,
		BandStrong:    60,
		BandGood:      40,
	}
}

// levelPair keys the level-fit matrix.
type levelPair struct {
	user   catalog.Level
	course catalog.Level
}

// levelMatrix maps (user level, course level) to level-fit points.
// Exact matches score highest; one-step stretches upward score well;
// downward or two-step pairings score low.
var levelMatrix = map[levelPair]int{
	{catalog.LevelBeginner, catalog.LevelBeginner}:         25,
	{catalog.LevelBeginner, catalog.LevelIntermediate}:     15,
	{catalog.LevelBeginner, catalog.LevelAdvanced}:         5,
	{catalog.LevelIntermediate, catalog.LevelBeginner}:     10,
	{catalog.LevelIntermediate, catalog.LevelIntermediate}: 25,
	{catalog.LevelIntermediate, catalog.LevelAdvanced}:     20,
	{catalog.LevelAdvanced, catalog.LevelBeginner}:         5,
	{catalog.LevelAdvanced, catalog.LevelIntermediate}:     15,
	{catalog.LevelAdvanced, catalog.LevelAdvanced}:         25,
}

// Scorer computes match results for (profile, course) pairs.
type Scorer struct {
	cfg Config
}

// NewScorer creates a scorer with the given configuration.
// Zero-valued fields fall back to DefaultConfig values.
func NewScorer(cfg Config) *Scorer {
	def := DefaultConfig()
	if cfg.SkillWeight <= 0 {
		cfg.SkillWeight = def.SkillWeight
	}
	if cfg.DomainBonus <= 0 {
		cfg.DomainBonus = def.DomainBonus
	}
	if len(cfg.PrereqPoints) == 0 {
		cfg.PrereqPoints = def.PrereqPoints
	}
	if cfg.LevelDefault <= 0 {
		cfg.LevelDefault = def.LevelDefault
	}
	if cfg.BandExcellent <= 0 {
		cfg.BandExcellent = def.BandExcellent
	}
	if cfg.BandStrong <= 0 {
		cfg.BandStrong = def.BandStrong
	}
	if cfg.BandGood <= 0 {
		cfg.BandGood = def.BandGood
	}
	return &Scorer{cfg: cfg}
}

// Match is the result of scoring one course against one profile.
type Match struct {
	// Score is the 0-100 match score.
	Score int

	// Justification is the user-facing explanation for the score.
	Justification string

	// Timeline is when the course is advisable to start.
	Timeline Timeline
}

// Score computes the match between a validated profile and a course.
// Four additive components, clamped to 100:
//
//  1. Skill overlap: fraction of the course's skills already known,
//     scaled by SkillWeight.
//  2. Level fit: the levelMatrix lookup for (user level, course level).
//  3. Prerequisite satisfaction: points step down with each missing
//     prerequisite.
//  4. Domain alignment: DomainBonus when the target domain is a
//     case-insensitive substring of the course domain or career path.
//
// Deterministic and side-effect free.
func (s *Scorer) Score(profile *Profile, course *catalog.Course) Match {
	userSkills := profile.skillSet()
	courseSkills := normalizedSet(course.SkillsCovered)

	matching := 0
	for skill := range courseSkills {
		if userSkills[skill] {
			matching++
		}
	}

	totalCourseSkills := len(courseSkills)
	if totalCourseSkills < 1 {
		totalCourseSkills = 1
	}
	score := float64(matching) / float64(totalCourseSkills) * s.cfg.SkillWeight

	userLevel := profile.Level()
	score += float64(s.levelScore(userLevel, course.Level))

	missing := missingPrereqs(userSkills, course.Prerequisites)
	score += float64(s.prereqScore(len(missing)))

	target := strings.ToLower(profile.TargetDomain)
	if target != "" && (strings.Contains(strings.ToLower(course.Domain), target) ||
		strings.Contains(strings.ToLower(course.CareerPath), target)) {
		score += float64(s.cfg.DomainBonus)
	}

	final := int(score)
	if final > 100 {
		final = 100
	}

	newSkills := 0
	for skill := range courseSkills {
		if !userSkills[skill] {
			newSkills++
		}
	}

	return Match{
		Score:         final,
		Justification: s.justify(final, matching, newSkills, missing),
		Timeline:      timeline(userLevel, course.Level),
	}
}

// levelScore looks up the level-fit points for a (user, course) pairing.
func (s *Scorer) levelScore(user, course catalog.Level) int {
	if pts, ok := levelMatrix[levelPair{user, course}]; ok {
		return pts
	}
	return s.cfg.LevelDefault
}

// prereqScore maps a missing-prerequisite count to points.
func (s *Scorer) prereqScore(missing int) int {
	if missing >= len(s.cfg.PrereqPoints) {
		return s.cfg.PrereqPoints[len(s.cfg.PrereqPoints)-1]
	}
	return s.cfg.PrereqPoints[missing]
}

// justify renders the score-band justification template. The bands and
// the facts cited (matching count, new-skill count, missing prerequisite
// names) are contractual; the prose is display text.
func (s *Scorer) justify(score, matching, newSkills int, missing []string) string {
	switch {
	case score >= s.cfg.BandExcellent:
		return fmt.Sprintf("Excellent fit! You have %d required skills. This will add %d new skills to your toolkit.",
			matching, newSkills)
	case score >= s.cfg.BandStrong:
		return fmt.Sprintf("Strong match. Builds on your %d existing skills. You'll learn %d new technologies.",
			matching, newSkills)
	case score >= s.cfg.BandGood:
		if len(missing) > 0 {
			named := missing
			if len(named) > 2 {
				named = named[:2]
			}
			return fmt.Sprintf("Good potential. Learn %d new skills. Consider brushing up on: %s",
				newSkills, strings.Join(named, ", "))
		}
		return fmt.Sprintf("Solid option. Expands your skillset with %d new technologies.", newSkills)
	default:
		return fmt.Sprintf("Learning opportunity. Challenges you with %d new skills. Prepare by learning prerequisites first.",
			newSkills)
	}
}

// timeline classifies a course by comparing levels: same level means the
// user can start now, a one-step stretch upward is a medium-term goal,
// everything else is long-term.
func timeline(user, course catalog.Level) Timeline {
	switch {
	case user == course:
		return TimelineShortTerm
	case user == catalog.LevelBeginner && course == catalog.LevelIntermediate:
		return TimelineMediumTerm
	case user == catalog.LevelIntermediate && course == catalog.LevelAdvanced:
		return TimelineMediumTerm
	default:
		return TimelineLongTerm
	}
}

// missingPrereqs returns the course prerequisites the user lacks,
// preserving their catalog order for justification text.
func missingPrereqs(userSkills map[string]bool, prereqs []string) []string {
	missing := make([]string, 0, len(prereqs))
	for _, p := range prereqs {
		if !userSkills[strings.ToLower(strings.TrimSpace(p))] {
			missing = append(missing, p)
		}
	}
	return missing
}

// normalizedSet lowercases and trims skill names into a lookup set.
func normalizedSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = true
		}
	}
	return set
}
