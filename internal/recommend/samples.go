// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

package recommend

// SampleProfiles returns five demo profiles spanning beginner to
// advanced users, used by the form page and the samples endpoint.
func SampleProfiles() []Profile {
	return []Profile{
		{
			Name:            "College Student (Beginner)",
			Education:       "Bachelors in Business Administration",
			TechnicalSkills: []string{"excel", "powerpoint", "word"},
			SoftSkills:      []string{"communication", "teamwork", "presentation"},
			TargetDomain:    "Business Analytics",
			ExperienceYears: 0,
			Goals:           "Start career in data-driven business roles",
		},
		{
			Name:            "Career Switcher (Intermediate)",
			Education:       "Bachelors in Mechanical Engineering",
			TechnicalSkills: []string{"python", "matlab", "excel", "cad"},
			SoftSkills:      []string{"problem solving", "project management", "analytical thinking"},
			TargetDomain:    "Data Science",
			ExperienceYears: 3,
			Goals:           "Transition from engineering to data science role",
		},
		{
			Name:            "IT Professional (Advanced)",
			Education:       "Masters in Computer Science",
			TechnicalSkills: []string{"python", "java", "sql", "linux", "docker", "aws"},
			SoftSkills:      []string{"leadership", "mentoring", "technical architecture"},
			TargetDomain:    "DevOps",
			ExperienceYears: 5,
			Goals:           "Advance to senior DevOps or cloud architecture roles",
		},
		{
			Name:            "Marketing Professional",
			Education:       "Bachelors in Marketing",
			TechnicalSkills: []string{"excel", "social media", "seo", "google analytics"},
			SoftSkills:      []string{"creativity", "communication", "strategy"},
			TargetDomain:    "Digital Marketing",
			ExperienceYears: 2,
			Goals:           "Become digital marketing manager or specialist",
		},
		{
			Name:            "Recent Bootcamp Grad",
			Education:       "Full Stack Web Development Bootcamp",
			TechnicalSkills: []string{"html", "css", "javascript", "react", "node.js"},
			SoftSkills:      []string{"teamwork", "adaptability", "quick learning"},
			TargetDomain:    "Web Development",
			ExperienceYears: 1,
			Goals:           "Land first job as frontend or fullstack developer",
		},
	}
}

// SampleProfileByName returns the sample profile with the given name,
// or false if none matches.
func SampleProfileByName(name string) (Profile, bool) {
	for _, p := range SampleProfiles() {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}
