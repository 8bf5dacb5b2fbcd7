// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

package catalog

// Default returns the built-in 25-course catalog.
// Callers receive a fresh slice on each call so the embedded data
// cannot be mutated by accident.
func Default() []Course {
	courses := []Course{
		// Programming & Development
		{
			ID: 1, Title: "Python for Absolute Beginners", Provider: "Coursera",
			Duration: "6 weeks", Level: LevelBeginner, Cost: "Free",
			Prerequisites: []string{},
			SkillsCovered: []string{"python", "programming basics", "problem solving"},
			CareerPath:    "Software Developer", Link: "#", Domain: "Programming",
		},
		{
			ID: 2, Title: "Web Development Fundamentals", Provider: "freeCodeCamp",
			Duration: "8 weeks", Level: LevelBeginner, Cost: "Free",
			Prerequisites: []string{},
			SkillsCovered: []string{"html", "css", "javascript", "web development"},
			CareerPath:    "Frontend Developer", Link: "#", Domain: "Web Development",
		},
		{
			ID: 3, Title: "Java Programming Masterclass", Provider: "Udemy",
			Duration: "12 weeks", Level: LevelIntermediate, Cost: "$89",
			Prerequisites: []string{"programming basics"},
			SkillsCovered: []string{"java", "oop", "data structures", "algorithms"},
			CareerPath:    "Java Developer", Link: "#", Domain: "Programming",
		},

		// Data Science & Analytics
		{
			ID: 4, Title: "Data Science Foundations", Provider: "edX",
			Duration: "10 weeks", Level: LevelIntermediate, Cost: "$99",
			Prerequisites: []string{"python", "statistics"},
			SkillsCovered: []string{"python", "data analysis", "statistics", "machine learning"},
			CareerPath:    "Data Scientist", Link: "#", Domain: "Data Science",
		},
		{
			ID: 5, Title: "SQL for Data Analysis", Provider: "Coursera",
			Duration: "4 weeks", Level: LevelBeginner, Cost: "Free",
			Prerequisites: []string{},
			SkillsCovered: []string{"sql", "database", "data analysis"},
			CareerPath:    "Data Analyst", Link: "#", Domain: "Data Analytics",
		},
		{
			ID: 6, Title: "Machine Learning Specialization", Provider: "Coursera",
			Duration: "16 weeks", Level: LevelAdvanced, Cost: "$199",
			Prerequisites: []string{"python", "linear algebra", "statistics"},
			SkillsCovered: []string{"machine learning", "python", "deep learning", "neural networks"},
			CareerPath:    "ML Engineer", Link: "#", Domain: "Data Science",
		},

		// Cloud & DevOps
		{
			ID: 7, Title: "AWS Cloud Practitioner", Provider: "AWS",
			Duration: "4 weeks", Level: LevelBeginner, Cost: "Free",
			Prerequisites: []string{},
			SkillsCovered: []string{"aws", "cloud computing", "devops"},
			CareerPath:    "Cloud Engineer", Link: "#", Domain: "Cloud Computing",
		},
		{
			ID: 8, Title: "Docker and Kubernetes", Provider: "Udemy",
			Duration: "8 weeks", Level: LevelIntermediate, Cost: "$79",
			Prerequisites: []string{"linux", "programming basics"},
			SkillsCovered: []string{"docker", "kubernetes", "containers", "devops"},
			CareerPath:    "DevOps Engineer", Link: "#", Domain: "DevOps",
		},

		// Business & Marketing
		{
			ID: 9, Title: "Digital Marketing Certification", Provider: "Google",
			Duration: "5 weeks", Level: LevelBeginner, Cost: "Free",
			Prerequisites: []string{},
			SkillsCovered: []string{"seo", "social media", "content marketing", "analytics"},
			CareerPath:    "Digital Marketer", Link: "#", Domain: "Marketing",
		},
		{
			ID: 10, Title: "Business Analytics", Provider: "Coursera",
			Duration: "9 weeks", Level: LevelIntermediate, Cost: "$59",
			Prerequisites: []string{"excel", "statistics"},
			SkillsCovered: []string{"excel", "sql", "tableau", "business intelligence"},
			CareerPath:    "Business Analyst", Link: "#", Domain: "Business Analytics",
		},

		// Design & Creative
		{
			ID: 11, Title: "UI/UX Design Principles", Provider: "Coursera",
			Duration: "7 weeks", Level: LevelBeginner, Cost: "$79",
			Prerequisites: []string{},
			SkillsCovered: []string{"figma", "user research", "wireframing", "prototyping"},
			CareerPath:    "UI/UX Designer", Link: "#", Domain: "Design",
		},
		{
			ID: 12, Title: "Graphic Design Fundamentals", Provider: "Skillshare",
			Duration: "6 weeks", Level: LevelBeginner, Cost: "Free",
			Prerequisites: []string{},
			SkillsCovered: []string{"photoshop", "illustrator", "design principles"},
			CareerPath:    "Graphic Designer", Link: "#", Domain: "Design",
		},

		// Web & Mobile
		{
			ID: 13, Title: "React.js Development", Provider: "freeCodeCamp",
			Duration: "10 weeks", Level: LevelIntermediate, Cost: "Free",
			Prerequisites: []string{"javascript", "html", "css"},
			SkillsCovered: []string{"react", "javascript", "frontend development"},
			CareerPath:    "React Developer", Link: "#", Domain: "Web Development",
		},
		{
			ID: 14, Title: "Node.js Backend Development", Provider: "Udemy",
			Duration: "11 weeks", Level: LevelIntermediate, Cost: "$89",
			Prerequisites: []string{"javascript"},
			SkillsCovered: []string{"node.js", "express", "mongodb", "backend development"},
			CareerPath:    "Backend Developer", Link: "#", Domain: "Web Development",
		},
		{
			ID: 15, Title: "Data Visualization with Python", Provider: "edX",
			Duration: "7 weeks", Level: LevelIntermediate, Cost: "$49",
			Prerequisites: []string{"python"},
			SkillsCovered: []string{"python", "matplotlib", "seaborn", "data visualization"},
			CareerPath:    "Data Analyst", Link: "#", Domain: "Data Analytics",
		},
		{
			ID: 16, Title: "Cybersecurity Fundamentals", Provider: "Coursera",
			Duration: "8 weeks", Level: LevelBeginner, Cost: "Free",
			Prerequisites: []string{},
			SkillsCovered: []string{"cybersecurity", "network security", "encryption"},
			CareerPath:    "Security Analyst", Link: "#", Domain: "Cybersecurity",
		},
		{
			ID: 17, Title: "Project Management Professional", Provider: "Udemy",
			Duration: "12 weeks", Level: LevelIntermediate, Cost: "$129",
			Prerequisites: []string{},
			SkillsCovered: []string{"project management", "leadership", "agile", "scrum"},
			CareerPath:    "Project Manager", Link: "#", Domain: "Management",
		},
		{
			ID: 18, Title: "Advanced Excel for Business", Provider: "LinkedIn Learning",
			Duration: "5 weeks", Level: LevelIntermediate, Cost: "$39",
			Prerequisites: []string{"excel basics"},
			SkillsCovered: []string{"excel", "pivot tables", "vlookup", "data analysis"},
			CareerPath:    "Business Analyst", Link: "#", Domain: "Business Analytics",
		},
		{
			ID: 19, Title: "Mobile App Development with Flutter", Provider: "Udemy",
			Duration: "9 weeks", Level: LevelIntermediate, Cost: "$79",
			Prerequisites: []string{"programming basics"},
			SkillsCovered: []string{"flutter", "dart", "mobile development", "ui design"},
			CareerPath:    "Mobile Developer", Link: "#", Domain: "Mobile Development",
		},
		{
			ID: 20, Title: "Content Writing Mastery", Provider: "Skillshare",
			Duration: "4 weeks", Level: LevelBeginner, Cost: "Free",
			Prerequisites: []string{},
			SkillsCovered: []string{"content writing", "seo", "copywriting", "blogging"},
			CareerPath:    "Content Writer", Link: "#", Domain: "Marketing",
		},
		{
			ID: 21, Title: "Python for Finance", Provider: "edX",
			Duration: "8 weeks", Level: LevelIntermediate, Cost: "$89",
			Prerequisites: []string{"python"},
			SkillsCovered: []string{"python", "pandas", "financial analysis", "data science"},
			CareerPath:    "Financial Analyst", Link: "#", Domain: "Finance",
		},
		{
			ID: 22, Title: "Social Media Marketing", Provider: "Coursera",
			Duration: "6 weeks", Level: LevelBeginner, Cost: "Free",
			Prerequisites: []string{},
			SkillsCovered: []string{"social media", "marketing", "analytics", "content creation"},
			CareerPath:    "Social Media Manager", Link: "#", Domain: "Marketing",
		},
		{
			ID: 23, Title: "Linux System Administration", Provider: "Linux Foundation",
			Duration: "10 weeks", Level: LevelIntermediate, Cost: "$199",
			Prerequisites: []string{},
			SkillsCovered: []string{"linux", "system administration", "bash", "networking"},
			CareerPath:    "System Administrator", Link: "#", Domain: "IT Operations",
		},
		{
			ID: 24, Title: "Artificial Intelligence Fundamentals", Provider: "edX",
			Duration: "12 weeks", Level: LevelAdvanced, Cost: "$149",
			Prerequisites: []string{"python", "mathematics"},
			SkillsCovered: []string{"ai", "machine learning", "neural networks", "python"},
			CareerPath:    "AI Engineer", Link: "#", Domain: "Artificial Intelligence",
		},
		{
			ID: 25, Title: "Product Management Essentials", Provider: "Product School",
			Duration: "8 weeks", Level: LevelIntermediate, Cost: "$299",
			Prerequisites: []string{},
			SkillsCovered: []string{"product management", "strategy", "user research", "roadmapping"},
			CareerPath:    "Product Manager", Link: "#", Domain: "Product Management",
		},
	}

	return courses
}
