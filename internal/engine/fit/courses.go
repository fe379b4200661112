package fit

import (
	"strings"
)

// Course is one learning resource from the static catalog.
type Course struct {
	Title    string `json:"title"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Duration string `json:"duration"`
}

// Suggestion caps: course lookups cover the most pressing gaps only.
const (
	DefaultMaxCourseGaps = 5
	DefaultCoursesPerGap = 3
)

// courseCatalog is the offline course database, keyed by lowercase skill.
// No network lookups: unknown skills simply have no suggestions.
var courseCatalog = map[string][]Course{
	"python": {
		{Title: "Python for Everybody", Platform: "Coursera", URL: "https://www.coursera.org/specializations/python", Duration: "8 months"},
		{Title: "Complete Python Bootcamp", Platform: "Udemy", URL: "https://www.udemy.com/course/complete-python-bootcamp/", Duration: "12 hours"},
		{Title: "Python Programming Fundamentals", Platform: "edX", URL: "https://www.edx.org/course/python-programming-fundamentals", Duration: "6 weeks"},
	},
	"machine learning": {
		{Title: "Machine Learning by Andrew Ng", Platform: "Coursera", URL: "https://www.coursera.org/learn/machine-learning", Duration: "11 weeks"},
		{Title: "Machine Learning A-Z", Platform: "Udemy", URL: "https://www.udemy.com/course/machine-learning-az/", Duration: "40 hours"},
		{Title: "Introduction to Machine Learning", Platform: "edX", URL: "https://www.edx.org/course/introduction-to-machine-learning", Duration: "8 weeks"},
	},
	"data science": {
		{Title: "IBM Data Science Professional Certificate", Platform: "Coursera", URL: "https://www.coursera.org/professional-certificates/ibm-data-science", Duration: "11 months"},
		{Title: "Data Science and Machine Learning Bootcamp", Platform: "Udemy", URL: "https://www.udemy.com/course/data-science-and-machine-learning-bootcamp-with-r/", Duration: "25 hours"},
		{Title: "Data Science MicroMasters", Platform: "edX", URL: "https://www.edx.org/micromasters/columbiax-data-science", Duration: "1 year"},
	},
	"javascript": {
		{Title: "JavaScript Algorithms and Data Structures", Platform: "freeCodeCamp", URL: "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures/", Duration: "300 hours"},
		{Title: "The Modern JavaScript Bootcamp", Platform: "Udemy", URL: "https://www.udemy.com/course/modern-javascript/", Duration: "30 hours"},
		{Title: "JavaScript Introduction", Platform: "Coursera", URL: "https://www.coursera.org/learn/javascript-introduction", Duration: "20 hours"},
	},
	"react": {
		{Title: "React - The Complete Guide", Platform: "Udemy", URL: "https://www.udemy.com/course/react-the-complete-guide-incl-redux/", Duration: "40 hours"},
		{Title: "Front-End Web Development with React", Platform: "Coursera", URL: "https://www.coursera.org/learn/front-end-react", Duration: "4 months"},
		{Title: "React for Beginners", Platform: "Codecademy", URL: "https://www.codecademy.com/learn/react-101", Duration: "10 hours"},
	},
	"aws": {
		{Title: "AWS Cloud Practitioner Essentials", Platform: "Coursera", URL: "https://www.coursera.org/learn/aws-cloud-practitioner-essentials", Duration: "4 weeks"},
		{Title: "AWS Certified Solutions Architect", Platform: "Udemy", URL: "https://www.udemy.com/course/aws-solutions-architect-associate/", Duration: "20 hours"},
		{Title: "AWS Fundamentals", Platform: "edX", URL: "https://www.edx.org/course/aws-fundamentals", Duration: "8 weeks"},
	},
	"docker": {
		{Title: "Docker for Beginners", Platform: "Udemy", URL: "https://www.udemy.com/course/docker-for-beginners/", Duration: "6 hours"},
		{Title: "Container Orchestration with Docker", Platform: "Coursera", URL: "https://www.coursera.org/learn/container-orchestration-docker", Duration: "8 weeks"},
		{Title: "Docker Essentials", Platform: "Linux Academy", URL: "https://linuxacademy.com/course/docker-essentials/", Duration: "4 hours"},
	},
	"kubernetes": {
		{Title: "Getting Started with Kubernetes", Platform: "Coursera", URL: "https://www.coursera.org/learn/getting-started-with-kubernetes", Duration: "6 weeks"},
		{Title: "Kubernetes for the Absolute Beginners", Platform: "Udemy", URL: "https://www.udemy.com/course/learn-kubernetes/", Duration: "6 hours"},
		{Title: "Introduction to Kubernetes", Platform: "edX", URL: "https://www.edx.org/course/introduction-to-kubernetes", Duration: "4 weeks"},
	},
	"sql": {
		{Title: "SQL for Data Science", Platform: "Coursera", URL: "https://www.coursera.org/learn/sql-for-data-science", Duration: "4 weeks"},
		{Title: "The Complete SQL Bootcamp", Platform: "Udemy", URL: "https://www.udemy.com/course/the-complete-sql-bootcamp/", Duration: "9 hours"},
		{Title: "Databases: Relational Databases and SQL", Platform: "edX", URL: "https://www.edx.org/course/databases-5-sql", Duration: "2 weeks"},
	},
}

// SuggestCourses maps skill gaps to catalog courses, capped at maxGaps gaps
// with perGap courses each. Gaps without catalog entries are skipped.
func SuggestCourses(gaps []string, maxGaps, perGap int) map[string][]Course {
	if maxGaps <= 0 {
		maxGaps = DefaultMaxCourseGaps
	}
	if perGap <= 0 {
		perGap = DefaultCoursesPerGap
	}

	suggestions := make(map[string][]Course)
	taken := 0
	for _, gap := range gaps {
		if taken >= maxGaps {
			break
		}
		key := strings.ToLower(strings.TrimSpace(gap))
		courses, ok := courseCatalog[key]
		if !ok {
			continue
		}
		if len(courses) > perGap {
			courses = courses[:perGap]
		}
		suggestions[key] = courses
		taken++
	}
	return suggestions
}
