package planner

import (
	"strings"

	"github.com/boilerai/boilerplan/internal/catalog"
	"github.com/boilerai/boilerplan/internal/domain"
)

// ClarifyingQuestions lists what the planner would like to know about a
// student before planning. It inspects the profile as entered, before
// defaults are applied.
func ClarifyingQuestions(profile domain.StudentProfile) []string {
	var questions []string
	completed := catalog.NormalizeCodes(profile.CompletedCourses)
	major, _ := domain.ParseMajor(string(profile.Major))

	if len(completed) == 0 {
		questions = append(questions, "What CS and math courses have you already completed? Please list them with course codes (e.g., CS 18000, MA 16100).")
	}
	if profile.CurrentYear == 0 {
		questions = append(questions, "What's your current academic year? (freshman, sophomore, junior, senior)")
	}

	switch major {
	case "":
		questions = append(questions, "Which major are you in? (Computer Science, Data Science, or Artificial Intelligence)")
	case domain.MajorComputerScience:
		if strings.TrimSpace(profile.Track) == "" {
			questions = append(questions, "Which CS track interests you? (Machine Intelligence or Software Engineering)")
		}
	case domain.MajorDataScience:
		questions = append(questions, "Data Science is an interdisciplinary major combining computer science, statistics, and domain expertise. Are you ready for this analytical focus?")
	case domain.MajorArtificialIntelligence:
		questions = append(questions, "AI major combines computer science, psychology, philosophy, and mathematics. Are you comfortable with this interdisciplinary approach?")
	}

	if profile.SummerCourses == nil {
		questions = append(questions, "Are you willing/able to take summer courses to accelerate your progress?")
	}
	if profile.GraduationGoal == "" {
		questions = append(questions, "What's your graduation timeline goal? (3 years, 3.5 years, standard 4 years, or flexible)")
	}
	if profile.CreditLoad == "" {
		questions = append(questions, "Do you prefer a lighter course load (12-15 credits), standard load (15-18 credits), or can you handle a heavy load (18+ credits)?")
	}

	has := make(map[string]bool, len(completed))
	advanced := false
	for _, c := range completed {
		has[c] = true
		if strings.HasPrefix(c, "CS 3") || strings.HasPrefix(c, "CS 4") {
			advanced = true
		}
	}
	if has["CS 24000"] && !has["CS 18200"] {
		questions = append(questions, "I notice you've taken CS 24000 but not CS 18200 - did you skip it or take it somewhere else?")
	}
	if advanced {
		questions = append(questions, "Have you taken any summer courses or are you ahead of the typical schedule?")
	}
	return questions
}
