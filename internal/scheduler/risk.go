package scheduler

import (
	"fmt"
	"math"

	"github.com/boilerai/boilerplan/internal/domain"
)

const (
	baseProbability = 0.75
	minProbability  = 0.10
	maxProbability  = 0.95

	highAverageCredits = 18.0
	lowAverageCredits  = 15.0
)

type RiskInput struct {
	Schedules []domain.CourseSchedule
	Goal      domain.GraduationGoal
	// UnscheduledCredits is the credit total of requirements that did not
	// fit in the planned window.
	UnscheduledCredits int
	RegularCeiling     int
}

type RiskResult struct {
	Level              domain.RiskLevel
	SuccessProbability float64
	AverageCredits     float64
	SemestersNeeded    int
	Warnings           []string
	Recommendations    []string
}

// ComputeRisk estimates how likely the student is to complete the plan on
// the chosen timeline.
func (p Policy) ComputeRisk(input RiskInput) RiskResult {
	var res RiskResult
	prob := baseProbability

	regular, regularCredits := 0, 0
	for _, s := range input.Schedules {
		if s.Term != domain.TermSummer {
			regular++
			regularCredits += s.TotalCredits
		}
	}
	if regular > 0 {
		res.AverageCredits = float64(regularCredits) / float64(regular)
		switch {
		case res.AverageCredits > highAverageCredits:
			prob -= 0.2
			res.Warnings = append(res.Warnings, "High average credit load may be difficult to sustain")
		case res.AverageCredits < lowAverageCredits:
			prob -= 0.1
			res.Warnings = append(res.Warnings, "Low credit load - plan may not meet graduation requirements")
		default:
			prob += 0.1
		}
	}

	heavy := 0
	for _, s := range input.Schedules {
		if s.CSCredits > p.CSHeavyCredits {
			heavy++
		}
	}
	if heavy*2 > len(input.Schedules) {
		prob -= 0.15
		res.Warnings = append(res.Warnings, fmt.Sprintf("%d of %d semesters carry more than %d CS credits", heavy, len(input.Schedules), p.CSHeavyCredits))
	}

	res.SemestersNeeded = len(input.Schedules)
	if input.UnscheduledCredits > 0 && input.RegularCeiling > 0 {
		res.SemestersNeeded += int(math.Ceil(float64(input.UnscheduledCredits) / float64(input.RegularCeiling)))
	}

	switch input.Goal {
	case domain.GoalThreeYear:
		if limit := p.SemesterCount(domain.GoalThreeYear); res.SemestersNeeded > limit {
			prob -= 0.3
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("3-year graduation timeline is unlikely: about %d semesters are needed", res.SemestersNeeded))
		}
	case domain.GoalFourYear:
		if limit := p.SemesterCount(domain.GoalFourYear); res.SemestersNeeded > limit {
			prob -= 0.1
			res.Warnings = append(res.Warnings, "May need an extra semester to complete all requirements")
		}
	}

	if input.UnscheduledCredits > 0 {
		prob -= 0.2
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("%d credits of requirements do not fit in the planned semesters", input.UnscheduledCredits))
	}

	if input.Goal.Accelerated() {
		res.Recommendations = append(res.Recommendations, "Consider summer courses to lighten regular semester loads")
	}
	res.Recommendations = append(res.Recommendations,
		"Meet with academic advisor to validate this plan",
		"Monitor your progress each semester and adjust as needed",
	)

	res.SuccessProbability = clampProbability(prob)
	res.Level = riskLevel(res.SuccessProbability)
	return res
}

func clampProbability(p float64) float64 {
	p = math.Round(p*100) / 100
	return math.Max(minProbability, math.Min(maxProbability, p))
}

func riskLevel(p float64) domain.RiskLevel {
	switch {
	case p >= 0.7:
		return domain.RiskOnTrack
	case p >= 0.4:
		return domain.RiskAtRisk
	default:
		return domain.RiskCritical
	}
}
