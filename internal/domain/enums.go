package domain

import (
	"fmt"
	"strings"
)

type Major string

const (
	MajorComputerScience        Major = "computer_science"
	MajorDataScience            Major = "data_science"
	MajorArtificialIntelligence Major = "artificial_intelligence"
)

// ValidMajors is the canonical set of accepted majors in catalog order.
var ValidMajors = []Major{MajorComputerScience, MajorDataScience, MajorArtificialIntelligence}

var majorAliases = map[string]Major{
	"computer_science":        MajorComputerScience,
	"cs":                      MajorComputerScience,
	"compsci":                 MajorComputerScience,
	"data_science":            MajorDataScience,
	"ds":                      MajorDataScience,
	"artificial_intelligence": MajorArtificialIntelligence,
	"ai":                      MajorArtificialIntelligence,
}

// ParseMajor accepts canonical keys, display names ("Computer Science") and
// short aliases ("cs", "ds", "ai").
func ParseMajor(s string) (Major, error) {
	key := enumKey(s)
	if m, ok := majorAliases[key]; ok {
		return m, nil
	}
	return "", fmt.Errorf("unknown major %q", s)
}

func (m Major) DisplayName() string {
	switch m {
	case MajorComputerScience:
		return "Computer Science"
	case MajorDataScience:
		return "Data Science"
	case MajorArtificialIntelligence:
		return "Artificial Intelligence"
	default:
		return string(m)
	}
}

type Term string

const (
	TermFall   Term = "Fall"
	TermSpring Term = "Spring"
	TermSummer Term = "Summer"
)

func ParseTerm(s string) (Term, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fall", "autumn":
		return TermFall, nil
	case "spring":
		return TermSpring, nil
	case "summer":
		return TermSummer, nil
	}
	return "", fmt.Errorf("unknown term %q", s)
}

type CreditLoad string

const (
	LoadLight    CreditLoad = "light"
	LoadStandard CreditLoad = "standard"
	LoadHeavy    CreditLoad = "heavy"
)

func ParseCreditLoad(s string) (CreditLoad, error) {
	switch CreditLoad(enumKey(s)) {
	case LoadLight:
		return LoadLight, nil
	case LoadStandard, "normal":
		return LoadStandard, nil
	case LoadHeavy:
		return LoadHeavy, nil
	}
	return "", fmt.Errorf("unknown credit load %q", s)
}

type GraduationGoal string

const (
	GoalThreeYear        GraduationGoal = "3_year"
	GoalThreeAndHalfYear GraduationGoal = "3.5_year"
	GoalFourYear         GraduationGoal = "4_year"
	GoalFlexible         GraduationGoal = "flexible"
)

var goalAliases = map[string]GraduationGoal{
	"3_year":    GoalThreeYear,
	"3":         GoalThreeYear,
	"3_years":   GoalThreeYear,
	"3.5_year":  GoalThreeAndHalfYear,
	"3.5":       GoalThreeAndHalfYear,
	"3.5_years": GoalThreeAndHalfYear,
	"4_year":    GoalFourYear,
	"4":         GoalFourYear,
	"4_years":   GoalFourYear,
	"standard":  GoalFourYear,
	"flexible":  GoalFlexible,
}

func ParseGraduationGoal(s string) (GraduationGoal, error) {
	if g, ok := goalAliases[enumKey(s)]; ok {
		return g, nil
	}
	return "", fmt.Errorf("unknown graduation goal %q", s)
}

// Accelerated reports whether the goal is shorter than the standard four years.
func (g GraduationGoal) Accelerated() bool {
	return g == GoalThreeYear || g == GoalThreeAndHalfYear
}

// Label renders the goal for humans, e.g. "3.5 year".
func (g GraduationGoal) Label() string {
	return strings.ReplaceAll(string(g), "_", " ")
}

// RiskLevel buckets a plan's success probability.
type RiskLevel string

const (
	RiskOnTrack  RiskLevel = "on_track"
	RiskAtRisk   RiskLevel = "at_risk"
	RiskCritical RiskLevel = "critical"
)

type PlanStatus string

const (
	PlanPendingChoices PlanStatus = "pending_choices"
	PlanFinal          PlanStatus = "final"
)

func enumKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.Join(strings.Fields(s), "_")
}
