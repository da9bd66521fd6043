package scheduler

import (
	"fmt"

	"github.com/boilerai/boilerplan/internal/domain"
)

type ReasonCode string

const (
	ReasonFoundation      ReasonCode = "FOUNDATION"
	ReasonUnlocksMany     ReasonCode = "UNLOCKS_MANY"
	ReasonTrackCourse     ReasonCode = "TRACK_COURSE"
	ReasonLimitedOffering ReasonCode = "LIMITED_OFFERING"
	ReasonYearAppropriate ReasonCode = "YEAR_APPROPRIATE"
)

// Reason explains one scoring contribution.
type Reason struct {
	Code        ReasonCode
	Message     string
	WeightDelta float64
}

// ScoringWeights are the per-factor bonuses.
type ScoringWeights struct {
	Foundation      float64
	UnlocksMany     float64
	TrackCourse     float64
	LimitedOffering float64
	YearAppropriate float64
}

func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		Foundation:      100,
		UnlocksMany:     50,
		TrackCourse:     40,
		LimitedOffering: 30,
		YearAppropriate: 20,
	}
}

// ScoringInput holds everything the scorer needs to know about one
// available course in one semester.
type ScoringInput struct {
	Course       domain.CourseRecord
	CatalogIndex int
	Slot         SemesterSlot
	Foundation   bool
	TrackCourse  bool
	// Unlocks counts still-needed courses that name this course as a
	// direct prerequisite.
	Unlocks int
	Weights ScoringWeights
}

type ScoredCandidate struct {
	Input   ScoringInput
	Score   float64
	Reasons []Reason
}

// unlocksThreshold is the number of dependents that earns the bonus.
const unlocksThreshold = 2

var yearLevels = map[int][]int{
	1: {1, 2},
	2: {1, 2, 3},
	3: {2, 3, 4},
}

// ScoreCourse applies all scoring factors to a candidate course.
func ScoreCourse(input ScoringInput) ScoredCandidate {
	sc := ScoredCandidate{Input: input}

	factors := []func(ScoringInput) (float64, *Reason){
		scoreFoundation,
		scoreUnlocks,
		scoreTrack,
		scoreLimitedOffering,
		scoreYearAppropriate,
	}

	for _, f := range factors {
		delta, reason := f(input)
		sc.Score += delta
		if reason != nil {
			sc.Reasons = append(sc.Reasons, *reason)
		}
	}
	return sc
}

func scoreFoundation(input ScoringInput) (float64, *Reason) {
	if !input.Foundation {
		return 0, nil
	}
	delta := input.Weights.Foundation
	return delta, &Reason{
		Code:        ReasonFoundation,
		Message:     "Foundation course for the major",
		WeightDelta: delta,
	}
}

func scoreUnlocks(input ScoringInput) (float64, *Reason) {
	if input.Unlocks < unlocksThreshold {
		return 0, nil
	}
	delta := input.Weights.UnlocksMany
	return delta, &Reason{
		Code:        ReasonUnlocksMany,
		Message:     fmt.Sprintf("Prerequisite for %d remaining courses", input.Unlocks),
		WeightDelta: delta,
	}
}

func scoreTrack(input ScoringInput) (float64, *Reason) {
	if !input.TrackCourse {
		return 0, nil
	}
	delta := input.Weights.TrackCourse
	return delta, &Reason{
		Code:        ReasonTrackCourse,
		Message:     "Required by the chosen track",
		WeightDelta: delta,
	}
}

func scoreLimitedOffering(input ScoringInput) (float64, *Reason) {
	c := input.Course
	if !c.LimitedOffering() || !c.OfferedIn(input.Slot.Term) {
		return 0, nil
	}
	delta := input.Weights.LimitedOffering
	return delta, &Reason{
		Code:        ReasonLimitedOffering,
		Message:     fmt.Sprintf("Only offered in %s", input.Slot.Term),
		WeightDelta: delta,
	}
}

func scoreYearAppropriate(input ScoringInput) (float64, *Reason) {
	if !levelFitsYear(input.Course.Level, input.Slot.Year) {
		return 0, nil
	}
	delta := input.Weights.YearAppropriate
	return delta, &Reason{
		Code:        ReasonYearAppropriate,
		Message:     fmt.Sprintf("Level %d00 fits year %d", input.Course.Level, input.Slot.Year),
		WeightDelta: delta,
	}
}

func levelFitsYear(level, year int) bool {
	levels, ok := yearLevels[year]
	if !ok {
		levels = []int{3, 4}
	}
	for _, l := range levels {
		if l == level {
			return true
		}
	}
	return false
}
