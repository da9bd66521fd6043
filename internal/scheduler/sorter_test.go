package scheduler

import (
	"testing"

	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func makeCandidate(code string, index int, score float64) ScoredCandidate {
	return ScoredCandidate{
		Input: ScoringInput{Course: domain.CourseRecord{Code: code, Credits: 3}, CatalogIndex: index},
		Score: score,
	}
}

func codesOf(cs []ScoredCandidate) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Input.Course.Code)
	}
	return out
}

func TestCanonicalSort_ScoreDescending(t *testing.T) {
	candidates := []ScoredCandidate{
		makeCandidate("MA 16100", 0, 20),
		makeCandidate("CS 18000", 1, 120),
		makeCandidate("CS 25100", 2, 70),
	}

	CanonicalSort(candidates)

	assert.Equal(t, []string{"CS 18000", "CS 25100", "MA 16100"}, codesOf(candidates))
}

func TestCanonicalSort_CatalogOrderTiebreak(t *testing.T) {
	candidates := []ScoredCandidate{
		makeCandidate("ENGL 10600", 9, 20),
		makeCandidate("MA 16100", 3, 20),
		makeCandidate("AA 10000", 3, 20),
	}

	CanonicalSort(candidates)

	assert.Equal(t, []string{"AA 10000", "MA 16100", "ENGL 10600"}, codesOf(candidates))
}

func TestCanonicalSort_Deterministic(t *testing.T) {
	build := func() []ScoredCandidate {
		return []ScoredCandidate{
			makeCandidate("C", 2, 10),
			makeCandidate("A", 0, 10),
			makeCandidate("B", 1, 40),
			makeCandidate("D", 0, 10),
		}
	}
	first, second := build(), build()
	CanonicalSort(first)
	CanonicalSort(second)
	assert.Equal(t, codesOf(first), codesOf(second))
}
