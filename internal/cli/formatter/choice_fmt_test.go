package formatter

import (
	"strings"
	"testing"

	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatChoiceRequest_CatalogOrderWithDetails(t *testing.T) {
	req := domain.ChoiceRequest{
		"stats_course": {
			Key: "stats_course", Category: "Statistics Course", RequirementType: "choose 1", Choose: 1, Order: 2,
			Options: []domain.ChoiceOption{{Code: "STAT 41600", Title: "Probability"}},
		},
		"ai_course": {
			Key: "ai_course", Category: "AI/ML Course Selection", RequirementType: "choose 1", Choose: 1, Order: 1,
			Options: []domain.ChoiceOption{
				{Code: "CS 47100", Title: "Artificial Intelligence", Description: "Search and reasoning", BestFor: []string{"Research"}},
				{Code: "CS 47300", Title: "Web Information Search"},
			},
		},
	}

	out := stripANSI(FormatChoiceRequest(req))
	assert.Contains(t, out, "AI/ML Course Selection (choose 1) [ai_course]")
	assert.Contains(t, out, " 1. CS 47100  Artificial Intelligence")
	assert.Contains(t, out, " 2. CS 47300  Web Information Search")
	assert.Contains(t, out, "Search and reasoning")
	assert.Contains(t, out, "best for: Research")
	assert.Less(t, strings.Index(out, "AI/ML Course Selection"), strings.Index(out, "Statistics Course"))
}

func TestFormatChoiceRequest_Empty(t *testing.T) {
	assert.Contains(t, FormatChoiceRequest(nil), "No course selections pending")
}

func TestFormatPicked(t *testing.T) {
	out := stripANSI(FormatPicked(domain.SelectedChoices{
		"stats_course": {"STAT 41600"},
		"ai_course":    {"CS 47100"},
	}))
	assert.Less(t, strings.Index(out, "ai_course"), strings.Index(out, "stats_course"))
	assert.Contains(t, out, "✔ ai_course  CS 47100")

	assert.Contains(t, FormatPicked(nil), "Nothing in your reply matched")
}
