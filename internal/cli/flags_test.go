package cli

import (
	"testing"

	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionFlag_RepeatsAndSplits(t *testing.T) {
	var f selectionFlag
	require.NoError(t, f.Set("mi_electives=CS 31400, cs573"))
	require.NoError(t, f.Set("ai_course=CS 47100"))
	require.NoError(t, f.Set("mi_electives=CS 44800"))

	assert.Equal(t, domain.SelectedChoices{
		"mi_electives": {"CS 31400", "cs573", "CS 44800"},
		"ai_course":    {"CS 47100"},
	}, f.values)
	assert.Equal(t, "ai_course=CS 47100 mi_electives=CS 31400,cs573,CS 44800", f.String())
}

func TestSelectionFlag_Rejects(t *testing.T) {
	var f selectionFlag
	assert.Error(t, f.Set("ai_course"))
	assert.Error(t, f.Set("=CS 47100"))
	assert.Error(t, f.Set("ai_course= , "))
	assert.Empty(t, f.values)
}

func TestOptionalBoolFlag(t *testing.T) {
	var f optionalBoolFlag
	assert.Equal(t, "", f.String())

	for in, want := range map[string]bool{"true": true, "no": false, "Y": true, "0": false} {
		require.NoError(t, f.Set(in), in)
		require.NotNil(t, f.value)
		assert.Equal(t, want, *f.value, in)
	}
	assert.Error(t, f.Set("maybe"))
}

func TestOutputFormat(t *testing.T) {
	var o outputFormat
	assert.Equal(t, "text", o.String())
	require.NoError(t, o.Set("JSON"))
	assert.Equal(t, outputJSON, o)
	assert.Error(t, o.Set("xml"))
}

func TestCollectPicks(t *testing.T) {
	got := collectPicks(map[string]*pickTarget{
		domain.TrackChoiceKey: {single: "Machine Intelligence"},
		"mi_electives":        {multi: []string{"CS 31400", "CS 57300"}},
		"ai_course":           {},
	})
	assert.Equal(t, domain.SelectedChoices{
		domain.TrackChoiceKey: {"Machine Intelligence"},
		"mi_electives":        {"CS 31400", "CS 57300"},
	}, got)
}

func TestValidatePickCount(t *testing.T) {
	check := validatePickCount(2)
	assert.Error(t, check([]string{"CS 31400"}))
	assert.NoError(t, check([]string{"CS 31400", "CS 57300"}))
}

func TestOptionLabel(t *testing.T) {
	assert.Equal(t, "Machine Intelligence", optionLabel(domain.ChoiceOption{Code: "Machine Intelligence", Title: "Machine Intelligence"}))
	assert.Equal(t, "CS 47100  Artificial Intelligence", optionLabel(domain.ChoiceOption{Code: "CS 47100", Title: "Artificial Intelligence"}))
}
