package cli

import (
	"fmt"

	"github.com/boilerai/boilerplan/internal/cli/formatter"
	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ChoicePicker asks the user to resolve a round of pending choices.
type ChoicePicker func(req domain.ChoiceRequest) (domain.SelectedChoices, error)

func boilerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// pickTarget holds the form value for one choice.
type pickTarget struct {
	single string
	multi  []string
}

func (t *pickTarget) picks() []string {
	if t.single != "" {
		return []string{t.single}
	}
	return t.multi
}

// choiceForm builds one form group per pending choice, in catalog order.
// Single picks use a select; larger quotas use a multi-select limited to
// the quota.
func choiceForm(req domain.ChoiceRequest, targets map[string]*pickTarget) *huh.Form {
	var groups []*huh.Group
	for _, c := range req.Sorted() {
		options := make([]huh.Option[string], 0, len(c.Options))
		for _, o := range c.Options {
			options = append(options, huh.NewOption(optionLabel(o), o.Code))
		}
		title := fmt.Sprintf("%s (%s)", c.Category, c.RequirementType)

		target := &pickTarget{}
		targets[c.Key] = target

		if c.Choose <= 1 {
			groups = append(groups, huh.NewGroup(
				huh.NewSelect[string]().
					Title(title).
					Options(options...).
					Value(&target.single),
			))
			continue
		}

		groups = append(groups, huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(title).
				Description(fmt.Sprintf("Pick %d. Space toggles, enter confirms.", c.Choose)).
				Options(options...).
				Limit(c.Choose).
				Value(&target.multi).
				Validate(validatePickCount(c.Choose)),
		))
	}
	return huh.NewForm(groups...).WithTheme(boilerHuhTheme()).WithShowHelp(false)
}

func validatePickCount(quota int) func([]string) error {
	return func(v []string) error {
		if len(v) != quota {
			return fmt.Errorf("pick exactly %d", quota)
		}
		return nil
	}
}

func optionLabel(o domain.ChoiceOption) string {
	if o.Title == "" || o.Title == o.Code {
		return o.Code
	}
	return fmt.Sprintf("%s  %s", o.Code, o.Title)
}

// huhChoicePicker runs the choice form in the terminal.
func huhChoicePicker(req domain.ChoiceRequest) (domain.SelectedChoices, error) {
	targets := make(map[string]*pickTarget, len(req))
	if err := choiceForm(req, targets).Run(); err != nil {
		return nil, err
	}
	return collectPicks(targets), nil
}

func collectPicks(targets map[string]*pickTarget) domain.SelectedChoices {
	out := make(domain.SelectedChoices, len(targets))
	for key, t := range targets {
		if picks := t.picks(); len(picks) > 0 {
			out[key] = picks
		}
	}
	return out
}
