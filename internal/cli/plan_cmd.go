package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/boilerai/boilerplan/internal/cli/formatter"
	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/spf13/cobra"
)

// maxPickRounds bounds the interactive loop. Tracks are picked in the first
// round and track courses in the second.
const maxPickRounds = 3

var errNeedsTerminal = errors.New("interactive selection needs a terminal; use: boilerplan choice pick")

func newPlanCmd(app *App) *cobra.Command {
	var format outputFormat
	var pick bool

	cmd := &cobra.Command{
		Use:   "plan STUDENT",
		Short: "Generate a graduation plan",
		Long: `Generate a graduation plan from the student's profile and saved course choices.

When requirement choices are still open the plan lists them instead of
semesters. Pass --interactive to pick them in the terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := app.Students.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if pick && app.PickChoices == nil && !app.interactive() {
				return errNeedsTerminal
			}

			snap, err := app.Plans.Generate(ctx, s.ID)
			if err != nil {
				return err
			}
			if pick {
				if snap, err = pickUntilFinal(ctx, app, s.ID, snap); err != nil {
					return err
				}
			}
			return writePlan(cmd.OutOrStdout(), format, &snap.Plan)
		},
	}

	addOutputFlag(cmd.Flags(), &format)
	cmd.Flags().BoolVarP(&pick, "interactive", "i", false, "pick pending course choices in the terminal")

	cmd.AddCommand(newPlanHistoryCmd(app))

	return cmd
}

// pickUntilFinal prompts for pending choices round by round until the plan
// is final, the user picks nothing or the round limit is reached.
func pickUntilFinal(ctx context.Context, app *App, studentID string, snap *domain.PlanSnapshot) (*domain.PlanSnapshot, error) {
	pick := app.picker()
	for round := 0; round < maxPickRounds && snap.Plan.NeedsChoices(); round++ {
		picks, err := pick(snap.Plan.ChoiceRequest)
		if err != nil {
			return nil, err
		}
		if len(picks) == 0 {
			break
		}
		outcome, err := app.Plans.Choose(ctx, studentID, picks)
		if err != nil {
			return nil, err
		}
		if outcome.Snapshot == nil {
			break
		}
		snap = outcome.Snapshot
	}
	return snap, nil
}

func writePlan(w io.Writer, format outputFormat, plan *domain.GraduationPlan) error {
	if format != outputText {
		return writeStructured(w, format, plan)
	}
	_, err := fmt.Fprintln(w, formatter.FormatPlan(plan))
	return err
}

func newPlanHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history STUDENT",
		Short: "List previously generated plans, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := app.Students.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			snaps, err := app.Plans.History(ctx, s.ID, limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlanHistory(snaps))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "number of plans to show (0 for all)")

	return cmd
}
