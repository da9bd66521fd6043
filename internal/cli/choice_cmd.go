package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/boilerai/boilerplan/internal/cli/formatter"
	"github.com/boilerai/boilerplan/internal/service"
	"github.com/spf13/cobra"
)

func newChoiceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "choice",
		Aliases: []string{"choices"},
		Short:   "Resolve requirement choices such as tracks and electives",
	}

	cmd.AddCommand(
		newChoicePendingCmd(app),
		newChoicePickCmd(app),
		newChoiceResetCmd(app),
	)

	return cmd
}

func newChoicePendingCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pending STUDENT",
		Short: "List the choices still open for a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := app.Students.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			req, err := app.Plans.Pending(ctx, s.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChoiceRequest(req))
			return nil
		},
	}
}

func newChoicePickCmd(app *App) *cobra.Command {
	var sel selectionFlag
	var format outputFormat

	cmd := &cobra.Command{
		Use:   "pick STUDENT [REPLY]",
		Short: "Make choices from a free-text reply or explicit --set values",
		Long: `Make choices for a student and regenerate the plan.

A reply is matched against the pending options by course code, title or a
unique keyword, e.g. "CS 47100 and the probability course". Explicit
selections use --set key=CODE[,CODE] and may be repeated.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := app.Students.Resolve(ctx, args[0])
			if err != nil {
				return err
			}

			reply := ""
			if len(args) == 2 {
				reply = strings.TrimSpace(args[1])
			}
			if reply == "" && len(sel.values) == 0 {
				return errors.New("give a reply or at least one --set key=CODE")
			}

			var outcome *service.ChoiceOutcome
			if len(sel.values) > 0 {
				if outcome, err = app.Plans.Choose(ctx, s.ID, sel.values); err != nil {
					return err
				}
			}
			if reply != "" {
				textOutcome, err := app.Plans.ChooseFromText(ctx, s.ID, reply)
				if err != nil {
					return err
				}
				outcome = mergeOutcomes(outcome, textOutcome)
			}

			out := cmd.OutOrStdout()
			if format == outputText {
				fmt.Fprint(out, formatter.FormatPicked(outcome.Picked))
			}
			if outcome.Snapshot == nil {
				if format != outputText {
					return writeStructured(out, format, outcome.Picked)
				}
				return nil
			}
			if format == outputText {
				fmt.Fprintln(out)
			}
			return writePlan(out, format, &outcome.Snapshot.Plan)
		},
	}

	cmd.Flags().Var(&sel, "set", "explicit selection key=CODE[,CODE] (repeatable)")
	addOutputFlag(cmd.Flags(), &format)

	return cmd
}

// mergeOutcomes combines an explicit round with a text round that ran after
// it. The later snapshot wins.
func mergeOutcomes(first, second *service.ChoiceOutcome) *service.ChoiceOutcome {
	if first == nil {
		return second
	}
	merged := &service.ChoiceOutcome{
		Picked:   first.Picked.Merge(second.Picked),
		Snapshot: first.Snapshot,
	}
	if second.Snapshot != nil {
		merged.Snapshot = second.Snapshot
	}
	return merged
}

func newChoiceResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset STUDENT",
		Short: "Forget every saved choice for a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := app.Students.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Plans.ResetChoices(ctx, s.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared saved choices for %s %s\n", formatter.StudentRef(s.Seq), s.Name)
			return nil
		},
	}
}
