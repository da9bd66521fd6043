package cli

import (
	"context"
	"fmt"

	"github.com/boilerai/boilerplan/internal/cli/formatter"
	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/boilerai/boilerplan/internal/planner"
	"github.com/spf13/cobra"
)

func newStudentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "student",
		Aliases: []string{"students"},
		Short:   "Manage student profiles",
	}

	cmd.AddCommand(
		newStudentAddCmd(app),
		newStudentListCmd(app),
		newStudentShowCmd(app),
		newStudentUpdateCmd(app),
		newStudentCompleteCmd(app),
		newStudentRemoveCmd(app),
		newStudentImportCmd(app),
	)

	return cmd
}

// profileFlags are the profile fields shared by add and update.
type profileFlags struct {
	major, track, term, load, goal string
	year                           int
	completed                      []string
	summer                         optionalBoolFlag
}

func (f *profileFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.major, "major", "", "major: cs, ds or ai")
	fs.StringVar(&f.track, "track", "", "CS track, e.g. \"Machine Intelligence\" or se")
	fs.IntVar(&f.year, "year", 1, "current academic year (1-4)")
	fs.StringVar(&f.term, "term", string(domain.TermFall), "current term: Fall, Spring or Summer")
	fs.StringSliceVar(&f.completed, "completed", nil, "completed course codes, comma separated")
	fs.StringVar(&f.load, "load", "", "credit load: light, standard or heavy")
	fs.StringVar(&f.goal, "goal", "", "graduation goal: 3, 3.5, 4 or flexible")
	addOptionalBool(fs, &f.summer, "summer", "willing to take summer courses (yes/no)")
}

// apply copies the flags the user actually set onto p.
func (f *profileFlags) apply(cmd *cobra.Command, p *domain.StudentProfile) {
	changed := cmd.Flags().Changed
	if changed("major") {
		p.Major = domain.Major(f.major)
	}
	if changed("track") {
		p.Track = f.track
	}
	if changed("year") {
		p.CurrentYear = f.year
	}
	if changed("term") {
		p.CurrentTerm = domain.Term(f.term)
	}
	if changed("completed") {
		p.CompletedCourses = f.completed
	}
	if changed("load") {
		p.CreditLoad = domain.CreditLoad(f.load)
	}
	if changed("goal") {
		p.GraduationGoal = domain.GraduationGoal(f.goal)
	}
	if changed("summer") {
		p.SummerCourses = f.summer.value
	}
}

func newStudentAddCmd(app *App) *cobra.Command {
	var name string
	var flags profileFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a student profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			s := &domain.Student{
				Name: name,
				Profile: domain.StudentProfile{
					CurrentYear: flags.year,
					CurrentTerm: domain.Term(flags.term),
				},
			}
			flags.apply(cmd, &s.Profile)

			if err := app.Students.Create(ctx, s); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created student %s %s (%s)\n",
				formatter.StudentRef(s.Seq), s.Name, s.Profile.Major.DisplayName())
			if qs := planner.ClarifyingQuestions(s.Profile); len(qs) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(fmt.Sprintf("%d open questions; see: boilerplan student show %d", len(qs), s.Seq)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "student name")
	flags.register(cmd)
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("major")

	return cmd
}

func newStudentListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List student profiles",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			students, err := app.Students.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStudentList(students))
			return nil
		},
	}
}

func newStudentShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show STUDENT",
		Short: "Show a profile and what the planner still wants to know",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Students.Resolve(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStudent(s, planner.ClarifyingQuestions(s.Profile)))
			return nil
		},
	}
}

func newStudentUpdateCmd(app *App) *cobra.Command {
	var name string
	var flags profileFlags

	cmd := &cobra.Command{
		Use:   "update STUDENT",
		Short: "Change profile fields; only the flags given are updated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := app.Students.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				s.Name = name
			}
			flags.apply(cmd, &s.Profile)

			if err := app.Students.Update(ctx, s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated student %s %s\n", formatter.StudentRef(s.Seq), s.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "student name")
	flags.register(cmd)

	return cmd
}

func newStudentCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete STUDENT CODE...",
		Short: "Record completed courses",
		Long:  "Record completed courses. Shorthand codes like cs180 are accepted.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := app.Students.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			before := len(s.Profile.CompletedCourses)
			updated, err := app.Students.AddCompleted(ctx, s.ID, args[1:])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d new course(s) for %s; %d completed in total\n",
				len(updated.Profile.CompletedCourses)-before, updated.Name, len(updated.Profile.CompletedCourses))
			return nil
		},
	}
}

func newStudentRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm STUDENT",
		Short: "Delete a student with their saved choices and plans",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := app.Students.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Students.Delete(ctx, s.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted student %s %s\n", formatter.StudentRef(s.Seq), s.Name)
			return nil
		},
	}
}

func newStudentImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Create students from a JSON or YAML roster file",
		Long: `Create students from a roster file. Files ending in .yaml or .yml are read
as YAML, anything else as JSON. The whole roster is validated first and
either every student is created or none are.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Import.ImportRoster(context.Background(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Imported %d student(s) with %d saved selection(s)\n", len(res.Students), res.SelectionCount)
			fmt.Fprintln(w, formatter.FormatStudentList(res.Students))
			return nil
		},
	}
}
