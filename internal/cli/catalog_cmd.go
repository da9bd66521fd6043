package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/boilerai/boilerplan/internal/cli/formatter"
	"github.com/boilerai/boilerplan/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var errBrowseNeedsTerminal = errors.New("catalog browse needs a terminal; use: boilerplan catalog courses")

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse courses, majors and tracks",
	}

	cmd.AddCommand(
		newCatalogMajorsCmd(app),
		newCatalogCoursesCmd(app),
		newCatalogShowCmd(app),
		newCatalogTracksCmd(app),
		newCatalogBrowseCmd(app),
	)

	return cmd
}

func newCatalogMajorsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "majors",
		Short: "List supported majors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, m := range app.Catalog.ListMajors(context.Background()) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", formatter.Bold(m.DisplayName()), formatter.Dim(string(m)))
			}
			return nil
		},
	}
}

func newCatalogCoursesCmd(app *App) *cobra.Command {
	var dept string
	var format outputFormat

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List catalog courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			courses := app.Catalog.ListCourses(context.Background(), dept)
			if format != outputText {
				return writeStructured(cmd.OutOrStdout(), format, courses)
			}
			if len(courses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No courses found."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCourseList(courses))
			return nil
		},
	}

	cmd.Flags().StringVar(&dept, "dept", "", "only courses from this department, e.g. CS or STAT")
	addOutputFlag(cmd.Flags(), &format)

	return cmd
}

func newCatalogShowCmd(app *App) *cobra.Command {
	var studentRef string

	cmd := &cobra.Command{
		Use:   "show CODE",
		Short: "Show a course with its prerequisite tree and what it unlocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			detail, err := app.Catalog.GetCourse(ctx, args[0])
			if err != nil {
				return err
			}
			var completed []string
			if studentRef != "" {
				s, err := app.Students.Resolve(ctx, studentRef)
				if err != nil {
					return err
				}
				completed = s.Profile.CompletedCourses
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCourseDetail(detail, completed))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentRef, "student", "", "check off prerequisites this student has completed")

	return cmd
}

func newCatalogTracksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tracks MAJOR",
		Short: "List the tracks of a major",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tracks, err := app.Catalog.ListTracks(context.Background(), args[0])
			if err != nil {
				return err
			}
			major, _ := domain.ParseMajor(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTracks(major, tracks))
			return nil
		},
	}
}

func newCatalogBrowseCmd(app *App) *cobra.Command {
	var dept, studentRef string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errBrowseNeedsTerminal
			}
			var completed []string
			if studentRef != "" {
				s, err := app.Students.Resolve(context.Background(), studentRef)
				if err != nil {
					return err
				}
				completed = s.Profile.CompletedCourses
			}

			p := tea.NewProgram(
				newCourseBrowser(app.Catalog, dept, completed),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&dept, "dept", "", "only courses from this department")
	cmd.Flags().StringVar(&studentRef, "student", "", "mark courses this student has completed")

	return cmd
}
