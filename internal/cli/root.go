package cli

import (
	"github.com/boilerai/boilerplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and terminal hooks used by CLI commands.
type App struct {
	Students service.StudentService
	Plans    service.PlanService
	Catalog  service.CatalogService
	Import   service.ImportService

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// PickChoices asks the user to resolve pending choices. Nil uses the
	// huh form picker.
	PickChoices ChoicePicker
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) picker() ChoicePicker {
	if a.PickChoices != nil {
		return a.PickChoices
	}
	return huhChoicePicker
}

// NewRootCmd creates the top-level "boilerplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "boilerplan",
		Short:         "Personalized degree plans for Purdue CS, Data Science and AI students",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newStudentCmd(app),
		newPlanCmd(app),
		newChoiceCmd(app),
		newCatalogCmd(app),
	)

	return root
}
