package availability

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronoplan/chrono/adapter/cli"
	"github.com/chronoplan/chrono/internal/scheduling/application/queries"
	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the weekly template",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.GetAvailabilityHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		availability, err := app.GetAvailabilityHandler.Handle(cmd.Context(), queries.GetAvailabilityQuery{
			UserID: app.CurrentUserID,
		})
		if err != nil {
			return fmt.Errorf("failed to load availability: %w", err)
		}

		if availability.TotalWeeklyMinutes() == 0 {
			fmt.Println("No working hours set.")
			return nil
		}

		for day := domain.Monday; day <= domain.Sunday; day++ {
			windows := availability.WindowsOn(day)
			if len(windows) == 0 {
				continue
			}
			fmt.Printf("%s:", day)
			for _, w := range windows {
				fmt.Printf("  %s-%s", w.Start, w.End)
			}
			fmt.Println()
		}
		fmt.Printf("Total: %d minutes per week\n", availability.TotalWeeklyMinutes())
		return nil
	},
}
