package schedule

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronoplan/chrono/adapter/cli"
	"github.com/chronoplan/chrono/internal/scheduling/application/commands"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all scheduler-generated blocks",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ClearScheduleHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		removed, err := app.ClearScheduleHandler.Handle(cmd.Context(), commands.ClearScheduleCommand{
			UserID: app.CurrentUserID,
		})
		if err != nil {
			return fmt.Errorf("failed to clear schedule: %w", err)
		}

		fmt.Printf("Removed %d generated block(s)\n", removed)
		return nil
	},
}
