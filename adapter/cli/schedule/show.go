package schedule

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronoplan/chrono/adapter/cli"
	"github.com/chronoplan/chrono/internal/scheduling/application/queries"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show scheduled blocks",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.GetScheduleHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		entries, err := app.GetScheduleHandler.Handle(cmd.Context(), queries.GetScheduleQuery{
			UserID:   app.CurrentUserID,
			Timezone: app.Timezone,
		})
		if err != nil {
			return fmt.Errorf("failed to load schedule: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("Nothing scheduled.")
			return nil
		}

		var day string
		for _, e := range entries {
			if d := e.Start.Format("Mon 2006-01-02"); d != day {
				day = d
				fmt.Println(day)
			}
			fmt.Printf("  %s-%s  %s", e.Start.Format("15:04"), e.End.Format("15:04"), e.Title)
			if e.TaskID != nil {
				fmt.Printf("  (task %d)", *e.TaskID)
			}
			fmt.Println()
		}
		return nil
	},
}
