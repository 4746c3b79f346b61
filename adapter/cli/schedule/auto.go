package schedule

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronoplan/chrono/adapter/cli"
	"github.com/chronoplan/chrono/internal/scheduling/application/commands"
)

var keepExisting bool

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Pack open tasks into your free time",
	Long: `Run the scheduler: rank open tasks by deadline and priority, then pack
them into the free portions of your working hours. Previously generated
blocks are replaced unless --keep is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.AutoScheduleHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		result, err := app.AutoScheduleHandler.Handle(cmd.Context(), commands.AutoScheduleCommand{
			UserID:  app.CurrentUserID,
			Replace: !keepExisting,
			Config:  app.SchedulerConfig,
		})
		if err != nil {
			return fmt.Errorf("failed to schedule: %w", err)
		}

		fmt.Printf("Scheduled %d blocks (%d minutes)\n", result.ScheduledBlocks, result.ScheduledMinutes)
		if len(result.Unscheduled) > 0 {
			fmt.Printf("Could not place %d task(s):\n", len(result.Unscheduled))
			for _, u := range result.Unscheduled {
				fmt.Printf("  %4d  %s (%dm)\n", u.TaskID, u.Title, u.DurationMinutes)
			}
		}
		return nil
	},
}

func init() {
	autoCmd.Flags().BoolVar(&keepExisting, "keep", false, "keep previously generated blocks instead of replacing them")
}
