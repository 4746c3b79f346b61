package schedule

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronoplan/chrono/adapter/cli"
	"github.com/chronoplan/chrono/internal/scheduling/application/queries"
)

var slotWeeks int

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Preview free slots",
	Long:  `List the free slots the scheduler would pack into, without committing anything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListAvailableSlotsHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		result, err := app.ListAvailableSlotsHandler.Handle(cmd.Context(), queries.ListAvailableSlotsQuery{
			UserID:   app.CurrentUserID,
			Weeks:    slotWeeks,
			Timezone: app.Timezone,
		})
		if err != nil {
			return fmt.Errorf("failed to list slots: %w", err)
		}

		if len(result.Slots) == 0 {
			fmt.Println("No free slots.")
			return nil
		}

		for _, s := range result.Slots {
			fmt.Printf("%s  %s-%s  %dm\n",
				s.Start.Format("Mon 2006-01-02"),
				s.Start.Format("15:04"), s.End.Format("15:04"), s.Minutes)
		}
		fmt.Printf("Total: %d minutes\n", result.TotalMinutes)
		return nil
	},
}

func init() {
	slotsCmd.Flags().IntVarP(&slotWeeks, "weeks", "w", 1, "number of weeks to preview")
}
