package schedule

import (
	"github.com/spf13/cobra"
)

// Cmd is the schedule command group
var Cmd = &cobra.Command{
	Use:   "schedule",
	Short: "Plan and inspect your schedule",
	Long:  `Run the scheduler over your open tasks and inspect the resulting calendar.`,
}

func init() {
	Cmd.AddCommand(autoCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(slotsCmd)
	Cmd.AddCommand(clearCmd)
}
