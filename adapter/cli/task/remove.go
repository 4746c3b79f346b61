package task

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chronoplan/chrono/adapter/cli"
	"github.com/chronoplan/chrono/internal/scheduling/application/commands"
)

var removeCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.RemoveTaskHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid task id %q", args[0])
		}

		if err := app.RemoveTaskHandler.Handle(cmd.Context(), commands.RemoveTaskCommand{
			UserID: app.CurrentUserID,
			TaskID: id,
		}); err != nil {
			return fmt.Errorf("failed to remove task: %w", err)
		}

		fmt.Printf("Task %d removed\n", id)
		return nil
	},
}
