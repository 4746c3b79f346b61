package task

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chronoplan/chrono/adapter/cli"
	"github.com/chronoplan/chrono/internal/scheduling/application/queries"
)

var unscheduledOnly bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListTasksHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		tasks, err := app.ListTasksHandler.Handle(cmd.Context(), queries.ListTasksQuery{
			UserID:      app.CurrentUserID,
			Unscheduled: unscheduledOnly,
		})
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks.")
			return nil
		}

		for _, t := range tasks {
			line := fmt.Sprintf("%4d  %-40s  %3dm  p%d", t.ID, t.Title, t.DurationMinutes, t.Priority)
			if t.Deadline != nil {
				line += "  due " + t.Deadline.Format(time.RFC3339)
			}
			fmt.Println(line)
		}

		return nil
	},
}

func init() {
	listCmd.Flags().BoolVarP(&unscheduledOnly, "unscheduled", "u", false, "only tasks without a scheduled block")
}
