package task

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chronoplan/chrono/adapter/cli"
	"github.com/chronoplan/chrono/internal/scheduling/application/commands"
)

var (
	duration    int
	priority    int
	description string
	deadline    string
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long: `Add a task for the scheduler to place.

Examples:
  chrono task add "Write quarterly report" -d 90
  chrono task add "Review PR" -d 30 -p 1
  chrono task add "File taxes" -d 120 --deadline 2026-04-15T17:00`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CreateTaskHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		create := commands.CreateTaskCommand{
			UserID:          app.CurrentUserID,
			Title:           args[0],
			Description:     description,
			DurationMinutes: duration,
			Priority:        priority,
		}

		if deadline != "" {
			parsed, err := parseDeadline(deadline)
			if err != nil {
				return err
			}
			create.Deadline = &parsed
		}

		result, err := app.CreateTaskHandler.Handle(cmd.Context(), create)
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		fmt.Printf("Task added: %d\n", result.ID)
		fmt.Printf("  title:    %s\n", result.Title)
		fmt.Printf("  duration: %d minutes\n", result.DurationMinutes)
		fmt.Printf("  priority: %d\n", result.Priority)
		if result.Deadline != nil {
			fmt.Printf("  deadline: %s\n", result.Deadline.Format(time.RFC3339))
		}

		return nil
	},
}

// parseDeadline accepts a local date or date-time; bare dates mean end of
// that day.
func parseDeadline(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02T15:04", s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid deadline format (use YYYY-MM-DD or YYYY-MM-DDTHH:MM): %w", err)
	}
	return t.Add(24*time.Hour - time.Minute), nil
}

func init() {
	addCmd.Flags().IntVarP(&duration, "duration", "d", 30, "estimated duration in minutes (1-480)")
	addCmd.Flags().IntVarP(&priority, "priority", "p", 2, "priority, 0 (highest) to 4 (lowest)")
	addCmd.Flags().StringVar(&description, "description", "", "task description")
	addCmd.Flags().StringVar(&deadline, "deadline", "", "deadline (YYYY-MM-DD or YYYY-MM-DDTHH:MM)")
}
