package availability

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chronoplan/chrono/adapter/cli"
	"github.com/chronoplan/chrono/internal/scheduling/application/commands"
	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

var weekdayByName = map[string]domain.Weekday{
	"mon": domain.Monday,
	"tue": domain.Tuesday,
	"wed": domain.Wednesday,
	"thu": domain.Thursday,
	"fri": domain.Friday,
	"sat": domain.Saturday,
	"sun": domain.Sunday,
}

var setCmd = &cobra.Command{
	Use:   "set [DAY=START-END ...]",
	Short: "Replace the weekly template",
	Long: `Replace the whole weekly working-hours template. Each argument is a
window in DAY=START-END form; repeat a day for split shifts. No arguments
clears the template.

Examples:
  chrono availability set mon=09:00-17:00 tue=09:00-17:00
  chrono availability set mon=09:00-12:00 mon=13:00-17:00 fri=09:00-13:00
  chrono availability set`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.SetAvailabilityHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		windows := make([]commands.WindowInput, 0, len(args))
		for _, arg := range args {
			window, err := parseWindow(arg)
			if err != nil {
				return err
			}
			windows = append(windows, window)
		}

		availability, err := app.SetAvailabilityHandler.Handle(cmd.Context(), commands.SetAvailabilityCommand{
			UserID:  app.CurrentUserID,
			Windows: windows,
		})
		if err != nil {
			return fmt.Errorf("failed to set availability: %w", err)
		}

		fmt.Printf("Availability replaced: %d windows, %d minutes per week\n",
			len(windows), availability.TotalWeeklyMinutes())
		return nil
	},
}

func parseWindow(arg string) (commands.WindowInput, error) {
	dayPart, timesPart, ok := strings.Cut(arg, "=")
	if !ok {
		return commands.WindowInput{}, fmt.Errorf("invalid window %q (use DAY=START-END)", arg)
	}
	day, ok := weekdayByName[strings.ToLower(dayPart)]
	if !ok {
		return commands.WindowInput{}, fmt.Errorf("unknown weekday %q (use mon..sun)", dayPart)
	}
	start, end, ok := strings.Cut(timesPart, "-")
	if !ok {
		return commands.WindowInput{}, fmt.Errorf("invalid window %q (use DAY=START-END)", arg)
	}
	return commands.WindowInput{Weekday: day, Start: start, End: end}, nil
}
