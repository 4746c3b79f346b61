package cli

import (
	"github.com/chronoplan/chrono/internal/scheduling/application/commands"
	"github.com/chronoplan/chrono/internal/scheduling/application/queries"
	"github.com/chronoplan/chrono/internal/scheduling/application/services"
)

// App holds the CLI application dependencies.
type App struct {
	// Command handlers
	CreateTaskHandler      *commands.CreateTaskHandler
	RemoveTaskHandler      *commands.RemoveTaskHandler
	SetAvailabilityHandler *commands.SetAvailabilityHandler
	AutoScheduleHandler    *commands.AutoScheduleHandler
	ClearScheduleHandler   *commands.ClearScheduleHandler

	// Query handlers
	ListTasksHandler          *queries.ListTasksHandler
	GetScheduleHandler        *queries.GetScheduleHandler
	GetAvailabilityHandler    *queries.GetAvailabilityHandler
	ListAvailableSlotsHandler *queries.ListAvailableSlotsHandler

	// Current user and scheduling settings (configured per environment)
	CurrentUserID   int64
	Timezone        string
	SchedulerConfig services.Config
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
