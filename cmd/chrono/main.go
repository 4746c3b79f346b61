package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/chronoplan/chrono/adapter/cli"
	"github.com/chronoplan/chrono/adapter/cli/availability"
	"github.com/chronoplan/chrono/adapter/cli/schedule"
	"github.com/chronoplan/chrono/adapter/cli/task"
	"github.com/chronoplan/chrono/internal/app"
	"github.com/chronoplan/chrono/pkg/config"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.IsDevelopment() {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	cli.SetApp(&cli.App{
		CreateTaskHandler:      container.CreateTaskHandler,
		RemoveTaskHandler:      container.RemoveTaskHandler,
		SetAvailabilityHandler: container.SetAvailabilityHandler,
		AutoScheduleHandler:    container.AutoScheduleHandler,
		ClearScheduleHandler:   container.ClearScheduleHandler,

		ListTasksHandler:          container.ListTasksHandler,
		GetScheduleHandler:        container.GetScheduleHandler,
		GetAvailabilityHandler:    container.GetAvailabilityHandler,
		ListAvailableSlotsHandler: container.ListAvailableSlotsHandler,

		CurrentUserID:   cfg.UserID,
		Timezone:        cfg.Timezone,
		SchedulerConfig: container.SchedulerConfig(),
	})

	cli.AddCommand(task.Cmd)
	cli.AddCommand(availability.Cmd)
	cli.AddCommand(schedule.Cmd)

	cli.Execute()
}
