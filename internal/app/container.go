// Package app wires configuration, storage, and handlers into a running
// application.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chronoplan/chrono/internal/scheduling/application/commands"
	"github.com/chronoplan/chrono/internal/scheduling/application/queries"
	"github.com/chronoplan/chrono/internal/scheduling/application/services"
	"github.com/chronoplan/chrono/internal/scheduling/domain"
	"github.com/chronoplan/chrono/internal/scheduling/infrastructure/persistence"
	"github.com/chronoplan/chrono/internal/shared/infrastructure/database/postgres"
	"github.com/chronoplan/chrono/internal/shared/infrastructure/database/sqlite"
	"github.com/chronoplan/chrono/internal/shared/infrastructure/migrations"
	"github.com/chronoplan/chrono/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Database; exactly one of these is non-nil, per the configured driver.
	SQLiteDB     *sql.DB
	PostgresPool *pgxpool.Pool

	// Repositories
	TaskRepo         domain.TaskRepository
	ScheduleItemRepo domain.ScheduleItemRepository
	AvailabilityRepo domain.AvailabilityRepository

	// Engine
	Scheduler *services.GreedyScheduler

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
}

// NewContainer opens the configured database, applies migrations, and wires
// every handler.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Container{Config: cfg, Logger: logger}

	switch cfg.DatabaseDriver {
	case "sqlite", "":
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := migrations.RunSQLite(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		c.SQLiteDB = db
		c.TaskRepo = persistence.NewSQLiteTaskRepository(db)
		c.ScheduleItemRepo = persistence.NewSQLiteScheduleItemRepository(db)
		c.AvailabilityRepo = persistence.NewSQLiteAvailabilityRepository(db)

	case "postgres":
		pool, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := migrations.RunPostgres(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		c.PostgresPool = pool
		c.TaskRepo = persistence.NewPostgresTaskRepository(pool)
		c.ScheduleItemRepo = persistence.NewPostgresScheduleItemRepository(pool)
		c.AvailabilityRepo = persistence.NewPostgresAvailabilityRepository(pool)

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DatabaseDriver)
	}

	c.Scheduler = services.NewGreedyScheduler()

	c.CreateTaskHandler = commands.NewCreateTaskHandler(c.TaskRepo, logger)
	c.RemoveTaskHandler = commands.NewRemoveTaskHandler(c.TaskRepo, logger)
	c.SetAvailabilityHandler = commands.NewSetAvailabilityHandler(c.AvailabilityRepo, logger)
	c.AutoScheduleHandler = commands.NewAutoScheduleHandler(c.TaskRepo, c.ScheduleItemRepo, c.AvailabilityRepo, c.Scheduler, logger)
	c.ClearScheduleHandler = commands.NewClearScheduleHandler(c.ScheduleItemRepo, logger)

	c.ListTasksHandler = queries.NewListTasksHandler(c.TaskRepo)
	c.GetScheduleHandler = queries.NewGetScheduleHandler(c.ScheduleItemRepo)
	c.GetAvailabilityHandler = queries.NewGetAvailabilityHandler(c.AvailabilityRepo)
	c.ListAvailableSlotsHandler = queries.NewListAvailableSlotsHandler(c.ScheduleItemRepo, c.AvailabilityRepo)

	return c, nil
}

// SchedulerConfig derives the engine configuration from the app settings.
func (c *Container) SchedulerConfig() services.Config {
	cfg := services.DefaultConfig()
	cfg.Timezone = c.Config.Timezone
	if c.Config.MaxSchedulingWeeks > 0 {
		cfg.MaxSchedulingWeeks = c.Config.MaxSchedulingWeeks
	}
	cfg.AllowSplitting = c.Config.AllowSplitting
	return cfg
}

// Close releases the database resources.
func (c *Container) Close() error {
	if c.SQLiteDB != nil {
		return c.SQLiteDB.Close()
	}
	if c.PostgresPool != nil {
		c.PostgresPool.Close()
	}
	return nil
}
