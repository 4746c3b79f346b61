package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chronoplan/chrono/internal/scheduling/application/services"
	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

// AutoScheduleCommand requests a scheduling run for a user.
type AutoScheduleCommand struct {
	UserID int64
	// Replace drops previously generated blocks before the run, so the
	// schedule converges instead of accreting.
	Replace bool
	Config  services.Config
}

// UnscheduledTask describes a task the run could not place.
type UnscheduledTask struct {
	TaskID          int64
	Title           string
	DurationMinutes int
}

// AutoScheduleResult summarizes a scheduling run.
type AutoScheduleResult struct {
	ScheduledBlocks  int
	ScheduledMinutes int
	Unscheduled      []UnscheduledTask
}

// AutoScheduleHandler loads the scheduler's inputs, runs the engine, and
// commits the produced blocks as schedule items.
type AutoScheduleHandler struct {
	taskRepo         domain.TaskRepository
	itemRepo         domain.ScheduleItemRepository
	availabilityRepo domain.AvailabilityRepository
	scheduler        *services.GreedyScheduler
	logger           *slog.Logger
}

// NewAutoScheduleHandler creates a new AutoScheduleHandler.
func NewAutoScheduleHandler(
	taskRepo domain.TaskRepository,
	itemRepo domain.ScheduleItemRepository,
	availabilityRepo domain.AvailabilityRepository,
	scheduler *services.GreedyScheduler,
	logger *slog.Logger,
) *AutoScheduleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AutoScheduleHandler{
		taskRepo:         taskRepo,
		itemRepo:         itemRepo,
		availabilityRepo: availabilityRepo,
		scheduler:        scheduler,
		logger:           logger,
	}
}

// Handle executes the AutoScheduleCommand.
func (h *AutoScheduleHandler) Handle(ctx context.Context, cmd AutoScheduleCommand) (*AutoScheduleResult, error) {
	if cmd.Replace {
		removed, err := h.itemRepo.DeleteBySource(ctx, cmd.UserID, domain.SourceTask)
		if err != nil {
			return nil, fmt.Errorf("clear generated blocks: %w", err)
		}
		h.logger.Debug("cleared generated blocks", "user_id", cmd.UserID, "removed", removed)
	}

	tasks, err := h.taskRepo.ListUnscheduled(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("list unscheduled tasks: %w", err)
	}

	items, err := h.itemRepo.ListByUser(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("list schedule items: %w", err)
	}

	availability, err := h.availabilityRepo.FindByUser(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("load availability: %w", err)
	}
	if availability == nil {
		// No template means no working hours: every task stays unscheduled.
		availability = &domain.WeeklyAvailability{UserID: cmd.UserID}
	}

	resp, err := h.scheduler.ScheduleTasks(tasks, items, *availability, cmd.Config)
	if err != nil {
		return nil, err
	}

	created, err := services.BlocksToScheduleItems(resp.Blocks, cmd.UserID)
	if err != nil {
		return nil, err
	}
	for _, item := range created {
		if err := h.itemRepo.Create(ctx, item); err != nil {
			return nil, fmt.Errorf("persist block: %w", err)
		}
	}

	result := &AutoScheduleResult{ScheduledBlocks: len(resp.Blocks)}
	for _, b := range resp.Blocks {
		result.ScheduledMinutes += b.DurationMinutes()
	}
	for _, w := range resp.Warnings {
		result.Unscheduled = append(result.Unscheduled, UnscheduledTask{
			TaskID:          w.ID,
			Title:           w.Title,
			DurationMinutes: w.DurationMinutes,
		})
	}

	h.logger.Info("auto-schedule complete",
		"user_id", cmd.UserID,
		"tasks", len(tasks),
		"blocks", result.ScheduledBlocks,
		"scheduled_minutes", result.ScheduledMinutes,
		"unscheduled", len(result.Unscheduled),
	)

	return result, nil
}
