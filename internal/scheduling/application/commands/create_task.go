package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
	"github.com/chronoplan/chrono/internal/shared/timeutil"
)

var (
	ErrDeadlineInPast = errors.New("deadline must be in the future")
	ErrDeadlineTooFar = errors.New("deadline must be within ten years")
	ErrEmptyTitle     = errors.New("task title must not be empty")
)

const maxDeadlineHorizon = 10 * 365 * 24 * time.Hour

// CreateTaskCommand describes a task to persist.
type CreateTaskCommand struct {
	UserID          int64
	Title           string
	Description     string
	DurationMinutes int
	Deadline        *time.Time
	Priority        int
}

// CreateTaskHandler handles the CreateTaskCommand.
type CreateTaskHandler struct {
	taskRepo domain.TaskRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewCreateTaskHandler creates a new CreateTaskHandler.
func NewCreateTaskHandler(taskRepo domain.TaskRepository, logger *slog.Logger) *CreateTaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CreateTaskHandler{taskRepo: taskRepo, logger: logger, now: timeutil.NowUTC}
}

// Handle validates and persists the task, returning it with its assigned id.
func (h *CreateTaskHandler) Handle(ctx context.Context, cmd CreateTaskCommand) (*domain.Task, error) {
	if cmd.Title == "" {
		return nil, ErrEmptyTitle
	}
	if cmd.DurationMinutes < domain.MinDurationMinutes || cmd.DurationMinutes > domain.MaxDurationMinutes {
		return nil, domain.ErrInvalidDuration
	}
	if cmd.Priority < domain.HighestPriority || cmd.Priority > domain.LowestPriority {
		return nil, domain.ErrInvalidPriority
	}

	deadline := timeutil.EnsureUTCPtr(cmd.Deadline)
	if deadline != nil {
		now := h.now()
		if !deadline.After(now) {
			return nil, ErrDeadlineInPast
		}
		if deadline.Sub(now) > maxDeadlineHorizon {
			return nil, ErrDeadlineTooFar
		}
	}

	now := h.now()
	task := &domain.Task{
		UserID:          cmd.UserID,
		Title:           cmd.Title,
		Description:     cmd.Description,
		DurationMinutes: cmd.DurationMinutes,
		Deadline:        deadline,
		Priority:        cmd.Priority,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := h.taskRepo.Save(ctx, task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	h.logger.Info("task created", "user_id", cmd.UserID, "task_id", task.ID, "title", task.Title)
	return task, nil
}
