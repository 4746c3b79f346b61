package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

var ErrTaskNotFound = errors.New("task not found")

// RemoveTaskCommand deletes a task by id.
type RemoveTaskCommand struct {
	UserID int64
	TaskID int64
}

// RemoveTaskHandler handles the RemoveTaskCommand.
type RemoveTaskHandler struct {
	taskRepo domain.TaskRepository
	logger   *slog.Logger
}

// NewRemoveTaskHandler creates a new RemoveTaskHandler.
func NewRemoveTaskHandler(taskRepo domain.TaskRepository, logger *slog.Logger) *RemoveTaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RemoveTaskHandler{taskRepo: taskRepo, logger: logger}
}

// Handle executes the RemoveTaskCommand. Removing a task does not touch
// schedule items already committed for it; the next scheduling run with
// replace set will drop them.
func (h *RemoveTaskHandler) Handle(ctx context.Context, cmd RemoveTaskCommand) error {
	task, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return fmt.Errorf("find task: %w", err)
	}
	if task == nil || task.UserID != cmd.UserID {
		return ErrTaskNotFound
	}

	if err := h.taskRepo.Delete(ctx, cmd.TaskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	h.logger.Info("task removed", "user_id", cmd.UserID, "task_id", cmd.TaskID)
	return nil
}
