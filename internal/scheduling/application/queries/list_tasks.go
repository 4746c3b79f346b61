// Package queries implements the read side of the scheduling context.
package queries

import (
	"context"
	"fmt"
	"sort"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

// ListTasksQuery lists a user's tasks.
type ListTasksQuery struct {
	UserID int64
	// Unscheduled limits the result to tasks with no committed block.
	Unscheduled bool
}

// ListTasksHandler handles the ListTasksQuery.
type ListTasksHandler struct {
	taskRepo domain.TaskRepository
}

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(taskRepo domain.TaskRepository) *ListTasksHandler {
	return &ListTasksHandler{taskRepo: taskRepo}
}

// Handle executes the ListTasksQuery. Tasks come back ordered by id, which
// matches creation order.
func (h *ListTasksHandler) Handle(ctx context.Context, q ListTasksQuery) ([]*domain.Task, error) {
	var (
		tasks []*domain.Task
		err   error
	)
	if q.Unscheduled {
		tasks, err = h.taskRepo.ListUnscheduled(ctx, q.UserID)
	} else {
		tasks, err = h.taskRepo.ListByUser(ctx, q.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}
