package services

import (
	"fmt"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
	"github.com/chronoplan/chrono/internal/shared/timeutil"
)

// TaskToSchedulable converts a persisted task into the scheduler's view.
// A task without an id is a programming error upstream and is rejected.
func TaskToSchedulable(task *domain.Task) (domain.SchedulableTask, error) {
	if task.ID == 0 {
		return domain.SchedulableTask{}, domain.ErrMissingTaskID
	}
	return domain.SchedulableTask{
		ID:              task.ID,
		Title:           task.Title,
		Description:     task.Description,
		DurationMinutes: task.DurationMinutes,
		Deadline:        timeutil.EnsureUTCPtr(task.Deadline),
		Priority:        task.Priority,
	}, nil
}

// TasksToSchedulables converts a batch of persisted tasks.
func TasksToSchedulables(tasks []*domain.Task) ([]domain.SchedulableTask, error) {
	schedulables := make([]domain.SchedulableTask, 0, len(tasks))
	for _, task := range tasks {
		s, err := TaskToSchedulable(task)
		if err != nil {
			return nil, fmt.Errorf("task %q: %w", task.Title, err)
		}
		schedulables = append(schedulables, s)
	}
	return schedulables, nil
}

// ScheduleItemToBusyInterval converts a committed calendar entry into a busy
// interval the scheduler must route around.
func ScheduleItemToBusyInterval(item *domain.ScheduleItem) (domain.BusyInterval, error) {
	if item.Start.IsZero() || item.End.IsZero() {
		return domain.BusyInterval{}, domain.ErrInvalidInterval
	}
	return domain.NewBusyInterval(
		item.TaskID,
		timeutil.EnsureUTC(item.Start),
		timeutil.EnsureUTC(item.End),
		item.Title,
	)
}

// ScheduleItemsToBusyIntervals converts a batch of calendar entries.
func ScheduleItemsToBusyIntervals(items []*domain.ScheduleItem) ([]domain.BusyInterval, error) {
	intervals := make([]domain.BusyInterval, 0, len(items))
	for _, item := range items {
		bi, err := ScheduleItemToBusyInterval(item)
		if err != nil {
			return nil, fmt.Errorf("schedule item %s: %w", item.ID, err)
		}
		intervals = append(intervals, bi)
	}
	return intervals, nil
}

// BlocksToScheduleItems converts scheduler output into persist-ready items.
func BlocksToScheduleItems(blocks []domain.ScheduleBlock, userID int64) ([]*domain.ScheduleItem, error) {
	items := make([]*domain.ScheduleItem, 0, len(blocks))
	for _, block := range blocks {
		taskID := block.TaskID
		item, err := domain.NewScheduleItem(
			userID,
			&taskID,
			block.Start,
			block.End,
			block.Source,
			block.Title,
			block.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("block for task %d: %w", block.TaskID, err)
		}
		items = append(items, item)
	}
	return items, nil
}
