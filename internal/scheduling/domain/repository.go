package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskRepository persists tasks.
type TaskRepository interface {
	Save(ctx context.Context, task *Task) error
	FindByID(ctx context.Context, id int64) (*Task, error)
	ListByUser(ctx context.Context, userID int64) ([]*Task, error)
	// ListUnscheduled returns the user's tasks with no committed schedule item.
	ListUnscheduled(ctx context.Context, userID int64) ([]*Task, error)
	Delete(ctx context.Context, id int64) error
}

// ScheduleItemRepository persists committed calendar entries.
type ScheduleItemRepository interface {
	Create(ctx context.Context, item *ScheduleItem) error
	ListByUser(ctx context.Context, userID int64) ([]*ScheduleItem, error)
	ListByUserInRange(ctx context.Context, userID int64, from, to time.Time) ([]*ScheduleItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteBySource removes every item the given producer created, e.g. all
	// scheduler-generated blocks before a re-run.
	DeleteBySource(ctx context.Context, userID int64, source string) (int64, error)
}

// AvailabilityRepository persists the per-user weekly template singleton.
type AvailabilityRepository interface {
	// Replace swaps the user's whole template in one operation.
	Replace(ctx context.Context, userID int64, windows map[Weekday][]DailyWindow) error
	FindByUser(ctx context.Context, userID int64) (*WeeklyAvailability, error)
}
