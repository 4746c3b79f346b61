package domain

import (
	"time"

	"github.com/google/uuid"
)

// SourceTask tags schedule items produced by the scheduler from a task.
const SourceTask = "task"

// ScheduleBlock is one scheduled occurrence of a task over a UTC interval.
// With splitting enabled a task may emit several blocks sharing its id.
type ScheduleBlock struct {
	TaskID      int64
	Start       time.Time
	End         time.Time
	Source      string
	Title       string
	Description string
}

// DurationMinutes returns the block width in whole minutes.
func (b ScheduleBlock) DurationMinutes() int {
	return int(b.End.Sub(b.Start) / time.Minute)
}

// Overlaps reports whether two blocks share any instant.
func (b ScheduleBlock) Overlaps(other ScheduleBlock) bool {
	return b.Start.Before(other.End) && b.End.After(other.Start)
}

// ScheduleItem is a committed calendar entry. Items feed back into later
// scheduling runs as busy intervals regardless of their source.
type ScheduleItem struct {
	ID          uuid.UUID
	UserID      int64
	TaskID      *int64
	Start       time.Time
	End         time.Time
	Source      string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewScheduleItem creates a schedule item with a fresh identity.
func NewScheduleItem(userID int64, taskID *int64, start, end time.Time, source, title, description string) (*ScheduleItem, error) {
	if !end.After(start) {
		return nil, ErrInvalidInterval
	}
	now := time.Now().UTC()
	return &ScheduleItem{
		ID:          uuid.New(),
		UserID:      userID,
		TaskID:      taskID,
		Start:       start.UTC(),
		End:         end.UTC(),
		Source:      source,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
