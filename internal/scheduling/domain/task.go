package domain

import (
	"errors"
	"time"
)

var (
	ErrMissingTaskID   = errors.New("task must have an id to be schedulable")
	ErrInvalidDuration = errors.New("task duration must be between 1 and 480 minutes")
	ErrInvalidPriority = errors.New("task priority must be between 0 and 4")
)

// Duration and priority bounds enforced at the boundary.
const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 480
	HighestPriority    = 0
	LowestPriority     = 4
)

// SchedulableTask is the scheduler's view of a task: identity, how long it
// needs, how urgent it is, and an optional UTC deadline. The packer owns its
// copies and may shorten DurationMinutes while splitting; callers' values are
// never mutated.
type SchedulableTask struct {
	ID              int64
	Title           string
	Description     string
	DurationMinutes int
	Deadline        *time.Time
	Priority        int
}

// FitsWithin reports whether the task fits into the given number of minutes.
func (t SchedulableTask) FitsWithin(minutes int) bool {
	return t.DurationMinutes <= minutes
}

// Validate checks the scheduler's input contract.
func (t SchedulableTask) Validate() error {
	if t.ID == 0 {
		return ErrMissingTaskID
	}
	if t.DurationMinutes < MinDurationMinutes || t.DurationMinutes > MaxDurationMinutes {
		return ErrInvalidDuration
	}
	if t.Priority < HighestPriority || t.Priority > LowestPriority {
		return ErrInvalidPriority
	}
	return nil
}

// Task is the persisted task entity owned by a user.
type Task struct {
	ID              int64
	UserID          int64
	Title           string
	Description     string
	DurationMinutes int
	Deadline        *time.Time
	Priority        int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
