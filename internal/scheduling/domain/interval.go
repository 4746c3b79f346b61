package domain

import (
	"errors"
	"time"
)

var ErrInvalidInterval = errors.New("interval end must be after start")

// BusyInterval is an externally supplied UTC range that output blocks must
// not cover.
type BusyInterval struct {
	TaskID *int64
	Start  time.Time
	End    time.Time
	Title  string
}

// NewBusyInterval builds a busy interval, enforcing end > start.
func NewBusyInterval(taskID *int64, start, end time.Time, title string) (BusyInterval, error) {
	if !end.After(start) {
		return BusyInterval{}, ErrInvalidInterval
	}
	return BusyInterval{TaskID: taskID, Start: start.UTC(), End: end.UTC(), Title: title}, nil
}

// Intersects reports whether the interval overlaps [start, end).
func (b BusyInterval) Intersects(start, end time.Time) bool {
	return b.Start.Before(end) && b.End.After(start)
}

// TimeSlot is a half-open UTC interval [Start, End) of free time. Derived,
// never persisted.
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

// Duration returns the slot width.
func (s TimeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Minutes returns the slot width in whole minutes, truncated.
func (s TimeSlot) Minutes() int {
	return int(s.End.Sub(s.Start) / time.Minute)
}

// AvailableSlots accumulates the ordered, disjoint free slots of one
// scheduling run together with a running total.
type AvailableSlots struct {
	Slots        []TimeSlot
	TotalMinutes int
}

// Add appends slots to the collection.
func (a *AvailableSlots) Add(slots ...TimeSlot) {
	a.Slots = append(a.Slots, slots...)
	for _, s := range slots {
		a.TotalMinutes += s.Minutes()
	}
}

// Merge appends another collection, preserving order.
func (a *AvailableSlots) Merge(other AvailableSlots) {
	a.Slots = append(a.Slots, other.Slots...)
	a.TotalMinutes += other.TotalMinutes
}
