package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/chronoplan/chrono/internal/scheduling/application/services"
	"github.com/chronoplan/chrono/internal/scheduling/domain"
	"github.com/chronoplan/chrono/internal/shared/timeutil"
)

// ListAvailableSlotsQuery previews the free slots the scheduler would pack
// into, without committing anything.
type ListAvailableSlotsQuery struct {
	UserID int64
	// Weeks is the horizon in consecutive weeks from the next half hour.
	// Non-positive values mean one week.
	Weeks int
	// Timezone is the user's IANA zone, used both to project template
	// windows to UTC and to render the resulting slots.
	Timezone string
}

// FreeSlot is one free interval, rendered in the requested zone.
type FreeSlot struct {
	Start   time.Time
	End     time.Time
	Minutes int
}

// AvailableSlotsResult is the free capacity over the queried horizon.
type AvailableSlotsResult struct {
	Slots        []FreeSlot
	TotalMinutes int
}

// ListAvailableSlotsHandler handles the ListAvailableSlotsQuery.
type ListAvailableSlotsHandler struct {
	itemRepo         domain.ScheduleItemRepository
	availabilityRepo domain.AvailabilityRepository
	now              func() time.Time
}

// NewListAvailableSlotsHandler creates a new ListAvailableSlotsHandler.
func NewListAvailableSlotsHandler(
	itemRepo domain.ScheduleItemRepository,
	availabilityRepo domain.AvailabilityRepository,
) *ListAvailableSlotsHandler {
	return &ListAvailableSlotsHandler{
		itemRepo:         itemRepo,
		availabilityRepo: availabilityRepo,
		now:              timeutil.NowUTC,
	}
}

// Handle executes the ListAvailableSlotsQuery. The anchor and per-week
// boundaries match a scheduling run exactly, so the preview shows the same
// slots a run started now would fill.
func (h *ListAvailableSlotsHandler) Handle(ctx context.Context, q ListAvailableSlotsQuery) (*AvailableSlotsResult, error) {
	weeks := q.Weeks
	if weeks <= 0 {
		weeks = 1
	}

	availability, err := h.availabilityRepo.FindByUser(ctx, q.UserID)
	if err != nil {
		return nil, fmt.Errorf("load availability: %w", err)
	}
	if availability == nil {
		return &AvailableSlotsResult{}, nil
	}

	anchor := timeutil.NextHalfHour(h.now())
	horizonEnd := timeutil.NextWeekday(anchor, time.Monday).AddDate(0, 0, 7*(weeks-1))

	items, err := h.itemRepo.ListByUserInRange(ctx, q.UserID, anchor, horizonEnd)
	if err != nil {
		return nil, fmt.Errorf("list schedule items: %w", err)
	}
	busy, err := services.ScheduleItemsToBusyIntervals(items)
	if err != nil {
		return nil, err
	}

	loc := timeutil.LocationOrUTC(q.Timezone)

	weekEnd := timeutil.NextWeekday(anchor, time.Monday)
	slots := services.MaterializeWeek(*availability, anchor, busyWithin(busy, anchor, weekEnd), loc)
	for week := 1; week < weeks; week++ {
		weekStart := weekEnd
		weekEnd = weekEnd.AddDate(0, 0, 7)
		slots.Merge(services.MaterializeWeek(*availability, weekStart, busyWithin(busy, weekStart, weekEnd), loc))
	}

	result := &AvailableSlotsResult{TotalMinutes: slots.TotalMinutes}
	for _, slot := range slots.Slots {
		result.Slots = append(result.Slots, FreeSlot{
			Start:   timeutil.ToUserZone(slot.Start, q.Timezone),
			End:     timeutil.ToUserZone(slot.End, q.Timezone),
			Minutes: slot.Minutes(),
		})
	}
	return result, nil
}

// busyWithin keeps the intervals whose start lies in [from, to).
func busyWithin(busy []domain.BusyInterval, from, to time.Time) []domain.BusyInterval {
	var within []domain.BusyInterval
	for _, bi := range busy {
		if !bi.Start.Before(from) && bi.Start.Before(to) {
			within = append(within, bi)
		}
	}
	return within
}
