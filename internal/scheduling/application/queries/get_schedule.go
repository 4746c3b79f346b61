package queries

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
	"github.com/chronoplan/chrono/internal/shared/timeutil"
)

// GetScheduleQuery lists a user's committed schedule, optionally limited to a
// UTC time range.
type GetScheduleQuery struct {
	UserID int64
	From   *time.Time
	To     *time.Time
	// Timezone is the IANA zone entry times are projected into for display.
	// Unknown or empty zones fall back to UTC.
	Timezone string
}

// ScheduleEntry is one committed block with times in the requested zone.
type ScheduleEntry struct {
	ID          uuid.UUID
	TaskID      *int64
	Start       time.Time
	End         time.Time
	Source      string
	Title       string
	Description string
}

// GetScheduleHandler handles the GetScheduleQuery.
type GetScheduleHandler struct {
	itemRepo domain.ScheduleItemRepository
}

// NewGetScheduleHandler creates a new GetScheduleHandler.
func NewGetScheduleHandler(itemRepo domain.ScheduleItemRepository) *GetScheduleHandler {
	return &GetScheduleHandler{itemRepo: itemRepo}
}

// Handle executes the GetScheduleQuery. Entries come back ordered by start
// time.
func (h *GetScheduleHandler) Handle(ctx context.Context, q GetScheduleQuery) ([]ScheduleEntry, error) {
	var (
		items []*domain.ScheduleItem
		err   error
	)
	switch {
	case q.From != nil && q.To != nil:
		items, err = h.itemRepo.ListByUserInRange(ctx, q.UserID, q.From.UTC(), q.To.UTC())
	default:
		items, err = h.itemRepo.ListByUser(ctx, q.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("list schedule items: %w", err)
	}

	entries := make([]ScheduleEntry, 0, len(items))
	for _, item := range items {
		if q.From != nil && item.End.Before(q.From.UTC()) {
			continue
		}
		if q.To != nil && !item.Start.Before(q.To.UTC()) {
			continue
		}
		entries = append(entries, ScheduleEntry{
			ID:          item.ID,
			TaskID:      item.TaskID,
			Start:       timeutil.ToUserZone(item.Start, q.Timezone),
			End:         timeutil.ToUserZone(item.End, q.Timezone),
			Source:      item.Source,
			Title:       item.Title,
			Description: item.Description,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Start.Before(entries[j].Start) })
	return entries, nil
}
