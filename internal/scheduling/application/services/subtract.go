package services

import (
	"sort"
	"time"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

// SubtractBusy carves the maximal disjoint free sub-intervals out of the
// window [windowStart, windowEnd) not covered by any busy interval.
//
// Emitted slots are strictly positive width, non-overlapping, and in
// chronological order. Nested busy intervals are absorbed by keeping the
// cursor at the furthest busy end seen so far.
func SubtractBusy(windowStart, windowEnd time.Time, busy []domain.BusyInterval) []domain.TimeSlot {
	if len(busy) == 0 {
		return []domain.TimeSlot{{Start: windowStart, End: windowEnd}}
	}

	sorted := make([]domain.BusyInterval, len(busy))
	copy(sorted, busy)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	cursor := windowStart
	var free []domain.TimeSlot
	for _, b := range sorted {
		if b.Start.After(cursor) {
			end := b.Start
			if windowEnd.Before(end) {
				end = windowEnd
			}
			free = append(free, domain.TimeSlot{Start: cursor, End: end})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}

	if cursor.Before(windowEnd) {
		free = append(free, domain.TimeSlot{Start: cursor, End: windowEnd})
	}

	return free
}
