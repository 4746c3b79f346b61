package services

import (
	"time"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

// MaterializeWeek expands the weekly template into concrete free UTC slots
// for the remainder of the week beginning at weekStart.
//
// weekStart is a UTC instant; windows on its own day are clamped to it, and
// windows that ended before it are dropped. Each window is projected from the
// user's zone to UTC before busy intervals are subtracted, so a template
// window straddling a DST transition shrinks or stretches the way the zone
// database says it does.
func MaterializeWeek(
	availability domain.WeeklyAvailability,
	weekStart time.Time,
	busy []domain.BusyInterval,
	loc *time.Location,
) domain.AvailableSlots {
	var slots domain.AvailableSlots

	weekStart = weekStart.UTC()
	anchorDay := int(domain.WeekdayOf(weekStart))
	anchorDate := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, time.UTC)

	for offset := anchorDay; offset < 7; offset++ {
		date := anchorDate.AddDate(0, 0, offset-anchorDay)
		day := domain.WeekdayOf(date)

		for _, window := range availability.WindowsOn(day) {
			windowStart := window.Start.On(date, loc).UTC()
			windowEnd := window.End.On(date, loc).UTC()

			if offset == anchorDay {
				if !windowEnd.After(weekStart) {
					continue
				}
				if windowStart.Before(weekStart) {
					windowStart = weekStart
				}
			}

			var overlapping []domain.BusyInterval
			for _, bi := range busy {
				if bi.Intersects(windowStart, windowEnd) {
					overlapping = append(overlapping, bi)
				}
			}

			slots.Add(SubtractBusy(windowStart, windowEnd, overlapping)...)
		}
	}

	return slots
}
