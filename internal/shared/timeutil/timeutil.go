// Package timeutil centralizes the time arithmetic used by the scheduler.
//
// Scheduler-internal reasoning happens exclusively in UTC; the user's IANA
// zone appears only at the edges, when local availability windows are
// projected to UTC and when stored instants are rendered for display.
package timeutil

import "time"

// NowUTC returns the current wall clock as a UTC instant.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// EnsureUTC canonicalizes an instant to UTC. Idempotent.
func EnsureUTC(t time.Time) time.Time {
	return t.UTC()
}

// EnsureUTCPtr canonicalizes an optional instant to UTC, passing nil through.
func EnsureUTCPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}

// LocationOrUTC resolves an IANA zone name, falling back to UTC when the
// name is unknown or empty. The fallback is silent: collaborators validating
// settings are expected to reject unknown zones before they reach the core.
func LocationOrUTC(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ToUserZone projects a UTC instant into the user's zone for display.
func ToUserZone(t time.Time, zone string) time.Time {
	return t.In(LocationOrUTC(zone))
}

// NextHalfHour rounds strictly forward to the next :00 or :30 wall-clock
// minute. An instant already on a half-hour advances by a full 30 minutes.
func NextHalfHour(t time.Time) time.Time {
	t = t.UTC()
	if t.Minute() < 30 {
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 30, 0, 0, time.UTC)
	}
	t = t.Add(time.Hour)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, time.UTC)
}

// NextWeekday returns the next UTC midnight falling on target. When t is
// already on the target weekday the result is a full week ahead, never the
// same day.
func NextWeekday(t time.Time, target time.Weekday) time.Time {
	t = t.UTC()
	daysAhead := (int(target)-int(t.Weekday())-1)%7
	daysAhead = (daysAhead+7)%7 + 1
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, daysAhead)
}
