package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	ErrInvalidWindow  = errors.New("window end must be after start")
	ErrInvalidWeekday = errors.New("weekday must be between 0 (Monday) and 6 (Sunday)")
)

// Weekday follows the scheduler's wire encoding: 0=Monday .. 6=Sunday.
// Note this differs from time.Weekday, which starts the week on Sunday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// Valid reports whether the weekday is in range.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// WeekdayOf maps an instant to the Monday-based weekday of its UTC date.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.UTC().Weekday()) + 6) % 7)
}

// TimeOfDay is a local wall-clock time with no date attached.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Before reports whether t is earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	if t.Hour != other.Hour {
		return t.Hour < other.Hour
	}
	return t.Minute < other.Minute
}

// On anchors the wall-clock time to a calendar date in the given zone.
// DST gaps and ambiguities resolve the way time.Date documents.
func (t TimeOfDay) On(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, loc)
}

// DailyWindow is one working window of a weekday in the recurring template,
// expressed as local wall-clock times.
type DailyWindow struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewDailyWindow builds a window, enforcing end > start within the day.
func NewDailyWindow(start, end TimeOfDay) (DailyWindow, error) {
	if !start.Before(end) {
		return DailyWindow{}, ErrInvalidWindow
	}
	return DailyWindow{Start: start, End: end}, nil
}

// WeeklyAvailability is the recurring weekday-to-windows template. Weekdays
// absent from the map are non-working days.
type WeeklyAvailability struct {
	UserID  int64
	Windows map[Weekday][]DailyWindow
}

// NewWeeklyAvailability groups windows by weekday and sorts each day's
// windows by start time.
func NewWeeklyAvailability(userID int64, windows map[Weekday][]DailyWindow) WeeklyAvailability {
	grouped := make(map[Weekday][]DailyWindow, len(windows))
	for day, ws := range windows {
		copied := append([]DailyWindow(nil), ws...)
		sortWindows(copied)
		grouped[day] = copied
	}
	return WeeklyAvailability{UserID: userID, Windows: grouped}
}

// WindowsOn returns the ordered windows for a weekday, nil on non-working days.
func (a WeeklyAvailability) WindowsOn(day Weekday) []DailyWindow {
	return a.Windows[day]
}

// TotalWeeklyMinutes sums the template's window widths across the week.
func (a WeeklyAvailability) TotalWeeklyMinutes() int {
	total := 0
	for _, ws := range a.Windows {
		for _, w := range ws {
			total += (w.End.Hour*60 + w.End.Minute) - (w.Start.Hour*60 + w.Start.Minute)
		}
	}
	return total
}

func sortWindows(ws []DailyWindow) {
	sort.Slice(ws, func(i, j int) bool {
		return ws[i].Start.Before(ws[j].Start)
	})
}
