package services

import (
	"testing"
	"time"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// All scenarios anchor at Monday 2024-06-03; next_half_hour(09:15Z) = 09:30Z.
var (
	fixedNow    = time.Date(2024, 6, 3, 9, 15, 0, 0, time.UTC)
	fixedAnchor = time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)
)

func fixedScheduler() *GreedyScheduler {
	return &GreedyScheduler{now: func() time.Time { return fixedNow }}
}

func mondayAvailability(startH, endH int) domain.WeeklyAvailability {
	return domain.NewWeeklyAvailability(1, map[domain.Weekday][]domain.DailyWindow{
		domain.Monday: {window(startH, endH)},
	})
}

func utc(day, h, m int) time.Time {
	return time.Date(2024, 6, day, h, m, 0, 0, time.UTC)
}

func TestSchedule_SingleFittingTask(t *testing.T) {
	resp := NewGreedyScheduler().Schedule(Request{
		Tasks:        []domain.SchedulableTask{{ID: 1, Title: "write report", DurationMinutes: 60, Priority: 2}},
		Availability: mondayAvailability(9, 17),
		Config:       DefaultConfig(),
		StartTime:    fixedAnchor,
	})

	require.Len(t, resp.Blocks, 1)
	assert.Empty(t, resp.Warnings)
	assert.Equal(t, utc(3, 9, 30), resp.Blocks[0].Start)
	assert.Equal(t, utc(3, 10, 30), resp.Blocks[0].End)
	assert.Equal(t, int64(1), resp.Blocks[0].TaskID)
	assert.Equal(t, domain.SourceTask, resp.Blocks[0].Source)
	assert.Equal(t, "write report", resp.Blocks[0].Title)
}

func TestSchedule_BusyForcesLaterSlot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowSplitting = false

	resp := NewGreedyScheduler().Schedule(Request{
		Tasks: []domain.SchedulableTask{{ID: 1, DurationMinutes: 60, Priority: 2}},
		BusyIntervals: []domain.BusyInterval{
			{Start: utc(3, 10, 0), End: utc(3, 11, 0)},
		},
		Availability: mondayAvailability(9, 17),
		Config:       cfg,
		StartTime:    fixedAnchor,
	})

	// Free slots are [09:30,10:00) (too small) and [11:00,17:00).
	require.Len(t, resp.Blocks, 1)
	assert.Equal(t, utc(3, 11, 0), resp.Blocks[0].Start)
	assert.Equal(t, utc(3, 12, 0), resp.Blocks[0].End)
}

func TestSchedule_SplittingAcrossTwoDays(t *testing.T) {
	availability := domain.NewWeeklyAvailability(1, map[domain.Weekday][]domain.DailyWindow{
		domain.Monday:  {window(9, 10)},
		domain.Tuesday: {window(9, 10)},
	})

	resp := NewGreedyScheduler().Schedule(Request{
		Tasks:        []domain.SchedulableTask{{ID: 1, DurationMinutes: 90, Priority: 2}},
		Availability: availability,
		Config:       DefaultConfig(), // splitting on
		StartTime:    fixedAnchor,
	})

	require.Len(t, resp.Blocks, 2)
	assert.Empty(t, resp.Warnings)

	assert.Equal(t, utc(3, 9, 30), resp.Blocks[0].Start)
	assert.Equal(t, utc(3, 10, 0), resp.Blocks[0].End)
	assert.Equal(t, utc(4, 9, 0), resp.Blocks[1].Start)
	assert.Equal(t, utc(4, 10, 0), resp.Blocks[1].End)

	assert.Equal(t, 90, resp.Blocks[0].DurationMinutes()+resp.Blocks[1].DurationMinutes())
}

func TestSchedule_NoSplittingSkipAndSeek(t *testing.T) {
	cfg := Config{MaxSchedulingWeeks: 1, AllowSplitting: false, Timezone: "UTC"}

	resp := NewGreedyScheduler().Schedule(Request{
		Tasks: []domain.SchedulableTask{
			{ID: 1, Title: "A", DurationMinutes: 90, Priority: 2},
			{ID: 2, Title: "B", DurationMinutes: 30, Priority: 2},
		},
		Availability: mondayAvailability(9, 10),
		Config:       cfg,
		StartTime:    fixedAnchor,
	})

	// The 30-minute slot takes B; A stays unscheduled.
	require.Len(t, resp.Blocks, 1)
	assert.Equal(t, int64(2), resp.Blocks[0].TaskID)
	assert.Equal(t, utc(3, 9, 30), resp.Blocks[0].Start)
	assert.Equal(t, utc(3, 10, 0), resp.Blocks[0].End)

	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, int64(1), resp.Warnings[0].ID)
}

func TestSchedule_DeadlineBeatsPriority(t *testing.T) {
	deadline := utc(3, 14, 0)

	resp := NewGreedyScheduler().Schedule(Request{
		Tasks: []domain.SchedulableTask{
			{ID: 1, Title: "A", DurationMinutes: 60, Priority: 0},
			{ID: 2, Title: "B", DurationMinutes: 60, Priority: 4, Deadline: &deadline},
		},
		Availability: mondayAvailability(9, 17),
		Config:       DefaultConfig(),
		StartTime:    fixedAnchor,
	})

	require.Len(t, resp.Blocks, 2)
	assert.Equal(t, int64(2), resp.Blocks[0].TaskID)
	assert.Equal(t, utc(3, 9, 30), resp.Blocks[0].Start)
	assert.Equal(t, int64(1), resp.Blocks[1].TaskID)
	assert.Equal(t, utc(3, 10, 30), resp.Blocks[1].Start)
}

func TestSchedule_TimezoneShift(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timezone = "America/New_York"

	resp := NewGreedyScheduler().Schedule(Request{
		Tasks:        []domain.SchedulableTask{{ID: 1, DurationMinutes: 60, Priority: 2}},
		Availability: mondayAvailability(9, 12), // local time
		Config:       cfg,
		StartTime:    fixedAnchor,
	})

	// Local Monday 09:00 is 13:00Z in June; the 09:30Z anchor precedes the
	// whole window.
	require.Len(t, resp.Blocks, 1)
	assert.Equal(t, utc(3, 13, 0), resp.Blocks[0].Start)
	assert.Equal(t, utc(3, 14, 0), resp.Blocks[0].End)
}

func TestSchedule_EmptyAvailabilityWarnsEverything(t *testing.T) {
	resp := NewGreedyScheduler().Schedule(Request{
		Tasks: []domain.SchedulableTask{
			{ID: 1, DurationMinutes: 60, Priority: 2},
			{ID: 2, DurationMinutes: 30, Priority: 1},
		},
		Availability: domain.WeeklyAvailability{},
		Config:       DefaultConfig(),
		StartTime:    fixedAnchor,
	})

	assert.Empty(t, resp.Blocks)
	assert.Len(t, resp.Warnings, 2)
}

func TestSchedule_HorizonSpansWeeks(t *testing.T) {
	// One hour per Monday; three two-hour tasks need three weeks with
	// splitting enabled.
	cfg := Config{MaxSchedulingWeeks: 12, AllowSplitting: true, Timezone: "UTC"}

	resp := NewGreedyScheduler().Schedule(Request{
		Tasks: []domain.SchedulableTask{
			{ID: 1, DurationMinutes: 120, Priority: 2},
		},
		Availability: mondayAvailability(9, 10),
		Config:       cfg,
		StartTime:    fixedAnchor,
	})

	// 30 minutes on the anchor Monday, then 60 + 30 on the following Mondays.
	require.Len(t, resp.Blocks, 3)
	assert.Empty(t, resp.Warnings)
	assert.Equal(t, utc(3, 9, 30), resp.Blocks[0].Start)
	assert.Equal(t, utc(10, 9, 0), resp.Blocks[1].Start)
	assert.Equal(t, utc(17, 9, 0), resp.Blocks[2].Start)

	total := 0
	for _, b := range resp.Blocks {
		total += b.DurationMinutes()
	}
	assert.Equal(t, 120, total)
}

func TestSchedule_HorizonExhaustedLeavesWarnings(t *testing.T) {
	cfg := Config{MaxSchedulingWeeks: 2, AllowSplitting: false, Timezone: "UTC"}

	resp := NewGreedyScheduler().Schedule(Request{
		Tasks: []domain.SchedulableTask{
			{ID: 1, DurationMinutes: 60, Priority: 2},
			{ID: 2, DurationMinutes: 60, Priority: 3},
			{ID: 3, DurationMinutes: 60, Priority: 4},
		},
		Availability: mondayAvailability(9, 10), // one hour per week
		Config:       cfg,
		StartTime:    fixedAnchor,
	})

	// Anchor Monday leaves 30 free minutes, second Monday fits one task.
	require.Len(t, resp.Blocks, 1)
	assert.Equal(t, int64(1), resp.Blocks[0].TaskID)
	require.Len(t, resp.Warnings, 2)
	assert.Equal(t, int64(2), resp.Warnings[0].ID)
	assert.Equal(t, int64(3), resp.Warnings[1].ID)
}

// Blocks never overlap each other, never overlap busy input, and durations
// are conserved.
func TestSchedule_Invariants(t *testing.T) {
	deadline := utc(5, 12, 0)
	tasks := []domain.SchedulableTask{
		{ID: 1, DurationMinutes: 90, Priority: 1},
		{ID: 2, DurationMinutes: 45, Priority: 0, Deadline: &deadline},
		{ID: 3, DurationMinutes: 240, Priority: 4},
		{ID: 4, DurationMinutes: 30, Priority: 2},
	}
	busy := []domain.BusyInterval{
		{Start: utc(3, 10, 0), End: utc(3, 11, 0)},
		{Start: utc(4, 9, 0), End: utc(4, 12, 0)},
	}
	availability := domain.NewWeeklyAvailability(1, map[domain.Weekday][]domain.DailyWindow{
		domain.Monday:  {window(9, 13)},
		domain.Tuesday: {window(9, 13)},
	})

	for _, splitting := range []bool{true, false} {
		cfg := DefaultConfig()
		cfg.AllowSplitting = splitting

		resp := NewGreedyScheduler().Schedule(Request{
			Tasks:         tasks,
			BusyIntervals: busy,
			Availability:  availability,
			Config:        cfg,
			StartTime:     fixedAnchor,
		})

		for i, b := range resp.Blocks {
			assert.True(t, b.End.After(b.Start))
			if i > 0 {
				assert.False(t, b.Start.Before(resp.Blocks[i-1].Start), "blocks must be ordered by start")
			}
			for _, other := range resp.Blocks[i+1:] {
				assert.False(t, b.Overlaps(other), "blocks %v and %v overlap", b, other)
			}
			for _, bi := range busy {
				assert.False(t, bi.Intersects(b.Start, b.End), "block %v overlaps busy %v", b, bi)
			}
		}

		scheduled := 0
		for _, b := range resp.Blocks {
			scheduled += b.DurationMinutes()
		}
		unscheduled := 0
		for _, w := range resp.Warnings {
			unscheduled += w.DurationMinutes
		}
		input := 0
		for _, task := range tasks {
			input += task.DurationMinutes
		}
		assert.Equal(t, input, scheduled+unscheduled, "splitting=%v", splitting)
	}
}

func TestScheduleTasks_AnchorsAtNextHalfHour(t *testing.T) {
	tasks := []*domain.Task{
		{ID: 1, UserID: 1, Title: "write report", DurationMinutes: 60, Priority: 2},
	}

	resp, err := fixedScheduler().ScheduleTasks(tasks, nil, mondayAvailability(9, 17), DefaultConfig())
	require.NoError(t, err)

	require.Len(t, resp.Blocks, 1)
	assert.Equal(t, fixedAnchor, resp.Blocks[0].Start)
}

func TestScheduleTasks_EmptyTaskSet(t *testing.T) {
	resp, err := fixedScheduler().ScheduleTasks(nil, nil, mondayAvailability(9, 17), DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, resp.Blocks)
	assert.Empty(t, resp.Warnings)
}

func TestScheduleTasks_RejectsTaskWithoutID(t *testing.T) {
	tasks := []*domain.Task{{UserID: 1, Title: "orphan", DurationMinutes: 30, Priority: 2}}

	_, err := fixedScheduler().ScheduleTasks(tasks, nil, mondayAvailability(9, 17), DefaultConfig())
	assert.ErrorIs(t, err, domain.ErrMissingTaskID)
}

func TestScheduleTasks_RejectsItemWithZeroTimes(t *testing.T) {
	tasks := []*domain.Task{{ID: 1, UserID: 1, DurationMinutes: 30, Priority: 2}}
	items := []*domain.ScheduleItem{{UserID: 1, Title: "broken"}}

	_, err := fixedScheduler().ScheduleTasks(tasks, items, mondayAvailability(9, 17), DefaultConfig())
	assert.ErrorIs(t, err, domain.ErrInvalidInterval)
}
