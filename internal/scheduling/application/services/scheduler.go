// Package services implements the greedy scheduling engine: availability
// materialization, busy subtraction, task ranking, and slot packing, composed
// week by week by GreedyScheduler.
package services

import (
	"time"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
	"github.com/chronoplan/chrono/internal/shared/timeutil"
)

// Config tunes one scheduling run.
type Config struct {
	// MaxSchedulingWeeks is the horizon in consecutive weeks from the anchor.
	MaxSchedulingWeeks int
	// AllowSplitting lets over-long tasks fragment across slot boundaries.
	AllowSplitting bool
	// Timezone is the user's IANA zone for availability projection.
	Timezone string
}

// DefaultConfig returns the default scheduling configuration.
func DefaultConfig() Config {
	return Config{
		MaxSchedulingWeeks: 12,
		AllowSplitting:     true,
		Timezone:           "UTC",
	}
}

func (c Config) normalized() Config {
	if c.MaxSchedulingWeeks <= 0 {
		c.MaxSchedulingWeeks = 12
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	return c
}

// Request carries the immutable inputs of one scheduling run.
type Request struct {
	Tasks         []domain.SchedulableTask
	BusyIntervals []domain.BusyInterval
	Availability  domain.WeeklyAvailability
	Config        Config
	// StartTime is the anchor: the earliest possible block start, in UTC.
	StartTime time.Time
}

// Response is the outcome of one scheduling run. Warnings holds the tasks
// (or split remainders) that could not be placed within the horizon, in
// ranked order.
type Response struct {
	Blocks   []domain.ScheduleBlock
	Warnings []domain.SchedulableTask
}

// GreedyScheduler packs ranked tasks into the free portions of the user's
// working hours. It is purely functional over its inputs; concurrent runs on
// disjoint inputs need no synchronization.
type GreedyScheduler struct {
	now func() time.Time
}

// NewGreedyScheduler creates a scheduler using the real clock.
func NewGreedyScheduler() *GreedyScheduler {
	return &GreedyScheduler{now: timeutil.NowUTC}
}

// ScheduleTasks converts persisted entities, anchors the run at the next
// half hour, and schedules. An empty task set yields an empty response.
func (s *GreedyScheduler) ScheduleTasks(
	tasks []*domain.Task,
	items []*domain.ScheduleItem,
	availability domain.WeeklyAvailability,
	config Config,
) (Response, error) {
	if len(tasks) == 0 {
		return Response{}, nil
	}

	schedulables, err := TasksToSchedulables(tasks)
	if err != nil {
		return Response{}, err
	}
	busy, err := ScheduleItemsToBusyIntervals(items)
	if err != nil {
		return Response{}, err
	}

	return s.Schedule(Request{
		Tasks:         schedulables,
		BusyIntervals: busy,
		Availability:  availability,
		Config:        config,
		StartTime:     timeutil.NextHalfHour(s.now()),
	}), nil
}

// Schedule runs the core algorithm against an explicit anchor.
func (s *GreedyScheduler) Schedule(req Request) Response {
	cfg := req.Config.normalized()
	loc := timeutil.LocationOrUTC(cfg.Timezone)
	anchor := req.StartTime.UTC()

	ranked := RankTasks(req.Tasks, anchor)

	// First week runs from the anchor to the following Monday; note an anchor
	// already on Monday pushes weekEnd a full week out.
	weekEnd := timeutil.NextWeekday(anchor, time.Monday)
	slots := MaterializeWeek(req.Availability, anchor, busyStartingWithin(req.BusyIntervals, anchor, weekEnd), loc)

	for week := 1; week < cfg.MaxSchedulingWeeks; week++ {
		weekStart := weekEnd
		weekEnd = weekEnd.AddDate(0, 0, 7)
		weekSlots := MaterializeWeek(req.Availability, weekStart, busyStartingWithin(req.BusyIntervals, weekStart, weekEnd), loc)
		slots.Merge(weekSlots)
	}

	blocks, unscheduled := PackTasks(ranked, slots, cfg.AllowSplitting)

	return Response{Blocks: blocks, Warnings: unscheduled}
}

// busyStartingWithin keeps the intervals whose start lies in [from, to).
func busyStartingWithin(busy []domain.BusyInterval, from, to time.Time) []domain.BusyInterval {
	var within []domain.BusyInterval
	for _, bi := range busy {
		if !bi.Start.Before(from) && bi.Start.Before(to) {
			within = append(within, bi)
		}
	}
	return within
}
