package services

import (
	"sort"
	"time"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

// noDeadlineRank sorts deadline-less tasks after every task that has one.
const noDeadlineRank = int64(999999999)

// RankTasks totally orders tasks for packing:
//  1. nearer deadline first; tasks without a deadline come last,
//  2. then higher priority (0 is highest),
//  3. then longer duration.
//
// The input slice is left untouched.
func RankTasks(tasks []domain.SchedulableTask, now time.Time) []domain.SchedulableTask {
	ranked := make([]domain.SchedulableTask, len(tasks))
	copy(ranked, tasks)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		ra, rb := deadlineRank(a, now), deadlineRank(b, now)
		if ra != rb {
			return ra < rb
		}
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.DurationMinutes > b.DurationMinutes
	})

	return ranked
}

func deadlineRank(t domain.SchedulableTask, now time.Time) int64 {
	if t.Deadline == nil {
		return noDeadlineRank
	}
	return int64(t.Deadline.Sub(now) / time.Minute)
}
