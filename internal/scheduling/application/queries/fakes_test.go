package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

type fakeTaskRepo struct {
	tasks     []*domain.Task
	scheduled map[int64]bool
}

func (r *fakeTaskRepo) Save(_ context.Context, task *domain.Task) error {
	r.tasks = append(r.tasks, task)
	return nil
}

func (r *fakeTaskRepo) FindByID(_ context.Context, id int64) (*domain.Task, error) {
	for _, task := range r.tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return nil, nil
}

func (r *fakeTaskRepo) ListByUser(_ context.Context, userID int64) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, task := range r.tasks {
		if task.UserID == userID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) ListUnscheduled(_ context.Context, userID int64) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, task := range r.tasks {
		if task.UserID == userID && !r.scheduled[task.ID] {
			out = append(out, task)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id int64) error {
	for i, task := range r.tasks {
		if task.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeScheduleItemRepo struct {
	items []*domain.ScheduleItem
}

func (r *fakeScheduleItemRepo) Create(_ context.Context, item *domain.ScheduleItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *fakeScheduleItemRepo) ListByUser(_ context.Context, userID int64) ([]*domain.ScheduleItem, error) {
	var out []*domain.ScheduleItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeScheduleItemRepo) ListByUserInRange(_ context.Context, userID int64, from, to time.Time) ([]*domain.ScheduleItem, error) {
	var out []*domain.ScheduleItem
	for _, item := range r.items {
		if item.UserID == userID && item.End.After(from) && item.Start.Before(to) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeScheduleItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeScheduleItemRepo) DeleteBySource(_ context.Context, userID int64, source string) (int64, error) {
	var kept []*domain.ScheduleItem
	var removed int64
	for _, item := range r.items {
		if item.UserID == userID && item.Source == source {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	r.items = kept
	return removed, nil
}

type fakeAvailabilityRepo struct {
	templates map[int64]map[domain.Weekday][]domain.DailyWindow
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{templates: make(map[int64]map[domain.Weekday][]domain.DailyWindow)}
}

func (r *fakeAvailabilityRepo) Replace(_ context.Context, userID int64, windows map[domain.Weekday][]domain.DailyWindow) error {
	r.templates[userID] = windows
	return nil
}

func (r *fakeAvailabilityRepo) FindByUser(_ context.Context, userID int64) (*domain.WeeklyAvailability, error) {
	windows, ok := r.templates[userID]
	if !ok {
		return nil, nil
	}
	availability := domain.NewWeeklyAvailability(userID, windows)
	return &availability, nil
}

func mustItem(userID int64, taskID *int64, start, end time.Time, source, title string) *domain.ScheduleItem {
	item, err := domain.NewScheduleItem(userID, taskID, start, end, source, title, "")
	if err != nil {
		panic(err)
	}
	return item
}
