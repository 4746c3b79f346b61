package commands

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeTaskRepo struct {
	mu        sync.Mutex
	nextID    int64
	tasks     map[int64]*domain.Task
	scheduled map[int64]bool
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[int64]*domain.Task), scheduled: make(map[int64]bool)}
}

func (r *fakeTaskRepo) Save(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if task.ID == 0 {
		r.nextID++
		task.ID = r.nextID
	}
	stored := *task
	r.tasks[task.ID] = &stored
	return nil
}

func (r *fakeTaskRepo) FindByID(_ context.Context, id int64) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) ListByUser(_ context.Context, userID int64) ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Task
	for _, task := range r.tasks {
		if task.UserID == userID {
			copied := *task
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) ListUnscheduled(_ context.Context, userID int64) ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Task
	for _, task := range r.tasks {
		if task.UserID == userID && !r.scheduled[task.ID] {
			copied := *task
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, id)
	return nil
}

type fakeScheduleItemRepo struct {
	mu    sync.Mutex
	items []*domain.ScheduleItem
}

func (r *fakeScheduleItemRepo) Create(_ context.Context, item *domain.ScheduleItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *item
	r.items = append(r.items, &stored)
	return nil
}

func (r *fakeScheduleItemRepo) ListByUser(_ context.Context, userID int64) ([]*domain.ScheduleItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.ScheduleItem
	for _, item := range r.items {
		if item.UserID == userID {
			copied := *item
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeScheduleItemRepo) ListByUserInRange(_ context.Context, userID int64, from, to time.Time) ([]*domain.ScheduleItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.ScheduleItem
	for _, item := range r.items {
		if item.UserID == userID && item.End.After(from) && item.Start.Before(to) {
			copied := *item
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeScheduleItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeScheduleItemRepo) DeleteBySource(_ context.Context, userID int64, source string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
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
	mu        sync.Mutex
	templates map[int64]map[domain.Weekday][]domain.DailyWindow
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{templates: make(map[int64]map[domain.Weekday][]domain.DailyWindow)}
}

func (r *fakeAvailabilityRepo) Replace(_ context.Context, userID int64, windows map[domain.Weekday][]domain.DailyWindow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[userID] = windows
	return nil
}

func (r *fakeAvailabilityRepo) FindByUser(_ context.Context, userID int64) (*domain.WeeklyAvailability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	windows, ok := r.templates[userID]
	if !ok {
		return nil, nil
	}
	availability := domain.NewWeeklyAvailability(userID, windows)
	return &availability, nil
}
