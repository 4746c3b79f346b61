package queries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

func TestListTasksHandler(t *testing.T) {
	ctx := context.Background()
	repo := &fakeTaskRepo{scheduled: map[int64]bool{2: true}}
	require.NoError(t, repo.Save(ctx, &domain.Task{ID: 2, UserID: 1, Title: "second", DurationMinutes: 30}))
	require.NoError(t, repo.Save(ctx, &domain.Task{ID: 1, UserID: 1, Title: "first", DurationMinutes: 60}))
	require.NoError(t, repo.Save(ctx, &domain.Task{ID: 3, UserID: 2, Title: "other user", DurationMinutes: 15}))

	h := NewListTasksHandler(repo)

	t.Run("orders by id", func(t *testing.T) {
		tasks, err := h.Handle(ctx, ListTasksQuery{UserID: 1})
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, "first", tasks[0].Title)
		assert.Equal(t, "second", tasks[1].Title)
	})

	t.Run("unscheduled filter", func(t *testing.T) {
		tasks, err := h.Handle(ctx, ListTasksQuery{UserID: 1, Unscheduled: true})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "first", tasks[0].Title)
	})

	t.Run("no tasks", func(t *testing.T) {
		tasks, err := h.Handle(ctx, ListTasksQuery{UserID: 9})
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})
}

func TestGetAvailabilityHandler(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAvailabilityRepo()
	require.NoError(t, repo.Replace(ctx, 1, map[domain.Weekday][]domain.DailyWindow{
		domain.Monday: {{Start: domain.TimeOfDay{Hour: 9}, End: domain.TimeOfDay{Hour: 17}}},
	}))

	h := NewGetAvailabilityHandler(repo)

	t.Run("returns the stored template", func(t *testing.T) {
		availability, err := h.Handle(ctx, GetAvailabilityQuery{UserID: 1})
		require.NoError(t, err)
		require.Len(t, availability.WindowsOn(domain.Monday), 1)
		assert.Equal(t, 8*60, availability.TotalWeeklyMinutes())
	})

	t.Run("missing template comes back empty, not nil", func(t *testing.T) {
		availability, err := h.Handle(ctx, GetAvailabilityQuery{UserID: 42})
		require.NoError(t, err)
		require.NotNil(t, availability)
		assert.Equal(t, int64(42), availability.UserID)
		assert.Zero(t, availability.TotalWeeklyMinutes())
	})
}
