package commands

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

func TestCreateTaskHandler(t *testing.T) {
	fixedNow := time.Date(2024, 6, 3, 9, 15, 0, 0, time.UTC)

	newHandler := func(repo *fakeTaskRepo) *CreateTaskHandler {
		h := NewCreateTaskHandler(repo, discardLogger())
		h.now = func() time.Time { return fixedNow }
		return h
	}

	t.Run("persists a valid task and assigns an id", func(t *testing.T) {
		repo := newFakeTaskRepo()
		deadline := fixedNow.Add(48 * time.Hour)

		task, err := newHandler(repo).Handle(context.Background(), CreateTaskCommand{
			UserID:          1,
			Title:           "write report",
			Description:     "draft the outline first",
			DurationMinutes: 90,
			Deadline:        &deadline,
			Priority:        1,
		})
		require.NoError(t, err)
		assert.NotZero(t, task.ID)
		assert.Equal(t, fixedNow, task.CreatedAt)
		assert.Equal(t, fixedNow, task.UpdatedAt)

		stored, err := repo.FindByID(context.Background(), task.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "write report", stored.Title)
		assert.Equal(t, 90, stored.DurationMinutes)
	})

	t.Run("rejects an empty title", func(t *testing.T) {
		_, err := newHandler(newFakeTaskRepo()).Handle(context.Background(), CreateTaskCommand{
			UserID:          1,
			DurationMinutes: 30,
		})
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("rejects out-of-range durations", func(t *testing.T) {
		h := newHandler(newFakeTaskRepo())
		for _, minutes := range []int{0, -15, 481} {
			_, err := h.Handle(context.Background(), CreateTaskCommand{
				UserID:          1,
				Title:           "too long",
				DurationMinutes: minutes,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidDuration, "minutes=%d", minutes)
		}
	})

	t.Run("rejects out-of-range priorities", func(t *testing.T) {
		h := newHandler(newFakeTaskRepo())
		for _, priority := range []int{-1, 5} {
			_, err := h.Handle(context.Background(), CreateTaskCommand{
				UserID:          1,
				Title:           "misprioritized",
				DurationMinutes: 30,
				Priority:        priority,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidPriority, "priority=%d", priority)
		}
	})

	t.Run("rejects a deadline in the past", func(t *testing.T) {
		past := fixedNow.Add(-time.Hour)
		_, err := newHandler(newFakeTaskRepo()).Handle(context.Background(), CreateTaskCommand{
			UserID:          1,
			Title:           "late",
			DurationMinutes: 30,
			Deadline:        &past,
		})
		assert.ErrorIs(t, err, ErrDeadlineInPast)
	})

	t.Run("rejects a deadline beyond ten years", func(t *testing.T) {
		far := fixedNow.Add(maxDeadlineHorizon + time.Hour)
		_, err := newHandler(newFakeTaskRepo()).Handle(context.Background(), CreateTaskCommand{
			UserID:          1,
			Title:           "someday",
			DurationMinutes: 30,
			Deadline:        &far,
		})
		assert.ErrorIs(t, err, ErrDeadlineTooFar)
	})

	t.Run("normalizes the deadline to UTC", func(t *testing.T) {
		loc, err := time.LoadLocation("Europe/Berlin")
		require.NoError(t, err)
		deadline := fixedNow.Add(24 * time.Hour).In(loc)

		task, err := newHandler(newFakeTaskRepo()).Handle(context.Background(), CreateTaskCommand{
			UserID:          1,
			Title:           "zoned",
			DurationMinutes: 30,
			Deadline:        &deadline,
		})
		require.NoError(t, err)
		require.NotNil(t, task.Deadline)
		assert.Equal(t, time.UTC, task.Deadline.Location())
		assert.True(t, task.Deadline.Equal(deadline))
	})
}
