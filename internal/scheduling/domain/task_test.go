package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulableTask_Validate(t *testing.T) {
	deadline := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		task    SchedulableTask
		wantErr error
	}{
		{
			name: "valid",
			task: SchedulableTask{ID: 1, Title: "Write report", DurationMinutes: 60, Priority: 2, Deadline: &deadline},
		},
		{
			name:    "missing id",
			task:    SchedulableTask{Title: "No id", DurationMinutes: 30, Priority: 2},
			wantErr: ErrMissingTaskID,
		},
		{
			name:    "zero duration",
			task:    SchedulableTask{ID: 2, DurationMinutes: 0, Priority: 2},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "duration above eight hours",
			task:    SchedulableTask{ID: 3, DurationMinutes: 481, Priority: 2},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "priority out of range",
			task:    SchedulableTask{ID: 4, DurationMinutes: 30, Priority: 5},
			wantErr: ErrInvalidPriority,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSchedulableTask_FitsWithin(t *testing.T) {
	task := SchedulableTask{ID: 1, DurationMinutes: 45}

	assert.True(t, task.FitsWithin(45))
	assert.True(t, task.FitsWithin(60))
	assert.False(t, task.FitsWithin(44))
}
