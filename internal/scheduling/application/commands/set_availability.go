package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

var ErrOverlappingWindows = errors.New("windows on the same weekday must not overlap")

// WindowInput is one weekday window as entered by the user.
type WindowInput struct {
	Weekday domain.Weekday
	Start   string // "HH:MM"
	End     string // "HH:MM"
}

// SetAvailabilityCommand replaces a user's whole weekly template.
type SetAvailabilityCommand struct {
	UserID  int64
	Windows []WindowInput
}

// SetAvailabilityHandler handles the SetAvailabilityCommand.
type SetAvailabilityHandler struct {
	availabilityRepo domain.AvailabilityRepository
	logger           *slog.Logger
}

// NewSetAvailabilityHandler creates a new SetAvailabilityHandler.
func NewSetAvailabilityHandler(availabilityRepo domain.AvailabilityRepository, logger *slog.Logger) *SetAvailabilityHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SetAvailabilityHandler{availabilityRepo: availabilityRepo, logger: logger}
}

// Handle validates the windows and swaps the stored template. An empty
// window list clears the template, which makes every weekday non-working.
func (h *SetAvailabilityHandler) Handle(ctx context.Context, cmd SetAvailabilityCommand) (*domain.WeeklyAvailability, error) {
	grouped := make(map[domain.Weekday][]domain.DailyWindow)
	for _, in := range cmd.Windows {
		if !in.Weekday.Valid() {
			return nil, fmt.Errorf("window %s-%s: %w", in.Start, in.End, domain.ErrInvalidWeekday)
		}
		start, err := domain.ParseTimeOfDay(in.Start)
		if err != nil {
			return nil, err
		}
		end, err := domain.ParseTimeOfDay(in.End)
		if err != nil {
			return nil, err
		}
		window, err := domain.NewDailyWindow(start, end)
		if err != nil {
			return nil, fmt.Errorf("window %s-%s on %s: %w", in.Start, in.End, in.Weekday, err)
		}
		grouped[in.Weekday] = append(grouped[in.Weekday], window)
	}

	availability := domain.NewWeeklyAvailability(cmd.UserID, grouped)
	for day, ws := range availability.Windows {
		for i := 1; i < len(ws); i++ {
			if ws[i].Start.Before(ws[i-1].End) {
				return nil, fmt.Errorf("%s %s-%s and %s-%s: %w",
					day, ws[i-1].Start, ws[i-1].End, ws[i].Start, ws[i].End, ErrOverlappingWindows)
			}
		}
	}

	if err := h.availabilityRepo.Replace(ctx, cmd.UserID, availability.Windows); err != nil {
		return nil, fmt.Errorf("replace availability: %w", err)
	}

	h.logger.Info("availability replaced",
		"user_id", cmd.UserID,
		"windows", len(cmd.Windows),
		"weekly_minutes", availability.TotalWeeklyMinutes(),
	)
	return &availability, nil
}
