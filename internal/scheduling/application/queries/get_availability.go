package queries

import (
	"context"
	"fmt"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

// GetAvailabilityQuery fetches a user's weekly template.
type GetAvailabilityQuery struct {
	UserID int64
}

// GetAvailabilityHandler handles the GetAvailabilityQuery.
type GetAvailabilityHandler struct {
	availabilityRepo domain.AvailabilityRepository
}

// NewGetAvailabilityHandler creates a new GetAvailabilityHandler.
func NewGetAvailabilityHandler(availabilityRepo domain.AvailabilityRepository) *GetAvailabilityHandler {
	return &GetAvailabilityHandler{availabilityRepo: availabilityRepo}
}

// Handle executes the GetAvailabilityQuery. A user without a stored template
// gets an empty one back, never nil.
func (h *GetAvailabilityHandler) Handle(ctx context.Context, q GetAvailabilityQuery) (*domain.WeeklyAvailability, error) {
	availability, err := h.availabilityRepo.FindByUser(ctx, q.UserID)
	if err != nil {
		return nil, fmt.Errorf("load availability: %w", err)
	}
	if availability == nil {
		return &domain.WeeklyAvailability{UserID: q.UserID}, nil
	}
	return availability, nil
}
