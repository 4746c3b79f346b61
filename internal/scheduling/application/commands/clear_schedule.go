package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

// ClearScheduleCommand removes all scheduler-generated blocks for a user.
type ClearScheduleCommand struct {
	UserID int64
}

// ClearScheduleHandler handles the ClearScheduleCommand.
type ClearScheduleHandler struct {
	itemRepo domain.ScheduleItemRepository
	logger   *slog.Logger
}

// NewClearScheduleHandler creates a new ClearScheduleHandler.
func NewClearScheduleHandler(itemRepo domain.ScheduleItemRepository, logger *slog.Logger) *ClearScheduleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClearScheduleHandler{itemRepo: itemRepo, logger: logger}
}

// Handle executes the ClearScheduleCommand and returns the removed count.
func (h *ClearScheduleHandler) Handle(ctx context.Context, cmd ClearScheduleCommand) (int64, error) {
	removed, err := h.itemRepo.DeleteBySource(ctx, cmd.UserID, domain.SourceTask)
	if err != nil {
		return 0, fmt.Errorf("clear generated blocks: %w", err)
	}
	h.logger.Info("cleared generated blocks", "user_id", cmd.UserID, "removed", removed)
	return removed, nil
}
