package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

// SQLiteAvailabilityRepository implements domain.AvailabilityRepository on
// SQLite. Windows are stored one row each as "HH:MM" strings.
type SQLiteAvailabilityRepository struct {
	db *sql.DB
}

// NewSQLiteAvailabilityRepository creates a new SQLiteAvailabilityRepository.
func NewSQLiteAvailabilityRepository(db *sql.DB) *SQLiteAvailabilityRepository {
	return &SQLiteAvailabilityRepository{db: db}
}

// Replace swaps the user's whole template in one transaction.
func (r *SQLiteAvailabilityRepository) Replace(ctx context.Context, userID int64, windows map[domain.Weekday][]domain.DailyWindow) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace availability: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM daily_windows WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clear availability: %w", err)
	}
	for day, ws := range windows {
		for _, w := range ws {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO daily_windows (user_id, weekday, start_time, end_time)
				VALUES (?, ?, ?, ?)`,
				userID, int(day), w.Start.String(), w.End.String(),
			); err != nil {
				return fmt.Errorf("insert window: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace availability: %w", err)
	}
	return nil
}

// FindByUser loads the user's template, nil when none is stored.
func (r *SQLiteAvailabilityRepository) FindByUser(ctx context.Context, userID int64) (*domain.WeeklyAvailability, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT weekday, start_time, end_time
		FROM daily_windows WHERE user_id = ?
		ORDER BY weekday, start_time`, userID)
	if err != nil {
		return nil, fmt.Errorf("query availability: %w", err)
	}
	defer rows.Close()

	windows := make(map[domain.Weekday][]domain.DailyWindow)
	for rows.Next() {
		var (
			weekday  int
			startStr string
			endStr   string
		)
		if err := rows.Scan(&weekday, &startStr, &endStr); err != nil {
			return nil, fmt.Errorf("scan window: %w", err)
		}
		window, err := windowFromStrings(startStr, endStr)
		if err != nil {
			return nil, err
		}
		windows[domain.Weekday(weekday)] = append(windows[domain.Weekday(weekday)], window)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return nil, nil
	}

	availability := domain.NewWeeklyAvailability(userID, windows)
	return &availability, nil
}

func windowFromStrings(startStr, endStr string) (domain.DailyWindow, error) {
	start, err := domain.ParseTimeOfDay(startStr)
	if err != nil {
		return domain.DailyWindow{}, fmt.Errorf("stored window start: %w", err)
	}
	end, err := domain.ParseTimeOfDay(endStr)
	if err != nil {
		return domain.DailyWindow{}, fmt.Errorf("stored window end: %w", err)
	}
	return domain.NewDailyWindow(start, end)
}
