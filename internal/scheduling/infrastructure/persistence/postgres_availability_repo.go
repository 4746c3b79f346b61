package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

// PostgresAvailabilityRepository implements domain.AvailabilityRepository on
// postgres.
type PostgresAvailabilityRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAvailabilityRepository creates a new PostgresAvailabilityRepository.
func NewPostgresAvailabilityRepository(pool *pgxpool.Pool) *PostgresAvailabilityRepository {
	return &PostgresAvailabilityRepository{pool: pool}
}

// Replace swaps the user's whole template in one transaction.
func (r *PostgresAvailabilityRepository) Replace(ctx context.Context, userID int64, windows map[domain.Weekday][]domain.DailyWindow) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin replace availability: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM daily_windows WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear availability: %w", err)
	}
	for day, ws := range windows {
		for _, w := range ws {
			if _, err := tx.Exec(ctx, `
				INSERT INTO daily_windows (user_id, weekday, start_time, end_time)
				VALUES ($1, $2, $3, $4)`,
				userID, int(day), w.Start.String(), w.End.String(),
			); err != nil {
				return fmt.Errorf("insert window: %w", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace availability: %w", err)
	}
	return nil
}

// FindByUser loads the user's template, nil when none is stored.
func (r *PostgresAvailabilityRepository) FindByUser(ctx context.Context, userID int64) (*domain.WeeklyAvailability, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT weekday, start_time, end_time
		FROM daily_windows WHERE user_id = $1
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
