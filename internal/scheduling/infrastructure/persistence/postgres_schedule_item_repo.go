package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

// PostgresScheduleItemRepository implements domain.ScheduleItemRepository on
// postgres.
type PostgresScheduleItemRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresScheduleItemRepository creates a new PostgresScheduleItemRepository.
func NewPostgresScheduleItemRepository(pool *pgxpool.Pool) *PostgresScheduleItemRepository {
	return &PostgresScheduleItemRepository{pool: pool}
}

// Create inserts the item.
func (r *PostgresScheduleItemRepository) Create(ctx context.Context, item *domain.ScheduleItem) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO schedule_items (id, user_id, task_id, start_time, end_time, source, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		item.ID, item.UserID, item.TaskID, item.Start, item.End,
		item.Source, item.Title, item.Description, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert schedule item: %w", err)
	}
	return nil
}

// ListByUser returns the user's items ordered by start time.
func (r *PostgresScheduleItemRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.ScheduleItem, error) {
	return r.listItems(ctx, `
		SELECT id, user_id, task_id, start_time, end_time, source, title, description, created_at, updated_at
		FROM schedule_items WHERE user_id = $1 ORDER BY start_time`, userID)
}

// ListByUserInRange returns the user's items overlapping [from, to), ordered
// by start time.
func (r *PostgresScheduleItemRepository) ListByUserInRange(ctx context.Context, userID int64, from, to time.Time) ([]*domain.ScheduleItem, error) {
	return r.listItems(ctx, `
		SELECT id, user_id, task_id, start_time, end_time, source, title, description, created_at, updated_at
		FROM schedule_items
		WHERE user_id = $1 AND end_time > $2 AND start_time < $3
		ORDER BY start_time`, userID, from, to)
}

// Delete removes the item. Deleting an unknown id is a no-op.
func (r *PostgresScheduleItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM schedule_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete schedule item: %w", err)
	}
	return nil
}

// DeleteBySource removes every item the given producer created and reports
// how many went away.
func (r *PostgresScheduleItemRepository) DeleteBySource(ctx context.Context, userID int64, source string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM schedule_items WHERE user_id = $1 AND source = $2`, userID, source)
	if err != nil {
		return 0, fmt.Errorf("delete schedule items by source: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PostgresScheduleItemRepository) listItems(ctx context.Context, query string, args ...any) ([]*domain.ScheduleItem, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query schedule items: %w", err)
	}
	defer rows.Close()

	var items []*domain.ScheduleItem
	for rows.Next() {
		item, err := scanPgScheduleItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanPgScheduleItem(row pgx.Row) (*domain.ScheduleItem, error) {
	var item domain.ScheduleItem
	if err := row.Scan(
		&item.ID, &item.UserID, &item.TaskID, &item.Start, &item.End,
		&item.Source, &item.Title, &item.Description,
		&item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	item.Start = item.Start.UTC()
	item.End = item.End.UTC()
	item.CreatedAt = item.CreatedAt.UTC()
	item.UpdatedAt = item.UpdatedAt.UTC()
	return &item, nil
}
