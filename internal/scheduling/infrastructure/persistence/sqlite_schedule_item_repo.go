package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

// SQLiteScheduleItemRepository implements domain.ScheduleItemRepository on
// SQLite.
type SQLiteScheduleItemRepository struct {
	db *sql.DB
}

// NewSQLiteScheduleItemRepository creates a new SQLiteScheduleItemRepository.
func NewSQLiteScheduleItemRepository(db *sql.DB) *SQLiteScheduleItemRepository {
	return &SQLiteScheduleItemRepository{db: db}
}

// Create inserts the item.
func (r *SQLiteScheduleItemRepository) Create(ctx context.Context, item *domain.ScheduleItem) error {
	var taskID sql.NullInt64
	if item.TaskID != nil {
		taskID = sql.NullInt64{Int64: *item.TaskID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO schedule_items (id, user_id, task_id, start_time, end_time, source, title, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID.String(), item.UserID, taskID,
		item.Start.UTC().Format(time.RFC3339), item.End.UTC().Format(time.RFC3339),
		item.Source, item.Title, item.Description,
		item.CreatedAt.UTC().Format(time.RFC3339), item.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert schedule item: %w", err)
	}
	return nil
}

// ListByUser returns the user's items ordered by start time.
func (r *SQLiteScheduleItemRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.ScheduleItem, error) {
	return r.listItems(ctx, `
		SELECT id, user_id, task_id, start_time, end_time, source, title, description, created_at, updated_at
		FROM schedule_items WHERE user_id = ? ORDER BY start_time`, userID)
}

// ListByUserInRange returns the user's items overlapping [from, to), ordered
// by start time. RFC3339 strings in UTC compare lexicographically in time
// order, so the range predicate works on the raw columns.
func (r *SQLiteScheduleItemRepository) ListByUserInRange(ctx context.Context, userID int64, from, to time.Time) ([]*domain.ScheduleItem, error) {
	return r.listItems(ctx, `
		SELECT id, user_id, task_id, start_time, end_time, source, title, description, created_at, updated_at
		FROM schedule_items
		WHERE user_id = ? AND end_time > ? AND start_time < ?
		ORDER BY start_time`,
		userID, from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))
}

// Delete removes the item. Deleting an unknown id is a no-op.
func (r *SQLiteScheduleItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedule_items WHERE id = ?`, id.String()); err != nil {
		return fmt.Errorf("delete schedule item: %w", err)
	}
	return nil
}

// DeleteBySource removes every item the given producer created and reports
// how many went away.
func (r *SQLiteScheduleItemRepository) DeleteBySource(ctx context.Context, userID int64, source string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM schedule_items WHERE user_id = ? AND source = ?`, userID, source)
	if err != nil {
		return 0, fmt.Errorf("delete schedule items by source: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted schedule items: %w", err)
	}
	return removed, nil
}

func (r *SQLiteScheduleItemRepository) listItems(ctx context.Context, query string, args ...any) ([]*domain.ScheduleItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query schedule items: %w", err)
	}
	defer rows.Close()

	var items []*domain.ScheduleItem
	for rows.Next() {
		item, err := scanScheduleItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanScheduleItem(row rowScanner) (*domain.ScheduleItem, error) {
	var (
		item      domain.ScheduleItem
		id        string
		taskID    sql.NullInt64
		start     string
		end       string
		createdAt string
		updatedAt string
	)
	if err := row.Scan(
		&id, &item.UserID, &taskID, &start, &end,
		&item.Source, &item.Title, &item.Description,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("schedule item id %q: %w", id, err)
	}
	item.ID = parsed

	if taskID.Valid {
		item.TaskID = &taskID.Int64
	}
	if item.Start, err = parseTime(start); err != nil {
		return nil, fmt.Errorf("schedule item %s start_time: %w", id, err)
	}
	if item.End, err = parseTime(end); err != nil {
		return nil, fmt.Errorf("schedule item %s end_time: %w", id, err)
	}
	if item.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("schedule item %s created_at: %w", id, err)
	}
	if item.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("schedule item %s updated_at: %w", id, err)
	}
	return &item, nil
}
