// Package persistence implements the scheduling repositories for SQLite and
// postgres. SQLite stores instants as RFC3339 strings; postgres uses native
// timestamptz columns.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

// SQLiteTaskRepository implements domain.TaskRepository on SQLite.
type SQLiteTaskRepository struct {
	db *sql.DB
}

// NewSQLiteTaskRepository creates a new SQLiteTaskRepository.
func NewSQLiteTaskRepository(db *sql.DB) *SQLiteTaskRepository {
	return &SQLiteTaskRepository{db: db}
}

// Save inserts the task when its id is zero, assigning the generated id,
// and updates it otherwise.
func (r *SQLiteTaskRepository) Save(ctx context.Context, task *domain.Task) error {
	deadline := nullTimeString(task.Deadline)

	if task.ID == 0 {
		result, err := r.db.ExecContext(ctx, `
			INSERT INTO tasks (user_id, title, description, duration_minutes, deadline, priority, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			task.UserID, task.Title, task.Description, task.DurationMinutes,
			deadline, task.Priority,
			task.CreatedAt.UTC().Format(time.RFC3339), task.UpdatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("insert task: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("read generated task id: %w", err)
		}
		task.ID = id
		return nil
	}

	_, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, description = ?, duration_minutes = ?, deadline = ?, priority = ?, updated_at = ?
		WHERE id = ?`,
		task.Title, task.Description, task.DurationMinutes,
		deadline, task.Priority, task.UpdatedAt.UTC().Format(time.RFC3339),
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// FindByID returns the task, or nil when no task has the id.
func (r *SQLiteTaskRepository) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, description, duration_minutes, deadline, priority, created_at, updated_at
		FROM tasks WHERE id = ?`, id)

	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return task, err
}

// ListByUser returns the user's tasks ordered by id.
func (r *SQLiteTaskRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	return r.listTasks(ctx, `
		SELECT id, user_id, title, description, duration_minutes, deadline, priority, created_at, updated_at
		FROM tasks WHERE user_id = ? ORDER BY id`, userID)
}

// ListUnscheduled returns the user's tasks with no committed schedule item.
func (r *SQLiteTaskRepository) ListUnscheduled(ctx context.Context, userID int64) ([]*domain.Task, error) {
	return r.listTasks(ctx, `
		SELECT t.id, t.user_id, t.title, t.description, t.duration_minutes, t.deadline, t.priority, t.created_at, t.updated_at
		FROM tasks t
		WHERE t.user_id = ?
		  AND NOT EXISTS (SELECT 1 FROM schedule_items s WHERE s.task_id = t.id)
		ORDER BY t.id`, userID)
}

// Delete removes the task. Deleting an unknown id is a no-op.
func (r *SQLiteTaskRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepository) listTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task      domain.Task
		deadline  sql.NullString
		createdAt string
		updatedAt string
	)
	if err := row.Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.DurationMinutes, &deadline, &task.Priority,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if task.Deadline, err = parseNullTime(deadline); err != nil {
		return nil, fmt.Errorf("task %d deadline: %w", task.ID, err)
	}
	if task.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("task %d created_at: %w", task.ID, err)
	}
	if task.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("task %d updated_at: %w", task.ID, err)
	}
	return &task, nil
}

func nullTimeString(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339), Valid: true}
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func parseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
