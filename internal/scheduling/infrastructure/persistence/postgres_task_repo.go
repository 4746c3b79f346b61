package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

// PostgresTaskRepository implements domain.TaskRepository on postgres.
type PostgresTaskRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTaskRepository creates a new PostgresTaskRepository.
func NewPostgresTaskRepository(pool *pgxpool.Pool) *PostgresTaskRepository {
	return &PostgresTaskRepository{pool: pool}
}

// Save inserts the task when its id is zero, assigning the generated id,
// and updates it otherwise.
func (r *PostgresTaskRepository) Save(ctx context.Context, task *domain.Task) error {
	if task.ID == 0 {
		err := r.pool.QueryRow(ctx, `
			INSERT INTO tasks (user_id, title, description, duration_minutes, deadline, priority, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
			task.UserID, task.Title, task.Description, task.DurationMinutes,
			task.Deadline, task.Priority, task.CreatedAt, task.UpdatedAt,
		).Scan(&task.ID)
		if err != nil {
			return fmt.Errorf("insert task: %w", err)
		}
		return nil
	}

	_, err := r.pool.Exec(ctx, `
		UPDATE tasks
		SET title = $1, description = $2, duration_minutes = $3, deadline = $4, priority = $5, updated_at = $6
		WHERE id = $7`,
		task.Title, task.Description, task.DurationMinutes,
		task.Deadline, task.Priority, task.UpdatedAt, task.ID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// FindByID returns the task, or nil when no task has the id.
func (r *PostgresTaskRepository) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, title, description, duration_minutes, deadline, priority, created_at, updated_at
		FROM tasks WHERE id = $1`, id)

	task, err := scanPgTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return task, err
}

// ListByUser returns the user's tasks ordered by id.
func (r *PostgresTaskRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	return r.listTasks(ctx, `
		SELECT id, user_id, title, description, duration_minutes, deadline, priority, created_at, updated_at
		FROM tasks WHERE user_id = $1 ORDER BY id`, userID)
}

// ListUnscheduled returns the user's tasks with no committed schedule item.
func (r *PostgresTaskRepository) ListUnscheduled(ctx context.Context, userID int64) ([]*domain.Task, error) {
	return r.listTasks(ctx, `
		SELECT t.id, t.user_id, t.title, t.description, t.duration_minutes, t.deadline, t.priority, t.created_at, t.updated_at
		FROM tasks t
		WHERE t.user_id = $1
		  AND NOT EXISTS (SELECT 1 FROM schedule_items s WHERE s.task_id = t.id)
		ORDER BY t.id`, userID)
}

// Delete removes the task. Deleting an unknown id is a no-op.
func (r *PostgresTaskRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (r *PostgresTaskRepository) listTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanPgTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func scanPgTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	if err := row.Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.DurationMinutes, &task.Deadline, &task.Priority,
		&task.CreatedAt, &task.UpdatedAt,
	); err != nil {
		return nil, err
	}
	normalizeTaskTimes(&task)
	return &task, nil
}

func normalizeTaskTimes(task *domain.Task) {
	if task.Deadline != nil {
		utc := task.Deadline.UTC()
		task.Deadline = &utc
	}
	task.CreatedAt = task.CreatedAt.UTC()
	task.UpdatedAt = task.UpdatedAt.UTC()
}
