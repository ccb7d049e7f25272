// Package persistence implements the task repository for both storage
// backends.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	plannerdomain "github.com/taskflowhq/taskflow/internal/planner/domain"
	sharedDomain "github.com/taskflowhq/taskflow/internal/shared/domain"
	"github.com/taskflowhq/taskflow/internal/tasks/domain/task"
)

// SQLiteTaskRepository implements task.Repository using SQLite.
type SQLiteTaskRepository struct {
	db *sql.DB
}

// NewSQLiteTaskRepository creates a new SQLite task repository.
func NewSQLiteTaskRepository(db *sql.DB) *SQLiteTaskRepository {
	return &SQLiteTaskRepository{db: db}
}

// Save persists a task, inserting or updating by ID.
func (r *SQLiteTaskRepository) Save(ctx context.Context, t *task.Task) error {
	const query = `
		INSERT INTO tasks (
			id, title, description, priority, estimated_minutes,
			actual_minutes, deadline, completed, completed_at,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			priority = excluded.priority,
			estimated_minutes = excluded.estimated_minutes,
			actual_minutes = excluded.actual_minutes,
			deadline = excluded.deadline,
			completed = excluded.completed,
			completed_at = excluded.completed_at,
			updated_at = excluded.updated_at`

	var description sql.NullString
	if t.Description() != "" {
		description = sql.NullString{String: t.Description(), Valid: true}
	}

	var deadline sql.NullString
	if t.Deadline() != nil && !t.Deadline().IsZero() {
		deadline = sql.NullString{String: t.Deadline().String(), Valid: true}
	}

	var completedAt sql.NullString
	if t.CompletedAt() != nil {
		completedAt = sql.NullString{String: t.CompletedAt().Format(time.RFC3339), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		t.ID().String(),
		t.Title(),
		description,
		t.Priority().String(),
		t.EstimatedTime(),
		t.ActualTime(),
		deadline,
		boolToInt(t.IsCompleted()),
		completedAt,
		t.CreatedAt().Format(time.RFC3339),
		t.UpdatedAt().Format(time.RFC3339),
	)
	return err
}

// FindByID retrieves a task by its ID.
func (r *SQLiteTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` FROM tasks WHERE id = ?`, id.String())

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	return t, err
}

// FindAll retrieves every task, newest first.
func (r *SQLiteTaskRepository) FindAll(ctx context.Context) ([]*task.Task, error) {
	return r.query(ctx, selectColumns+` FROM tasks ORDER BY created_at DESC`)
}

// FindActive retrieves tasks not yet completed.
func (r *SQLiteTaskRepository) FindActive(ctx context.Context) ([]*task.Task, error) {
	return r.query(ctx, selectColumns+` FROM tasks WHERE completed = 0 ORDER BY created_at DESC`)
}

// FindCompleted retrieves completed tasks.
func (r *SQLiteTaskRepository) FindCompleted(ctx context.Context) ([]*task.Task, error) {
	return r.query(ctx, selectColumns+` FROM tasks WHERE completed = 1 ORDER BY completed_at DESC`)
}

// Delete removes a task.
func (r *SQLiteTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *SQLiteTaskRepository) query(ctx context.Context, query string, args ...any) ([]*task.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

const selectColumns = `
	SELECT id, title, description, priority, estimated_minutes,
	       actual_minutes, deadline, completed, completed_at,
	       created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*task.Task, error) {
	var (
		id, title, priority   string
		description, deadline sql.NullString
		completedAt           sql.NullString
		createdAt, updatedAt  string
		estimated, actual     int
		completed             int
	)

	err := row.Scan(&id, &title, &description, &priority, &estimated,
		&actual, &deadline, &completed, &completedAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return rehydrate(rowData{
		id:          id,
		title:       title,
		description: description.String,
		priority:    priority,
		estimated:   estimated,
		actual:      actual,
		deadline:    deadline.String,
		completed:   completed != 0,
		completedAt: completedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	})
}

type rowData struct {
	id          string
	title       string
	description string
	priority    string
	estimated   int
	actual      int
	deadline    string
	completed   bool
	completedAt sql.NullString
	createdAt   string
	updatedAt   string
}

func rehydrate(row rowData) (*task.Task, error) {
	id, err := uuid.Parse(row.id)
	if err != nil {
		return nil, fmt.Errorf("invalid task id: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339, row.createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339, row.updatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at: %w", err)
	}

	priority, err := plannerdomain.ParsePriority(row.priority)
	if err != nil {
		return nil, fmt.Errorf("invalid priority in database: %w", err)
	}

	var deadline *plannerdomain.Deadline
	if row.deadline != "" {
		dl, ok := plannerdomain.ParseDeadline(row.deadline)
		if !ok {
			return nil, fmt.Errorf("invalid deadline in database: %q", row.deadline)
		}
		deadline = &dl
	}

	var completedAt *time.Time
	if row.completedAt.Valid {
		ts, err := time.Parse(time.RFC3339, row.completedAt.String)
		if err != nil {
			return nil, fmt.Errorf("invalid completed_at: %w", err)
		}
		completedAt = &ts
	}

	return task.Rehydrate(
		sharedDomain.RehydrateBaseEntity(id, createdAt, updatedAt),
		row.title,
		row.description,
		priority,
		row.estimated,
		row.actual,
		deadline,
		row.completed,
		completedAt,
	), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
