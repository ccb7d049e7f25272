package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	plannerdomain "github.com/taskflowhq/taskflow/internal/planner/domain"
	sharedDomain "github.com/taskflowhq/taskflow/internal/shared/domain"
	"github.com/taskflowhq/taskflow/internal/tasks/domain/task"
)

// PostgresTaskRepository implements task.Repository using PostgreSQL.
type PostgresTaskRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTaskRepository creates a new PostgreSQL task repository.
func NewPostgresTaskRepository(pool *pgxpool.Pool) *PostgresTaskRepository {
	return &PostgresTaskRepository{pool: pool}
}

// Save persists a task, inserting or updating by ID.
func (r *PostgresTaskRepository) Save(ctx context.Context, t *task.Task) error {
	const query = `
		INSERT INTO tasks (
			id, title, description, priority, estimated_minutes,
			actual_minutes, deadline, completed, completed_at,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			priority = EXCLUDED.priority,
			estimated_minutes = EXCLUDED.estimated_minutes,
			actual_minutes = EXCLUDED.actual_minutes,
			deadline = EXCLUDED.deadline,
			completed = EXCLUDED.completed,
			completed_at = EXCLUDED.completed_at,
			updated_at = EXCLUDED.updated_at`

	var description *string
	if t.Description() != "" {
		d := t.Description()
		description = &d
	}

	var deadline *time.Time
	if t.Deadline() != nil && !t.Deadline().IsZero() {
		d := t.Deadline().Date()
		deadline = &d
	}

	_, err := r.pool.Exec(ctx, query,
		t.ID(),
		t.Title(),
		description,
		t.Priority().String(),
		t.EstimatedTime(),
		t.ActualTime(),
		deadline,
		t.IsCompleted(),
		t.CompletedAt(),
		t.CreatedAt(),
		t.UpdatedAt(),
	)
	return err
}

// FindByID retrieves a task by its ID.
func (r *PostgresTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	row := r.pool.QueryRow(ctx, pgSelectColumns+` FROM tasks WHERE id = $1`, id)

	t, err := r.scan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	return t, err
}

// FindAll retrieves every task, newest first.
func (r *PostgresTaskRepository) FindAll(ctx context.Context) ([]*task.Task, error) {
	return r.query(ctx, pgSelectColumns+` FROM tasks ORDER BY created_at DESC`)
}

// FindActive retrieves tasks not yet completed.
func (r *PostgresTaskRepository) FindActive(ctx context.Context) ([]*task.Task, error) {
	return r.query(ctx, pgSelectColumns+` FROM tasks WHERE NOT completed ORDER BY created_at DESC`)
}

// FindCompleted retrieves completed tasks.
func (r *PostgresTaskRepository) FindCompleted(ctx context.Context) ([]*task.Task, error) {
	return r.query(ctx, pgSelectColumns+` FROM tasks WHERE completed ORDER BY completed_at DESC`)
}

// Delete removes a task.
func (r *PostgresTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *PostgresTaskRepository) query(ctx context.Context, query string, args ...any) ([]*task.Task, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		t, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

const pgSelectColumns = `
	SELECT id, title, description, priority, estimated_minutes,
	       actual_minutes, deadline, completed, completed_at,
	       created_at, updated_at`

func (r *PostgresTaskRepository) scan(row pgx.Row) (*task.Task, error) {
	var (
		id                   uuid.UUID
		title, priority      string
		description          *string
		estimated, actual    int
		deadlineDate         *time.Time
		completed            bool
		completedAt          *time.Time
		createdAt, updatedAt time.Time
	)

	err := row.Scan(&id, &title, &description, &priority, &estimated,
		&actual, &deadlineDate, &completed, &completedAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	parsedPriority, err := plannerdomain.ParsePriority(priority)
	if err != nil {
		return nil, err
	}

	var deadline *plannerdomain.Deadline
	if deadlineDate != nil {
		dl := plannerdomain.NewDeadline(*deadlineDate)
		deadline = &dl
	}

	desc := ""
	if description != nil {
		desc = *description
	}

	return task.Rehydrate(
		sharedDomain.RehydrateBaseEntity(id, createdAt.UTC(), updatedAt.UTC()),
		title,
		desc,
		parsedPriority,
		estimated,
		actual,
		deadline,
		completed,
		completedAt,
	), nil
}
