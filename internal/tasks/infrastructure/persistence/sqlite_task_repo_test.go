package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	plannerdomain "github.com/taskflowhq/taskflow/internal/planner/domain"
	"github.com/taskflowhq/taskflow/internal/shared/infrastructure/migrations"
	"github.com/taskflowhq/taskflow/internal/tasks/domain/task"
)

// setupSQLiteTestDB creates an in-memory SQLite database with the schema
// applied.
func setupSQLiteTestDB(t *testing.T) *sql.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, migrations.RunSQLiteMigrations(context.Background(), sqlDB))

	return sqlDB
}

func newStoredTask(t *testing.T, title string, priority plannerdomain.Priority) *task.Task {
	t.Helper()
	tk, err := task.NewTask(title, 60, priority)
	require.NoError(t, err)
	return tk
}

func TestSQLiteTaskRepository_SaveAndFind(t *testing.T) {
	repo := NewSQLiteTaskRepository(setupSQLiteTestDB(t))
	ctx := context.Background()

	tk := newStoredTask(t, "Write report", plannerdomain.PriorityHigh)
	tk.SetDescription("quarterly numbers")
	dl, ok := plannerdomain.ParseDeadline("2025-08-10")
	require.True(t, ok)
	tk.SetDeadline(&dl)

	require.NoError(t, repo.Save(ctx, tk))

	found, err := repo.FindByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, tk.ID(), found.ID())
	assert.Equal(t, "Write report", found.Title())
	assert.Equal(t, "quarterly numbers", found.Description())
	assert.Equal(t, plannerdomain.PriorityHigh, found.Priority())
	assert.Equal(t, 60, found.EstimatedTime())
	require.NotNil(t, found.Deadline())
	assert.Equal(t, "2025-08-10", found.Deadline().String())
	assert.False(t, found.IsCompleted())
	assert.Nil(t, found.CompletedAt())
}

func TestSQLiteTaskRepository_Save_Update(t *testing.T) {
	repo := NewSQLiteTaskRepository(setupSQLiteTestDB(t))
	ctx := context.Background()

	tk := newStoredTask(t, "Draft", plannerdomain.PriorityMedium)
	require.NoError(t, repo.Save(ctx, tk))

	require.NoError(t, tk.SetTitle("Final"))
	require.NoError(t, tk.Complete(45))
	require.NoError(t, repo.Save(ctx, tk))

	found, err := repo.FindByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, "Final", found.Title())
	assert.True(t, found.IsCompleted())
	assert.Equal(t, 45, found.ActualTime())
	require.NotNil(t, found.CompletedAt())

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "save must upsert, not duplicate")
}

func TestSQLiteTaskRepository_FindByID_NotFound(t *testing.T) {
	repo := NewSQLiteTaskRepository(setupSQLiteTestDB(t))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestSQLiteTaskRepository_ActiveAndCompleted(t *testing.T) {
	repo := NewSQLiteTaskRepository(setupSQLiteTestDB(t))
	ctx := context.Background()

	active := newStoredTask(t, "open", plannerdomain.PriorityMedium)
	done := newStoredTask(t, "done", plannerdomain.PriorityLow)
	require.NoError(t, done.Complete(30))

	require.NoError(t, repo.Save(ctx, active))
	require.NoError(t, repo.Save(ctx, done))

	activeTasks, err := repo.FindActive(ctx)
	require.NoError(t, err)
	require.Len(t, activeTasks, 1)
	assert.Equal(t, "open", activeTasks[0].Title())

	completedTasks, err := repo.FindCompleted(ctx)
	require.NoError(t, err)
	require.Len(t, completedTasks, 1)
	assert.Equal(t, "done", completedTasks[0].Title())

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSQLiteTaskRepository_Delete(t *testing.T) {
	repo := NewSQLiteTaskRepository(setupSQLiteTestDB(t))
	ctx := context.Background()

	tk := newStoredTask(t, "ephemeral", plannerdomain.PriorityLow)
	require.NoError(t, repo.Save(ctx, tk))

	require.NoError(t, repo.Delete(ctx, tk.ID()))

	_, err := repo.FindByID(ctx, tk.ID())
	assert.ErrorIs(t, err, ErrTaskNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, tk.ID()), ErrTaskNotFound)
}
