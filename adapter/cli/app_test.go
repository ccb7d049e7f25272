package cli

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	plannerdomain "github.com/taskflowhq/taskflow/internal/planner/domain"
	"github.com/taskflowhq/taskflow/internal/planner/service"
	"github.com/taskflowhq/taskflow/internal/tasks/application/queries"
	taskdomain "github.com/taskflowhq/taskflow/internal/tasks/domain/task"
	"github.com/taskflowhq/taskflow/internal/tasks/infrastructure/persistence"
)

type memoryRepo struct {
	tasks []*taskdomain.Task
}

func (m *memoryRepo) Save(ctx context.Context, t *taskdomain.Task) error {
	m.tasks = append(m.tasks, t)
	return nil
}

func (m *memoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*taskdomain.Task, error) {
	for _, t := range m.tasks {
		if t.ID() == id {
			return t, nil
		}
	}
	return nil, persistence.ErrTaskNotFound
}

func (m *memoryRepo) FindAll(ctx context.Context) ([]*taskdomain.Task, error) {
	return m.tasks, nil
}

func (m *memoryRepo) FindActive(ctx context.Context) ([]*taskdomain.Task, error) {
	var out []*taskdomain.Task
	for _, t := range m.tasks {
		if !t.IsCompleted() {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memoryRepo) FindCompleted(ctx context.Context) ([]*taskdomain.Task, error) {
	var out []*taskdomain.Task
	for _, t := range m.tasks {
		if t.IsCompleted() {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

// seedRepo stores the given number of completed and active tasks.
func seedRepo(t *testing.T, completed, active int) *memoryRepo {
	t.Helper()

	repo := &memoryRepo{}
	for i := 0; i < completed; i++ {
		tk, err := taskdomain.NewTask("done", 30, plannerdomain.PriorityMedium)
		require.NoError(t, err)
		require.NoError(t, tk.Complete(25))
		require.NoError(t, repo.Save(context.Background(), tk))
	}
	for i := 0; i < active; i++ {
		tk, err := taskdomain.NewTask("todo", 30, plannerdomain.PriorityMedium)
		require.NoError(t, err)
		require.NoError(t, repo.Save(context.Background(), tk))
	}
	return repo
}

func TestApp_PlannerTaskLoading(t *testing.T) {
	repo := seedRepo(t, 9, 2)
	app := &App{ListTasksHandler: queries.NewListTasksHandler(repo)}

	all, err := app.AllPlannerTasks(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 11)

	active, err := app.ActivePlannerTasks(context.Background())
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestApp_RecommendationsSeeCompletedWork(t *testing.T) {
	repo := seedRepo(t, 9, 2)
	app := &App{
		Planner:          service.NewPlanner(),
		ListTasksHandler: queries.NewListTasksHandler(repo),
	}

	all, err := app.AllPlannerTasks(context.Background())
	require.NoError(t, err)

	recs := app.Planner.Recommendations(all)

	assert.Contains(t, recs,
		"Great momentum! Most of your tasks are done - line up what comes next.")
	assert.NotContains(t, recs,
		"Your completion rate is low. Try finishing a few small tasks to build momentum.")
}
