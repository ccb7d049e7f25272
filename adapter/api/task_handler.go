package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/taskflowhq/taskflow/internal/tasks/application/commands"
	"github.com/taskflowhq/taskflow/internal/tasks/application/queries"
	"github.com/taskflowhq/taskflow/internal/tasks/domain/task"
	"github.com/taskflowhq/taskflow/internal/tasks/infrastructure/persistence"
	"github.com/taskflowhq/taskflow/pkg/observability"
)

// TaskHandler exposes task CRUD over HTTP.
type TaskHandler struct {
	createTask   *commands.CreateTaskHandler
	updateTask   *commands.UpdateTaskHandler
	completeTask *commands.CompleteTaskHandler
	deleteTask   *commands.DeleteTaskHandler
	listTasks    *queries.ListTasksHandler
	getTask      *queries.GetTaskHandler
	metrics      observability.Metrics
	logger       *slog.Logger
}

// TaskHandlerConfig holds the application handlers the task endpoints
// dispatch to.
type TaskHandlerConfig struct {
	CreateTask   *commands.CreateTaskHandler
	UpdateTask   *commands.UpdateTaskHandler
	CompleteTask *commands.CompleteTaskHandler
	DeleteTask   *commands.DeleteTaskHandler
	ListTasks    *queries.ListTasksHandler
	GetTask      *queries.GetTaskHandler
	Metrics      observability.Metrics
	Logger       *slog.Logger
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(cfg TaskHandlerConfig) *TaskHandler {
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		createTask:   cfg.CreateTask,
		updateTask:   cfg.UpdateTask,
		completeTask: cfg.CompleteTask,
		deleteTask:   cfg.DeleteTask,
		listTasks:    cfg.ListTasks,
		getTask:      cfg.GetTask,
		metrics:      metrics,
		logger:       logger,
	}
}

type taskResponse struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	Priority         string `json:"priority"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	ActualMinutes    int    `json:"actual_minutes,omitempty"`
	Deadline         string `json:"deadline,omitempty"`
	Completed        bool   `json:"completed"`
	CompletedAt      string `json:"completed_at,omitempty"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

func toTaskResponse(t *task.Task) taskResponse {
	resp := taskResponse{
		ID:               t.ID().String(),
		Title:            t.Title(),
		Description:      t.Description(),
		Priority:         t.Priority().String(),
		EstimatedMinutes: t.EstimatedTime(),
		ActualMinutes:    t.ActualTime(),
		Completed:        t.IsCompleted(),
		CreatedAt:        t.CreatedAt().Format(time.RFC3339),
		UpdatedAt:        t.UpdatedAt().Format(time.RFC3339),
	}
	if d := t.Deadline(); d != nil && !d.IsZero() {
		resp.Deadline = d.String()
	}
	if at := t.CompletedAt(); at != nil {
		resp.CompletedAt = at.Format(time.RFC3339)
	}
	return resp
}

type createTaskRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Priority         string `json:"priority"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	Deadline         string `json:"deadline"`
}

// CreateTask handles POST /api/v1/tasks
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.createTask.Handle(r.Context(), commands.CreateTaskCommand{
		Title:            req.Title,
		Description:      req.Description,
		Priority:         req.Priority,
		EstimatedMinutes: req.EstimatedMinutes,
		Deadline:         req.Deadline,
	})
	if err != nil {
		h.handleTaskError(w, err, "failed to create task")
		return
	}

	t, err := h.getTask.Handle(r.Context(), queries.GetTaskQuery{TaskID: result.TaskID})
	if err != nil {
		h.handleTaskError(w, err, "failed to load created task")
		return
	}

	h.metrics.Counter(observability.MetricTasksCreated, 1)
	writeJSON(w, http.StatusCreated, toTaskResponse(t))
}

// ListTasks handles GET /api/v1/tasks. The optional ?filter= parameter
// accepts all, active or completed.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	filter := queries.TaskFilter(r.URL.Query().Get("filter"))

	tasks, err := h.listTasks.Handle(r.Context(), queries.ListTasksQuery{Filter: filter})
	if err != nil {
		h.handleTaskError(w, err, "failed to list tasks")
		return
	}

	resp := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, toTaskResponse(t))
	}

	writeJSON(w, http.StatusOK, map[string]any{"tasks": resp, "count": len(resp)})
}

// GetTask handles GET /api/v1/tasks/{taskID}
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	t, err := h.getTask.Handle(r.Context(), queries.GetTaskQuery{TaskID: id})
	if err != nil {
		h.handleTaskError(w, err, "failed to get task")
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(t))
}

type updateTaskRequest struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	Priority         *string `json:"priority"`
	EstimatedMinutes *int    `json:"estimated_minutes"`
	Deadline         *string `json:"deadline"`
}

// UpdateTask handles PATCH /api/v1/tasks/{taskID}. Absent fields are left
// untouched; an empty deadline string clears the deadline.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	var req updateTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.updateTask.Handle(r.Context(), commands.UpdateTaskCommand{
		TaskID:           id,
		Title:            req.Title,
		Description:      req.Description,
		Priority:         req.Priority,
		EstimatedMinutes: req.EstimatedMinutes,
		Deadline:         req.Deadline,
	})
	if err != nil {
		h.handleTaskError(w, err, "failed to update task")
		return
	}

	t, err := h.getTask.Handle(r.Context(), queries.GetTaskQuery{TaskID: id})
	if err != nil {
		h.handleTaskError(w, err, "failed to load updated task")
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(t))
}

type completeTaskRequest struct {
	ActualMinutes int `json:"actual_minutes"`
}

// CompleteTask handles POST /api/v1/tasks/{taskID}/complete. An empty body
// is allowed; the actual time then falls back to the estimate.
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	var req completeTaskRequest
	if r.ContentLength > 0 {
		if !decodeBody(w, r, &req) {
			return
		}
	}

	err := h.completeTask.Handle(r.Context(), commands.CompleteTaskCommand{
		TaskID:        id,
		ActualMinutes: req.ActualMinutes,
	})
	if err != nil {
		h.handleTaskError(w, err, "failed to complete task")
		return
	}

	t, err := h.getTask.Handle(r.Context(), queries.GetTaskQuery{TaskID: id})
	if err != nil {
		h.handleTaskError(w, err, "failed to load completed task")
		return
	}

	h.metrics.Counter(observability.MetricTasksCompleted, 1)
	writeJSON(w, http.StatusOK, toTaskResponse(t))
}

// DeleteTask handles DELETE /api/v1/tasks/{taskID}
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	if err := h.deleteTask.Handle(r.Context(), commands.DeleteTaskCommand{TaskID: id}); err != nil {
		h.handleTaskError(w, err, "failed to delete task")
		return
	}

	h.metrics.Counter(observability.MetricTasksDeleted, 1)
	w.WriteHeader(http.StatusNoContent)
}

func parseTaskID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("taskID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task ID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *TaskHandler) handleTaskError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, persistence.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, "Task not found")
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidEstimate),
		errors.Is(err, task.ErrInvalidDeadline),
		errors.Is(err, task.ErrTaskAlreadyComplete),
		errors.Is(err, task.ErrTaskNotComplete):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error(logMsg, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
