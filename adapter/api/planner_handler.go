package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/taskflowhq/taskflow/internal/planner/domain"
	"github.com/taskflowhq/taskflow/internal/planner/service"
	"github.com/taskflowhq/taskflow/pkg/observability"
)

// PlannerHandler exposes the scheduling engine over HTTP. All endpoints
// are pure: they schedule the tasks given in the request body without
// touching the store.
type PlannerHandler struct {
	planner *service.Planner
	metrics observability.Metrics
	logger  *slog.Logger
}

// NewPlannerHandler creates a new planner handler.
func NewPlannerHandler(planner *service.Planner, metrics observability.Metrics, logger *slog.Logger) *PlannerHandler {
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PlannerHandler{planner: planner, metrics: metrics, logger: logger}
}

type scheduleRequest struct {
	Tasks         []domain.Task `json:"tasks"`
	AvailableTime int           `json:"available_time"`
}

type scheduleResponse struct {
	Schedule    []domain.ScheduledTask `json:"schedule"`
	Unscheduled []domain.Task          `json:"unscheduled"`
	TotalTime   int                    `json:"total_time"`
}

// GenerateSchedule handles POST /api/v1/schedule
func (h *PlannerHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	schedule, unscheduled := h.planner.GenerateSchedule(req.Tasks, req.AvailableTime)

	h.metrics.Counter(observability.MetricSchedulesGenerated, 1)
	h.metrics.Counter(observability.MetricMinutesAllocated, int64(schedule.TotalAllocated()))
	h.metrics.Counter(observability.MetricTasksUnscheduled, int64(len(unscheduled)))

	writeJSON(w, http.StatusOK, scheduleResponse{
		Schedule:    schedule.Tasks,
		Unscheduled: unscheduled,
		TotalTime:   schedule.TotalAllocated(),
	})
}

type dayPlanRequest struct {
	Tasks []domain.Task `json:"tasks"`
	Slots []domain.Slot `json:"slots"`
}

// PlanDay handles POST /api/v1/schedule/day
func (h *PlannerHandler) PlanDay(w http.ResponseWriter, r *http.Request) {
	var req dayPlanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, h.planner.PlanDay(req.Tasks, req.Slots))
}

type sessionsRequest struct {
	Tasks         []domain.Task `json:"tasks"`
	SessionLength int           `json:"session_length"`
	BreakLength   int           `json:"break_length"`
}

type sessionsResponse struct {
	Sessions []domain.Session `json:"sessions"`
}

// PlanSessions handles POST /api/v1/schedule/sessions
func (h *PlannerHandler) PlanSessions(w http.ResponseWriter, r *http.Request) {
	var req sessionsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sessions := h.planner.PlanSessions(req.Tasks, req.SessionLength, req.BreakLength)
	writeJSON(w, http.StatusOK, sessionsResponse{Sessions: sessions})
}

type splitRequest struct {
	Task              domain.Task `json:"task"`
	MaxSessionMinutes int         `json:"max_session_minutes"`
}

type splitResponse struct {
	Tasks []domain.Task `json:"tasks"`
}

// SplitTask handles POST /api/v1/tasks/split
func (h *PlannerHandler) SplitTask(w http.ResponseWriter, r *http.Request) {
	var req splitRequest
	if !decodeBody(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, splitResponse{
		Tasks: h.planner.Split(req.Task, req.MaxSessionMinutes),
	})
}

type diagnosticsRequest struct {
	Schedule      []domain.ScheduledTask `json:"schedule"`
	AvailableTime int                    `json:"available_time"`
}

type diagnosticsResponse struct {
	Diagnostics domain.Diagnostics `json:"diagnostics"`
}

// Diagnostics handles POST /api/v1/schedule/diagnostics. The body carries
// a previously generated schedule; the response reports its efficiency.
func (h *PlannerHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	var req diagnosticsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	diag := h.planner.Diagnostics(domain.Schedule{Tasks: req.Schedule}, req.AvailableTime)

	writeJSON(w, http.StatusOK, diagnosticsResponse{Diagnostics: diag})
}

type recommendationsRequest struct {
	Tasks []domain.Task `json:"tasks"`
}

type recommendationsResponse struct {
	Recommendations []string `json:"recommendations"`
}

// Recommendations handles POST /api/v1/recommendations
func (h *PlannerHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendationsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, recommendationsResponse{
		Recommendations: h.planner.Recommendations(req.Tasks),
	})
}

// decodeBody decodes a JSON request body, writing a 400 and returning
// false on structurally invalid JSON. Malformed field values inside a
// valid body are recovered by the domain types, not rejected.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}
