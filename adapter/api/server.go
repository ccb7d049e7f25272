// Package api provides the HTTP API for the TaskFlow scheduling engine
// and task store.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/taskflowhq/taskflow/pkg/observability"
)

// Server is the HTTP API server.
type Server struct {
	mux     *http.ServeMux
	server  *http.Server
	logger  *slog.Logger
	metrics observability.Metrics
	health  *observability.HealthRegistry
	planner *PlannerHandler
	tasks   *TaskHandler
}

// ServerConfig holds configuration for the API server.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultServerConfig returns the default server configuration.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:         "0.0.0.0:8080",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// ServerDeps holds the collaborators the server dispatches to.
type ServerDeps struct {
	Planner *PlannerHandler
	Tasks   *TaskHandler
	Health  *observability.HealthRegistry
	Metrics observability.Metrics
	Logger  *slog.Logger
}

// NewServer creates a new API server.
func NewServer(cfg ServerConfig, deps ServerDeps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	metrics := deps.Metrics
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	health := deps.Health
	if health == nil {
		health = observability.NewHealthRegistry()
	}

	mux := http.NewServeMux()

	s := &Server{
		mux:     mux,
		logger:  logger,
		metrics: metrics,
		health:  health,
		planner: deps.Planner,
		tasks:   deps.Tasks,
	}

	s.registerRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withRequestContext(s.mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// registerRoutes sets up the API routes.
func (s *Server) registerRoutes() {
	// Health check
	s.mux.HandleFunc("GET /health", s.handleHealth)

	// Scheduling engine
	s.mux.HandleFunc("POST /api/v1/schedule", s.planner.GenerateSchedule)
	s.mux.HandleFunc("POST /api/v1/schedule/day", s.planner.PlanDay)
	s.mux.HandleFunc("POST /api/v1/schedule/sessions", s.planner.PlanSessions)
	s.mux.HandleFunc("POST /api/v1/schedule/diagnostics", s.planner.Diagnostics)
	s.mux.HandleFunc("POST /api/v1/tasks/split", s.planner.SplitTask)
	s.mux.HandleFunc("POST /api/v1/recommendations", s.planner.Recommendations)

	// Task store
	s.mux.HandleFunc("GET /api/v1/tasks", s.tasks.ListTasks)
	s.mux.HandleFunc("POST /api/v1/tasks", s.tasks.CreateTask)
	s.mux.HandleFunc("GET /api/v1/tasks/{taskID}", s.tasks.GetTask)
	s.mux.HandleFunc("PATCH /api/v1/tasks/{taskID}", s.tasks.UpdateTask)
	s.mux.HandleFunc("DELETE /api/v1/tasks/{taskID}", s.tasks.DeleteTask)
	s.mux.HandleFunc("POST /api/v1/tasks/{taskID}/complete", s.tasks.CompleteTask)
}

// withRequestContext attaches a request ID to every request context and
// records request count and latency per method and path pattern.
func (s *Server) withRequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx := observability.WithRequestID(r.Context(), requestID)
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))

		tags := []observability.Tag{
			observability.T("method", r.Method),
			observability.T("path", r.URL.Path),
		}
		s.metrics.Counter(observability.MetricAPIRequests, 1, tags...)
		s.metrics.Timing(observability.MetricAPIRequestDuration, time.Since(start), tags...)
	})
}

// handleHealth handles health check requests. Registered checkers run on
// every call; an empty registry reports healthy.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := s.health.GetOverallHealth(r.Context())

	status := http.StatusOK
	if health.Status == observability.HealthStatusUnhealthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, health)
}

// Start starts the API server.
func (s *Server) Start() error {
	s.logger.Info("starting API server",
		"addr", s.server.Addr,
	)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")
	return s.server.Shutdown(ctx)
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode JSON response", "error", err)
		}
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error":   http.StatusText(status),
		"message": message,
	})
}

// APIError represents an API error.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
