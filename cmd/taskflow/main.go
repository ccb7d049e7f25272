package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/taskflowhq/taskflow/adapter/cli"
	"github.com/taskflowhq/taskflow/adapter/cli/task"
	"github.com/taskflowhq/taskflow/internal/app"
	"github.com/taskflowhq/taskflow/pkg/config"
	"github.com/taskflowhq/taskflow/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "error", err)
		cfg = &config.Config{AppEnv: "development"}
	}

	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	cli.SetApp(&cli.App{
		Planner:             container.Planner,
		Config:              cfg,
		CreateTaskHandler:   container.CreateTaskHandler,
		UpdateTaskHandler:   container.UpdateTaskHandler,
		CompleteTaskHandler: container.CompleteTaskHandler,
		DeleteTaskHandler:   container.DeleteTaskHandler,
		ListTasksHandler:    container.ListTasksHandler,
		GetTaskHandler:      container.GetTaskHandler,
		StatsHandler:        container.StatsHandler,
		StartServer: func(ctx context.Context) error {
			return runServer(ctx, container, cfg)
		},
	})

	// Register commands
	cli.AddCommand(task.Cmd)

	// Execute CLI
	cli.Execute(ctx)
}

// runServer serves the HTTP API until the context is cancelled, then
// shuts down gracefully.
func runServer(ctx context.Context, container *app.Container, cfg *config.Config) error {
	server := container.NewAPIServer()

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
