// Package app wires configuration, storage, the scheduling engine, and
// the HTTP adapter into a single dependency container.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskflowhq/taskflow/adapter/api"
	"github.com/taskflowhq/taskflow/internal/planner/service"
	"github.com/taskflowhq/taskflow/internal/shared/infrastructure/database"
	"github.com/taskflowhq/taskflow/internal/shared/infrastructure/migrations"
	"github.com/taskflowhq/taskflow/internal/tasks/application/commands"
	"github.com/taskflowhq/taskflow/internal/tasks/application/queries"
	"github.com/taskflowhq/taskflow/internal/tasks/domain/task"
	"github.com/taskflowhq/taskflow/internal/tasks/infrastructure/persistence"
	"github.com/taskflowhq/taskflow/pkg/config"
	"github.com/taskflowhq/taskflow/pkg/observability"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Database
	DBDriver database.Driver
	SQLiteDB *sql.DB
	PGPool   *pgxpool.Pool

	// Observability
	Metrics observability.Metrics
	Health  *observability.HealthRegistry

	// Engine
	Planner *service.Planner

	// Task store
	TaskRepo task.Repository

	// Task command handlers
	CreateTaskHandler   *commands.CreateTaskHandler
	UpdateTaskHandler   *commands.UpdateTaskHandler
	CompleteTaskHandler *commands.CompleteTaskHandler
	DeleteTaskHandler   *commands.DeleteTaskHandler

	// Task query handlers
	ListTasksHandler *queries.ListTasksHandler
	GetTaskHandler   *queries.GetTaskHandler
	StatsHandler     *queries.ProductivityStatsHandler
}

// NewContainer creates and wires all application dependencies. The
// database driver is detected from DATABASE_URL; an empty URL selects a
// local SQLite file.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Container{
		Config:  cfg,
		Logger:  logger,
		Metrics: observability.NewInMemoryMetrics(),
		Health:  observability.NewHealthRegistry(),
	}

	if err := c.initDatabase(ctx, cfg); err != nil {
		return nil, err
	}

	c.Planner = service.NewPlanner(service.WithLogger(logger))

	c.CreateTaskHandler = commands.NewCreateTaskHandler(c.TaskRepo)
	c.UpdateTaskHandler = commands.NewUpdateTaskHandler(c.TaskRepo)
	c.CompleteTaskHandler = commands.NewCompleteTaskHandler(c.TaskRepo)
	c.DeleteTaskHandler = commands.NewDeleteTaskHandler(c.TaskRepo)
	c.ListTasksHandler = queries.NewListTasksHandler(c.TaskRepo)
	c.GetTaskHandler = queries.NewGetTaskHandler(c.TaskRepo)
	c.StatsHandler = queries.NewProductivityStatsHandler(c.TaskRepo)

	return c, nil
}

func (c *Container) initDatabase(ctx context.Context, cfg *config.Config) error {
	dbCfg := database.Config{
		URL:        cfg.DatabaseURL,
		SQLitePath: cfg.SQLitePath,
	}
	if dbCfg.SQLitePath == "" {
		dbCfg.SQLitePath = database.DefaultSQLitePath()
	}

	c.DBDriver = dbCfg.ResolveDriver()

	switch c.DBDriver {
	case database.DriverPostgres:
		pool, err := database.OpenPostgres(ctx, dbCfg)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		err = observability.TimeOperation(ctx, c.Logger, c.Metrics, "migrations", func() error {
			return migrations.RunPostgresMigrations(ctx, pool)
		})
		if err != nil {
			pool.Close()
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		c.PGPool = pool
		c.TaskRepo = persistence.NewPostgresTaskRepository(pool)
		c.Health.Register("database", observability.DatabaseHealthChecker(func(ctx context.Context) error {
			return pool.Ping(ctx)
		}))
		c.Logger.Info("database ready", "driver", c.DBDriver.String(), "host", redactURL(cfg.DatabaseURL))

	case database.DriverSQLite:
		if err := database.EnsureDirectory(dbCfg.SQLitePath); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
		db, err := database.OpenSQLite(ctx, dbCfg.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to open sqlite database: %w", err)
		}
		err = observability.TimeOperation(ctx, c.Logger, c.Metrics, "migrations", func() error {
			return migrations.RunSQLiteMigrations(ctx, db)
		})
		if err != nil {
			db.Close()
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		c.SQLiteDB = db
		c.TaskRepo = persistence.NewSQLiteTaskRepository(db)
		c.Health.Register("database", observability.DatabaseHealthChecker(func(ctx context.Context) error {
			return db.PingContext(ctx)
		}))
		c.Logger.Info("database ready", "driver", c.DBDriver.String(), "path", dbCfg.SQLitePath)

	default:
		return fmt.Errorf("unsupported database driver: %s", c.DBDriver)
	}

	return nil
}

// NewAPIServer builds the HTTP server from the container's dependencies.
func (c *Container) NewAPIServer() *api.Server {
	serverCfg := api.DefaultServerConfig()
	if c.Config.HTTPAddr != "" {
		serverCfg.Addr = c.Config.HTTPAddr
	}

	tasks := api.NewTaskHandler(api.TaskHandlerConfig{
		CreateTask:   c.CreateTaskHandler,
		UpdateTask:   c.UpdateTaskHandler,
		CompleteTask: c.CompleteTaskHandler,
		DeleteTask:   c.DeleteTaskHandler,
		ListTasks:    c.ListTasksHandler,
		GetTask:      c.GetTaskHandler,
		Metrics:      c.Metrics,
		Logger:       c.Logger,
	})

	return api.NewServer(serverCfg, api.ServerDeps{
		Planner: api.NewPlannerHandler(c.Planner, c.Metrics, c.Logger),
		Tasks:   tasks,
		Health:  c.Health,
		Metrics: c.Metrics,
		Logger:  c.Logger,
	})
}

// Close releases all resources held by the container.
func (c *Container) Close() {
	if c.SQLiteDB != nil {
		if err := c.SQLiteDB.Close(); err != nil {
			c.Logger.Error("failed to close sqlite database", "error", err)
		}
	}
	if c.PGPool != nil {
		c.PGPool.Close()
	}
}

// redactURL strips credentials from a connection string for logging.
func redactURL(url string) string {
	at := strings.LastIndex(url, "@")
	if at == -1 {
		return url
	}
	scheme := strings.Index(url, "://")
	if scheme == -1 {
		return url[at+1:]
	}
	return url[:scheme+3] + url[at+1:]
}
