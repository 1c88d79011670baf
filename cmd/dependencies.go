package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/frahmantamala/bragboard/internal"
	"github.com/frahmantamala/bragboard/internal/apiclient"
	"github.com/frahmantamala/bragboard/internal/auth"
	"github.com/frahmantamala/bragboard/internal/core/events"
	"github.com/frahmantamala/bragboard/internal/employee"
	"github.com/frahmantamala/bragboard/internal/guard"
	"github.com/frahmantamala/bragboard/internal/leaderboard"
	"github.com/frahmantamala/bragboard/internal/notification"
	"github.com/frahmantamala/bragboard/internal/profile"
	"github.com/frahmantamala/bragboard/internal/report"
	"github.com/frahmantamala/bragboard/internal/reward"
	"github.com/frahmantamala/bragboard/internal/session"
	"github.com/frahmantamala/bragboard/internal/session/sqlite"
	"github.com/frahmantamala/bragboard/internal/shoutout"
	"github.com/frahmantamala/bragboard/pkg/logger"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

// Dependencies is everything a command needs, built once per invocation.
type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	Client   *apiclient.Client
	Events   *events.EventBus
	Sessions *session.Store
	Logger   *slog.Logger
	Out      io.Writer

	Auth          *auth.Service
	Shoutouts     *shoutout.Service
	Leaderboard   *leaderboard.Service
	Notifications *notification.Service
	Rewards       *reward.Service
	Profile       *profile.Service
	Employees     *employee.Service
	Reports       *report.Service
}

// RouteError reports a command whose route the guard did not render.
type RouteError struct {
	Path     string
	Location string
}

func (e *RouteError) Error() string {
	if e.Location == "" {
		return fmt.Sprintf("%s is not available while the session is loading", e.Path)
	}
	return fmt.Sprintf("%s is not available; go to %s", e.Path, e.Location)
}

func initializeDependencies(ctx context.Context, out io.Writer) (*Dependencies, error) {
	config, err := loadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	lg := logger.Setup(logger.Options{
		Env:    config.App.Env,
		Level:  config.Logging.Level,
		Format: config.Logging.Format,
	})

	db, err := initStore(ctx, config.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	gdb, err := sqlite.NewGorm(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	storage := sqlite.NewStorage(gdb)

	client := apiclient.NewClient(apiclient.Config{
		BaseURL: config.API.BaseURL,
		Timeout: config.API.Timeout,
	}, session.PersistedCredential{Storage: storage}, lg)

	bus := events.NewEventBus(lg)
	events.AuditSessions(bus, lg)

	sessions := session.NewStore(storage, client, session.Options{
		Navigator: session.NavigatorFunc(func(_ context.Context, path string) {
			fmt.Fprintf(out, "-> %s\n", path)
		}),
		Notifier: session.NotifierFunc(func(_ context.Context, level session.Level, message string) {
			fmt.Fprintf(out, "[%s] %s\n", level, message)
		}),
		Events: bus,
		Logger: lg,
	})
	if _, err := sessions.Restore(ctx); err != nil {
		lg.Warn("session restore failed", "error", err)
	}

	lb := leaderboard.NewService(client, lg)

	return &Dependencies{
		Config:   config,
		DB:       db,
		Client:   client,
		Events:   bus,
		Sessions: sessions,
		Logger:   lg,
		Out:      out,

		Auth:          auth.NewService(sessions, client, lg),
		Shoutouts:     shoutout.NewService(client, lg),
		Leaderboard:   lb,
		Notifications: notification.NewService(client, lg),
		Rewards:       reward.NewService(client, sessions, lg),
		Profile:       profile.NewService(client, sessions, lg),
		Employees:     employee.NewService(client, lg),
		Reports:       report.NewService(client, lb, lg),
	}, nil
}

// initStore opens the session file and brings its schema up to date.
func initStore(ctx context.Context, cfg internal.StorageConfig) (*sqlx.DB, error) {
	db, err := sqlite.Open(cfg.Path)
	if err != nil {
		return nil, err
	}
	if err := sqlite.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (d *Dependencies) Close() error {
	return errors.Join(d.Sessions.Close(), d.DB.Close())
}

// Guard resolves path against the route table for the current session.
func (d *Dependencies) Guard(path string) error {
	decision := guard.Navigate(d.Sessions.Snapshot(), path)
	switch decision.Outcome {
	case guard.Render:
		return nil
	case guard.Redirect:
		return &RouteError{Path: path, Location: decision.Location}
	default:
		return &RouteError{Path: path}
	}
}

// runE builds the dependencies for a command and tears them down after it.
func runE(fn func(ctx context.Context, deps *Dependencies, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		deps, err := initializeDependencies(ctx, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer func() {
			if err := deps.Close(); err != nil {
				deps.Logger.Error("failed to close dependencies", "error", err)
			}
		}()
		return fn(ctx, deps, args)
	}
}
