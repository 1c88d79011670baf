package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/frahmantamala/bragboard/internal/auth"
	"github.com/frahmantamala/bragboard/internal/employee"
	"github.com/frahmantamala/bragboard/internal/leaderboard"
	"github.com/frahmantamala/bragboard/internal/notification"
	"github.com/frahmantamala/bragboard/internal/profile"
	"github.com/frahmantamala/bragboard/internal/report"
	"github.com/frahmantamala/bragboard/internal/reward"
	"github.com/frahmantamala/bragboard/internal/shoutout"
	"github.com/frahmantamala/bragboard/internal/transport"
	"github.com/frahmantamala/bragboard/internal/transport/rest"
	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
)

var consolePort int

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start the local web console",
	Long:  `Serve the client screens over HTTP on localhost, behind the same route guard as the command line`,
	RunE: runE(func(ctx context.Context, deps *Dependencies, _ []string) error {
		return startConsole(ctx, deps)
	}),
}

func init() {
	consoleCmd.Flags().IntVarP(&consolePort, "port", "p", 0, "port to listen on (default from config)")
}

func setupRoutes(deps *Dependencies) *chi.Mux {
	base := transport.NewBaseHandler(deps.Logger)
	router := chi.NewRouter()

	rest.RegisterAllRoutes(router, deps.Sessions, rest.Handlers{
		Console: &rest.ConsoleHandler{
			BaseHandler: base,
			Sessions:    deps.Sessions,
			Shoutouts:   deps.Shoutouts,
			Leaderboard: deps.Leaderboard,
			Employees:   deps.Employees,
		},
		Health:       rest.NewHealthHandler(base, deps.DB),
		Auth:         auth.NewHandler(base, deps.Auth),
		Shoutout:     shoutout.NewHandler(base, deps.Shoutouts, deps.Sessions),
		Leaderboard:  leaderboard.NewHandler(base, deps.Leaderboard),
		Notification: notification.NewHandler(base, deps.Notifications),
		Reward:       reward.NewHandler(base, deps.Rewards),
		Profile:      profile.NewHandler(base, deps.Profile),
		Employee:     employee.NewHandler(base, deps.Employees),
		Report:       report.NewHandler(base, deps.Reports),
	}, deps.Logger)

	return router
}

func startConsole(ctx context.Context, deps *Dependencies) error {
	cfg := deps.Config.Console
	port := cfg.Port
	if consolePort > 0 {
		port = consolePort
	}

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	server := &http.Server{
		Addr:              addr,
		Handler:           setupRoutes(deps),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		deps.Logger.Info("Starting console", "address", addr, "backend", deps.Config.API.BaseURL)
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		deps.Logger.Info("Shutting down console...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			deps.Logger.Error("Console shutdown error", "error", err)
			return err
		}
	case err := <-serverErrChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("console failed to start: %w", err)
		}
	}

	deps.Logger.Info("Console stopped")
	return nil
}
