package rest

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/bragboard/api"
	"github.com/frahmantamala/bragboard/internal/auth"
	"github.com/frahmantamala/bragboard/internal/employee"
	"github.com/frahmantamala/bragboard/internal/guard"
	"github.com/frahmantamala/bragboard/internal/leaderboard"
	"github.com/frahmantamala/bragboard/internal/notification"
	"github.com/frahmantamala/bragboard/internal/profile"
	"github.com/frahmantamala/bragboard/internal/report"
	"github.com/frahmantamala/bragboard/internal/reward"
	"github.com/frahmantamala/bragboard/internal/shoutout"
	"github.com/frahmantamala/bragboard/internal/transport"
	"github.com/frahmantamala/bragboard/internal/transport/middleware"
	"github.com/frahmantamala/bragboard/internal/transport/swagger"
	"github.com/go-chi/chi"
)

// Handlers groups the screen handlers mounted by RegisterAllRoutes. A nil
// handler leaves its screens unmounted.
type Handlers struct {
	Console      *ConsoleHandler
	Health       *HealthHandler
	Auth         *auth.Handler
	Shoutout     *shoutout.Handler
	Leaderboard  *leaderboard.Handler
	Notification *notification.Handler
	Reward       *reward.Handler
	Profile      *profile.Handler
	Employee     *employee.Handler
	Report       *report.Handler
}

func RegisterAllRoutes(router *chi.Mux, sessions transport.SessionReader, h Handlers, logger *slog.Logger) {
	viewer := func() guard.Viewer { return sessions.Snapshot() }
	screen := func(s guard.Screen) func(http.Handler) http.Handler {
		return middleware.RequireScreen(viewer, s, logger)
	}

	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get(swagger.SpecPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(api.BackendSpec)
	})
	router.Handle("/swagger/*", swagger.Handler())

	if h.Health != nil {
		router.Get("/healthz", h.Health.Health)
		router.Get("/ping", h.Health.Ping)
	}

	router.Get("/session", h.Console.Session)

	// Sign in screens
	router.With(screen(guard.ScreenLogin)).Get(guard.PathLogin, h.Console.Screen(guard.ScreenLogin))
	router.With(screen(guard.ScreenSignup)).Get("/signup", h.Console.Screen(guard.ScreenSignup))
	router.With(screen(guard.ScreenForgotPassword)).Get("/forgot-password", h.Console.Screen(guard.ScreenForgotPassword))
	router.With(screen(guard.ScreenResetPassword)).Get(guard.PathResetPassword, h.Console.Screen(guard.ScreenResetPassword))

	if h.Auth != nil {
		router.With(screen(guard.ScreenLogin)).Post(guard.PathLogin, h.Auth.Login)
		router.With(screen(guard.ScreenSignup)).Post("/signup", h.Auth.Signup)
		router.With(screen(guard.ScreenForgotPassword)).Post("/forgot-password", h.Auth.ForgotPassword)
		router.With(screen(guard.ScreenResetPassword)).Post(guard.PathResetPassword, h.Auth.ResetPassword)
		router.Post("/logout", h.Auth.Logout)
	}

	router.With(screen(guard.ScreenIndex)).Get(guard.PathRoot, h.Console.Index)

	// Employee screens
	router.Route("/dashboard", func(r chi.Router) {
		r.Use(screen(guard.ScreenDashboard))
		r.Get("/", h.Console.Dashboard)

		if h.Shoutout != nil {
			r.Get("/shoutouts", h.Shoutout.GetFeed)
			r.Post("/shoutouts", h.Shoutout.CreateShoutout)
		}
		if h.Notification != nil {
			r.Get("/notifications", h.Notification.GetNotifications)
			r.Post("/notifications/read", h.Notification.MarkAllRead)
			r.Post("/notifications/{id}/read", h.Notification.MarkRead)
		}
		if h.Report != nil {
			r.Post("/reports", h.Report.SubmitReport)
		}
	})

	if h.Shoutout != nil {
		router.Route("/shoutouts/{id}", func(r chi.Router) {
			r.Use(screen(guard.ScreenShoutout))
			r.Get("/", h.Shoutout.GetShoutout)
			r.Put("/", h.Shoutout.UpdateShoutout)
			r.Delete("/", h.Shoutout.DeleteShoutout)
			r.Post("/comments", h.Shoutout.AddComment)
			r.Post("/cheer", h.Shoutout.ToggleCheer)
		})
	}

	if h.Profile != nil {
		router.Route("/profile", func(r chi.Router) {
			r.Use(screen(guard.ScreenProfile))
			r.Get("/", h.Profile.GetProfile)
			r.Put("/", h.Profile.UpdateProfile)
			r.Post("/avatar", h.Profile.UploadAvatar)
		})
		router.With(screen(guard.ScreenSettings)).Get("/settings", h.Profile.GetProfile)
	}

	if h.Leaderboard != nil {
		router.With(screen(guard.ScreenLeaderboard)).Get("/leaderboard", h.Leaderboard.GetLeaderboard)
	}

	if h.Reward != nil {
		router.Route("/marketplace", func(r chi.Router) {
			r.Use(screen(guard.ScreenMarketplace))
			r.Get("/", h.Reward.GetMarketplace)
			r.Post("/{id}/redeem", h.Reward.Redeem)
		})
	}

	// Admin screens
	router.Route("/admin", func(r chi.Router) {
		r.With(screen(guard.ScreenAdmin)).Get("/", h.Console.Admin)

		if h.Shoutout != nil {
			r.With(screen(guard.ScreenAdmin)).Get("/shoutouts", h.Shoutout.GetFeed)
			r.With(screen(guard.ScreenAdmin)).Delete("/shoutouts/{id}", h.Shoutout.DeleteShoutout)
		}
		if h.Employee != nil {
			r.With(screen(guard.ScreenAdminEmployees)).Get("/employees", h.Employee.GetEmployees)
			r.With(screen(guard.ScreenAdminEmployees)).Post("/employees/{id}/toggle", h.Employee.ToggleStatus)
		}
		if h.Report != nil {
			r.With(screen(guard.ScreenAdminReports)).Get("/reports", h.Report.GetReports)
		}
	})

	router.NotFound(middleware.RedirectUnknown)
}
