package rest

import (
	"context"
	"net/http"

	"github.com/frahmantamala/bragboard/internal/employee"
	"github.com/frahmantamala/bragboard/internal/guard"
	"github.com/frahmantamala/bragboard/internal/leaderboard"
	"github.com/frahmantamala/bragboard/internal/session"
	"github.com/frahmantamala/bragboard/internal/shoutout"
	"github.com/frahmantamala/bragboard/internal/transport"
	"github.com/frahmantamala/bragboard/internal/user"
)

const dashboardLeaders = 5

type ShoutoutLister interface {
	List(ctx context.Context) ([]shoutout.Shoutout, error)
}

type LeaderboardReader interface {
	Top(ctx context.Context, n int) ([]leaderboard.Entry, error)
}

type EmployeeLister interface {
	List(ctx context.Context) ([]user.Employee, error)
}

// ConsoleHandler renders the screens that combine several sources.
type ConsoleHandler struct {
	*transport.BaseHandler
	Sessions    transport.SessionReader
	Shoutouts   ShoutoutLister
	Leaderboard LeaderboardReader
	Employees   EmployeeLister
}

type ScreenResponse struct {
	Screen  guard.Screen    `json:"screen"`
	Session session.Session `json:"session"`
	Token   string          `json:"token,omitempty"`
}

type SessionResponse struct {
	State   string          `json:"state"`
	Session session.Session `json:"session"`
	Home    string          `json:"home,omitempty"`
}

type DashboardResponse struct {
	User        *user.User          `json:"user"`
	Shoutouts   []shoutout.Shoutout `json:"shoutouts"`
	Leaderboard []leaderboard.Entry `json:"leaderboard"`
}

type AdminResponse struct {
	Shoutouts []shoutout.Shoutout `json:"shoutouts"`
	Employees []user.Employee     `json:"employees"`
	Stats     employee.Stats      `json:"stats"`
}

// Screen renders a form screen that needs no data, such as the sign in
// form.
func (h *ConsoleHandler) Screen(screen guard.Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := ScreenResponse{Screen: screen, Session: h.Sessions.Snapshot()}
		if screen == guard.ScreenResetPassword {
			resp.Token = r.URL.Query().Get("token")
		}
		h.WriteJSON(w, http.StatusOK, resp)
	}
}

// Index sends an authenticated session to its home screen.
func (h *ConsoleHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, guard.HomePath(h.Sessions.Snapshot().Role()), http.StatusSeeOther)
}

func (h *ConsoleHandler) Session(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.Snapshot()
	resp := SessionResponse{State: guard.StateOf(sess).String(), Session: sess}
	if sess.Authenticated() {
		resp.Home = guard.HomePath(sess.Role())
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *ConsoleHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	shoutouts, err := h.Shoutouts.List(r.Context())
	if err != nil {
		h.Logger.Error("Dashboard: failed to load shoutouts", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	leaders, err := h.Leaderboard.Top(r.Context(), dashboardLeaders)
	if err != nil {
		h.Logger.Error("Dashboard: failed to load leaderboard", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, DashboardResponse{
		User:        h.Sessions.Snapshot().User,
		Shoutouts:   shoutout.Filter(shoutouts, r.URL.Query().Get("q")),
		Leaderboard: leaders,
	})
}

func (h *ConsoleHandler) Admin(w http.ResponseWriter, r *http.Request) {
	shoutouts, err := h.Shoutouts.List(r.Context())
	if err != nil {
		h.Logger.Error("Admin: failed to load shoutouts", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	employees, err := h.Employees.List(r.Context())
	if err != nil {
		h.Logger.Error("Admin: failed to load employees", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, AdminResponse{
		Shoutouts: shoutouts,
		Employees: employees,
		Stats:     employee.Summarize(employees),
	})
}
