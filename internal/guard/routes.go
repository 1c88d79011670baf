package guard

import (
	"strings"

	"github.com/frahmantamala/bragboard/internal/user"
)

type Screen string

const (
	ScreenLogin          Screen = "login"
	ScreenSignup         Screen = "signup"
	ScreenForgotPassword Screen = "forgot-password"
	ScreenResetPassword  Screen = "reset-password"
	ScreenIndex          Screen = "index"
	ScreenDashboard      Screen = "dashboard"
	ScreenProfile        Screen = "profile"
	ScreenSettings       Screen = "settings"
	ScreenLeaderboard    Screen = "leaderboard"
	ScreenMarketplace    Screen = "marketplace"
	ScreenShoutout       Screen = "shoutout"
	ScreenAdmin          Screen = "admin"
	ScreenAdminEmployees Screen = "admin-employees"
	ScreenAdminReports   Screen = "admin-reports"
)

// Route is a client route. A route with no AllowedRoles admits any
// authenticated session.
type Route struct {
	Pattern      string
	Screen       Screen
	Public       bool
	AllowedRoles []user.Role
	RedirectTo   string
}

func (r Route) Allows(role user.Role) bool {
	if len(r.AllowedRoles) == 0 {
		return true
	}
	for _, allowed := range r.AllowedRoles {
		if allowed == role {
			return true
		}
	}
	return false
}

var (
	employeeOnly = []user.Role{user.RoleEmployee}
	adminOnly    = []user.Role{user.RoleAdmin}
)

// Routes is the client route table.
var Routes = []Route{
	{Pattern: PathLogin, Screen: ScreenLogin, Public: true},
	{Pattern: "/signup", Screen: ScreenSignup, Public: true},
	{Pattern: "/forgot-password", Screen: ScreenForgotPassword, Public: true},
	{Pattern: PathResetPassword, Screen: ScreenResetPassword, Public: true},

	{Pattern: "/", Screen: ScreenIndex, RedirectTo: PathEmployeeHome},

	{Pattern: "/dashboard", Screen: ScreenDashboard, AllowedRoles: employeeOnly},
	{Pattern: "/profile", Screen: ScreenProfile, AllowedRoles: employeeOnly},
	{Pattern: "/settings", Screen: ScreenSettings, AllowedRoles: employeeOnly},
	{Pattern: "/leaderboard", Screen: ScreenLeaderboard, AllowedRoles: employeeOnly},
	{Pattern: "/marketplace", Screen: ScreenMarketplace, AllowedRoles: employeeOnly},
	{Pattern: "/shoutouts/{id}", Screen: ScreenShoutout, AllowedRoles: employeeOnly},

	{Pattern: "/admin", Screen: ScreenAdmin, AllowedRoles: adminOnly},
	{Pattern: "/admin/employees", Screen: ScreenAdminEmployees, AllowedRoles: adminOnly},
	{Pattern: "/admin/reports", Screen: ScreenAdminReports, AllowedRoles: adminOnly},
}

// Lookup returns the route for a screen.
func Lookup(screen Screen) Route {
	for _, r := range Routes {
		if r.Screen == screen {
			return r
		}
	}
	return Route{}
}

// Match resolves a concrete path against the route table and extracts path
// parameters. Unknown paths report false; callers redirect them to "/".
func Match(path string) (Route, map[string]string, bool) {
	path = normalizePath(path)
	segments := split(path)

	for _, r := range Routes {
		pattern := split(r.Pattern)
		if len(pattern) != len(segments) {
			continue
		}
		params := map[string]string{}
		matched := true
		for i, seg := range pattern {
			if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
				if segments[i] == "" {
					matched = false
					break
				}
				params[strings.Trim(seg, "{}")] = segments[i]
				continue
			}
			if seg != segments[i] {
				matched = false
				break
			}
		}
		if matched {
			return r, params, true
		}
	}
	return Route{}, nil, false
}

// Navigate decides for an arbitrary path, sending unknown paths to "/".
func Navigate(v Viewer, path string) Decision {
	r, _, ok := Match(path)
	if !ok {
		return Decision{Outcome: Redirect, Location: PathRoot}
	}
	return Decide(v, r)
}

func normalizePath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

func split(path string) []string {
	if path == "/" {
		return []string{}
	}
	return strings.Split(strings.TrimPrefix(path, "/"), "/")
}
