// Package guard decides, for a session and a client route, whether the route
// renders, redirects or waits for the session to finish loading.
package guard

import (
	"github.com/frahmantamala/bragboard/internal/user"
)

const (
	PathRoot          = "/"
	PathLogin         = "/login"
	PathResetPassword = "/reset-password"
	PathEmployeeHome  = "/dashboard"
	PathAdminHome     = "/admin"
)

type State int

const (
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "authenticated"
	}
}

// Viewer is the part of a session the guard looks at.
type Viewer interface {
	Loading() bool
	Authenticated() bool
	Role() user.Role
}

type Outcome int

const (
	Render Outcome = iota
	Redirect
	Wait
)

func (o Outcome) String() string {
	switch o {
	case Render:
		return "render"
	case Redirect:
		return "redirect"
	default:
		return "wait"
	}
}

type Decision struct {
	Outcome  Outcome
	Location string
}

// HomePath is where a role lands after login or after hitting a route it
// may not see.
func HomePath(role user.Role) string {
	if role.IsAdmin() {
		return PathAdminHome
	}
	return PathEmployeeHome
}

func StateOf(v Viewer) State {
	switch {
	case v.Loading():
		return StateLoading
	case !v.Authenticated():
		return StateUnauthenticated
	default:
		return StateAuthenticated
	}
}

// Decide is a pure function of the viewer and the route's declared access.
func Decide(v Viewer, r Route) Decision {
	if r.Public {
		return Decision{Outcome: Render}
	}

	switch StateOf(v) {
	case StateLoading:
		return Decision{Outcome: Wait}
	case StateUnauthenticated:
		return Decision{Outcome: Redirect, Location: PathLogin}
	}

	if !r.Allows(v.Role()) {
		return Decision{Outcome: Redirect, Location: HomePath(v.Role())}
	}
	if r.RedirectTo != "" {
		return Decision{Outcome: Redirect, Location: r.RedirectTo}
	}
	return Decision{Outcome: Render}
}
