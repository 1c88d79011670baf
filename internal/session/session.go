// Package session holds the client's authentication state: who is logged in,
// with which credential, and how that survives a restart.
package session

import (
	"github.com/frahmantamala/bragboard/internal/user"
)

// Persisted keys. KeyLegacyToken is never written; it is read through
// LegacyStorage and removed on logout.
const (
	KeyAccessToken = "accessToken"
	KeyLegacyToken = "token"
	KeyUser        = "user"
)

// Session is a snapshot of the client's authentication state.
type Session struct {
	User            *user.User `json:"user"`
	AccessToken     string     `json:"-"`
	IsAuthenticated bool       `json:"isAuthenticated"`
	IsLoading       bool       `json:"isLoading"`
}

// Empty is the unauthenticated state a finished restore or a logout leaves.
func Empty() Session {
	return Session{}
}

func (s Session) Loading() bool {
	return s.IsLoading
}

func (s Session) Authenticated() bool {
	return s.IsAuthenticated
}

func (s Session) Role() user.Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

func (s Session) UserID() string {
	if s.User == nil {
		return ""
	}
	return s.User.ID
}

func (s Session) Email() string {
	if s.User == nil {
		return ""
	}
	return s.User.Email
}

func (s Session) DisplayName() string {
	if s.User == nil {
		return ""
	}
	return s.User.FullName
}

func (s Session) PointsBalance() int {
	if s.User == nil {
		return 0
	}
	return s.User.Points
}

func (s Session) clone() Session {
	if s.User == nil {
		return s
	}
	u := *s.User
	u.Badges = append([]string{}, s.User.Badges...)
	u.Skills = make(map[string]int, len(s.User.Skills))
	for k, v := range s.User.Skills {
		u.Skills[k] = v
	}
	s.User = &u
	return s
}
