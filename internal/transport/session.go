package transport

import (
	"context"

	"github.com/frahmantamala/bragboard/internal/session"
	"github.com/frahmantamala/bragboard/internal/user"
)

// SessionReader is what console handlers need from the session store.
type SessionReader interface {
	Snapshot() session.Session
}

// SessionWriter also lets a handler refresh the cached user after a
// mutation the backend reports back, such as a new points balance.
type SessionWriter interface {
	SessionReader
	UpdateUser(ctx context.Context, rec user.Record) (session.Session, error)
}
