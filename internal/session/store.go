package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/frahmantamala/bragboard/internal"
	userDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/user"
	"github.com/frahmantamala/bragboard/internal/core/events"
	"github.com/frahmantamala/bragboard/internal/guard"
	"github.com/frahmantamala/bragboard/internal/user"
)

// Gateway is the part of the backend API the session needs.
type Gateway interface {
	Login(ctx context.Context, req userDatamodel.LoginRequest) (*userDatamodel.LoginResponse, error)
	Signup(ctx context.Context, req userDatamodel.SignupRequest) error
}

type Navigator interface {
	Navigate(ctx context.Context, path string)
}

type NavigatorFunc func(ctx context.Context, path string)

func (f NavigatorFunc) Navigate(ctx context.Context, path string) { f(ctx, path) }

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notifier interface {
	Notify(ctx context.Context, level Level, message string)
}

type NotifierFunc func(ctx context.Context, level Level, message string)

func (f NotifierFunc) Notify(ctx context.Context, level Level, message string) {
	f(ctx, level, message)
}

type navigatorKey struct{}
type notifierKey struct{}

// WithNavigator scopes navigation to one request or command: the store
// prefers it over the navigator it was built with.
func WithNavigator(ctx context.Context, n Navigator) context.Context {
	return context.WithValue(ctx, navigatorKey{}, n)
}

func WithNotifier(ctx context.Context, n Notifier) context.Context {
	return context.WithValue(ctx, notifierKey{}, n)
}

type Options struct {
	Navigator Navigator
	Notifier  Notifier
	Events    *events.EventBus
	Logger    *slog.Logger
	Clock     func() time.Time
}

// Store owns the session. It starts loading and stays loading until Restore
// completes.
type Store struct {
	mu      sync.RWMutex
	state   Session
	storage Storage
	gateway Gateway
	nav     Navigator
	notify  Notifier
	events  *events.EventBus
	logger  *slog.Logger
	now     func() time.Time
}

func NewStore(storage Storage, gateway Gateway, opts Options) *Store {
	s := &Store{
		state:   Session{IsLoading: true},
		storage: storage,
		gateway: gateway,
		nav:     opts.Navigator,
		notify:  opts.Notifier,
		events:  opts.Events,
		logger:  opts.Logger,
		now:     opts.Clock,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.nav == nil {
		s.nav = NavigatorFunc(func(context.Context, string) {})
	}
	if s.notify == nil {
		s.notify = NotifierFunc(func(_ context.Context, level Level, message string) {
			s.logger.Info("notification", "level", level, "message", message)
		})
	}
	return s
}

// Snapshot returns a copy of the current session.
func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Restore loads a previously persisted session. Both the credential and the
// user record must be present; otherwise the session finishes loading
// unauthenticated. A credential stored only under the legacy key is moved
// to the current one. The session always leaves the loading state, even
// when storage fails.
func (s *Store) Restore(ctx context.Context) (Session, error) {
	restored, err := s.restore(ctx)

	s.mu.Lock()
	s.state = restored
	s.mu.Unlock()

	if restored.IsAuthenticated {
		s.publish(ctx, events.EventTypeSessionRestored, restored)
	}
	s.logger.Debug("session restored", "authenticated", restored.IsAuthenticated, "user_id", restored.UserID())
	return restored.clone(), err
}

func (s *Store) restore(ctx context.Context) (Session, error) {
	token, ok, err := s.storage.Get(ctx, KeyAccessToken)
	if err != nil {
		return Empty(), storageError("read credential", err)
	}
	if !ok || token == "" {
		token, err = s.promoteLegacyToken(ctx)
		if err != nil {
			return Empty(), err
		}
	}

	raw, ok, err := s.storage.Get(ctx, KeyUser)
	if err != nil {
		return Empty(), storageError("read user", err)
	}
	if token == "" || !ok || raw == "" {
		return Empty(), nil
	}

	if credentialExpired(token, s.now()) {
		s.logger.Info("persisted credential has expired, clearing session")
		return Empty(), s.clear(ctx)
	}

	rec, err := user.ParseRecord([]byte(raw))
	if err != nil {
		s.logger.Warn("persisted user record is unreadable, clearing session", "error", err)
		return Empty(), s.clear(ctx)
	}
	u := user.Normalize(rec, s.now())

	return Session{User: &u, AccessToken: token, IsAuthenticated: true}, nil
}

func (s *Store) promoteLegacyToken(ctx context.Context) (string, error) {
	legacy, ok, err := s.storage.Get(ctx, KeyLegacyToken)
	if err != nil {
		return "", storageError("read legacy credential", err)
	}
	if !ok || legacy == "" {
		return "", nil
	}
	if err := s.storage.Set(ctx, KeyAccessToken, legacy); err != nil {
		return "", storageError("promote legacy credential", err)
	}
	if err := s.storage.Delete(ctx, KeyLegacyToken); err != nil {
		return "", storageError("remove legacy credential", err)
	}
	s.logger.Info("moved credential from legacy key", "from", KeyLegacyToken, "to", KeyAccessToken)
	return legacy, nil
}

// Login authenticates against the backend, persists the credential and the
// normalized user, and navigates to the role's home. Backend errors are
// returned unchanged and leave the session untouched. The role argument is
// what the user picked on the form; the backend's role decides where they
// land.
func (s *Store) Login(ctx context.Context, email, password string, role user.Role) (Session, error) {
	resp, err := s.gateway.Login(ctx, userDatamodel.LoginRequest{Email: email, Password: password})
	if err != nil {
		return s.Snapshot(), err
	}
	if resp == nil || resp.Token == "" {
		return s.Snapshot(), internal.NewExternalError("Login response carried no credential", nil)
	}

	rec, err := user.ParseRecord(resp.User)
	if err != nil {
		return s.Snapshot(), internal.NewExternalError("Login response carried an unreadable user", err)
	}
	u := user.Normalize(rec, s.now())

	if role != "" && role != u.Role {
		s.logger.Debug("requested role differs from account role", "requested", role, "actual", u.Role)
	}

	if err := s.persist(ctx, resp.Token, u); err != nil {
		return s.Snapshot(), err
	}

	next := Session{User: &u, AccessToken: resp.Token, IsAuthenticated: true}
	s.mu.Lock()
	s.state = next
	s.mu.Unlock()

	s.publish(ctx, events.EventTypeSessionLoggedIn, next)
	s.navigate(ctx, guard.HomePath(u.Role))
	return next.clone(), nil
}

// Signup registers an account. Success notifies and navigates to the login
// screen; the session is never authenticated by a signup. Failure notifies
// with the backend's reason and returns it.
func (s *Store) Signup(ctx context.Context, email, fullName, password string, role user.Role) error {
	err := s.gateway.Signup(ctx, userDatamodel.SignupRequest{
		Email:    email,
		FullName: fullName,
		Password: password,
		Role:     string(role),
	})
	if err != nil {
		appErr := SignupError(err)
		s.logger.Warn("signup rejected", "email", email, "error", err)
		s.notifyUser(ctx, LevelError, appErr.GetDetailedMessage())
		return appErr
	}

	s.notifyUser(ctx, LevelSuccess, "Account created! Please sign in.")
	s.navigate(ctx, guard.PathLogin)
	return nil
}

// Logout clears every persisted session key, including the legacy one, and
// resets the in-memory session even when storage fails.
func (s *Store) Logout(ctx context.Context) error {
	prev := s.Snapshot()
	err := s.clear(ctx)

	s.mu.Lock()
	s.state = Empty()
	s.mu.Unlock()

	s.publish(ctx, events.EventTypeSessionLoggedOut, prev)
	s.navigate(ctx, guard.PathLogin)
	return err
}

// UpdateUser normalizes rec, persists it and merges it into the session.
// The credential is left as is.
func (s *Store) UpdateUser(ctx context.Context, rec user.Record) (Session, error) {
	s.mu.RLock()
	prev := s.state.User
	s.mu.RUnlock()

	u := user.Refresh(rec, prev, s.now())
	data, err := json.Marshal(u)
	if err != nil {
		return s.Snapshot(), internal.NewInternalError("Failed to encode user", err)
	}
	if err := s.storage.Set(ctx, KeyUser, string(data)); err != nil {
		return s.Snapshot(), storageError("write user", err)
	}

	s.mu.Lock()
	s.state.User = &u
	next := s.state.clone()
	s.mu.Unlock()

	s.publish(ctx, events.EventTypeSessionUserUpdated, next)
	return next, nil
}

// Close drops the in-memory session. Persisted keys stay for the next
// Restore.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Empty()
	return nil
}

func (s *Store) persist(ctx context.Context, token string, u user.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return internal.NewInternalError("Failed to encode user", err)
	}
	if err := s.storage.Set(ctx, KeyAccessToken, token); err != nil {
		return storageError("write credential", err)
	}
	if err := s.storage.Set(ctx, KeyUser, string(data)); err != nil {
		return storageError("write user", err)
	}
	return nil
}

func (s *Store) clear(ctx context.Context) error {
	if err := s.storage.Delete(ctx, KeyAccessToken, KeyLegacyToken, KeyUser); err != nil {
		return storageError("clear session", err)
	}
	return nil
}

func (s *Store) navigate(ctx context.Context, path string) {
	if n, ok := ctx.Value(navigatorKey{}).(Navigator); ok && n != nil {
		n.Navigate(ctx, path)
		return
	}
	s.nav.Navigate(ctx, path)
}

func (s *Store) notifyUser(ctx context.Context, level Level, message string) {
	if n, ok := ctx.Value(notifierKey{}).(Notifier); ok && n != nil {
		n.Notify(ctx, level, message)
		return
	}
	s.notify.Notify(ctx, level, message)
}

func (s *Store) publish(ctx context.Context, eventType string, sess Session) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, events.NewSessionEvent(eventType, sess.UserID(), string(sess.Role())))
}

func storageError(op string, err error) error {
	var appErr *internal.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return &internal.AppError{
		Type:       internal.ErrorTypeInternal,
		Code:       internal.ErrCodeStorageFailure,
		Message:    fmt.Sprintf("Session storage failed to %s", op),
		StatusCode: http.StatusInternalServerError,
		Cause:      err,
	}
}
