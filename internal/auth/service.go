// Package auth drives the public screens: sign in, sign up, sign out and
// the password reset flow.
package auth

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/frahmantamala/bragboard/internal"
	"github.com/frahmantamala/bragboard/internal/apiclient"
	userDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/user"
	"github.com/frahmantamala/bragboard/internal/guard"
	"github.com/frahmantamala/bragboard/internal/session"
	"github.com/frahmantamala/bragboard/internal/user"
)

const (
	MsgLoginFailed     = "Authentication failed. Please check your credentials."
	MsgNoAccount       = "No account exists with this email address."
	MsgResetRequested  = "Check your email for a password reset link."
	MsgResetRequestErr = "Failed to request password reset."
	MsgResetDone       = "Password reset successful. Please sign in."
	MsgResetFailed     = "Failed to reset password."

	backendUserNotFound = "User not found"
)

// Sessions is the session store as the auth screens use it.
type Sessions interface {
	Login(ctx context.Context, email, password string, role user.Role) (session.Session, error)
	Signup(ctx context.Context, email, fullName, password string, role user.Role) error
	Logout(ctx context.Context) error
}

type ResetAPI interface {
	RequestPasswordReset(ctx context.Context, email string) (*userDatamodel.ResetRequestResponse, error)
	ResetPassword(ctx context.Context, token, password string) error
}

// ResetRequest is the outcome of asking for a reset link. A backend in
// development mode hands the token back, which skips the email step.
type ResetRequest struct {
	Message  string `json:"message"`
	Location string `json:"location,omitempty"`
}

type Service struct {
	sessions Sessions
	api      ResetAPI
	logger   *slog.Logger
}

func NewService(sessions Sessions, api ResetAPI, logger *slog.Logger) *Service {
	return &Service{
		sessions: sessions,
		api:      api,
		logger:   logger,
	}
}

func (s *Service) Login(ctx context.Context, dto LoginDTO) (session.Session, error) {
	if err := dto.Validate(); err != nil {
		return session.Session{}, err
	}
	sess, err := s.sessions.Login(ctx, dto.Email, dto.Password, dto.Role)
	if err != nil {
		return sess, loginError(err)
	}
	s.logger.Info("user logged in", "user_id", sess.UserID(), "role", sess.Role())
	return sess, nil
}

func (s *Service) Signup(ctx context.Context, dto SignupDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}
	return s.sessions.Signup(ctx, dto.Email, dto.FullName, dto.Password, dto.RoleOrDefault())
}

func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.Logout(ctx)
}

func (s *Service) RequestReset(ctx context.Context, dto ForgotPasswordDTO) (ResetRequest, error) {
	if err := dto.Validate(); err != nil {
		return ResetRequest{}, err
	}
	resp, err := s.api.RequestPasswordReset(ctx, dto.Email)
	if err != nil {
		if detail, ok := session.DetailMessage(err); ok && detail == backendUserNotFound {
			return ResetRequest{}, internal.NewNotFoundError(MsgNoAccount, internal.ErrCodeAccountNotFound).WithCause(err)
		}
		return ResetRequest{}, internal.NewExternalError(MsgResetRequestErr, err)
	}

	out := ResetRequest{Message: MsgResetRequested}
	if resp != nil && resp.Token != "" {
		out.Location = guard.PathResetPassword + "?token=" + url.QueryEscape(resp.Token)
	}
	return out, nil
}

func (s *Service) ResetPassword(ctx context.Context, dto ResetPasswordDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}
	if err := s.api.ResetPassword(ctx, dto.Token, dto.Password); err != nil {
		message := MsgResetFailed
		if detail, ok := session.DetailMessage(err); ok {
			message = detail
		}
		return internal.NewValidationError(message, internal.ErrCodeResetRejected).WithCause(err)
	}
	s.logger.Info("password reset")
	return nil
}

// loginError keeps local errors and turns a backend rejection into its
// detail, or a generic message when there is none.
func loginError(err error) error {
	if appErr, ok := internal.IsAppError(err); ok {
		return appErr
	}
	if apiclient.StatusCode(err) == 0 {
		return internal.NewExternalError(MsgLoginFailed, err)
	}
	message := MsgLoginFailed
	if detail, ok := session.DetailMessage(err); ok {
		message = detail
	}
	return internal.NewUnauthorizedError(message, internal.ErrCodeLoginRejected).WithCause(err)
}
