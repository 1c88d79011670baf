package apiclient

import (
	"context"
	"net/http"

	userDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/user"
)

func (c *Client) Login(ctx context.Context, req userDatamodel.LoginRequest) (*userDatamodel.LoginResponse, error) {
	var resp userDatamodel.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Signup(ctx context.Context, req userDatamodel.SignupRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/signup", req, nil)
}

// RequestPasswordReset asks for a reset link. Development backends answer
// with the reset token itself.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (*userDatamodel.ResetRequestResponse, error) {
	var resp userDatamodel.ResetRequestResponse
	if err := c.do(ctx, http.MethodPost, "/auth/reset-request", userDatamodel.ResetRequest{Email: email}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/reset", userDatamodel.ResetPasswordRequest{Token: token, Password: password}, nil)
}
