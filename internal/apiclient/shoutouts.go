package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	shoutoutDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/shoutout"
)

func shoutoutPath(id string) string {
	return fmt.Sprintf("/shoutouts/%s", url.PathEscape(id))
}

func (c *Client) ListShoutouts(ctx context.Context) ([]shoutoutDatamodel.Shoutout, error) {
	var out []shoutoutDatamodel.Shoutout
	if err := c.do(ctx, http.MethodGet, "/shoutouts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetShoutout(ctx context.Context, id string) (*shoutoutDatamodel.Shoutout, error) {
	var out shoutoutDatamodel.Shoutout
	if err := c.do(ctx, http.MethodGet, shoutoutPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateShoutout(ctx context.Context, req shoutoutDatamodel.CreateRequest) (*shoutoutDatamodel.CreateResponse, error) {
	if req.RecipientIDs == nil {
		req.RecipientIDs = []string{}
	}
	var out shoutoutDatamodel.CreateResponse
	if err := c.do(ctx, http.MethodPost, "/shoutouts", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateShoutout(ctx context.Context, id string, req shoutoutDatamodel.UpdateRequest) error {
	return c.do(ctx, http.MethodPut, shoutoutPath(id), req, nil)
}

func (c *Client) DeleteShoutout(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, shoutoutPath(id), nil, nil)
}

func (c *Client) AddComment(ctx context.Context, shoutoutID string, req shoutoutDatamodel.CommentRequest) (*shoutoutDatamodel.Comment, error) {
	var out shoutoutDatamodel.Comment
	if err := c.do(ctx, http.MethodPost, shoutoutPath(shoutoutID)+"/comments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleCheer flips the user's cheer and returns the shoutout's cheers.
func (c *Client) ToggleCheer(ctx context.Context, shoutoutID, userID string) (shoutoutDatamodel.Cheers, error) {
	var out shoutoutDatamodel.Cheers
	err := c.do(ctx, http.MethodPost, shoutoutPath(shoutoutID)+"/cheer", shoutoutDatamodel.CheerRequest{UserID: userID}, &out)
	return out, err
}
