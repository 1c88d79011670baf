package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	leaderboardDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/leaderboard"
	userDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/user"
)

func (c *Client) ListEmployees(ctx context.Context) ([]userDatamodel.Employee, error) {
	var out []userDatamodel.Employee
	if err := c.do(ctx, http.MethodGet, "/employees", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ToggleEmployeeStatus(ctx context.Context, id string) (*userDatamodel.Employee, error) {
	var out userDatamodel.Employee
	path := fmt.Sprintf("/employees/%s/toggle", url.PathEscape(id))
	if err := c.do(ctx, http.MethodPut, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Leaderboard(ctx context.Context) ([]leaderboardDatamodel.Entry, error) {
	var out []leaderboardDatamodel.Entry
	if err := c.do(ctx, http.MethodGet, "/leaderboard", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProfile returns the backend's user record raw; callers normalize it.
func (c *Client) UpdateProfile(ctx context.Context, userID string, req userDatamodel.ProfileUpdateRequest) ([]byte, error) {
	var out json.RawMessage
	path := fmt.Sprintf("/users/%s", url.PathEscape(userID))
	if err := c.do(ctx, http.MethodPut, path, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadAvatar posts the image as multipart field "file" and returns the
// stored avatar URL.
func (c *Client) UploadAvatar(ctx context.Context, userID, filename string, content io.Reader) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("failed to read avatar: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("failed to finish form: %w", err)
	}

	path := fmt.Sprintf("/users/%s/avatar", url.PathEscape(userID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	var out userDatamodel.AvatarResponse
	if err := c.send(ctx, req, &out); err != nil {
		return "", err
	}
	switch {
	case out.AvatarURL != nil:
		return *out.AvatarURL, nil
	case out.AvatarURLLocal != nil:
		return *out.AvatarURLLocal, nil
	}
	return "", nil
}
