package user

import (
	"encoding/json"

	"github.com/frahmantamala/bragboard/internal/core/datamodel"
)

// User is the backend's snake_case user record. Pointer fields are optional
// on the wire.
type User struct {
	ID         datamodel.ID   `json:"id"`
	Email      string         `json:"email"`
	FullName   *string        `json:"full_name,omitempty"`
	Role       string         `json:"role"`
	IsActive   *bool          `json:"is_active,omitempty"`
	AvatarURL  *string        `json:"avatar_url,omitempty"`
	Department *string        `json:"department,omitempty"`
	CreatedAt  *string        `json:"created_at,omitempty"`
	Points     *int           `json:"points,omitempty"`
	Badges     []string       `json:"badges,omitempty"`
	Skills     map[string]int `json:"skills,omitempty"`
}

// Employee is a row of the admin directory (GET /employees).
type Employee struct {
	ID     datamodel.ID `json:"id"`
	Name   string       `json:"name"`
	Email  string       `json:"email"`
	Active bool         `json:"active"`
	Role   string       `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse keeps the user payload raw: it may use either naming
// convention and is normalized by the caller.
type LoginResponse struct {
	Token        string          `json:"token"`
	RefreshToken string          `json:"refresh_token,omitempty"`
	User         json.RawMessage `json:"user"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type ResetRequest struct {
	Email string `json:"email"`
}

// ResetRequestResponse carries a token only when the backend runs in
// development mode.
type ResetRequestResponse struct {
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type ProfileUpdateRequest struct {
	FullName   *string `json:"full_name,omitempty"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
	Department *string `json:"department,omitempty"`
}

type AvatarResponse struct {
	AvatarURL      *string `json:"avatar_url,omitempty"`
	AvatarURLLocal *string `json:"avatarUrl,omitempty"`
}
