package profile

import (
	"strings"

	"github.com/frahmantamala/bragboard/internal"
	"github.com/frahmantamala/bragboard/internal/user"
)

// UpdateProfileDTO carries the editable profile fields. Nil fields are
// left unchanged.
type UpdateProfileDTO struct {
	FullName   *string `json:"fullName,omitempty"`
	AvatarURL  *string `json:"avatarUrl,omitempty"`
	Department *string `json:"department,omitempty"`
}

func (dto UpdateProfileDTO) Validate() error {
	if dto.FullName != nil && strings.TrimSpace(*dto.FullName) == "" {
		return internal.NewValidationFieldError("fullName", "full name cannot be empty", internal.ErrCodeValidationFailed)
	}
	return nil
}

func (dto UpdateProfileDTO) ToProfileUpdate() user.ProfileUpdate {
	update := user.ProfileUpdate{
		AvatarURL:  dto.AvatarURL,
		Department: dto.Department,
	}
	if dto.FullName != nil {
		name := strings.TrimSpace(*dto.FullName)
		update.FullName = &name
	}
	return update
}

type Response struct {
	User    *user.User `json:"user"`
	Message string     `json:"message,omitempty"`
}
