package auth

import (
	"strings"

	"github.com/frahmantamala/bragboard/internal"
	"github.com/frahmantamala/bragboard/internal/user"
)

// LoginDTO is the sign-in form. Role is the tab the user picked; the
// account's own role decides where they land.
type LoginDTO struct {
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Role     user.Role `json:"role,omitempty"`
}

func (d LoginDTO) Validate() error {
	var errs []internal.ValidationError
	if strings.TrimSpace(d.Email) == "" {
		errs = append(errs, internal.ValidationError{Field: "email", Message: "email is required"})
	}
	if d.Password == "" {
		errs = append(errs, internal.ValidationError{Field: "password", Message: "password is required"})
	}
	if d.Role != "" && !d.Role.Valid() {
		errs = append(errs, internal.ValidationError{Field: "role", Message: "role must be ADMIN or EMPLOYEE"})
	}
	return validationFailed(errs)
}

type SignupDTO struct {
	Email    string    `json:"email"`
	FullName string    `json:"fullName"`
	Password string    `json:"password"`
	Role     user.Role `json:"role,omitempty"`
}

func (d SignupDTO) Validate() error {
	var errs []internal.ValidationError
	if strings.TrimSpace(d.Email) == "" {
		errs = append(errs, internal.ValidationError{Field: "email", Message: "email is required"})
	}
	if strings.TrimSpace(d.FullName) == "" {
		errs = append(errs, internal.ValidationError{Field: "fullName", Message: "full name is required"})
	}
	if d.Password == "" {
		errs = append(errs, internal.ValidationError{Field: "password", Message: "password is required"})
	}
	if d.Role != "" && !d.Role.Valid() {
		errs = append(errs, internal.ValidationError{Field: "role", Message: "role must be ADMIN or EMPLOYEE"})
	}
	return validationFailed(errs)
}

// RoleOrDefault signs people up as employees unless they asked otherwise.
func (d SignupDTO) RoleOrDefault() user.Role {
	if d.Role == "" {
		return user.RoleEmployee
	}
	return d.Role
}

type ForgotPasswordDTO struct {
	Email string `json:"email"`
}

func (d ForgotPasswordDTO) Validate() error {
	if strings.TrimSpace(d.Email) == "" {
		return internal.NewValidationFieldError("email", "email is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type ResetPasswordDTO struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (d ResetPasswordDTO) Validate() error {
	if d.Password != d.ConfirmPassword {
		return internal.NewValidationFieldError("confirmPassword", "Passwords do not match.", internal.ErrCodeValidationFailed)
	}
	var errs []internal.ValidationError
	if strings.TrimSpace(d.Token) == "" {
		errs = append(errs, internal.ValidationError{Field: "token", Message: "reset token is required"})
	}
	if d.Password == "" {
		errs = append(errs, internal.ValidationError{Field: "password", Message: "password is required"})
	}
	return validationFailed(errs)
}

func validationFailed(errs []internal.ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	return internal.NewValidationError("Validation failed", internal.ErrCodeValidationFailed).
		WithDetails(internal.ValidationErrors{Errors: errs})
}
