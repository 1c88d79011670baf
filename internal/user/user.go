package user

import (
	userDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/user"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// User is the canonical, camelCase record the client caches and persists.
// The backend owns the entity; this is a read-only projection.
type User struct {
	ID         string         `json:"id"`
	Email      string         `json:"email"`
	FullName   string         `json:"fullName"`
	Role       Role           `json:"role"`
	IsActive   bool           `json:"isActive"`
	AvatarURL  *string        `json:"avatarUrl"`
	Department *string        `json:"department,omitempty"`
	CreatedAt  string         `json:"createdAt"`
	Points     int            `json:"points"`
	Badges     []string       `json:"badges"`
	Skills     map[string]int `json:"skills"`
}

// Employee is the admin directory view of a user.
type Employee struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	IsActive bool   `json:"isActive"`
	Role     Role   `json:"role"`
}

// ProfileUpdate is the editable part of a profile. Nil fields are left
// unchanged.
type ProfileUpdate struct {
	FullName   *string
	AvatarURL  *string
	Department *string
}

func FromEmployee(e userDatamodel.Employee) Employee {
	return Employee{
		ID:       e.ID.String(),
		FullName: e.Name,
		Email:    e.Email,
		IsActive: e.Active,
		Role:     Role(e.Role),
	}
}

func (p ProfileUpdate) ToDataModel() userDatamodel.ProfileUpdateRequest {
	return userDatamodel.ProfileUpdateRequest{
		FullName:   p.FullName,
		AvatarURL:  p.AvatarURL,
		Department: p.Department,
	}
}
