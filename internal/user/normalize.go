package user

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/frahmantamala/bragboard/internal/core/datamodel"
	userDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/user"
)

// Record is a user payload in one of the accepted naming conventions:
// BackendRecord (snake_case), LocalRecord (camelCase) or MixedRecord (an
// arbitrary object that may carry either or both).
type Record interface {
	fields() recordFields
}

// BackendRecord is the snake_case shape the API returns.
type BackendRecord userDatamodel.User

// LocalRecord is the camelCase shape the client persists and edits.
type LocalRecord struct {
	ID         datamodel.ID   `json:"id"`
	Email      string         `json:"email"`
	FullName   *string        `json:"fullName,omitempty"`
	Role       string         `json:"role"`
	IsActive   *bool          `json:"isActive,omitempty"`
	AvatarURL  *string        `json:"avatarUrl,omitempty"`
	Department *string        `json:"department,omitempty"`
	CreatedAt  *string        `json:"createdAt,omitempty"`
	Points     *int           `json:"points,omitempty"`
	Badges     []string       `json:"badges,omitempty"`
	Skills     map[string]int `json:"skills,omitempty"`
}

// MixedRecord holds both readings of the same raw object. Snake_case
// values win over camelCase ones.
type MixedRecord struct {
	Backend BackendRecord
	Local   LocalRecord
}

type recordFields struct {
	id         datamodel.ID
	email      string
	role       string
	fullName   *string
	isActive   *bool
	avatarURL  *string
	department *string
	createdAt  *string
	points     *int
	badges     []string
	skills     map[string]int
}

func (r BackendRecord) fields() recordFields {
	return recordFields{
		id:         r.ID,
		email:      r.Email,
		role:       r.Role,
		fullName:   r.FullName,
		isActive:   r.IsActive,
		avatarURL:  r.AvatarURL,
		department: r.Department,
		createdAt:  r.CreatedAt,
		points:     r.Points,
		badges:     r.Badges,
		skills:     r.Skills,
	}
}

func (r LocalRecord) fields() recordFields {
	return recordFields{
		id:         r.ID,
		email:      r.Email,
		role:       r.Role,
		fullName:   r.FullName,
		isActive:   r.IsActive,
		avatarURL:  r.AvatarURL,
		department: r.Department,
		createdAt:  r.CreatedAt,
		points:     r.Points,
		badges:     r.Badges,
		skills:     r.Skills,
	}
}

func (r MixedRecord) fields() recordFields {
	b, l := r.Backend.fields(), r.Local.fields()
	return recordFields{
		id:         firstID(b.id, l.id),
		email:      firstString(b.email, l.email),
		role:       firstString(b.role, l.role),
		fullName:   coalesce(b.fullName, l.fullName),
		isActive:   coalesce(b.isActive, l.isActive),
		avatarURL:  coalesce(b.avatarURL, l.avatarURL),
		department: coalesce(b.department, l.department),
		createdAt:  coalesce(b.createdAt, l.createdAt),
		points:     coalesce(b.points, l.points),
		badges:     firstSlice(b.badges, l.badges),
		skills:     firstMap(b.skills, l.skills),
	}
}

// ParseRecord reads a raw JSON user object under both conventions.
func ParseRecord(data []byte) (MixedRecord, error) {
	var rec MixedRecord
	if err := json.Unmarshal(data, &rec.Backend); err != nil {
		return MixedRecord{}, fmt.Errorf("decode user record: %w", err)
	}
	if err := json.Unmarshal(data, &rec.Local); err != nil {
		return MixedRecord{}, fmt.Errorf("decode user record: %w", err)
	}
	return rec, nil
}

// Normalize maps any record shape to the canonical User. Missing optional
// fields get lenient defaults: isActive true, avatarUrl null, createdAt now,
// points 0, no badges, no skills.
func Normalize(r Record, now time.Time) User {
	f := r.fields()

	u := User{
		ID:         f.id.String(),
		Email:      f.email,
		FullName:   "",
		Role:       Role(f.role),
		IsActive:   true,
		AvatarURL:  f.avatarURL,
		Department: f.department,
		CreatedAt:  now.UTC().Format(time.RFC3339Nano),
		Points:     0,
		Badges:     []string{},
		Skills:     map[string]int{},
	}

	if f.fullName != nil {
		u.FullName = *f.fullName
	}
	if f.isActive != nil {
		u.IsActive = *f.isActive
	}
	if f.createdAt != nil {
		u.CreatedAt = *f.createdAt
	}
	if f.points != nil {
		u.Points = *f.points
	}
	if f.badges != nil {
		u.Badges = append([]string{}, f.badges...)
	}
	if f.skills != nil {
		u.Skills = make(map[string]int, len(f.skills))
		for k, v := range f.skills {
			u.Skills[k] = v
		}
	}

	return u
}

// Refresh normalizes r on top of prev. A record without createdAt keeps
// prev's when both describe the same user, so applying the same payload
// twice yields the same user.
func Refresh(r Record, prev *User, now time.Time) User {
	u := Normalize(r, now)
	if r.fields().createdAt == nil && prev != nil && prev.ID == u.ID && prev.CreatedAt != "" {
		u.CreatedAt = prev.CreatedAt
	}
	return u
}

// Record returns the canonical user as a LocalRecord, so an already
// normalized user can be normalized again without changing.
func (u User) Record() LocalRecord {
	isActive := u.IsActive
	points := u.Points
	rec := LocalRecord{
		ID:         datamodel.ID(u.ID),
		Email:      u.Email,
		FullName:   &u.FullName,
		Role:       string(u.Role),
		IsActive:   &isActive,
		AvatarURL:  u.AvatarURL,
		Department: u.Department,
		Points:     &points,
		Badges:     u.Badges,
		Skills:     u.Skills,
	}
	if u.CreatedAt != "" {
		createdAt := u.CreatedAt
		rec.CreatedAt = &createdAt
	}
	return rec
}

func coalesce[T any](values ...*T) *T {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstID(values ...datamodel.ID) datamodel.ID {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstSlice(values ...[]string) []string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstMap(values ...map[string]int) map[string]int {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
