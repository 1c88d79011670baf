package shoutout

import (
	"strings"
	"time"

	"github.com/frahmantamala/bragboard/internal/core/datamodel"
	shoutoutDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/shoutout"
)

const DefaultCategory = "Teamwork"

// Shoutout is the client's view of a recognition post.
type Shoutout struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Category     string      `json:"category"`
	Skills       []string    `json:"skills"`
	CreatorID    *string     `json:"creatorId"`
	RecipientIDs []string    `json:"recipientIds"`
	Recipients   []Recipient `json:"recipients"`
	Comments     []Comment   `json:"comments"`
	Cheers       []string    `json:"cheers"`
	CheerCount   int         `json:"cheerCount"`
	CreatedAt    string      `json:"createdAt"`
}

type Recipient struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type Comment struct {
	ID         string `json:"id"`
	ShoutoutID string `json:"shoutoutId"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	Content    string `json:"content"`
	CreatedAt  string `json:"createdAt"`
}

func (s Shoutout) CheeredBy(userID string) bool {
	for _, id := range s.Cheers {
		if id == userID {
			return true
		}
	}
	return false
}

// Filter keeps the shoutouts whose title or description contains term,
// ignoring case. An empty term keeps everything.
func Filter(shoutouts []Shoutout, term string) []Shoutout {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return shoutouts
	}
	out := make([]Shoutout, 0, len(shoutouts))
	for _, s := range shoutouts {
		if strings.Contains(strings.ToLower(s.Title), term) || strings.Contains(strings.ToLower(s.Description), term) {
			out = append(out, s)
		}
	}
	return out
}

// FromDataModel translates a backend shoutout. The body comes from content,
// then description; missing collections become empty and a missing
// timestamp becomes now.
func FromDataModel(s shoutoutDatamodel.Shoutout, now time.Time) Shoutout {
	out := Shoutout{
		ID:           s.ID.String(),
		Title:        s.Title,
		Description:  s.Content,
		Category:     s.Category,
		Skills:       append([]string{}, s.Skills...),
		RecipientIDs: datamodel.IDs(s.RecipientIDs),
		Recipients:   make([]Recipient, 0, len(s.Recipients)),
		Comments:     make([]Comment, 0, len(s.Comments)),
		Cheers:       append([]string{}, s.Cheers.UserIDs...),
		CheerCount:   s.Cheers.Count,
		CreatedAt:    s.CreatedAt,
	}

	if out.Description == "" {
		out.Description = s.Description
	}
	if out.Category == "" {
		out.Category = DefaultCategory
	}
	if s.AuthorID != "" {
		creator := s.AuthorID.String()
		out.CreatorID = &creator
	}
	if out.CreatedAt == "" {
		out.CreatedAt = now.UTC().Format(time.RFC3339Nano)
	}
	for _, r := range s.Recipients {
		out.Recipients = append(out.Recipients, Recipient{ID: r.ID.String(), FullName: r.FullName, Email: r.Email})
	}
	for _, c := range s.Comments {
		out.Comments = append(out.Comments, CommentFromDataModel(c))
	}
	return out
}

func CommentFromDataModel(c shoutoutDatamodel.Comment) Comment {
	return Comment{
		ID:         c.ID.String(),
		ShoutoutID: c.ShoutoutID.String(),
		UserID:     c.UserID.String(),
		UserName:   c.UserName,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
	}
}
