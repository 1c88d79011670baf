package shoutout

import (
	"bytes"
	"encoding/json"

	"github.com/frahmantamala/bragboard/internal/core/datamodel"
)

type Shoutout struct {
	ID           datamodel.ID   `json:"id"`
	Title        string         `json:"title"`
	Content      string         `json:"content,omitempty"`
	Description  string         `json:"description,omitempty"`
	Category     string         `json:"category,omitempty"`
	Skills       []string       `json:"skills,omitempty"`
	AuthorID     datamodel.ID   `json:"author_id,omitempty"`
	RecipientIDs []datamodel.ID `json:"recipient_ids,omitempty"`
	Recipients   []Recipient    `json:"recipients,omitempty"`
	Comments     []Comment      `json:"comments,omitempty"`
	Cheers       Cheers         `json:"cheers"`
	CreatedAt    string         `json:"created_at,omitempty"`
}

type Recipient struct {
	ID       datamodel.ID `json:"id"`
	FullName string       `json:"full_name"`
	Email    string       `json:"email"`
}

type Comment struct {
	ID         datamodel.ID `json:"id"`
	ShoutoutID datamodel.ID `json:"shoutout_id"`
	UserID     datamodel.ID `json:"user_id"`
	UserName   string       `json:"user_name"`
	Content    string       `json:"content"`
	CreatedAt  string       `json:"created_at"`
}

// Cheers accepts the backend's list of cheering user ids, a bare count, or
// an object wrapping either under "cheers".
type Cheers struct {
	UserIDs []string
	Count   int
}

func (c *Cheers) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*c = Cheers{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '[':
		var ids []datamodel.ID
		if err := json.Unmarshal(data, &ids); err != nil {
			return err
		}
		c.UserIDs = datamodel.IDs(ids)
		c.Count = len(c.UserIDs)
	case '{':
		var wrapped struct {
			Cheers Cheers `json:"cheers"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return err
		}
		*c = wrapped.Cheers
	default:
		var n int
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		c.Count = n
	}
	return nil
}

func (c Cheers) MarshalJSON() ([]byte, error) {
	if c.UserIDs == nil {
		return json.Marshal(c.Count)
	}
	return json.Marshal(c.UserIDs)
}

type CreateRequest struct {
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	AuthorID     string   `json:"author_id,omitempty"`
	RecipientIDs []string `json:"recipient_ids"`
}

// UpdateRequest leaves nil fields untouched on the backend.
type UpdateRequest struct {
	Title        *string   `json:"title,omitempty"`
	Content      *string   `json:"content,omitempty"`
	RecipientIDs *[]string `json:"recipient_ids,omitempty"`
}

type CreateResponse struct {
	ID datamodel.ID `json:"id"`
}

type CommentRequest struct {
	UserID   string `json:"user_id"`
	Content  string `json:"content"`
	UserName string `json:"user_name,omitempty"`
}

type CheerRequest struct {
	UserID string `json:"user_id"`
}
