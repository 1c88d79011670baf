package notification

import "github.com/frahmantamala/bragboard/internal/core/datamodel"

type Notification struct {
	ID          datamodel.ID  `json:"id"`
	UserID      datamodel.ID  `json:"user_id"`
	ActorID     *datamodel.ID `json:"actor_id,omitempty"`
	Title       *string       `json:"title,omitempty"`
	Content     *string       `json:"content,omitempty"`
	RelatedType *string       `json:"related_type,omitempty"`
	RelatedID   *datamodel.ID `json:"related_id,omitempty"`
	IsRead      bool          `json:"is_read"`
	CreatedAt   string        `json:"created_at"`
}

type MarkAllResponse struct {
	Marked bool `json:"marked"`
	Count  int  `json:"count"`
}
