package notification

import (
	notificationDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/notification"
)

type Notification struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	ActorID     *string `json:"actorId"`
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	RelatedType *string `json:"relatedType"`
	RelatedID   *string `json:"relatedId"`
	IsRead      bool    `json:"isRead"`
	CreatedAt   string  `json:"createdAt"`
}

func FromDataModel(n notificationDatamodel.Notification) Notification {
	out := Notification{
		ID:          n.ID.String(),
		UserID:      n.UserID.String(),
		Title:       n.Title,
		Content:     n.Content,
		RelatedType: n.RelatedType,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt,
	}
	if n.ActorID != nil {
		actor := n.ActorID.String()
		out.ActorID = &actor
	}
	if n.RelatedID != nil {
		related := n.RelatedID.String()
		out.RelatedID = &related
	}
	return out
}

// Unread counts the notifications not yet read.
func Unread(ns []Notification) int {
	count := 0
	for _, n := range ns {
		if !n.IsRead {
			count++
		}
	}
	return count
}
