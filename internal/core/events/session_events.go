package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeSessionLoggedIn    = "session.logged_in"
	EventTypeSessionLoggedOut   = "session.logged_out"
	EventTypeSessionUserUpdated = "session.user_updated"
	EventTypeSessionRestored    = "session.restored"
)

// SessionEvent records one transition of the client session.
type SessionEvent struct {
	BaseEvent
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func NewSessionEvent(eventType, userID, role string) *SessionEvent {
	return &SessionEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      eventType,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"user_id": userID,
				"role":    role,
			},
		},
		UserID: userID,
		Role:   role,
	}
}

// SessionEventTypes lists every session transition.
var SessionEventTypes = []string{
	EventTypeSessionLoggedIn,
	EventTypeSessionLoggedOut,
	EventTypeSessionUserUpdated,
	EventTypeSessionRestored,
}

// AuditSessions logs every session transition published on bus.
func AuditSessions(bus *EventBus, logger *slog.Logger) {
	for _, eventType := range SessionEventTypes {
		bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
			attrs := []any{"event_type", event.EventType(), "event_id", event.EventID()}
			if se, ok := event.(*SessionEvent); ok {
				attrs = append(attrs, "user_id", se.UserID, "role", se.Role)
			}
			logger.InfoContext(ctx, "session event", attrs...)
			return nil
		})
	}
}
