package notification

import (
	"context"
	"log/slog"

	notificationDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/notification"
)

type API interface {
	ListNotifications(ctx context.Context) ([]notificationDatamodel.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) (*notificationDatamodel.Notification, error)
	MarkAllNotificationsRead(ctx context.Context) (*notificationDatamodel.MarkAllResponse, error)
}

type Service struct {
	api    API
	logger *slog.Logger
}

func NewService(api API, logger *slog.Logger) *Service {
	return &Service{
		api:    api,
		logger: logger,
	}
}

func (s *Service) List(ctx context.Context) ([]Notification, error) {
	data, err := s.api.ListNotifications(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Notification, 0, len(data))
	for _, d := range data {
		out = append(out, FromDataModel(d))
	}
	return out, nil
}

func (s *Service) MarkRead(ctx context.Context, id string) (*Notification, error) {
	data, err := s.api.MarkNotificationRead(ctx, id)
	if err != nil {
		return nil, err
	}
	out := FromDataModel(*data)
	if out.ID == "" {
		out.ID = id
	}
	s.logger.Debug("notification marked read", "notification_id", id)
	return &out, nil
}

// MarkAllRead returns how many notifications the backend marked.
func (s *Service) MarkAllRead(ctx context.Context) (int, error) {
	resp, err := s.api.MarkAllNotificationsRead(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.Debug("notifications marked read", "count", resp.Count)
	return resp.Count, nil
}
