package shoutout

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/bragboard/internal/apiclient"
	shoutoutDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/shoutout"
)

type API interface {
	ListShoutouts(ctx context.Context) ([]shoutoutDatamodel.Shoutout, error)
	GetShoutout(ctx context.Context, id string) (*shoutoutDatamodel.Shoutout, error)
	CreateShoutout(ctx context.Context, req shoutoutDatamodel.CreateRequest) (*shoutoutDatamodel.CreateResponse, error)
	UpdateShoutout(ctx context.Context, id string, req shoutoutDatamodel.UpdateRequest) error
	DeleteShoutout(ctx context.Context, id string) error
	AddComment(ctx context.Context, shoutoutID string, req shoutoutDatamodel.CommentRequest) (*shoutoutDatamodel.Comment, error)
	ToggleCheer(ctx context.Context, shoutoutID, userID string) (shoutoutDatamodel.Cheers, error)
}

type Service struct {
	api    API
	logger *slog.Logger
	now    func() time.Time
}

func NewService(api API, logger *slog.Logger) *Service {
	return &Service{
		api:    api,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock fixes the time used for defaulted timestamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) List(ctx context.Context) ([]Shoutout, error) {
	data, err := s.api.ListShoutouts(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]Shoutout, 0, len(data))
	for _, d := range data {
		out = append(out, FromDataModel(d, now))
	}
	s.logger.Debug("retrieved shoutouts", "count", len(out))
	return out, nil
}

// Get returns nil without error when the shoutout does not exist.
func (s *Service) Get(ctx context.Context, id string) (*Shoutout, error) {
	data, err := s.api.GetShoutout(ctx, id)
	if err != nil {
		if apiclient.IsNotFound(err) {
			s.logger.Debug("shoutout not found", "shoutout_id", id)
			return nil, nil
		}
		return nil, err
	}
	out := FromDataModel(*data, s.now())
	return &out, nil
}

func (s *Service) Create(ctx context.Context, authorID string, dto CreateShoutoutDTO) (string, error) {
	if err := dto.Validate(); err != nil {
		return "", err
	}
	resp, err := s.api.CreateShoutout(ctx, dto.ToDataModel(authorID))
	if err != nil {
		return "", err
	}
	s.logger.Info("shoutout created", "shoutout_id", resp.ID.String(), "author_id", authorID)
	return resp.ID.String(), nil
}

func (s *Service) Update(ctx context.Context, id string, dto UpdateShoutoutDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}
	if err := s.api.UpdateShoutout(ctx, id, dto.ToDataModel()); err != nil {
		return err
	}
	s.logger.Info("shoutout updated", "shoutout_id", id)
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteShoutout(ctx, id); err != nil {
		return err
	}
	s.logger.Info("shoutout deleted", "shoutout_id", id)
	return nil
}

func (s *Service) Comment(ctx context.Context, shoutoutID, userID, userName string, dto CommentDTO) (*Comment, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	data, err := s.api.AddComment(ctx, shoutoutID, shoutoutDatamodel.CommentRequest{
		UserID:   userID,
		Content:  dto.Content,
		UserName: userName,
	})
	if err != nil {
		return nil, err
	}
	comment := CommentFromDataModel(*data)
	if comment.ShoutoutID == "" {
		comment.ShoutoutID = shoutoutID
	}
	return &comment, nil
}

// Cheer toggles the user's cheer on a shoutout.
func (s *Service) Cheer(ctx context.Context, shoutoutID, userID string) (CheerResponse, error) {
	cheers, err := s.api.ToggleCheer(ctx, shoutoutID, userID)
	if err != nil {
		return CheerResponse{}, err
	}
	resp := CheerResponse{
		Cheers:     append([]string{}, cheers.UserIDs...),
		CheerCount: cheers.Count,
	}
	for _, id := range resp.Cheers {
		if id == userID {
			resp.Cheered = true
			break
		}
	}
	return resp, nil
}
