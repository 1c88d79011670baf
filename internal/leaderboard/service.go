package leaderboard

import (
	"context"
	"log/slog"

	leaderboardDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/leaderboard"
)

type API interface {
	Leaderboard(ctx context.Context) ([]leaderboardDatamodel.Entry, error)
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

func (s *Service) List(ctx context.Context) ([]Entry, error) {
	data, err := s.api.Leaderboard(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(data))
	for i, d := range data {
		out = append(out, FromDataModel(d, i))
	}
	s.logger.Debug("retrieved leaderboard", "count", len(out))
	return out, nil
}

// Top returns at most n entries in backend order.
func (s *Service) Top(ctx context.Context, n int) ([]Entry, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}
