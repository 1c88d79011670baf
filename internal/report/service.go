package report

import (
	"context"
	"log/slog"

	reportDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/report"
	"github.com/frahmantamala/bragboard/internal/leaderboard"
)

type API interface {
	SubmitReport(ctx context.Context, req reportDatamodel.Request) (*reportDatamodel.Response, error)
}

type Leaderboard interface {
	List(ctx context.Context) ([]leaderboard.Entry, error)
}

type Service struct {
	api         API
	leaderboard Leaderboard
	logger      *slog.Logger
}

func NewService(api API, lb Leaderboard, logger *slog.Logger) *Service {
	return &Service{
		api:         api,
		leaderboard: lb,
		logger:      logger,
	}
}

func (s *Service) Submit(ctx context.Context, dto SubmitReportDTO) (string, error) {
	if err := dto.Validate(); err != nil {
		return "", err
	}
	resp, err := s.api.SubmitReport(ctx, dto.ToDataModel())
	if err != nil {
		return "", err
	}
	s.logger.Info("report submitted", "report_id", resp.ID.String(), "target_type", dto.TargetType, "target_id", dto.TargetID)
	return resp.ID.String(), nil
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	entries, err := s.leaderboard.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(entries), nil
}
