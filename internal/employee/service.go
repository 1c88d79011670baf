package employee

import (
	"context"
	"log/slog"

	userDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/user"
	"github.com/frahmantamala/bragboard/internal/user"
)

type API interface {
	ListEmployees(ctx context.Context) ([]userDatamodel.Employee, error)
	ToggleEmployeeStatus(ctx context.Context, id string) (*userDatamodel.Employee, error)
}

// Stats summarizes the directory for the admin overview.
type Stats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

func Summarize(employees []user.Employee) Stats {
	stats := Stats{Total: len(employees)}
	for _, e := range employees {
		if e.IsActive {
			stats.Active++
		}
	}
	stats.Inactive = stats.Total - stats.Active
	return stats
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

func (s *Service) List(ctx context.Context) ([]user.Employee, error) {
	data, err := s.api.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]user.Employee, 0, len(data))
	for _, d := range data {
		out = append(out, user.FromEmployee(d))
	}
	return out, nil
}

// Toggle flips an employee between active and inactive.
func (s *Service) Toggle(ctx context.Context, id string) (*user.Employee, error) {
	data, err := s.api.ToggleEmployeeStatus(ctx, id)
	if err != nil {
		return nil, err
	}
	emp := user.FromEmployee(*data)
	if emp.ID == "" {
		emp.ID = id
	}
	s.logger.Info("employee status toggled", "employee_id", emp.ID, "active", emp.IsActive)
	return &emp, nil
}
