package report

import (
	"strings"

	"github.com/frahmantamala/bragboard/internal"
	reportDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/report"
	"github.com/frahmantamala/bragboard/internal/leaderboard"
)

const chartSize = 10

var targetTypes = []string{"shoutout", "comment", "user"}

// SubmitReportDTO flags a shoutout, comment or user for admin review.
type SubmitReportDTO struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	TargetType string `json:"targetType"`
	TargetID   string `json:"targetId"`
}

func (dto SubmitReportDTO) Validate() error {
	var errs []internal.ValidationError
	if strings.TrimSpace(dto.Title) == "" {
		errs = append(errs, internal.ValidationError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(dto.Content) == "" {
		errs = append(errs, internal.ValidationError{Field: "content", Message: "content is required"})
	}
	if !validTarget(dto.TargetType) {
		errs = append(errs, internal.ValidationError{Field: "targetType", Message: "target type must be one of shoutout, comment, user"})
	}
	if strings.TrimSpace(dto.TargetID) == "" {
		errs = append(errs, internal.ValidationError{Field: "targetId", Message: "target is required"})
	}
	if len(errs) > 0 {
		return internal.NewValidationError("Validation failed", internal.ErrCodeValidationFailed).
			WithDetails(internal.ValidationErrors{Errors: errs})
	}
	return nil
}

func (dto SubmitReportDTO) ToDataModel() reportDatamodel.Request {
	return reportDatamodel.Request{
		Title:      strings.TrimSpace(dto.Title),
		Content:    strings.TrimSpace(dto.Content),
		TargetType: dto.TargetType,
		TargetID:   strings.TrimSpace(dto.TargetID),
	}
}

func validTarget(t string) bool {
	for _, v := range targetTypes {
		if t == v {
			return true
		}
	}
	return false
}

type SubmitResponse struct {
	ID string `json:"id"`
}

// Row is one line of the participation report.
type Row struct {
	Rank          int    `json:"rank"`
	FullName      string `json:"fullName"`
	ShoutoutCount int    `json:"shoutoutCount"`
}

// Summary is the admin analytics view built from the leaderboard.
type Summary struct {
	Participants   int                 `json:"participants"`
	TotalShoutouts int                 `json:"totalShoutouts"`
	TotalCheers    int                 `json:"totalCheers"`
	Top            []leaderboard.Entry `json:"top"`
	Rows           []Row               `json:"rows"`
}

func Summarize(entries []leaderboard.Entry) Summary {
	s := Summary{
		Participants: len(entries),
		Top:          entries,
		Rows:         make([]Row, 0, len(entries)),
	}
	if len(s.Top) > chartSize {
		s.Top = s.Top[:chartSize]
	}
	for _, e := range entries {
		s.TotalShoutouts += e.ShoutoutCount
		s.TotalCheers += e.CheerCount
		s.Rows = append(s.Rows, Row{Rank: e.Rank, FullName: e.FullName, ShoutoutCount: e.ShoutoutCount})
	}
	if s.Top == nil {
		s.Top = []leaderboard.Entry{}
	}
	return s
}
