package report_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/frahmantamala/bragboard/internal"
	"github.com/frahmantamala/bragboard/internal/core/datamodel"
	reportDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/report"
	"github.com/frahmantamala/bragboard/internal/leaderboard"
	"github.com/frahmantamala/bragboard/internal/report"
	"github.com/frahmantamala/bragboard/internal/transport"
	"github.com/frahmantamala/bragboard/pkg/logger"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type mockAPI struct {
	submitted []reportDatamodel.Request
}

func (m *mockAPI) SubmitReport(_ context.Context, req reportDatamodel.Request) (*reportDatamodel.Response, error) {
	m.submitted = append(m.submitted, req)
	return &reportDatamodel.Response{ID: datamodel.ID("r1")}, nil
}

type staticLeaderboard []leaderboard.Entry

func (l staticLeaderboard) List(context.Context) ([]leaderboard.Entry, error) {
	return l, nil
}

var _ = Describe("Reports", func() {
	var (
		api     *mockAPI
		entries staticLeaderboard
		handler *report.Handler
	)

	BeforeEach(func() {
		api = &mockAPI{}
		entries = nil
		for i := 0; i < 12; i++ {
			entries = append(entries, leaderboard.Entry{
				UserID:        fmt.Sprint(i),
				FullName:      fmt.Sprintf("User %d", i),
				ShoutoutCount: 2,
				CheerCount:    1,
				Rank:          i + 1,
				Badge:         "none",
			})
		}
	})

	JustBeforeEach(func() {
		handler = report.NewHandler(
			transport.NewBaseHandler(logger.Discard()),
			report.NewService(api, entries, logger.Discard()),
		)
	})

	It("submits a report", func() {
		w := httptest.NewRecorder()
		body := `{"title": " Spam ", "content": "off topic", "targetType": "shoutout", "targetId": "5"}`
		handler.SubmitReport(w, httptest.NewRequest(http.MethodPost, "/reports", strings.NewReader(body)))

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(w.Body.String()).To(MatchJSON(`{"id": "r1"}`))
		Expect(api.submitted).To(Equal([]reportDatamodel.Request{{Title: "Spam", Content: "off topic", TargetType: "shoutout", TargetID: "5"}}))
	})

	It("lists every problem with a report", func() {
		err := report.SubmitReportDTO{TargetType: "team"}.Validate()
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		details, ok := appErr.Details.(internal.ValidationErrors)
		Expect(ok).To(BeTrue())
		Expect(details.Errors).To(HaveLen(4))
	})

	It("summarizes participation for admins", func() {
		w := httptest.NewRecorder()
		handler.GetReports(w, httptest.NewRequest(http.MethodGet, "/admin/reports", nil))
		Expect(w.Code).To(Equal(http.StatusOK))

		summary := report.Summarize(entries)
		Expect(summary.Participants).To(Equal(12))
		Expect(summary.TotalShoutouts).To(Equal(24))
		Expect(summary.TotalCheers).To(Equal(12))
		Expect(summary.Top).To(HaveLen(10))
		Expect(summary.Rows).To(HaveLen(12))
		Expect(summary.Rows[11]).To(Equal(report.Row{Rank: 12, FullName: "User 11", ShoutoutCount: 2}))
	})

	It("summarizes an empty leaderboard", func() {
		summary := report.Summarize(nil)
		Expect(summary.Top).To(BeEmpty())
		Expect(summary.Top).NotTo(BeNil())
		Expect(summary.Rows).NotTo(BeNil())
	})
})
