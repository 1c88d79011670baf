package leaderboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	leaderboardDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/leaderboard"
	"github.com/frahmantamala/bragboard/internal/leaderboard"
	"github.com/frahmantamala/bragboard/internal/transport"
	"github.com/frahmantamala/bragboard/pkg/logger"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type mockAPI struct {
	entries []leaderboardDatamodel.Entry
	err     error
}

func (m *mockAPI) Leaderboard(context.Context) ([]leaderboardDatamodel.Entry, error) {
	return m.entries, m.err
}

func decodeEntries(raw string) []leaderboardDatamodel.Entry {
	var out []leaderboardDatamodel.Entry
	Expect(json.Unmarshal([]byte(raw), &out)).To(Succeed())
	return out
}

var _ = Describe("Leaderboard", func() {
	var (
		api     *mockAPI
		service *leaderboard.Service
	)

	BeforeEach(func() {
		api = &mockAPI{}
		service = leaderboard.NewService(api, logger.Discard())
	})

	It("translates a complete row", func() {
		api.entries = decodeEntries(`[{"id": 4, "full_name": "R One", "avatar_url": "/a.png",
			"shoutout_count": 3, "cheer_count": 9, "points": 120, "rank": 2, "badge": "gold"}]`)

		entries, err := service.List(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].UserID).To(Equal("4"))
		Expect(entries[0].FullName).To(Equal("R One"))
		Expect(*entries[0].AvatarURL).To(Equal("/a.png"))
		Expect(entries[0].ShoutoutCount).To(Equal(3))
		Expect(entries[0].CheerCount).To(Equal(9))
		Expect(entries[0].Points).To(Equal(120))
		Expect(entries[0].Rank).To(Equal(2))
		Expect(entries[0].Badge).To(Equal("gold"))
	})

	It("defaults missing fields from the position", func() {
		api.entries = decodeEntries(`[{"id": 9, "name": "First"}, {"name": "Second", "cheers": 5}]`)

		entries, err := service.List(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(entries[0]).To(Equal(leaderboard.Entry{UserID: "9", FullName: "First", Rank: 1, Badge: "none"}))
		Expect(entries[1].UserID).To(Equal("1"))
		Expect(entries[1].Rank).To(Equal(2))
		Expect(entries[1].CheerCount).To(Equal(5))
	})

	It("prefers full_name over name", func() {
		entry := leaderboard.FromDataModel(decodeEntries(`[{"full_name": "", "name": "Other"}]`)[0], 0)
		Expect(entry.FullName).To(Equal(""))
	})

	It("limits the top entries", func() {
		api.entries = decodeEntries(`[{"id": 1}, {"id": 2}, {"id": 3}]`)
		top, err := service.Top(context.Background(), 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(top).To(HaveLen(2))
	})

	It("renders the leaderboard screen", func() {
		api.entries = decodeEntries(`[{"id": 1, "full_name": "A"}]`)
		handler := leaderboard.NewHandler(transport.NewBaseHandler(logger.Discard()), service)

		w := httptest.NewRecorder()
		handler.GetLeaderboard(w, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"entries": [{"userId": "1", "fullName": "A", "avatarUrl": null,
			"shoutoutCount": 0, "cheerCount": 0, "points": 0, "rank": 1, "badge": "none"}]}`))
	})

	It("surfaces failures generically", func() {
		api.err = errors.New("dial tcp: refused")
		handler := leaderboard.NewHandler(transport.NewBaseHandler(logger.Discard()), service)

		w := httptest.NewRecorder()
		handler.GetLeaderboard(w, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))
		Expect(w.Code).To(Equal(http.StatusBadGateway))
		Expect(w.Body.String()).To(ContainSubstring("Something went wrong"))
	})
})
