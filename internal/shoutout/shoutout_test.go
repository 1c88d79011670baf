package shoutout_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/frahmantamala/bragboard/internal"
	shoutoutDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/shoutout"
	"github.com/frahmantamala/bragboard/internal/session"
	"github.com/frahmantamala/bragboard/internal/shoutout"
	"github.com/frahmantamala/bragboard/internal/transport"
	"github.com/frahmantamala/bragboard/internal/user"
	"github.com/frahmantamala/bragboard/pkg/logger"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func decode(raw string) shoutoutDatamodel.Shoutout {
	var s shoutoutDatamodel.Shoutout
	Expect(json.Unmarshal([]byte(raw), &s)).To(Succeed())
	return s
}

var _ = Describe("FromDataModel", func() {
	It("maps backend fields onto the view", func() {
		s := shoutout.FromDataModel(decode(`{
			"id": 7, "title": "Thanks", "content": "great demo", "category": "Innovation",
			"skills": ["go"], "author_id": 3, "recipient_ids": [4, "5"],
			"recipients": [{"id": 4, "full_name": "R One", "email": "r1@example.com"}],
			"comments": [{"id": 1, "user_id": 3, "user_name": "A", "content": "yay", "created_at": "2025-01-01T00:00:00Z"}],
			"cheers": [3, 4], "created_at": "2025-01-01T00:00:00Z"
		}`), fixedNow)

		Expect(s.ID).To(Equal("7"))
		Expect(s.Description).To(Equal("great demo"))
		Expect(s.Category).To(Equal("Innovation"))
		Expect(*s.CreatorID).To(Equal("3"))
		Expect(s.RecipientIDs).To(Equal([]string{"4", "5"}))
		Expect(s.Recipients).To(Equal([]shoutout.Recipient{{ID: "4", FullName: "R One", Email: "r1@example.com"}}))
		Expect(s.Comments[0].UserID).To(Equal("3"))
		Expect(s.Cheers).To(Equal([]string{"3", "4"}))
		Expect(s.CheerCount).To(Equal(2))
		Expect(s.CheeredBy("4")).To(BeTrue())
	})

	It("fills defaults for a bare record", func() {
		s := shoutout.FromDataModel(decode(`{"id": "9", "title": "Bare"}`), fixedNow)

		Expect(s.Description).To(Equal(""))
		Expect(s.Category).To(Equal("Teamwork"))
		Expect(s.Skills).To(BeEmpty())
		Expect(s.Skills).NotTo(BeNil())
		Expect(s.CreatorID).To(BeNil())
		Expect(s.RecipientIDs).To(Equal([]string{}))
		Expect(s.Comments).To(Equal([]shoutout.Comment{}))
		Expect(s.Cheers).To(Equal([]string{}))
		Expect(s.CreatedAt).To(Equal("2025-03-01T12:00:00Z"))
	})

	It("falls back to description when content is absent", func() {
		s := shoutout.FromDataModel(decode(`{"id": 1, "description": "legacy body"}`), fixedNow)
		Expect(s.Description).To(Equal("legacy body"))
	})

	It("keeps a numeric cheer count", func() {
		s := shoutout.FromDataModel(decode(`{"id": 1, "cheers": 4}`), fixedNow)
		Expect(s.Cheers).To(BeEmpty())
		Expect(s.CheerCount).To(Equal(4))
	})

	It("serializes missing collections as empty arrays", func() {
		data, err := json.Marshal(shoutout.FromDataModel(decode(`{"id": 1}`), fixedNow))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`"cheers":[]`))
		Expect(string(data)).To(ContainSubstring(`"creatorId":null`))
	})
})

var _ = Describe("Service", func() {
	var (
		ctx     context.Context
		api     *MockAPI
		service *shoutout.Service
	)

	BeforeEach(func() {
		ctx = context.Background()
		api = NewMockAPI()
		service = shoutout.NewService(api, logger.Discard()).WithClock(func() time.Time { return fixedNow })
	})

	It("returns nil for a missing shoutout", func() {
		s, err := service.Get(ctx, "404")
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(BeNil())
	})

	It("propagates other backend failures", func() {
		api.failError = errors.New("boom")
		_, err := service.Get(ctx, "1")
		Expect(err).To(MatchError("boom"))
	})

	It("validates and creates a shoutout for the author", func() {
		_, err := service.Create(ctx, "1", shoutout.CreateShoutoutDTO{Title: " ", Content: ""})
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.GetDetailedMessage()).To(Equal("title is required; content is required"))
		Expect(api.created).To(BeEmpty())

		id, err := service.Create(ctx, "1", shoutout.CreateShoutoutDTO{Title: "Thanks", Content: "for the help"})
		Expect(err).NotTo(HaveOccurred())
		Expect(id).To(Equal("100"))
		Expect(api.created).To(Equal([]shoutoutDatamodel.CreateRequest{{
			Title: "Thanks", Content: "for the help", AuthorID: "1", RecipientIDs: []string{},
		}}))
	})

	It("rejects an empty update", func() {
		err := service.Update(ctx, "1", shoutout.UpdateShoutoutDTO{})
		Expect(err).To(HaveOccurred())
		Expect(api.updated).To(BeEmpty())
	})

	It("reports whether the user is cheering after a toggle", func() {
		api.cheers = shoutoutDatamodel.Cheers{UserIDs: []string{"2", "1"}, Count: 2}
		resp, err := service.Cheer(ctx, "7", "1")
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.Cheered).To(BeTrue())
		Expect(resp.CheerCount).To(Equal(2))
		Expect(api.lastCheer).To(Equal("7:1"))
	})
})

var _ = Describe("Handler", func() {
	var (
		api     *MockAPI
		handler *shoutout.Handler
		router  *chi.Mux
	)

	BeforeEach(func() {
		api = NewMockAPI()
		service := shoutout.NewService(api, logger.Discard()).WithClock(func() time.Time { return fixedNow })
		sess := staticSession{session.Session{
			IsAuthenticated: true,
			User:            &user.User{ID: "1", FullName: "A B", Role: user.RoleEmployee},
		}}
		handler = shoutout.NewHandler(transport.NewBaseHandler(logger.Discard()), service, sess)

		router = chi.NewRouter()
		router.Get("/dashboard", handler.GetFeed)
		router.Post("/dashboard/shoutouts", handler.CreateShoutout)
		router.Get("/shoutouts/{id}", handler.GetShoutout)
		router.Delete("/shoutouts/{id}", handler.DeleteShoutout)
		router.Post("/shoutouts/{id}/comments", handler.AddComment)
	})

	It("renders a missing shoutout as an empty state", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shoutouts/404", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"shoutout": null}`))
	})

	It("renders an existing shoutout", func() {
		api.shoutouts["7"] = decode(`{"id": 7, "title": "Thanks", "content": "body"}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shoutouts/7", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp shoutout.DetailResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Shoutout.Description).To(Equal("body"))
	})

	It("creates a shoutout as the signed-in user", func() {
		w := httptest.NewRecorder()
		body := strings.NewReader(`{"title": "Thanks", "content": "for the help", "recipientIds": ["2"]}`)
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/dashboard/shoutouts", body))

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(w.Body.String()).To(MatchJSON(`{"id": "100"}`))
		Expect(api.created[0].AuthorID).To(Equal("1"))
		Expect(api.created[0].RecipientIDs).To(Equal([]string{"2"}))
	})

	It("shows validation messages inline", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/shoutouts/7/comments", strings.NewReader(`{"content": "  "}`)))

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("comment cannot be empty"))
	})

	It("comments with the user's name", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/shoutouts/7/comments", strings.NewReader(`{"content": "nice"}`)))

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(api.comments).To(Equal([]shoutoutDatamodel.CommentRequest{{UserID: "1", Content: "nice", UserName: "A B"}}))
	})

	It("hides backend failures behind a generic message", func() {
		api.failError = errors.New("connection refused")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		Expect(w.Code).To(Equal(http.StatusBadGateway))
		Expect(w.Body.String()).NotTo(ContainSubstring("connection refused"))
	})

	It("deletes a shoutout", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/shoutouts/7", nil))
		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(api.deleted).To(Equal([]string{"7"}))
	})
})

var _ = Describe("Filter", func() {
	It("matches title or description without case", func() {
		all := []shoutout.Shoutout{
			{ID: "1", Title: "Great Demo", Description: "x"},
			{ID: "2", Title: "Other", Description: "helped with the demo"},
			{ID: "3", Title: "Unrelated", Description: "nothing"},
		}
		Expect(shoutout.Filter(all, " DEMO ")).To(HaveLen(2))
		Expect(shoutout.Filter(all, "")).To(HaveLen(3))
	})
})
