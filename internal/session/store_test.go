package session_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/frahmantamala/bragboard/internal"
	userDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/user"
	"github.com/frahmantamala/bragboard/internal/core/events"
	"github.com/frahmantamala/bragboard/internal/session"
	"github.com/frahmantamala/bragboard/internal/user"
	"github.com/frahmantamala/bragboard/pkg/logger"
	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recorder struct {
	mu       sync.Mutex
	paths    []string
	messages []string
	levels   []session.Level
}

func (r *recorder) Navigate(_ context.Context, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *recorder) Notify(_ context.Context, level session.Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.levels = append(r.levels, level)
	r.messages = append(r.messages, message)
}

func signedToken(expiresAt time.Time) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		Subject:   "1",
	}).SignedString([]byte("test-secret"))
	Expect(err).NotTo(HaveOccurred())
	return token
}

const storedUser = `{"id":"1","email":"a@example.com","fullName":"A B","role":"EMPLOYEE","isActive":true,"avatarUrl":null,"createdAt":"2024-01-01T00:00:00Z","points":10,"badges":[],"skills":{}}`

var _ = Describe("Store", func() {
	var (
		ctx     context.Context
		storage *memoryStorage
		gateway *fakeGateway
		rec     *recorder
		bus     *events.EventBus
		now     time.Time
		store   *session.Store
	)

	newStore := func() *session.Store {
		return session.NewStore(storage, gateway, session.Options{
			Navigator: rec,
			Notifier:  rec,
			Events:    bus,
			Logger:    logger.Discard(),
			Clock:     func() time.Time { return now },
		})
	}

	BeforeEach(func() {
		ctx = context.Background()
		storage = newMemoryStorage(nil)
		gateway = &fakeGateway{}
		rec = &recorder{}
		bus = events.NewEventBus(logger.Discard())
		now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		store = newStore()
	})

	It("starts in the loading state", func() {
		snap := store.Snapshot()
		Expect(snap.IsLoading).To(BeTrue())
		Expect(snap.IsAuthenticated).To(BeFalse())
		Expect(snap.User).To(BeNil())
	})

	Describe("Restore", func() {
		It("finishes unauthenticated when nothing is persisted", func() {
			restored, err := store.Restore(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(restored).To(Equal(session.Empty()))
			Expect(store.Snapshot().IsLoading).To(BeFalse())
		})

		It("restores a persisted credential and user", func() {
			storage = newMemoryStorage(map[string]string{
				session.KeyAccessToken: "t1",
				session.KeyUser:        storedUser,
			})
			store = newStore()

			restored, err := store.Restore(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(restored.IsAuthenticated).To(BeTrue())
			Expect(restored.IsLoading).To(BeFalse())
			Expect(restored.AccessToken).To(Equal("t1"))
			Expect(restored.UserID()).To(Equal("1"))
			Expect(restored.User.CreatedAt).To(Equal("2024-01-01T00:00:00Z"))
			Expect(restored.PointsBalance()).To(Equal(10))
		})

		It("requires both the credential and the user", func() {
			storage = newMemoryStorage(map[string]string{session.KeyAccessToken: "t1"})
			store = newStore()

			restored, err := store.Restore(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(restored.IsAuthenticated).To(BeFalse())
		})

		It("moves a credential stored under the legacy key", func() {
			storage = newMemoryStorage(map[string]string{
				session.KeyLegacyToken: "old",
				session.KeyUser:        storedUser,
			})
			store = newStore()

			restored, err := store.Restore(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(restored.IsAuthenticated).To(BeTrue())
			Expect(restored.AccessToken).To(Equal("old"))
			Expect(storage.keys()).To(Equal([]string{session.KeyAccessToken, session.KeyUser}))
		})

		It("clears an expired JWT credential", func() {
			storage = newMemoryStorage(map[string]string{
				session.KeyAccessToken: signedToken(now.Add(-time.Hour)),
				session.KeyUser:        storedUser,
			})
			store = newStore()

			restored, err := store.Restore(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(restored.IsAuthenticated).To(BeFalse())
			Expect(storage.keys()).To(BeEmpty())
		})

		It("keeps an unexpired JWT credential", func() {
			token := signedToken(now.Add(time.Hour))
			storage = newMemoryStorage(map[string]string{
				session.KeyAccessToken: token,
				session.KeyUser:        storedUser,
			})
			store = newStore()

			restored, err := store.Restore(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(restored.AccessToken).To(Equal(token))
		})

		It("clears an unreadable user record", func() {
			storage = newMemoryStorage(map[string]string{
				session.KeyAccessToken: "t1",
				session.KeyUser:        "[1,2]",
			})
			store = newStore()

			restored, err := store.Restore(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(restored.IsAuthenticated).To(BeFalse())
			Expect(storage.keys()).To(BeEmpty())
		})

		It("leaves the loading state when storage fails", func() {
			storage.failGet = errStorageDown
			restored, err := store.Restore(ctx)

			Expect(err).To(MatchError(errStorageDown))
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeStorageFailure))
			Expect(restored.IsLoading).To(BeFalse())
			Expect(store.Snapshot().IsLoading).To(BeFalse())
		})
	})

	Describe("Login", func() {
		BeforeEach(func() {
			gateway.loginResp = &userDatamodel.LoginResponse{
				Token: "t1",
				User:  json.RawMessage(`{"id":1,"email":"a@example.com","full_name":"A B","role":"EMPLOYEE"}`),
			}
		})

		It("authenticates, persists and lands on the employee home", func() {
			sess, err := store.Login(ctx, "a@example.com", "pw", user.RoleEmployee)
			Expect(err).NotTo(HaveOccurred())

			Expect(gateway.lastLogin).To(Equal(userDatamodel.LoginRequest{Email: "a@example.com", Password: "pw"}))
			Expect(sess.IsAuthenticated).To(BeTrue())
			Expect(sess.UserID()).To(Equal("1"))
			Expect(sess.DisplayName()).To(Equal("A B"))
			Expect(sess.User.IsActive).To(BeTrue())
			Expect(sess.User.CreatedAt).To(Equal(now.Format(time.RFC3339Nano)))
			Expect(rec.paths).To(Equal([]string{"/dashboard"}))
			Expect(store.Snapshot()).To(Equal(sess))
		})

		It("writes the credential under accessToken only, readable through the legacy view", func() {
			_, err := store.Login(ctx, "a@example.com", "pw", user.RoleEmployee)
			Expect(err).NotTo(HaveOccurred())

			Expect(storage.keys()).To(Equal([]string{session.KeyAccessToken, session.KeyUser}))
			current, _, _ := storage.Get(ctx, session.KeyAccessToken)
			legacy, ok, err := session.LegacyStorage(storage).Get(ctx, session.KeyLegacyToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(legacy).To(Equal(current))
			Expect(legacy).To(Equal("t1"))
		})

		It("persists the canonical user", func() {
			_, err := store.Login(ctx, "a@example.com", "pw", user.RoleEmployee)
			Expect(err).NotTo(HaveOccurred())

			raw, _, _ := storage.Get(ctx, session.KeyUser)
			var persisted map[string]interface{}
			Expect(json.Unmarshal([]byte(raw), &persisted)).To(Succeed())
			Expect(persisted).To(HaveKeyWithValue("id", "1"))
			Expect(persisted).To(HaveKeyWithValue("fullName", "A B"))
			Expect(persisted).NotTo(HaveKey("full_name"))
		})

		It("lands admins on the admin home regardless of the requested role", func() {
			gateway.loginResp.User = json.RawMessage(`{"id":"9","email":"root@example.com","role":"ADMIN"}`)
			_, err := store.Login(ctx, "root@example.com", "pw", user.RoleEmployee)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.paths).To(Equal([]string{"/admin"}))
		})

		It("returns backend errors unchanged and leaves the session alone", func() {
			_, err := store.Restore(ctx)
			Expect(err).NotTo(HaveOccurred())

			backendErr := errors.New("invalid credentials")
			gateway.loginErr = backendErr
			gateway.loginResp = nil

			sess, err := store.Login(ctx, "a@example.com", "bad", user.RoleEmployee)
			Expect(err).To(BeIdenticalTo(backendErr))
			Expect(sess).To(Equal(session.Empty()))
			Expect(storage.keys()).To(BeEmpty())
			Expect(rec.paths).To(BeEmpty())
		})

		It("does not authenticate when the credential cannot be persisted", func() {
			storage.failSet = errStorageDown
			sess, err := store.Login(ctx, "a@example.com", "pw", user.RoleEmployee)
			Expect(err).To(MatchError(errStorageDown))
			Expect(sess.IsAuthenticated).To(BeFalse())
		})

		It("publishes a login event", func() {
			var got *events.SessionEvent
			bus.Subscribe(events.EventTypeSessionLoggedIn, func(_ context.Context, e events.Event) error {
				got = e.(*events.SessionEvent)
				return nil
			})
			_, err := store.Login(ctx, "a@example.com", "pw", user.RoleEmployee)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).NotTo(BeNil())
			Expect(got.UserID).To(Equal("1"))
			Expect(got.Role).To(Equal("EMPLOYEE"))
		})

		It("prefers a navigator scoped to the context", func() {
			scoped := &recorder{}
			_, err := store.Login(session.WithNavigator(ctx, scoped), "a@example.com", "pw", user.RoleEmployee)
			Expect(err).NotTo(HaveOccurred())
			Expect(scoped.paths).To(Equal([]string{"/dashboard"}))
			Expect(rec.paths).To(BeEmpty())
		})
	})

	Describe("Logout", func() {
		It("clears every session key and returns to the initial state", func() {
			storage = newMemoryStorage(map[string]string{
				session.KeyAccessToken: "t1",
				session.KeyLegacyToken: "old",
				session.KeyUser:        storedUser,
				"theme":                "dark",
			})
			store = newStore()
			_, err := store.Restore(ctx)
			Expect(err).NotTo(HaveOccurred())

			Expect(store.Logout(ctx)).To(Succeed())
			Expect(storage.keys()).To(Equal([]string{"theme"}))
			Expect(store.Snapshot()).To(Equal(session.Empty()))
			Expect(rec.paths).To(Equal([]string{"/login"}))
		})
	})

	Describe("UpdateUser", func() {
		BeforeEach(func() {
			storage = newMemoryStorage(map[string]string{
				session.KeyAccessToken: "t1",
				session.KeyUser:        storedUser,
			})
			store = newStore()
			_, err := store.Restore(ctx)
			Expect(err).NotTo(HaveOccurred())
		})

		It("is idempotent for the same payload", func() {
			payload, err := user.ParseRecord([]byte(`{"id":1,"email":"a@example.com","full_name":"A C","role":"EMPLOYEE"}`))
			Expect(err).NotTo(HaveOccurred())

			first, err := store.UpdateUser(ctx, payload)
			Expect(err).NotTo(HaveOccurred())
			persistedFirst, _, _ := storage.Get(ctx, session.KeyUser)

			now = now.Add(time.Hour)
			second, err := store.UpdateUser(ctx, payload)
			Expect(err).NotTo(HaveOccurred())
			persistedSecond, _, _ := storage.Get(ctx, session.KeyUser)

			Expect(persistedSecond).To(Equal(persistedFirst))
			Expect(second).To(Equal(first))
			Expect(second.DisplayName()).To(Equal("A C"))
			Expect(second.User.CreatedAt).To(Equal("2024-01-01T00:00:00Z"))
		})

		It("leaves the credential untouched", func() {
			sess, err := store.UpdateUser(ctx, user.LocalRecord{ID: "1", Email: "a@example.com", Role: "EMPLOYEE"})
			Expect(err).NotTo(HaveOccurred())
			Expect(sess.AccessToken).To(Equal("t1"))
			Expect(sess.IsAuthenticated).To(BeTrue())
		})
	})

	Describe("Signup", func() {
		It("notifies and navigates to login without authenticating", func() {
			Expect(store.Signup(ctx, "n@example.com", "New Person", "pw", user.RoleEmployee)).To(Succeed())

			Expect(gateway.lastSignup).To(Equal(userDatamodel.SignupRequest{
				Email: "n@example.com", FullName: "New Person", Password: "pw", Role: "EMPLOYEE",
			}))
			Expect(rec.levels).To(Equal([]session.Level{session.LevelSuccess}))
			Expect(rec.paths).To(Equal([]string{"/login"}))
			Expect(store.Snapshot().IsAuthenticated).To(BeFalse())
		})

		It("surfaces the first validation message", func() {
			gateway.signupErr = &rejected{body: []byte(`{"detail":[{"msg":"email taken","loc":["body","email"]}]}`)}

			err := store.Signup(ctx, "n@example.com", "New Person", "pw", user.RoleEmployee)
			Expect(err).To(MatchError("email taken"))
			Expect(rec.messages).To(Equal([]string{"email taken"}))
			Expect(rec.levels).To(Equal([]session.Level{session.LevelError}))
			Expect(rec.paths).To(BeEmpty())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeSignupRejected))
		})
	})
})

var _ = Describe("SignupError", func() {
	It("joins every validation message", func() {
		err := session.SignupError(&rejected{body: []byte(`{"detail":[{"msg":"email taken","loc":["body","email"]},{"msg":"too short","loc":["body","password"]}]}`)})
		Expect(err.GetDetailedMessage()).To(Equal("email taken; too short"))
		details := err.Details.(internal.ValidationErrors)
		Expect(details.Errors[1].Field).To(Equal("password"))
	})

	It("uses a string detail as is", func() {
		err := session.SignupError(&rejected{body: []byte(`{"detail":"Email already registered"}`)})
		Expect(err.Error()).To(Equal("Email already registered"))
	})

	It("shows an object detail as JSON", func() {
		err := session.SignupError(&rejected{body: []byte(`{"detail": {"reason": "closed"}}`)})
		Expect(err.Error()).To(Equal(`{"reason":"closed"}`))
	})

	It("falls back to the error text", func() {
		err := session.SignupError(errors.New("connection refused"))
		Expect(err.Error()).To(Equal("connection refused"))
		Expect(err.Type).To(Equal(internal.ErrorTypeExternal))
	})

	It("falls back when the body carries no detail", func() {
		err := session.SignupError(&rejected{body: []byte(`<html>bad gateway</html>`)})
		Expect(err.Error()).To(Equal("API request failed with status 400"))
	})
})

var _ = Describe("LegacyStorage", func() {
	It("aliases the legacy key on write and delete", func() {
		ctx := context.Background()
		storage := newMemoryStorage(nil)
		legacy := session.LegacyStorage(storage)

		Expect(legacy.Set(ctx, session.KeyLegacyToken, "abc")).To(Succeed())
		Expect(storage.keys()).To(Equal([]string{session.KeyAccessToken}))

		token, err := session.PersistedCredential{Storage: storage}.AccessToken(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(token).To(Equal("abc"))

		Expect(legacy.Delete(ctx, session.KeyLegacyToken)).To(Succeed())
		Expect(storage.keys()).To(BeEmpty())
	})
})

var _ = Describe("DetailMessage", func() {
	It("joins the backend reasons", func() {
		msg, ok := session.DetailMessage(&rejected{body: []byte(`{"detail":[{"msg":"a"},{"msg":"b"}]}`)})
		Expect(ok).To(BeTrue())
		Expect(msg).To(Equal("a; b"))
	})

	It("reports errors without a body", func() {
		_, ok := session.DetailMessage(errors.New("timeout"))
		Expect(ok).To(BeFalse())
	})
})
