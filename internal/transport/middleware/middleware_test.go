package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/frahmantamala/bragboard/internal"
	"github.com/frahmantamala/bragboard/pkg/logger"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LoggingMiddleware", func() {
	var (
		logs    *bytes.Buffer
		handler http.Handler
	)

	BeforeEach(func() {
		logs = &bytes.Buffer{}
		lg := slog.New(slog.NewTextHandler(logs, nil))
		handler = LoggingMiddleware(lg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"session":{"user":{"id":"1"}},"accessToken":"abc.def.ghi"}`))
		}))
	})

	It("masks credentials in requests and responses", func() {
		body := strings.NewReader(`{"email":"a@example.com","password":"hunter2"}`)
		req := httptest.NewRequest(http.MethodPost, "/reset-password?token=secret-token", body)
		req.Header.Set("Authorization", "Bearer abc.def.ghi")

		handler.ServeHTTP(httptest.NewRecorder(), req)

		out := logs.String()
		Expect(out).To(ContainSubstring("a@example.com"))
		Expect(out).NotTo(ContainSubstring("hunter2"))
		Expect(out).NotTo(ContainSubstring("secret-token"))
		Expect(out).NotTo(ContainSubstring("abc.def.ghi"))
		Expect(out).To(ContainSubstring(filtered))
	})

	It("leaves the request body readable for the handler", func() {
		var seen string
		h := LoggingMiddleware(logger.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			buf := &bytes.Buffer{}
			_, _ = buf.ReadFrom(r.Body)
			seen = buf.String()
		}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"x"}`)))
		Expect(seen).To(Equal(`{"email":"x"}`))
	})
})

var _ = Describe("RequestID", func() {
	It("reuses the caller's trace id", func() {
		var traceID string
		h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID = internal.TraceIDFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.Header.Set(TraceHeader, "trace-123")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		Expect(traceID).To(Equal("trace-123"))
		Expect(w.Header().Get(TraceHeader)).To(Equal("trace-123"))
	})

	It("creates one when missing", func() {
		w := httptest.NewRecorder()
		RequestID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		Expect(w.Header().Get(TraceHeader)).NotTo(BeEmpty())
	})
})

var _ = Describe("RecoveryMiddleware", func() {
	It("answers a panic with an internal error", func() {
		h := RecoveryMiddleware(logger.Discard())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).NotTo(ContainSubstring("boom"))
	})
})
