package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/frahmantamala/bragboard/internal"
	"github.com/frahmantamala/bragboard/internal/apiclient"
	"github.com/frahmantamala/bragboard/internal/session"
	"github.com/frahmantamala/bragboard/pkg/logger"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("loadConfig", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		GinkgoT().Setenv("APP_ENV", "")
		GinkgoT().Setenv("DOCKER_ENV", "")
	})

	It("falls back to defaults without a config file", func() {
		cfg, err := loadConfig(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.API.BaseURL).To(Equal(internal.DefaultAPIBaseURL))
		Expect(cfg.Storage.Path).To(Equal(internal.DefaultStoragePath))
		Expect(cfg.Console.Port).To(Equal(internal.DefaultConsolePort))
	})

	It("overlays config.yml on the defaults", func() {
		yml := "api:\n  base_url: https://brag.example.com\n  timeout: 3s\nconsole:\n  port: 4000\n"
		Expect(os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o600)).To(Succeed())

		cfg, err := loadConfig(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.API.BaseURL).To(Equal("https://brag.example.com"))
		Expect(cfg.API.Timeout).To(Equal(3 * time.Second))
		Expect(cfg.Console.Port).To(Equal(4000))
		Expect(cfg.Storage.Path).To(Equal(internal.DefaultStoragePath))
	})

	It("rejects an invalid config file", func() {
		yml := "api:\n  base_url: ftp://brag.example.com\n"
		Expect(os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o600)).To(Succeed())

		_, err := loadConfig(dir)
		Expect(err).To(MatchError(ContainSubstring("must be http or https")))
	})

	It("reads the environment in production", func() {
		GinkgoT().Setenv("APP_ENV", "production")
		GinkgoT().Setenv("BRAGBOARD_API_BASE_URL", "https://prod.example.com")

		cfg, err := loadConfig(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.App.Env).To(Equal("production"))
		Expect(cfg.API.BaseURL).To(Equal("https://prod.example.com"))
	})
})

var _ = Describe("Dependencies.Guard", func() {
	var deps *Dependencies

	BeforeEach(func() {
		deps = &Dependencies{
			Sessions: session.NewStore(newMapStorage(), nil, session.Options{Logger: logger.Discard()}),
		}
	})

	It("refuses while the session is loading", func() {
		err := deps.Guard("/leaderboard")
		var routeErr *RouteError
		Expect(errors.As(err, &routeErr)).To(BeTrue())
		Expect(routeErr.Location).To(BeEmpty())
	})

	It("sends a signed out user to the sign in screen", func() {
		_, err := deps.Sessions.Restore(context.Background())
		Expect(err).NotTo(HaveOccurred())

		Expect(deps.Guard("/leaderboard")).To(MatchError("/leaderboard is not available; go to /login"))
		Expect(deps.Guard("/login")).To(Succeed())
	})
})

var _ = Describe("describeError", func() {
	It("shows every validation message", func() {
		err := internal.NewValidationError("Validation failed", internal.ErrCodeValidationFailed).
			WithDetails(internal.ValidationErrors{Errors: []internal.ValidationError{
				{Field: "title", Message: "title is required"},
				{Field: "content", Message: "content is required"},
			}})
		Expect(describeError(err)).To(Equal("title is required; content is required"))
	})

	It("keeps backend failures generic", func() {
		err := &apiclient.ResponseError{Method: http.MethodGet, URL: "http://x/shoutouts", StatusCode: http.StatusInternalServerError}
		Expect(describeError(err)).To(Equal("Something went wrong, please try again"))
	})

	It("names a missing session", func() {
		err := &apiclient.ResponseError{StatusCode: http.StatusUnauthorized}
		Expect(describeError(err)).To(Equal(internal.ErrNotAuthenticated.Message))
	})
})
