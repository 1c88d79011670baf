package shoutout_test

import (
	"net/http"

	"github.com/frahmantamala/bragboard/internal/apiclient"
)

func notFound(id string) error {
	return &apiclient.ResponseError{
		Method:     http.MethodGet,
		URL:        "/shoutouts/" + id,
		StatusCode: http.StatusNotFound,
		Body:       []byte(`{"detail":"Not found"}`),
	}
}
