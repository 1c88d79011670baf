package swagger

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SpecPath is where the console serves the backend contract.
const SpecPath = "/openapi.yml"

// Handler serves Swagger UI over the backend API the client consumes.
func Handler() http.Handler {
	return httpSwagger.Handler(
		httpSwagger.URL(SpecPath),
		httpSwagger.DocExpansion("list"),
	)
}
