// Package api embeds the OpenAPI description of the backend the client
// consumes.
package api

import _ "embed"

//go:embed backend.yml
var BackendSpec []byte
