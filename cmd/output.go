package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/frahmantamala/bragboard/internal"
	"github.com/frahmantamala/bragboard/internal/apiclient"
)

// printJSON writes a view model the way the console would serve it.
func printJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// describeError turns a command failure into the line shown to the user.
// Backend failures were logged by the API client and stay generic here.
func describeError(err error) string {
	var routeErr *RouteError
	if errors.As(err, &routeErr) {
		return routeErr.Error()
	}
	if appErr, ok := internal.IsAppError(err); ok {
		return appErr.GetDetailedMessage()
	}
	var respErr *apiclient.ResponseError
	if errors.As(err, &respErr) {
		switch apiclient.StatusCode(err) {
		case http.StatusUnauthorized:
			return internal.ErrNotAuthenticated.Message
		case http.StatusForbidden:
			return "You are not allowed to do that"
		case http.StatusNotFound:
			return "Not found"
		}
		return "Something went wrong, please try again"
	}
	return fmt.Sprintf("Error: %v", err)
}
