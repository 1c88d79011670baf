package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/bragboard/internal"
	"github.com/frahmantamala/bragboard/internal/guard"
)

// ViewerFunc returns the session the guard should judge.
type ViewerFunc func() guard.Viewer

// RequireScreen applies the route guard of screen: redirects become 303s and
// a session that is still loading gets a 503 placeholder.
func RequireScreen(viewer ViewerFunc, screen guard.Screen, logger *slog.Logger) func(http.Handler) http.Handler {
	route := guard.Lookup(screen)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v := viewer()
			decision := guard.Decide(v, route)

			switch decision.Outcome {
			case guard.Render:
				next.ServeHTTP(w, r)
			case guard.Redirect:
				logger.Debug("route guard redirect",
					"screen", screen,
					"path", r.URL.Path,
					"state", guard.StateOf(v).String(),
					"location", decision.Location)
				http.Redirect(w, r, decision.Location, http.StatusSeeOther)
			default:
				writeLoading(w)
			}
		})
	}
}

// RedirectUnknown sends any path outside the route table to "/".
func RedirectUnknown(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, guard.PathRoot, http.StatusSeeOther)
}

func writeLoading(w http.ResponseWriter) {
	appErr := &internal.AppError{
		Type:       internal.ErrorTypeUnauthorized,
		Code:       internal.ErrCodeSessionLoading,
		Message:    "Loading...",
		StatusCode: http.StatusServiceUnavailable,
	}
	status, body := appErr.ToHTTPResponse()
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", "1")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
