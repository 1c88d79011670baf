package transport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/bragboard/internal"
	"github.com/frahmantamala/bragboard/internal/apiclient"
	"github.com/frahmantamala/bragboard/pkg/logger"
)

// BaseHandler provides common functionality for console handlers
type BaseHandler struct {
	Logger *slog.Logger
}

func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Error("http error", "status", status, "message", message)
	h.WriteJSON(w, status, internal.Response{Error: &internal.AppError{
		Type:       internal.ErrorTypeValidation,
		Code:       internal.ErrCodeValidationFailed,
		Message:    message,
		StatusCode: status,
	}})
}

// HandleServiceError maps an error from a service or the backend to a
// response. Backend failures are shown behind a generic message; the
// details were already logged by the API client.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		status, body := appErr.ToHTTPResponse()
		h.WriteJSON(w, status, body)
		return
	}

	var respErr *apiclient.ResponseError
	if errors.As(err, &respErr) {
		switch respErr.StatusCode {
		case http.StatusUnauthorized:
			status, body := internal.ErrNotAuthenticated.ToHTTPResponse()
			h.WriteJSON(w, status, body)
			return
		case http.StatusForbidden:
			status, body := internal.NewForbiddenError("You are not allowed to do that", internal.ErrCodeRouteForbidden).ToHTTPResponse()
			h.WriteJSON(w, status, body)
			return
		case http.StatusNotFound:
			status, body := internal.NewNotFoundError("Not found", internal.ErrCodeBackendFailure).ToHTTPResponse()
			h.WriteJSON(w, status, body)
			return
		}
	}

	status, body := internal.NewExternalError("Something went wrong, please try again", err).ToHTTPResponse()
	h.WriteJSON(w, status, body)
}

// DecodeJSON reads a JSON request body into dst, answering 400 itself when
// the body is malformed.
func (h *BaseHandler) DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.Logger.Warn("invalid request body", "path", r.URL.Path, "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
