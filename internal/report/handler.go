package report

import (
	"context"
	"net/http"

	"github.com/frahmantamala/bragboard/internal/transport"
)

type ServiceAPI interface {
	Submit(ctx context.Context, dto SubmitReportDTO) (string, error)
	Summary(ctx context.Context) (Summary, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	var dto SubmitReportDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	id, err := h.Service.Submit(r.Context(), dto)
	if err != nil {
		h.Logger.Warn("SubmitReport: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, SubmitResponse{ID: id})
}

// GetReports renders the admin analytics screen.
func (h *Handler) GetReports(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Summary(r.Context())
	if err != nil {
		h.Logger.Error("GetReports: failed to build summary", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, summary)
}
