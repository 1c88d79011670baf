package leaderboard

import (
	"context"
	"net/http"

	"github.com/frahmantamala/bragboard/internal/transport"
)

type ServiceAPI interface {
	List(ctx context.Context) ([]Entry, error)
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

type Response struct {
	Entries []Entry `json:"entries"`
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.List(r.Context())
	if err != nil {
		h.Logger.Error("GetLeaderboard: failed to load leaderboard", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, Response{Entries: entries})
}
