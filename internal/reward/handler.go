package reward

import (
	"context"
	"net/http"

	"github.com/frahmantamala/bragboard/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Catalog(ctx context.Context) (CatalogResponse, error)
	Redeem(ctx context.Context, rewardID string) (RedeemResponse, error)
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

// GetMarketplace renders the reward catalog for the signed-in user.
func (h *Handler) GetMarketplace(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.Catalog(r.Context())
	if err != nil {
		h.Logger.Error("GetMarketplace: failed to list rewards", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) Redeem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	resp, err := h.Service.Redeem(r.Context(), id)
	if err != nil {
		h.Logger.Warn("Redeem: service error", "error", err, "reward_id", id)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, resp)
}
