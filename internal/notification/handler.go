package notification

import (
	"context"
	"net/http"

	"github.com/frahmantamala/bragboard/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	List(ctx context.Context) ([]Notification, error)
	MarkRead(ctx context.Context, id string) (*Notification, error)
	MarkAllRead(ctx context.Context) (int, error)
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

type ListResponse struct {
	Notifications []Notification `json:"notifications"`
	Unread        int            `json:"unread"`
}

type MarkAllResponse struct {
	Count int `json:"count"`
}

func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ns, err := h.Service.List(r.Context())
	if err != nil {
		h.Logger.Error("GetNotifications: failed to list notifications", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, ListResponse{Notifications: ns, Unread: Unread(ns)})
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	n, err := h.Service.MarkRead(r.Context(), id)
	if err != nil {
		h.Logger.Warn("MarkRead: service error", "error", err, "notification_id", id)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, n)
}

func (h *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	count, err := h.Service.MarkAllRead(r.Context())
	if err != nil {
		h.Logger.Warn("MarkAllRead: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, MarkAllResponse{Count: count})
}
