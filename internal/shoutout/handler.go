package shoutout

import (
	"context"
	"net/http"

	"github.com/frahmantamala/bragboard/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	List(ctx context.Context) ([]Shoutout, error)
	Get(ctx context.Context, id string) (*Shoutout, error)
	Create(ctx context.Context, authorID string, dto CreateShoutoutDTO) (string, error)
	Update(ctx context.Context, id string, dto UpdateShoutoutDTO) error
	Delete(ctx context.Context, id string) error
	Comment(ctx context.Context, shoutoutID, userID, userName string, dto CommentDTO) (*Comment, error)
	Cheer(ctx context.Context, shoutoutID, userID string) (CheerResponse, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Session transport.SessionReader
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI, sess transport.SessionReader) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
		Session:     sess,
	}
}

func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request) {
	shoutouts, err := h.Service.List(r.Context())
	if err != nil {
		h.Logger.Error("GetFeed: failed to list shoutouts", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, FeedResponse{Shoutouts: Filter(shoutouts, r.URL.Query().Get("q"))})
}

func (h *Handler) CreateShoutout(w http.ResponseWriter, r *http.Request) {
	var dto CreateShoutoutDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	sess := h.Session.Snapshot()
	id, err := h.Service.Create(r.Context(), sess.UserID(), dto)
	if err != nil {
		h.Logger.Warn("CreateShoutout: service error", "error", err, "user_id", sess.UserID())
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// GetShoutout renders a missing shoutout as an empty state, not an error.
func (h *Handler) GetShoutout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s, err := h.Service.Get(r.Context(), id)
	if err != nil {
		h.Logger.Error("GetShoutout: service error", "error", err, "shoutout_id", id)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, DetailResponse{Shoutout: s})
}

func (h *Handler) UpdateShoutout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var dto UpdateShoutoutDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	if err := h.Service.Update(r.Context(), id, dto); err != nil {
		h.Logger.Warn("UpdateShoutout: service error", "error", err, "shoutout_id", id)
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteShoutout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Service.Delete(r.Context(), id); err != nil {
		h.Logger.Warn("DeleteShoutout: service error", "error", err, "shoutout_id", id)
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var dto CommentDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	sess := h.Session.Snapshot()
	comment, err := h.Service.Comment(r.Context(), id, sess.UserID(), sess.DisplayName(), dto)
	if err != nil {
		h.Logger.Warn("AddComment: service error", "error", err, "shoutout_id", id)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, comment)
}

func (h *Handler) ToggleCheer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess := h.Session.Snapshot()
	resp, err := h.Service.Cheer(r.Context(), id, sess.UserID())
	if err != nil {
		h.Logger.Warn("ToggleCheer: service error", "error", err, "shoutout_id", id)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, resp)
}
