package profile

import (
	"context"
	"net/http"

	"github.com/frahmantamala/bragboard/internal/transport"
	"github.com/frahmantamala/bragboard/internal/user"
)

const maxAvatarSize = 5 << 20

type ServiceAPI interface {
	Current() (*user.User, error)
	Update(ctx context.Context, dto UpdateProfileDTO, avatar *Avatar) (*user.User, error)
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

// GetProfile renders the profile and settings screens.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	u, err := h.Service.Current()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, Response{User: u})
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var dto UpdateProfileDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	u, err := h.Service.Update(r.Context(), dto, nil)
	if err != nil {
		h.Logger.Warn("UpdateProfile: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, Response{User: u, Message: MsgUpdated})
}

// UploadAvatar accepts a multipart form with the image under "file" and
// optional profile fields alongside it.
func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarSize)
	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		h.Logger.Warn("UploadAvatar: invalid form", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid avatar upload")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	var dto UpdateProfileDTO
	if name := r.FormValue("fullName"); name != "" {
		dto.FullName = &name
	}
	if dept := r.FormValue("department"); dept != "" {
		dto.Department = &dept
	}

	u, err := h.Service.Update(r.Context(), dto, &Avatar{Filename: header.Filename, Content: file})
	if err != nil {
		h.Logger.Warn("UploadAvatar: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, Response{User: u, Message: MsgUpdated})
}
