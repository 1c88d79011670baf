package auth

import (
	"context"
	"net/http"
	"sync"

	"github.com/frahmantamala/bragboard/internal/guard"
	"github.com/frahmantamala/bragboard/internal/session"
	"github.com/frahmantamala/bragboard/internal/transport"
)

type ServiceAPI interface {
	Login(ctx context.Context, dto LoginDTO) (session.Session, error)
	Signup(ctx context.Context, dto SignupDTO) error
	Logout(ctx context.Context) error
	RequestReset(ctx context.Context, dto ForgotPasswordDTO) (ResetRequest, error)
	ResetPassword(ctx context.Context, dto ResetPasswordDTO) error
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

type Flash struct {
	Level   session.Level `json:"level"`
	Message string        `json:"message"`
}

// NavigationResponse tells the caller where the client went next and what
// it told the user on the way.
type NavigationResponse struct {
	Location string           `json:"location,omitempty"`
	Flash    []Flash          `json:"flash,omitempty"`
	Session  *session.Session `json:"session,omitempty"`
}

// navigation records the store's side effects for one request.
type navigation struct {
	mu       sync.Mutex
	location string
	flash    []Flash
}

func (n *navigation) Navigate(_ context.Context, path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.location = path
}

func (n *navigation) Notify(_ context.Context, level session.Level, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.flash = append(n.flash, Flash{Level: level, Message: message})
}

func capture(r *http.Request) (context.Context, *navigation) {
	nav := &navigation{}
	ctx := session.WithNavigator(r.Context(), nav)
	ctx = session.WithNotifier(ctx, nav)
	return ctx, nav
}

// writeNavigation answers 303 with a Location header when the client
// navigated, and 200 otherwise.
func (h *Handler) writeNavigation(w http.ResponseWriter, nav *navigation, sess *session.Session) {
	nav.mu.Lock()
	resp := NavigationResponse{Location: nav.location, Flash: nav.flash, Session: sess}
	nav.mu.Unlock()

	if resp.Location == "" {
		h.WriteJSON(w, http.StatusOK, resp)
		return
	}
	w.Header().Set("Location", resp.Location)
	h.WriteJSON(w, http.StatusSeeOther, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	ctx, nav := capture(r)
	sess, err := h.Service.Login(ctx, dto)
	if err != nil {
		h.Logger.Warn("Login: rejected", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.writeNavigation(w, nav, &sess)
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var dto SignupDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	ctx, nav := capture(r)
	if err := h.Service.Signup(ctx, dto); err != nil {
		h.Logger.Warn("Signup: rejected", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.writeNavigation(w, nav, nil)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, nav := capture(r)
	if err := h.Service.Logout(ctx); err != nil {
		h.Logger.Error("Logout: failed to clear session", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.writeNavigation(w, nav, nil)
}

func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var dto ForgotPasswordDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	out, err := h.Service.RequestReset(r.Context(), dto)
	if err != nil {
		h.Logger.Warn("ForgotPassword: request failed", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	nav := &navigation{location: out.Location}
	nav.flash = []Flash{{Level: session.LevelSuccess, Message: out.Message}}
	h.writeNavigation(w, nav, nil)
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var dto ResetPasswordDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	if dto.Token == "" {
		dto.Token = r.URL.Query().Get("token")
	}

	if err := h.Service.ResetPassword(r.Context(), dto); err != nil {
		h.Logger.Warn("ResetPassword: rejected", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	nav := &navigation{location: guard.PathLogin}
	nav.flash = []Flash{{Level: session.LevelSuccess, Message: MsgResetDone}}
	h.writeNavigation(w, nav, nil)
}
