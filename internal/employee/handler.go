package employee

import (
	"context"
	"net/http"

	"github.com/frahmantamala/bragboard/internal/transport"
	"github.com/frahmantamala/bragboard/internal/user"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	List(ctx context.Context) ([]user.Employee, error)
	Toggle(ctx context.Context, id string) (*user.Employee, error)
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

type DirectoryResponse struct {
	Employees []user.Employee `json:"employees"`
	Stats     Stats           `json:"stats"`
}

func (h *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.List(r.Context())
	if err != nil {
		h.Logger.Error("GetEmployees: failed to list employees", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, DirectoryResponse{Employees: employees, Stats: Summarize(employees)})
}

func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	emp, err := h.Service.Toggle(r.Context(), id)
	if err != nil {
		h.Logger.Warn("ToggleStatus: service error", "error", err, "employee_id", id)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, emp)
}
