package employee_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/bragboard/internal/apiclient"
	"github.com/frahmantamala/bragboard/internal/core/datamodel"
	userDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/user"
	"github.com/frahmantamala/bragboard/internal/employee"
	"github.com/frahmantamala/bragboard/internal/transport"
	"github.com/frahmantamala/bragboard/internal/user"
	"github.com/frahmantamala/bragboard/pkg/logger"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type mockAPI struct {
	employees []userDatamodel.Employee
	toggleErr error
}

func (m *mockAPI) ListEmployees(context.Context) ([]userDatamodel.Employee, error) {
	return m.employees, nil
}

func (m *mockAPI) ToggleEmployeeStatus(_ context.Context, id string) (*userDatamodel.Employee, error) {
	if m.toggleErr != nil {
		return nil, m.toggleErr
	}
	for i := range m.employees {
		if m.employees[i].ID.String() == id {
			m.employees[i].Active = !m.employees[i].Active
			e := m.employees[i]
			return &e, nil
		}
	}
	return &userDatamodel.Employee{}, nil
}

var _ = Describe("Employees", func() {
	var (
		api    *mockAPI
		router *chi.Mux
	)

	BeforeEach(func() {
		api = &mockAPI{employees: []userDatamodel.Employee{
			{ID: datamodel.ID("1"), Name: "A B", Email: "a@example.com", Active: true, Role: "EMPLOYEE"},
			{ID: datamodel.ID("2"), Name: "C D", Email: "c@example.com", Active: false, Role: "ADMIN"},
		}}
		handler := employee.NewHandler(transport.NewBaseHandler(logger.Discard()), employee.NewService(api, logger.Discard()))
		router = chi.NewRouter()
		router.Get("/admin/employees", handler.GetEmployees)
		router.Post("/admin/employees/{id}/toggle", handler.ToggleStatus)
	})

	It("maps the directory and counts active employees", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/employees", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{
			"employees": [
				{"id": "1", "fullName": "A B", "email": "a@example.com", "isActive": true, "role": "EMPLOYEE"},
				{"id": "2", "fullName": "C D", "email": "c@example.com", "isActive": false, "role": "ADMIN"}
			],
			"stats": {"total": 2, "active": 1, "inactive": 1}
		}`))
	})

	It("toggles an employee", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/employees/2/toggle", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"isActive":true`))
	})

	It("keeps the requested id when the backend omits it", func() {
		emp, err := employee.NewService(api, logger.Discard()).Toggle(context.Background(), "9")
		Expect(err).NotTo(HaveOccurred())
		Expect(emp.ID).To(Equal("9"))
	})

	It("reports a backend 403 as forbidden", func() {
		api.toggleErr = &apiclient.ResponseError{Method: http.MethodPut, URL: "/employees/1/toggle", StatusCode: http.StatusForbidden}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/employees/1/toggle", nil))
		Expect(w.Code).To(Equal(http.StatusForbidden))
	})

	It("summarizes an empty directory", func() {
		Expect(employee.Summarize(nil)).To(Equal(employee.Stats{}))
		Expect(employee.Summarize([]user.Employee{{IsActive: true}})).To(Equal(employee.Stats{Total: 1, Active: 1}))
	})
})
