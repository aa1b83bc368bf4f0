package registryhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"railops/internal/domain/registry"
	"railops/internal/transport/http/api"
	"railops/internal/transport/http/middleware"
	"railops/internal/transport/http/shared"
)

func validateEmployeeInsert(ins registry.EmployeeInsert) *shared.Validator {
	v := shared.NewValidator()
	v.Required("name", ins.Name, "name is required")
	v.Required("employeeId", ins.EmployeeID, "employeeId is required")
	v.Required("role", ins.Role, "role is required")
	v.Required("designation", ins.Designation, "designation is required")
	v.Required("shift", ins.Shift, "shift is required")
	v.Required("status", ins.Status, "status is required")
	v.Enum("status", ins.Status, registry.EmployeeStatuses, "status must be one of Present, Absent, Field Duty")
	v.Required("department", ins.Department, "department is required")
	if ins.JoinDate.IsZero() {
		v.Add("joinDate", "joinDate must be a valid RFC3339 timestamp")
	}
	return v
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.ListEmployees(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.Store.GetEmployee(chi.URLParam(r, "employeeID"))
	if !ok {
		notFound(w, r, "employee_not_found", "employee not found")
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var payload registry.EmployeeInsert
	if !decode(w, r, &payload) {
		return
	}
	if validateEmployeeInsert(payload).Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	emp := h.Store.CreateEmployee(payload)
	api.Created(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var patch registry.EmployeePatch
	if !decode(w, r, &patch) {
		return
	}
	v := shared.NewValidator()
	if patch.Status != nil {
		v.Enum("status", *patch.Status, registry.EmployeeStatuses, "status must be one of Present, Absent, Field Duty")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	emp, ok := h.Store.UpdateEmployee(chi.URLParam(r, "employeeID"), patch)
	if !ok {
		notFound(w, r, "employee_not_found", "employee not found")
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	deleted := h.Store.DeleteEmployee(chi.URLParam(r, "employeeID"))
	api.Success(w, map[string]bool{"deleted": deleted}, middleware.GetRequestID(r.Context()))
}
