package registryhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"railops/internal/domain/registry"
	"railops/internal/transport/http/api"
	"railops/internal/transport/http/middleware"
	"railops/internal/transport/http/shared"
)

func validateProjectInsert(ins registry.ProjectInsert) *shared.Validator {
	v := shared.NewValidator()
	v.Required("name", ins.Name, "name is required")
	v.Required("status", ins.Status, "status is required")
	v.Enum("status", ins.Status, registry.ProjectStatuses, "status must be one of On Track, In Progress, Delayed, Completed")
	v.Range("progress", ins.Progress, 0, 100, "progress must be between 0 and 100")
	v.Required("lead", ins.Lead, "lead is required")
	v.Required("department", ins.Department, "department is required")
	if ins.StartDate.IsZero() {
		v.Add("startDate", "startDate must be a valid RFC3339 timestamp")
	}
	if ins.TargetDate.IsZero() {
		v.Add("targetDate", "targetDate must be a valid RFC3339 timestamp")
	}
	v.Enum("priority", ins.Priority, registry.Priorities, "priority must be one of High, Medium, Low")
	return v
}

func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.ListProjects(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetProject(w http.ResponseWriter, r *http.Request) {
	proj, ok := h.Store.GetProject(chi.URLParam(r, "projectID"))
	if !ok {
		notFound(w, r, "project_not_found", "project not found")
		return
	}
	api.Success(w, proj, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var payload registry.ProjectInsert
	if !decode(w, r, &payload) {
		return
	}
	if validateProjectInsert(payload).Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	proj := h.Store.CreateProject(payload)
	api.Created(w, proj, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var patch registry.ProjectPatch
	if !decode(w, r, &patch) {
		return
	}
	v := shared.NewValidator()
	if patch.Status != nil {
		v.Enum("status", *patch.Status, registry.ProjectStatuses, "status must be one of On Track, In Progress, Delayed, Completed")
	}
	if patch.Priority != nil {
		v.Enum("priority", *patch.Priority, registry.Priorities, "priority must be one of High, Medium, Low")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	proj, ok := h.Store.UpdateProject(chi.URLParam(r, "projectID"), patch)
	if !ok {
		notFound(w, r, "project_not_found", "project not found")
		return
	}
	api.Success(w, proj, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	deleted := h.Store.DeleteProject(chi.URLParam(r, "projectID"))
	api.Success(w, map[string]bool{"deleted": deleted}, middleware.GetRequestID(r.Context()))
}
