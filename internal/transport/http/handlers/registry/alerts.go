package registryhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"railops/internal/domain/registry"
	"railops/internal/transport/http/api"
	"railops/internal/transport/http/middleware"
	"railops/internal/transport/http/shared"
)

func validateAlertInsert(ins registry.AlertInsert) *shared.Validator {
	v := shared.NewValidator()
	v.Required("title", ins.Title, "title is required")
	v.Required("description", ins.Description, "description is required")
	v.Required("type", ins.Type, "type is required")
	v.Enum("type", ins.Type, registry.AlertTypes, "type must be one of Critical, Warning, Info")
	v.Required("category", ins.Category, "category is required")
	v.Enum("category", ins.Category, registry.AlertCategories, "category must be one of File, Vendor, Employee, Project")
	v.Enum("priority", ins.Priority, registry.Priorities, "priority must be one of High, Medium, Low")
	v.Enum("status", ins.Status, registry.AlertStatuses, "status must be one of Active, Resolved, Dismissed")
	return v
}

func (h *Handler) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.ListAlerts(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetAlert(w http.ResponseWriter, r *http.Request) {
	alert, ok := h.Store.GetAlert(chi.URLParam(r, "alertID"))
	if !ok {
		notFound(w, r, "alert_not_found", "alert not found")
		return
	}
	api.Success(w, alert, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateAlert(w http.ResponseWriter, r *http.Request) {
	var payload registry.AlertInsert
	if !decode(w, r, &payload) {
		return
	}
	if validateAlertInsert(payload).Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	alert := h.Store.CreateAlert(payload)
	api.Created(w, alert, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateAlert(w http.ResponseWriter, r *http.Request) {
	var patch registry.AlertPatch
	if !decode(w, r, &patch) {
		return
	}
	v := shared.NewValidator()
	if patch.Type != nil {
		v.Enum("type", *patch.Type, registry.AlertTypes, "type must be one of Critical, Warning, Info")
	}
	if patch.Status != nil {
		v.Enum("status", *patch.Status, registry.AlertStatuses, "status must be one of Active, Resolved, Dismissed")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	alert, ok := h.Store.UpdateAlert(chi.URLParam(r, "alertID"), patch)
	if !ok {
		notFound(w, r, "alert_not_found", "alert not found")
		return
	}
	api.Success(w, alert, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteAlert(w http.ResponseWriter, r *http.Request) {
	deleted := h.Store.DeleteAlert(chi.URLParam(r, "alertID"))
	api.Success(w, map[string]bool{"deleted": deleted}, middleware.GetRequestID(r.Context()))
}
