package registryhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"railops/internal/domain/registry"
	"railops/internal/transport/http/api"
	"railops/internal/transport/http/middleware"
	"railops/internal/transport/http/shared"
)

func validateFieldActivityInsert(ins registry.FieldActivityInsert) *shared.Validator {
	v := shared.NewValidator()
	v.Required("title", ins.Title, "title is required")
	v.Required("assignedOfficer", ins.AssignedOfficer, "assignedOfficer is required")
	v.Required("location", ins.Location, "location is required")
	if ins.ScheduledDate.IsZero() {
		v.Add("scheduledDate", "scheduledDate must be a valid RFC3339 timestamp")
	}
	v.Enum("status", ins.Status, registry.ActivityStatuses, "status must be one of Scheduled, In Progress, Completed, Cancelled")
	v.Required("activityType", ins.ActivityType, "activityType is required")
	v.Enum("activityType", ins.ActivityType, registry.ActivityTypes, "activityType must be one of Inspection, Trial, Maintenance, Survey")
	v.Enum("priority", ins.Priority, registry.Priorities, "priority must be one of High, Medium, Low")
	return v
}

func (h *Handler) handleListFieldActivities(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.ListFieldActivities(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetFieldActivity(w http.ResponseWriter, r *http.Request) {
	activity, ok := h.Store.GetFieldActivity(chi.URLParam(r, "activityID"))
	if !ok {
		notFound(w, r, "field_activity_not_found", "field activity not found")
		return
	}
	api.Success(w, activity, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateFieldActivity(w http.ResponseWriter, r *http.Request) {
	var payload registry.FieldActivityInsert
	if !decode(w, r, &payload) {
		return
	}
	if validateFieldActivityInsert(payload).Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	activity := h.Store.CreateFieldActivity(payload)
	api.Created(w, activity, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateFieldActivity(w http.ResponseWriter, r *http.Request) {
	var patch registry.FieldActivityPatch
	if !decode(w, r, &patch) {
		return
	}
	v := shared.NewValidator()
	if patch.Status != nil {
		v.Enum("status", *patch.Status, registry.ActivityStatuses, "status must be one of Scheduled, In Progress, Completed, Cancelled")
	}
	if patch.ActivityType != nil {
		v.Enum("activityType", *patch.ActivityType, registry.ActivityTypes, "activityType must be one of Inspection, Trial, Maintenance, Survey")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	activity, ok := h.Store.UpdateFieldActivity(chi.URLParam(r, "activityID"), patch)
	if !ok {
		notFound(w, r, "field_activity_not_found", "field activity not found")
		return
	}
	api.Success(w, activity, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteFieldActivity(w http.ResponseWriter, r *http.Request) {
	deleted := h.Store.DeleteFieldActivity(chi.URLParam(r, "activityID"))
	api.Success(w, map[string]bool{"deleted": deleted}, middleware.GetRequestID(r.Context()))
}
