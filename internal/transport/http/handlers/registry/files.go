package registryhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"railops/internal/domain/registry"
	"railops/internal/transport/http/api"
	"railops/internal/transport/http/middleware"
	"railops/internal/transport/http/shared"
)

func validateFileInsert(ins registry.FileInsert) *shared.Validator {
	v := shared.NewValidator()
	v.Required("fileId", ins.FileID, "fileId is required")
	v.Required("subject", ins.Subject, "subject is required")
	v.Required("currentOfficer", ins.CurrentOfficer, "currentOfficer is required")
	v.Required("status", ins.Status, "status is required")
	v.Enum("status", ins.Status, registry.FileStatuses, "status must be one of Pending, Under Review, Approved, Rejected")
	v.Enum("priority", ins.Priority, registry.Priorities, "priority must be one of High, Medium, Low")
	v.Min("pendingDays", ins.PendingDays, 0, "pendingDays must not be negative")
	if ins.SubmissionDate.IsZero() {
		v.Add("submissionDate", "submissionDate must be a valid RFC3339 timestamp")
	}
	if ins.LastMovedDate.IsZero() {
		v.Add("lastMovedDate", "lastMovedDate must be a valid RFC3339 timestamp")
	}
	v.Required("department", ins.Department, "department is required")
	v.Required("fileType", ins.FileType, "fileType is required")
	return v
}

func (h *Handler) handleListFiles(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.ListFiles(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetFile(w http.ResponseWriter, r *http.Request) {
	file, ok := h.Store.GetFile(chi.URLParam(r, "fileID"))
	if !ok {
		notFound(w, r, "file_not_found", "file not found")
		return
	}
	api.Success(w, file, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateFile(w http.ResponseWriter, r *http.Request) {
	var payload registry.FileInsert
	if !decode(w, r, &payload) {
		return
	}
	if validateFileInsert(payload).Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	file := h.Store.CreateFile(payload)
	api.Created(w, file, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateFile(w http.ResponseWriter, r *http.Request) {
	var patch registry.FilePatch
	if !decode(w, r, &patch) {
		return
	}
	v := shared.NewValidator()
	if patch.Status != nil {
		v.Enum("status", *patch.Status, registry.FileStatuses, "status must be one of Pending, Under Review, Approved, Rejected")
	}
	if patch.PendingDays != nil {
		v.Min("pendingDays", *patch.PendingDays, 0, "pendingDays must not be negative")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	file, ok := h.Store.UpdateFile(chi.URLParam(r, "fileID"), patch)
	if !ok {
		notFound(w, r, "file_not_found", "file not found")
		return
	}
	api.Success(w, file, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteFile(w http.ResponseWriter, r *http.Request) {
	deleted := h.Store.DeleteFile(chi.URLParam(r, "fileID"))
	api.Success(w, map[string]bool{"deleted": deleted}, middleware.GetRequestID(r.Context()))
}
