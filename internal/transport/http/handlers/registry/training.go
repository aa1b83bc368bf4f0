package registryhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"railops/internal/domain/registry"
	"railops/internal/transport/http/api"
	"railops/internal/transport/http/middleware"
	"railops/internal/transport/http/shared"
)

func validateTrainingProgramInsert(ins registry.TrainingProgramInsert) *shared.Validator {
	v := shared.NewValidator()
	v.Required("title", ins.Title, "title is required")
	v.Required("instructor", ins.Instructor, "instructor is required")
	v.Required("department", ins.Department, "department is required")
	if ins.StartDate.IsZero() {
		v.Add("startDate", "startDate must be a valid RFC3339 timestamp")
	}
	if ins.EndDate.IsZero() {
		v.Add("endDate", "endDate must be a valid RFC3339 timestamp")
	}
	v.Min("maxParticipants", ins.MaxParticipants, 1, "maxParticipants must be positive")
	v.Min("currentParticipants", ins.CurrentParticipants, 0, "currentParticipants must not be negative")
	v.Enum("status", ins.Status, registry.TrainingStatuses, "status must be one of Upcoming, Ongoing, Completed, Cancelled")
	return v
}

func (h *Handler) handleListTrainingPrograms(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.ListTrainingPrograms(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetTrainingProgram(w http.ResponseWriter, r *http.Request) {
	program, ok := h.Store.GetTrainingProgram(chi.URLParam(r, "programID"))
	if !ok {
		notFound(w, r, "training_program_not_found", "training program not found")
		return
	}
	api.Success(w, program, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateTrainingProgram(w http.ResponseWriter, r *http.Request) {
	var payload registry.TrainingProgramInsert
	if !decode(w, r, &payload) {
		return
	}
	if validateTrainingProgramInsert(payload).Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	program := h.Store.CreateTrainingProgram(payload)
	api.Created(w, program, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateTrainingProgram(w http.ResponseWriter, r *http.Request) {
	var patch registry.TrainingProgramPatch
	if !decode(w, r, &patch) {
		return
	}
	v := shared.NewValidator()
	if patch.Status != nil {
		v.Enum("status", *patch.Status, registry.TrainingStatuses, "status must be one of Upcoming, Ongoing, Completed, Cancelled")
	}
	if patch.MaxParticipants != nil {
		v.Min("maxParticipants", *patch.MaxParticipants, 1, "maxParticipants must be positive")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	program, ok := h.Store.UpdateTrainingProgram(chi.URLParam(r, "programID"), patch)
	if !ok {
		notFound(w, r, "training_program_not_found", "training program not found")
		return
	}
	api.Success(w, program, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteTrainingProgram(w http.ResponseWriter, r *http.Request) {
	deleted := h.Store.DeleteTrainingProgram(chi.URLParam(r, "programID"))
	api.Success(w, map[string]bool{"deleted": deleted}, middleware.GetRequestID(r.Context()))
}
