// Package registryhandler exposes the CRUD surface for every record kind
// held by the in-memory store.
package registryhandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"railops/internal/domain/registry"
	"railops/internal/transport/http/api"
	"railops/internal/transport/http/middleware"
)

type Handler struct {
	Store *registry.Store
}

func NewHandler(store *registry.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleListEmployees)
		r.Post("/", h.handleCreateEmployee)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Get("/", h.handleGetEmployee)
			r.Put("/", h.handleUpdateEmployee)
			r.Delete("/", h.handleDeleteEmployee)
		})
	})
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.handleListProjects)
		r.Post("/", h.handleCreateProject)
		r.Route("/{projectID}", func(r chi.Router) {
			r.Get("/", h.handleGetProject)
			r.Put("/", h.handleUpdateProject)
			r.Delete("/", h.handleDeleteProject)
		})
	})
	r.Route("/files", func(r chi.Router) {
		r.Get("/", h.handleListFiles)
		r.Post("/", h.handleCreateFile)
		r.Route("/{fileID}", func(r chi.Router) {
			r.Get("/", h.handleGetFile)
			r.Put("/", h.handleUpdateFile)
			r.Delete("/", h.handleDeleteFile)
		})
	})
	r.Route("/vendors", func(r chi.Router) {
		r.Get("/", h.handleListVendors)
		r.Post("/", h.handleCreateVendor)
		r.Route("/{vendorID}", func(r chi.Router) {
			r.Get("/", h.handleGetVendor)
			r.Put("/", h.handleUpdateVendor)
			r.Delete("/", h.handleDeleteVendor)
		})
	})
	r.Route("/alerts", func(r chi.Router) {
		r.Get("/", h.handleListAlerts)
		r.Post("/", h.handleCreateAlert)
		r.Route("/{alertID}", func(r chi.Router) {
			r.Get("/", h.handleGetAlert)
			r.Put("/", h.handleUpdateAlert)
			r.Delete("/", h.handleDeleteAlert)
		})
	})
	r.Route("/training-programs", func(r chi.Router) {
		r.Get("/", h.handleListTrainingPrograms)
		r.Post("/", h.handleCreateTrainingProgram)
		r.Route("/{programID}", func(r chi.Router) {
			r.Get("/", h.handleGetTrainingProgram)
			r.Put("/", h.handleUpdateTrainingProgram)
			r.Delete("/", h.handleDeleteTrainingProgram)
		})
	})
	r.Route("/field-activities", func(r chi.Router) {
		r.Get("/", h.handleListFieldActivities)
		r.Post("/", h.handleCreateFieldActivity)
		r.Route("/{activityID}", func(r chi.Router) {
			r.Get("/", h.handleGetFieldActivity)
			r.Put("/", h.handleUpdateFieldActivity)
			r.Delete("/", h.handleDeleteFieldActivity)
		})
	})
}

// decode rejects malformed JSON with an invalid_payload envelope. Unknown
// fields, including attempts to supply id or createdAt, are dropped by the
// decoder rather than merged.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return false
	}
	return true
}

func notFound(w http.ResponseWriter, r *http.Request, code, message string) {
	api.Fail(w, http.StatusNotFound, code, message, middleware.GetRequestID(r.Context()))
}
