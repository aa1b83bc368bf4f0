package registryhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"railops/internal/domain/registry"
	"railops/internal/transport/http/api"
	"railops/internal/transport/http/middleware"
	"railops/internal/transport/http/shared"
)

func validateVendorInsert(ins registry.VendorInsert) *shared.Validator {
	v := shared.NewValidator()
	v.Required("name", ins.Name, "name is required")
	v.Required("vendorId", ins.VendorID, "vendorId is required")
	v.Required("product", ins.Product, "product is required")
	v.Required("status", ins.Status, "status is required")
	v.Enum("status", ins.Status, registry.VendorStatuses, "status must be one of Approved, Rejected, Under Review, Pending")
	v.Required("stage", ins.Stage, "stage is required")
	if ins.RegistrationDate.IsZero() {
		v.Add("registrationDate", "registrationDate must be a valid RFC3339 timestamp")
	}
	v.Range("performanceRating", ins.PerformanceRating, 0, 5, "performanceRating must be between 0 and 5")
	v.Required("category", ins.Category, "category is required")
	return v
}

func (h *Handler) handleListVendors(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.ListVendors(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetVendor(w http.ResponseWriter, r *http.Request) {
	vendor, ok := h.Store.GetVendor(chi.URLParam(r, "vendorID"))
	if !ok {
		notFound(w, r, "vendor_not_found", "vendor not found")
		return
	}
	api.Success(w, vendor, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateVendor(w http.ResponseWriter, r *http.Request) {
	var payload registry.VendorInsert
	if !decode(w, r, &payload) {
		return
	}
	if validateVendorInsert(payload).Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	vendor := h.Store.CreateVendor(payload)
	api.Created(w, vendor, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateVendor(w http.ResponseWriter, r *http.Request) {
	var patch registry.VendorPatch
	if !decode(w, r, &patch) {
		return
	}
	v := shared.NewValidator()
	if patch.Status != nil {
		v.Enum("status", *patch.Status, registry.VendorStatuses, "status must be one of Approved, Rejected, Under Review, Pending")
	}
	if patch.PerformanceRating != nil {
		v.Range("performanceRating", *patch.PerformanceRating, 0, 5, "performanceRating must be between 0 and 5")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	vendor, ok := h.Store.UpdateVendor(chi.URLParam(r, "vendorID"), patch)
	if !ok {
		notFound(w, r, "vendor_not_found", "vendor not found")
		return
	}
	api.Success(w, vendor, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteVendor(w http.ResponseWriter, r *http.Request) {
	deleted := h.Store.DeleteVendor(chi.URLParam(r, "vendorID"))
	api.Success(w, map[string]bool{"deleted": deleted}, middleware.GetRequestID(r.Context()))
}
