// Package dashboardhandler serves the composite statistics and chart feeds
// for the landing dashboard. Everything is recomputed from live store
// contents on each request.
package dashboardhandler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"railops/internal/domain/registry"
	"railops/internal/domain/stats"
	"railops/internal/transport/http/api"
	"railops/internal/transport/http/middleware"
)

const recentProjectCount = 5

type Handler struct {
	Store *registry.Store
	Now   func() time.Time
}

func NewHandler(store *registry.Store) *Handler {
	return &Handler{Store: store, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/stats", h.handleStats)
		r.Get("/charts", h.handleCharts)
	})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	dashboard := stats.Compute(
		h.Store.ListEmployees(),
		h.Store.ListProjects(),
		h.Store.ListFiles(),
		h.Store.ListVendors(),
		h.Store.ListAlerts(),
	)
	api.Success(w, dashboard, middleware.GetRequestID(r.Context()))
}

type chartsPayload struct {
	FileAging        []stats.AgingBucket `json:"fileAging"`
	VendorsExpiring  []registry.Vendor   `json:"vendorsExpiringSoon"`
	RecentProjects   []registry.Project  `json:"recentProjects"`
	EmployeesByShift map[string]int      `json:"employeesByShift"`
}

func (h *Handler) handleCharts(w http.ResponseWriter, r *http.Request) {
	employees := h.Store.ListEmployees()
	byShift := make(map[string]int, 4)
	for _, emp := range employees {
		byShift[emp.Shift]++
	}

	payload := chartsPayload{
		FileAging:        stats.PendingDayBuckets(h.Store.ListFiles()),
		VendorsExpiring:  stats.ExpiringSoon(h.Store.ListVendors(), h.Now()),
		RecentProjects:   stats.RecentProjects(h.Store.ListProjects(), recentProjectCount),
		EmployeesByShift: byShift,
	}
	api.Success(w, payload, middleware.GetRequestID(r.Context()))
}
