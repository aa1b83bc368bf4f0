// Package reportshandler renders the dashboard summary as a downloadable
// PDF for offline review meetings.
package reportshandler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jung-kurt/gofpdf"

	"railops/internal/domain/registry"
	"railops/internal/domain/stats"
	"railops/internal/transport/http/api"
	"railops/internal/transport/http/middleware"
)

type Handler struct {
	Store *registry.Store
	Now   func() time.Time
}

func NewHandler(store *registry.Store) *Handler {
	return &Handler{Store: store, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/reports/summary.pdf", h.handleSummaryPDF)
}

func (h *Handler) handleSummaryPDF(w http.ResponseWriter, r *http.Request) {
	dashboard := stats.Compute(
		h.Store.ListEmployees(),
		h.Store.ListProjects(),
		h.Store.ListFiles(),
		h.Store.ListVendors(),
		h.Store.ListAlerts(),
	)
	expiring := stats.ExpiringSoon(h.Store.ListVendors(), h.Now())

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Operations Summary")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", h.Now().UTC().Format("2006-01-02 15:04 MST")))
	pdf.Ln(10)

	section := func(title string, line string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 7, line)
		pdf.Ln(9)
	}

	section("Workforce", fmt.Sprintf("Employees: %d total, %d present, %d absent, %d on field duty",
		dashboard.Employees.Total, dashboard.Employees.Present, dashboard.Employees.Absent, dashboard.Employees.Field))
	section("Projects", fmt.Sprintf("Projects: %d total, %d on track, %d in progress, %d delayed",
		dashboard.Projects.Total, dashboard.Projects.OnTrack, dashboard.Projects.InProgress, dashboard.Projects.Delayed))
	section("File Workflow", fmt.Sprintf("Files: %d total, %d pending, %d approved, %d overdue",
		dashboard.Files.Total, dashboard.Files.Pending, dashboard.Files.Approved, dashboard.Files.Overdue))
	section("Vendors", fmt.Sprintf("Vendors: %d total, %d approved, %d pending, %d expiring within 30 days",
		dashboard.Vendors.Total, dashboard.Vendors.Approved, dashboard.Vendors.Pending, len(expiring)))
	section("Alerts", fmt.Sprintf("Alerts: %d total, %d active critical, %d active warning",
		dashboard.Alerts.Total, dashboard.Alerts.Critical, dashboard.Alerts.Warning))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to render summary report", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="summary.pdf"`)
	_, _ = w.Write(buf.Bytes())
}
