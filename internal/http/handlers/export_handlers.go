package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/export"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/filter"
)

// periodLabel names the active window for export filenames. Dashboards
// without a reporting period carry a time range instead.
func periodLabel(s filter.Settings) string {
	if s.Period != "" {
		return s.Period
	}
	return s.TimeRange
}

// ExportCSVHandler godoc
// @Summary Export a dashboard's visible data as CSV
// @Description Exports the rows visible under the current filter state. An empty result is rejected with 422.
// @Tags exports
// @Produce json
// @Security BearerAuth
// @Param dashboard path string true "dashboard name"
// @Success 200 {object} ExportResult
// @Failure 404 {string} string "Unknown dashboard"
// @Failure 422 {string} string "No data to export"
// @Failure 500 {string} string "Export failed"
// @Router /dashboards/{dashboard}/export/csv [post]
func ExportCSVHandler(w http.ResponseWriter, r *http.Request) {
	dashboard := chi.URLParam(r, "dashboard")
	st, ok := sessions.snapshot(dashboard)
	if !ok {
		http.Error(w, "unknown dashboard", http.StatusNotFound)
		return
	}

	sheets, err := buildSheets(dashboard, st)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	name, warnings, err := exportSvc.ExportCSV(dashboard, periodLabel(st.Settings), export.Flatten(sheets))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ExportResult{Filename: name, Warnings: warnings})
}

// ExportWorkbookHandler godoc
// @Summary Export a dashboard as a spreadsheet workbook
// @Description One sheet per dashboard panel
// @Tags exports
// @Produce json
// @Security BearerAuth
// @Param dashboard path string true "dashboard name"
// @Success 200 {object} ExportResult
// @Failure 404 {string} string "Unknown dashboard"
// @Failure 422 {string} string "No data to export"
// @Failure 500 {string} string "Export failed"
// @Router /dashboards/{dashboard}/export/xlsx [post]
func ExportWorkbookHandler(w http.ResponseWriter, r *http.Request) {
	dashboard := chi.URLParam(r, "dashboard")
	st, ok := sessions.snapshot(dashboard)
	if !ok {
		http.Error(w, "unknown dashboard", http.StatusNotFound)
		return
	}

	sheets, err := buildSheets(dashboard, st)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	name, err := exportSvc.ExportWorkbook(dashboard, periodLabel(st.Settings), sheets)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ExportResult{Filename: name})
}

// ExportPDFHandler godoc
// @Summary Render a print-optimized PDF report of a dashboard
// @Description Builds the report and requests printing exactly once; the visible records are never mutated
// @Tags exports
// @Produce json
// @Security BearerAuth
// @Param dashboard path string true "dashboard name"
// @Success 200 {object} ExportResult
// @Failure 404 {string} string "Unknown dashboard"
// @Failure 422 {string} string "No data to export"
// @Failure 500 {string} string "Export failed"
// @Router /dashboards/{dashboard}/export/pdf [post]
func ExportPDFHandler(w http.ResponseWriter, r *http.Request) {
	dashboard := chi.URLParam(r, "dashboard")
	st, ok := sessions.snapshot(dashboard)
	if !ok {
		http.Error(w, "unknown dashboard", http.StatusNotFound)
		return
	}

	sheets, err := buildSheets(dashboard, st)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	name, err := exportSvc.ExportPDF(reportTitle(dashboard), dashboard, periodLabel(st.Settings), sheets)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ExportResult{Filename: name})
}

func reportTitle(dashboard string) string {
	switch dashboard {
	case DashboardOperations:
		return "Inventory Operations Report"
	case DashboardExecutive:
		return "Executive Summary Report"
	case DashboardSupplier:
		return "Supplier Performance Report"
	case DashboardForecast:
		return "Demand Forecast Report"
	}
	return "Dashboard Report"
}
