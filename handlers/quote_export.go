package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"vrshow/services"
)

// buildQuoteExportData fetches a project and assembles the payload the Excel
// and PDF renderers share.
func buildQuoteExportData(app *pocketbase.PocketBase, projectID string) (services.QuoteExportData, error) {
	rec, err := app.FindRecordById("projects", projectID)
	if err != nil {
		return services.QuoteExportData{}, fmt.Errorf("project not found: %w", err)
	}

	return services.BuildQuoteExport(
		rec.GetString("name"),
		rec.GetString("project_type"),
		rec.GetString("start_date"),
		projectQuote(rec),
	), nil
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleQuoteExportExcel generates and downloads the client quote as an
// Excel workbook.
func HandleQuoteExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return jsonError(e, http.StatusBadRequest, "Missing project ID")
		}

		data, err := buildQuoteExportData(app, projectID)
		if err != nil {
			log.Printf("quote_export: %v", err)
			return jsonError(e, http.StatusNotFound, "Project not found")
		}

		xlsxBytes, err := services.GenerateQuoteExcel(data)
		if err != nil {
			log.Printf("quote_export: failed to generate Excel: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Devis_%s_%d.xlsx", sanitizeFilename(data.ProjectName), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleQuoteExportPDF generates and downloads the client quote as a PDF.
func HandleQuoteExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return jsonError(e, http.StatusBadRequest, "Missing project ID")
		}

		data, err := buildQuoteExportData(app, projectID)
		if err != nil {
			log.Printf("quote_export: %v", err)
			return jsonError(e, http.StatusNotFound, "Project not found")
		}

		pdfBytes, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("quote_export: failed to generate PDF: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("Devis_%s_%d.pdf", sanitizeFilename(data.ProjectName), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
