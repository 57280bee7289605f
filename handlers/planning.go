package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"vrshow/services"
)

// HandlePlanningView projects the quote onto the sequential timeline and
// returns the generated tasks. The planning is always derived from the
// current quote, never stored.
func HandlePlanningView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("projects", e.Request.PathValue("id"))
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Project not found")
		}

		tasks := services.GeneratePlanning(projectQuote(rec))
		return e.JSON(http.StatusOK, map[string]any{
			"tasks":      tasks,
			"total_days": services.PlanningTotalDays(tasks),
			"start_date": rec.GetString("start_date"),
		})
	}
}

// HandlePlanningExportCSV downloads the timeline as a semicolon separated
// CSV. Dates are anchored on the project start date; a project without one
// falls back to today.
func HandlePlanningExportCSV(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("projects", e.Request.PathValue("id"))
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Project not found")
		}

		startDate, err := time.Parse("2006-01-02", rec.GetString("start_date"))
		if err != nil {
			startDate = time.Now()
		}

		tasks := services.GeneratePlanning(projectQuote(rec))
		csvBytes := services.ExportPlanningCSV(tasks, startDate, services.PlanningTotalDays(tasks))

		e.Response.Header().Set("Content-Type", "text/csv; charset=utf-8")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, services.PlanningCSVFilename))
		e.Response.Write(csvBytes)
		return nil
	}
}
