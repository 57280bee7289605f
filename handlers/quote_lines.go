package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"vrshow/services"
)

// HandleQuoteLineUpdate edits the numeric fields of one quote line. Only the
// form fields present in the request are applied.
func HandleQuoteLineUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("projects", e.Request.PathValue("id"))
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Project not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid form data")
		}
		form := e.Request.Form

		var patch services.LinePatch
		if form.Has("days") {
			v := formFloat(e, "days")
			patch.Days = &v
		}
		if form.Has("unit_cost") {
			v := formFloat(e, "unit_cost")
			patch.UnitCost = &v
		}
		if form.Has("sale_price") {
			v := formFloat(e, "sale_price")
			patch.SalePrice = &v
		}

		lines := services.UpdateLine(projectQuote(rec), e.Request.PathValue("lineId"), patch)
		return saveQuote(app, e, rec, lines)
	}
}

// HandleQuoteLineDelete removes one line from the quote.
func HandleQuoteLineDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("projects", e.Request.PathValue("id"))
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Project not found")
		}

		lines := services.RemoveLine(projectQuote(rec), e.Request.PathValue("lineId"))
		return saveQuote(app, e, rec, lines)
	}
}

// HandleQuoteLineMove reorders a line one step up or down. Moves past either
// end of the quote are silent no-ops.
func HandleQuoteLineMove(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("projects", e.Request.PathValue("id"))
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Project not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid form data")
		}

		direction := services.MoveDirection(e.Request.FormValue("direction"))
		if direction != services.MoveUp && direction != services.MoveDown {
			return jsonError(e, http.StatusBadRequest, "Direction must be up or down")
		}

		lines := services.MoveLine(projectQuote(rec), e.Request.PathValue("lineId"), direction)
		return saveQuote(app, e, rec, lines)
	}
}
