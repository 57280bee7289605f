package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"vrshow/services"
)

// HandlePositionList returns the role catalog in display order.
func HandlePositionList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		positionsCol, err := app.FindCollectionByNameOrId("positions")
		if err != nil {
			log.Printf("positions: could not find positions collection: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindRecordsByFilter(positionsCol, "id != ''", "sort_order", 0, 0)
		if err != nil {
			log.Printf("positions: could not query positions: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		positions := make([]map[string]any, 0, len(records))
		for _, rec := range records {
			positions = append(positions, map[string]any{
				"id":         rec.Id,
				"name":       rec.GetString("name"),
				"color":      rec.GetString("color"),
				"sort_order": rec.GetFloat("sort_order"),
			})
		}
		return e.JSON(http.StatusOK, map[string]any{"positions": positions})
	}
}

// HandlePositionCreate adds a custom role to the catalog. The color falls back
// to the standard palette entry for known roles.
func HandlePositionCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return jsonError(e, http.StatusBadRequest, "Position name is required")
		}

		existing, _ := app.FindRecordsByFilter(
			"positions",
			"name = {:name}",
			"", 1, 0,
			map[string]any{"name": name},
		)
		if len(existing) > 0 {
			return jsonError(e, http.StatusBadRequest, "A position with this name already exists")
		}

		color := strings.TrimSpace(e.Request.FormValue("color"))
		if color == "" {
			color = services.RoleColor(name)
		}

		positionsCol, err := app.FindCollectionByNameOrId("positions")
		if err != nil {
			log.Printf("positions: could not find positions collection: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		all, _ := app.FindAllRecords(positionsCol)

		rec := core.NewRecord(positionsCol)
		rec.Set("name", name)
		rec.Set("color", color)
		rec.Set("sort_order", len(all))

		if err := app.Save(rec); err != nil {
			log.Printf("positions: could not save position %q: %v", name, err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusCreated, map[string]any{
			"id":         rec.Id,
			"name":       rec.GetString("name"),
			"color":      rec.GetString("color"),
			"sort_order": rec.GetFloat("sort_order"),
		})
	}
}

// HandlePositionDelete removes a role from the catalog. Existing quote lines
// keep their designation; only the picker loses the entry.
func HandlePositionDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("positions", e.Request.PathValue("id"))
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Position not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("positions: could not delete position %s: %v", rec.Id, err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return e.NoContent(http.StatusNoContent)
	}
}
