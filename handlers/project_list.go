package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleProjectList returns every project, newest first.
func HandleProjectList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectsCol, err := app.FindCollectionByNameOrId("projects")
		if err != nil {
			log.Printf("project_list: could not find projects collection: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindRecordsByFilter(projectsCol, "id != ''", "-created", 0, 0)
		if err != nil {
			log.Printf("project_list: could not query projects: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		projects := make([]map[string]any, 0, len(records))
		for _, rec := range records {
			projects = append(projects, projectResponse(rec))
		}
		return e.JSON(http.StatusOK, map[string]any{"projects": projects})
	}
}
