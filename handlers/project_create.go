package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"vrshow/services"
)

// HandleProjectCreate creates a new project. The margin defaults to the
// standard slider value and the invitation slots are generated up front so
// provider codes can be handed out immediately.
func HandleProjectCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		brief := strings.TrimSpace(e.Request.FormValue("brief"))
		projectType := strings.TrimSpace(e.Request.FormValue("project_type"))
		startDate := strings.TrimSpace(e.Request.FormValue("start_date"))
		margin := formFloat(e, "margin_percent")

		errors := make(map[string]string)
		if name == "" {
			errors["name"] = "Project name is required"
		}

		validType := false
		for _, t := range services.ProjectTypeOptions {
			if projectType == t {
				validType = true
				break
			}
		}
		if !validType {
			projectType = services.ProjectTypeOptions[0]
		}

		if margin <= 0 {
			margin = services.MarginDefault
		}

		if name != "" {
			existing, _ := app.FindRecordsByFilter(
				"projects",
				"name = {:name}",
				"", 1, 0,
				map[string]any{"name": name},
			)
			if len(existing) > 0 {
				errors["name"] = "A project with this name already exists"
			}
		}

		if len(errors) > 0 {
			return e.JSON(http.StatusBadRequest, map[string]any{"errors": errors})
		}

		var roles []string
		for _, r := range e.Request.Form["required_roles"] {
			if r = strings.TrimSpace(r); r != "" {
				roles = append(roles, r)
			}
		}

		projectsCol, err := app.FindCollectionByNameOrId("projects")
		if err != nil {
			log.Printf("project_create: could not find projects collection: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(projectsCol)
		record.Set("name", name)
		record.Set("brief", brief)
		record.Set("project_type", projectType)
		record.Set("start_date", startDate)
		record.Set("margin_percent", margin)
		record.Set("required_roles", roles)
		record.Set("invited_team", services.NewInviteSlots())
		record.Set("quote", []services.QuoteLine{})

		if err := app.Save(record); err != nil {
			log.Printf("project_create: could not save project: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusCreated, projectResponse(record))
	}
}
