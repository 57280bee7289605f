package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"vrshow/services"
)

// HandleProjectUpdate patches a project's descriptive fields. Only the form
// fields present in the request are touched, so partial updates from the
// brief editor cannot clobber the rest of the record. Changing the margin
// here does not reprice the quote; the dedicated margin endpoint does that.
func HandleProjectUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("projects", e.Request.PathValue("id"))
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Project not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid form data")
		}
		form := e.Request.Form

		if form.Has("name") {
			name := strings.TrimSpace(form.Get("name"))
			if name == "" {
				return jsonError(e, http.StatusBadRequest, "Project name cannot be empty")
			}
			rec.Set("name", name)
		}
		if form.Has("brief") {
			rec.Set("brief", strings.TrimSpace(form.Get("brief")))
		}
		if form.Has("project_type") {
			projectType := strings.TrimSpace(form.Get("project_type"))
			valid := false
			for _, t := range services.ProjectTypeOptions {
				if projectType == t {
					valid = true
					break
				}
			}
			if !valid {
				return jsonError(e, http.StatusBadRequest, "Unknown project type")
			}
			rec.Set("project_type", projectType)
		}
		if form.Has("start_date") {
			rec.Set("start_date", strings.TrimSpace(form.Get("start_date")))
		}
		if form.Has("margin_percent") {
			rec.Set("margin_percent", formFloat(e, "margin_percent"))
		}
		if form.Has("required_roles") {
			var roles []string
			for _, r := range form["required_roles"] {
				if r = strings.TrimSpace(r); r != "" {
					roles = append(roles, r)
				}
			}
			rec.Set("required_roles", roles)
		}

		if err := app.Save(rec); err != nil {
			log.Printf("project_edit: could not save project %s: %v", rec.Id, err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return e.JSON(http.StatusOK, projectResponse(rec))
	}
}
