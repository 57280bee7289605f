package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"vrshow/services"
)

// HandleBidSubmit stores a provider's multi-line proposal. The form carries
// parallel designation, unit_cost and days fields, one entry per proposed
// role. Lines with a blank designation are skipped; numeric values that fail
// to parse coerce to 0. Each stored bid is stamped with the session email.
func HandleBidSubmit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project, err := app.FindRecordById("projects", e.Request.PathValue("id"))
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Project not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid form data")
		}
		form := e.Request.Form

		email := strings.TrimSpace(form.Get("responder_email"))
		if session := GetSession(e.Request); session != nil && session.Email != "" {
			email = session.Email
		}

		firstName := strings.TrimSpace(form.Get("first_name"))
		lastName := strings.TrimSpace(form.Get("last_name"))
		companyName := strings.TrimSpace(form.Get("company_name"))

		designations := form["designation"]
		unitCosts := form["unit_cost"]
		days := form["days"]

		bidsCol, err := app.FindCollectionByNameOrId("bids")
		if err != nil {
			log.Printf("bids: could not find bids collection: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		created := 0
		for i, designation := range designations {
			designation = strings.TrimSpace(designation)
			if designation == "" {
				continue
			}

			rec := core.NewRecord(bidsCol)
			rec.Set("project", project.Id)
			rec.Set("designation", designation)
			rec.Set("unit_cost", formValueFloat(unitCosts, i))
			rec.Set("days", formValueFloat(days, i))
			rec.Set("first_name", firstName)
			rec.Set("last_name", lastName)
			rec.Set("company_name", companyName)
			rec.Set("responder_email", email)

			if err := app.Save(rec); err != nil {
				log.Printf("bids: could not save bid for %q on project %s: %v", designation, project.Id, err)
				return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
			created++
		}

		if created == 0 {
			return jsonError(e, http.StatusBadRequest, "The proposal contains no valid lines")
		}
		return e.JSON(http.StatusCreated, map[string]any{"created": created})
	}
}

// formValueFloat reads the i-th value of a repeated form field, coercing
// missing or unparseable entries to 0.
func formValueFloat(values []string, i int) float64 {
	if i >= len(values) {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(values[i]), 64)
	if err != nil {
		return 0
	}
	return v
}

// HandleBidList returns the project's bids grouped by role, each bid rated
// against its competitors for the comparison view.
func HandleBidList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project, err := app.FindRecordById("projects", e.Request.PathValue("id"))
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Project not found")
		}

		bids, err := loadProjectBids(app, project.Id)
		if err != nil {
			log.Printf("bids: could not query bids for project %s: %v", project.Id, err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		groups := services.GroupBids(bids)
		if groups == nil {
			groups = []services.BidGroup{}
		}
		return e.JSON(http.StatusOK, map[string]any{"groups": groups})
	}
}

// loadProjectBids fetches a project's bids in submission order and maps the
// records onto quote lines.
func loadProjectBids(app *pocketbase.PocketBase, projectID string) ([]services.QuoteLine, error) {
	bidsCol, err := app.FindCollectionByNameOrId("bids")
	if err != nil {
		return nil, err
	}

	records, err := app.FindRecordsByFilter(
		bidsCol,
		"project = {:project}",
		"submitted", 0, 0,
		map[string]any{"project": projectID},
	)
	if err != nil {
		return nil, err
	}

	lines := make([]services.QuoteLine, 0, len(records))
	for _, rec := range records {
		lines = append(lines, services.QuoteLine{
			ID:             rec.Id,
			Role:           rec.GetString("designation"),
			UnitCost:       rec.GetFloat("unit_cost"),
			Days:           rec.GetFloat("days"),
			FirstName:      rec.GetString("first_name"),
			LastName:       rec.GetString("last_name"),
			CompanyName:    rec.GetString("company_name"),
			ResponderEmail: rec.GetString("responder_email"),
			SubmittedAt:    rec.GetString("submitted"),
		})
	}
	return lines, nil
}
