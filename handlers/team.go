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

// HandleTeamView returns the project's invitation slots, codes included.
// The route is admin-only; providers never see other codes.
func HandleTeamView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("projects", e.Request.PathValue("id"))
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Project not found")
		}

		team := projectTeam(rec)
		if team == nil {
			team = []services.InvitedMember{}
		}
		return e.JSON(http.StatusOK, map[string]any{"team": team})
	}
}

// HandleTeamSlotUpdate assigns or clears the email of one invitation slot.
// The slot's access code never changes; only the email is editable.
func HandleTeamSlotUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("projects", e.Request.PathValue("id"))
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Project not found")
		}

		slot, err := strconv.Atoi(e.Request.PathValue("slot"))
		if err != nil || slot < 0 || slot >= services.InviteSlots {
			return jsonError(e, http.StatusBadRequest, "Invalid slot index")
		}

		if err := e.Request.ParseForm(); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid form data")
		}
		email := strings.TrimSpace(e.Request.FormValue("email"))

		team := projectTeam(rec)
		if len(team) < services.InviteSlots {
			fresh := services.NewInviteSlots()
			copy(fresh, team)
			team = fresh
		}
		team = services.SetMemberEmail(team, slot, email)

		rec.Set("invited_team", team)
		if err := app.Save(rec); err != nil {
			log.Printf("team: could not save project %s: %v", rec.Id, err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, map[string]any{"team": team})
	}
}
