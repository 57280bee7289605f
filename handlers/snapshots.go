package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"vrshow/services"
)

// HandleSnapshotList returns every saved snapshot, newest first.
func HandleSnapshotList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		snapshotsCol, err := app.FindCollectionByNameOrId("snapshots")
		if err != nil {
			log.Printf("snapshots: could not find snapshots collection: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindRecordsByFilter(snapshotsCol, "id != ''", "-saved", 0, 0)
		if err != nil {
			log.Printf("snapshots: could not query snapshots: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		snapshots := make([]map[string]any, 0, len(records))
		for _, rec := range records {
			snapshots = append(snapshots, snapshotResponse(rec))
		}
		return e.JSON(http.StatusOK, map[string]any{"snapshots": snapshots})
	}
}

// HandleSnapshotCreate freezes the project's current quote, statistics and
// invitation slots under a label. The label defaults to the project name.
func HandleSnapshotCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project, err := app.FindRecordById("projects", e.Request.PathValue("id"))
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Project not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid form data")
		}
		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			name = project.GetString("name")
		}

		snapshotsCol, err := app.FindCollectionByNameOrId("snapshots")
		if err != nil {
			log.Printf("snapshots: could not find snapshots collection: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		quote := projectQuote(project)

		rec := core.NewRecord(snapshotsCol)
		rec.Set("project", project.Id)
		rec.Set("name", name)
		rec.Set("brief", project.GetString("brief"))
		rec.Set("quote", quote)
		rec.Set("stats", services.ComputeStats(quote))
		rec.Set("invited_team", projectTeam(project))

		if err := app.Save(rec); err != nil {
			log.Printf("snapshots: could not save snapshot for project %s: %v", project.Id, err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return e.JSON(http.StatusCreated, snapshotResponse(rec))
	}
}

// HandleSnapshotRestore copies a snapshot's quote and invitation slots back
// onto its project, overwriting the current state.
func HandleSnapshotRestore(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("snapshots", e.Request.PathValue("id"))
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Snapshot not found")
		}

		project, err := app.FindRecordById("projects", rec.GetString("project"))
		if err != nil {
			return jsonError(e, http.StatusNotFound, "The snapshot's project no longer exists")
		}

		var quote []services.QuoteLine
		if err := rec.UnmarshalJSONField("quote", &quote); err != nil {
			log.Printf("snapshots: snapshot %s has malformed quote: %v", rec.Id, err)
			return jsonError(e, http.StatusInternalServerError, "Snapshot payload is unreadable")
		}
		var team []services.InvitedMember
		if err := rec.UnmarshalJSONField("invited_team", &team); err != nil {
			team = nil
		}

		project.Set("quote", quote)
		if team != nil {
			project.Set("invited_team", team)
		}
		if brief := rec.GetString("brief"); brief != "" {
			project.Set("brief", brief)
		}

		if err := app.Save(project); err != nil {
			log.Printf("snapshots: could not restore snapshot %s: %v", rec.Id, err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return e.JSON(http.StatusOK, projectResponse(project))
	}
}

// HandleSnapshotDelete removes a saved snapshot.
func HandleSnapshotDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("snapshots", e.Request.PathValue("id"))
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Snapshot not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("snapshots: could not delete snapshot %s: %v", rec.Id, err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return e.NoContent(http.StatusNoContent)
	}
}

// snapshotResponse is the JSON shape of a snapshot list entry. The frozen
// quote itself stays out of list responses; restore puts it back in play.
func snapshotResponse(rec *core.Record) map[string]any {
	var stats services.SummaryStats
	if err := rec.UnmarshalJSONField("stats", &stats); err != nil {
		log.Printf("snapshots: snapshot %s has malformed stats: %v", rec.Id, err)
	}
	return map[string]any{
		"id":      rec.Id,
		"project": rec.GetString("project"),
		"name":    rec.GetString("name"),
		"brief":   rec.GetString("brief"),
		"stats":   stats,
		"saved":   rec.GetString("saved"),
	}
}
