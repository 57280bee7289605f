package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"vrshow/collections"
	"vrshow/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections, seed demo data and backfill defaults on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateProjectDefaults(app); err != nil {
			log.Printf("Warning: project defaults migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve the dashboard frontend from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Resolve the session cookie globally
		se.Router.BindFunc(handlers.SessionMiddleware(app))

		// ── Session ──────────────────────────────────────────────
		se.Router.POST("/api/session", handlers.HandleSessionCreate(app))
		se.Router.DELETE("/api/session", handlers.HandleSessionDelete(app))

		// ── Project CRUD ─────────────────────────────────────────
		se.Router.GET("/api/projects", handlers.RequireAdmin(handlers.HandleProjectList(app)))
		se.Router.POST("/api/projects", handlers.RequireAdmin(handlers.HandleProjectCreate(app)))
		se.Router.GET("/api/projects/{id}", handlers.RequireSession(handlers.HandleProjectView(app)))
		se.Router.PATCH("/api/projects/{id}", handlers.RequireAdmin(handlers.HandleProjectUpdate(app)))
		se.Router.DELETE("/api/projects/{id}", handlers.RequireAdmin(handlers.HandleProjectDelete(app)))

		// ── Role catalog ─────────────────────────────────────────
		se.Router.GET("/api/positions", handlers.RequireSession(handlers.HandlePositionList(app)))
		se.Router.POST("/api/positions", handlers.RequireAdmin(handlers.HandlePositionCreate(app)))
		se.Router.DELETE("/api/positions/{id}", handlers.RequireAdmin(handlers.HandlePositionDelete(app)))

		// ── Invitations ──────────────────────────────────────────
		se.Router.GET("/api/projects/{id}/team", handlers.RequireAdmin(handlers.HandleTeamView(app)))
		se.Router.PATCH("/api/projects/{id}/team/{slot}", handlers.RequireAdmin(handlers.HandleTeamSlotUpdate(app)))

		// ── Bids ─────────────────────────────────────────────────
		se.Router.POST("/api/projects/{id}/bids", handlers.RequireSession(handlers.HandleBidSubmit(app)))
		se.Router.GET("/api/projects/{id}/bids", handlers.RequireAdmin(handlers.HandleBidList(app)))

		// ── Quote composition ────────────────────────────────────
		se.Router.GET("/api/projects/{id}/quote", handlers.RequireAdmin(handlers.HandleQuoteView(app)))
		se.Router.POST("/api/projects/{id}/quote/select", handlers.RequireAdmin(handlers.HandleQuoteSelectBid(app)))
		se.Router.POST("/api/projects/{id}/quote/margin", handlers.RequireAdmin(handlers.HandleQuoteMargin(app)))
		se.Router.PATCH("/api/projects/{id}/quote/lines/{lineId}", handlers.RequireAdmin(handlers.HandleQuoteLineUpdate(app)))
		se.Router.DELETE("/api/projects/{id}/quote/lines/{lineId}", handlers.RequireAdmin(handlers.HandleQuoteLineDelete(app)))
		se.Router.POST("/api/projects/{id}/quote/lines/{lineId}/move", handlers.RequireAdmin(handlers.HandleQuoteLineMove(app)))

		// ── Planning ─────────────────────────────────────────────
		se.Router.GET("/api/projects/{id}/planning", handlers.RequireAdmin(handlers.HandlePlanningView(app)))
		se.Router.GET("/api/projects/{id}/planning/export/csv", handlers.RequireAdmin(handlers.HandlePlanningExportCSV(app)))

		// ── Quote export ─────────────────────────────────────────
		se.Router.GET("/api/projects/{id}/quote/export/excel", handlers.RequireAdmin(handlers.HandleQuoteExportExcel(app)))
		se.Router.GET("/api/projects/{id}/quote/export/pdf", handlers.RequireAdmin(handlers.HandleQuoteExportPDF(app)))

		// ── Snapshots ────────────────────────────────────────────
		se.Router.GET("/api/snapshots", handlers.RequireAdmin(handlers.HandleSnapshotList(app)))
		se.Router.POST("/api/projects/{id}/snapshots", handlers.RequireAdmin(handlers.HandleSnapshotCreate(app)))
		se.Router.POST("/api/snapshots/{id}/restore", handlers.RequireAdmin(handlers.HandleSnapshotRestore(app)))
		se.Router.DELETE("/api/snapshots/{id}", handlers.RequireAdmin(handlers.HandleSnapshotDelete(app)))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
