// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"vrshow/collections"
	"vrshow/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestProject creates a project record with the given name and returns it.
func CreateTestProject(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		t.Fatalf("failed to find projects collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("project_type", "UnityVR")
	record.Set("start_date", "2026-03-02")
	record.Set("margin_percent", services.MarginDefault)
	record.Set("required_roles", []string{})
	record.Set("invited_team", []services.InvitedMember{})
	record.Set("quote", []services.QuoteLine{})

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test project: %v", err)
	}

	return record
}

// CreateTestBid creates a bid record linked to a project and returns it.
func CreateTestBid(t *testing.T, app *pocketbase.PocketBase, projectID, designation string, unitCost, days float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("bids")
	if err != nil {
		t.Fatalf("failed to find bids collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("project", projectID)
	record.Set("designation", designation)
	record.Set("unit_cost", unitCost)
	record.Set("days", days)
	record.Set("responder_email", "provider@test.fr")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test bid: %v", err)
	}

	return record
}

// SetProjectQuote stores the given lines as the project's current quote.
func SetProjectQuote(t *testing.T, app *pocketbase.PocketBase, project *core.Record, lines []services.QuoteLine) {
	t.Helper()

	project.Set("quote", lines)
	if err := app.Save(project); err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}
}

// AssertBodyContains checks that body contains all specified fragments.
func AssertBodyContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected body to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
