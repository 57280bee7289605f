package collections_test

import (
	"testing"

	"vrshow/collections"
	"vrshow/services"
	"vrshow/testhelpers"
)

func TestSeed_CreatesData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	// Verify project was created
	projectsCol, _ := app.FindCollectionByNameOrId("projects")
	projects, err := app.FindAllRecords(projectsCol)
	if err != nil {
		t.Fatalf("query projects error: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	if projects[0].GetString("name") != "Expérience VR — Musée Océanographique" {
		t.Errorf("project name = %q, want %q", projects[0].GetString("name"), "Expérience VR — Musée Océanographique")
	}

	// Verify the full positions catalog
	positionsCol, _ := app.FindCollectionByNameOrId("positions")
	positions, _ := app.FindAllRecords(positionsCol)
	if len(positions) != len(services.DefaultPositions) {
		t.Errorf("expected %d positions, got %d", len(services.DefaultPositions), len(positions))
	}

	// Verify bids were created and linked to the project
	bidsCol, _ := app.FindCollectionByNameOrId("bids")
	bids, _ := app.FindAllRecords(bidsCol)
	if len(bids) == 0 {
		t.Fatal("expected bids to be created")
	}
	for _, b := range bids {
		if b.GetString("project") != projects[0].Id {
			t.Errorf("bid %s project = %q, want %q", b.Id, b.GetString("project"), projects[0].Id)
		}
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	// Should still have exactly 1 project
	projectsCol, _ := app.FindCollectionByNameOrId("projects")
	projects, _ := app.FindAllRecords(projectsCol)
	if len(projects) != 1 {
		t.Errorf("expected 1 project after idempotent seed, got %d", len(projects))
	}

	// Positions catalog should not be duplicated
	positionsCol, _ := app.FindCollectionByNameOrId("positions")
	positions, _ := app.FindAllRecords(positionsCol)
	if len(positions) != len(services.DefaultPositions) {
		t.Errorf("expected %d positions after idempotent seed, got %d", len(services.DefaultPositions), len(positions))
	}
}

func TestSeed_CompetingBids(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	bidsCol, _ := app.FindCollectionByNameOrId("bids")

	// Modeleur 3D has two competing offers
	modeleurs, _ := app.FindRecordsByFilter(
		bidsCol,
		"designation = {:d}",
		"", 0, 0,
		map[string]any{"d": "Modeleur 3D"},
	)
	if len(modeleurs) != 2 {
		t.Errorf("expected 2 Modeleur 3D bids, got %d", len(modeleurs))
	}

	// Comédien offers tie on total by design
	comediens, _ := app.FindRecordsByFilter(
		bidsCol,
		"designation = {:d}",
		"", 0, 0,
		map[string]any{"d": "Comédien"},
	)
	if len(comediens) != 2 {
		t.Fatalf("expected 2 Comédien bids, got %d", len(comediens))
	}
	t0 := comediens[0].GetFloat("unit_cost") * comediens[0].GetFloat("days")
	t1 := comediens[1].GetFloat("unit_cost") * comediens[1].GetFloat("days")
	if t0 != t1 {
		t.Errorf("Comédien bid totals differ: %v vs %v", t0, t1)
	}
}

func TestSeed_InvitedTeamSlots(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	projectsCol, _ := app.FindCollectionByNameOrId("projects")
	projects, _ := app.FindAllRecords(projectsCol)

	var team []services.InvitedMember
	if err := projects[0].UnmarshalJSONField("invited_team", &team); err != nil {
		t.Fatalf("unmarshal invited_team: %v", err)
	}
	if len(team) != services.InviteSlots {
		t.Fatalf("expected %d invite slots, got %d", services.InviteSlots, len(team))
	}
	for i, m := range team {
		if len(m.Code) != 4 {
			t.Errorf("slot %d code %q is not 4 digits", i, m.Code)
		}
	}
}

func TestSeed_SkipsWhenDataExists(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// Create a project first (not via Seed)
	testhelpers.CreateTestProject(t, app, "Existing Project")

	// Seed should skip because project data already exists
	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	projectsCol, _ := app.FindCollectionByNameOrId("projects")
	projects, _ := app.FindAllRecords(projectsCol)
	if len(projects) != 1 {
		t.Errorf("expected 1 project (pre-existing only), got %d", len(projects))
	}
	if projects[0].GetString("name") != "Existing Project" {
		t.Errorf("expected pre-existing project, got %q", projects[0].GetString("name"))
	}
}
