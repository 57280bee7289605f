package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"vrshow/services"
)

// ── Definition structs ───────────────────────────────────────────────────

type bidDef struct {
	designation    string
	unitCost       float64
	days           float64
	firstName      string
	lastName       string
	companyName    string
	responderEmail string
}

// Seed populates the collections with a realistic VR production project and
// its provider bids. It is safe to call on every startup because it returns
// early if any project records already exist.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if projects already exist ──────────────────
	projectsCol, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		return fmt.Errorf("seed: could not find projects collection: %w", err)
	}
	existing, err := app.FindAllRecords(projectsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query projects: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: projects collection is empty – inserting seed data …")

	positionsCol, err := app.FindCollectionByNameOrId("positions")
	if err != nil {
		return fmt.Errorf("seed: could not find positions collection: %w", err)
	}
	bidsCol, err := app.FindCollectionByNameOrId("bids")
	if err != nil {
		return fmt.Errorf("seed: could not find bids collection: %w", err)
	}

	// ── standard positions catalog ───────────────────────────────────
	for i, name := range services.DefaultPositions {
		r := core.NewRecord(positionsCol)
		r.Set("name", name)
		r.Set("color", services.RoleColor(name))
		r.Set("sort_order", i)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save position %q: %w", name, err)
		}
	}

	// ── helper: create bid ───────────────────────────────────────────
	createBid := func(projectID string, d bidDef) error {
		r := core.NewRecord(bidsCol)
		r.Set("project", projectID)
		r.Set("designation", d.designation)
		r.Set("unit_cost", d.unitCost)
		r.Set("days", d.days)
		r.Set("first_name", d.firstName)
		r.Set("last_name", d.lastName)
		r.Set("company_name", d.companyName)
		r.Set("responder_email", d.responderEmail)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save bid %q (%s): %w", d.designation, d.responderEmail, err)
		}
		return nil
	}

	// ══════════════════════════════════════════════════════════════════
	// PROJECT: Expérience VR — Musée Océanographique
	// ══════════════════════════════════════════════════════════════════

	p := core.NewRecord(projectsCol)
	p.Set("name", "Expérience VR — Musée Océanographique")
	p.Set("brief", "Visite immersive des fonds marins en Unity VR, 15 minutes, diffusion sur casques autonomes en salle d'exposition.")
	p.Set("project_type", "UnityVR")
	p.Set("start_date", "2026-03-02")
	p.Set("margin_percent", services.MarginDefault)
	p.Set("required_roles", []string{
		"Chef de projet / Direction de production",
		"Scénariste immersif",
		"Modeleur 3D",
		"Animateur 3D",
		"Sound designer",
		"Intégrateur Unity",
		"Comédien",
		"QA / Test VR",
	})
	p.Set("invited_team", []services.InvitedMember{
		{Email: "m.laurent@studio3d.fr", Code: "4821"},
		{Email: "sophie.v@freelance.io", Code: "7390"},
		{Email: "contact@wavesound.fr", Code: "1657"},
		{Code: "2943"},
		{Code: "8106"},
		{Code: "5372"},
		{Code: "9014"},
		{Code: "6258"},
		{Code: "3781"},
		{Code: "4509"},
	})
	p.Set("quote", []services.QuoteLine{})
	if err := app.Save(p); err != nil {
		return fmt.Errorf("seed: save project: %w", err)
	}

	// ── provider bids, two competing offers on most roles ────────────
	bids := []bidDef{
		{designation: "Chef de projet / Direction de production", unitCost: 650, days: 12,
			firstName: "Claire", lastName: "Dubois", companyName: "Immersive Prod", responderEmail: "c.dubois@immersiveprod.fr"},

		{designation: "Scénariste immersif", unitCost: 480, days: 6,
			firstName: "Julien", lastName: "Moreau", responderEmail: "j.moreau@plume-vr.fr"},
		{designation: "Scénariste immersif", unitCost: 520, days: 5,
			firstName: "Anaïs", lastName: "Bertrand", companyName: "Récits Augmentés", responderEmail: "anais@recits-augmentes.fr"},

		{designation: "Modeleur 3D", unitCost: 420, days: 15,
			firstName: "Marc", lastName: "Laurent", companyName: "Studio3D", responderEmail: "m.laurent@studio3d.fr"},
		{designation: "Modeleur 3D", unitCost: 390, days: 18,
			firstName: "Sophie", lastName: "Vidal", responderEmail: "sophie.v@freelance.io"},

		{designation: "Animateur 3D", unitCost: 450, days: 10,
			firstName: "Sophie", lastName: "Vidal", responderEmail: "sophie.v@freelance.io"},

		{designation: "Sound designer", unitCost: 380, days: 8,
			companyName: "WaveSound", responderEmail: "contact@wavesound.fr"},
		{designation: "Sound designer", unitCost: 350, days: 8,
			firstName: "Rémi", lastName: "Castel", responderEmail: "remi.castel@gmail.com"},

		{designation: "Intégrateur Unity", unitCost: 550, days: 20,
			firstName: "Thomas", lastName: "Girard", companyName: "PixelForge", responderEmail: "t.girard@pixelforge.dev"},

		// same total on purpose, both offers are valid best prices
		{designation: "Comédien", unitCost: 400, days: 3,
			firstName: "Léa", lastName: "Fontaine", responderEmail: "lea.fontaine@agence-voix.fr"},
		{designation: "Comédien", unitCost: 400, days: 3,
			firstName: "Hugo", lastName: "Perrin", responderEmail: "hugo.perrin@agence-voix.fr"},

		{designation: "QA / Test VR", unitCost: 320, days: 5,
			firstName: "Nadia", lastName: "Benali", companyName: "TestLab XR", responderEmail: "n.benali@testlabxr.fr"},
	}
	for _, b := range bids {
		if err := createBid(p.Id, b); err != nil {
			return err
		}
	}

	log.Printf("seed: inserted %d positions, 1 project, %d bids\n", len(services.DefaultPositions), len(bids))
	return nil
}
