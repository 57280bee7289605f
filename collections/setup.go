package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the projects, positions, bids and
// snapshots collections exist.
func Setup(app *pocketbase.PocketBase) {
	projects := ensureCollection(app, "projects", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "brief", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "project_type",
			Required:  true,
			Values:    []string{"UnityVR", "WebGL", "Video360", "Hybrid"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "start_date", Required: false})
		c.Fields.Add(&core.NumberField{Name: "margin_percent", Required: false})
		// required_roles and invited_team are JSON arrays, quote is the
		// ordered array of selected lines.
		c.Fields.Add(&core.JSONField{Name: "required_roles"})
		c.Fields.Add(&core.JSONField{Name: "invited_team"})
		c.Fields.Add(&core.JSONField{Name: "quote"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "positions", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "color", Required: false})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
	})

	ensureCollection(app, "bids", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "project",
			Required:      true,
			CollectionId:  projects.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "designation", Required: true})
		c.Fields.Add(&core.NumberField{Name: "unit_cost", Required: true})
		c.Fields.Add(&core.NumberField{Name: "sale_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "days", Required: true})
		c.Fields.Add(&core.TextField{Name: "first_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "last_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "company_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "responder_email", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "submitted", OnCreate: true})
	})

	ensureCollection(app, "snapshots", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "project",
			Required:      true,
			CollectionId:  projects.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "brief", Required: false})
		c.Fields.Add(&core.JSONField{Name: "quote"})
		c.Fields.Add(&core.JSONField{Name: "stats"})
		c.Fields.Add(&core.JSONField{Name: "invited_team"})
		c.Fields.Add(&core.AutodateField{Name: "saved", OnCreate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
