package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"

	"vrshow/services"
)

// MigrateProjectDefaults backfills projects created before the margin slider
// and the fixed invitation slots existed: a zero margin becomes the default,
// and the invited_team array is topped up to the full slot count. Safe to
// call on every startup -- returns early if nothing to migrate.
func MigrateProjectDefaults(app *pocketbase.PocketBase) error {
	projectsCol, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		return fmt.Errorf("migrate: could not find projects collection: %w", err)
	}

	records, err := app.FindAllRecords(projectsCol)
	if err != nil {
		return fmt.Errorf("migrate: could not query projects: %w", err)
	}

	migrated := 0
	for _, p := range records {
		changed := false

		if p.GetFloat("margin_percent") == 0 {
			p.Set("margin_percent", services.MarginDefault)
			changed = true
		}

		var team []services.InvitedMember
		if err := p.UnmarshalJSONField("invited_team", &team); err != nil {
			log.Printf("migrate: project %s has malformed invited_team, resetting: %v\n", p.Id, err)
			team = nil
		}
		if len(team) < services.InviteSlots {
			fresh := services.NewInviteSlots()
			copy(fresh, team)
			p.Set("invited_team", fresh)
			changed = true
		}

		if !changed {
			continue
		}
		if err := app.Save(p); err != nil {
			log.Printf("migrate: failed to update project %q (%s): %v\n", p.GetString("name"), p.Id, err)
			continue
		}
		migrated++
	}

	if migrated > 0 {
		log.Printf("migrate: backfilled defaults on %d project(s)\n", migrated)
	}
	return nil
}
