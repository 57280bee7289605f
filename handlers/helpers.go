package handlers

import (
	"log"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"vrshow/services"
)

// jsonError writes a JSON error body with the given status code.
func jsonError(e *core.RequestEvent, statusCode int, message string) error {
	return e.JSON(statusCode, map[string]string{"error": message})
}

// formFloat reads a numeric form value. Values that fail to parse coerce to 0
// so a blank or garbled input never faults a request.
func formFloat(e *core.RequestEvent, name string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(e.Request.FormValue(name)), 64)
	if err != nil {
		return 0
	}
	return v
}

// projectQuote unmarshals the project's quote field. A malformed payload is
// logged and treated as an empty quote.
func projectQuote(rec *core.Record) []services.QuoteLine {
	var lines []services.QuoteLine
	if err := rec.UnmarshalJSONField("quote", &lines); err != nil {
		log.Printf("handlers: project %s has malformed quote, treating as empty: %v", rec.Id, err)
		return nil
	}
	return lines
}

// projectTeam unmarshals the project's invitation slots.
func projectTeam(rec *core.Record) []services.InvitedMember {
	var team []services.InvitedMember
	if err := rec.UnmarshalJSONField("invited_team", &team); err != nil {
		log.Printf("handlers: project %s has malformed invited_team, treating as empty: %v", rec.Id, err)
		return nil
	}
	return team
}

// projectResponse is the JSON shape of a project, with the quote and its
// derived statistics inlined. Invitation slots are deliberately left out;
// their access codes are only exposed on the team endpoint.
func projectResponse(rec *core.Record) map[string]any {
	quote := projectQuote(rec)
	if quote == nil {
		quote = []services.QuoteLine{}
	}

	var roles []string
	if err := rec.UnmarshalJSONField("required_roles", &roles); err != nil {
		roles = nil
	}
	if roles == nil {
		roles = []string{}
	}

	return map[string]any{
		"id":             rec.Id,
		"name":           rec.GetString("name"),
		"brief":          rec.GetString("brief"),
		"project_type":   rec.GetString("project_type"),
		"start_date":     rec.GetString("start_date"),
		"margin_percent": rec.GetFloat("margin_percent"),
		"required_roles": roles,
		"quote":          quote,
		"stats":          services.ComputeStats(quote),
		"created":        rec.GetString("created"),
		"updated":        rec.GetString("updated"),
	}
}
