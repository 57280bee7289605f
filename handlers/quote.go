package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"vrshow/services"
)

// quotePayload is the JSON shape shared by every quote mutation response:
// the full line set, its derived statistics and the project margin.
func quotePayload(rec *core.Record, lines []services.QuoteLine) map[string]any {
	if lines == nil {
		lines = []services.QuoteLine{}
	}
	return map[string]any{
		"lines":          lines,
		"stats":          services.ComputeStats(lines),
		"margin_percent": rec.GetFloat("margin_percent"),
	}
}

// saveQuote persists the line set on the project and writes the standard
// quote response.
func saveQuote(app *pocketbase.PocketBase, e *core.RequestEvent, rec *core.Record, lines []services.QuoteLine) error {
	rec.Set("quote", lines)
	if err := app.Save(rec); err != nil {
		log.Printf("quote: could not save project %s: %v", rec.Id, err)
		return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
	return e.JSON(http.StatusOK, quotePayload(rec, lines))
}

// HandleQuoteView returns the project's current quote with its statistics.
func HandleQuoteView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("projects", e.Request.PathValue("id"))
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Project not found")
		}
		return e.JSON(http.StatusOK, quotePayload(rec, projectQuote(rec)))
	}
}

// HandleQuoteSelectBid promotes a bid into the quote as the winning line for
// its role. A previously selected line for the same role is replaced and
// keeps its position in the quote order.
func HandleQuoteSelectBid(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("projects", e.Request.PathValue("id"))
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Project not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid form data")
		}
		bidID := strings.TrimSpace(e.Request.FormValue("bid_id"))
		if bidID == "" {
			return jsonError(e, http.StatusBadRequest, "Missing bid_id")
		}

		bidRec, err := app.FindRecordById("bids", bidID)
		if err != nil || bidRec.GetString("project") != rec.Id {
			return jsonError(e, http.StatusNotFound, "Bid not found")
		}

		lines := projectQuote(rec)

		bid := services.QuoteLine{
			Role:           bidRec.GetString("designation"),
			UnitCost:       bidRec.GetFloat("unit_cost"),
			Days:           bidRec.GetFloat("days"),
			FirstName:      bidRec.GetString("first_name"),
			LastName:       bidRec.GetString("last_name"),
			CompanyName:    bidRec.GetString("company_name"),
			ResponderEmail: bidRec.GetString("responder_email"),
			SubmittedAt:    bidRec.GetString("submitted"),
			Order:          len(lines),
		}
		for _, l := range lines {
			if l.Role == bid.Role {
				bid.Order = l.Order
				break
			}
		}

		updated, err := services.SelectBid(lines, bid, rec.GetFloat("margin_percent"))
		if err != nil {
			if errors.Is(err, services.ErrMarginOutOfRange) {
				return jsonError(e, http.StatusBadRequest, "Margin must be below 100%")
			}
			log.Printf("quote: could not select bid %s: %v", bidID, err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return saveQuote(app, e, rec, updated)
	}
}

// HandleQuoteMargin applies a new global margin: the project margin is
// updated and every line's sale price is recomputed from its unit cost.
func HandleQuoteMargin(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("projects", e.Request.PathValue("id"))
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Project not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid form data")
		}
		margin := formFloat(e, "margin_percent")

		updated, err := services.ApplyGlobalMargin(projectQuote(rec), margin)
		if err != nil {
			return jsonError(e, http.StatusBadRequest, "Margin must be below 100%")
		}

		rec.Set("margin_percent", margin)
		return saveQuote(app, e, rec, updated)
	}
}
