package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"vrshow/services"
	"vrshow/testhelpers"
)

// quoteResponse decodes the standard quote payload.
type quoteResponse struct {
	Lines         []services.QuoteLine  `json:"lines"`
	Stats         services.SummaryStats `json:"stats"`
	MarginPercent float64               `json:"margin_percent"`
}

func decodeQuoteResponse(t *testing.T, body []byte) quoteResponse {
	t.Helper()
	var resp quoteResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return resp
}

func TestHandleQuoteView(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	proj := testhelpers.CreateTestProject(t, app, "Quote View")
	testhelpers.SetProjectQuote(t, app, proj, []services.QuoteLine{
		{ID: "l1", Role: "Modeleur 3D", UnitCost: 300, SalePrice: 500, Days: 5, Order: 0},
		{ID: "l2", Role: "Sound designer", UnitCost: 200, SalePrice: 334, Days: 2, Order: 1},
	})

	handler := HandleQuoteView(app)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/"+proj.Id+"/quote", nil)
	req.SetPathValue("id", proj.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeQuoteResponse(t, rec.Body.Bytes())
	if len(resp.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(resp.Lines))
	}
	if resp.Stats.TotalRevenue != 2500+668 {
		t.Errorf("TotalRevenue = %v, want 3168", resp.Stats.TotalRevenue)
	}
	if resp.MarginPercent != services.MarginDefault {
		t.Errorf("MarginPercent = %v, want %v", resp.MarginPercent, services.MarginDefault)
	}
}

func TestHandleQuoteSelectBid_PromotesBid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	proj := testhelpers.CreateTestProject(t, app, "Selection")
	bid := testhelpers.CreateTestBid(t, app, proj.Id, "Modeleur 3D", 300, 5)

	handler := HandleQuoteSelectBid(app)

	form := url.Values{}
	form.Set("bid_id", bid.Id)

	req := newFormRequest(http.MethodPost, "/api/projects/"+proj.Id+"/quote/select", form)
	req.SetPathValue("id", proj.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeQuoteResponse(t, rec.Body.Bytes())
	if len(resp.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(resp.Lines))
	}
	line := resp.Lines[0]
	if line.Role != "Modeleur 3D" {
		t.Errorf("role = %q", line.Role)
	}
	// 300 at the default 40% margin
	if line.SalePrice != 500 {
		t.Errorf("sale price = %v, want 500", line.SalePrice)
	}
	if line.ID == "" || line.ID == bid.Id {
		t.Errorf("expected a fresh line identifier, got %q", line.ID)
	}
}

func TestHandleQuoteSelectBid_ReplacesSameRole(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	proj := testhelpers.CreateTestProject(t, app, "Replacement")
	testhelpers.SetProjectQuote(t, app, proj, []services.QuoteLine{
		{ID: "old", Role: "Modeleur 3D", UnitCost: 350, SalePrice: 583, Days: 6, Order: 0},
		{ID: "keep", Role: "Comédien", UnitCost: 400, SalePrice: 667, Days: 3, Order: 1},
	})
	bid := testhelpers.CreateTestBid(t, app, proj.Id, "Modeleur 3D", 300, 5)

	handler := HandleQuoteSelectBid(app)

	form := url.Values{}
	form.Set("bid_id", bid.Id)

	req := newFormRequest(http.MethodPost, "/api/projects/"+proj.Id+"/quote/select", form)
	req.SetPathValue("id", proj.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decodeQuoteResponse(t, rec.Body.Bytes())
	if len(resp.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(resp.Lines))
	}
	// The replacement keeps the replaced line's position
	if resp.Lines[0].Role != "Modeleur 3D" || resp.Lines[0].UnitCost != 300 {
		t.Errorf("first line = %+v", resp.Lines[0])
	}
	if resp.Lines[1].ID != "keep" {
		t.Errorf("second line = %+v", resp.Lines[1])
	}
}

func TestHandleQuoteSelectBid_BidFromOtherProject(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	proj := testhelpers.CreateTestProject(t, app, "Mine")
	other := testhelpers.CreateTestProject(t, app, "Theirs")
	foreign := testhelpers.CreateTestBid(t, app, other.Id, "Modeleur 3D", 300, 5)

	handler := HandleQuoteSelectBid(app)

	form := url.Values{}
	form.Set("bid_id", foreign.Id)

	req := newFormRequest(http.MethodPost, "/api/projects/"+proj.Id+"/quote/select", form)
	req.SetPathValue("id", proj.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for a foreign bid, got %d", rec.Code)
	}
}

func TestHandleQuoteMargin_RepricesLines(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	proj := testhelpers.CreateTestProject(t, app, "Repricing")
	testhelpers.SetProjectQuote(t, app, proj, []services.QuoteLine{
		{ID: "l1", Role: "Modeleur 3D", UnitCost: 300, SalePrice: 500, Days: 5, Order: 0},
		{ID: "l2", Role: "Sound designer", UnitCost: 200, SalePrice: 334, Days: 2, Order: 1},
	})

	handler := HandleQuoteMargin(app)

	form := url.Values{}
	form.Set("margin_percent", "50")

	req := newFormRequest(http.MethodPost, "/api/projects/"+proj.Id+"/quote/margin", form)
	req.SetPathValue("id", proj.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeQuoteResponse(t, rec.Body.Bytes())
	if resp.MarginPercent != 50 {
		t.Errorf("MarginPercent = %v, want 50", resp.MarginPercent)
	}
	if resp.Lines[0].SalePrice != 600 {
		t.Errorf("line 0 sale price = %v, want 600", resp.Lines[0].SalePrice)
	}
	if resp.Lines[1].SalePrice != 400 {
		t.Errorf("line 1 sale price = %v, want 400", resp.Lines[1].SalePrice)
	}

	updated, _ := app.FindRecordById("projects", proj.Id)
	if updated.GetFloat("margin_percent") != 50 {
		t.Errorf("persisted margin = %v, want 50", updated.GetFloat("margin_percent"))
	}
}

func TestHandleQuoteMargin_RejectsHundred(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	proj := testhelpers.CreateTestProject(t, app, "Too Much")
	handler := HandleQuoteMargin(app)

	form := url.Values{}
	form.Set("margin_percent", "100")

	req := newFormRequest(http.MethodPost, "/api/projects/"+proj.Id+"/quote/margin", form)
	req.SetPathValue("id", proj.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
