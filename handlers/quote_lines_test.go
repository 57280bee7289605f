package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"vrshow/services"
	"vrshow/testhelpers"
)

func threeLineQuote() []services.QuoteLine {
	return []services.QuoteLine{
		{ID: "a", Role: "Chef de projet / Direction de production", UnitCost: 600, SalePrice: 1000, Days: 10, Order: 0},
		{ID: "b", Role: "Modeleur 3D", UnitCost: 300, SalePrice: 500, Days: 5, Order: 1},
		{ID: "c", Role: "Comédien", UnitCost: 400, SalePrice: 667, Days: 3, Order: 2},
	}
}

func TestHandleQuoteLineUpdate_PatchesDays(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	proj := testhelpers.CreateTestProject(t, app, "Patch")
	testhelpers.SetProjectQuote(t, app, proj, threeLineQuote())

	handler := HandleQuoteLineUpdate(app)

	form := url.Values{}
	form.Set("days", "8")

	req := newFormRequest(http.MethodPatch, "/api/projects/"+proj.Id+"/quote/lines/b", form)
	req.SetPathValue("id", proj.Id)
	req.SetPathValue("lineId", "b")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeQuoteResponse(t, rec.Body.Bytes())
	if resp.Lines[1].Days != 8 {
		t.Errorf("days = %v, want 8", resp.Lines[1].Days)
	}
	// Fields absent from the form stay put
	if resp.Lines[1].UnitCost != 300 || resp.Lines[1].SalePrice != 500 {
		t.Errorf("untouched fields changed: %+v", resp.Lines[1])
	}
}

func TestHandleQuoteLineUpdate_UnknownLineIsNoOp(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	proj := testhelpers.CreateTestProject(t, app, "Stale Patch")
	testhelpers.SetProjectQuote(t, app, proj, threeLineQuote())

	handler := HandleQuoteLineUpdate(app)

	form := url.Values{}
	form.Set("days", "99")

	req := newFormRequest(http.MethodPatch, "/api/projects/"+proj.Id+"/quote/lines/ghost", form)
	req.SetPathValue("id", proj.Id)
	req.SetPathValue("lineId", "ghost")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeQuoteResponse(t, rec.Body.Bytes())
	for _, l := range resp.Lines {
		if l.Days == 99 {
			t.Errorf("stale patch should not land: %+v", l)
		}
	}
}

func TestHandleQuoteLineDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	proj := testhelpers.CreateTestProject(t, app, "Removal")
	testhelpers.SetProjectQuote(t, app, proj, threeLineQuote())

	handler := HandleQuoteLineDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/api/projects/"+proj.Id+"/quote/lines/b", nil)
	req.SetPathValue("id", proj.Id)
	req.SetPathValue("lineId", "b")
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
	for _, l := range resp.Lines {
		if l.ID == "b" {
			t.Error("line b should be gone")
		}
	}
}

func TestHandleQuoteLineMove_Down(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	proj := testhelpers.CreateTestProject(t, app, "Reorder")
	testhelpers.SetProjectQuote(t, app, proj, threeLineQuote())

	handler := HandleQuoteLineMove(app)

	form := url.Values{}
	form.Set("direction", "down")

	req := newFormRequest(http.MethodPost, "/api/projects/"+proj.Id+"/quote/lines/a/move", form)
	req.SetPathValue("id", proj.Id)
	req.SetPathValue("lineId", "a")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeQuoteResponse(t, rec.Body.Bytes())
	wantOrder := []string{"b", "a", "c"}
	for i, want := range wantOrder {
		if resp.Lines[i].ID != want {
			t.Errorf("position %d = %q, want %q", i, resp.Lines[i].ID, want)
		}
		if resp.Lines[i].Order != i {
			t.Errorf("line %q order = %d, want %d", resp.Lines[i].ID, resp.Lines[i].Order, i)
		}
	}
}

func TestHandleQuoteLineMove_BadDirection(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	proj := testhelpers.CreateTestProject(t, app, "Sideways")
	testhelpers.SetProjectQuote(t, app, proj, threeLineQuote())

	handler := HandleQuoteLineMove(app)

	form := url.Values{}
	form.Set("direction", "sideways")

	req := newFormRequest(http.MethodPost, "/api/projects/"+proj.Id+"/quote/lines/a/move", form)
	req.SetPathValue("id", proj.Id)
	req.SetPathValue("lineId", "a")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
