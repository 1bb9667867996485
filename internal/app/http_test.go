package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taxguide/api/internal/content"
	"taxguide/api/internal/export"
	"taxguide/api/internal/store"
)

func newTestHandler(t *testing.T, fs *fakeStore) http.Handler {
	t.Helper()
	tree := content.NewManager()
	svc := New(fs, tree, Options{Exporter: export.NewService(fs, tree)})
	return NewHTTPServer(svc, "*").Handler()
}

func doJSON(t *testing.T, h http.Handler, method, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return m
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t, &fakeStore{})
	rec := doJSON(t, h, http.MethodGet, "/api/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if got := decodeMap(t, rec)["ok"]; got != true {
		t.Fatalf("expected ok true, got %v", got)
	}
}

func TestReadyReportsDatabaseFailure(t *testing.T) {
	h := newTestHandler(t, &fakeStore{pingErr: errors.New("dial refused")})
	rec := doJSON(t, h, http.MethodGet, "/api/ready", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status %d", rec.Code)
	}
	body := decodeMap(t, rec)
	if body["status"] != "not_ready" {
		t.Fatalf("expected not_ready, got %v", body["status"])
	}
}

func TestOptionsShortCircuitsWithCORS(t *testing.T) {
	h := newTestHandler(t, &fakeStore{})
	rec := doJSON(t, h, http.MethodOptions, "/api/tax-brackets", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("missing CORS header")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing request id header")
	}
}

func TestTaxBracketCreateValidationOrder(t *testing.T) {
	h := newTestHandler(t, &fakeStore{})

	steps := []struct {
		payload map[string]any
		code    string
	}{
		{map[string]any{}, "MISSING_YEAR"},
		{map[string]any{"year": 2025}, "MISSING_FILING_STATUS"},
		{map[string]any{"year": 2025, "filingStatus": "Single"}, "MISSING_BRACKET_MIN"},
		{map[string]any{"year": 2025, "filingStatus": "Single", "bracketMin": 0}, "MISSING_TAX_RATE"},
		{map[string]any{"year": "abc", "filingStatus": "Single", "bracketMin": 0, "taxRate": 0.1}, "INVALID_YEAR"},
		{map[string]any{"year": 2025, "filingStatus": "Single", "bracketMin": "x", "taxRate": 0.1}, "INVALID_BRACKET_MIN"},
		{map[string]any{"year": 2025, "filingStatus": "Single", "bracketMin": 0, "bracketMax": "x", "taxRate": 0.1}, "INVALID_BRACKET_MAX"},
		{map[string]any{"year": 2025, "filingStatus": "Single", "bracketMin": 0, "taxRate": "x"}, "INVALID_TAX_RATE"},
	}
	for _, step := range steps {
		rec := doJSON(t, h, http.MethodPost, "/api/tax-brackets", step.payload)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("payload %v: status %d", step.payload, rec.Code)
		}
		if got := decodeMap(t, rec)["code"]; got != step.code {
			t.Fatalf("payload %v: code %v, want %s", step.payload, got, step.code)
		}
	}
}

func TestTaxBracketCreateAcceptsNumericStringsAndNullMax(t *testing.T) {
	h := newTestHandler(t, &fakeStore{})
	rec := doJSON(t, h, http.MethodPost, "/api/tax-brackets", map[string]any{
		"year":         "2025",
		"filingStatus": " Single ",
		"bracketMin":   "609351",
		"bracketMax":   nil,
		"taxRate":      0.37,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d body %s", rec.Code, rec.Body.String())
	}
	body := decodeMap(t, rec)
	if body["filingStatus"] != "Single" {
		t.Fatalf("expected trimmed filing status, got %v", body["filingStatus"])
	}
	if body["year"] != float64(2025) || body["bracketMin"] != float64(609351) {
		t.Fatalf("numeric strings not parsed: %v", body)
	}
	if body["bracketMax"] != nil {
		t.Fatalf("expected null bracketMax, got %v", body["bracketMax"])
	}
	if body["createdAt"] == "" || body["createdAt"] == nil {
		t.Fatal("createdAt should be server stamped")
	}
}

func TestStandardDeductionCreateScenario(t *testing.T) {
	h := newTestHandler(t, &fakeStore{})
	rec := doJSON(t, h, http.MethodPost, "/api/standard-deductions", map[string]any{
		"year":         2026,
		"filingStatus": " Single ",
		"amount":       "16000",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d body %s", rec.Code, rec.Body.String())
	}
	body := decodeMap(t, rec)
	if body["filingStatus"] != "Single" || body["year"] != float64(2026) || body["amount"] != float64(16000) {
		t.Fatalf("unexpected record %v", body)
	}
}

func TestListFilterAndLimitClamp(t *testing.T) {
	var captured store.ListQuery
	fs := &fakeStore{
		listTaxBrackets: func(_ context.Context, q store.ListQuery) ([]store.TaxBracket, error) {
			captured = q
			return []store.TaxBracket{}, nil
		},
	}
	h := newTestHandler(t, fs)
	rec := doJSON(t, h, http.MethodGet, "/api/tax-brackets?limit=500&offset=3&year=abc&filingStatus=Single", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if captured.Limit != 100 {
		t.Fatalf("limit not clamped: %d", captured.Limit)
	}
	if captured.Offset != 3 {
		t.Fatalf("offset %d", captured.Offset)
	}
	if captured.Year != nil {
		t.Fatal("malformed year should be ignored for tax brackets")
	}
	if captured.FilingStatus != "Single" {
		t.Fatalf("filingStatus %q", captured.FilingStatus)
	}
}

func TestYearFilterRejection(t *testing.T) {
	h := newTestHandler(t, &fakeStore{})

	rec := doJSON(t, h, http.MethodGet, "/api/standard-deductions?year=abc", nil)
	if rec.Code != http.StatusBadRequest || decodeMap(t, rec)["code"] != "INVALID_YEAR" {
		t.Fatalf("standard-deductions: status %d body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodGet, "/api/retirement-limits?year=abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("retirement-limits: status %d", rec.Code)
	}
	if body := decodeMap(t, rec); body["error"] != "Invalid year parameter" {
		t.Fatalf("retirement-limits message %v", body["error"])
	}
}

func TestInvalidIDParam(t *testing.T) {
	h := newTestHandler(t, &fakeStore{})
	for _, target := range []string{
		"/api/tax-brackets?id=abc",
		"/api/government-references?id=0",
		"/api/salt-history?id=-4",
	} {
		rec := doJSON(t, h, http.MethodDelete, target, nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status %d", target, rec.Code)
		}
		body := decodeMap(t, rec)
		if body["code"] != "INVALID_ID" || body["error"] != "Valid ID is required" {
			t.Fatalf("%s: body %v", target, body)
		}
	}
}

func TestGetByIDNotFound(t *testing.T) {
	h := newTestHandler(t, &fakeStore{})
	rec := doJSON(t, h, http.MethodGet, "/api/tax-brackets?id=999", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
	body := decodeMap(t, rec)
	if body["code"] != "NOT_FOUND" || body["error"] != "Tax bracket not found" {
		t.Fatalf("body %v", body)
	}
}

func TestSaltNotFoundOmitsCode(t *testing.T) {
	h := newTestHandler(t, &fakeStore{})
	rec := doJSON(t, h, http.MethodGet, "/api/salt-history?id=999", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
	body := decodeMap(t, rec)
	if body["error"] != "Record not found" {
		t.Fatalf("body %v", body)
	}
	if _, hasCode := body["code"]; hasCode {
		t.Fatal("salt-history 404 must not carry a code")
	}
}

func TestEmptyUpdateReturnsStoredRecord(t *testing.T) {
	stored := store.TaxBracket{ID: 4, Year: 2025, FilingStatus: "Single", BracketMin: 0, TaxRate: 0.1, CreatedAt: "2025-01-01T00:00:00Z"}
	fs := &fakeStore{
		getTaxBracket: func(_ context.Context, id int64) (store.TaxBracket, error) {
			return stored, nil
		},
		updateTaxBracket: func(_ context.Context, id int64, upd store.TaxBracketUpdate) (store.TaxBracket, error) {
			if upd.Year.Set || upd.FilingStatus.Set || upd.BracketMin.Set || upd.BracketMax.Set || upd.TaxRate.Set {
				t.Fatal("no fields should be set for an empty update")
			}
			return stored, nil
		},
	}
	h := newTestHandler(t, fs)
	rec := doJSON(t, h, http.MethodPut, "/api/tax-brackets?id=4", map[string]any{})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d body %s", rec.Code, rec.Body.String())
	}
	if body := decodeMap(t, rec); body["id"] != float64(4) {
		t.Fatalf("body %v", body)
	}
}

func TestGovernmentReferenceEmptyUpdateRejected(t *testing.T) {
	fs := &fakeStore{
		getGovernmentReference: func(_ context.Context, id int64) (store.GovernmentReference, error) {
			return store.GovernmentReference{ID: id}, nil
		},
	}
	h := newTestHandler(t, fs)
	rec := doJSON(t, h, http.MethodPut, "/api/government-references?id=1", map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
	body := decodeMap(t, rec)
	if body["code"] != "NO_UPDATES" || body["error"] != "No fields to update" {
		t.Fatalf("body %v", body)
	}
}

func TestGovernmentReferenceCreateValidatesURL(t *testing.T) {
	h := newTestHandler(t, &fakeStore{})
	rec := doJSON(t, h, http.MethodPost, "/api/government-references", map[string]any{
		"category":       "IRS Notice",
		"title":          "Notice 2024-80",
		"citationNumber": "2024-80",
		"url":            "not a url",
		"publishedDate":  "2024-11-01",
		"description":    "COLA limits",
	})
	if rec.Code != http.StatusBadRequest || decodeMap(t, rec)["code"] != "INVALID_URL" {
		t.Fatalf("status %d body %s", rec.Code, rec.Body.String())
	}
}

func TestProvisionCreateRequiresBooleanIsTemporary(t *testing.T) {
	h := newTestHandler(t, &fakeStore{})
	payload := map[string]any{
		"provisionName":     "Senior Deduction",
		"description":       "Extra deduction",
		"effectiveDate":     "2025-01-01",
		"publicLawCitation": "P.L. 119-21",
		"ircSection":        "§70103",
	}
	rec := doJSON(t, h, http.MethodPost, "/api/new-provisions", payload)
	if rec.Code != http.StatusBadRequest || decodeMap(t, rec)["code"] != "INVALID_IS_TEMPORARY" {
		t.Fatalf("status %d body %s", rec.Code, rec.Body.String())
	}

	payload["isTemporary"] = true
	payload["expirationDate"] = "  2028-12-31  "
	rec = doJSON(t, h, http.MethodPost, "/api/new-provisions", payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d body %s", rec.Code, rec.Body.String())
	}
	body := decodeMap(t, rec)
	if body["isTemporary"] != true || body["expirationDate"] != "2028-12-31" {
		t.Fatalf("body %v", body)
	}
}

func TestDeleteResponseShapes(t *testing.T) {
	fs := &fakeStore{
		deleteTaxBracket: func(_ context.Context, id int64) (store.TaxBracket, error) {
			return store.TaxBracket{ID: id}, nil
		},
		deleteStandardDeduction: func(_ context.Context, id int64) (store.StandardDeduction, error) {
			return store.StandardDeduction{ID: id}, nil
		},
		deleteGovernmentReference: func(_ context.Context, id int64) (store.GovernmentReference, error) {
			return store.GovernmentReference{ID: id}, nil
		},
	}
	h := newTestHandler(t, fs)

	rec := doJSON(t, h, http.MethodDelete, "/api/tax-brackets?id=1", nil)
	body := decodeMap(t, rec)
	if body["message"] != "Tax bracket deleted successfully" || body["deletedRecord"] == nil {
		t.Fatalf("tax-brackets delete body %v", body)
	}

	rec = doJSON(t, h, http.MethodDelete, "/api/standard-deductions?id=1", nil)
	body = decodeMap(t, rec)
	if body["message"] != "Standard deduction deleted successfully" || body["deleted"] == nil {
		t.Fatalf("standard-deductions delete body %v", body)
	}

	rec = doJSON(t, h, http.MethodDelete, "/api/government-references?id=1", nil)
	body = decodeMap(t, rec)
	if body["message"] != "Government reference deleted successfully" || body["record"] == nil {
		t.Fatalf("government-references delete body %v", body)
	}
}

func TestDeleteNonexistentIsNotFound(t *testing.T) {
	h := newTestHandler(t, &fakeStore{})
	rec := doJSON(t, h, http.MethodDelete, "/api/government-references?id=99999", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
	if decodeMap(t, rec)["code"] != "NOT_FOUND" {
		t.Fatalf("body %s", rec.Body.String())
	}
}

func TestComparisonEndpoint(t *testing.T) {
	fs := &fakeStore{
		comparison: func(context.Context) (store.ComparisonData, error) {
			return store.ComparisonData{
				TaxBrackets: map[int][]store.TaxBracket{
					2024: make([]store.TaxBracket, 7),
					2025: make([]store.TaxBracket, 7),
				},
				StandardDeductions: map[int][]store.StandardDeduction{},
				RetirementLimits:   map[int][]store.RetirementLimit{},
				SaltDeductions:     map[int][]store.SaltDeduction{},
				Summary:            store.ComparisonSummary{TotalBrackets2024: 7, TotalBrackets2025: 7, RetirementAccountTypes2025: 6},
			}, nil
		},
	}
	h := newTestHandler(t, fs)
	rec := doJSON(t, h, http.MethodGet, "/api/comparison-data", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := decodeMap(t, rec)
	summary, ok := body["summary"].(map[string]any)
	if !ok || summary["totalBrackets2024"] != float64(7) {
		t.Fatalf("body %v", body)
	}
}

func TestGuideEndpoints(t *testing.T) {
	h := newTestHandler(t, &fakeStore{})

	rec := doJSON(t, h, http.MethodGet, "/api/guide", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("guide status %d", rec.Code)
	}
	sections, ok := decodeMap(t, rec)["sections"].([]any)
	if !ok || len(sections) != 4 {
		t.Fatalf("expected 4 top-level sections, got %v", len(sections))
	}

	rec = doJSON(t, h, http.MethodGet, "/api/guide/section-ids", nil)
	ids, ok := decodeMap(t, rec)["sectionIds"].([]any)
	if !ok || len(ids) != 21 {
		t.Fatalf("expected 21 section ids, got %v", len(ids))
	}

	// Queries shorter than three characters return nothing.
	rec = doJSON(t, h, http.MethodGet, "/api/guide/search?q=qq", nil)
	if results := decodeMap(t, rec)["results"].([]any); len(results) != 0 {
		t.Fatalf("short query should match nothing, got %d", len(results))
	}
}

func TestGuideEditAndSearchHighlight(t *testing.T) {
	h := newTestHandler(t, &fakeStore{})

	rec := doJSON(t, h, http.MethodPut, "/api/guide/sections?id=intro", map[string]any{
		"content": "<p>unobtainium planning</p>",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status %d body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodGet, "/api/guide/search?q=unobtainium", nil)
	body := decodeMap(t, rec)
	results, ok := body["results"].([]any)
	if !ok || len(results) != 1 {
		t.Fatalf("expected one search hit, got %v", body)
	}
	hit := results[0].(map[string]any)
	if hit["id"] != "intro" || !strings.Contains(hit["content"].(string), "<mark>unobtainium</mark>") {
		t.Fatalf("hit %v", hit)
	}

	rec = doJSON(t, h, http.MethodDelete, "/api/guide/sections?id=no-such", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("delete unknown section status %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/guide/sections?parentId=intro", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add subsection status %d body %s", rec.Code, rec.Body.String())
	}
}

func TestExportMarkdownEndpoint(t *testing.T) {
	h := newTestHandler(t, &fakeStore{})
	rec := doJSON(t, h, http.MethodGet, "/api/export/markdown", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d body %s", rec.Code, rec.Body.String())
	}
	if disp := rec.Header().Get("Content-Disposition"); !strings.Contains(disp, "KGOB-2025-Tax-Planning-Guide-") {
		t.Fatalf("disposition %q", disp)
	}
	if !strings.Contains(rec.Body.String(), "# 2025 Tax Planning Guide") {
		t.Fatal("markdown body missing title")
	}
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	h := newTestHandler(t, &fakeStore{})
	rec := doJSON(t, h, http.MethodGet, "/api/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
}
