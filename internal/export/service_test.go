package export

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"taxguide/api/internal/content"
	"taxguide/api/internal/store"
)

type fakeDataStore struct {
	comparison func(ctx context.Context) (store.ComparisonData, error)
	provisions func(ctx context.Context, q store.ListQuery) ([]store.Provision, error)
	impacts    func(ctx context.Context, q store.ListQuery) ([]store.EntityImpact, error)
	references func(ctx context.Context, q store.ListQuery) ([]store.GovernmentReference, error)
}

func (f *fakeDataStore) Comparison(ctx context.Context) (store.ComparisonData, error) {
	return f.comparison(ctx)
}

func (f *fakeDataStore) ListProvisions(ctx context.Context, q store.ListQuery) ([]store.Provision, error) {
	return f.provisions(ctx, q)
}

func (f *fakeDataStore) ListEntityImpacts(ctx context.Context, q store.ListQuery) ([]store.EntityImpact, error) {
	return f.impacts(ctx, q)
}

func (f *fakeDataStore) ListGovernmentReferences(ctx context.Context, q store.ListQuery) ([]store.GovernmentReference, error) {
	return f.references(ctx, q)
}

type fakeTree struct{ sections []content.Section }

func (f *fakeTree) Tree() []content.Section { return f.sections }

func happyStore() *fakeDataStore {
	return &fakeDataStore{
		comparison: func(context.Context) (store.ComparisonData, error) {
			return store.ComparisonData{
				TaxBrackets: map[int][]store.TaxBracket{
					2024: {{Year: 2024, FilingStatus: "Single", BracketMin: 0, TaxRate: 0.10}},
					2025: {{Year: 2025, FilingStatus: "Single", BracketMin: 0, TaxRate: 0.10}},
				},
				StandardDeductions: map[int][]store.StandardDeduction{
					2024: {{Year: 2024, FilingStatus: "Single", Amount: 14600}},
					2025: {{Year: 2025, FilingStatus: "Single", Amount: 15750}},
				},
				RetirementLimits: map[int][]store.RetirementLimit{
					2024: {{Year: 2024, AccountType: "401(k)", ContributionLimit: 23000}},
					2025: {{Year: 2025, AccountType: "401(k)", ContributionLimit: 23500}},
				},
				SaltDeductions: map[int][]store.SaltDeduction{
					2024: {{Year: 2024, FilingStatus: "Single", DeductionCap: 10000}},
					2025: {{Year: 2025, FilingStatus: "Single", DeductionCap: 40000}},
				},
			}, nil
		},
		provisions: func(context.Context, store.ListQuery) ([]store.Provision, error) {
			return []store.Provision{{ProvisionName: "QBI Deduction", Description: "d", EffectiveDate: "2025-01-01", PublicLawCitation: "P.L. 119-21", IRCSection: "§70105"}}, nil
		},
		impacts: func(context.Context, store.ListQuery) ([]store.EntityImpact, error) {
			return []store.EntityImpact{}, nil
		},
		references: func(context.Context, store.ListQuery) ([]store.GovernmentReference, error) {
			return []store.GovernmentReference{}, nil
		},
	}
}

func TestExportMarkdown(t *testing.T) {
	svc := NewService(happyStore(), &fakeTree{sections: []content.Section{
		{ID: "intro", Title: "Overview", Content: "<p>hi</p>"},
	}})
	svc.now = func() time.Time {
		return time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	}

	result, err := svc.Export(context.Background(), FormatMarkdown)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if result.Filename != "KGOB-2025-Tax-Planning-Guide-2026-08-31.md" {
		t.Fatalf("unexpected filename %q", result.Filename)
	}
	if result.MimeType != "text/markdown; charset=utf-8" {
		t.Fatalf("unexpected mime type %q", result.MimeType)
	}

	md := string(result.Data)
	for _, want := range []string{"## Overview {#intro}", "QBI Deduction", "| Single | $14,600 | $15,750 | $1,150 |", "| 401(k) | $23,000 | $23,500 | $500 |"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestExportFailsWhenAnyFetchFails(t *testing.T) {
	st := happyStore()
	st.references = func(context.Context, store.ListQuery) ([]store.GovernmentReference, error) {
		return nil, errors.New("boom")
	}
	svc := NewService(st, &fakeTree{})

	if _, err := svc.Export(context.Background(), FormatMarkdown); err == nil {
		t.Fatal("expected export to fail when a fetch fails")
	}
}

func TestDeductionRowsPairing(t *testing.T) {
	rows := deductionRows(map[int][]store.StandardDeduction{
		2024: {
			{FilingStatus: "Single", Amount: 14600},
			{FilingStatus: "Head of Household", Amount: 21900},
		},
		2025: {
			{FilingStatus: "Single", Amount: 15750},
		},
	})
	if len(rows) != 1 {
		t.Fatalf("expected 1 paired row, got %d", len(rows))
	}
	if rows[0].FilingStatus != "Single" || rows[0].Change != 1150 {
		t.Fatalf("unexpected row %+v", rows[0])
	}
}
