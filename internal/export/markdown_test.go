package export

import (
	"strings"
	"testing"

	"taxguide/api/internal/content"
	"taxguide/api/internal/store"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<p>Hello <strong>world</strong></p>", "Hello world"},
		{"A&nbsp;B &amp; C", "A B & C"},
		{"&lt;tag&gt; &quot;q&quot;", `<tag> "q"`},
		{"  <div>trimmed</div>  ", "trimmed"},
		{"no markup", "no markup"},
		{"&unknown; stays", "&unknown; stays"},
	}
	for _, tt := range tests {
		if got := StripHTML(tt.in); got != tt.want {
			t.Errorf("StripHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatInt(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{23500, "23,500"},
		{1234567, "1,234,567"},
		{-11925, "-11,925"},
	}
	for _, tt := range tests {
		if got := formatInt(tt.in); got != tt.want {
			t.Errorf("formatInt(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	if got := formatRate(0.37); got != "37%" {
		t.Fatalf("formatRate(0.37) = %q", got)
	}
	if got := formatRate(0.10); got != "10%" {
		t.Fatalf("formatRate(0.10) = %q", got)
	}
	if got := formatRate(0.325); got != "32.5%" {
		t.Fatalf("formatRate(0.325) = %q", got)
	}
}

func sampleGuideData() GuideData {
	max := 11925
	exp := "2028-12-31"
	return GuideData{
		Sections: []content.Section{
			{ID: "intro", Title: "Overview", Content: "<p>Welcome &amp; hello</p>"},
		},
		TaxBrackets2024: []store.TaxBracket{
			{Year: 2024, FilingStatus: "Single", BracketMin: 0, BracketMax: &max, TaxRate: 0.10},
			{Year: 2024, FilingStatus: "Single", BracketMin: 609351, TaxRate: 0.37},
		},
		TaxBrackets2025: []store.TaxBracket{
			{Year: 2025, FilingStatus: "Single", BracketMin: 0, BracketMax: &max, TaxRate: 0.10},
		},
		Salt2024: []store.SaltDeduction{
			{Year: 2024, FilingStatus: "Single", DeductionCap: 10000},
		},
		Salt2025: []store.SaltDeduction{
			{Year: 2025, FilingStatus: "Single", DeductionCap: 40000},
		},
		Deductions: []DeductionRow{
			{FilingStatus: "Single", Amount2024: 14600, Amount2025: 15750, Change: 1150},
		},
		Limits: []LimitRow{
			{AccountType: "401(k)", Limit2024: 23000, Limit2025: 23500, Change: 500},
		},
		Provisions: []store.Provision{
			{ProvisionName: "Senior Deduction", Description: "Extra deduction", EffectiveDate: "2025-01-01", ExpirationDate: &exp, PublicLawCitation: "P.L. 119-21", IRCSection: "§70103", IsTemporary: true},
		},
		EntityImpacts: []store.EntityImpact{
			{EntityType: "S-Corp", ProvisionName: "QBI Deduction", ImpactDescription: "20% deduction", PotentialSavings: "Up to $10,000", Year: 2025},
		},
		References: []store.GovernmentReference{
			{Category: "IRS Notice", Title: "Notice 2024-80", CitationNumber: "2024-80", URL: "https://www.irs.gov", PublishedDate: "2024-11-01", Description: "COLA limits"},
		},
		GeneratedAt: "August 31, 2026",
	}
}

func TestGenerateMarkdown(t *testing.T) {
	md := string(GenerateMarkdown(sampleGuideData()))

	for _, want := range []string{
		"KGOB",
		"## Overview {#intro}",
		"Welcome & hello",
		"| Single | $0 | $11,925 | 10% |",
		"No limit",
		"Senior Deduction",
		"P.L. 119-21",
		"### S-Corp: QBI Deduction",
		"Notice 2024-80",
		"August 31, 2026",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
	if strings.Contains(md, "<p>") {
		t.Error("markdown should not contain raw HTML tags from section content")
	}
}
