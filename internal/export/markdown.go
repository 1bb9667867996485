package export

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"taxguide/api/internal/store"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// StripHTML flattens a guide HTML fragment to plain text. Only the entities
// the authored content actually uses are translated; anything else passes
// through untouched.
func StripHTML(html string) string {
	s := htmlTagPattern.ReplaceAllString(html, "")
	replacer := strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&sup;", "",
	)
	return strings.TrimSpace(replacer.Replace(s))
}

// formatInt renders n with thousands separators, e.g. 11600 -> "11,600".
func formatInt(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

func formatRate(rate float64) string {
	s := strconv.FormatFloat(rate*100, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s + "%"
}

// GenerateMarkdown renders the complete guide document as Markdown.
func GenerateMarkdown(data GuideData) []byte {
	var b strings.Builder

	// Cover page
	b.WriteString("# 2025 Tax Planning Guide\n\n")
	b.WriteString("## KGOB - KohariGonzalez Oneyear&Brown\n")
	b.WriteString("### CPAs & Advisors\n\n")
	b.WriteString("_Comprehensive strategies for business owners, executives, and high-net-worth individuals_\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n", data.GeneratedAt)
	b.WriteString("**Let's Talk Growth®**\n\n")
	b.WriteString("---\n\n")

	// Table of contents
	b.WriteString("## Table of Contents\n\n")
	for i, section := range data.Sections {
		fmt.Fprintf(&b, "%d. [%s](#%s)\n", i+1, section.Title, section.ID)
		for j, sub := range section.Subsections {
			fmt.Fprintf(&b, "   %d.%d. [%s](#%s)\n", i+1, j+1, sub.Title, sub.ID)
		}
	}
	b.WriteString("\n---\n\n")

	// Guide content
	for _, section := range data.Sections {
		fmt.Fprintf(&b, "## %s {#%s}\n\n", section.Title, section.ID)
		b.WriteString(StripHTML(section.Content))
		b.WriteString("\n\n")
		for _, sub := range section.Subsections {
			fmt.Fprintf(&b, "### %s {#%s}\n\n", sub.Title, sub.ID)
			b.WriteString(StripHTML(sub.Content))
			b.WriteString("\n\n")
		}
		b.WriteString("---\n\n")
	}

	// Year comparison
	b.WriteString("## 2024 vs 2025 Tax Comparison\n\n")
	b.WriteString("### Federal Tax Brackets\n\n")
	if len(data.TaxBrackets2024) > 0 || len(data.TaxBrackets2025) > 0 {
		writeBracketTable(&b, "2024", data.TaxBrackets2024)
		writeBracketTable(&b, "2025", data.TaxBrackets2025)
	}

	b.WriteString("### Standard Deductions\n\n")
	b.WriteString("| Filing Status | 2024 | 2025 | Change |\n")
	b.WriteString("|---------------|------|------|--------|\n")
	for _, row := range data.Deductions {
		fmt.Fprintf(&b, "| %s | $%s | $%s | $%s |\n",
			row.FilingStatus, formatInt(row.Amount2024), formatInt(row.Amount2025), formatInt(row.Change))
	}
	b.WriteString("\n")

	b.WriteString("### Retirement Contribution Limits\n\n")
	b.WriteString("| Account Type | 2024 | 2025 | Change |\n")
	b.WriteString("|--------------|------|------|--------|\n")
	for _, row := range data.Limits {
		fmt.Fprintf(&b, "| %s | $%s | $%s | $%s |\n",
			row.AccountType, formatInt(row.Limit2024), formatInt(row.Limit2025), formatInt(row.Change))
	}
	b.WriteString("\n")

	b.WriteString("### SALT Deduction Limits\n\n")
	if len(data.Salt2024) > 0 || len(data.Salt2025) > 0 {
		writeSaltTable(&b, "2024", data.Salt2024)
		writeSaltTable(&b, "2025", data.Salt2025)
	}
	b.WriteString("---\n\n")

	// New provisions
	b.WriteString("## New 2025 Tax Provisions\n\n")
	for _, p := range data.Provisions {
		fmt.Fprintf(&b, "### %s\n\n", p.ProvisionName)
		fmt.Fprintf(&b, "%s\n\n", p.Description)
		fmt.Fprintf(&b, "**Effective:** %s", p.EffectiveDate)
		if p.ExpirationDate != nil {
			fmt.Fprintf(&b, " | **Expires:** %s", *p.ExpirationDate)
		} else {
			b.WriteString(" | **Permanent**")
		}
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "_Citation: %s (%s)_\n\n", p.PublicLawCitation, p.IRCSection)
	}
	b.WriteString("---\n\n")

	// Entity impacts
	b.WriteString("## Entity Impact Analysis\n\n")
	for _, e := range data.EntityImpacts {
		fmt.Fprintf(&b, "### %s: %s\n\n", e.EntityType, e.ProvisionName)
		fmt.Fprintf(&b, "%s\n\n", e.ImpactDescription)
		fmt.Fprintf(&b, "**Potential Savings:** %s\n\n", e.PotentialSavings)
	}
	b.WriteString("---\n\n")

	// References
	b.WriteString("## Government References & Citations\n\n")
	for _, r := range data.References {
		fmt.Fprintf(&b, "### %s\n\n", r.Title)
		fmt.Fprintf(&b, "%s\n\n", r.Description)
		fmt.Fprintf(&b, "**Source:** %s (%s)\n\n", r.Category, r.CitationNumber)
		if r.URL != "" {
			fmt.Fprintf(&b, "**URL:** %s\n\n", r.URL)
		}
	}

	b.WriteString("---\n\n")
	b.WriteString("_This document was generated by KGOB CPA Partners. For personalized tax advice, please consult with a qualified tax professional._\n")

	return []byte(b.String())
}

func writeBracketTable(b *strings.Builder, year string, brackets []store.TaxBracket) {
	fmt.Fprintf(b, "#### %s Tax Brackets\n\n", year)
	b.WriteString("| Filing Status | Bracket Min | Bracket Max | Tax Rate |\n")
	b.WriteString("|---------------|-------------|-------------|----------|\n")
	for _, br := range brackets {
		maxDisplay := "No limit"
		if br.BracketMax != nil {
			maxDisplay = "$" + formatInt(*br.BracketMax)
		}
		fmt.Fprintf(b, "| %s | $%s | %s | %s |\n",
			br.FilingStatus, formatInt(br.BracketMin), maxDisplay, formatRate(br.TaxRate))
	}
	b.WriteString("\n")
}

func writeSaltTable(b *strings.Builder, year string, rows []store.SaltDeduction) {
	fmt.Fprintf(b, "#### %s SALT Deduction Limits\n\n", year)
	b.WriteString("| Filing Status | Deduction Cap | Phaseout Threshold |\n")
	b.WriteString("|---------------|---------------|--------------------|\n")
	for _, r := range rows {
		phaseout := "N/A"
		if r.PhaseoutThreshold != nil {
			phaseout = "$" + formatInt(*r.PhaseoutThreshold)
		}
		fmt.Fprintf(b, "| %s | $%s | %s |\n",
			r.FilingStatus, formatInt(r.DeductionCap), phaseout)
	}
	b.WriteString("\n")
}
