// Package export generates the downloadable guide document in Markdown,
// PDF, and DOCX formats.
package export

import (
	"errors"

	"taxguide/api/internal/content"
	"taxguide/api/internal/store"
)

// Format selects the export output format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
)

// GuideData is everything a generator needs to produce the full document.
type GuideData struct {
	Sections        []content.Section
	TaxBrackets2024 []store.TaxBracket
	TaxBrackets2025 []store.TaxBracket
	Salt2024        []store.SaltDeduction
	Salt2025        []store.SaltDeduction
	Deductions      []DeductionRow
	Limits          []LimitRow
	Provisions      []store.Provision
	EntityImpacts   []store.EntityImpact
	References      []store.GovernmentReference
	GeneratedAt     string // long form, e.g. "January 2, 2025"
}

// DeductionRow is one line of the standard-deduction comparison table.
type DeductionRow struct {
	FilingStatus string
	Amount2024   int
	Amount2025   int
	Change       int
}

// LimitRow is one line of the retirement-limit comparison table.
type LimitRow struct {
	AccountType string
	Limit2024   int
	Limit2025   int
	Change      int
}

// Result is the generated document plus the metadata the HTTP layer needs.
type Result struct {
	Data     []byte
	Filename string
	MimeType string
}

var (
	// ErrPDFDependencyMissing indicates headless Chrome is not installed.
	ErrPDFDependencyMissing = errors.New("export pdf dependency missing")
	// ErrDOCXDependencyMissing indicates pandoc is not installed.
	ErrDOCXDependencyMissing = errors.New("export docx dependency missing")
)
