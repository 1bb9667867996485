package export

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"taxguide/api/internal/content"
	"taxguide/api/internal/store"
)

// DataStore is the slice of the store the export pipeline reads from.
type DataStore interface {
	Comparison(ctx context.Context) (store.ComparisonData, error)
	ListProvisions(ctx context.Context, q store.ListQuery) ([]store.Provision, error)
	ListEntityImpacts(ctx context.Context, q store.ListQuery) ([]store.EntityImpact, error)
	ListGovernmentReferences(ctx context.Context, q store.ListQuery) ([]store.GovernmentReference, error)
}

// TreeSource supplies the current guide tree.
type TreeSource interface {
	Tree() []content.Section
}

// Service assembles guide data and runs the generators.
type Service struct {
	store DataStore
	tree  TreeSource
	now   func() time.Time
}

func NewService(store DataStore, tree TreeSource) *Service {
	return &Service{store: store, tree: tree, now: time.Now}
}

const filenameBase = "KGOB-2025-Tax-Planning-Guide"

// Export produces the guide document in the requested format. Data fetches
// run concurrently; any failure aborts the export rather than emitting a
// partial document.
func (s *Service) Export(ctx context.Context, format Format) (*Result, error) {
	data, err := s.assemble(ctx)
	if err != nil {
		return nil, err
	}

	date := s.now().UTC().Format("2006-01-02")
	switch format {
	case FormatMarkdown:
		return &Result{
			Data:     GenerateMarkdown(data),
			Filename: fmt.Sprintf("%s-%s.md", filenameBase, date),
			MimeType: "text/markdown; charset=utf-8",
		}, nil
	case FormatPDF:
		html, err := RenderGuideHTML(data)
		if err != nil {
			return nil, fmt.Errorf("render guide html: %w", err)
		}
		pdf, err := renderPDF(ctx, html)
		if err != nil {
			return nil, err
		}
		return &Result{
			Data:     pdf,
			Filename: fmt.Sprintf("%s-%s.pdf", filenameBase, date),
			MimeType: "application/pdf",
		}, nil
	case FormatDOCX:
		html, err := RenderGuideHTML(data)
		if err != nil {
			return nil, fmt.Errorf("render guide html: %w", err)
		}
		docx, err := renderDOCX(ctx, html)
		if err != nil {
			return nil, err
		}
		return &Result{
			Data:     docx,
			Filename: fmt.Sprintf("%s-%s.docx", filenameBase, date),
			MimeType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func (s *Service) assemble(ctx context.Context) (GuideData, error) {
	var (
		cmp        store.ComparisonData
		provisions []store.Provision
		impacts    []store.EntityImpact
		references []store.GovernmentReference
	)

	all := store.ListQuery{Limit: 1000}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cmp, err = s.store.Comparison(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		provisions, err = s.store.ListProvisions(gctx, all)
		return err
	})
	g.Go(func() error {
		var err error
		impacts, err = s.store.ListEntityImpacts(gctx, all)
		return err
	})
	g.Go(func() error {
		var err error
		references, err = s.store.ListGovernmentReferences(gctx, all)
		return err
	})
	if err := g.Wait(); err != nil {
		return GuideData{}, fmt.Errorf("assemble guide data: %w", err)
	}

	return GuideData{
		Sections:        s.tree.Tree(),
		TaxBrackets2024: cmp.TaxBrackets[2024],
		TaxBrackets2025: cmp.TaxBrackets[2025],
		Salt2024:        cmp.SaltDeductions[2024],
		Salt2025:        cmp.SaltDeductions[2025],
		Deductions:      deductionRows(cmp.StandardDeductions),
		Limits:          limitRows(cmp.RetirementLimits),
		Provisions:      provisions,
		EntityImpacts:   impacts,
		References:      references,
		GeneratedAt:     s.now().UTC().Format("January 2, 2006"),
	}, nil
}

// deductionRows pairs the 2024 and 2025 amounts by filing status, in 2024
// row order. A status present in only one year is skipped.
func deductionRows(byYear map[int][]store.StandardDeduction) []DeductionRow {
	next := map[string]int{}
	for _, d := range byYear[2025] {
		next[d.FilingStatus] = d.Amount
	}
	var rows []DeductionRow
	for _, d := range byYear[2024] {
		amount2025, ok := next[d.FilingStatus]
		if !ok {
			continue
		}
		rows = append(rows, DeductionRow{
			FilingStatus: d.FilingStatus,
			Amount2024:   d.Amount,
			Amount2025:   amount2025,
			Change:       amount2025 - d.Amount,
		})
	}
	return rows
}

func limitRows(byYear map[int][]store.RetirementLimit) []LimitRow {
	next := map[string]int{}
	for _, l := range byYear[2025] {
		next[l.AccountType] = l.ContributionLimit
	}
	var rows []LimitRow
	for _, l := range byYear[2024] {
		limit2025, ok := next[l.AccountType]
		if !ok {
			continue
		}
		rows = append(rows, LimitRow{
			AccountType: l.AccountType,
			Limit2024:   l.ContributionLimit,
			Limit2025:   limit2025,
			Change:      limit2025 - l.ContributionLimit,
		})
	}
	return rows
}
