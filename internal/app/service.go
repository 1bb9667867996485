package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"taxguide/api/internal/cache"
	"taxguide/api/internal/content"
	"taxguide/api/internal/export"
	"taxguide/api/internal/gitlog"
	"taxguide/api/internal/store"
)

// Store is the persistence surface the service depends on.
type Store interface {
	Ping(ctx context.Context) error
	Comparison(ctx context.Context) (store.ComparisonData, error)

	ListTaxBrackets(ctx context.Context, q store.ListQuery) ([]store.TaxBracket, error)
	GetTaxBracket(ctx context.Context, id int64) (store.TaxBracket, error)
	InsertTaxBracket(ctx context.Context, b store.TaxBracket) (store.TaxBracket, error)
	UpdateTaxBracket(ctx context.Context, id int64, upd store.TaxBracketUpdate) (store.TaxBracket, error)
	DeleteTaxBracket(ctx context.Context, id int64) (store.TaxBracket, error)

	ListStandardDeductions(ctx context.Context, q store.ListQuery) ([]store.StandardDeduction, error)
	GetStandardDeduction(ctx context.Context, id int64) (store.StandardDeduction, error)
	InsertStandardDeduction(ctx context.Context, d store.StandardDeduction) (store.StandardDeduction, error)
	UpdateStandardDeduction(ctx context.Context, id int64, upd store.StandardDeductionUpdate) (store.StandardDeduction, error)
	DeleteStandardDeduction(ctx context.Context, id int64) (store.StandardDeduction, error)

	ListRetirementLimits(ctx context.Context, q store.ListQuery) ([]store.RetirementLimit, error)
	GetRetirementLimit(ctx context.Context, id int64) (store.RetirementLimit, error)
	InsertRetirementLimit(ctx context.Context, l store.RetirementLimit) (store.RetirementLimit, error)
	UpdateRetirementLimit(ctx context.Context, id int64, upd store.RetirementLimitUpdate) (store.RetirementLimit, error)
	DeleteRetirementLimit(ctx context.Context, id int64) (store.RetirementLimit, error)

	ListSaltDeductions(ctx context.Context, q store.ListQuery) ([]store.SaltDeduction, error)
	GetSaltDeduction(ctx context.Context, id int64) (store.SaltDeduction, error)
	InsertSaltDeduction(ctx context.Context, d store.SaltDeduction) (store.SaltDeduction, error)
	UpdateSaltDeduction(ctx context.Context, id int64, upd store.SaltDeductionUpdate) (store.SaltDeduction, error)
	DeleteSaltDeduction(ctx context.Context, id int64) (store.SaltDeduction, error)

	ListProvisions(ctx context.Context, q store.ListQuery) ([]store.Provision, error)
	GetProvision(ctx context.Context, id int64) (store.Provision, error)
	InsertProvision(ctx context.Context, p store.Provision) (store.Provision, error)
	UpdateProvision(ctx context.Context, id int64, upd store.ProvisionUpdate) (store.Provision, error)
	DeleteProvision(ctx context.Context, id int64) (store.Provision, error)

	ListGovernmentReferences(ctx context.Context, q store.ListQuery) ([]store.GovernmentReference, error)
	GetGovernmentReference(ctx context.Context, id int64) (store.GovernmentReference, error)
	InsertGovernmentReference(ctx context.Context, g store.GovernmentReference) (store.GovernmentReference, error)
	UpdateGovernmentReference(ctx context.Context, id int64, upd store.GovernmentReferenceUpdate) (store.GovernmentReference, error)
	DeleteGovernmentReference(ctx context.Context, id int64) (store.GovernmentReference, error)

	ListEntityImpacts(ctx context.Context, q store.ListQuery) ([]store.EntityImpact, error)
	GetEntityImpact(ctx context.Context, id int64) (store.EntityImpact, error)
	InsertEntityImpact(ctx context.Context, e store.EntityImpact) (store.EntityImpact, error)
	UpdateEntityImpact(ctx context.Context, id int64, upd store.EntityImpactUpdate) (store.EntityImpact, error)
	DeleteEntityImpact(ctx context.Context, id int64) (store.EntityImpact, error)
}

// Exporter produces the downloadable guide document.
type Exporter interface {
	Export(ctx context.Context, format export.Format) (*export.Result, error)
}

// Archiver stores export artifacts in object storage.
type Archiver interface {
	Store(ctx context.Context, filename, mimeType string, data []byte) (string, error)
}

// GuideSearcher answers guide section queries.
type GuideSearcher interface {
	Search(query string) []content.Section
	SyncTree()
}

// treeSearcher adapts a Manager so the service works without Meilisearch
// wiring, in tests mostly.
type treeSearcher struct{ tree *content.Manager }

func (t treeSearcher) Search(query string) []content.Section { return t.tree.Search(query) }
func (t treeSearcher) SyncTree()                             {}

// Service wires the store, guide tree, search, cache, audit log, exporter,
// and archive together behind the HTTP layer.
type Service struct {
	store    Store
	tree     *content.Manager
	search   GuideSearcher
	cache    *cache.Comparison
	auditLog *gitlog.Service
	exporter Exporter
	archive  Archiver
}

// Options carries the optional collaborators. Any nil field disables the
// corresponding behavior.
type Options struct {
	Search   GuideSearcher
	Cache    *cache.Comparison
	AuditLog *gitlog.Service
	Exporter Exporter
	Archive  Archiver
}

func New(st Store, tree *content.Manager, opts Options) *Service {
	s := &Service{
		store:    st,
		tree:     tree,
		search:   opts.Search,
		cache:    opts.Cache,
		auditLog: opts.AuditLog,
		exporter: opts.Exporter,
		archive:  opts.Archive,
	}
	if s.search == nil {
		s.search = treeSearcher{tree: tree}
	}
	return s
}

// Bootstrap seeds reference data, initializes the audit log, and primes the
// search index. Failures are returned to the caller; main logs and keeps
// going since every piece has a fallback.
func (s *Service) Bootstrap(ctx context.Context) error {
	type seeder interface {
		EnsureSeedData(ctx context.Context) error
	}
	if st, ok := s.store.(seeder); ok {
		if err := st.EnsureSeedData(ctx); err != nil {
			return fmt.Errorf("seed data: %w", err)
		}
	}
	if s.auditLog != nil {
		if err := s.auditLog.Init(s.tree.Tree()); err != nil {
			return fmt.Errorf("init guide audit log: %w", err)
		}
	}
	s.search.SyncTree()
	return nil
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// Comparison returns the 2024/2025 comparison payload, consulting the Redis
// cache first. Cache faults are logged and treated as misses.
func (s *Service) Comparison(ctx context.Context) (store.ComparisonData, error) {
	if s.cache != nil {
		data, ok, err := s.cache.Get(ctx)
		if err != nil {
			log.Printf("comparison cache read: %v", err)
		} else if ok {
			return data, nil
		}
	}

	data, err := s.store.Comparison(ctx)
	if err != nil {
		return store.ComparisonData{}, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, data); err != nil {
			log.Printf("comparison cache write: %v", err)
		}
	}
	return data, nil
}

// invalidateComparison drops the cached payload after a write to any table
// the comparison reads.
func (s *Service) invalidateComparison(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("comparison cache invalidate: %v", err)
	}
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Tax brackets

func (s *Service) ListTaxBrackets(ctx context.Context, q store.ListQuery) ([]store.TaxBracket, error) {
	return s.store.ListTaxBrackets(ctx, q)
}

func (s *Service) GetTaxBracket(ctx context.Context, id int64) (store.TaxBracket, error) {
	return s.store.GetTaxBracket(ctx, id)
}

func (s *Service) CreateTaxBracket(ctx context.Context, b store.TaxBracket) (store.TaxBracket, error) {
	b.CreatedAt = nowStamp()
	created, err := s.store.InsertTaxBracket(ctx, b)
	if err == nil {
		s.invalidateComparison(ctx)
	}
	return created, err
}

func (s *Service) UpdateTaxBracket(ctx context.Context, id int64, upd store.TaxBracketUpdate) (store.TaxBracket, error) {
	updated, err := s.store.UpdateTaxBracket(ctx, id, upd)
	if err == nil {
		s.invalidateComparison(ctx)
	}
	return updated, err
}

func (s *Service) DeleteTaxBracket(ctx context.Context, id int64) (store.TaxBracket, error) {
	deleted, err := s.store.DeleteTaxBracket(ctx, id)
	if err == nil {
		s.invalidateComparison(ctx)
	}
	return deleted, err
}

// Standard deductions

func (s *Service) ListStandardDeductions(ctx context.Context, q store.ListQuery) ([]store.StandardDeduction, error) {
	return s.store.ListStandardDeductions(ctx, q)
}

func (s *Service) GetStandardDeduction(ctx context.Context, id int64) (store.StandardDeduction, error) {
	return s.store.GetStandardDeduction(ctx, id)
}

func (s *Service) CreateStandardDeduction(ctx context.Context, d store.StandardDeduction) (store.StandardDeduction, error) {
	d.CreatedAt = nowStamp()
	created, err := s.store.InsertStandardDeduction(ctx, d)
	if err == nil {
		s.invalidateComparison(ctx)
	}
	return created, err
}

func (s *Service) UpdateStandardDeduction(ctx context.Context, id int64, upd store.StandardDeductionUpdate) (store.StandardDeduction, error) {
	updated, err := s.store.UpdateStandardDeduction(ctx, id, upd)
	if err == nil {
		s.invalidateComparison(ctx)
	}
	return updated, err
}

func (s *Service) DeleteStandardDeduction(ctx context.Context, id int64) (store.StandardDeduction, error) {
	deleted, err := s.store.DeleteStandardDeduction(ctx, id)
	if err == nil {
		s.invalidateComparison(ctx)
	}
	return deleted, err
}

// Retirement limits

func (s *Service) ListRetirementLimits(ctx context.Context, q store.ListQuery) ([]store.RetirementLimit, error) {
	return s.store.ListRetirementLimits(ctx, q)
}

func (s *Service) GetRetirementLimit(ctx context.Context, id int64) (store.RetirementLimit, error) {
	return s.store.GetRetirementLimit(ctx, id)
}

func (s *Service) CreateRetirementLimit(ctx context.Context, l store.RetirementLimit) (store.RetirementLimit, error) {
	l.CreatedAt = nowStamp()
	created, err := s.store.InsertRetirementLimit(ctx, l)
	if err == nil {
		s.invalidateComparison(ctx)
	}
	return created, err
}

func (s *Service) UpdateRetirementLimit(ctx context.Context, id int64, upd store.RetirementLimitUpdate) (store.RetirementLimit, error) {
	updated, err := s.store.UpdateRetirementLimit(ctx, id, upd)
	if err == nil {
		s.invalidateComparison(ctx)
	}
	return updated, err
}

func (s *Service) DeleteRetirementLimit(ctx context.Context, id int64) (store.RetirementLimit, error) {
	deleted, err := s.store.DeleteRetirementLimit(ctx, id)
	if err == nil {
		s.invalidateComparison(ctx)
	}
	return deleted, err
}

// SALT deduction history

func (s *Service) ListSaltDeductions(ctx context.Context, q store.ListQuery) ([]store.SaltDeduction, error) {
	return s.store.ListSaltDeductions(ctx, q)
}

func (s *Service) GetSaltDeduction(ctx context.Context, id int64) (store.SaltDeduction, error) {
	return s.store.GetSaltDeduction(ctx, id)
}

func (s *Service) CreateSaltDeduction(ctx context.Context, d store.SaltDeduction) (store.SaltDeduction, error) {
	d.CreatedAt = nowStamp()
	created, err := s.store.InsertSaltDeduction(ctx, d)
	if err == nil {
		s.invalidateComparison(ctx)
	}
	return created, err
}

func (s *Service) UpdateSaltDeduction(ctx context.Context, id int64, upd store.SaltDeductionUpdate) (store.SaltDeduction, error) {
	updated, err := s.store.UpdateSaltDeduction(ctx, id, upd)
	if err == nil {
		s.invalidateComparison(ctx)
	}
	return updated, err
}

func (s *Service) DeleteSaltDeduction(ctx context.Context, id int64) (store.SaltDeduction, error) {
	deleted, err := s.store.DeleteSaltDeduction(ctx, id)
	if err == nil {
		s.invalidateComparison(ctx)
	}
	return deleted, err
}

// New provisions

func (s *Service) ListProvisions(ctx context.Context, q store.ListQuery) ([]store.Provision, error) {
	return s.store.ListProvisions(ctx, q)
}

func (s *Service) GetProvision(ctx context.Context, id int64) (store.Provision, error) {
	return s.store.GetProvision(ctx, id)
}

func (s *Service) CreateProvision(ctx context.Context, p store.Provision) (store.Provision, error) {
	p.CreatedAt = nowStamp()
	return s.store.InsertProvision(ctx, p)
}

func (s *Service) UpdateProvision(ctx context.Context, id int64, upd store.ProvisionUpdate) (store.Provision, error) {
	return s.store.UpdateProvision(ctx, id, upd)
}

func (s *Service) DeleteProvision(ctx context.Context, id int64) (store.Provision, error) {
	return s.store.DeleteProvision(ctx, id)
}

// Government references

func (s *Service) ListGovernmentReferences(ctx context.Context, q store.ListQuery) ([]store.GovernmentReference, error) {
	return s.store.ListGovernmentReferences(ctx, q)
}

func (s *Service) GetGovernmentReference(ctx context.Context, id int64) (store.GovernmentReference, error) {
	return s.store.GetGovernmentReference(ctx, id)
}

func (s *Service) CreateGovernmentReference(ctx context.Context, g store.GovernmentReference) (store.GovernmentReference, error) {
	g.CreatedAt = nowStamp()
	return s.store.InsertGovernmentReference(ctx, g)
}

func (s *Service) UpdateGovernmentReference(ctx context.Context, id int64, upd store.GovernmentReferenceUpdate) (store.GovernmentReference, error) {
	return s.store.UpdateGovernmentReference(ctx, id, upd)
}

func (s *Service) DeleteGovernmentReference(ctx context.Context, id int64) (store.GovernmentReference, error) {
	return s.store.DeleteGovernmentReference(ctx, id)
}

// Entity tax impacts

func (s *Service) ListEntityImpacts(ctx context.Context, q store.ListQuery) ([]store.EntityImpact, error) {
	return s.store.ListEntityImpacts(ctx, q)
}

func (s *Service) GetEntityImpact(ctx context.Context, id int64) (store.EntityImpact, error) {
	return s.store.GetEntityImpact(ctx, id)
}

func (s *Service) CreateEntityImpact(ctx context.Context, e store.EntityImpact) (store.EntityImpact, error) {
	e.CreatedAt = nowStamp()
	return s.store.InsertEntityImpact(ctx, e)
}

func (s *Service) UpdateEntityImpact(ctx context.Context, id int64, upd store.EntityImpactUpdate) (store.EntityImpact, error) {
	return s.store.UpdateEntityImpact(ctx, id, upd)
}

func (s *Service) DeleteEntityImpact(ctx context.Context, id int64) (store.EntityImpact, error) {
	return s.store.DeleteEntityImpact(ctx, id)
}

// Guide operations

func (s *Service) GuideTree() []content.Section {
	return s.tree.Tree()
}

func (s *Service) GuideSectionIDs() []string {
	return s.tree.AllSectionIDs()
}

func (s *Service) GuideSearch(query string) []content.Section {
	return s.search.Search(query)
}

// recordGuideEdit commits the current tree to the audit log and refreshes
// the search index. Neither failure blocks the edit itself.
func (s *Service) recordGuideEdit(message string) {
	if s.auditLog != nil {
		if _, err := s.auditLog.Record(s.tree.Tree(), message); err != nil {
			log.Printf("guide audit log: %v", err)
		}
	}
	s.search.SyncTree()
}

func (s *Service) GuideUpdateSection(id string, upd content.SectionUpdate) (content.Section, bool) {
	updated, ok := s.tree.UpdateSection(id, upd)
	if ok {
		s.recordGuideEdit("update section " + id)
	}
	return updated, ok
}

func (s *Service) GuideDeleteSection(id string) bool {
	ok := s.tree.DeleteSection(id)
	if ok {
		s.recordGuideEdit("delete section " + id)
	}
	return ok
}

func (s *Service) GuideAddSubsection(parentID string) (content.Section, bool) {
	created, ok := s.tree.AddSubsection(parentID)
	if ok {
		s.recordGuideEdit("add subsection under " + parentID)
	}
	return created, ok
}

// GuideHistory lists the newest audit log entries. Empty when no audit log
// is configured.
func (s *Service) GuideHistory(limit int) ([]gitlog.CommitInfo, error) {
	if s.auditLog == nil {
		return []gitlog.CommitInfo{}, nil
	}
	return s.auditLog.History(limit)
}

// Export generates the guide document and, when an archive is configured,
// uploads a copy in the background.
func (s *Service) Export(ctx context.Context, format export.Format) (*export.Result, error) {
	if s.exporter == nil {
		return nil, fmt.Errorf("export not configured")
	}
	result, err := s.exporter.Export(ctx, format)
	if err != nil {
		return nil, err
	}
	if s.archive != nil {
		go func(res export.Result) {
			uploadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			key, err := s.archive.Store(uploadCtx, res.Filename, res.MimeType, res.Data)
			if err != nil {
				log.Printf("export archive upload: %v", err)
				return
			}
			log.Printf("export archived as %s", key)
		}(*result)
	}
	return result, nil
}
