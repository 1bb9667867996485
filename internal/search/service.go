// Package search answers guide section queries, preferring a Meilisearch
// index and falling back to an in-memory walk of the tree.
package search

import (
	"log"

	"taxguide/api/internal/content"
)

// Service is the facade the HTTP layer talks to. meili may be nil when no
// Meilisearch URL is configured; every query then runs against the tree.
type Service struct {
	meili *Meili
	tree  *content.Manager
}

func NewService(meili *Meili, tree *content.Manager) *Service {
	return &Service{meili: meili, tree: tree}
}

// Search returns matching guide sections. Whichever backend answers, the
// payload is the same section objects the tree holds.
func (s *Service) Search(query string) []content.Section {
	if s.meili != nil && s.meili.Healthy() {
		ids, err := s.meili.Search(query, 50)
		if err == nil {
			return s.sectionsByID(ids)
		}
		log.Printf("search: meilisearch error, falling back to tree search: %v", err)
	}
	return s.tree.Search(query)
}

// SyncTree pushes the current guide tree into the index. Fire and forget;
// the tree search fallback covers any window where the index is stale.
func (s *Service) SyncTree() {
	if s.meili == nil || !s.meili.Healthy() {
		return
	}
	records := collectRecords(s.tree.Tree())
	go func() {
		if err := s.meili.IndexSections(records); err != nil {
			log.Printf("search: index guide sections: %v", err)
		}
	}()
}

func collectRecords(sections []content.Section) []SectionRecord {
	var records []SectionRecord
	var walk func([]content.Section)
	walk = func(list []content.Section) {
		for _, sec := range list {
			records = append(records, SectionRecord{
				ID:      sec.ID,
				Title:   sec.Title,
				Content: sec.Content,
			})
			walk(sec.Subsections)
		}
	}
	walk(sections)
	return records
}

// sectionsByID resolves index hits back to live tree sections, preserving
// hit order and dropping ids the tree no longer has.
func (s *Service) sectionsByID(ids []string) []content.Section {
	byID := map[string]content.Section{}
	var walk func([]content.Section)
	walk = func(list []content.Section) {
		for _, sec := range list {
			byID[sec.ID] = sec
			walk(sec.Subsections)
		}
	}
	walk(s.tree.Tree())

	results := []content.Section{}
	for _, id := range ids {
		if sec, ok := byID[id]; ok {
			results = append(results, sec)
		}
	}
	return results
}
