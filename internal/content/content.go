package content

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Section is one node of the guide tree. Content holds raw HTML. Chart names
// an optional chart rendered alongside the section.
type Section struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Subsections []Section `json:"subsections,omitempty"`
	Chart       string    `json:"hasChart,omitempty"`
}

// SectionUpdate carries the editable fields of a section. Nil means the field
// is left unchanged.
type SectionUpdate struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Chart   *string `json:"hasChart"`
}

// Manager guards the current guide tree. Edits build a new tree and swap it
// in; nothing is persisted, so a restart resets to the authored data.
type Manager struct {
	mu   sync.RWMutex
	tree []Section
}

func NewManager() *Manager {
	return &Manager{tree: GuideData()}
}

// Tree returns the current guide tree.
func (m *Manager) Tree() []Section {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tree
}

// AllSectionIDs collects every section id depth first, parents before
// children.
func (m *Manager) AllSectionIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ids []string
	var walk func([]Section)
	walk = func(sections []Section) {
		for _, s := range sections {
			ids = append(ids, s.ID)
			walk(s.Subsections)
		}
	}
	walk(m.tree)
	return ids
}

// Search returns every section whose title or raw HTML contains query,
// case-insensitively, in depth-first order. A matching parent does not
// exclude its descendants from also matching. Minimum query length is the
// caller's concern.
func (m *Manager) Search(query string) []Section {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q := strings.ToLower(query)
	results := []Section{}
	var walk func([]Section)
	walk = func(sections []Section) {
		for _, s := range sections {
			if strings.Contains(strings.ToLower(s.Title), q) ||
				strings.Contains(strings.ToLower(s.Content), q) {
				results = append(results, s)
			}
			walk(s.Subsections)
		}
	}
	walk(m.tree)
	return results
}

// Highlight wraps every case-insensitive occurrence of query in a <mark>
// element. The match is textual and does not respect tag boundaries, so a
// query that happens to appear inside markup will break it. Callers pass
// plain-ish fragments in practice.
func Highlight(html, query string) string {
	if query == "" {
		return html
	}
	lower := strings.ToLower(html)
	q := strings.ToLower(query)
	var b strings.Builder
	start := 0
	for {
		i := strings.Index(lower[start:], q)
		if i < 0 {
			b.WriteString(html[start:])
			return b.String()
		}
		i += start
		b.WriteString(html[start:i])
		b.WriteString("<mark>")
		b.WriteString(html[i : i+len(query)])
		b.WriteString("</mark>")
		start = i + len(query)
	}
}

// UpdateSection applies upd to the section with the given id and returns the
// updated section. It reports false when no section has that id.
func (m *Manager) UpdateSection(id string, upd SectionUpdate) (Section, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var updated Section
	found := false
	var apply func([]Section) []Section
	apply = func(sections []Section) []Section {
		out := make([]Section, len(sections))
		for i, s := range sections {
			if s.ID == id {
				if upd.Title != nil {
					s.Title = *upd.Title
				}
				if upd.Content != nil {
					s.Content = *upd.Content
				}
				if upd.Chart != nil {
					s.Chart = *upd.Chart
				}
				updated = s
				found = true
			}
			s.Subsections = apply(s.Subsections)
			out[i] = s
		}
		return out
	}
	next := apply(m.tree)
	if found {
		m.tree = next
	}
	return updated, found
}

// DeleteSection removes the section with the given id, wherever it sits in
// the tree. It reports false when no section has that id.
func (m *Manager) DeleteSection(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	found := false
	var prune func([]Section) []Section
	prune = func(sections []Section) []Section {
		out := make([]Section, 0, len(sections))
		for _, s := range sections {
			if s.ID == id {
				found = true
				continue
			}
			s.Subsections = prune(s.Subsections)
			out = append(out, s)
		}
		return out
	}
	next := prune(m.tree)
	if found {
		m.tree = next
	}
	return found
}

// AddSubsection appends a placeholder child to the section with parentID and
// returns the new section. Ids derive from the current clock, so two adds in
// the same millisecond would collide; acceptable for a single-editor tool.
func (m *Manager) AddSubsection(parentID string) (Section, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	child := Section{
		ID:      fmt.Sprintf("new-%d", time.Now().UnixMilli()),
		Title:   "New Subsection",
		Content: "<p>Enter content here...</p>",
	}
	found := false
	var attach func([]Section) []Section
	attach = func(sections []Section) []Section {
		out := make([]Section, len(sections))
		for i, s := range sections {
			if s.ID == parentID {
				subs := make([]Section, len(s.Subsections), len(s.Subsections)+1)
				copy(subs, s.Subsections)
				s.Subsections = append(subs, child)
				found = true
			} else {
				s.Subsections = attach(s.Subsections)
			}
			out[i] = s
		}
		return out
	}
	next := attach(m.tree)
	if found {
		m.tree = next
	}
	return child, found
}
