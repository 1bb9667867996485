package content

import (
	"strings"
	"testing"
)

func TestAllSectionIDs(t *testing.T) {
	m := NewManager()
	ids := m.AllSectionIDs()

	if len(ids) != 21 {
		t.Fatalf("expected 21 section ids, got %d", len(ids))
	}
	if ids[0] != "intro" {
		t.Fatalf("expected intro first, got %q", ids[0])
	}

	index := map[string]int{}
	for i, id := range ids {
		index[id] = i
	}
	for _, id := range []string{"business-operations", "timing-strategy", "employment-taxes", "capital-gains-strategy"} {
		if _, ok := index[id]; !ok {
			t.Fatalf("expected id %q in section ids", id)
		}
	}
	if index["business-operations"] > index["timing-strategy"] {
		t.Fatal("expected parent before child in depth-first order")
	}
}

func TestSearchMatchesTitleAndContent(t *testing.T) {
	m := NewManager()
	newContent := "<p>unobtainium planning detail</p>"
	if _, ok := m.UpdateSection("intro", SectionUpdate{Content: &newContent}); !ok {
		t.Fatal("update intro failed")
	}

	results := m.Search("UNOBTAINIUM")
	if len(results) != 1 || results[0].ID != "intro" {
		t.Fatalf("expected single intro match, got %v", results)
	}

	if got := m.Search("no-such-phrase-anywhere"); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
	if got := m.Search("zzz-absent"); got == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestUpdateSectionUnknownID(t *testing.T) {
	m := NewManager()
	title := "x"
	if _, ok := m.UpdateSection("does-not-exist", SectionUpdate{Title: &title}); ok {
		t.Fatal("expected update of unknown id to fail")
	}
}

func TestUpdateSectionPartialFields(t *testing.T) {
	m := NewManager()
	title := "Renamed"
	updated, ok := m.UpdateSection("timing-strategy", SectionUpdate{Title: &title})
	if !ok {
		t.Fatal("update failed")
	}
	if updated.Title != "Renamed" {
		t.Fatalf("title not applied: %q", updated.Title)
	}
	if updated.Content == "" {
		t.Fatal("content should be untouched by a title-only update")
	}
}

func TestDeleteSection(t *testing.T) {
	m := NewManager()
	if !m.DeleteSection("timing-strategy") {
		t.Fatal("expected delete to succeed")
	}
	for _, id := range m.AllSectionIDs() {
		if id == "timing-strategy" {
			t.Fatal("deleted section still present")
		}
	}
	if len(m.AllSectionIDs()) != 20 {
		t.Fatalf("expected 20 ids after delete, got %d", len(m.AllSectionIDs()))
	}
	if m.DeleteSection("timing-strategy") {
		t.Fatal("second delete should report false")
	}
}

func TestAddSubsection(t *testing.T) {
	m := NewManager()
	child, ok := m.AddSubsection("intro")
	if !ok {
		t.Fatal("expected add under intro to succeed")
	}
	if !strings.HasPrefix(child.ID, "new-") {
		t.Fatalf("unexpected child id %q", child.ID)
	}
	found := false
	for _, id := range m.AllSectionIDs() {
		if id == child.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("new subsection not reachable in tree")
	}

	if _, ok := m.AddSubsection("no-such-parent"); ok {
		t.Fatal("expected add under unknown parent to fail")
	}
}

func TestHighlight(t *testing.T) {
	got := Highlight("The SALT cap and salt history", "salt")
	want := "The <mark>SALT</mark> cap and <mark>salt</mark> history"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	if got := Highlight("unchanged", ""); got != "unchanged" {
		t.Fatalf("empty query should return input, got %q", got)
	}
	if got := Highlight("nothing here", "absent"); got != "nothing here" {
		t.Fatalf("no-match should return input, got %q", got)
	}
}
