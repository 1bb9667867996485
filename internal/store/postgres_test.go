package store

import "testing"

func TestCondSearchIsCaseInsensitive(t *testing.T) {
	c := &cond{}
	c.addSearch("salt", "provision_name")

	if len(c.clauses) != 1 || c.clauses[0] != "provision_name ILIKE $1" {
		t.Fatalf("unexpected clause %v", c.clauses)
	}
	if len(c.args) != 1 || c.args[0] != "%salt%" {
		t.Fatalf("unexpected args %v", c.args)
	}
}

func TestCondSearchMultiColumnSharesPlaceholder(t *testing.T) {
	c := &cond{}
	c.add("category = $%d", "IRS Notice")
	c.addSearch("2024-80", "title", "citation_number")

	want := "(title ILIKE $2 OR citation_number ILIKE $2)"
	if c.clauses[1] != want {
		t.Fatalf("got %q, want %q", c.clauses[1], want)
	}
	if len(c.args) != 2 || c.args[1] != "%2024-80%" {
		t.Fatalf("unexpected args %v", c.args)
	}
	if got := c.where(); got != " WHERE category = $1 AND "+want {
		t.Fatalf("unexpected where %q", got)
	}
}

func TestCondPageNumbersAfterFilters(t *testing.T) {
	c := &cond{}
	c.addSearch("qbi", "provision_name")

	if got := c.page(50, 10); got != " LIMIT $2 OFFSET $3" {
		t.Fatalf("unexpected page clause %q", got)
	}
	if len(c.args) != 3 || c.args[1] != 50 || c.args[2] != 10 {
		t.Fatalf("unexpected args %v", c.args)
	}
}
