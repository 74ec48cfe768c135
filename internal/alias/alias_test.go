package alias

import (
	"testing"
)

func TestLookupExact(t *testing.T) {
	ix, err := NewIndex([]Entry{
		{EntityID: "club-tottenham", Aliases: []string{"Spurs", "Lilywhites"}},
		{EntityID: "club-arsenal", Aliases: []string{"Gunners"}},
	})
	if err != nil {
		t.Fatalf("NewIndex failed: %v", err)
	}

	tests := []struct {
		name       string
		query      string
		expectedID string
		found      bool
	}{
		{name: "Known alias", query: "spurs", expectedID: "club-tottenham", found: true},
		{name: "Second alias of same entity", query: "lilywhites", expectedID: "club-tottenham", found: true},
		{name: "Other entity", query: "gunners", expectedID: "club-arsenal", found: true},
		{name: "Unknown alias", query: "toffees", found: false},
		{name: "Empty query", query: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ix.LookupExact(tt.query)
			if ok != tt.found {
				t.Fatalf("LookupExact(%q) found=%v, want %v", tt.query, ok, tt.found)
			}
			if ok && id != tt.expectedID {
				t.Errorf("LookupExact(%q) = %s, want %s", tt.query, id, tt.expectedID)
			}
		})
	}
}

func TestFindByPrefix(t *testing.T) {
	ix, err := NewIndex([]Entry{
		{EntityID: "club-man-utd", Aliases: []string{"red devils"}},
		{EntityID: "club-liverpool", Aliases: []string{"reds"}},
	})
	if err != nil {
		t.Fatalf("NewIndex failed: %v", err)
	}

	// Table order decides which entity wins a shared prefix.
	if id, ok := ix.FindByPrefix("red"); !ok || id != "club-man-utd" {
		t.Errorf("FindByPrefix(red) = %s, %v; want club-man-utd", id, ok)
	}
	if id, ok := ix.FindByPrefix("reds"); !ok || id != "club-liverpool" {
		t.Errorf("FindByPrefix(reds) = %s, %v; want club-liverpool", id, ok)
	}
	if _, ok := ix.FindByPrefix("zebra"); ok {
		t.Error("FindByPrefix(zebra) should not match")
	}
	if _, ok := ix.FindByPrefix(""); ok {
		t.Error("FindByPrefix with empty query should not match")
	}
}

// TestSharedAliasRejected: every alias must resolve to exactly one entity.
func TestSharedAliasRejected(t *testing.T) {
	_, err := NewIndex([]Entry{
		{EntityID: "club-a", Aliases: []string{"reds"}},
		{EntityID: "club-b", Aliases: []string{"Reds"}},
	})
	if err == nil {
		t.Fatal("expected error for alias shared between two entities")
	}
}

// TestBuiltinTable checks the shipped table builds cleanly and stays
// internally consistent.
func TestBuiltinTable(t *testing.T) {
	ix, err := NewIndex(BuiltinEntries)
	if err != nil {
		t.Fatalf("builtin table failed to build: %v", err)
	}
	if ix.Len() == 0 {
		t.Fatal("builtin table indexed no aliases")
	}

	if id, ok := ix.LookupExact("spurs"); !ok || id != "club-tottenham" {
		t.Errorf("builtin spurs lookup = %s, %v; want club-tottenham", id, ok)
	}
	if id, ok := ix.LookupExact("cr7"); !ok || id != "player-ronaldo" {
		t.Errorf("builtin cr7 lookup = %s, %v; want player-ronaldo", id, ok)
	}
}
