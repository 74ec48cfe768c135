// Package alias maps well-known football nicknames to canonical entity IDs.
// The table is static and inverted once at startup; lookups never fail,
// an unknown query simply has no match.
package alias

import (
	"fmt"
	"strings"

	"github.com/footydle/search-backend/internal/text"
)

// Entry associates one entity with the nicknames known to refer to it.
type Entry struct {
	EntityID string
	Aliases  []string
}

// Index is an inverted normalized-alias -> entity-id lookup.
type Index struct {
	byAlias map[string]string
	ordered []string // normalized aliases in table order, for prefix scans
}

// NewIndex builds the inverted lookup. It returns an error when two entries
// claim the same alias, since every alias must resolve to exactly one entity.
func NewIndex(entries []Entry) (*Index, error) {
	ix := &Index{
		byAlias: make(map[string]string),
	}
	for _, entry := range entries {
		for _, a := range entry.Aliases {
			key := text.Normalize(a)
			if key == "" {
				continue
			}
			if owner, exists := ix.byAlias[key]; exists && owner != entry.EntityID {
				return nil, fmt.Errorf("alias %q claimed by both %s and %s", key, owner, entry.EntityID)
			}
			if _, exists := ix.byAlias[key]; !exists {
				ix.byAlias[key] = entry.EntityID
				ix.ordered = append(ix.ordered, key)
			}
		}
	}
	return ix, nil
}

// LookupExact returns the entity for an exact normalized alias match.
func (ix *Index) LookupExact(normalizedQuery string) (string, bool) {
	id, ok := ix.byAlias[normalizedQuery]
	return id, ok
}

// FindByPrefix returns the entity of the first alias, in table order, that
// equals or starts with the normalized query.
func (ix *Index) FindByPrefix(normalizedQuery string) (string, bool) {
	if normalizedQuery == "" {
		return "", false
	}
	for _, a := range ix.ordered {
		if strings.HasPrefix(a, normalizedQuery) {
			return ix.byAlias[a], true
		}
	}
	return "", false
}

// Len reports how many distinct aliases are indexed.
func (ix *Index) Len() int {
	return len(ix.ordered)
}
