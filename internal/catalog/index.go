package catalog

import (
	"strings"

	"github.com/huangsam/weightexile/internal/contract"
	"github.com/huangsam/weightexile/schema"
)

// Index gives id lookup and text search over stat definitions.
type Index struct {
	defs []schema.StatDefinition
	byID map[string]int
}

var _ contract.StatLookup = &Index{} // Compile-time check

// NewIndex builds an index that keeps the catalog order of defs.
func NewIndex(defs []schema.StatDefinition) *Index {
	idx := &Index{
		defs: defs,
		byID: make(map[string]int, len(defs)),
	}
	for i, d := range defs {
		if _, ok := idx.byID[d.ID]; !ok {
			idx.byID[d.ID] = i
		}
	}
	return idx
}

// Len returns the number of indexed definitions.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.defs)
}

// Lookup returns the definition for id.
func (idx *Index) Lookup(id string) (schema.StatDefinition, bool) {
	if idx == nil {
		return schema.StatDefinition{}, false
	}
	i, ok := idx.byID[id]
	if !ok {
		return schema.StatDefinition{}, false
	}
	return idx.defs[i], true
}

// Search returns up to limit definitions whose text or id contains query, case-insensitively.
// An empty query matches everything. A limit <= 0 means no limit.
func (idx *Index) Search(query string, limit int) []schema.StatDefinition {
	results := make([]schema.StatDefinition, 0)
	if idx == nil {
		return results
	}

	q := strings.ToLower(strings.TrimSpace(query))
	for _, d := range idx.defs {
		if limit > 0 && len(results) >= limit {
			break
		}
		if q == "" || strings.Contains(strings.ToLower(d.Text), q) || strings.Contains(strings.ToLower(d.ID), q) {
			results = append(results, d)
		}
	}
	return results
}
