// Package catalog parses the trade site's stat and item catalogs.
package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/huangsam/weightexile/schema"
)

// statsDocument mirrors the trade API data/stats payload.
type statsDocument struct {
	Result []struct {
		Label   string `json:"label"`
		Entries []struct {
			ID   string `json:"id"`
			Text string `json:"text"`
			Type string `json:"type"`
		} `json:"entries"`
	} `json:"result"`
}

// itemsDocument mirrors the trade API data/items payload.
type itemsDocument struct {
	Result []struct {
		Label   string `json:"label"`
		Entries []struct {
			Type string `json:"type"`
			Name string `json:"name"`
		} `json:"entries"`
	} `json:"result"`
}

// ParseStats flattens a stats catalog into definitions.
// The category is the group label, or the entry type when the group has none.
// Entries without an id or text are dropped, and the first occurrence of an id wins.
func ParseStats(data []byte) ([]schema.StatDefinition, error) {
	var doc statsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse stats catalog: %w", err)
	}

	seen := make(map[string]struct{})
	defs := make([]schema.StatDefinition, 0)
	for _, group := range doc.Result {
		for _, e := range group.Entries {
			if e.ID == "" || e.Text == "" {
				continue
			}
			if _, dup := seen[e.ID]; dup {
				continue
			}
			seen[e.ID] = struct{}{}

			category := group.Label
			if category == "" {
				category = titleCase(e.Type)
			}
			defs = append(defs, schema.StatDefinition{ID: e.ID, Text: e.Text, Category: category})
		}
	}
	return defs, nil
}

// ParseBaseTypes flattens an items catalog into a sorted, de-duplicated list of base types.
// Unique items carry a name and are skipped.
func ParseBaseTypes(data []byte) ([]string, error) {
	var doc itemsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse items catalog: %w", err)
	}

	seen := make(map[string]struct{})
	bases := make([]string, 0)
	for _, group := range doc.Result {
		for _, e := range group.Entries {
			if e.Type == "" || e.Name != "" {
				continue
			}
			if _, dup := seen[e.Type]; dup {
				continue
			}
			seen[e.Type] = struct{}{}
			bases = append(bases, e.Type)
		}
	}
	sort.Strings(bases)
	return bases, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
