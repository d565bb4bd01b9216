// Package schema has models, typed constants and defaults for all parts of weightexile.
package schema

// StatDefinition is a single stat record from the trade stat catalog.
type StatDefinition struct {
	ID       string `json:"id"`       // Unique trade stat id (e.g. "pseudo.pseudo_total_life")
	Text     string `json:"text"`     // Display text with # placeholders
	Category string `json:"category"` // Catalog group label (e.g. "Pseudo", "Explicit")
}

// SelectedStat is a StatDefinition plus the user's choices for it.
type SelectedStat struct {
	StatDefinition
	Priority   int       `json:"priority"`             // 1..5, 0 means unset
	Direction  Direction `json:"direction"`            // at-least (default) or at-most
	DesiredMin *float64  `json:"desiredMin,omitempty"` // Optional desired roll
}

// HasDesiredMin reports whether the stat carries a usable desired roll.
func (s SelectedStat) HasDesiredMin() bool {
	return s.DesiredMin != nil && isFinite(*s.DesiredMin)
}

// WeightedOutput is the normalized weight computed for one selected stat.
type WeightedOutput struct {
	ID     string `json:"id"`
	Weight int    `json:"weight"`
}

// AutoWeightResult bundles the normalized weights and the suggested threshold.
type AutoWeightResult struct {
	Weights []WeightedOutput `json:"weights"`
	MinSum  int              `json:"minSum"`
	Rule    ThresholdRule    `json:"rule"`
}

// FilterGroup is the weight2 stat group document consumed by the trade site.
type FilterGroup struct {
	Type    string        `json:"type"`
	Min     int           `json:"min"`
	Filters []FilterEntry `json:"filters"`
}

// FilterEntry is one stat filter inside a FilterGroup.
type FilterEntry struct {
	ID       string      `json:"id"`
	Disabled bool        `json:"disabled"`
	Value    FilterValue `json:"value"`
}

// FilterValue holds the weight of a FilterEntry.
type FilterValue struct {
	Weight int `json:"weight"`
}

// TypeBucket groups item bases under a classified type label.
type TypeBucket struct {
	Type  string   `json:"type"`
	Bases []string `json:"bases"`
}
