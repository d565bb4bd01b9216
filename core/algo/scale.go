// Package algo has the pure weighting, threshold and classification logic.
package algo

import (
	"sort"
	"strings"

	"github.com/huangsam/weightexile/schema"
)

// DefaultScale is used when neither an id override nor a keyword rule matches.
const DefaultScale = 100.0

// ScaleResolver maps a stat to its normalization divisor.
type ScaleResolver interface {
	ResolveScale(id, text string) float64
}

type scaleOverride struct {
	id    string
	scale float64
}

type keywordRule struct {
	name     string
	keywords []string
	scale    float64
}

// pseudoScales holds hand-tuned scales for well-known pseudo stats.
var pseudoScales = []scaleOverride{
	{"pseudo.pseudo_total_life", 120},
	{"pseudo.pseudo_total_mana", 100},
	{"pseudo.pseudo_total_energy_shield", 90},
	{"pseudo.pseudo_total_resistance", 150},
	{"pseudo.pseudo_total_elemental_resistance", 120},
	{"pseudo.pseudo_total_all_elemental_resistances", 20},
	{"pseudo.pseudo_total_fire_resistance", 48},
	{"pseudo.pseudo_total_cold_resistance", 48},
	{"pseudo.pseudo_total_lightning_resistance", 48},
	{"pseudo.pseudo_total_chaos_resistance", 35},
	{"pseudo.pseudo_total_all_attributes", 35},
	{"pseudo.pseudo_total_strength", 55},
	{"pseudo.pseudo_total_dexterity", 55},
	{"pseudo.pseudo_total_intelligence", 55},
	{"pseudo.pseudo_increased_movement_speed", 30},
	{"pseudo.pseudo_total_attack_speed", 20},
	{"pseudo.pseudo_total_cast_speed", 20},
	{"pseudo.pseudo_number_of_empty_prefix_mods", 3},
	{"pseudo.pseudo_number_of_empty_suffix_mods", 3},
}

// keywordScales is checked in declared order; the first rule with a matching keyword wins.
var keywordScales = []keywordRule{
	{"life", []string{"life"}, 100},
	{"resistance", []string{"resistance"}, 48},
	{"attributes", []string{"attribute", "strength", "dexterity", "intelligence"}, 55},
	{"energy shield", []string{"energy shield"}, 90},
	{"evasion", []string{"evasion"}, 350},
	{"armour", []string{"armour", "armor"}, 350},
	{"damage", []string{"damage", "attack", "spell"}, 40},
}

// ScaleTable is an ordered, read-only set of scale rules.
type ScaleTable struct {
	overrides []scaleOverride
	rules     []keywordRule
	fallback  float64
}

var _ ScaleResolver = (*ScaleTable)(nil) // Compile-time check

// DefaultScales is the built-in scale table.
var DefaultScales = NewScaleTable(nil)

// NewScaleTable returns the built-in table with custom id overrides placed ahead of
// the pseudo stat overrides. Non-positive custom scales are ignored.
func NewScaleTable(custom map[string]float64) *ScaleTable {
	ids := make([]string, 0, len(custom))
	for id, v := range custom {
		if v > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	overrides := make([]scaleOverride, 0, len(ids)+len(pseudoScales))
	for _, id := range ids {
		overrides = append(overrides, scaleOverride{id: id, scale: custom[id]})
	}
	overrides = append(overrides, pseudoScales...)

	return &ScaleTable{
		overrides: overrides,
		rules:     keywordScales,
		fallback:  DefaultScale,
	}
}

// ResolveScale returns the scale for a stat: exact id override first, then the
// first keyword rule found in the lowercased text, then DefaultScale.
func (t *ScaleTable) ResolveScale(id, text string) float64 {
	for _, o := range t.overrides {
		if o.id == id {
			return o.scale
		}
	}

	lower := strings.ToLower(text)
	for _, r := range t.rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.scale
			}
		}
	}
	return t.fallback
}

// Rows lists the table in resolution order.
func (t *ScaleTable) Rows() []schema.ScaleRow {
	rows := make([]schema.ScaleRow, 0, len(t.overrides)+len(t.rules)+1)
	for _, o := range t.overrides {
		rows = append(rows, schema.ScaleRow{Kind: "override", Match: o.id, Scale: o.scale})
	}
	for _, r := range t.rules {
		rows = append(rows, schema.ScaleRow{Kind: "keyword", Match: strings.Join(r.keywords, ","), Scale: r.scale})
	}
	return append(rows, schema.ScaleRow{Kind: "default", Match: "*", Scale: t.fallback})
}

// ResolveScale resolves a stat against DefaultScales.
func ResolveScale(id, text string) float64 {
	return DefaultScales.ResolveScale(id, text)
}

func resolverOrDefault(r ScaleResolver) ScaleResolver {
	if r == nil {
		return DefaultScales
	}
	return r
}
