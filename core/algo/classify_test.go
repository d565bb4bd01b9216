package algo

import (
	"testing"

	"github.com/huangsam/weightexile/schema"
	"github.com/stretchr/testify/assert"
)

// TestClassify pins the behaviour of the ordered type rules.
func TestClassify(t *testing.T) {
	tests := []struct {
		base     string
		expected string
	}{
		// accessories
		{"Two-Stone Ring", "Ring"},
		{"Coral Amulet", "Amulet"},
		{"Leather Belt", "Belt"},
		{"Heavy Belt", "Belt"},

		// armour slots
		{"Hubris Circlet", "Helmet"},
		{"Leather Cap", "Helmet"},
		{"Sorcerer Gloves", "Gloves"},
		{"Vaal Gauntlets", "Gloves"},
		{"Sorcerer Boots", "Boots"},
		{"Penumbra Shoes", "Boots"},
		{"Astral Plate", "Body Armour"},
		{"Vaal Regalia", "Body Armour"},
		{"Ringmail Coat", "Body Armour"},
		{"Titanium Spirit Shield", "Shield"},
		{"Broadhead Arrow Quiver", "Quiver"},

		// weapons
		{"Thicket Bow", "Bow"},
		{"Imbued Wand", "Wand"},
		{"Ambusher", "Ambusher"},
		{"Imperial Claw", "Claw"},
		{"Eclipse Staff", "Staff"},
		{"Void Sceptre", "Sceptre"},
		{"Vaal Axe", "Axe"},
		{"Coronal Maul", "Mace"},
		{"Eternal Sword", "Sword"},

		// fallbacks
		{"Jewelled Foil", "Foil"},
		{"Cobalt Jewel", "Jewel"},
		{"Sacrificial Heart", "Heart"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.base))
		})
	}
}

// TestClassifyStable tests that repeated calls agree.
func TestClassifyStable(t *testing.T) {
	for range 3 {
		assert.Equal(t, "Helmet", Classify("Hubris Circlet"))
	}
}

// TestGroupByType tests bucketing and query filtering of bases.
func TestGroupByType(t *testing.T) {
	bases := []string{"Two-Stone Ring", "Hubris Circlet", "Coral Amulet", "Iron Ring"}

	t.Run("no query", func(t *testing.T) {
		assert.Equal(t, []schema.TypeBucket{
			{Type: "Amulet", Bases: []string{"Coral Amulet"}},
			{Type: "Helmet", Bases: []string{"Hubris Circlet"}},
			{Type: "Ring", Bases: []string{"Iron Ring", "Two-Stone Ring"}},
		}, GroupByType(bases, ""))
	})

	t.Run("query", func(t *testing.T) {
		assert.Equal(t, []schema.TypeBucket{
			{Type: "Ring", Bases: []string{"Iron Ring", "Two-Stone Ring"}},
		}, GroupByType(bases, "  RING "))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, GroupByType(bases, "sword"))
	})
}
