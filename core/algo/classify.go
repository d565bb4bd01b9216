package algo

import (
	"regexp"
	"sort"
	"strings"

	"github.com/huangsam/weightexile/schema"
)

type typeRule struct {
	label string
	match func(lower string) bool
}

func word(w string) func(string) bool {
	return func(lower string) bool {
		return strings.HasSuffix(lower, " "+w) || strings.Contains(lower, " "+w+" ")
	}
}

func substr(s string) func(string) bool {
	return func(lower string) bool { return strings.Contains(lower, s) }
}

func pattern(expr string) func(string) bool {
	re := regexp.MustCompile(expr)
	return re.MatchString
}

// typeRules is checked in order: accessories, armour slots, weapons, then the ring catch-all.
var typeRules = []typeRule{
	{"Ring", word("ring")},
	{"Amulet", substr("amulet")},
	{"Belt", word("belt")},

	{"Helmet", pattern(`helmet|helm|circlet|hood|cap|crown|bascinet`)},
	{"Gloves", pattern(`gloves|gauntlet|mitts`)},
	{"Boots", pattern(`boots|greaves|slippers|shoes`)},
	{"Body Armour", pattern(`armour|armor|plate|brigandine|tunic|robe|garb|carapace|coat|hauberk|chainmail|ringmail|jacket|vest|leather|regalia`)},
	{"Shield", pattern(`shield|buckler|kite|targe`)},
	{"Quiver", pattern(`quiver`)},

	{"Bow", substr("bow")},
	{"Wand", substr("wand")},
	{"Dagger", substr("dagger")},
	{"Claw", substr("claw")},
	{"Staff", substr("staff")},
	{"Sceptre", pattern(`sceptre|scepter`)},
	{"Axe", substr("axe")},
	{"Mace", pattern(`mace|maul`)},
	{"Sword", substr("sword")},

	{"Ring", substr("ring")},
}

// Classify maps an item base name to a type bucket. Names no rule recognises
// fall back to their last word.
func Classify(baseName string) string {
	lower := strings.ToLower(baseName)
	for _, r := range typeRules {
		if r.match(lower) {
			return r.label
		}
	}

	parts := strings.Fields(baseName)
	if len(parts) == 0 {
		return baseName
	}
	return parts[len(parts)-1]
}

// GroupByType filters bases by a case-insensitive query and buckets them by Classify.
// Bases within a bucket and the buckets themselves are sorted by name.
func GroupByType(bases []string, query string) []schema.TypeBucket {
	q := strings.ToLower(strings.TrimSpace(query))

	byType := make(map[string][]string)
	for _, b := range bases {
		if q != "" && !strings.Contains(strings.ToLower(b), q) {
			continue
		}
		t := Classify(b)
		byType[t] = append(byType[t], b)
	}

	buckets := make([]schema.TypeBucket, 0, len(byType))
	for t, list := range byType {
		sort.Strings(list)
		buckets = append(buckets, schema.TypeBucket{Type: t, Bases: list})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Type < buckets[j].Type
	})
	return buckets
}
