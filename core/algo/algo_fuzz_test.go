package algo

import (
	"strings"
	"testing"

	"github.com/huangsam/weightexile/schema"
)

// FuzzAutoWeight checks the weight and threshold bounds for arbitrary priorities, scales and rolls.
func FuzzAutoWeight(f *testing.F) {
	f.Add(5, 2, 120.0, 100.0, 90.0)
	f.Add(0, 0, 0.0, -5.0, 0.0)
	f.Add(1, 5, 1e9, 0.5, -40.0)
	f.Add(-3, 99, 3.0, 3.0, 1e300)

	f.Fuzz(func(t *testing.T, p1, p2 int, s1, s2, desired float64) {
		a := stat("a", p1)
		a.DesiredMin = &desired
		b := stat("b", p2)
		b.Direction = schema.AtMost
		selected := []schema.SelectedStat{a, b}

		result := AutoWeight(selected, fixedScales{"a": s1, "b": s2})
		if len(result.Weights) != len(selected) {
			t.Fatalf("expected %d weights, got %d", len(selected), len(result.Weights))
		}
		for i, w := range result.Weights {
			if w.ID != selected[i].ID {
				t.Fatalf("weight %d has id %q, want %q", i, w.ID, selected[i].ID)
			}
			if w.Weight < 1 {
				t.Fatalf("weight for %s is %d, want >= 1", w.ID, w.Weight)
			}
		}
		if result.MinSum < 1 {
			t.Fatalf("minSum is %d, want >= 1", result.MinSum)
		}
	})
}

// FuzzClassify makes sure every base name lands in some bucket.
func FuzzClassify(f *testing.F) {
	f.Add("Vaal Regalia")
	f.Add("Two-Stone Ring")
	f.Add("")
	f.Add("   ")
	f.Add("Imbued Wand Of Something")

	f.Fuzz(func(t *testing.T, base string) {
		got := Classify(base)
		if strings.TrimSpace(base) != "" && got == "" {
			t.Fatalf("Classify(%q) returned an empty type", base)
		}
	})
}
