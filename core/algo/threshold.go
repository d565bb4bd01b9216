package algo

import (
	"math"

	"github.com/huangsam/weightexile/schema"
)

// halfRatio is the share of the total weight required when no desired rolls are given.
const halfRatio = 0.5

// SuggestMinSum returns the minimum total weight a candidate item must reach.
func SuggestMinSum(selected []schema.SelectedStat, weights []schema.WeightedOutput, resolver ScaleResolver) int {
	minSum, _ := SuggestThreshold(selected, weights, resolver)
	return minSum
}

// SuggestThreshold returns the minSum together with the rule that produced it.
//
// A stat qualifies when it is searched at-least and has a finite desired roll.
// If any stat qualifies, minSum is round(sum(desiredMin * weight / scale)) over the
// qualifying stats. Otherwise it is round(sum(weights) * 0.5). The result is at least 1.
func SuggestThreshold(selected []schema.SelectedStat, weights []schema.WeightedOutput, resolver ScaleResolver) (int, schema.ThresholdRule) {
	resolver = resolverOrDefault(resolver)

	byID := make(map[string]int, len(weights))
	var totalWeight int
	for _, w := range weights {
		byID[w.ID] = w.Weight
		totalWeight += w.Weight
	}

	var desired float64
	qualified := false
	for _, s := range selected {
		if !qualifies(s) {
			continue
		}
		qualified = true
		scale := resolver.ResolveScale(s.ID, s.Text)
		if math.IsNaN(scale) || scale <= 0 {
			scale = 1
		}
		desired += *s.DesiredMin * float64(byID[s.ID]) / scale
	}

	if qualified {
		return clampMinSum(math.Round(desired)), schema.DesiredRule
	}
	return clampMinSum(math.Round(float64(totalWeight) * halfRatio)), schema.HalfRule
}

func qualifies(s schema.SelectedStat) bool {
	return s.Direction != schema.AtMost && s.HasDesiredMin()
}

func clampMinSum(v float64) int {
	if math.IsNaN(v) || v < 1 {
		return 1
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}
