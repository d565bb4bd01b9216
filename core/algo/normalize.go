package algo

import (
	"math"

	"github.com/huangsam/weightexile/schema"
)

// weightScale is the total a normalized weight set sums to, before rounding.
const weightScale = 100.0

// Normalize converts each stat's priority and scale into an integer weight.
// Scores are priority / max(1, scale), normalized over the whole selection to ~100.
// Every stat gets a weight of at least 1. Output order matches input order.
func Normalize(selected []schema.SelectedStat, resolver ScaleResolver) []schema.WeightedOutput {
	resolver = resolverOrDefault(resolver)

	scores := make([]float64, len(selected))
	var total float64
	for i, s := range selected {
		scores[i] = statScore(s, resolver)
		total += scores[i]
	}
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		total = 1
	}

	out := make([]schema.WeightedOutput, len(selected))
	for i, s := range selected {
		w := int(math.Round(scores[i] / total * weightScale))
		out[i] = schema.WeightedOutput{ID: s.ID, Weight: max(1, w)}
	}
	return out
}

// statScore is priority / max(1, scale). Unset priorities score 0.
func statScore(s schema.SelectedStat, resolver ScaleResolver) float64 {
	p := clampPriority(s.Priority)
	if p == 0 {
		return 0
	}
	return float64(p) / safeScale(resolver.ResolveScale(s.ID, s.Text))
}

func clampPriority(p int) int {
	if p < schema.MinPriority {
		return 0
	}
	return min(p, schema.MaxPriority)
}

func safeScale(scale float64) float64 {
	if math.IsNaN(scale) || scale < 1 {
		return 1
	}
	return scale
}
