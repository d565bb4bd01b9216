package algo

import "github.com/huangsam/weightexile/schema"

// Assemble builds the weight2 filter group document. Filters keep the order of weights
// and are always enabled.
func Assemble(weights []schema.WeightedOutput, minSum int) schema.FilterGroup {
	filters := make([]schema.FilterEntry, 0, len(weights))
	for _, w := range weights {
		filters = append(filters, schema.FilterEntry{
			ID:       w.ID,
			Disabled: false,
			Value:    schema.FilterValue{Weight: w.Weight},
		})
	}
	return schema.FilterGroup{
		Type:    schema.FilterGroupType,
		Min:     minSum,
		Filters: filters,
	}
}

// AutoWeight normalizes the selection and suggests its threshold.
func AutoWeight(selected []schema.SelectedStat, resolver ScaleResolver) schema.AutoWeightResult {
	weights := Normalize(selected, resolver)
	minSum, rule := SuggestThreshold(selected, weights, resolver)
	return schema.AutoWeightResult{Weights: weights, MinSum: minSum, Rule: rule}
}

// BuildFilterGroup runs the whole pipeline from selection to document.
func BuildFilterGroup(selected []schema.SelectedStat, resolver ScaleResolver) schema.FilterGroup {
	result := AutoWeight(selected, resolver)
	return Assemble(result.Weights, result.MinSum)
}
