package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/weightexile/core/algo"
	"github.com/huangsam/weightexile/internal/contract"
	"github.com/huangsam/weightexile/schema"
)

// BuildWeightsReport runs the weighting pipeline over a validated selection and joins
// each stat with its computed weight and scale.
func BuildWeightsReport(selected []schema.SelectedStat, resolver algo.ScaleResolver) schema.WeightsReport {
	if resolver == nil {
		resolver = algo.DefaultScales
	}
	result := algo.AutoWeight(selected, resolver)

	rows := make([]schema.WeightRow, 0, len(selected))
	total := 0
	for i, s := range selected {
		weight := result.Weights[i].Weight
		total += weight
		rows = append(rows, schema.WeightRow{
			Index:      i + 1,
			ID:         s.ID,
			Text:       s.Text,
			Category:   s.Category,
			Priority:   s.Priority,
			Label:      schema.GetPriorityLabel(s.Priority),
			Direction:  s.Direction,
			DesiredMin: s.DesiredMin,
			Scale:      resolver.ResolveScale(s.ID, s.Text),
			Weight:     weight,
		})
	}

	return schema.WeightsReport{
		Rows:        rows,
		TotalWeight: total,
		MinSum:      result.MinSum,
		Rule:        result.Rule,
		Group:       algo.Assemble(result.Weights, result.MinSum),
	}
}

// GetWeightsResults builds the weights report for the selection described by cfg.
func GetWeightsResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.WeightsReport, error) {
	index := loadStatIndex(cfg, mgr)
	selected, err := contract.BuildSelection(cfg, index)
	if err != nil {
		return schema.WeightsReport{}, fmt.Errorf("invalid selection: %w", err)
	}
	if len(selected) == 0 {
		return schema.WeightsReport{}, fmt.Errorf("no stats selected, pass a selection file or --stat")
	}
	logSelectionHeader(ctx, cfg, len(selected), index.Len())
	return BuildWeightsReport(selected, algo.NewScaleTable(cfg.ScaleOverrides)), nil
}

// GetSelectionResults builds the weights report for raw stats supplied by a caller
// other than the CLI, such as an MCP tool.
func GetSelectionResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager, raw []contract.StatRawInput) (schema.WeightsReport, error) {
	index := loadStatIndex(cfg, mgr)
	selected, err := contract.ValidateSelection(raw, index)
	if err != nil {
		return schema.WeightsReport{}, fmt.Errorf("invalid selection: %w", err)
	}
	logSelectionHeader(ctx, cfg, len(selected), index.Len())
	return BuildWeightsReport(selected, algo.NewScaleTable(cfg.ScaleOverrides)), nil
}

// GetTypesResults buckets the item catalog bases by type. cfg.Query filters base names
// and cfg.TypeFilter keeps only buckets whose type contains it.
func GetTypesResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) []schema.TypeBucket {
	bases := loadBaseTypes(cfg, mgr)
	logCatalogHeader(ctx, cfg, "items", cfg.ItemsFile, len(bases))

	buckets := algo.GroupByType(bases, cfg.Query)
	if cfg.TypeFilter == "" {
		return buckets
	}

	want := strings.ToLower(cfg.TypeFilter)
	filtered := make([]schema.TypeBucket, 0, len(buckets))
	for _, b := range buckets {
		if strings.Contains(strings.ToLower(b.Type), want) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// GetStatsResults searches the stat catalog for cfg.Query, up to cfg.ResultLimit matches.
func GetStatsResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) []schema.StatDefinition {
	index := loadStatIndex(cfg, mgr)
	logCatalogHeader(ctx, cfg, "stats", cfg.StatsFile, index.Len())
	return index.Search(cfg.Query, cfg.ResultLimit)
}

// GetClassifyResults classifies each base name in the order given.
func GetClassifyResults(bases []string) []schema.ClassifiedBase {
	results := make([]schema.ClassifiedBase, 0, len(bases))
	for _, b := range bases {
		results = append(results, schema.ClassifiedBase{Base: b, Type: algo.Classify(b)})
	}
	return results
}

// GetScalesResults lists the active scale table, custom overrides first.
func GetScalesResults(cfg *contract.Config) []schema.ScaleRow {
	return algo.NewScaleTable(cfg.ScaleOverrides).Rows()
}
