// Package core has core logic for building weighted stat groups and browsing catalogs.
package core

import (
	"context"

	"github.com/huangsam/weightexile/internal/contract"
	"github.com/huangsam/weightexile/internal/outwriter"
	"github.com/huangsam/weightexile/schema"
)

// ExecutorFunc defines the function signature for executing catalog-backed commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error

// ExecuteWeights computes normalized weights and the suggested threshold and prints them.
// It serves as the main entry point for the 'weights' command.
func ExecuteWeights(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	report, err := GetWeightsResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteWeights(report, cfg)
}

// ExecuteGroup prints the weight2 filter group document for the selection.
func ExecuteGroup(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	report, err := GetWeightsResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteGroup(report.Group, cfg)
}

// ExecuteTypes prints the item catalog bases grouped by type.
func ExecuteTypes(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	return outwriter.NewOutWriter().WriteTypes(GetTypesResults(ctx, cfg, mgr), cfg)
}

// ExecuteStats prints stat catalog search results.
func ExecuteStats(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	return outwriter.NewOutWriter().WriteStats(GetStatsResults(ctx, cfg, mgr), cfg)
}

// ExecuteScales prints the active scale table.
// This is a static display that does not read any catalog.
func ExecuteScales(_ context.Context, cfg *contract.Config, _ contract.CacheManager) error {
	return outwriter.NewOutWriter().WriteScales(GetScalesResults(cfg), cfg)
}

// ExecuteClassify prints the type of each base name given.
func ExecuteClassify(_ context.Context, cfg *contract.Config, bases []string) error {
	return outwriter.NewOutWriter().WriteClassified(GetClassifyResults(bases), cfg)
}

// ExecuteCacheStatus prints the status of the catalog cache.
func ExecuteCacheStatus(_ context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	status := disabledStatus(cfg)
	if mgr != nil {
		if store := mgr.GetCatalogStore(); store != nil {
			s, err := store.GetStatus()
			if err != nil {
				return err
			}
			status = s
		}
	}
	return outwriter.NewOutWriter().WriteCacheStatus(status, cfg)
}

// disabledStatus describes a cache that was never opened.
func disabledStatus(cfg *contract.Config) schema.CacheStatus {
	backend := string(cfg.CacheBackend)
	if backend == "" {
		backend = string(schema.NoneBackend)
	}
	return schema.CacheStatus{Backend: backend}
}
