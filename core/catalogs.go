package core

import (
	"github.com/huangsam/weightexile/internal/catalog"
	"github.com/huangsam/weightexile/internal/contract"
)

// newLoader returns a catalog loader backed by the manager's catalog store, if any.
func newLoader(mgr contract.CacheManager) *catalog.Loader {
	if mgr == nil {
		return catalog.NewLoader(nil)
	}
	return catalog.NewLoader(mgr.GetCatalogStore())
}

// loadStatIndex loads the stat catalog. A missing or broken catalog is not fatal:
// selections still work with the ids and text given by the user.
func loadStatIndex(cfg *contract.Config, mgr contract.CacheManager) *catalog.Index {
	defs, err := newLoader(mgr).LoadStats(cfg.StatsFile)
	if err != nil {
		contract.LogWarn("Cannot load stat catalog", err)
		return catalog.NewIndex(nil)
	}
	return catalog.NewIndex(defs)
}

// loadBaseTypes loads the base types of the items catalog, falling back to none.
func loadBaseTypes(cfg *contract.Config, mgr contract.CacheManager) []string {
	bases, err := newLoader(mgr).LoadBaseTypes(cfg.ItemsFile)
	if err != nil {
		contract.LogWarn("Cannot load items catalog", err)
		return nil
	}
	return bases
}
