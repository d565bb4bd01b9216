// Package iocache is for caching parsed catalog data.
package iocache

import (
	"sync"

	"github.com/huangsam/weightexile/internal/contract"
)

// CacheStoreManager manages the CacheStore instances.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	catalog      contract.CacheStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetCatalogStore returns the catalog CacheStore.
func (mgr *CacheStoreManager) GetCatalogStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.catalog
}
