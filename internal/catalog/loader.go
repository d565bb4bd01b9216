package catalog

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/weightexile/internal/contract"
	"github.com/huangsam/weightexile/schema"
)

// currentCacheVersion defines the version of the cached catalog payloads.
const currentCacheVersion = 1

// Loader reads catalog files, reusing parsed results from the cache store
// while the file modification time is unchanged.
type Loader struct {
	store contract.CacheStore
}

// NewLoader returns a Loader. A nil store disables caching.
func NewLoader(store contract.CacheStore) *Loader {
	return &Loader{store: store}
}

// LoadStats returns the stat definitions in the catalog at path.
func (l *Loader) LoadStats(path string) ([]schema.StatDefinition, error) {
	return loadCached(l, "stats", path, ParseStats)
}

// LoadBaseTypes returns the base types in the items catalog at path.
func (l *Loader) LoadBaseTypes(path string) ([]string, error) {
	return loadCached(l, "items", path, ParseBaseTypes)
}

// loadCached checks the cache for a parsed catalog and parses the file on a miss.
func loadCached[T any](l *Loader, kind, path string, parse func([]byte) (T, error)) (T, error) {
	var zero T

	absPath, err := filepath.Abs(path)
	if err != nil {
		return zero, err
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return zero, fmt.Errorf("failed to stat %s catalog %s: %w", kind, path, err)
	}
	modTime := info.ModTime().Unix()
	key := generateCacheKey(kind, absPath, info.Size())

	if l != nil && l.store != nil {
		if result, ok := checkCacheHit[T](l.store, key, modTime); ok {
			return result, nil
		}
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return zero, fmt.Errorf("failed to read %s catalog %s: %w", kind, path, err)
	}
	result, err := parse(data)
	if err != nil {
		return zero, err
	}

	if l != nil && l.store != nil {
		if encoded, err := json.Marshal(result); err == nil {
			if err := l.store.Set(key, encoded, currentCacheVersion, modTime); err != nil {
				contract.LogWarn("Cannot cache "+kind+" catalog", err)
			}
		}
	}
	return result, nil
}

// checkCacheHit returns the cached value when version and timestamp still match.
func checkCacheHit[T any](store contract.CacheStore, key string, modTime int64) (T, bool) {
	var result T
	data, version, ts, err := store.Get(key)
	if err != nil {
		return result, false
	}
	if version != currentCacheVersion || ts != modTime {
		return result, false
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, false
	}
	return result, true
}

// generateCacheKey creates a stable key for a catalog file.
func generateCacheKey(kind, absPath string, size int64) string {
	key := fmt.Sprintf("%s:%s:%d", kind, absPath, size)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}
