package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/weightexile/core"
	"github.com/huangsam/weightexile/internal/contract"
	"github.com/huangsam/weightexile/internal/iocache"
	"github.com/huangsam/weightexile/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheBackendSetup loads the cache backend settings without the full shared setup.
func cacheBackendSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// cacheSetup loads minimal configuration and opens the cache.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := cacheBackendSetup(); err != nil {
		return err
	}
	if err := iocache.InitCaching(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheBackendSetupWrapper provides PreRunE for commands that must not open the cache first.
func cacheBackendSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheBackendSetup()
}

// sqliteCachePath returns the SQLite file, honoring a connect string if given.
func sqliteCachePath() string {
	if cfg.CacheDBConnect != "" {
		return cfg.CacheDBConnect
	}
	return contract.GetCacheDBFilePath()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization instead of the full
// sharedSetup, so they work without catalogs or a selection.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the parsed catalog cache (improves performance)",
	Long: `Manage the cache of parsed stat and items catalogs.

Catalog files are parsed once and stored keyed by path and size. An entry is
reused while the file modification time is unchanged.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show cache statistics and connection info
  clear   - Remove all cached data
  migrate - Run cache schema migrations

Examples:
  # Check cache status
  weightexile cache status

  # Clear cache
  weightexile cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached catalog data",
	Long: `Delete all cached catalogs from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table and its migration history

Examples:
  # Clear SQLite cache (default)
  weightexile cache clear

  # Clear MySQL cache (set connection string via env variable)
  WEIGHTEXILE_CACHE_BACKEND=mysql WEIGHTEXILE_CACHE_DB_CONNECT="..." weightexile cache clear`,
	PreRunE: cacheBackendSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearCache(cfg.CacheBackend, sqliteCachePath(), cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show the backend, connection state, entry count, newest and oldest entry,
and table size of the catalog cache.

Examples:
  weightexile cache status
  weightexile cache status --output json`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCacheStatus(rootCtx, cfg, iocache.Manager); err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
	},
}

// cacheMigrateCmd runs database migrations for the cache store.
var cacheMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run cache schema migrations (upgrades/downgrades)",
	Long: `Manage schema versions of the catalog cache table.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  weightexile cache migrate

  # Migrate to a specific version
  weightexile cache migrate --target-version 1

  # Roll back everything
  weightexile cache migrate --target-version 0`,
	PreRunE: cacheBackendSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		targetVersion, err := cmd.Flags().GetInt("target-version")
		if err != nil {
			contract.LogFatal("Invalid target version", err)
		}
		if err := iocache.MigrateCache(os.Stdout, cfg.CacheBackend, cfg.CacheDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
