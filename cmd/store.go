package cmd

import (
	"fmt"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/internal/iostore"
	"github.com/embeau/tonelab/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeSetup loads minimal configuration needed for store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	cacheBackend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	cacheConnStr := viper.GetString("cache-db-connect")
	if err := contract.ValidateDatabaseConnectionString(cacheBackend, cacheConnStr); err != nil {
		return err
	}

	// Get store-related config values; empty means disabled
	storeBackendStr := viper.GetString("store-backend")
	var storeBackend schema.DatabaseBackend
	if storeBackendStr == "" {
		storeBackend = schema.NoneBackend
	} else {
		storeBackend = schema.DatabaseBackend(storeBackendStr)
	}
	storeConnStr := viper.GetString("store-db-connect")
	if err := contract.ValidateDatabaseConnectionString(storeBackend, storeConnStr); err != nil {
		return err
	}

	// Initialize both stores with the loaded config (no session tracking
	// for store commands)
	if err := iostore.InitStores(cacheBackend, cacheConnStr, storeBackend, storeConnStr); err != nil {
		return fmt.Errorf("failed to initialize stores: %w", err)
	}

	cfg.CacheBackend = cacheBackend
	cfg.CacheDBConnect = cacheConnStr
	cfg.StoreBackend = storeBackend
	cfg.StoreDBConnect = storeConnStr
	cfg.OutputFile = viper.GetString("output-file")

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func storeMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values; empty means disabled
	backendStr := viper.GetString("store-backend")
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}
	connStr := viper.GetString("store-db-connect")
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = iostore.GetStoreDBFilePath()
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// storeMigrateSetupWrapper wraps storeMigrateSetup to provide PreRunE for migrate.
func storeMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeMigrateSetup()
}

// storeCmd focused on persistence management.
//
// Note: Store subcommands use minimal initialization (storeSetup) instead of
// the full sharedSetup used by analysis commands. This avoids user and week
// validation for simple persistence operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the memo cache and the observation store",
	Long: `Manage tonelab's two persistence layers.

The memo cache holds recomputable results (weekly aggregates, daily healing
colors) so repeat views skip the pipeline. The observation store holds the
research dataset itself: color profiles, emotion entries, weekly aggregates,
feedback and session rows.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None

Subcommands:
  status  - Show backend status and row counts for both layers
  clear   - Remove all persisted data
  export  - Export the observation dataset to Parquet
  migrate - Run observation store schema migrations

Examples:
  # Check both layers
  tonelab store status

  # Export for analysis in pandas/DuckDB
  tonelab store export --output-file tonelab-data.parquet`,
}

// storeClearCmd clears both persistence layers.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached and stored observation data",
	Long: `Delete all persisted data from the configured backends.

Clears the memo cache first, then the observation store. The memo cache is
always safe to clear; observations are the research dataset itself, so
consider exporting first.

For SQLite: Deletes the database files
For MySQL/PostgreSQL: Drops the tables

Examples:
  # Export before clearing
  tonelab store export --output-file backup.parquet
  tonelab store clear

  # Clear a MySQL-backed store (set connection string via env variable)
  TONELAB_STORE_BACKEND=mysql TONELAB_STORE_DB_CONNECT="..." tonelab store clear`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		cachePath := cfg.CacheDBConnect
		if cachePath == "" {
			cachePath = iostore.GetCacheDBFilePath()
		}
		if err := iostore.ClearCache(cfg.CacheBackend, cachePath, cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear memo cache", err)
		}

		storePath := cfg.StoreDBConnect
		if storePath == "" {
			storePath = iostore.GetStoreDBFilePath()
		}
		if err := iostore.ClearStore(cfg.StoreBackend, storePath, cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Failed to clear observation store", err)
		}
		fmt.Println("Store data cleared successfully.")
	},
}

// storeStatusCmd shows status for both persistence layers.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display backend status and row counts for both layers",
	Long: `Show detailed information about the memo cache and the observation store.

Displays per layer:
- Backend type and connection status
- Row counts (memo entries; sessions, color profiles, emotion entries,
  weekly aggregates)
- Newest and oldest entry timestamps
- Approximate on-disk size

Use this to:
- Verify persistence is working and connected
- Monitor dataset growth over time
- Debug backend connection issues

Examples:
  # Check both layers
  tonelab store status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cache := iostore.Manager.GetCacheStore(); cache != nil {
			status, err := cache.GetStatus()
			if err != nil {
				contract.LogFatal("Failed to get cache status", err)
			}
			iostore.PrintCacheStatus(status)
		} else {
			fmt.Println("Memo cache is disabled.")
		}

		fmt.Println()

		if store := iostore.Manager.GetObservationStore(); store != nil {
			status, err := store.GetStatus()
			if err != nil {
				contract.LogFatal("Failed to get store status", err)
			}
			iostore.PrintStoreStatus(status)
		} else {
			fmt.Println("Observation store is disabled.")
		}
	},
}

// storeExportCmd exports observation data to Parquet files.
var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the observation dataset to Parquet for analytics",
	Long: `Export all stored observation data to Parquet format.

Exports five datasets, one file per dataset named <output-file>.<dataset>.parquet:
- Color profiles - current classification per user
- Emotion entries - per-axis scores with dominant emotion per entry
- Weekly aggregates - computed weekly insights per user and week
- Feedback - satisfaction ratings tied to results
- Sessions - per-run timing and configuration

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all data
  tonelab store export --output-file tonelab-data

  # Use with DuckDB for analysis
  tonelab store export --output-file data
  duckdb -c "SELECT * FROM read_parquet('data.emotion_entries.parquet') LIMIT 10"`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iostore.ExecuteStoreExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export observation data", err)
		}
	},
}

// storeMigrateCmd runs database migrations for the observation store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run observation store schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the observation store.

Migrations allow:
- Upgrading to new schema versions when tonelab is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  tonelab store migrate

  # Migrate to specific version
  tonelab store migrate --target-version 2

  # Rollback to previous version
  tonelab store migrate --target-version 0`,
	PreRunE: storeMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iostore.MigrateStore(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
