package iostore

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/schema"
)

// memoTable is the name of the table for memoized results.
const memoTable = "tonelab_memo"

// Global Manager instance for main logic.
var (
	Manager   = &StoreManagerImpl{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetCacheDBFilePath returns the path to the SQLite DB file for memo storage.
func GetCacheDBFilePath() string {
	return contract.GetCacheDBFilePath()
}

// GetStoreDBFilePath returns the path to the SQLite DB file for observation storage.
func GetStoreDBFilePath() string {
	return contract.GetStoreDBFilePath()
}

// InitStores initializes the global store manager with separate memo and
// observation stores.
// cacheBackend and cacheConnStr can be empty to disable memoization.
// storeBackend and storeConnStr can be empty to disable observation tracking.
func InitStores(cacheBackend schema.DatabaseBackend, cacheConnStr string, storeBackend schema.DatabaseBackend, storeConnStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		var err error

		// Initialize memo store only if backend is configured
		var cacheStore contract.CacheStore
		if cacheBackend != "" {
			cacheStore, err = NewKVStore(memoTable, cacheBackend, cacheConnStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize memoization: %w", err)
				return
			}
		}

		// Initialize observation store only if backend is configured
		var observationStore contract.ObservationStore
		if storeBackend != "" {
			observationStore, err = NewObservationStore(storeBackend, storeConnStr)
			if err != nil {
				if cacheStore != nil {
					_ = cacheStore.Close()
				}
				initErr = fmt.Errorf("failed to initialize observation store: %w", err)
				return
			}
		}

		// Assign to global manager
		Manager.cache = cacheStore
		Manager.observations = observationStore
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.cache != nil {
			_ = Manager.cache.Close()
		}
		if Manager.observations != nil {
			_ = Manager.observations.Close()
		}
	})
}

// ClearCache clears the memo store for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
// For NoneBackend, it does nothing.
func ClearCache(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return clearSQLTable("mysql", connStr, memoTable)

	case schema.PostgreSQLBackend:
		return clearSQLTable("pgx", connStr, memoTable)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported cache backend for clearing: %s", backend)
	}
}

// ClearStore clears the observation data for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the observation tables.
// For NoneBackend, it does nothing.
func ClearStore(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return clearObservationTables("mysql", connStr)

	case schema.PostgreSQLBackend:
		return clearObservationTables("pgx", connStr)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported store backend for clearing: %s", backend)
	}
}

// clearObservationTables drops every observation table.
func clearObservationTables(driverName, connStr string) error {
	tables := []string{colorProfilesTable, emotionEntriesTable, weeklyAggregatesTable, feedbackTable, sessionsTable}
	for _, table := range tables {
		if err := clearSQLTable(driverName, connStr, table); err != nil {
			return err
		}
	}
	return nil
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(driverName, connStr, tableName string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}

	return nil
}
