package contract

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/embeau/tonelab/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit   = 30
	MaxResultLimit       = 1000
	DefaultPrecision     = 1
	DefaultRetentionDays = 365
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// DateFormat is the representation for day-granularity values.
const DateFormat = "2006-01-02"

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for tonelab operations.
// This struct remains the "final, validated" config.
type Config struct {
	UserID      string
	ResultLimit int
	Workers     int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	// WeekStart is the Monday the weekly operations target.
	WeekStart time.Time

	// AggregateTTL bounds how long a memoized weekly aggregate stays
	// fresh. Zero means cached aggregates never go stale.
	AggregateTTL time.Duration

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	ResearchLogEnabled bool
	ResearchLogPath    string
	RetentionDays      int

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	UserIDStr       string `mapstructure:"user"`
	OutputFile      string `mapstructure:"output-file"`
	Limit           int    `mapstructure:"limit"`
	Workers         int    `mapstructure:"workers"`
	Precision       int    `mapstructure:"precision"`
	Output          string `mapstructure:"output"`
	Width           int    `mapstructure:"width"`
	CacheBackend    string `mapstructure:"cache-backend"`
	CacheDBConnect  string `mapstructure:"cache-db-connect"`
	StoreBackend    string `mapstructure:"store-backend"`
	StoreDBConnect  string `mapstructure:"store-db-connect"`
	ResearchLog     string `mapstructure:"research-log"`
	ResearchLogPath string `mapstructure:"research-log-path"`
	RetentionDays   int    `mapstructure:"retention-days"`
	Emoji           string `mapstructure:"emoji"`
	Color           string `mapstructure:"color"`
	Week            string `mapstructure:"week"`
	AggregateTTL    string `mapstructure:"aggregate-ttl"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// CloneWithUser creates a copy of the Config scoped to another user.
func (c *Config) CloneWithUser(userID string) *Config {
	clone := c.Clone()
	clone.UserID = userID
	return clone
}

// ProcessAndValidate performs all complex parsing and validation on the raw
// inputs and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processWeekWindow(cfg, input); err != nil {
		return err
	}
	if err := processResearchLog(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates cache and store backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Cache Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	// --- Observation Store Backend Validation ---
	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if cfg.StoreBackend != "" {
		if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
			return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
		}
		cfg.StoreDBConnect = input.StoreDBConnect
		if err := ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
			return err
		}

		// The memo cache and the observation store must not share a database.
		if cfg.CacheBackend == cfg.StoreBackend && cfg.CacheBackend != schema.NoneBackend {
			if cfg.CacheBackend == schema.SQLiteBackend {
				cacheDBPath := cfg.CacheDBConnect
				if cacheDBPath == "" {
					cacheDBPath = GetCacheDBFilePath()
				}
				storeDBPath := cfg.StoreDBConnect
				if storeDBPath == "" {
					storeDBPath = GetStoreDBFilePath()
				}
				if cacheDBPath == storeDBPath {
					return fmt.Errorf("cache and observation storage must use different SQLite database files. Both resolve to %q", cacheDBPath)
				}
			}
		}
	}

	return nil
}

// validateSimpleInputs processes and validates all scalar fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.UserID = strings.TrimSpace(input.UserIDStr)
	if cfg.UserID == "" {
		return fmt.Errorf("user cannot be empty")
	}
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", cfg.Output)
	}

	// --- 4. Backend Validation ---
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}

	return nil
}

// processWeekWindow resolves the target week and the aggregate staleness bound.
func processWeekWindow(cfg *Config, input *ConfigRawInput) error {
	now := time.Now().UTC()

	week, err := ParseWeekFlag(input.Week, now)
	if err != nil {
		return err
	}
	cfg.WeekStart = week

	if input.AggregateTTL != "" {
		ttl, err := time.ParseDuration(input.AggregateTTL)
		if err != nil {
			return fmt.Errorf("invalid --aggregate-ttl value '%s': %w", input.AggregateTTL, err)
		}
		if ttl < 0 {
			return fmt.Errorf("--aggregate-ttl cannot be negative (received %s)", ttl)
		}
		cfg.AggregateTTL = ttl
	}

	return nil
}

// processResearchLog validates the research log settings.
func processResearchLog(cfg *Config, input *ConfigRawInput) error {
	enabled, err := ParseBoolString(input.ResearchLog)
	if err != nil {
		return fmt.Errorf("invalid --research-log value: %w", err)
	}
	cfg.ResearchLogEnabled = enabled

	cfg.ResearchLogPath = strings.TrimSpace(input.ResearchLogPath)
	if cfg.ResearchLogPath == "" {
		cfg.ResearchLogPath = GetResearchLogPath()
	}

	if input.RetentionDays <= 0 {
		return fmt.Errorf("retention-days must be greater than 0 (received %d)", input.RetentionDays)
	}
	cfg.RetentionDays = input.RetentionDays

	return nil
}

// ParseWeekFlag resolves the --week flag into a Monday 00:00 UTC week start.
// Accepted values: empty (current week), "last" (previous week), or an
// absolute date in 2006-01-02 form (the week containing that date).
func ParseWeekFlag(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "current":
		return schema.WeekStart(now), nil
	case "last", "previous":
		return schema.WeekStart(now).AddDate(0, 0, -7), nil
	}

	t, err := time.ParseInLocation(DateFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid week '%s'. Expected 2006-01-02, 'current' or 'last': %w", s, err)
	}
	return schema.WeekStart(t), nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
