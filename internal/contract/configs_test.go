package contract

import (
	"testing"
	"time"

	"github.com/embeau/tonelab/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validRawInput returns a baseline input that passes validation.
func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		UserIDStr:     "user-123",
		Limit:         DefaultResultLimit,
		Workers:       4,
		Precision:     1,
		Output:        "text",
		CacheBackend:  "sqlite",
		StoreBackend:  "sqlite",
		ResearchLog:   "no",
		RetentionDays: DefaultRetentionDays,
		Emoji:         "yes",
		Color:         "yes",
	}
}

func TestProcessAndValidateHappyPath(t *testing.T) {
	cfg := &Config{}
	input := validRawInput()
	input.Week = "2025-06-04"
	input.AggregateTTL = "72h"

	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, "user-123", cfg.UserID)
	assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.CacheBackend)
	assert.Equal(t, schema.SQLiteBackend, cfg.StoreBackend)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), cfg.WeekStart)
	assert.Equal(t, 72*time.Hour, cfg.AggregateTTL)
	assert.True(t, cfg.UseEmojis)
	assert.False(t, cfg.ResearchLogEnabled)
	assert.Equal(t, GetResearchLogPath(), cfg.ResearchLogPath)
}

func TestProcessAndValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{"blank user", func(in *ConfigRawInput) { in.UserIDStr = "   " }},
		{"zero limit", func(in *ConfigRawInput) { in.Limit = 0 }},
		{"limit above max", func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 }},
		{"zero workers", func(in *ConfigRawInput) { in.Workers = 0 }},
		{"precision too high", func(in *ConfigRawInput) { in.Precision = 3 }},
		{"unknown output", func(in *ConfigRawInput) { in.Output = "yaml" }},
		{"unknown cache backend", func(in *ConfigRawInput) { in.CacheBackend = "redis" }},
		{"unknown store backend", func(in *ConfigRawInput) { in.StoreBackend = "mongo" }},
		{"bad emoji flag", func(in *ConfigRawInput) { in.Emoji = "maybe" }},
		{"bad research log flag", func(in *ConfigRawInput) { in.ResearchLog = "sometimes" }},
		{"zero retention", func(in *ConfigRawInput) { in.RetentionDays = 0 }},
		{"bad week", func(in *ConfigRawInput) { in.Week = "June 4th" }},
		{"bad ttl", func(in *ConfigRawInput) { in.AggregateTTL = "three days" }},
		{"negative ttl", func(in *ConfigRawInput) { in.AggregateTTL = "-1h" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRawInput()
			tt.mutate(input)
			assert.Error(t, ProcessAndValidate(&Config{}, input))
		})
	}
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.DatabaseBackend
		connStr string
		wantErr bool
	}{
		{"sqlite empty ok", schema.SQLiteBackend, "", false},
		{"none empty ok", schema.NoneBackend, "", false},
		{"mysql valid", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/tonelab", false},
		{"mysql missing tcp", schema.MySQLBackend, "user:pass@localhost/tonelab", true},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost dbname=tonelab user=postgres", false},
		{"postgres missing host", schema.PostgreSQLBackend, "dbname=tonelab", true},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost", true},
		{"postgres empty", schema.PostgreSQLBackend, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSQLiteSharedFileRejected(t *testing.T) {
	input := validRawInput()
	input.CacheDBConnect = "/tmp/shared.db"
	input.StoreDBConnect = "/tmp/shared.db"
	assert.Error(t, ProcessAndValidate(&Config{}, input))
}

func TestParseWeekFlag(t *testing.T) {
	now := time.Date(2025, 6, 5, 14, 0, 0, 0, time.UTC) // a Thursday
	currentMonday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{"empty means current week", "", currentMonday, false},
		{"current keyword", "current", currentMonday, false},
		{"last keyword", "last", currentMonday.AddDate(0, 0, -7), false},
		{"absolute date mid-week", "2025-06-04", currentMonday, false},
		{"absolute date on monday", "2025-06-02", currentMonday, false},
		{"garbage", "soon", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekFlag(tt.in, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{UserID: "user-1", Workers: 8, AggregateTTL: time.Hour}

	clone := cfg.Clone()
	clone.Workers = 2
	assert.Equal(t, 8, cfg.Workers)

	scoped := cfg.CloneWithUser("user-2")
	assert.Equal(t, "user-2", scoped.UserID)
	assert.Equal(t, "user-1", cfg.UserID)
	assert.Equal(t, cfg.AggregateTTL, scoped.AggregateTTL)
}
