package schema

import "time"

// CacheStatus represents the status of the memo cache store.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// StoreStatus represents the status of the observation store.
type StoreStatus struct {
	Backend           string           `json:"backend"`
	Connected         bool             `json:"connected"`
	TotalSessions     int              `json:"total_sessions"`
	ColorObservations int              `json:"color_observations"`
	EmotionEntries    int              `json:"emotion_entries"`
	WeeklyAggregates  int              `json:"weekly_aggregates"`
	LastEntryTime     time.Time        `json:"last_entry_time"`
	OldestEntryTime   time.Time        `json:"oldest_entry_time"`
	TableSizes        map[string]int64 `json:"table_sizes"`
}
