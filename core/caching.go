package core

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/schema"
)

// currentCacheVersion defines the version of the memoized payload layout.
// Bumping it invalidates every previously stored entry.
const currentCacheVersion = 1

// aggregateCacheKey creates a unique key for a user's weekly aggregate
func aggregateCacheKey(userID string, weekStart time.Time) string {
	key := fmt.Sprintf("weekly|%s|%s", userID, weekStart.UTC().Format(contract.DateFormat))
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}

// healingCacheKey creates a unique key for a user's daily healing color
func healingCacheKey(userID string, day time.Time) string {
	key := fmt.Sprintf("healing|%s|%s", userID, day.UTC().Format(contract.DateFormat))
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}

// checkAggregateHit attempts to retrieve and validate a memoized weekly
// aggregate. A TTL of zero disables the staleness check entirely, so an
// aggregate computed once stays pinned for its week.
func checkAggregateHit(store contract.CacheStore, key string, ttl time.Duration) *schema.WeeklyAggregate {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return nil // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion {
		entryTimestamp := time.Unix(ts, 0)
		if ttl == 0 || time.Since(entryTimestamp) <= ttl {
			var result schema.WeeklyAggregate
			if err := json.Unmarshal(data, &result); err == nil {
				return &result // Cache hit
			}
		}
	}

	return nil // Cache miss (stale or version mismatch)
}

// storeAggregate memoizes a weekly aggregate. Store failures are ignored;
// the aggregate is simply recomputed on the next call.
func storeAggregate(store contract.CacheStore, key string, agg schema.WeeklyAggregate) {
	if data, err := json.Marshal(agg); err == nil {
		_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
	}
}

// checkHealingHit attempts to retrieve a memoized daily healing color.
// Entries are keyed by UTC date, so no staleness window applies beyond the
// date itself.
func checkHealingHit(store contract.CacheStore, key string) *schema.DailyHealing {
	data, version, _, err := store.Get(key)
	if err != nil {
		return nil // Cache miss
	}

	if version == currentCacheVersion {
		var result schema.DailyHealing
		if err := json.Unmarshal(data, &result); err == nil {
			return &result // Cache hit
		}
	}

	return nil // Cache miss (version mismatch)
}

// storeHealing memoizes a daily healing pick under its date key.
func storeHealing(store contract.CacheStore, key string, healing schema.DailyHealing) {
	if data, err := json.Marshal(healing); err == nil {
		_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
	}
}
