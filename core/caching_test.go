package core

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/embeau/tonelab/internal/iostore"
	"github.com/embeau/tonelab/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCacheKeys(t *testing.T) {
	week := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	// Same inputs always derive the same key.
	assert.Equal(t, aggregateCacheKey("mina", week), aggregateCacheKey("mina", week))

	// User, week and cache family all separate keys.
	assert.NotEqual(t, aggregateCacheKey("mina", week), aggregateCacheKey("juno", week))
	assert.NotEqual(t, aggregateCacheKey("mina", week), aggregateCacheKey("mina", week.AddDate(0, 0, 7)))
	assert.NotEqual(t, aggregateCacheKey("mina", week), healingCacheKey("mina", week))
}

func TestCheckAggregateHit(t *testing.T) {
	agg := schema.WeeklyAggregate{UserID: "mina", ActiveDays: 3}
	data, err := json.Marshal(agg)
	require.NoError(t, err)

	key := aggregateCacheKey("mina", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))

	t.Run("fresh entry hits", func(t *testing.T) {
		store := &iostore.MockCacheStore{}
		store.On("Get", key).Return(data, currentCacheVersion, time.Now().Unix(), nil)

		got := checkAggregateHit(store, key, time.Hour)
		require.NotNil(t, got)
		assert.Equal(t, "mina", got.UserID)
		assert.Equal(t, 3, got.ActiveDays)
	})

	t.Run("stale entry misses", func(t *testing.T) {
		store := &iostore.MockCacheStore{}
		store.On("Get", key).Return(data, currentCacheVersion, time.Now().Add(-2*time.Hour).Unix(), nil)

		assert.Nil(t, checkAggregateHit(store, key, time.Hour))
	})

	t.Run("zero TTL never goes stale", func(t *testing.T) {
		store := &iostore.MockCacheStore{}
		store.On("Get", key).Return(data, currentCacheVersion, time.Now().Add(-365*24*time.Hour).Unix(), nil)

		assert.NotNil(t, checkAggregateHit(store, key, 0))
	})

	t.Run("version mismatch misses", func(t *testing.T) {
		store := &iostore.MockCacheStore{}
		store.On("Get", key).Return(data, currentCacheVersion+1, time.Now().Unix(), nil)

		assert.Nil(t, checkAggregateHit(store, key, time.Hour))
	})

	t.Run("store error misses", func(t *testing.T) {
		store := &iostore.MockCacheStore{}
		store.On("Get", key).Return([]byte(nil), 0, int64(0), errors.New("no such key"))

		assert.Nil(t, checkAggregateHit(store, key, time.Hour))
	})

	t.Run("corrupt payload misses", func(t *testing.T) {
		store := &iostore.MockCacheStore{}
		store.On("Get", key).Return([]byte("{not json"), currentCacheVersion, time.Now().Unix(), nil)

		assert.Nil(t, checkAggregateHit(store, key, time.Hour))
	})
}

func TestStoreAggregate(t *testing.T) {
	store := &iostore.MockCacheStore{}
	store.On("Set", "k", mock.Anything, currentCacheVersion, mock.AnythingOfType("int64")).Return(nil)

	storeAggregate(store, "k", schema.WeeklyAggregate{UserID: "mina"})
	store.AssertExpectations(t)
}

func TestCheckHealingHit(t *testing.T) {
	healing := schema.DailyHealing{UserID: "mina", Affirmation: dailyAffirmations[0]}
	data, err := json.Marshal(healing)
	require.NoError(t, err)

	t.Run("hit ignores timestamp", func(t *testing.T) {
		store := &iostore.MockCacheStore{}
		store.On("Get", "k").Return(data, currentCacheVersion, int64(0), nil)

		got := checkHealingHit(store, "k")
		require.NotNil(t, got)
		assert.Equal(t, dailyAffirmations[0], got.Affirmation)
	})

	t.Run("version mismatch misses", func(t *testing.T) {
		store := &iostore.MockCacheStore{}
		store.On("Get", "k").Return(data, currentCacheVersion+1, int64(0), nil)

		assert.Nil(t, checkHealingHit(store, "k"))
	})
}

func TestStoreHealing(t *testing.T) {
	store := &iostore.MockCacheStore{}
	store.On("Set", "k", mock.Anything, currentCacheVersion, mock.AnythingOfType("int64")).Return(nil)

	storeHealing(store, "k", schema.DailyHealing{UserID: "mina"})
	store.AssertExpectations(t)
}
