package iostore

import (
	"time"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetCacheStore implements the StoreManager interface.
func (m *MockStoreManager) GetCacheStore() contract.CacheStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.CacheStore)
	return store
}

// GetObservationStore implements the StoreManager interface.
func (m *MockStoreManager) GetObservationStore() contract.ObservationStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.ObservationStore)
	return store
}

// MockCacheStore is a mock implementation of CacheStore for testing.
type MockCacheStore struct {
	mock.Mock
}

var _ contract.CacheStore = &MockCacheStore{} // Compile-time check

// Get implements the CacheStore interface.
func (m *MockCacheStore) Get(key string) ([]byte, int, int64, error) {
	args := m.Called(key)
	data, _ := args.Get(0).([]byte)
	return data, args.Int(1), args.Get(2).(int64), args.Error(3)
}

// Set implements the CacheStore interface.
func (m *MockCacheStore) Set(key string, value []byte, version int, timestamp int64) error {
	args := m.Called(key, value, version, timestamp)
	return args.Error(0)
}

// GetStatus implements the CacheStore interface.
func (m *MockCacheStore) GetStatus() (schema.CacheStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.CacheStatus), args.Error(1)
}

// Close implements the CacheStore interface.
func (m *MockCacheStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockObservationStore is a mock implementation of ObservationStore for testing.
type MockObservationStore struct {
	mock.Mock
}

var _ contract.ObservationStore = &MockObservationStore{} // Compile-time check

// UpsertColorObservation implements the ObservationStore interface.
func (m *MockObservationStore) UpsertColorObservation(obs schema.ColorObservation) error {
	args := m.Called(obs)
	return args.Error(0)
}

// GetColorObservation implements the ObservationStore interface.
func (m *MockObservationStore) GetColorObservation(userID string) (schema.ColorObservation, error) {
	args := m.Called(userID)
	return args.Get(0).(schema.ColorObservation), args.Error(1)
}

// AppendEmotionObservation implements the ObservationStore interface.
func (m *MockObservationStore) AppendEmotionObservation(obs schema.EmotionObservation) error {
	args := m.Called(obs)
	return args.Error(0)
}

// ListEmotionObservations implements the ObservationStore interface.
func (m *MockObservationStore) ListEmotionObservations(userID string, since, until time.Time) ([]schema.EmotionObservation, error) {
	args := m.Called(userID, since, until)
	list, _ := args.Get(0).([]schema.EmotionObservation)
	return list, args.Error(1)
}

// ListEmotionHistory implements the ObservationStore interface.
func (m *MockObservationStore) ListEmotionHistory(userID string, limit int) ([]schema.EmotionObservation, error) {
	args := m.Called(userID, limit)
	list, _ := args.Get(0).([]schema.EmotionObservation)
	return list, args.Error(1)
}

// ListUserIDs implements the ObservationStore interface.
func (m *MockObservationStore) ListUserIDs() ([]string, error) {
	args := m.Called()
	users, _ := args.Get(0).([]string)
	return users, args.Error(1)
}

// UpsertWeeklyAggregate implements the ObservationStore interface.
func (m *MockObservationStore) UpsertWeeklyAggregate(agg schema.WeeklyAggregate) error {
	args := m.Called(agg)
	return args.Error(0)
}

// GetWeeklyAggregate implements the ObservationStore interface.
func (m *MockObservationStore) GetWeeklyAggregate(userID string, weekStart time.Time) (schema.WeeklyAggregate, error) {
	args := m.Called(userID, weekStart)
	return args.Get(0).(schema.WeeklyAggregate), args.Error(1)
}

// AppendFeedback implements the ObservationStore interface.
func (m *MockObservationStore) AppendFeedback(fb schema.FeedbackRecord) error {
	args := m.Called(fb)
	return args.Error(0)
}

// ListAllColorObservations implements the ObservationStore interface.
func (m *MockObservationStore) ListAllColorObservations() ([]schema.ColorObservation, error) {
	args := m.Called()
	list, _ := args.Get(0).([]schema.ColorObservation)
	return list, args.Error(1)
}

// ListAllEmotionObservations implements the ObservationStore interface.
func (m *MockObservationStore) ListAllEmotionObservations() ([]schema.EmotionObservation, error) {
	args := m.Called()
	list, _ := args.Get(0).([]schema.EmotionObservation)
	return list, args.Error(1)
}

// ListAllWeeklyAggregates implements the ObservationStore interface.
func (m *MockObservationStore) ListAllWeeklyAggregates() ([]schema.WeeklyAggregate, error) {
	args := m.Called()
	list, _ := args.Get(0).([]schema.WeeklyAggregate)
	return list, args.Error(1)
}

// ListAllFeedback implements the ObservationStore interface.
func (m *MockObservationStore) ListAllFeedback() ([]schema.FeedbackRecord, error) {
	args := m.Called()
	list, _ := args.Get(0).([]schema.FeedbackRecord)
	return list, args.Error(1)
}

// ListAllSessions implements the ObservationStore interface.
func (m *MockObservationStore) ListAllSessions() ([]schema.SessionRecord, error) {
	args := m.Called()
	list, _ := args.Get(0).([]schema.SessionRecord)
	return list, args.Error(1)
}

// BeginSession implements the ObservationStore interface.
func (m *MockObservationStore) BeginSession(sessionID string, startTime time.Time, configParams map[string]any) error {
	args := m.Called(sessionID, startTime, configParams)
	return args.Error(0)
}

// EndSession implements the ObservationStore interface.
func (m *MockObservationStore) EndSession(sessionID string, endTime time.Time, operations int) error {
	args := m.Called(sessionID, endTime, operations)
	return args.Error(0)
}

// GetStatus implements the ObservationStore interface.
func (m *MockObservationStore) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the ObservationStore interface.
func (m *MockObservationStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
