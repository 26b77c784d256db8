// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/embeau/tonelab/schema"
)

// Segmenter produces a binary skin mask for an image.
// This allows the classification logic to be tested without a real
// segmentation model.
type Segmenter interface {
	// SegmentSkin returns one mask entry per pixel; true marks skin.
	// Pixels are laid out row-major for an image of width x height.
	SegmentSkin(ctx context.Context, pixels []schema.Pixel, width, height int) ([]bool, error)
}

// TextScorer scores free text along the tracked emotion axes.
// Implementations may be heuristic or model-backed; callers validate the
// returned shape and fall back to the keyword scorer on bad output.
type TextScorer interface {
	ScoreText(ctx context.Context, text string) (schema.EmotionScores, error)
}

// StoreManager defines the interface for accessing the persistence stores.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetCacheStore() CacheStore
	GetObservationStore() ObservationStore
}

// CacheStore defines the interface for memo data storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// ObservationStore defines the interface for the research dataset:
// color observations, emotion observations, weekly aggregates, feedback
// and session tracking.
//
// Lookups return sql.ErrNoRows (possibly wrapped) when no row exists.
type ObservationStore interface {
	// UpsertColorObservation stores a user's color profile, replacing any
	// previous row for that user.
	UpsertColorObservation(obs schema.ColorObservation) error

	// GetColorObservation returns the current color profile for a user.
	GetColorObservation(userID string) (schema.ColorObservation, error)

	// AppendEmotionObservation appends one emotion analysis result.
	AppendEmotionObservation(obs schema.EmotionObservation) error

	// ListEmotionObservations returns observations recorded in [since, until),
	// oldest first.
	ListEmotionObservations(userID string, since, until time.Time) ([]schema.EmotionObservation, error)

	// ListEmotionHistory returns the most recent observations, latest first.
	ListEmotionHistory(userID string, limit int) ([]schema.EmotionObservation, error)

	// ListUserIDs returns the distinct users with at least one emotion observation.
	ListUserIDs() ([]string, error)

	// UpsertWeeklyAggregate stores a computed weekly aggregate, replacing any
	// previous row for the same user and week.
	UpsertWeeklyAggregate(agg schema.WeeklyAggregate) error

	// GetWeeklyAggregate returns the stored aggregate for a user and week start.
	GetWeeklyAggregate(userID string, weekStart time.Time) (schema.WeeklyAggregate, error)

	// AppendFeedback appends one feedback submission.
	AppendFeedback(fb schema.FeedbackRecord) error

	// ListAllColorObservations returns every stored color profile across
	// all users. Used by the export pipeline.
	ListAllColorObservations() ([]schema.ColorObservation, error)

	// ListAllEmotionObservations returns every emotion observation across
	// all users, oldest first. Used by the export pipeline.
	ListAllEmotionObservations() ([]schema.EmotionObservation, error)

	// ListAllWeeklyAggregates returns every stored weekly aggregate across
	// all users. Used by the export pipeline.
	ListAllWeeklyAggregates() ([]schema.WeeklyAggregate, error)

	// ListAllFeedback returns every feedback submission across all users.
	// Used by the export pipeline.
	ListAllFeedback() ([]schema.FeedbackRecord, error)

	// ListAllSessions returns every recorded session. Used by the export
	// pipeline.
	ListAllSessions() ([]schema.SessionRecord, error)

	// BeginSession creates a new session row for a run.
	BeginSession(sessionID string, startTime time.Time, configParams map[string]any) error

	// EndSession updates the session row with completion data.
	EndSession(sessionID string, endTime time.Time, operations int) error

	// GetStatus returns status information about the observation store.
	GetStatus() (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}
