package core

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/internal/inference"
	"github.com/embeau/tonelab/internal/iostore"
	"github.com/embeau/tonelab/internal/researchlog"
	"github.com/embeau/tonelab/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig(userID string) *contract.Config {
	return &contract.Config{
		UserID:      userID,
		ResultLimit: 30,
		Workers:     4,
		WeekStart:   time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
	}
}

func nopResearchLog() *researchlog.Logger {
	return researchlog.New("", false)
}

func mustMarshalAggregate(t *testing.T, agg schema.WeeklyAggregate) []byte {
	t.Helper()
	data, err := json.Marshal(agg)
	require.NoError(t, err)
	return data
}

// writeTestImage writes a small beige PNG and returns its path.
func writeTestImage(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 230, G: 190, B: 150, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "face.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestRunWeeklyInsightCore_EmptyWeekNotMemoized(t *testing.T) {
	cfg := testConfig("mina")
	weekStart := cfg.WeekStart
	key := aggregateCacheKey("mina", weekStart)

	cache := &iostore.MockCacheStore{}
	cache.On("Get", key).Return([]byte(nil), 0, int64(0), errors.New("not found"))

	store := &iostore.MockObservationStore{}
	store.On("ListEmotionObservations", "mina", weekStart, weekStart.AddDate(0, 0, 7)).Return(nil, nil)
	store.On("ListEmotionObservations", "mina", weekStart.AddDate(0, 0, -7), weekStart).Return(nil, nil)

	mgr := &iostore.MockStoreManager{}
	mgr.On("GetCacheStore").Return(cache)
	mgr.On("GetObservationStore").Return(store)

	agg, cached, err := runWeeklyInsightCore(context.Background(), cfg, mgr, nopResearchLog())

	require.NoError(t, err)
	assert.False(t, cached)
	assert.Zero(t, agg.TotalEntries)
	assert.Equal(t, emptyWeekInsight, agg.Insight)

	// The advisory aggregate is neither persisted nor memoized.
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "UpsertWeeklyAggregate", mock.Anything)
}

func TestRunWeeklyInsightCore_MemoizesComputedWeek(t *testing.T) {
	cfg := testConfig("mina")
	weekStart := cfg.WeekStart
	key := aggregateCacheKey("mina", weekStart)

	entries := []schema.EmotionObservation{
		{UserID: "mina", Scores: schema.EmotionScores{Happiness: 80}, RecordedAt: weekStart.Add(3 * time.Hour)},
	}

	cache := &iostore.MockCacheStore{}
	cache.On("Get", key).Return([]byte(nil), 0, int64(0), errors.New("not found"))
	cache.On("Set", key, mock.Anything, currentCacheVersion, mock.AnythingOfType("int64")).Return(nil)

	store := &iostore.MockObservationStore{}
	store.On("ListEmotionObservations", "mina", weekStart, weekStart.AddDate(0, 0, 7)).Return(entries, nil)
	store.On("ListEmotionObservations", "mina", weekStart.AddDate(0, 0, -7), weekStart).Return(nil, nil)
	store.On("UpsertWeeklyAggregate", mock.AnythingOfType("schema.WeeklyAggregate")).Return(nil)

	mgr := &iostore.MockStoreManager{}
	mgr.On("GetCacheStore").Return(cache)
	mgr.On("GetObservationStore").Return(store)

	agg, cached, err := runWeeklyInsightCore(context.Background(), cfg, mgr, nopResearchLog())

	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 1, agg.TotalEntries)
	assert.InDelta(t, 80.0, agg.Averages.Happiness, 1e-9)
	cache.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestRunWeeklyInsightCore_MemoHit(t *testing.T) {
	cfg := testConfig("mina")
	key := aggregateCacheKey("mina", cfg.WeekStart)

	hit := schema.WeeklyAggregate{UserID: "mina", TotalEntries: 4}
	data := mustMarshalAggregate(t, hit)

	cache := &iostore.MockCacheStore{}
	cache.On("Get", key).Return(data, currentCacheVersion, time.Now().Unix(), nil)

	// The observation store must stay untouched on a hit.
	mgr := &iostore.MockStoreManager{}
	mgr.On("GetCacheStore").Return(cache)

	agg, cached, err := runWeeklyInsightCore(context.Background(), cfg, mgr, nopResearchLog())

	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, 4, agg.TotalEntries)
	mgr.AssertNotCalled(t, "GetObservationStore")
}

func TestRunWeeklyReportCore_AggregatesAllUsers(t *testing.T) {
	cfg := testConfig("")
	weekStart := cfg.WeekStart

	store := &iostore.MockObservationStore{}
	store.On("ListUserIDs").Return([]string{"juno", "mina"}, nil)
	for user, happiness := range map[string]float64{"juno": 70, "mina": 30} {
		entries := []schema.EmotionObservation{
			{UserID: user, Scores: schema.EmotionScores{Happiness: happiness}, RecordedAt: weekStart.Add(time.Hour)},
		}
		store.On("ListEmotionObservations", user, weekStart, weekStart.AddDate(0, 0, 7)).Return(entries, nil)
		store.On("ListEmotionObservations", user, weekStart.AddDate(0, 0, -7), weekStart).Return(nil, nil)
	}
	store.On("UpsertWeeklyAggregate", mock.AnythingOfType("schema.WeeklyAggregate")).Return(nil)

	mgr := &iostore.MockStoreManager{}
	mgr.On("GetObservationStore").Return(store)
	mgr.On("GetCacheStore").Return(nil)

	results, err := runWeeklyReportCore(context.Background(), cfg, mgr, nopResearchLog())

	require.NoError(t, err)
	require.Len(t, results, 2)
	// Worker completion order varies; output is sorted by user.
	assert.Equal(t, "juno", results[0].UserID)
	assert.InDelta(t, 70.0, results[0].Averages.Happiness, 1e-9)
	assert.Equal(t, "mina", results[1].UserID)
	assert.InDelta(t, 30.0, results[1].Averages.Happiness, 1e-9)
}

func TestRunWeeklyReportCore_NoUsers(t *testing.T) {
	store := &iostore.MockObservationStore{}
	store.On("ListUserIDs").Return([]string{}, nil)

	mgr := &iostore.MockStoreManager{}
	mgr.On("GetObservationStore").Return(store)

	results, err := runWeeklyReportCore(context.Background(), testConfig(""), mgr, nopResearchLog())

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRunEmotionAnalysisCore(t *testing.T) {
	cfg := testConfig("mina")

	t.Run("builtin keyword scoring", func(t *testing.T) {
		store := &iostore.MockObservationStore{}
		store.On("AppendEmotionObservation", mock.AnythingOfType("schema.EmotionObservation")).Return(nil)
		mgr := &iostore.MockStoreManager{}
		mgr.On("GetObservationStore").Return(store)

		obs, healing, err := runEmotionAnalysisCore(context.Background(), cfg, &inference.Context{}, mgr, nopResearchLog(), "나는 불안하고 불안하다")

		require.NoError(t, err)
		assert.InDelta(t, 60.0, obs.Scores.Anxiety, 1e-9)
		assert.Equal(t, schema.AnxietyAxis, obs.Dominant)
		assert.Equal(t, 12, obs.TextLength)
		require.NotEmpty(t, healing)
		assert.Equal(t, "라벤더", healing[0].Name)
		store.AssertExpectations(t)
	})

	t.Run("provider scores are used when valid", func(t *testing.T) {
		scorer := &inference.MockTextScorer{}
		scorer.On("ScoreText", mock.Anything, "오늘 하루").Return(schema.EmotionScores{Happiness: 88}, nil)

		store := &iostore.MockObservationStore{}
		store.On("AppendEmotionObservation", mock.AnythingOfType("schema.EmotionObservation")).Return(nil)
		mgr := &iostore.MockStoreManager{}
		mgr.On("GetObservationStore").Return(store)

		obs, _, err := runEmotionAnalysisCore(context.Background(), cfg, &inference.Context{TextScorer: scorer}, mgr, nopResearchLog(), "오늘 하루")

		require.NoError(t, err)
		assert.InDelta(t, 88.0, obs.Scores.Happiness, 1e-9)
		assert.Equal(t, schema.HappinessAxis, obs.Dominant)
		scorer.AssertExpectations(t)
	})

	t.Run("invalid provider output degrades to keywords", func(t *testing.T) {
		scorer := &inference.MockTextScorer{}
		scorer.On("ScoreText", mock.Anything, mock.Anything).Return(schema.EmotionScores{Anxiety: 500}, nil)

		store := &iostore.MockObservationStore{}
		store.On("AppendEmotionObservation", mock.AnythingOfType("schema.EmotionObservation")).Return(nil)
		mgr := &iostore.MockStoreManager{}
		mgr.On("GetObservationStore").Return(store)

		obs, _, err := runEmotionAnalysisCore(context.Background(), cfg, &inference.Context{TextScorer: scorer}, mgr, nopResearchLog(), "나는 불안하고 불안하다")

		require.NoError(t, err)
		assert.InDelta(t, 60.0, obs.Scores.Anxiety, 1e-9)
	})

	t.Run("blank text is invalid input", func(t *testing.T) {
		mgr := &iostore.MockStoreManager{}

		_, _, err := runEmotionAnalysisCore(context.Background(), cfg, &inference.Context{}, mgr, nopResearchLog(), "   ")
		assert.ErrorIs(t, err, schema.ErrInvalidInput)
	})
}

func TestRunDirectColorEntryCore(t *testing.T) {
	cfg := testConfig("mina")

	t.Run("valid entry persists the profile", func(t *testing.T) {
		store := &iostore.MockObservationStore{}
		store.On("UpsertColorObservation", mock.AnythingOfType("schema.ColorObservation")).Return(nil)
		mgr := &iostore.MockStoreManager{}
		mgr.On("GetObservationStore").Return(store)

		obs, err := runDirectColorEntryCore(context.Background(), cfg, mgr, nopResearchLog(), "Winter", "deep")

		require.NoError(t, err)
		assert.Equal(t, schema.WinterSeason, obs.Season)
		assert.Equal(t, schema.DeepSubtype, obs.Subtype)
		assert.Equal(t, "Winter Deep", obs.Label)
		assert.InDelta(t, directEntryConfidence, obs.Confidence, 1e-9)
		assert.Equal(t, schema.MeasuredSource, obs.Source)
		assert.Len(t, obs.Palette, 5)
		store.AssertExpectations(t)
	})

	t.Run("unknown season is invalid input", func(t *testing.T) {
		mgr := &iostore.MockStoreManager{}

		_, err := runDirectColorEntryCore(context.Background(), cfg, mgr, nopResearchLog(), "monsoon", "cool")
		assert.ErrorIs(t, err, schema.ErrInvalidInput)
	})

	t.Run("unknown subtype is invalid input", func(t *testing.T) {
		mgr := &iostore.MockStoreManager{}

		_, err := runDirectColorEntryCore(context.Background(), cfg, mgr, nopResearchLog(), "winter", "icy")
		assert.ErrorIs(t, err, schema.ErrInvalidInput)
	})
}

func TestClassifyImage_DecodeFailure(t *testing.T) {
	got := classifyImage(context.Background(), inference.NewContext(), filepath.Join(t.TempDir(), "missing.png"))

	assert.Equal(t, schema.FallbackSource, got.Source)
	assert.Equal(t, schema.FallbackDecode, got.FallbackReason)
	assert.Equal(t, schema.SummerSeason, got.Season)
	assert.Equal(t, schema.CoolSubtype, got.Subtype)
}

func TestClassifyImage_SegmentationFailure(t *testing.T) {
	segmenter := &inference.MockSegmenter{}
	segmenter.On("SegmentSkin", mock.Anything, mock.Anything, 2, 1).Return(nil, errors.New("model unavailable"))
	infer := &inference.Context{Segmenter: segmenter}

	path := writeTestImage(t, 2, 1)
	got := classifyImage(context.Background(), infer, path)

	assert.Equal(t, schema.FallbackSource, got.Source)
	assert.Equal(t, schema.FallbackSegmentation, got.FallbackReason)
}

func TestBuildColorObservation(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	result := schema.Measured(schema.Classification{
		Season:     schema.SummerSeason,
		Subtype:    schema.CoolSubtype,
		Confidence: 0.7,
	})

	obs := buildColorObservation("mina", result, now)

	assert.Equal(t, "mina", obs.UserID)
	assert.Equal(t, "Summer Cool", obs.Label)
	assert.Equal(t, schema.CoolTone, obs.Tone())
	assert.Len(t, obs.Palette, 5)
	assert.NotEmpty(t, obs.Description)
	assert.Equal(t, now, obs.AnalyzedAt)
}

func TestRunDailyHealingCore_MemoizesPick(t *testing.T) {
	cfg := testConfig("mina")

	cache := &iostore.MockCacheStore{}
	cache.On("Get", mock.AnythingOfType("string")).Return([]byte(nil), 0, int64(0), errors.New("not found"))
	cache.On("Set", mock.AnythingOfType("string"), mock.Anything, currentCacheVersion, mock.AnythingOfType("int64")).Return(nil)

	store := &iostore.MockObservationStore{}
	store.On("GetColorObservation", "mina").Return(schema.ColorObservation{}, sql.ErrNoRows)

	mgr := &iostore.MockStoreManager{}
	mgr.On("GetCacheStore").Return(cache)
	mgr.On("GetObservationStore").Return(store)

	healing, cached, err := runDailyHealingCore(context.Background(), cfg, mgr, nopResearchLog())

	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, "mina", healing.UserID)
	assert.NotEmpty(t, healing.Color.Hex)
	assert.NotEmpty(t, healing.Affirmation)
	cache.AssertExpectations(t)
}

func TestRunRecommendationsByColorCore_EmptyHex(t *testing.T) {
	mgr := &iostore.MockStoreManager{}

	_, err := runRecommendationsByColorCore(context.Background(), testConfig("mina"), mgr, nopResearchLog(), "  ")
	assert.ErrorIs(t, err, schema.ErrInvalidInput)
}

func TestRunEmotionHistoryCore(t *testing.T) {
	cfg := testConfig("mina")
	cfg.ResultLimit = 2

	entries := []schema.EmotionObservation{
		{UserID: "mina", Dominant: schema.HappinessAxis, RecordedAt: time.Now().UTC()},
		{UserID: "mina", Dominant: schema.StressAxis, RecordedAt: time.Now().UTC().Add(-time.Hour)},
	}

	store := &iostore.MockObservationStore{}
	store.On("ListEmotionHistory", "mina", 2).Return(entries, nil)
	mgr := &iostore.MockStoreManager{}
	mgr.On("GetObservationStore").Return(store)

	got, err := runEmotionHistoryCore(context.Background(), cfg, mgr, nopResearchLog())

	require.NoError(t, err)
	assert.Equal(t, entries, got)
	store.AssertExpectations(t)
}

func TestRunFeedbackCore_RejectsBadInput(t *testing.T) {
	cfg := testConfig("mina")
	mgr := &iostore.MockStoreManager{}

	tests := []struct {
		name       string
		rating     int
		targetType string
		targetID   string
	}{
		{"rating too low", 0, schema.FeedbackColorResult, "c1"},
		{"rating too high", 6, schema.FeedbackColorResult, "c1"},
		{"unknown target type", 4, "vibes", "c1"},
		{"blank target id", 4, schema.FeedbackHealingColor, "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runFeedbackCore(context.Background(), cfg, mgr, nopResearchLog(), tt.rating, tt.targetType, tt.targetID, "")
			assert.ErrorIs(t, err, schema.ErrInvalidInput)
		})
	}
}

func TestRunFeedbackCore_StoresValidSubmission(t *testing.T) {
	cfg := testConfig("mina")

	store := &iostore.MockObservationStore{}
	store.On("AppendFeedback", mock.AnythingOfType("schema.FeedbackRecord")).Return(nil)
	mgr := &iostore.MockStoreManager{}
	mgr.On("GetObservationStore").Return(store)

	fb, err := runFeedbackCore(context.Background(), cfg, mgr, nopResearchLog(), 5, "Recommendation", " r42 ", " 마음에 들어요 ")

	require.NoError(t, err)
	assert.Equal(t, 5, fb.Rating)
	assert.Equal(t, schema.FeedbackRecommendation, fb.TargetType)
	assert.Equal(t, "r42", fb.TargetID)
	assert.Equal(t, "마음에 들어요", fb.Comment)
	store.AssertExpectations(t)
}
