package core

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/internal/imgio"
	"github.com/embeau/tonelab/internal/inference"
	"github.com/embeau/tonelab/internal/outwriter"
	"github.com/embeau/tonelab/internal/researchlog"
	"github.com/embeau/tonelab/schema"
	"github.com/google/uuid"
)

// directEntryConfidence is assigned when a user supplies their season and
// subtype directly instead of going through image analysis.
const directEntryConfidence = 0.8

// runColorAnalysisCore performs the full image-to-profile flow: decode,
// segmentation, classification, palette resolution and persistence.
func runColorAnalysisCore(ctx context.Context, cfg *contract.Config, infer *inference.Context, mgr contract.StoreManager, rlog *researchlog.Logger, imagePath string) (schema.ColorObservation, error) {
	if !shouldSuppressHeader(ctx) {
		outwriter.LogAnalysisHeader(cfg, "color")
	}

	sessionID, _ := sessionIDFromContext(ctx)
	rlog.Log(researchlog.ColorAnalyzeStart, cfg.UserID, sessionID, map[string]any{
		"image": imagePath,
	})
	start := time.Now()

	// --- 1. Decode, Segment and Classify ---
	result := classifyImage(ctx, infer, imagePath)

	// --- 2. Build and Persist the Profile ---
	obs := buildColorObservation(cfg.UserID, result, time.Now().UTC())
	if store := mgr.GetObservationStore(); store != nil {
		if err := store.UpsertColorObservation(obs); err != nil {
			return schema.ColorObservation{}, fmt.Errorf("failed to store color observation: %w", err)
		}
	}

	rlog.LogTimed(researchlog.ColorAnalyzeComplete, cfg.UserID, sessionID, map[string]any{
		"season":  string(obs.Season),
		"subtype": string(obs.Subtype),
		"source":  string(obs.Source),
	}, time.Since(start))
	return obs, nil
}

// classifyImage runs decode, segmentation and classification. Degraded
// inputs produce a fallback classification instead of an error, so a bad
// photo still yields a usable profile.
func classifyImage(ctx context.Context, infer *inference.Context, imagePath string) schema.ClassificationResult {
	pixels, width, height, err := imgio.LoadPixels(imagePath)
	if err != nil {
		contract.LogWarn("Image decode failed", err)
		return schema.Fallback(DefaultClassification(), schema.FallbackDecode)
	}

	mask, err := infer.Segmenter.SegmentSkin(ctx, pixels, width, height)
	if err != nil {
		contract.LogWarn("Skin segmentation failed", err)
		return schema.Fallback(DefaultClassification(), schema.FallbackSegmentation)
	}

	return ClassifySkinTone(pixels, mask)
}

// buildColorObservation expands a classification into the stored profile
// with its display label, season description and resolved palette.
func buildColorObservation(userID string, result schema.ClassificationResult, now time.Time) schema.ColorObservation {
	return schema.ColorObservation{
		UserID:         userID,
		Season:         result.Season,
		Subtype:        result.Subtype,
		Label:          schema.DisplayLabel(result.Season, result.Subtype),
		Confidence:     result.Confidence,
		Source:         result.Source,
		FallbackReason: result.FallbackReason,
		Description:    SeasonDescription(result.Season),
		Palette:        ResolvePalette(result.Season, result.Subtype),
		AnalyzedAt:     now,
	}
}

// runDirectColorEntryCore records a user-declared season and subtype as the
// color profile, bypassing image analysis.
func runDirectColorEntryCore(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, rlog *researchlog.Logger, seasonStr, subtypeStr string) (schema.ColorObservation, error) {
	season := schema.Season(strings.ToLower(strings.TrimSpace(seasonStr)))
	subtype := schema.Subtype(strings.ToLower(strings.TrimSpace(subtypeStr)))
	if _, ok := schema.ValidSeasons[season]; !ok {
		return schema.ColorObservation{}, fmt.Errorf("%w: unknown season %q", schema.ErrInvalidInput, seasonStr)
	}
	if _, ok := schema.ValidSubtypes[subtype]; !ok {
		return schema.ColorObservation{}, fmt.Errorf("%w: unknown subtype %q", schema.ErrInvalidInput, subtypeStr)
	}

	result := schema.Measured(schema.Classification{
		Season:     season,
		Subtype:    subtype,
		Confidence: directEntryConfidence,
	})
	obs := buildColorObservation(cfg.UserID, result, time.Now().UTC())
	if store := mgr.GetObservationStore(); store != nil {
		if err := store.UpsertColorObservation(obs); err != nil {
			return schema.ColorObservation{}, fmt.Errorf("failed to store color observation: %w", err)
		}
	}

	sessionID, _ := sessionIDFromContext(ctx)
	rlog.Log(researchlog.ColorAnalyzeComplete, cfg.UserID, sessionID, map[string]any{
		"season":  string(obs.Season),
		"subtype": string(obs.Subtype),
		"source":  "direct",
	})
	return obs, nil
}

// runEmotionAnalysisCore scores free text, selects the dominant emotion and
// appends the observation. The raw text is never persisted or logged; only
// its length is recorded.
func runEmotionAnalysisCore(ctx context.Context, cfg *contract.Config, infer *inference.Context, mgr contract.StoreManager, rlog *researchlog.Logger, text string) (schema.EmotionObservation, []schema.HealingColor, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return schema.EmotionObservation{}, nil, fmt.Errorf("%w: emotion text must not be empty", schema.ErrInvalidInput)
	}

	sessionID, _ := sessionIDFromContext(ctx)
	inputLength := len([]rune(trimmed))
	rlog.Log(researchlog.EmotionAnalyzeStart, cfg.UserID, sessionID, map[string]any{
		"input_length": inputLength,
	})
	start := time.Now()

	// --- 1. Score the Text ---
	// A nil scorer means no external provider is configured and the builtin
	// keyword scorer applies directly.
	var scores schema.EmotionScores
	if infer.TextScorer != nil {
		var err error
		scores, err = infer.TextScorer.ScoreText(ctx, trimmed)
		if err == nil {
			err = inference.ValidateScores(scores)
		}
		if err != nil {
			// Provider output is untrusted. Bad shape degrades to the
			// deterministic keyword scorer rather than failing the entry.
			contract.LogWarn("Falling back to keyword scoring", err)
			scores = ScoreEmotionText(trimmed)
		}
	} else {
		scores = ScoreEmotionText(trimmed)
	}

	// --- 2. Select Dominant Emotion and Persist ---
	dominant := SelectDominantEmotion(scores)
	obs := schema.EmotionObservation{
		UserID:     cfg.UserID,
		Scores:     scores,
		Dominant:   dominant,
		TextLength: inputLength,
		RecordedAt: time.Now().UTC(),
	}
	if store := mgr.GetObservationStore(); store != nil {
		if err := store.AppendEmotionObservation(obs); err != nil {
			return schema.EmotionObservation{}, nil, fmt.Errorf("failed to store emotion observation: %w", err)
		}
	}

	rlog.LogTimed(researchlog.EmotionAnalyzeComplete, cfg.UserID, sessionID, map[string]any{
		"dominant":     string(dominant),
		"input_length": inputLength,
	}, time.Since(start))
	return obs, HealingColorsFor(dominant), nil
}

// runWeeklyInsightCore returns the weekly aggregate for cfg.UserID and
// cfg.WeekStart, memoized per user and week. The reported bool is true on
// a memo hit. The empty-week advisory aggregate is returned directly and
// never persisted or memoized, so a late first entry still produces a real
// aggregate.
func runWeeklyInsightCore(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, rlog *researchlog.Logger) (schema.WeeklyAggregate, bool, error) {
	weekStart := cfg.WeekStart
	weekEnd := weekStart.AddDate(0, 0, 7)
	sessionID, _ := sessionIDFromContext(ctx)

	// --- 1. Memo Lookup ---
	cache := mgr.GetCacheStore()
	key := aggregateCacheKey(cfg.UserID, weekStart)
	if cache != nil {
		if hit := checkAggregateHit(cache, key, cfg.AggregateTTL); hit != nil {
			rlog.Log(researchlog.WeeklyInsightView, cfg.UserID, sessionID, map[string]any{
				"cached":     true,
				"week_start": weekStart.Format(contract.DateFormat),
			})
			return *hit, true, nil
		}
	}

	// --- 2. Load the Week and its Baseline ---
	store := mgr.GetObservationStore()
	if store == nil {
		return schema.WeeklyAggregate{}, false, errors.New("no observation store configured")
	}
	entries, err := store.ListEmotionObservations(cfg.UserID, weekStart, weekEnd)
	if err != nil {
		return schema.WeeklyAggregate{}, false, fmt.Errorf("failed to load weekly observations: %w", err)
	}
	prevEntries, err := store.ListEmotionObservations(cfg.UserID, weekStart.AddDate(0, 0, -7), weekStart)
	if err != nil {
		return schema.WeeklyAggregate{}, false, fmt.Errorf("failed to load prior week observations: %w", err)
	}

	// --- 3. Aggregate and Memoize ---
	agg := AggregateWeek(cfg.UserID, weekStart, entries, BaselineFromEntries(prevEntries))
	if len(entries) > 0 {
		if err := store.UpsertWeeklyAggregate(agg); err != nil {
			contract.LogWarn("Failed to persist weekly aggregate", err)
		}
		if cache != nil {
			storeAggregate(cache, key, agg)
		}
	}

	rlog.Log(researchlog.WeeklyInsightView, cfg.UserID, sessionID, map[string]any{
		"cached":     false,
		"week_start": weekStart.Format(contract.DateFormat),
	})
	return agg, false, nil
}

// runWeeklyReportCore computes the weekly aggregate for every known user
// using a worker pool. Individual failures are logged and skipped so one
// bad user cannot sink the whole report.
func runWeeklyReportCore(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, rlog *researchlog.Logger) ([]schema.WeeklyAggregate, error) {
	store := mgr.GetObservationStore()
	if store == nil {
		return nil, errors.New("no observation store configured")
	}
	users, err := store.ListUserIDs()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) == 0 {
		return []schema.WeeklyAggregate{}, nil
	}

	// Initialize channels based on the final number of users to be processed.
	userCh := make(chan string, len(users))
	resultCh := make(chan schema.WeeklyAggregate, len(users))
	var wg sync.WaitGroup

	// Start worker pool
	for range cfg.Workers {
		wg.Go(func() {
			for user := range userCh {
				userCfg := cfg.CloneWithUser(user)
				agg, _, err := runWeeklyInsightCore(ctx, userCfg, mgr, rlog)
				if err != nil {
					contract.LogWarn(fmt.Sprintf("Weekly aggregation failed for %s", user), err)
					continue
				}
				resultCh <- agg
			}
		})
	}

	// Send work and collect results
	for _, user := range users {
		userCh <- user
	}
	close(userCh)
	wg.Wait()
	close(resultCh)

	results := make([]schema.WeeklyAggregate, 0, len(users))
	for agg := range resultCh {
		results = append(results, agg)
	}

	// Worker completion order is unstable; sort for deterministic output.
	sort.Slice(results, func(i, j int) bool { return results[i].UserID < results[j].UserID })
	return results, nil
}

// runDailyHealingCore returns the healing color of the day, memoized per
// user and UTC date. The reported bool is true on a memo hit.
func runDailyHealingCore(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, rlog *researchlog.Logger) (schema.DailyHealing, bool, error) {
	today := schema.DateOnly(time.Now().UTC())
	sessionID, _ := sessionIDFromContext(ctx)

	cache := mgr.GetCacheStore()
	key := healingCacheKey(cfg.UserID, today)
	if cache != nil {
		if hit := checkHealingHit(cache, key); hit != nil {
			rlog.Log(researchlog.DailyHealingView, cfg.UserID, sessionID, map[string]any{
				"color_hex": hit.Color.Hex,
				"cached":    true,
			})
			return *hit, true, nil
		}
	}

	obs, err := loadColorObservation(mgr, cfg.UserID)
	if err != nil {
		return schema.DailyHealing{}, false, err
	}
	healing := ComputeDailyHealing(cfg.UserID, obs, today)
	if cache != nil {
		storeHealing(cache, key, healing)
	}

	rlog.Log(researchlog.DailyHealingView, cfg.UserID, sessionID, map[string]any{
		"color_hex": healing.Color.Hex,
		"cached":    false,
	})
	return healing, false, nil
}

// runRecommendationsCore assembles seasonal recommendations for the user's
// stored color profile.
func runRecommendationsCore(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, rlog *researchlog.Logger) (schema.RecommendationSet, error) {
	obs, err := loadColorObservation(mgr, cfg.UserID)
	if err != nil {
		return schema.RecommendationSet{}, err
	}
	set := BuildRecommendations(obs)

	sessionID, _ := sessionIDFromContext(ctx)
	rlog.Log(researchlog.RecommendationView, cfg.UserID, sessionID, map[string]any{
		"season":        string(seasonOrDefault(obs)),
		"fashion_count": len(set.Items),
		"food_count":    len(set.Foods),
	})
	return set, nil
}

// runRecommendationsByColorCore assembles recommendations targeted at a
// single healing color.
func runRecommendationsByColorCore(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, rlog *researchlog.Logger, colorHex string) (schema.RecommendationSet, error) {
	if schema.NormalizeHex(colorHex) == "" {
		return schema.RecommendationSet{}, fmt.Errorf("%w: color hex must not be empty", schema.ErrInvalidInput)
	}
	obs, err := loadColorObservation(mgr, cfg.UserID)
	if err != nil {
		return schema.RecommendationSet{}, err
	}
	set := BuildRecommendationsByColor(obs, colorHex)

	sessionID, _ := sessionIDFromContext(ctx)
	rlog.Log(researchlog.RecommendationView, cfg.UserID, sessionID, map[string]any{
		"color_hex": set.Color.Hex,
		"type":      "by_color",
	})
	return set, nil
}

// runEmotionHistoryCore loads the most recent emotion observations, latest
// first, bounded by cfg.ResultLimit.
func runEmotionHistoryCore(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, rlog *researchlog.Logger) ([]schema.EmotionObservation, error) {
	store := mgr.GetObservationStore()
	if store == nil {
		return nil, errors.New("no observation store configured")
	}
	entries, err := store.ListEmotionHistory(cfg.UserID, cfg.ResultLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load emotion history: %w", err)
	}

	sessionID, _ := sessionIDFromContext(ctx)
	rlog.Log(researchlog.EmotionHistoryView, cfg.UserID, sessionID, map[string]any{
		"entry_count": len(entries),
		"limit":       cfg.ResultLimit,
	})
	return entries, nil
}

// runFeedbackCore validates and stores one feedback submission.
func runFeedbackCore(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, rlog *researchlog.Logger, rating int, targetType, targetID, comment string) (schema.FeedbackRecord, error) {
	if rating < 1 || rating > 5 {
		return schema.FeedbackRecord{}, fmt.Errorf("%w: rating must be between 1 and 5", schema.ErrInvalidInput)
	}
	targetType = strings.ToLower(strings.TrimSpace(targetType))
	if _, ok := schema.ValidFeedbackTargets[targetType]; !ok {
		return schema.FeedbackRecord{}, fmt.Errorf("%w: unknown feedback target %q", schema.ErrInvalidInput, targetType)
	}
	targetID = strings.TrimSpace(targetID)
	if targetID == "" {
		return schema.FeedbackRecord{}, fmt.Errorf("%w: feedback target id must not be empty", schema.ErrInvalidInput)
	}

	fb := schema.FeedbackRecord{
		UserID:      cfg.UserID,
		Rating:      rating,
		TargetType:  targetType,
		TargetID:    targetID,
		Comment:     strings.TrimSpace(comment),
		SubmittedAt: time.Now().UTC(),
	}
	if store := mgr.GetObservationStore(); store != nil {
		if err := store.AppendFeedback(fb); err != nil {
			return schema.FeedbackRecord{}, fmt.Errorf("failed to store feedback: %w", err)
		}
	}

	sessionID, _ := sessionIDFromContext(ctx)
	rlog.Log(researchlog.FeedbackSubmit, cfg.UserID, sessionID, map[string]any{
		"rating":      rating,
		"target_type": targetType,
		"target_id":   targetID,
	})
	return fb, nil
}

// beginSessionTracking opens a session row and logs the session start.
// Tracking failures degrade to warnings; the run itself proceeds.
func beginSessionTracking(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, rlog *researchlog.Logger, operation string) (context.Context, string) {
	store := mgr.GetObservationStore()
	if store == nil {
		return ctx, ""
	}

	sessionID := uuid.NewString()
	configParams := map[string]any{
		"operation":    operation,
		"user":         cfg.UserID,
		"workers":      cfg.Workers,
		"result_limit": cfg.ResultLimit,
	}
	if err := store.BeginSession(sessionID, time.Now(), configParams); err != nil {
		contract.LogWarn("Session tracking initialization failed", err)
		return ctx, ""
	}

	rlog.Log(researchlog.SessionStart, cfg.UserID, sessionID, map[string]any{
		"operation": operation,
	})
	return withSessionID(ctx, sessionID), sessionID
}

// endSessionTracking finalizes the session row opened by
// beginSessionTracking. A blank sessionID means tracking never started.
func endSessionTracking(cfg *contract.Config, mgr contract.StoreManager, rlog *researchlog.Logger, sessionID string, operations int) {
	if sessionID == "" {
		return
	}
	if err := mgr.GetObservationStore().EndSession(sessionID, time.Now(), operations); err != nil {
		contract.LogWarn("Failed to finalize session tracking", err)
	}
	rlog.Log(researchlog.SessionEnd, cfg.UserID, sessionID, map[string]any{
		"operations": operations,
	})
}

// loadColorObservation returns the user's color profile, or nil when none
// has been recorded yet.
func loadColorObservation(mgr contract.StoreManager, userID string) (*schema.ColorObservation, error) {
	store := mgr.GetObservationStore()
	if store == nil {
		return nil, nil
	}
	obs, err := store.GetColorObservation(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load color observation: %w", err)
	}
	return &obs, nil
}
