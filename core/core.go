// Package core has core logic for classification, aggregation and
// recommendations.
package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/internal/inference"
	"github.com/embeau/tonelab/internal/outwriter"
	"github.com/embeau/tonelab/internal/researchlog"
	"github.com/embeau/tonelab/schema"
)

// Maximum coordinate on the 8-bit Lab scale accepted for direct entry.
const maxLabScale = 255.0

// ExecutorFunc defines the function signature for executing run modes that
// need no arguments beyond the shared configuration.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// GetColorAnalysisResults runs the image classification flow and returns
// the stored observation. Callers that build their own payloads, such as
// the MCP server, use this instead of ExecuteColorAnalysis.
func GetColorAnalysisResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, imagePath string) (schema.ColorObservation, time.Duration, error) {
	start := time.Now()
	infer := inference.NewContext()
	rlog := researchlog.New(cfg.ResearchLogPath, cfg.ResearchLogEnabled)
	defer func() { _ = rlog.Close() }()

	ctx, sessionID := beginSessionTracking(ctx, cfg, mgr, rlog, "color")
	obs, err := runColorAnalysisCore(ctx, cfg, infer, mgr, rlog, imagePath)
	endSessionTracking(cfg, mgr, rlog, sessionID, 1)
	return obs, time.Since(start), err
}

// ExecuteColorAnalysis runs the image classification flow and prints the
// resulting color profile. It serves as the main entry point for the
// 'color' mode.
func ExecuteColorAnalysis(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, imagePath string) error {
	obs, duration, err := GetColorAnalysisResults(ctx, cfg, mgr, imagePath)
	if err != nil {
		return err
	}
	return outwriter.PrintColorResult(obs, cfg, duration)
}

// ExecuteColorEntry records a declared season and subtype as the color
// profile without running image analysis.
func ExecuteColorEntry(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, season, subtype string) error {
	start := time.Now()
	rlog := researchlog.New(cfg.ResearchLogPath, cfg.ResearchLogEnabled)
	defer func() { _ = rlog.Close() }()

	ctx, sessionID := beginSessionTracking(ctx, cfg, mgr, rlog, "color-entry")
	obs, err := runDirectColorEntryCore(ctx, cfg, mgr, rlog, season, subtype)
	endSessionTracking(cfg, mgr, rlog, sessionID, 1)
	if err != nil {
		return err
	}

	duration := time.Since(start)
	return outwriter.PrintColorResult(obs, cfg, duration)
}

// ExecuteLabEntry classifies directly from measured Lab coordinates on the
// 8-bit scale and records the result as the color profile.
func ExecuteLabEntry(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, l, b float64) error {
	start := time.Now()
	rlog := researchlog.New(cfg.ResearchLogPath, cfg.ResearchLogEnabled)
	defer func() { _ = rlog.Close() }()

	if l < 0 || l > maxLabScale || b < 0 || b > maxLabScale {
		return fmt.Errorf("%w: lab coordinates must be within [0,%g]", schema.ErrInvalidInput, maxLabScale)
	}

	ctx, sessionID := beginSessionTracking(ctx, cfg, mgr, rlog, "color-lab")
	result := schema.Measured(ClassifyLab(l, b))
	obs := buildColorObservation(cfg.UserID, result, time.Now().UTC())
	var err error
	if store := mgr.GetObservationStore(); store != nil {
		err = store.UpsertColorObservation(obs)
	}
	if err == nil {
		rlog.Log(researchlog.ColorAnalyzeComplete, cfg.UserID, sessionID, map[string]any{
			"season":  string(obs.Season),
			"subtype": string(obs.Subtype),
			"source":  "lab",
		})
	}
	endSessionTracking(cfg, mgr, rlog, sessionID, 1)
	if err != nil {
		return fmt.Errorf("failed to store color observation: %w", err)
	}

	duration := time.Since(start)
	return outwriter.PrintColorResult(obs, cfg, duration)
}

// GetEmotionAnalysisResults scores free text, stores the observation and
// returns it with the healing colors for the dominant axis.
func GetEmotionAnalysisResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, text string) (schema.EmotionObservation, []schema.HealingColor, time.Duration, error) {
	start := time.Now()
	infer := inference.NewContext()
	rlog := researchlog.New(cfg.ResearchLogPath, cfg.ResearchLogEnabled)
	defer func() { _ = rlog.Close() }()

	ctx, sessionID := beginSessionTracking(ctx, cfg, mgr, rlog, "emotion")
	obs, healing, err := runEmotionAnalysisCore(ctx, cfg, infer, mgr, rlog, text)
	endSessionTracking(cfg, mgr, rlog, sessionID, 1)
	return obs, healing, time.Since(start), err
}

// ExecuteEmotionAnalysis scores free text, stores the observation and
// prints the scores with healing colors. It serves as the main entry point
// for the 'emotion' mode.
func ExecuteEmotionAnalysis(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, text string) error {
	obs, healing, duration, err := GetEmotionAnalysisResults(ctx, cfg, mgr, text)
	if err != nil {
		return err
	}
	return outwriter.PrintEmotionResult(obs, healing, cfg, duration)
}

// GetWeeklyInsightResults aggregates one user's configured week and returns
// the aggregate along with whether it was served from the memo cache.
func GetWeeklyInsightResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.WeeklyAggregate, bool, time.Duration, error) {
	start := time.Now()
	rlog := researchlog.New(cfg.ResearchLogPath, cfg.ResearchLogEnabled)
	defer func() { _ = rlog.Close() }()

	ctx, sessionID := beginSessionTracking(ctx, cfg, mgr, rlog, "weekly")
	agg, cached, err := runWeeklyInsightCore(ctx, cfg, mgr, rlog)
	endSessionTracking(cfg, mgr, rlog, sessionID, 1)
	return agg, cached, time.Since(start), err
}

// ExecuteWeeklyInsight aggregates one user's current week and prints it.
func ExecuteWeeklyInsight(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	agg, cached, duration, err := GetWeeklyInsightResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintWeeklyAggregate(agg, cached, cfg, duration)
}

// ExecuteWeeklyReport aggregates the current week for every known user and
// prints one row per user.
func ExecuteWeeklyReport(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	rlog := researchlog.New(cfg.ResearchLogPath, cfg.ResearchLogEnabled)
	defer func() { _ = rlog.Close() }()

	// Per-user headers would repeat for every worker; print one up front.
	if !shouldSuppressHeader(ctx) {
		outwriter.LogAnalysisHeader(cfg, "report")
	}
	ctx = withSuppressHeader(ctx)

	ctx, sessionID := beginSessionTracking(ctx, cfg, mgr, rlog, "report")
	results, err := runWeeklyReportCore(ctx, cfg, mgr, rlog)
	endSessionTracking(cfg, mgr, rlog, sessionID, len(results))
	if err != nil {
		return err
	}

	rlog.Log(researchlog.ReportDownload, cfg.UserID, sessionID, map[string]any{
		"users": len(results),
	})

	duration := time.Since(start)
	return outwriter.PrintWeeklyReport(results, cfg, duration)
}

// GetDailyHealingResults picks the healing color of the day and returns it
// along with whether it was served from the memo cache.
func GetDailyHealingResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.DailyHealing, bool, error) {
	rlog := researchlog.New(cfg.ResearchLogPath, cfg.ResearchLogEnabled)
	defer func() { _ = rlog.Close() }()

	ctx, sessionID := beginSessionTracking(ctx, cfg, mgr, rlog, "healing")
	healing, cached, err := runDailyHealingCore(ctx, cfg, mgr, rlog)
	endSessionTracking(cfg, mgr, rlog, sessionID, 1)
	return healing, cached, err
}

// ExecuteDailyHealing prints the healing color of the day for the user.
func ExecuteDailyHealing(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	healing, cached, err := GetDailyHealingResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintDailyHealing(healing, cached, cfg)
}

// GetRecommendationsResults builds the seasonal recommendation set for the
// user's stored profile and returns it.
func GetRecommendationsResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.RecommendationSet, error) {
	rlog := researchlog.New(cfg.ResearchLogPath, cfg.ResearchLogEnabled)
	defer func() { _ = rlog.Close() }()

	ctx, sessionID := beginSessionTracking(ctx, cfg, mgr, rlog, "recommend")
	set, err := runRecommendationsCore(ctx, cfg, mgr, rlog)
	endSessionTracking(cfg, mgr, rlog, sessionID, 1)
	return set, err
}

// ExecuteRecommendations prints seasonal recommendations for the user.
func ExecuteRecommendations(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	set, err := GetRecommendationsResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintRecommendations(set, cfg)
}

// ExecuteRecommendationsByColor prints recommendations for one healing
// color.
func ExecuteRecommendationsByColor(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, colorHex string) error {
	rlog := researchlog.New(cfg.ResearchLogPath, cfg.ResearchLogEnabled)
	defer func() { _ = rlog.Close() }()

	ctx, sessionID := beginSessionTracking(ctx, cfg, mgr, rlog, "recommend-color")
	set, err := runRecommendationsByColorCore(ctx, cfg, mgr, rlog, colorHex)
	endSessionTracking(cfg, mgr, rlog, sessionID, 1)
	if err != nil {
		return err
	}

	return outwriter.PrintRecommendations(set, cfg)
}

// ExecuteEmotionHistory prints the most recent emotion observations.
func ExecuteEmotionHistory(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	rlog := researchlog.New(cfg.ResearchLogPath, cfg.ResearchLogEnabled)
	defer func() { _ = rlog.Close() }()

	ctx, sessionID := beginSessionTracking(ctx, cfg, mgr, rlog, "history")
	entries, err := runEmotionHistoryCore(ctx, cfg, mgr, rlog)
	endSessionTracking(cfg, mgr, rlog, sessionID, len(entries))
	if err != nil {
		return err
	}

	return outwriter.PrintEmotionHistory(entries, cfg)
}

// ExecuteFeedback validates and stores one feedback submission.
func ExecuteFeedback(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, rating int, targetType, targetID, comment string) error {
	rlog := researchlog.New(cfg.ResearchLogPath, cfg.ResearchLogEnabled)
	defer func() { _ = rlog.Close() }()

	ctx, sessionID := beginSessionTracking(ctx, cfg, mgr, rlog, "feedback")
	fb, err := runFeedbackCore(ctx, cfg, mgr, rlog, rating, targetType, targetID, comment)
	endSessionTracking(cfg, mgr, rlog, sessionID, 1)
	if err != nil {
		return err
	}

	return outwriter.PrintFeedbackAck(fb, cfg)
}

// GetPaletteResults resolves a palette. Without an explicit season it uses
// the stored profile, degrading to the neutral classification for users who
// have not analyzed yet.
func GetPaletteResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, seasonStr, subtypeStr string) (schema.Season, schema.Subtype, []schema.PaletteColor, error) {
	rlog := researchlog.New(cfg.ResearchLogPath, cfg.ResearchLogEnabled)
	defer func() { _ = rlog.Close() }()

	season := schema.Season(strings.ToLower(strings.TrimSpace(seasonStr)))
	subtype := schema.Subtype(strings.ToLower(strings.TrimSpace(subtypeStr)))

	if seasonStr == "" {
		obs, err := loadColorObservation(mgr, cfg.UserID)
		if err != nil {
			return "", "", nil, err
		}
		if obs != nil {
			season, subtype = obs.Season, obs.Subtype
		} else {
			def := DefaultClassification()
			season, subtype = def.Season, def.Subtype
		}
	} else {
		if _, ok := schema.ValidSeasons[season]; !ok {
			return "", "", nil, fmt.Errorf("%w: unknown season %q", schema.ErrInvalidInput, seasonStr)
		}
		if subtypeStr == "" {
			subtype = defaultSubtypeForSeason[season]
		} else if _, ok := schema.ValidSubtypes[subtype]; !ok {
			return "", "", nil, fmt.Errorf("%w: unknown subtype %q", schema.ErrInvalidInput, subtypeStr)
		}
	}

	sessionID, _ := sessionIDFromContext(ctx)
	rlog.Log(researchlog.ColorResultView, cfg.UserID, sessionID, map[string]any{
		"season": string(season),
		"tone":   string(schema.DeriveTone(subtype)),
	})

	return season, subtype, ResolvePalette(season, subtype), nil
}

// ExecutePalette resolves and prints a palette.
func ExecutePalette(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, seasonStr, subtypeStr string) error {
	season, subtype, colors, err := GetPaletteResults(ctx, cfg, mgr, seasonStr, subtypeStr)
	if err != nil {
		return err
	}
	return outwriter.PrintPalette(season, subtype, SeasonDescription(season), colors, cfg)
}
