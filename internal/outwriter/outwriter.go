// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"time"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteColorResult prints a color analysis result using the configured output format.
func (ow *OutWriter) WriteColorResult(obs schema.ColorObservation, cfg *contract.Config, duration time.Duration) error {
	return PrintColorResult(obs, cfg, duration)
}

// WriteEmotionResult prints an emotion analysis result using the configured output format.
func (ow *OutWriter) WriteEmotionResult(obs schema.EmotionObservation, healing []schema.HealingColor, cfg *contract.Config, duration time.Duration) error {
	return PrintEmotionResult(obs, healing, cfg, duration)
}

// WriteWeeklyAggregate prints a weekly aggregate using the configured output format.
func (ow *OutWriter) WriteWeeklyAggregate(agg schema.WeeklyAggregate, cached bool, cfg *contract.Config, duration time.Duration) error {
	return PrintWeeklyAggregate(agg, cached, cfg, duration)
}

// WriteWeeklyReport prints per-user weekly aggregates using the configured output format.
func (ow *OutWriter) WriteWeeklyReport(results []schema.WeeklyAggregate, cfg *contract.Config, duration time.Duration) error {
	return PrintWeeklyReport(results, cfg, duration)
}

// WriteDailyHealing prints the healing color of the day using the configured output format.
func (ow *OutWriter) WriteDailyHealing(healing schema.DailyHealing, cached bool, cfg *contract.Config) error {
	return PrintDailyHealing(healing, cached, cfg)
}

// WriteRecommendations prints a recommendation set using the configured output format.
func (ow *OutWriter) WriteRecommendations(set schema.RecommendationSet, cfg *contract.Config) error {
	return PrintRecommendations(set, cfg)
}

// WriteEmotionHistory prints recent emotion observations using the configured output format.
func (ow *OutWriter) WriteEmotionHistory(entries []schema.EmotionObservation, cfg *contract.Config) error {
	return PrintEmotionHistory(entries, cfg)
}

// WriteFeedbackAck prints a feedback acknowledgement using the configured output format.
func (ow *OutWriter) WriteFeedbackAck(fb schema.FeedbackRecord, cfg *contract.Config) error {
	return PrintFeedbackAck(fb, cfg)
}

// WritePalette prints a resolved palette using the configured output format.
func (ow *OutWriter) WritePalette(season schema.Season, subtype schema.Subtype, description string, colors []schema.PaletteColor, cfg *contract.Config) error {
	return PrintPalette(season, subtype, description, colors, cfg)
}

// formatSourceNote describes how a classification was produced. Fallback
// classifications carry the reason the measured path was not taken.
func formatSourceNote(obs schema.ColorObservation) string {
	if obs.Source == schema.FallbackSource {
		if obs.FallbackReason != "" {
			return fmt.Sprintf("fallback (%s)", obs.FallbackReason)
		}
		return "fallback"
	}
	return string(obs.Source)
}
