package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/schema"
)

// writeJSONResultForEmotion marshals an emotion observation with its healing
// colors to JSON and writes it.
func writeJSONResultForEmotion(w io.Writer, obs schema.EmotionObservation, healing []schema.HealingColor) error {
	// 1. Prepare the data structure for JSON with label and healing colors added
	type JSONEmotionResult struct {
		Label string `json:"label"`
		schema.EmotionObservation
		HealingColors []schema.HealingColor `json:"healing_colors"`
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, JSONEmotionResult{
		Label:              contract.GetPlainLabel(obs.Scores.Get(obs.Dominant)),
		EmotionObservation: obs,
		HealingColors:      healing,
	})
}

// writeCSVResultForEmotion writes one emotion observation as one CSV row per axis.
func writeCSVResultForEmotion(w *csv.Writer, obs schema.EmotionObservation, fmtFloat func(float64) string) error {
	// CSV header
	header := []string{
		"user",
		"axis",
		"score",
		"label",
		"dominant",
		"recorded_at",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, axis := range schema.AllAxes {
		score := obs.Scores.Get(axis)
		rec := []string{
			obs.UserID,                                // User
			string(axis),                              // Axis
			fmtFloat(score),                           // Score
			contract.GetPlainLabel(score),             // Label
			strconv.FormatBool(axis == obs.Dominant),  // Dominant axis marker
			obs.RecordedAt.Format(contract.DateTimeFormat), // Recorded At
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForHistory marshals history entries to JSON with rank and
// label added, latest first.
func writeJSONResultsForHistory(w io.Writer, entries []schema.EmotionObservation) error {
	// 1. Prepare the data structure for JSON with rank and label added
	type JSONHistoryEntry struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.EmotionObservation
	}

	output := make([]JSONHistoryEntry, len(entries))
	for i, e := range entries {
		output[i] = JSONHistoryEntry{
			Rank:               i + 1,
			Label:              contract.GetPlainLabel(e.Scores.Get(e.Dominant)),
			EmotionObservation: e,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

// writeCSVResultsForHistory writes history entries in CSV format.
func writeCSVResultsForHistory(w *csv.Writer, entries []schema.EmotionObservation, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{
		"rank",
		"user",
		"recorded_at",
		"dominant",
		"anxiety",
		"stress",
		"satisfaction",
		"happiness",
		"depression",
		"text_length",
		"label",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for i, e := range entries {
		row := []string{
			strconv.Itoa(i + 1),                            // Rank
			e.UserID,                                       // User
			e.RecordedAt.Format(contract.DateTimeFormat),   // Recorded At
			string(e.Dominant),                             // Dominant axis
			fmtFloat(e.Scores.Anxiety),                     // Anxiety
			fmtFloat(e.Scores.Stress),                      // Stress
			fmtFloat(e.Scores.Satisfaction),                // Satisfaction
			fmtFloat(e.Scores.Happiness),                   // Happiness
			fmtFloat(e.Scores.Depression),                  // Depression
			strconv.Itoa(e.TextLength),                     // Input length
			contract.GetPlainLabel(e.Scores.Get(e.Dominant)), // Label
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
