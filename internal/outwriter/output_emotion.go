package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintEmotionResult outputs an emotion analysis result, dispatching based on the output format configured.
func PrintEmotionResult(obs schema.EmotionObservation, healing []schema.HealingColor, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultForEmotion(obs, healing, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultForEmotion(obs, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEmotionTable(w, obs, healing, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
	return nil
}

// printJSONResultForEmotion handles opening the file and calling the JSON writer.
func printJSONResultForEmotion(obs schema.EmotionObservation, healing []schema.HealingColor, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultForEmotion(w, obs, healing)
	}, "Wrote JSON")
}

// printCSVResultForEmotion handles opening the file and calling the CSV writer.
func printCSVResultForEmotion(obs schema.EmotionObservation, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultForEmotion(csvWriter, obs, fmtFloat)
	}, "Wrote CSV")
}

// writeEmotionTable renders the five axis scores and the healing colors for
// the dominant emotion.
func writeEmotionTable(writer io.Writer, obs schema.EmotionObservation, healing []schema.HealingColor, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if _, err := fmt.Fprintf(writer, "%sEmotion Analysis: %s (dominant: %s)\n", emojiPrefix(cfg, "🧠"), obs.UserID, obs.Dominant); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Emotion", "Score", "Label"})

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	label := labelFormatter(cfg)
	var data [][]string
	for _, axis := range schema.AllAxes {
		score := obs.Scores.Get(axis)
		data = append(data, []string{
			string(axis),
			fmtFloat(score),
			label(score),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(healing) > 0 {
		if _, err := fmt.Fprintf(writer, "%sHealing colors for %s:\n", emojiPrefix(cfg, "🌿"), obs.Dominant); err != nil {
			return err
		}
		for _, h := range healing {
			if _, err := fmt.Fprintf(writer, "  %s %s: %s\n", h.Name, h.Hex, h.Effect); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(writer, "Analysis completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// PrintEmotionHistory outputs recent emotion observations, dispatching based on the output format configured.
func PrintEmotionHistory(entries []schema.EmotionObservation, cfg *contract.Config) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForHistory(entries, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForHistory(entries, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryTable(w, entries, cfg, fmtFloat)
		}, "Wrote table")
	}
	return nil
}

// printJSONResultsForHistory handles opening the file and calling the JSON writer.
func printJSONResultsForHistory(entries []schema.EmotionObservation, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForHistory(w, entries)
	}, "Wrote JSON")
}

// printCSVResultsForHistory handles opening the file and calling the CSV writer.
func printCSVResultsForHistory(entries []schema.EmotionObservation, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForHistory(csvWriter, entries, fmtFloat)
	}, "Wrote CSV")
}

// writeHistoryTable renders history entries latest first.
func writeHistoryTable(writer io.Writer, entries []schema.EmotionObservation, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Recorded", "Dominant", "Anxiety", "Stress", "Satisfaction", "Happiness", "Depression", "Label"})

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	label := labelFormatter(cfg)
	var data [][]string
	for i, e := range entries {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			e.RecordedAt.Format(contract.DateTimeFormat),
			string(e.Dominant),
			fmtFloat(e.Scores.Anxiety),
			fmtFloat(e.Scores.Stress),
			fmtFloat(e.Scores.Satisfaction),
			fmtFloat(e.Scores.Happiness),
			fmtFloat(e.Scores.Depression),
			label(e.Scores.Get(e.Dominant)),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing last %d entries\n", len(entries)); err != nil {
		return err
	}
	return nil
}
