package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/schema"
)

// writeJSONResultForWeekly marshals a weekly aggregate to JSON and writes it.
func writeJSONResultForWeekly(w io.Writer, agg schema.WeeklyAggregate, cached bool) error {
	// 1. Prepare the data structure for JSON with the memo flag added
	type JSONWeeklyResult struct {
		Cached bool `json:"cached"`
		schema.WeeklyAggregate
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, JSONWeeklyResult{Cached: cached, WeeklyAggregate: agg})
}

// writeCSVResultForWeekly writes a weekly aggregate as a single CSV row.
func writeCSVResultForWeekly(w io.Writer, agg schema.WeeklyAggregate, cached bool, fmtFloat func(float64) string) error {
	header := []string{
		"user",
		"week_start",
		"anxiety",
		"stress",
		"satisfaction",
		"happiness",
		"depression",
		"active_days",
		"total_entries",
		"mood_improvement",
		"stress_relief",
		"color_improvement",
		"insight",
		"advice",
		"computed_at",
		"cached",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		rec := []string{
			agg.UserID,                                    // User
			agg.WeekStart.Format(contract.DateFormat),     // Week Start
			fmtFloat(agg.Averages.Anxiety),                // Anxiety average
			fmtFloat(agg.Averages.Stress),                 // Stress average
			fmtFloat(agg.Averages.Satisfaction),           // Satisfaction average
			fmtFloat(agg.Averages.Happiness),              // Happiness average
			fmtFloat(agg.Averages.Depression),             // Depression average
			strconv.Itoa(agg.ActiveDays),                  // Active Days
			strconv.Itoa(agg.TotalEntries),                // Total Entries
			fmtFloat(agg.MoodImprovement),                 // Mood Improvement
			fmtFloat(agg.StressRelief),                    // Stress Relief
			fmtFloat(agg.ColorImprovement),                // Color Improvement
			agg.Insight,                                   // Insight
			agg.Advice,                                    // Advice
			agg.ComputedAt.Format(contract.DateTimeFormat), // Computed At
			strconv.FormatBool(cached),                    // Memo hit
		}
		return cw.Write(rec)
	})
}

// writeJSONResultsForReport marshals per-user aggregates to JSON with rank
// and label added.
func writeJSONResultsForReport(w io.Writer, results []schema.WeeklyAggregate) error {
	// 1. Prepare the data structure for JSON with rank and label added
	type JSONReportRow struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.WeeklyAggregate
	}

	output := make([]JSONReportRow, len(results))
	for i, r := range results {
		output[i] = JSONReportRow{
			Rank:            i + 1,
			Label:           contract.GetPlainLabel(r.Averages.Happiness),
			WeeklyAggregate: r,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

// writeCSVResultsForReport writes per-user aggregates in CSV format.
func writeCSVResultsForReport(w *csv.Writer, results []schema.WeeklyAggregate, fmtFloat func(float64) string, intFmt string) error {
	// 1. Write Header Row
	header := []string{
		"rank",
		"user",
		"week_start",
		"active_days",
		"total_entries",
		"anxiety",
		"stress",
		"satisfaction",
		"happiness",
		"depression",
		"mood_improvement",
		"stress_relief",
		"color_improvement",
		"label",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for i, r := range results {
		row := []string{
			strconv.Itoa(i + 1),                         // Rank
			r.UserID,                                    // User
			r.WeekStart.Format(contract.DateFormat),     // Week Start
			fmt.Sprintf(intFmt, r.ActiveDays),           // Active Days
			fmt.Sprintf(intFmt, r.TotalEntries),         // Total Entries
			fmtFloat(r.Averages.Anxiety),                // Anxiety average
			fmtFloat(r.Averages.Stress),                 // Stress average
			fmtFloat(r.Averages.Satisfaction),           // Satisfaction average
			fmtFloat(r.Averages.Happiness),              // Happiness average
			fmtFloat(r.Averages.Depression),             // Depression average
			fmtFloat(r.MoodImprovement),                 // Mood Improvement
			fmtFloat(r.StressRelief),                    // Stress Relief
			fmtFloat(r.ColorImprovement),                // Color Improvement
			contract.GetPlainLabel(r.Averages.Happiness), // Label
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
