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

// PrintWeeklyAggregate outputs one user's weekly aggregate, dispatching based on the output format configured.
func PrintWeeklyAggregate(agg schema.WeeklyAggregate, cached bool, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultForWeekly(agg, cached, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultForWeekly(agg, cached, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWeeklyTable(w, agg, cached, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
	return nil
}

// printJSONResultForWeekly handles opening the file and calling the JSON writer.
func printJSONResultForWeekly(agg schema.WeeklyAggregate, cached bool, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultForWeekly(w, agg, cached)
	}, "Wrote JSON")
}

// printCSVResultForWeekly handles opening the file and calling the CSV writer.
func printCSVResultForWeekly(agg schema.WeeklyAggregate, cached bool, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVResultForWeekly(w, agg, cached, fmtFloat)
	}, "Wrote CSV")
}

// writeWeeklyTable renders the axis averages along with the derived insight lines.
func writeWeeklyTable(writer io.Writer, agg schema.WeeklyAggregate, cached bool, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if _, err := fmt.Fprintf(writer, "%sWeekly Insight: %s (week of %s)\n", emojiPrefix(cfg, "📈"),
		agg.UserID, agg.WeekStart.Format(contract.DateFormat)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Emotion", "Average", "Label"})

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	label := labelFormatter(cfg)
	var data [][]string
	for _, axis := range schema.AllAxes {
		avg := agg.Averages.Get(axis)
		data = append(data, []string{
			string(axis),
			fmtFloat(avg),
			label(avg),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Active days: %d/7 | Entries: %d\n", agg.ActiveDays, agg.TotalEntries); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Mood improvement: %s | Stress relief: %s | Color effect: %s\n",
		fmtFloat(agg.MoodImprovement), fmtFloat(agg.StressRelief), fmtFloat(agg.ColorImprovement)); err != nil {
		return err
	}
	if agg.Insight != "" {
		if _, err := fmt.Fprintf(writer, "Insight: %s\n", agg.Insight); err != nil {
			return err
		}
	}
	if agg.Advice != "" {
		if _, err := fmt.Fprintf(writer, "Advice: %s\n", agg.Advice); err != nil {
			return err
		}
	}
	if cached {
		if _, err := fmt.Fprintf(writer, "Served from memo cache\n"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "Analysis completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// PrintWeeklyReport outputs one row per user, dispatching based on the output format configured.
func PrintWeeklyReport(results []schema.WeeklyAggregate, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForReport(results, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForReport(results, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(w, results, cfg, fmtFloat, intFmt, duration)
		}, "Wrote table")
	}
	return nil
}

// printJSONResultsForReport handles opening the file and calling the JSON writer.
func printJSONResultsForReport(results []schema.WeeklyAggregate, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForReport(w, results)
	}, "Wrote JSON")
}

// printCSVResultsForReport handles opening the file and calling the CSV writer.
func printCSVResultsForReport(results []schema.WeeklyAggregate, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForReport(csvWriter, results, fmtFloat, intFmt)
	}, "Wrote CSV")
}

// writeReportTable renders the per-user report, one ranked row per user.
func writeReportTable(writer io.Writer, results []schema.WeeklyAggregate, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "User", "Days", "Entries", "Happiness", "Stress", "Mood Change", "Label"})

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	label := labelFormatter(cfg)
	var data [][]string
	totalEntries := 0
	for i, r := range results {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			r.UserID,
			fmt.Sprintf(intFmt, r.ActiveDays),
			fmt.Sprintf(intFmt, r.TotalEntries),
			fmtFloat(r.Averages.Happiness),
			fmtFloat(r.Averages.Stress),
			fmtFloat(r.MoodImprovement),
			label(r.Averages.Happiness),
		})
		totalEntries += r.TotalEntries
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d users (total entries: %d)\n", len(results), totalEntries); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}
