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

// PrintColorResult outputs a color analysis result, dispatching based on the output format configured.
func PrintColorResult(obs schema.ColorObservation, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultForColor(obs, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultForColor(obs, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeColorTable(w, obs, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
	return nil
}

// printJSONResultForColor handles opening the file and calling the JSON writer.
func printJSONResultForColor(obs schema.ColorObservation, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultForColor(w, obs)
	}, "Wrote JSON")
}

// printCSVResultForColor handles opening the file and calling the CSV writer.
func printCSVResultForColor(obs schema.ColorObservation, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultForColor(csvWriter, obs, fmtFloat)
	}, "Wrote CSV")
}

// writeColorTable renders the profile summary and its palette as a human-readable table.
func writeColorTable(writer io.Writer, obs schema.ColorObservation, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if _, err := fmt.Fprintf(writer, "%sPersonal Color: %s\n", emojiPrefix(cfg, "🎨"), obs.Label); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Season: %s | Tone: %s | Confidence: %s%% | Source: %s\n",
		obs.Season, obs.Tone(), fmtFloat(obs.Confidence*100), formatSourceNote(obs)); err != nil {
		return err
	}
	if obs.Description != "" {
		if _, err := fmt.Fprintf(writer, "%s\n", obs.Description); err != nil {
			return err
		}
	}

	if err := writePaletteRows(writer, obs.Palette, cfg); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Analysis completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writePaletteRows renders palette colors as a ranked table.
func writePaletteRows(writer io.Writer, colors []schema.PaletteColor, cfg *contract.Config) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	table.Header([]string{"Rank", "Color", "Hex", "Description"})

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxWidth := GetMaxTableTextWidth(cfg)
	var data [][]string
	for i, c := range colors {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			c.Name,
			c.Hex,
			contract.TruncateText(c.Description, maxWidth),
		})
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
