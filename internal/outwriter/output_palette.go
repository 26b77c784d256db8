package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/schema"
)

// PrintPalette outputs a resolved palette, dispatching based on the output format configured.
func PrintPalette(season schema.Season, subtype schema.Subtype, description string, colors []schema.PaletteColor, cfg *contract.Config) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultForPalette(season, subtype, description, colors, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForPalette(season, subtype, colors, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePaletteTable(w, season, subtype, description, colors, cfg)
		}, "Wrote table")
	}
	return nil
}

// printJSONResultForPalette handles opening the file and calling the JSON writer.
func printJSONResultForPalette(season schema.Season, subtype schema.Subtype, description string, colors []schema.PaletteColor, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultForPalette(w, season, subtype, description, colors)
	}, "Wrote JSON")
}

// printCSVResultsForPalette handles opening the file and calling the CSV writer.
func printCSVResultsForPalette(season schema.Season, subtype schema.Subtype, colors []schema.PaletteColor, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForPalette(csvWriter, season, subtype, colors)
	}, "Wrote CSV")
}

// writePaletteTable renders the palette with its season summary.
func writePaletteTable(writer io.Writer, season schema.Season, subtype schema.Subtype, description string, colors []schema.PaletteColor, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(writer, "%sPalette: %s\n", emojiPrefix(cfg, "🎨"), schema.DisplayLabel(season, subtype)); err != nil {
		return err
	}
	if description != "" {
		if _, err := fmt.Fprintf(writer, "%s\n", description); err != nil {
			return err
		}
	}

	if err := writePaletteRows(writer, colors, cfg); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d colors for the %s %s tone\n", len(colors), season, schema.DeriveTone(subtype)); err != nil {
		return err
	}
	return nil
}
