package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/schema"
)

// writeJSONResultForColor marshals a color observation to JSON and writes it.
func writeJSONResultForColor(w io.Writer, obs schema.ColorObservation) error {
	// 1. Prepare the data structure for JSON with the derived tone added
	type JSONColorResult struct {
		Tone schema.Tone `json:"tone"`
		schema.ColorObservation
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, JSONColorResult{Tone: obs.Tone(), ColorObservation: obs})
}

// writeCSVResultForColor writes a color observation in CSV format.
func writeCSVResultForColor(w *csv.Writer, obs schema.ColorObservation, fmtFloat func(float64) string) error {
	// CSV header
	header := []string{
		"user",
		"season",
		"subtype",
		"tone",
		"label",
		"confidence",
		"source",
		"fallback_reason",
		"palette",
		"description",
		"analyzed_at",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	names := make([]string, len(obs.Palette))
	for i, c := range obs.Palette {
		names[i] = c.Name
	}
	rec := []string{
		obs.UserID,                // User
		string(obs.Season),        // Season
		string(obs.Subtype),       // Subtype
		string(obs.Tone()),        // Derived tone
		obs.Label,                 // Display label
		fmtFloat(obs.Confidence),  // Confidence (0..1)
		string(obs.Source),        // Source
		obs.FallbackReason,        // Fallback reason, empty when measured
		strings.Join(names, "|"),  // Palette color names
		obs.Description,           // Season description
		obs.AnalyzedAt.Format(contract.DateTimeFormat), // Analyzed At
	}
	return w.Write(rec)
}

// writeJSONResultForPalette marshals a palette lookup to JSON and writes it.
func writeJSONResultForPalette(w io.Writer, season schema.Season, subtype schema.Subtype, description string, colors []schema.PaletteColor) error {
	// 1. Prepare the data structure for JSON with the derived fields added
	type JSONPaletteResult struct {
		Season      schema.Season         `json:"season"`
		Subtype     schema.Subtype        `json:"subtype"`
		Tone        schema.Tone           `json:"tone"`
		Label       string                `json:"label"`
		Description string                `json:"description,omitempty"`
		Colors      []schema.PaletteColor `json:"colors"`
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, JSONPaletteResult{
		Season:      season,
		Subtype:     subtype,
		Tone:        schema.DeriveTone(subtype),
		Label:       schema.DisplayLabel(season, subtype),
		Description: description,
		Colors:      colors,
	})
}

// writeCSVResultsForPalette writes palette colors in CSV format.
func writeCSVResultsForPalette(w *csv.Writer, season schema.Season, subtype schema.Subtype, colors []schema.PaletteColor) error {
	// 1. Write Header Row
	header := []string{
		"rank",
		"name",
		"hex",
		"description",
		"season",
		"subtype",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for i, c := range colors {
		row := []string{
			strconv.Itoa(i + 1),  // Rank
			c.Name,               // Color name
			c.Hex,                // Hex code
			c.Description,        // Description
			string(season),       // Season
			string(subtype),      // Subtype
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
