package outwriter

import (
	"fmt"
	"io"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/schema"
)

// PrintDailyHealing outputs the healing color of the day, dispatching based on the output format configured.
func PrintDailyHealing(healing schema.DailyHealing, cached bool, cfg *contract.Config) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONResultForHealing(w, healing, cached)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultForHealing(w, healing, cached)
		}, "Wrote CSV")
	default:
		// Default to human-readable text
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHealingText(w, healing, cached, cfg)
		}, "Wrote text")
	}
}

// writeHealingText displays the daily healing color in human-readable text format.
func writeHealingText(w io.Writer, healing schema.DailyHealing, cached bool, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "%sHealing Color of the Day\n", emojiPrefix(cfg, "🌿")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "========================\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Date: %s (user: %s)\n", healing.Date.Format(contract.DateFormat), healing.UserID); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Color: %s (%s)\n", healing.Color.Name, healing.Color.Hex); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", healing.CalmEffect); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", healing.PersonalFit); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", emojiPrefix(cfg, "💬"), healing.Affirmation); err != nil {
		return err
	}
	if cached {
		if _, err := fmt.Fprintf(w, "Served from memo cache\n"); err != nil {
			return err
		}
	}
	return nil
}
