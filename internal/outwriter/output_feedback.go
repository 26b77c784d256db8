package outwriter

import (
	"fmt"
	"io"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/schema"
)

// PrintFeedbackAck acknowledges a stored feedback submission, dispatching based on the output format configured.
func PrintFeedbackAck(fb schema.FeedbackRecord, cfg *contract.Config) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, fb)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultForFeedback(w, fb)
		}, "Wrote CSV")
	default:
		// Default to human-readable text
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFeedbackText(w, fb, cfg)
		}, "Wrote text")
	}
}

// writeFeedbackText displays the acknowledgement in human-readable text format.
func writeFeedbackText(w io.Writer, fb schema.FeedbackRecord, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "%sFeedback recorded for %s\n", emojiPrefix(cfg, "✅"), fb.UserID); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Rating: %d/5 (%s: %s)\n", fb.Rating, fb.TargetType, fb.TargetID); err != nil {
		return err
	}
	if fb.Comment != "" {
		if _, err := fmt.Fprintf(w, "Comment: %s\n", fb.Comment); err != nil {
			return err
		}
	}
	return nil
}
