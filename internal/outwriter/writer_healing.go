package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/schema"
)

// writeJSONResultForHealing marshals the daily healing pick to JSON and writes it.
func writeJSONResultForHealing(w io.Writer, healing schema.DailyHealing, cached bool) error {
	// 1. Prepare the data structure for JSON with the memo flag added
	type JSONHealingResult struct {
		Cached bool `json:"cached"`
		schema.DailyHealing
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, JSONHealingResult{Cached: cached, DailyHealing: healing})
}

// writeCSVResultForHealing writes the daily healing pick as a single CSV row.
func writeCSVResultForHealing(w io.Writer, healing schema.DailyHealing, cached bool) error {
	header := []string{
		"user",
		"date",
		"color_name",
		"color_hex",
		"calm_effect",
		"personal_fit",
		"affirmation",
		"cached",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		rec := []string{
			healing.UserID,                            // User
			healing.Date.Format(contract.DateFormat),  // Date
			healing.Color.Name,                        // Color name
			healing.Color.Hex,                         // Hex code
			healing.CalmEffect,                        // Calm effect
			healing.PersonalFit,                       // Personal fit
			healing.Affirmation,                       // Affirmation
			strconv.FormatBool(cached),                // Memo hit
		}
		return cw.Write(rec)
	})
}

// writeCSVResultsForRecommendations writes recommendation items in CSV format.
func writeCSVResultsForRecommendations(w *csv.Writer, set schema.RecommendationSet) error {
	// 1. Write Header Row
	header := []string{
		"rank",
		"category",
		"id",
		"title",
		"description",
		"color",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows, fashion then food then activities
	rank := 0
	for _, group := range [][]schema.RecommendationItem{set.Items, set.Foods, set.Activities} {
		for _, item := range group {
			rank++
			row := []string{
				strconv.Itoa(rank),  // Rank
				item.Type,           // Category
				item.ID,             // Item id
				item.Title,          // Title
				item.Description,    // Description
				item.Color,          // Color hex
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeCSVResultForFeedback writes a feedback acknowledgement as a single CSV row.
func writeCSVResultForFeedback(w io.Writer, fb schema.FeedbackRecord) error {
	header := []string{
		"user",
		"rating",
		"target_type",
		"target_id",
		"comment",
		"submitted_at",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		rec := []string{
			fb.UserID,                                      // User
			strconv.Itoa(fb.Rating),                        // Rating
			fb.TargetType,                                  // Target type
			fb.TargetID,                                    // Target id
			fb.Comment,                                     // Comment
			fb.SubmittedAt.Format(contract.DateTimeFormat), // Submitted At
		}
		return cw.Write(rec)
	})
}
