package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintRecommendations outputs a recommendation set, dispatching based on the output format configured.
func PrintRecommendations(set schema.RecommendationSet, cfg *contract.Config) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		// The set is already shaped for consumers; no enrichment needed.
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, set)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForRecommendations(csvWriter, set)
		}, "Wrote CSV")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRecommendationsTable(w, set, cfg)
		}, "Wrote table")
	}
}

// writeRecommendationsTable renders fashion, food and activity items as one ranked table.
func writeRecommendationsTable(writer io.Writer, set schema.RecommendationSet, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(writer, "%sRecommendations for %s (%s)\n", emojiPrefix(cfg, "🎁"), set.Color.Name, set.Color.Hex); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Category", "Title", "Description"})

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := GetMaxTableTextWidth(cfg)
	var data [][]string
	rank := 0
	for _, group := range [][]schema.RecommendationItem{set.Items, set.Foods, set.Activities} {
		for _, item := range group {
			rank++
			data = append(data, []string{
				strconv.Itoa(rank),
				item.Type,
				item.Title,
				contract.TruncateText(item.Description, maxWidth),
			})
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d recommendations\n", rank); err != nil {
		return err
	}
	return nil
}
