package iostore

import (
	"errors"
	"fmt"

	"github.com/embeau/tonelab/internal/parquet"
)

// ExecuteStoreExport performs the actual export of observation data to Parquet files.
func ExecuteStoreExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the observation store
	store := Manager.GetObservationStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}

	totalRows := status.ColorObservations + status.EmotionEntries + status.WeeklyAggregates +
		status.TotalSessions + int(status.TableSizes[feedbackTable])
	if totalRows == 0 {
		return errors.New("no observation data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total color profiles: %d\n", status.ColorObservations)
	fmt.Printf("Total emotion entries: %d\n", status.EmotionEntries)
	fmt.Printf("Total weekly aggregates: %d\n", status.WeeklyAggregates)
	fmt.Printf("Total sessions: %d\n", status.TotalSessions)

	// Retrieve all color profiles
	colorProfiles, err := store.ListAllColorObservations()
	if err != nil {
		return fmt.Errorf("failed to retrieve color profiles: %w", err)
	}

	// Retrieve all emotion observations
	emotions, err := store.ListAllEmotionObservations()
	if err != nil {
		return fmt.Errorf("failed to retrieve emotion entries: %w", err)
	}

	// Retrieve all weekly aggregates
	aggregates, err := store.ListAllWeeklyAggregates()
	if err != nil {
		return fmt.Errorf("failed to retrieve weekly aggregates: %w", err)
	}

	// Retrieve all feedback
	feedback, err := store.ListAllFeedback()
	if err != nil {
		return fmt.Errorf("failed to retrieve feedback: %w", err)
	}

	// Retrieve all sessions
	sessions, err := store.ListAllSessions()
	if err != nil {
		return fmt.Errorf("failed to retrieve sessions: %w", err)
	}

	// Convert to Parquet format
	parquetProfiles := parquet.ConvertColorObservations(colorProfiles)
	parquetEmotions := parquet.ConvertEmotionObservations(emotions)
	parquetAggregates := parquet.ConvertWeeklyAggregates(aggregates)
	parquetFeedback := parquet.ConvertFeedbackRecords(feedback)
	parquetSessions := parquet.ConvertSessionRecords(sessions)

	// Write color profiles to Parquet
	profilesFile := outputFile + ".color_profiles.parquet"
	if err := parquet.WriteColorProfilesParquet(parquetProfiles, profilesFile); err != nil {
		return fmt.Errorf("failed to write color profiles: %w", err)
	}
	fmt.Printf("Exported %d color profiles to: %s\n", len(parquetProfiles), profilesFile)

	// Write emotion entries to Parquet
	emotionsFile := outputFile + ".emotion_entries.parquet"
	if err := parquet.WriteEmotionEntriesParquet(parquetEmotions, emotionsFile); err != nil {
		return fmt.Errorf("failed to write emotion entries: %w", err)
	}
	fmt.Printf("Exported %d emotion entries to: %s\n", len(parquetEmotions), emotionsFile)

	// Write weekly aggregates to Parquet
	aggregatesFile := outputFile + ".weekly_aggregates.parquet"
	if err := parquet.WriteWeeklyAggregatesParquet(parquetAggregates, aggregatesFile); err != nil {
		return fmt.Errorf("failed to write weekly aggregates: %w", err)
	}
	fmt.Printf("Exported %d weekly aggregates to: %s\n", len(parquetAggregates), aggregatesFile)

	// Write feedback to Parquet
	feedbackFile := outputFile + ".feedback.parquet"
	if err := parquet.WriteFeedbackParquet(parquetFeedback, feedbackFile); err != nil {
		return fmt.Errorf("failed to write feedback: %w", err)
	}
	fmt.Printf("Exported %d feedback records to: %s\n", len(parquetFeedback), feedbackFile)

	// Write sessions to Parquet
	sessionsFile := outputFile + ".sessions.parquet"
	if err := parquet.WriteSessionsParquet(parquetSessions, sessionsFile); err != nil {
		return fmt.Errorf("failed to write sessions: %w", err)
	}
	fmt.Printf("Exported %d sessions to: %s\n", len(parquetSessions), sessionsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
