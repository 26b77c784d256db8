// Package parquet provides data structures and functions for exporting the
// tonelab research dataset to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/embeau/tonelab/schema"
	"github.com/parquet-go/parquet-go"
)

// ColorProfile represents a user's current personal color classification.
// This struct maps to the tonelab_color_profiles database table.
type ColorProfile struct {
	// UserID identifies the participant the profile belongs to
	UserID string `parquet:"user_id,snappy"`

	// Season is the classified season (spring, summer, autumn, winter)
	Season string `parquet:"season,snappy"`

	// Subtype is the classified subtype within the season
	Subtype string `parquet:"subtype,snappy"`

	// Label is the display label, e.g. "Summer Cool"
	Label string `parquet:"label,snappy"`

	// Confidence is the classification confidence in [0,1]
	Confidence float64 `parquet:"confidence,snappy"`

	// Source records whether the classification was measured or a fallback
	Source string `parquet:"source,snappy"`

	// FallbackReason is set when the classifier degraded to the default result
	FallbackReason string `parquet:"fallback_reason,snappy"`

	// Palette is the resolved five-color palette as a JSON array
	Palette string `parquet:"palette,snappy"`

	// AnalyzedAt is when the classification was recorded (stored as TIMESTAMP with nanosecond precision)
	AnalyzedAt time.Time `parquet:"analyzed_at,snappy"`
}

// EmotionEntry represents a single recorded emotion analysis.
// This struct maps to the tonelab_emotion_entries database table.
type EmotionEntry struct {
	// UserID identifies the participant who recorded the entry
	UserID string `parquet:"user_id,snappy"`

	// Anxiety is the anxiety score on the 0-100 scale
	Anxiety float64 `parquet:"anxiety,snappy"`

	// Stress is the stress score on the 0-100 scale
	Stress float64 `parquet:"stress,snappy"`

	// Satisfaction is the satisfaction score on the 0-100 scale
	Satisfaction float64 `parquet:"satisfaction,snappy"`

	// Happiness is the happiness score on the 0-100 scale
	Happiness float64 `parquet:"happiness,snappy"`

	// Depression is the depression score on the 0-100 scale
	Depression float64 `parquet:"depression,snappy"`

	// Dominant is the axis selected as the dominant emotion
	Dominant string `parquet:"dominant,snappy"`

	// TextLength is the rune count of the analyzed text; the text itself is never stored
	TextLength int32 `parquet:"text_length,snappy"`

	// RecordedAt is when the entry was recorded (stored as TIMESTAMP with nanosecond precision)
	RecordedAt time.Time `parquet:"recorded_at,snappy"`
}

// WeeklyAggregate represents one computed weekly emotion summary.
// This struct maps to the tonelab_weekly_aggregates database table.
type WeeklyAggregate struct {
	// UserID identifies the participant the week belongs to
	UserID string `parquet:"user_id,snappy"`

	// WeekStart is Monday 00:00 UTC of the summarized week
	WeekStart time.Time `parquet:"week_start,snappy"`

	// AvgAnxiety is the weekly mean anxiety score
	AvgAnxiety float64 `parquet:"avg_anxiety,snappy"`

	// AvgStress is the weekly mean stress score
	AvgStress float64 `parquet:"avg_stress,snappy"`

	// AvgSatisfaction is the weekly mean satisfaction score
	AvgSatisfaction float64 `parquet:"avg_satisfaction,snappy"`

	// AvgHappiness is the weekly mean happiness score
	AvgHappiness float64 `parquet:"avg_happiness,snappy"`

	// AvgDepression is the weekly mean depression score
	AvgDepression float64 `parquet:"avg_depression,snappy"`

	// ActiveDays is the number of distinct UTC days with at least one entry
	ActiveDays int32 `parquet:"active_days,snappy"`

	// TotalEntries is the number of entries recorded during the week
	TotalEntries int32 `parquet:"total_entries,snappy"`

	// MoodImprovement is the swing of positive axes versus the prior week
	MoodImprovement float64 `parquet:"mood_improvement,snappy"`

	// StressRelief is the swing of negative axes versus the prior week
	StressRelief float64 `parquet:"stress_relief,snappy"`

	// ColorImprovement credits engagement with the color routine
	ColorImprovement float64 `parquet:"color_improvement,snappy"`

	// Insight is the generated weekly insight text
	Insight string `parquet:"insight,snappy"`

	// Advice is the generated weekly advice text
	Advice string `parquet:"advice,snappy"`

	// ComputedAt is when the aggregate was computed
	ComputedAt time.Time `parquet:"computed_at,snappy"`
}

// Feedback represents one user feedback submission.
// This struct maps to the tonelab_feedback database table.
type Feedback struct {
	// UserID identifies the participant who submitted the feedback
	UserID string `parquet:"user_id,snappy"`

	// Rating is the submitted rating from 1 to 5
	Rating int32 `parquet:"rating,snappy"`

	// TargetType names the surface being rated
	TargetType string `parquet:"target_type,snappy"`

	// TargetID identifies the specific result being rated
	TargetID string `parquet:"target_id,snappy"`

	// Comment is the free-form comment text
	Comment string `parquet:"comment,snappy"`

	// SubmittedAt is when the feedback was submitted
	SubmittedAt time.Time `parquet:"submitted_at,snappy"`
}

// Session represents a single tracked run with metadata.
// This struct maps to the tonelab_sessions database table.
type Session struct {
	// SessionID is the unique identifier for this session
	SessionID string `parquet:"session_id,snappy"`

	// StartTime is when the session began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the session completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the session in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// Operations is the number of operations executed in this session
	Operations int32 `parquet:"operations,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// WriteColorProfilesParquet writes a slice of ColorProfile structs to a Parquet file.
func WriteColorProfilesParquet(data []ColorProfile, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ColorProfile struct tags
	writer := parquet.NewGenericWriter[ColorProfile](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteEmotionEntriesParquet writes a slice of EmotionEntry structs to a Parquet file.
func WriteEmotionEntriesParquet(data []EmotionEntry, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the EmotionEntry struct tags
	writer := parquet.NewGenericWriter[EmotionEntry](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteWeeklyAggregatesParquet writes a slice of WeeklyAggregate structs to a Parquet file.
func WriteWeeklyAggregatesParquet(data []WeeklyAggregate, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the WeeklyAggregate struct tags
	writer := parquet.NewGenericWriter[WeeklyAggregate](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteFeedbackParquet writes a slice of Feedback structs to a Parquet file.
func WriteFeedbackParquet(data []Feedback, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the Feedback struct tags
	writer := parquet.NewGenericWriter[Feedback](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteSessionsParquet writes a slice of Session structs to a Parquet file.
func WriteSessionsParquet(data []Session, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the Session struct tags
	writer := parquet.NewGenericWriter[Session](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// MockFetchEmotionEntries generates sample EmotionEntry data for demonstration.
func MockFetchEmotionEntries() []EmotionEntry {
	now := time.Now()

	return []EmotionEntry{
		{
			UserID:       "juno",
			Anxiety:      60,
			Stress:       30,
			Satisfaction: 0,
			Happiness:    0,
			Depression:   0,
			Dominant:     "anxiety",
			TextLength:   24,
			RecordedAt:   now.Add(-36 * time.Hour),
		},
		{
			UserID:       "juno",
			Anxiety:      0,
			Stress:       0,
			Satisfaction: 30,
			Happiness:    60,
			Depression:   0,
			Dominant:     "happiness",
			TextLength:   18,
			RecordedAt:   now.Add(-12 * time.Hour),
		},
		{
			UserID:       "mina",
			Anxiety:      0,
			Stress:       90,
			Satisfaction: 0,
			Happiness:    0,
			Depression:   30,
			Dominant:     "stress",
			TextLength:   42,
			RecordedAt:   now.Add(-2 * time.Hour),
		},
	}
}

// MockFetchSessions generates sample Session data for demonstration.
func MockFetchSessions() []Session {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := now.Add(-1*time.Hour - 50*time.Minute)
	durationMs1 := int32(endTime1.Sub(startTime1).Milliseconds())
	configParams1 := `{"user":"juno","format":"table","workers":4}`

	startTime2 := now.Add(-10 * time.Minute)
	// Note: endTime2, durationMs2, configParams2 are nil to demonstrate nullable fields

	return []Session{
		{
			SessionID:     "7f9c24e5-2f31-4af5-9d62-0b8cb4e20a01",
			StartTime:     startTime1,
			EndTime:       &endTime1,
			RunDurationMs: &durationMs1,
			Operations:    3,
			ConfigParams:  &configParams1,
		},
		{
			SessionID:     "b3a1c572-88d0-4a22-a4fe-5c1a4f0e9d77",
			StartTime:     startTime2,
			EndTime:       nil, // Still running - nullable field
			RunDurationMs: nil, // Not yet calculated - nullable field
			Operations:    0,
			ConfigParams:  nil, // No config stored - nullable field
		},
	}
}

// ConvertColorObservations converts schema.ColorObservation to ColorProfile for Parquet export.
func ConvertColorObservations(records []schema.ColorObservation) []ColorProfile {
	result := make([]ColorProfile, len(records))
	for i, record := range records {
		paletteJSON, _ := json.Marshal(record.Palette)
		result[i] = ColorProfile{
			UserID:         record.UserID,
			Season:         string(record.Season),
			Subtype:        string(record.Subtype),
			Label:          record.Label,
			Confidence:     record.Confidence,
			Source:         string(record.Source),
			FallbackReason: record.FallbackReason,
			Palette:        string(paletteJSON),
			AnalyzedAt:     record.AnalyzedAt,
		}
	}
	return result
}

// ConvertEmotionObservations converts schema.EmotionObservation to EmotionEntry for Parquet export.
func ConvertEmotionObservations(records []schema.EmotionObservation) []EmotionEntry {
	result := make([]EmotionEntry, len(records))
	for i, record := range records {
		result[i] = EmotionEntry{
			UserID:       record.UserID,
			Anxiety:      record.Scores.Anxiety,
			Stress:       record.Scores.Stress,
			Satisfaction: record.Scores.Satisfaction,
			Happiness:    record.Scores.Happiness,
			Depression:   record.Scores.Depression,
			Dominant:     string(record.Dominant),
			TextLength:   int32(record.TextLength),
			RecordedAt:   record.RecordedAt,
		}
	}
	return result
}

// ConvertWeeklyAggregates converts schema.WeeklyAggregate to WeeklyAggregate for Parquet export.
func ConvertWeeklyAggregates(records []schema.WeeklyAggregate) []WeeklyAggregate {
	result := make([]WeeklyAggregate, len(records))
	for i, record := range records {
		result[i] = WeeklyAggregate{
			UserID:           record.UserID,
			WeekStart:        record.WeekStart,
			AvgAnxiety:       record.Averages.Anxiety,
			AvgStress:        record.Averages.Stress,
			AvgSatisfaction:  record.Averages.Satisfaction,
			AvgHappiness:     record.Averages.Happiness,
			AvgDepression:    record.Averages.Depression,
			ActiveDays:       int32(record.ActiveDays),
			TotalEntries:     int32(record.TotalEntries),
			MoodImprovement:  record.MoodImprovement,
			StressRelief:     record.StressRelief,
			ColorImprovement: record.ColorImprovement,
			Insight:          record.Insight,
			Advice:           record.Advice,
			ComputedAt:       record.ComputedAt,
		}
	}
	return result
}

// ConvertFeedbackRecords converts schema.FeedbackRecord to Feedback for Parquet export.
func ConvertFeedbackRecords(records []schema.FeedbackRecord) []Feedback {
	result := make([]Feedback, len(records))
	for i, record := range records {
		result[i] = Feedback{
			UserID:      record.UserID,
			Rating:      int32(record.Rating),
			TargetType:  record.TargetType,
			TargetID:    record.TargetID,
			Comment:     record.Comment,
			SubmittedAt: record.SubmittedAt,
		}
	}
	return result
}

// ConvertSessionRecords converts schema.SessionRecord to Session for Parquet export.
func ConvertSessionRecords(records []schema.SessionRecord) []Session {
	result := make([]Session, len(records))
	for i, record := range records {
		result[i] = Session{
			SessionID:     record.SessionID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			Operations:    record.Operations,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}
