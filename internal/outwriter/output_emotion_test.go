package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anxiousObservation() schema.EmotionObservation {
	return schema.EmotionObservation{
		UserID: "juno",
		Scores: schema.EmotionScores{
			Anxiety:      60,
			Stress:       30,
			Satisfaction: 50,
			Happiness:    40,
			Depression:   20,
		},
		Dominant:   schema.AnxietyAxis,
		TextLength: 42,
		RecordedAt: time.Date(2025, 6, 2, 21, 0, 0, 0, time.UTC),
	}
}

func TestWriteEmotionTable(t *testing.T) {
	obs := anxiousObservation()
	healing := []schema.HealingColor{
		{Name: "라벤더", Hex: "#E6E6FA", Effect: "마음을 진정시키고 불안을 완화합니다"},
		{Name: "스카이 블루", Hex: "#87CEEB", Effect: "평온함과 안정감을 선사합니다"},
	}
	cfg := &contract.Config{
		Output:       schema.TextOut,
		Precision:    1,
		Workers:      2,
		CacheBackend: schema.SQLiteBackend,
		UseColors:    false,
		Width:        120,
	}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	duration := 100 * time.Millisecond
	err := writeEmotionTable(&buf, obs, healing, cfg, fmtFloat, duration)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Emotion Analysis: juno (dominant: anxiety)")
	assert.Contains(t, output, "60.0")
	assert.Contains(t, output, "High")
	assert.Contains(t, output, "Healing colors for anxiety:")
	assert.Contains(t, output, "라벤더 #E6E6FA: 마음을 진정시키고 불안을 완화합니다")
	assert.Contains(t, output, "Analysis completed in 100ms with 2 workers. Cache backend: sqlite")
}

func TestWriteEmotionTableNoHealing(t *testing.T) {
	obs := anxiousObservation()
	cfg := &contract.Config{
		Output:       schema.TextOut,
		Precision:    1,
		Workers:      1,
		CacheBackend: schema.NoneBackend,
		Width:        120,
	}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeEmotionTable(&buf, obs, nil, cfg, fmtFloat, 10*time.Millisecond)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "Healing colors")
}

func TestPrintEmotionResultJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "emotion.json")
	cfg := &contract.Config{
		Output:     schema.JSONOut,
		Precision:  1,
		OutputFile: tmpFile,
	}

	healing := []schema.HealingColor{{Name: "라벤더", Hex: "#E6E6FA", Effect: "마음을 진정시키고 불안을 완화합니다"}}
	err := PrintEmotionResult(anxiousObservation(), healing, cfg, 25*time.Millisecond)
	require.NoError(t, err)

	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)

	var result map[string]any
	err = json.Unmarshal(content, &result)
	require.NoError(t, err)

	assert.Equal(t, "anxiety", result["dominant"])
	assert.Equal(t, "High", result["label"])
	assert.Len(t, result["healing_colors"], 1)
}

func TestWriteHistoryTable(t *testing.T) {
	entries := []schema.EmotionObservation{
		anxiousObservation(),
		{
			UserID:     "juno",
			Scores:     schema.EmotionScores{Happiness: 85},
			Dominant:   schema.HappinessAxis,
			RecordedAt: time.Date(2025, 6, 1, 21, 0, 0, 0, time.UTC),
		},
	}
	cfg := &contract.Config{
		Output:    schema.TextOut,
		Precision: 1,
		UseColors: false,
		Width:     160,
	}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeHistoryTable(&buf, entries, cfg, fmtFloat)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "2025-06-02T21:00:00Z")
	assert.Contains(t, output, "anxiety")
	assert.Contains(t, output, "85.0")
	assert.Contains(t, output, "Critical")
	assert.Contains(t, output, "Showing last 2 entries")
}

func TestWriteHistoryTableEmpty(t *testing.T) {
	cfg := &contract.Config{
		Output:    schema.TextOut,
		Precision: 1,
		Width:     120,
	}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeHistoryTable(&buf, nil, cfg, fmtFloat)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Showing last 0 entries")
}

func TestPrintEmotionHistoryJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "history.json")
	cfg := &contract.Config{
		Output:     schema.JSONOut,
		Precision:  1,
		OutputFile: tmpFile,
	}

	entries := []schema.EmotionObservation{
		anxiousObservation(),
		{
			UserID:     "juno",
			Scores:     schema.EmotionScores{Stress: 45},
			Dominant:   schema.StressAxis,
			RecordedAt: time.Date(2025, 6, 1, 21, 0, 0, 0, time.UTC),
		},
	}
	err := PrintEmotionHistory(entries, cfg)
	require.NoError(t, err)

	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)

	var result []map[string]any
	err = json.Unmarshal(content, &result)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, float64(1), result[0]["rank"])
	assert.Equal(t, float64(2), result[1]["rank"])
}
