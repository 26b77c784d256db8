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

func lavenderHealing() schema.DailyHealing {
	return schema.DailyHealing{
		UserID:      "juno",
		Date:        time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Color:       schema.PaletteColor{Name: "라벤더", Hex: "#E6E6FA"},
		CalmEffect:  "마음을 진정시키고 불안을 완화합니다",
		PersonalFit: "Summer Cool 톤과 잘 어울립니다",
		Affirmation: "오늘 하루도 당신은 충분히 멋집니다.",
	}
}

func TestWriteHealingText(t *testing.T) {
	cfg := &contract.Config{
		Output:    schema.TextOut,
		UseEmojis: false,
	}

	var buf bytes.Buffer
	err := writeHealingText(&buf, lavenderHealing(), false, cfg)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Healing Color of the Day")
	assert.Contains(t, output, "========================")
	assert.Contains(t, output, "Date: 2025-06-02 (user: juno)")
	assert.Contains(t, output, "Color: 라벤더 (#E6E6FA)")
	assert.Contains(t, output, "마음을 진정시키고 불안을 완화합니다")
	assert.Contains(t, output, "오늘 하루도 당신은 충분히 멋집니다.")
	assert.NotContains(t, output, "Served from memo cache")
}

func TestWriteHealingTextCached(t *testing.T) {
	cfg := &contract.Config{
		Output:    schema.TextOut,
		UseEmojis: true,
	}

	var buf bytes.Buffer
	err := writeHealingText(&buf, lavenderHealing(), true, cfg)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "🌿 Healing Color of the Day")
	assert.Contains(t, output, "💬 오늘 하루도 당신은 충분히 멋집니다.")
	assert.Contains(t, output, "Served from memo cache")
}

func TestPrintDailyHealingJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "healing.json")
	cfg := &contract.Config{
		Output:     schema.JSONOut,
		OutputFile: tmpFile,
	}

	err := PrintDailyHealing(lavenderHealing(), true, cfg)
	require.NoError(t, err)

	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)

	var result map[string]any
	err = json.Unmarshal(content, &result)
	require.NoError(t, err)

	assert.Equal(t, true, result["cached"])
	assert.Equal(t, "오늘 하루도 당신은 충분히 멋집니다.", result["daily_affirmation"])
}

func TestWriteRecommendationsTable(t *testing.T) {
	set := schema.RecommendationSet{
		Color: schema.PaletteColor{Name: "라벤더", Hex: "#E6E6FA"},
		Items: []schema.RecommendationItem{
			{ID: "f4", Type: "fashion", Title: "라벤더 원피스", Description: "우아한 라벤더 컬러 린넨 원피스", Color: "#E6E6FA"},
			{ID: "f5", Type: "fashion", Title: "스카이 블루 셔츠", Description: "시원한 스카이 블루 면 셔츠", Color: "#87CEEB"},
		},
		Foods: []schema.RecommendationItem{
			{ID: "fd4", Type: "food", Title: "블루베리 스무디", Description: "항산화 성분 가득 블루베리 스무디", Color: "#4169E1"},
		},
		Activities: []schema.RecommendationItem{
			{ID: "a1", Type: "activity", Title: "명상", Description: "라벤더 향과 함께하는 10분 명상", Color: "#E6E6FA"},
		},
	}
	cfg := &contract.Config{
		Output: schema.TextOut,
		Width:  120,
	}

	var buf bytes.Buffer
	err := writeRecommendationsTable(&buf, set, cfg)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Recommendations for 라벤더 (#E6E6FA)")
	assert.Contains(t, output, "라벤더 원피스")
	assert.Contains(t, output, "블루베리 스무디")
	assert.Contains(t, output, "명상")
	assert.Contains(t, output, "Showing 4 recommendations")
}

func TestPrintRecommendationsJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "recommend.json")
	cfg := &contract.Config{
		Output:     schema.JSONOut,
		OutputFile: tmpFile,
	}

	set := schema.RecommendationSet{
		Color: schema.PaletteColor{Name: "라벤더", Hex: "#E6E6FA"},
		Items: []schema.RecommendationItem{
			{ID: "f4", Type: "fashion", Title: "라벤더 원피스", Description: "우아한 라벤더 컬러 린넨 원피스", Color: "#E6E6FA"},
		},
	}
	err := PrintRecommendations(set, cfg)
	require.NoError(t, err)

	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)

	var result map[string]any
	err = json.Unmarshal(content, &result)
	require.NoError(t, err)

	require.Contains(t, result, "color")
	require.Contains(t, result, "items")
	assert.Len(t, result["items"], 1)
}

func TestWriteFeedbackText(t *testing.T) {
	fb := schema.FeedbackRecord{
		UserID:      "juno",
		Rating:      4,
		TargetType:  schema.FeedbackColorResult,
		TargetID:    "result-1",
		Comment:     "톤이 정확해요",
		SubmittedAt: time.Date(2025, 6, 2, 21, 0, 0, 0, time.UTC),
	}
	cfg := &contract.Config{
		Output:    schema.TextOut,
		UseEmojis: false,
	}

	var buf bytes.Buffer
	err := writeFeedbackText(&buf, fb, cfg)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Feedback recorded for juno")
	assert.Contains(t, output, "Rating: 4/5 (color_result: result-1)")
	assert.Contains(t, output, "Comment: 톤이 정확해요")
}

func TestWriteFeedbackTextNoComment(t *testing.T) {
	fb := schema.FeedbackRecord{
		UserID:     "juno",
		Rating:     5,
		TargetType: schema.FeedbackHealingColor,
		TargetID:   "2025-06-02",
	}
	cfg := &contract.Config{Output: schema.TextOut}

	var buf bytes.Buffer
	err := writeFeedbackText(&buf, fb, cfg)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Rating: 5/5 (healing_color: 2025-06-02)")
	assert.NotContains(t, buf.String(), "Comment:")
}
