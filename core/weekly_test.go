package core

import (
	"testing"
	"time"

	"github.com/embeau/tonelab/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obsAt(at time.Time, scores schema.EmotionScores) schema.EmotionObservation {
	return schema.EmotionObservation{UserID: "mina", Scores: scores, RecordedAt: at}
}

func TestAggregateWeek_EmptyWeek(t *testing.T) {
	weekStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	agg := AggregateWeek("mina", weekStart, nil, nil)

	assert.Equal(t, "mina", agg.UserID)
	assert.Equal(t, weekStart, agg.WeekStart)
	assert.Equal(t, schema.EmotionScores{}, agg.Averages)
	assert.Zero(t, agg.ActiveDays)
	assert.Zero(t, agg.TotalEntries)
	assert.Zero(t, agg.MoodImprovement)
	assert.Zero(t, agg.StressRelief)
	assert.Zero(t, agg.ColorImprovement)
	assert.Equal(t, emptyWeekInsight, agg.Insight)
	assert.Equal(t, emptyWeekAdvice, agg.Advice)
}

func TestAggregateWeek_AveragesAndActiveDays(t *testing.T) {
	weekStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	entries := []schema.EmotionObservation{
		obsAt(weekStart.Add(9*time.Hour), schema.EmotionScores{Happiness: 80, Stress: 20}),
		obsAt(weekStart.Add(20*time.Hour), schema.EmotionScores{Happiness: 40, Stress: 40}),
		obsAt(weekStart.AddDate(0, 0, 2), schema.EmotionScores{Happiness: 60, Stress: 30}),
	}

	agg := AggregateWeek("mina", weekStart, entries, nil)

	assert.InDelta(t, 60.0, agg.Averages.Happiness, 1e-9)
	assert.InDelta(t, 30.0, agg.Averages.Stress, 1e-9)
	assert.Equal(t, 2, agg.ActiveDays) // two entries share the first day
	assert.Equal(t, 3, agg.TotalEntries)
	assert.InDelta(t, 30.0, agg.ColorImprovement, 1e-9)
}

func TestAggregateWeek_ActiveDaysUseUTC(t *testing.T) {
	weekStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	kst := time.FixedZone("KST", 9*3600)

	// 2025-06-03 08:00 KST is 23:00 UTC the day before, so both entries
	// land on the same UTC day.
	entries := []schema.EmotionObservation{
		obsAt(weekStart.Add(10*time.Hour), schema.EmotionScores{Happiness: 50}),
		obsAt(time.Date(2025, 6, 3, 8, 0, 0, 0, kst), schema.EmotionScores{Happiness: 70}),
	}

	agg := AggregateWeek("mina", weekStart, entries, nil)
	assert.Equal(t, 1, agg.ActiveDays)
}

func TestAggregateWeek_MoodImprovementClampedAtBound(t *testing.T) {
	weekStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	entries := []schema.EmotionObservation{
		obsAt(weekStart.Add(time.Hour), schema.EmotionScores{Happiness: 80}),
	}
	prev := &PrevWeekBaseline{Happiness: 40, Stress: 50}

	agg := AggregateWeek("mina", weekStart, entries, prev)

	// (80-40)/40 doubles the baseline, exactly at the +100 bound.
	assert.InDelta(t, 100.0, agg.MoodImprovement, 1e-9)
	assert.InDelta(t, 100.0, agg.StressRelief, 1e-9)
}

func TestAggregateWeek_DefaultBaseline(t *testing.T) {
	weekStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	entries := []schema.EmotionObservation{
		obsAt(weekStart.Add(time.Hour), schema.EmotionScores{Happiness: 75, Stress: 25}),
	}

	agg := AggregateWeek("mina", weekStart, entries, nil)

	// No prior week: both baselines default to 50.
	assert.InDelta(t, 50.0, agg.MoodImprovement, 1e-9)
	assert.InDelta(t, 50.0, agg.StressRelief, 1e-9)
}

func TestAggregateWeek_ClampsNegativeSwing(t *testing.T) {
	weekStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	entries := []schema.EmotionObservation{
		obsAt(weekStart.Add(time.Hour), schema.EmotionScores{Stress: 100}),
	}
	prev := &PrevWeekBaseline{Happiness: 90, Stress: 10}

	agg := AggregateWeek("mina", weekStart, entries, prev)

	// Stress jumping 10 to 100 is -900% raw and clamps to the bound.
	assert.InDelta(t, -100.0, agg.MoodImprovement, 1e-9)
	assert.InDelta(t, -100.0, agg.StressRelief, 1e-9)
}

func TestAggregateWeek_InsightBranches(t *testing.T) {
	weekStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		scores  schema.EmotionScores
		insight string
	}{
		{
			name:    "positive week",
			scores:  schema.EmotionScores{Happiness: 80, Satisfaction: 70},
			insight: "이번 주는 전반적으로 긍정적인 감정이 우세했습니다. 좋은 한 주였네요!",
		},
		{
			name:    "stressful week",
			scores:  schema.EmotionScores{Stress: 90, Anxiety: 70},
			insight: "이번 주는 스트레스가 높았던 것 같습니다. 충분한 휴식이 필요해 보여요.",
		},
		{
			name:    "anxious week",
			scores:  schema.EmotionScores{Anxiety: 70, Stress: 30},
			insight: "불안한 마음이 많았던 한 주였네요. 당신의 감정은 충분히 이해됩니다.",
		},
		{
			name:    "mixed week",
			scores:  schema.EmotionScores{Happiness: 30, Anxiety: 40, Stress: 40, Depression: 20},
			insight: "다양한 감정을 경험한 한 주였습니다.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := []schema.EmotionObservation{obsAt(weekStart.Add(time.Hour), tt.scores)}
			agg := AggregateWeek("mina", weekStart, entries, nil)
			assert.Equal(t, tt.insight, agg.Insight)
			assert.NotEmpty(t, agg.Advice)
		})
	}
}

func TestBaselineFromEntries(t *testing.T) {
	assert.Nil(t, BaselineFromEntries(nil))

	entries := []schema.EmotionObservation{
		obsAt(time.Now(), schema.EmotionScores{Happiness: 40, Stress: 60}),
		obsAt(time.Now(), schema.EmotionScores{Happiness: 60, Stress: 20}),
	}

	got := BaselineFromEntries(entries)
	require.NotNil(t, got)
	assert.InDelta(t, 50.0, got.Happiness, 1e-9)
	assert.InDelta(t, 40.0, got.Stress, 1e-9)
}

func TestAggregateWeek_ColorImprovementCapsAtSevenDays(t *testing.T) {
	weekStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	var entries []schema.EmotionObservation
	for day := 0; day < 7; day++ {
		entries = append(entries, obsAt(weekStart.AddDate(0, 0, day), schema.EmotionScores{Happiness: 60}))
	}

	agg := AggregateWeek("mina", weekStart, entries, nil)

	assert.Equal(t, 7, agg.ActiveDays)
	// 7 days x 15 points exceeds the cap.
	assert.InDelta(t, 100.0, agg.ColorImprovement, 1e-9)
}
