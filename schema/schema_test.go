package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmotionScoresGetSet(t *testing.T) {
	var scores EmotionScores
	for i, axis := range AllAxes {
		scores.Set(axis, float64((i+1)*10))
	}

	assert.Equal(t, 10.0, scores.Get(AnxietyAxis))
	assert.Equal(t, 20.0, scores.Get(StressAxis))
	assert.Equal(t, 30.0, scores.Get(SatisfactionAxis))
	assert.Equal(t, 40.0, scores.Get(HappinessAxis))
	assert.Equal(t, 50.0, scores.Get(DepressionAxis))

	// Unknown axes neither panic nor mutate.
	scores.Set(Axis("boredom"), 99)
	assert.Equal(t, 0.0, scores.Get(Axis("boredom")))
}

func TestEmotionScoresAsMap(t *testing.T) {
	scores := EmotionScores{Anxiety: 60, Happiness: 30}
	m := scores.AsMap()

	assert.Len(t, m, len(AllAxes))
	assert.Equal(t, 60.0, m[AnxietyAxis])
	assert.Equal(t, 30.0, m[HappinessAxis])
	assert.Equal(t, 0.0, m[StressAxis])
}

func TestClassificationTone(t *testing.T) {
	warm := Classification{Season: AutumnSeason, Subtype: DeepSubtype, Confidence: 0.9}
	cool := Classification{Season: SummerSeason, Subtype: SoftSubtype, Confidence: 0.7}

	assert.Equal(t, WarmTone, warm.Tone())
	assert.Equal(t, CoolTone, cool.Tone())
}

func TestClassificationResultVariants(t *testing.T) {
	c := Classification{Season: SummerSeason, Subtype: CoolSubtype, Confidence: 0.5}

	measured := Measured(c)
	assert.Equal(t, MeasuredSource, measured.Source)
	assert.Empty(t, measured.FallbackReason)

	fallback := Fallback(c, FallbackEmptyMask)
	assert.Equal(t, FallbackSource, fallback.Source)
	assert.Equal(t, FallbackEmptyMask, fallback.FallbackReason)
	assert.Equal(t, c, fallback.Classification)
}
