package core

import (
	"strings"

	"github.com/embeau/tonelab/schema"
)

// Keyword scoring weights.
const (
	keywordWeight = 30.0  // score added per keyword occurrence
	axisScoreCeil = 100.0 // per-axis ceiling
)

// emotionKeywords drives the fallback text scorer. Matching is a
// case-insensitive substring scan, so conjugated forms such as 불안하다
// still count toward 불안.
var emotionKeywords = map[schema.Axis][]string{
	schema.AnxietyAxis:      {"불안", "걱정", "두려움", "무서움", "초조", "긴장"},
	schema.StressAxis:       {"스트레스", "피곤", "지침", "힘듦", "벅참", "압박"},
	schema.SatisfactionAxis: {"만족", "뿌듯", "성취", "보람", "충족"},
	schema.HappinessAxis:    {"행복", "기쁨", "즐거움", "좋음", "신남", "기분좋"},
	schema.DepressionAxis:   {"우울", "슬픔", "외로움", "공허", "무기력", "우울함"},
}

// ScoreEmotionText computes all five emotion axes from free text by
// counting keyword occurrences. Each occurrence adds a fixed weight and the
// axis score is clamped to [0,100]. Pure and deterministic, this doubles as
// the reference shape that external provider output is validated against.
func ScoreEmotionText(text string) schema.EmotionScores {
	lower := strings.ToLower(text)

	var scores schema.EmotionScores
	for axis, keywords := range emotionKeywords {
		count := 0
		for _, keyword := range keywords {
			count += strings.Count(lower, keyword)
		}
		score := float64(count) * keywordWeight
		if score > axisScoreCeil {
			score = axisScoreCeil
		}
		scores.Set(axis, score)
	}
	return scores
}
