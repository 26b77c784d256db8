package core

import "github.com/embeau/tonelab/schema"

// SelectDominantEmotion picks the single axis that drives healing-color
// selection. When the positive axes outweigh the negative ones the stronger
// of happiness and satisfaction wins; otherwise the highest negative axis
// wins, with exact ties resolved by declaration order (anxiety before stress
// before depression).
func SelectDominantEmotion(scores schema.EmotionScores) schema.Axis {
	positive := scores.Satisfaction + scores.Happiness
	negative := scores.Anxiety + scores.Stress + scores.Depression

	if positive > negative {
		if scores.Happiness > scores.Satisfaction {
			return schema.HappinessAxis
		}
		return schema.SatisfactionAxis
	}

	dominant := schema.NegativeAxes[0]
	for _, axis := range schema.NegativeAxes[1:] {
		if scores.Get(axis) > scores.Get(dominant) {
			dominant = axis
		}
	}
	return dominant
}
