// Package schema has models, enums and shared types for all parts of tonelab.
package schema

import "time"

// Pixel is an 8-bit sRGB pixel.
type Pixel struct {
	R uint8
	G uint8
	B uint8
}

// EmotionScores holds one score per tracked emotion axis.
// Scores are bounded to [0, 100].
type EmotionScores struct {
	Anxiety      float64 `json:"anxiety"`
	Stress       float64 `json:"stress"`
	Satisfaction float64 `json:"satisfaction"`
	Happiness    float64 `json:"happiness"`
	Depression   float64 `json:"depression"`
}

// Get returns the score for a single axis.
func (s EmotionScores) Get(axis Axis) float64 {
	switch axis {
	case AnxietyAxis:
		return s.Anxiety
	case StressAxis:
		return s.Stress
	case SatisfactionAxis:
		return s.Satisfaction
	case HappinessAxis:
		return s.Happiness
	case DepressionAxis:
		return s.Depression
	default:
		return 0
	}
}

// Set stores the score for a single axis. Unknown axes are ignored.
func (s *EmotionScores) Set(axis Axis, value float64) {
	switch axis {
	case AnxietyAxis:
		s.Anxiety = value
	case StressAxis:
		s.Stress = value
	case SatisfactionAxis:
		s.Satisfaction = value
	case HappinessAxis:
		s.Happiness = value
	case DepressionAxis:
		s.Depression = value
	}
}

// AsMap converts the scores to an axis-keyed map in canonical axis order.
func (s EmotionScores) AsMap() map[Axis]float64 {
	out := make(map[Axis]float64, len(AllAxes))
	for _, axis := range AllAxes {
		out[axis] = s.Get(axis)
	}
	return out
}

// Classification is the outcome of a skin-tone analysis.
type Classification struct {
	Season     Season  `json:"season"`
	Subtype    Subtype `json:"subtype"`
	Confidence float64 `json:"confidence"` // 0.0 to 1.0
}

// Tone derives the undertone from the subtype.
func (c Classification) Tone() Tone {
	return DeriveTone(c.Subtype)
}

// ClassificationResult wraps a Classification with its provenance.
// Degraded inputs still yield a usable classification; Source and
// FallbackReason tell the caller which path produced it.
type ClassificationResult struct {
	Classification
	Source         ClassificationSource `json:"source"`
	FallbackReason string               `json:"fallback_reason,omitempty"`
}

// Measured wraps a classification computed from actual pixel data.
func Measured(c Classification) ClassificationResult {
	return ClassificationResult{Classification: c, Source: MeasuredSource}
}

// Fallback wraps the default classification along with the reason the
// measured path was not taken.
func Fallback(c Classification, reason string) ClassificationResult {
	return ClassificationResult{Classification: c, Source: FallbackSource, FallbackReason: reason}
}

// PaletteColor is a single curated color entry.
type PaletteColor struct {
	Name        string `json:"name"`
	Hex         string `json:"hex"`
	Description string `json:"description,omitempty"`
}

// HealingColor is a color paired with its emotional effect.
type HealingColor struct {
	Name   string `json:"name"`
	Hex    string `json:"hex"`
	Effect string `json:"effect"`
}

// ColorObservation is the current color profile for a user.
// Each user has at most one; re-analysis replaces the previous row.
type ColorObservation struct {
	UserID         string               `json:"user_id"`
	Season         Season               `json:"season"`
	Subtype        Subtype              `json:"subtype"`
	Label          string               `json:"label"`
	Confidence     float64              `json:"confidence"`
	Source         ClassificationSource `json:"source"`
	FallbackReason string               `json:"fallback_reason,omitempty"`
	Description    string               `json:"description"`
	Palette        []PaletteColor       `json:"palette"`
	AnalyzedAt     time.Time            `json:"analyzed_at"`
}

// Tone derives the undertone from the stored subtype.
func (o ColorObservation) Tone() Tone {
	return DeriveTone(o.Subtype)
}

// EmotionObservation is one recorded emotion analysis.
// Observations are append-only; history reads return them latest first.
// TextLength is stored instead of the source text.
type EmotionObservation struct {
	UserID     string        `json:"user_id"`
	Scores     EmotionScores `json:"scores"`
	Dominant   Axis          `json:"dominant"`
	TextLength int           `json:"text_length"`
	RecordedAt time.Time     `json:"recorded_at"`
}

// WeeklyAggregate summarizes one user's emotion observations for a single
// week starting at Monday 00:00 UTC.
type WeeklyAggregate struct {
	UserID           string        `json:"user_id"`
	WeekStart        time.Time     `json:"week_start"`
	Averages         EmotionScores `json:"averages"`
	ActiveDays       int           `json:"active_days"`
	TotalEntries     int           `json:"total_entries"`
	MoodImprovement  float64       `json:"mood_improvement"`
	StressRelief     float64       `json:"stress_relief"`
	ColorImprovement float64       `json:"color_improvement"`
	Insight          string        `json:"insight"`
	Advice           string        `json:"advice"`
	ComputedAt       time.Time     `json:"computed_at"`
}

// DailyHealing is the healing color selected for a user on a single day.
type DailyHealing struct {
	UserID      string       `json:"user_id"`
	Date        time.Time    `json:"date"` // UTC midnight
	Color       PaletteColor `json:"color"`
	CalmEffect  string       `json:"calm_effect"`
	PersonalFit string       `json:"personal_fit"`
	Affirmation string       `json:"daily_affirmation"`
}

// RecommendationItem is one curated fashion, food or activity suggestion.
type RecommendationItem struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// RecommendationSet is the full response for a recommendation lookup.
type RecommendationSet struct {
	Color      PaletteColor         `json:"color"`
	Items      []RecommendationItem `json:"items"`
	Foods      []RecommendationItem `json:"foods"`
	Activities []RecommendationItem `json:"activities"`
}
