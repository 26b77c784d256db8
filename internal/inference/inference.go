// Package inference has the pluggable analysis providers.
package inference

import (
	"fmt"
	"math"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/schema"
)

// Context bundles the providers used during analysis. This allows the core
// analysis logic to be tested without real models or provider processes.
type Context struct {
	// Segmenter produces the skin mask for color analysis.
	Segmenter contract.Segmenter

	// TextScorer optionally delegates emotion scoring to an external
	// provider. When nil the builtin keyword scorer applies.
	TextScorer contract.TextScorer
}

// NewContext creates a provider context with the default heuristic
// segmenter and no external text scorer.
func NewContext() *Context {
	return &Context{
		Segmenter: NewHeuristicSegmenter(),
	}
}

// ValidateScores rejects provider output with scores outside the 0-100
// range. Provider responses are untrusted input.
func ValidateScores(scores schema.EmotionScores) error {
	for _, axis := range schema.AllAxes {
		v := scores.Get(axis)
		if math.IsNaN(v) || v < 0 || v > 100 {
			return fmt.Errorf("axis %s out of range: %v", axis, v)
		}
	}
	return nil
}
