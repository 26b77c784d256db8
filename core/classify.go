package core

import (
	"math"

	"github.com/embeau/tonelab/core/colorspace"
	"github.com/embeau/tonelab/schema"
)

// Classification thresholds on the 8-bit Lab scale produced by colorspace.Convert.
const (
	warmThresholdB  = 135.0 // b* above this reads as a warm undertone
	lightThresholdL = 170.0 // L* above this reads as a light complexion
	deepThresholdL  = 130.0 // L* at or below this reads as a deep complexion

	baseConfidence   = 0.6  // confidence floor for a measured classification
	maxConfidence    = 0.95 // measured confidence never reaches certainty
	undertoneSpread  = 30.0 // b* distance from neutral that saturates confidence
	confidenceWeight = 0.3  // share of confidence driven by undertone strength
)

// DefaultClassification is the neutral result used whenever no usable skin
// pixels are available. It is reported through a fallback variant, never as
// an error.
func DefaultClassification() schema.Classification {
	return schema.Classification{
		Season:     schema.SummerSeason,
		Subtype:    schema.CoolSubtype,
		Confidence: 0.5,
	}
}

// ClassifyLab maps mean skin Lab coordinates to a seasonal classification.
// Higher b* means a warmer (yellow) undertone, lower b* a cooler (blue) one.
// Lightness splits the warm and cool branches into light, medium and deep
// complexions.
func ClassifyLab(l, b float64) schema.Classification {
	warm := b > warmThresholdB

	var season schema.Season
	var subtype schema.Subtype
	switch {
	case l > lightThresholdL:
		if warm {
			season, subtype = schema.SpringSeason, schema.LightSubtype
		} else {
			season, subtype = schema.SummerSeason, schema.LightSubtype
		}
	case l > deepThresholdL:
		if warm {
			season, subtype = schema.AutumnSeason, schema.WarmSubtype
		} else {
			season, subtype = schema.SummerSeason, schema.CoolSubtype
		}
	default:
		if warm {
			season, subtype = schema.AutumnSeason, schema.DeepSubtype
		} else {
			season, subtype = schema.WinterSeason, schema.DeepSubtype
		}
	}

	return schema.Classification{
		Season:     season,
		Subtype:    subtype,
		Confidence: undertoneConfidence(b),
	}
}

// undertoneConfidence grows with the distance of b* from the warm/cool
// boundary. Samples near the boundary are ambiguous and stay at the floor.
func undertoneConfidence(b float64) float64 {
	strength := math.Abs(b-warmThresholdB) / undertoneSpread
	if strength > 1 {
		strength = 1
	}
	return math.Min(maxConfidence, baseConfidence+confidenceWeight*strength)
}

// ClassifySkinTone classifies the masked skin region of a decoded image.
// The mask is row-major and parallel to pixels; an empty selection degrades
// to the neutral default rather than failing.
func ClassifySkinTone(pixels []schema.Pixel, mask []bool) schema.ClassificationResult {
	mean, count := colorspace.MeanLab(pixels, mask)
	if count == 0 {
		return schema.Fallback(DefaultClassification(), schema.FallbackEmptyMask)
	}
	return schema.Measured(ClassifyLab(mean.L, mean.B))
}
