package inference

import (
	"context"
	"fmt"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/schema"
)

// Skin detection thresholds on 8-bit RGB channels.
const (
	minSkinRed     = 95
	minSkinGreen   = 40
	minSkinBlue    = 20
	minSpread      = 15 // max-min channel spread
	minRedGreenGap = 15
)

// HeuristicSegmenter implements the Segmenter interface with a per-pixel
// RGB rule. It needs no model files and runs fully offline.
type HeuristicSegmenter struct{}

var _ contract.Segmenter = &HeuristicSegmenter{} // Compile-time check

// NewHeuristicSegmenter creates a new instance of the heuristic segmenter.
func NewHeuristicSegmenter() *HeuristicSegmenter {
	return &HeuristicSegmenter{}
}

// SegmentSkin implements the Segmenter interface. The mask is parallel to
// pixels; a pixel is marked as skin when it passes every threshold.
func (s *HeuristicSegmenter) SegmentSkin(_ context.Context, pixels []schema.Pixel, width, height int) ([]bool, error) {
	if len(pixels) != width*height {
		return nil, fmt.Errorf("pixel buffer has %d entries for %dx%d image", len(pixels), width, height)
	}

	mask := make([]bool, len(pixels))
	for i, p := range pixels {
		mask[i] = isSkin(p)
	}
	return mask, nil
}

// isSkin applies the classic RGB skin rule: a dominant red channel with a
// wide channel spread.
func isSkin(p schema.Pixel) bool {
	maxC := max(p.R, p.G, p.B)
	minC := min(p.R, p.G, p.B)

	return p.R > minSkinRed &&
		p.G > minSkinGreen &&
		p.B > minSkinBlue &&
		int(maxC)-int(minC) > minSpread &&
		absDiff(p.R, p.G) > minRedGreenGap &&
		p.R > p.G &&
		p.R > p.B
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a) - int(b)
	}
	return int(b) - int(a)
}
