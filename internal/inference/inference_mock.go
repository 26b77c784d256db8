package inference

import (
	"context"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/schema"
	"github.com/stretchr/testify/mock"
)

// MockSegmenter implements the Segmenter interface.
type MockSegmenter struct {
	mock.Mock
}

var _ contract.Segmenter = &MockSegmenter{} // Compile-time check

// SegmentSkin implements the Segmenter interface.
func (m *MockSegmenter) SegmentSkin(ctx context.Context, pixels []schema.Pixel, width, height int) ([]bool, error) {
	args := m.Called(ctx, pixels, width, height)
	mask, _ := args.Get(0).([]bool)
	return mask, args.Error(1)
}

// MockTextScorer implements the TextScorer interface.
type MockTextScorer struct {
	mock.Mock
}

var _ contract.TextScorer = &MockTextScorer{} // Compile-time check

// ScoreText implements the TextScorer interface.
func (m *MockTextScorer) ScoreText(ctx context.Context, text string) (schema.EmotionScores, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(schema.EmotionScores), args.Error(1)
}
