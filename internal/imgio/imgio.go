// Package imgio loads image files into pixel buffers for analysis.
package imgio

import (
	"fmt"
	"image"
	"os"

	// Register decoders for the supported photo formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/embeau/tonelab/schema"
)

// maxSamplePixels bounds how many pixels a single load produces. Larger
// photos are stride-sampled; the mean skin tone is insensitive to the
// skipped pixels.
const maxSamplePixels = 1 << 20

// LoadPixels decodes an image file into an 8-bit RGB pixel buffer in
// row-major order, along with the sampled width and height.
func LoadPixels(path string) ([]schema.Pixel, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to decode image %q: %w", path, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, 0, 0, fmt.Errorf("image %q has no pixels", path)
	}

	stride := sampleStride(width, height)
	sampledW := (width + stride - 1) / stride
	sampledH := (height + stride - 1) / stride

	pixels := make([]schema.Pixel, 0, sampledW*sampledH)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stride {
		for x := bounds.Min.X; x < bounds.Max.X; x += stride {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels = append(pixels, schema.Pixel{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			})
		}
	}
	return pixels, sampledW, sampledH, nil
}

// sampleStride returns the smallest stride keeping the sampled pixel count
// under the cap.
func sampleStride(width, height int) int {
	stride := 1
	for (width/stride)*(height/stride) > maxSamplePixels {
		stride++
	}
	return stride
}
