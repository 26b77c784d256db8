// Package colorspace converts sRGB pixel data to the CIELAB color space.
//
// Values follow the 8-bit convention used by mainstream imaging pipelines:
// L is scaled from [0, 100] to [0, 255], and both a and b carry a +128
// offset. The skin-tone thresholds elsewhere in this module are expressed
// on that scale.
package colorspace

import (
	"math"

	"github.com/embeau/tonelab/schema"
)

// D65 reference white, normalized to Y = 1.
const (
	refWhiteX = 0.950456
	refWhiteZ = 1.088754
)

// Lab is a color in the 8-bit-scaled CIELAB convention.
type Lab struct {
	L float64 // lightness, 0-255
	A float64 // green-red, +128 offset
	B float64 // blue-yellow, +128 offset
}

// srgbToLinear removes the sRGB gamma from a normalized channel value.
func srgbToLinear(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

// labF is the CIELAB forward transform applied per tristimulus component.
func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

// Convert transforms one sRGB pixel to Lab.
func Convert(p schema.Pixel) Lab {
	r := srgbToLinear(float64(p.R) / 255.0)
	g := srgbToLinear(float64(p.G) / 255.0)
	b := srgbToLinear(float64(p.B) / 255.0)

	x := (0.412453*r + 0.357580*g + 0.180423*b) / refWhiteX
	y := 0.212671*r + 0.715160*g + 0.072169*b
	z := (0.019334*r + 0.119193*g + 0.950227*b) / refWhiteZ

	fx := labF(x)
	fy := labF(y)
	fz := labF(z)

	var lightness float64
	if y > 0.008856 {
		lightness = 116.0*fy - 16.0
	} else {
		lightness = 903.3 * y
	}

	return Lab{
		L: lightness * 255.0 / 100.0,
		A: 500.0*(fx-fy) + 128.0,
		B: 200.0*(fy-fz) + 128.0,
	}
}

// MeanLab averages the Lab values of the pixels selected by mask and
// returns the mean along with the selected pixel count. A nil mask selects
// every pixel. A mask shorter than pixels selects nothing past its end.
func MeanLab(pixels []schema.Pixel, mask []bool) (Lab, int) {
	var sumL, sumA, sumB float64
	count := 0
	for i, px := range pixels {
		if mask != nil && (i >= len(mask) || !mask[i]) {
			continue
		}
		lab := Convert(px)
		sumL += lab.L
		sumA += lab.A
		sumB += lab.B
		count++
	}
	if count == 0 {
		return Lab{}, 0
	}
	n := float64(count)
	return Lab{L: sumL / n, A: sumA / n, B: sumB / n}, count
}
