// Package accessibility scores colours and palettes against the WCAG 2.x
// contrast thresholds and a coarse colour-vision-deficiency heuristic.
package accessibility

import (
	"math"

	"github.com/jmylchreest/hueforge/internal/colour"
)

// Luminance weights from ITU-R BT.709.
const (
	weightRed   = 0.2126
	weightGreen = 0.7152
	weightBlue  = 0.0722
)

// RelativeLuminance calculates the relative luminance of a colour according
// to WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(rgb colour.RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)
	return weightRed*r + weightGreen*g + weightBlue*b
}

// gammaCorrect linearises a normalised sRGB channel value.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21 and is symmetric in its
// arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b colour.Color) float64 {
	return contrastRGB(a.RGB, b.RGB)
}

// ContrastRatioHex is ContrastRatio for hex strings.
func ContrastRatioHex(a, b string) (float64, error) {
	ra, err := colour.HexToRGB(a)
	if err != nil {
		return 0, err
	}
	rb, err := colour.HexToRGB(b)
	if err != nil {
		return 0, err
	}
	return contrastRGB(ra, rb), nil
}

func contrastRGB(a, b colour.RGB) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}
