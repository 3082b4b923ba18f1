package colour

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// ErrInvalidFormat is returned when a hex colour string does not match #RRGGBB.
var ErrInvalidFormat = errors.New("invalid hex colour")

var hexPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// HexToRGB parses a six digit hex colour, with or without a leading "#".
// Shorthand (#RGB) and alpha forms are rejected.
func HexToRGB(hex string) (RGB, error) {
	if !hexPattern.MatchString(hex) {
		return RGB{}, fmt.Errorf("%w: %q (expected #RRGGBB)", ErrInvalidFormat, hex)
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	// The pattern guarantees these parses succeed.
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %w", ErrInvalidFormat, hex, err)
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// RGBToHex encodes channel values as a lowercase "#rrggbb" string.
// Each channel is rounded to the nearest integer and clamped to [0, 255].
func RGBToHex(r, g, b float64) string {
	return RGB{R: channel(r), G: channel(g), B: channel(b)}.Hex()
}

// RGBToHSL converts RGB to HSL with hue in whole degrees [0, 360) and
// saturation/lightness rounded to whole percentages.
func RGBToHSL(rgb RGB) HSL {
	h, s, l := RGBToHSLFloat(rgb)

	hue := int(math.Round(h))
	if hue >= 360 {
		hue -= 360
	}

	return HSL{
		H: hue,
		S: int(math.Round(s)),
		L: int(math.Round(l)),
	}
}

// RGBToHSLFloat converts RGB to unrounded HSL.
// Returns hue (0-360), saturation (0-100), lightness (0-100).
func RGBToHSLFloat(rgb RGB) (h, s, l float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l = (maxVal + minVal) / 2.0

	// Achromatic.
	if delta == 0 {
		return 0, 0, l * 100
	}

	if l > 0.5 {
		s = delta / (2.0 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	return h * 60, s * 100, l * 100
}

// HSLToRGB converts HSL to RGB.
// h is hue in degrees (any value, wrapped to [0, 360)), s and l are
// percentages clamped to [0, 100]. Channels are rounded to the nearest integer.
func HSLToRGB(h, s, l float64) RGB {
	h = WrapHue(h) / 360
	s = clamp(s, 0, 100) / 100
	l = clamp(l, 0, 100) / 100

	if s == 0 {
		v := channel(l * 255)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: channel(hueToRGB(p, q, h+1.0/3) * 255),
		G: channel(hueToRGB(p, q, h) * 255),
		B: channel(hueToRGB(p, q, h-1.0/3) * 255),
	}
}

// hueToRGB is the two control point helper for HSL to RGB conversion.
// t is a hue fraction and may fall one unit outside [0, 1].
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// WrapHue normalises an angle in degrees to [0, 360).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func channel(v float64) uint8 {
	return uint8(clamp(math.Round(v), 0, 255))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
