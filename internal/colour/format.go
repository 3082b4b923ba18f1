package colour

import (
	"fmt"
	"slices"
	"strings"
)

// Format selects a textual representation of a Color.
type Format string

const (
	// FormatHex renders "#RRGGBB" in upper case.
	FormatHex Format = "hex"
	// FormatRGB renders "rgb(r, g, b)".
	FormatRGB Format = "rgb"
	// FormatHSL renders "hsl(h, s%, l%)".
	FormatHSL Format = "hsl"
)

// Formats returns the supported colour formats.
func Formats() []Format {
	return []Format{FormatHex, FormatRGB, FormatHSL}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if slices.Contains(Formats(), f) {
		return f, nil
	}
	return "", fmt.Errorf("invalid colour format: %s (valid: hex, rgb, hsl)", s)
}

// Format returns the colour rendered in the given format.
// Unknown formats fall back to the stored hex string.
func (c Color) Format(f Format) string {
	switch f {
	case FormatHex:
		return strings.ToUpper(c.Hex)
	case FormatRGB:
		return c.RGB.String()
	case FormatHSL:
		return c.HSL.String()
	default:
		return c.Hex
	}
}
