// Package colour provides conversion between hex, RGB and HSL colour
// representations and the immutable Color value built from them.
package colour

import (
	"fmt"
	"strings"
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// HSL represents a colour in HSL format.
// H is in degrees [0, 360), S and L are integer percentages [0, 100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// String returns the HSL colour as a string in the format "hsl(h, s%, l%)".
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hsl.H, hsl.S, hsl.L)
}

// Color is an immutable colour carrying three redundant representations
// and an approximate human-readable name. Values are only built by New,
// MustNew, FromRGB and FromHSL, which keep the representations consistent.
type Color struct {
	Hex  string `json:"hex"`
	RGB  RGB    `json:"rgb"`
	HSL  HSL    `json:"hsl"`
	Name string `json:"name,omitempty"`
}

// New builds a fully populated Color from a hex string.
// The hex string is kept as supplied, with a "#" prepended when missing.
func New(hex string) (Color, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return Color{}, err
	}

	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	hsl := RGBToHSL(rgb)
	return Color{
		Hex:  hex,
		RGB:  rgb,
		HSL:  hsl,
		Name: NameHSL(hsl),
	}, nil
}

// MustNew is like New but panics if the hex string is malformed.
func MustNew(hex string) Color {
	c, err := New(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// FromRGB builds a Color from an RGB triple.
func FromRGB(rgb RGB) Color {
	hsl := RGBToHSL(rgb)
	return Color{
		Hex:  rgb.Hex(),
		RGB:  rgb,
		HSL:  hsl,
		Name: NameHSL(hsl),
	}
}

// FromHSL builds a Color from hue (degrees) and saturation/lightness (percent).
// Out-of-range inputs are wrapped (hue) or clamped (saturation, lightness).
func FromHSL(h, s, l float64) Color {
	return FromRGB(HSLToRGB(h, s, l))
}

// RGBA implements image/color.Color. Colours are always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.RGB.R)
	r |= r << 8
	g = uint32(c.RGB.G)
	g |= g << 8
	b = uint32(c.RGB.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// String returns the colour hex code followed by its name.
func (c Color) String() string {
	if c.Name == "" {
		return c.Hex
	}
	return fmt.Sprintf("%s (%s)", c.Hex, c.Name)
}
