package palette

import "github.com/jmylchreest/hueforge/internal/colour"

var defaultGenerator = New()

// RandomPalette returns count random colours from the package-level source.
func RandomPalette(count int) []colour.Color {
	return defaultGenerator.Random(count)
}

// HarmoniousPalette derives count colours from base using the package-level
// source for any random fillers.
func HarmoniousPalette(base string, mode Mode, count int) ([]colour.Color, error) {
	return defaultGenerator.Harmonious(base, mode, count)
}

// Hues returns the HSL hue of every colour, in order.
func Hues(colours []colour.Color) []int {
	hues := make([]int, len(colours))
	for i, c := range colours {
		hues[i] = c.HSL.H
	}
	return hues
}
