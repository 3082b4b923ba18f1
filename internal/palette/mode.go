// Package palette generates ordered colour palettes, either uniformly at
// random or by deriving related colours from a base colour with a harmony
// rule.
package palette

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidMode is returned for a mode outside the defined set.
var ErrInvalidMode = errors.New("invalid palette mode")

// Mode selects how a palette is generated.
type Mode string

const (
	// ModeRandom draws every colour independently at random.
	ModeRandom Mode = "random"
	// ModeMonochromatic fans lightness and saturation around the base hue.
	ModeMonochromatic Mode = "monochromatic"
	// ModeAnalogous sweeps adjacent hues in 30° steps.
	ModeAnalogous Mode = "analogous"
	// ModeComplementary pairs the base with the hue opposite it.
	ModeComplementary Mode = "complementary"
	// ModeTriadic spaces three hues 120° apart.
	ModeTriadic Mode = "triadic"
)

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}

// IsHarmony reports whether the mode derives colours from a base colour.
func (m Mode) IsHarmony() bool {
	return slices.Contains(HarmonyModes(), m)
}

// Modes returns every valid mode.
func Modes() []Mode {
	return append([]Mode{ModeRandom}, HarmonyModes()...)
}

// HarmonyModes returns the modes accepted by Generator.Harmonious.
func HarmonyModes() []Mode {
	return []Mode{ModeMonochromatic, ModeAnalogous, ModeComplementary, ModeTriadic}
}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Modes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("%w: %s (valid: %s)", ErrInvalidMode, s, joinModes(Modes()))
}

func joinModes(modes []Mode) string {
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}
