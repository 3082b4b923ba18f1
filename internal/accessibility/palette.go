package accessibility

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/jmylchreest/hueforge/internal/colour"
)

// ErrInsufficientColors is returned when a palette has fewer than two colours.
var ErrInsufficientColors = errors.New("at least two colours are required")

// rankedLimit is the number of best and worst combinations reported.
const rankedLimit = 5

// Combination is one ordered foreground/background pair from a palette.
type Combination struct {
	Foreground    colour.Color `json:"foreground"`
	Background    colour.Color `json:"background"`
	Accessibility Result       `json:"accessibility"`
}

// PaletteReport holds the accessibility of every ordered pair in a palette.
type PaletteReport struct {
	// Combinations lists every (i, j) pair with i != j in palette order.
	Combinations []Combination `json:"combinations"`
	// Best holds up to five pairs with the highest contrast ratio.
	Best []Combination `json:"bestCombinations"`
	// Worst holds up to five pairs with the lowest contrast ratio, taken
	// from the tail of the same descending order as Best.
	Worst []Combination `json:"worstCombinations"`
}

// AnalyzePalette scores every ordered pair of distinct palette positions.
// A palette of n colours yields n*(n-1) combinations.
func AnalyzePalette(colours []colour.Color) (PaletteReport, error) {
	n := len(colours)
	if n < 2 {
		return PaletteReport{}, fmt.Errorf("%w: got %d", ErrInsufficientColors, n)
	}

	// Luminance depends only on the colour, so compute it once per entry.
	lum := make([]float64, n)
	for i, c := range colours {
		lum[i] = RelativeLuminance(c.RGB)
	}

	combinations := make([]Combination, 0, n*(n-1))
	for i, fg := range colours {
		for j, bg := range colours {
			if i == j {
				continue
			}
			hi, lo := max(lum[i], lum[j]), min(lum[i], lum[j])
			combinations = append(combinations, Combination{
				Foreground:    fg,
				Background:    bg,
				Accessibility: resultFor((hi + 0.05) / (lo + 0.05)),
			})
		}
	}

	sorted := slices.Clone(combinations)
	slices.SortStableFunc(sorted, func(a, b Combination) int {
		return cmp.Compare(b.Accessibility.ContrastRatio, a.Accessibility.ContrastRatio)
	})

	k := min(rankedLimit, len(sorted))
	return PaletteReport{
		Combinations: combinations,
		Best:         slices.Clone(sorted[:k]),
		Worst:        slices.Clone(sorted[len(sorted)-k:]),
	}, nil
}

// Summary counts combinations per grade.
func (r PaletteReport) Summary() map[Grade]int {
	counts := map[Grade]int{
		GradeExcellent: 0,
		GradeGood:      0,
		GradePoor:      0,
		GradeFail:      0,
	}
	for _, c := range r.Combinations {
		counts[c.Accessibility.Grade]++
	}
	return counts
}
