package accessibility

import (
	"slices"
	"testing"
)

func TestCheckColorBlindFriendly(t *testing.T) {
	tests := []struct {
		name       string
		hexes      []string
		redGreen   bool
		blueYellow bool
	}{
		{
			name:  "high contrast primaries",
			hexes: []string{"#000000", "#ffffff"},
		},
		{
			name:     "differ only in blue",
			hexes:    []string{"#202020", "#2020c0"},
			redGreen: true,
		},
		{
			name:       "near identical",
			hexes:      []string{"#808080", "#8a8a8a"},
			blueYellow: true,
		},
		{
			name:       "both risks",
			hexes:      []string{"#404040", "#4040c0", "#ffffff", "#f0f0f0"},
			redGreen:   true,
			blueYellow: true,
		},
		{
			name:  "blue delta exactly 100 is not a risk",
			hexes: []string{"#000000", "#000064"},
		},
		{
			name:  "red delta exactly 50 is not similar",
			hexes: []string{"#000000", "#3200c8"},
		},
		{
			name:     "red delta 49 is similar",
			hexes:    []string{"#000000", "#3100c8"},
			redGreen: true,
		},
		{
			name:  "blue delta exactly 50 is not similar",
			hexes: []string{"#000000", "#000032"},
		},
		{
			name:       "blue delta 49 is similar",
			hexes:      []string{"#000000", "#000031"},
			blueYellow: true,
		},
		{
			name:  "single colour",
			hexes: []string{"#ff0000"},
		},
		{
			name:  "empty",
			hexes: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckColorBlindFriendly(mustColours(t, tt.hexes...))

			if got.Protanopia != !tt.redGreen || got.Deuteranopia != !tt.redGreen {
				t.Errorf("protanopia/deuteranopia = %v/%v, want %v", got.Protanopia, got.Deuteranopia, !tt.redGreen)
			}
			if got.Tritanopia != !tt.blueYellow {
				t.Errorf("tritanopia = %v, want %v", got.Tritanopia, !tt.blueYellow)
			}

			var want []string
			if tt.redGreen {
				want = append(want, AdviceRedGreen)
			}
			if tt.blueYellow {
				want = append(want, AdviceBlueYellow)
			}
			if len(want) == 0 {
				want = []string{AdviceFriendly}
			}
			if !slices.Equal(got.Recommendations, want) {
				t.Errorf("recommendations = %q, want %q", got.Recommendations, want)
			}
			if got.Friendly() != (!tt.redGreen && !tt.blueYellow) {
				t.Errorf("Friendly() = %v", got.Friendly())
			}
		})
	}
}
