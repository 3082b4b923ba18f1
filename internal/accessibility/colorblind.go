package accessibility

import "github.com/jmylchreest/hueforge/internal/colour"

// Channel delta thresholds for the colour-vision-deficiency heuristic.
const (
	similarChannelDelta   = 50
	divergentChannelDelta = 100
)

// Advisory messages emitted by CheckColorBlindFriendly.
const (
	AdviceRedGreen   = "Red-green distinction may be difficult; increase the lightness difference between colours."
	AdviceBlueYellow = "Blue-yellow distinction may be difficult; increase the saturation difference between colours."
	AdviceFriendly   = "This palette is colour-blind friendly."
)

// ColorBlindReport summarises colour-vision-deficiency risk for a palette.
// A true field means no risk was found for that deficiency.
type ColorBlindReport struct {
	Protanopia      bool     `json:"protanopia"`
	Deuteranopia    bool     `json:"deuteranopia"`
	Tritanopia      bool     `json:"tritanopia"`
	Recommendations []string `json:"recommendations"`
}

// Friendly reports whether no risk category was triggered.
func (r ColorBlindReport) Friendly() bool {
	return r.Protanopia && r.Deuteranopia && r.Tritanopia
}

// CheckColorBlindFriendly flags colour pairs likely to be confused.
//
// This is a channel-delta heuristic, not a simulation of deficient vision
// and not a certified accessibility check. A red-green risk is a pair whose
// red and green channels are both within 50 while blue differs by more than
// 100; it is reported for both protanopia and deuteranopia. A blue-yellow
// risk is a pair whose blue channel and red/green mean are both within 50;
// it is reported for tritanopia.
func CheckColorBlindFriendly(colours []colour.Color) ColorBlindReport {
	var redGreen, blueYellow bool
	for i, a := range colours {
		for j, b := range colours {
			if i == j {
				continue
			}
			redGreen = redGreen || redGreenRisk(a.RGB, b.RGB)
			blueYellow = blueYellow || blueYellowRisk(a.RGB, b.RGB)
		}
	}

	var recs []string
	if redGreen {
		recs = append(recs, AdviceRedGreen)
	}
	if blueYellow {
		recs = append(recs, AdviceBlueYellow)
	}
	if len(recs) == 0 {
		recs = append(recs, AdviceFriendly)
	}

	return ColorBlindReport{
		Protanopia:      !redGreen,
		Deuteranopia:    !redGreen,
		Tritanopia:      !blueYellow,
		Recommendations: recs,
	}
}

func redGreenRisk(a, b colour.RGB) bool {
	return delta(a.R, b.R) < similarChannelDelta &&
		delta(a.G, b.G) < similarChannelDelta &&
		delta(a.B, b.B) > divergentChannelDelta
}

func blueYellowRisk(a, b colour.RGB) bool {
	yellowA := (float64(a.R) + float64(a.G)) / 2
	yellowB := (float64(b.R) + float64(b.G)) / 2
	yellowDelta := yellowA - yellowB
	if yellowDelta < 0 {
		yellowDelta = -yellowDelta
	}
	return delta(a.B, b.B) < similarChannelDelta && yellowDelta < similarChannelDelta
}

func delta(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
