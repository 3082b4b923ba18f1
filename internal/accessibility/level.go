package accessibility

import (
	"fmt"

	"github.com/jmylchreest/hueforge/internal/colour"
)

// WCAG 2.x contrast thresholds. AAA for large text shares the AA normal
// text threshold.
const (
	ThresholdAALarge  = 3.0
	ThresholdAA       = 4.5
	ThresholdAAALarge = 4.5
	ThresholdAAA      = 7.0
)

// Level records which WCAG conformance levels a contrast ratio meets.
type Level struct {
	AA       bool `json:"aa"`
	AAA      bool `json:"aaa"`
	AALarge  bool `json:"aaLarge"`
	AAALarge bool `json:"aaaLarge"`
}

// Classify derives the conformance levels met by a contrast ratio.
func Classify(ratio float64) Level {
	return Level{
		AA:       ratio >= ThresholdAA,
		AAA:      ratio >= ThresholdAAA,
		AALarge:  ratio >= ThresholdAALarge,
		AAALarge: ratio >= ThresholdAAALarge,
	}
}

// Grade is a coarse summary of a contrast ratio.
type Grade string

// Grades, from best to worst.
const (
	GradeExcellent Grade = "excellent"
	GradeGood      Grade = "good"
	GradePoor      Grade = "poor"
	GradeFail      Grade = "fail"
)

// String returns the grade name.
func (g Grade) String() string {
	return string(g)
}

// Rank orders grades from Fail (0) to Excellent (3).
func (g Grade) Rank() int {
	switch g {
	case GradeExcellent:
		return 3
	case GradeGood:
		return 2
	case GradePoor:
		return 1
	default:
		return 0
	}
}

// Grade returns the highest grade the levels qualify for.
func (l Level) Grade() Grade {
	switch {
	case l.AAA:
		return GradeExcellent
	case l.AA:
		return GradeGood
	case l.AALarge:
		return GradePoor
	default:
		return GradeFail
	}
}

var recommendations = map[Grade]string{
	GradeExcellent: "Excellent contrast, suitable for all text sizes",
	GradeGood:      "Good contrast, suitable for normal text",
	GradePoor:      "Use for large text only (18pt, or 14pt bold)",
	GradeFail:      "Insufficient contrast, avoid for text",
}

// Recommendation returns advice for using a colour pair with this grade.
func (g Grade) Recommendation() string {
	return recommendations[g]
}

// Result is the accessibility of an ordered foreground/background pair.
type Result struct {
	ContrastRatio  float64 `json:"contrastRatio"`
	Levels         Level   `json:"levels"`
	Grade          Grade   `json:"grade"`
	Recommendation string  `json:"recommendation"`
}

// String returns a one line summary such as "4.52:1 good".
func (r Result) String() string {
	return fmt.Sprintf("%.2f:1 %s", r.ContrastRatio, r.Grade)
}

// Analyze computes the accessibility of foreground text on a background.
func Analyze(foreground, background colour.Color) Result {
	return resultFor(ContrastRatio(foreground, background))
}

func resultFor(ratio float64) Result {
	levels := Classify(ratio)
	grade := levels.Grade()
	return Result{
		ContrastRatio:  ratio,
		Levels:         levels,
		Grade:          grade,
		Recommendation: grade.Recommendation(),
	}
}
