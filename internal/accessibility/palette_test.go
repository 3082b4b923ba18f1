package accessibility

import (
	"errors"
	"testing"

	"github.com/jmylchreest/hueforge/internal/colour"
)

func mustColours(t *testing.T, hexes ...string) []colour.Color {
	t.Helper()
	colours := make([]colour.Color, len(hexes))
	for i, h := range hexes {
		c, err := colour.New(h)
		if err != nil {
			t.Fatalf("colour.New(%q): %v", h, err)
		}
		colours[i] = c
	}
	return colours
}

func TestAnalyzePaletteCombinationCount(t *testing.T) {
	palettes := [][]string{
		{"#000000", "#ffffff"},
		{"#000000", "#ffffff", "#ff0000"},
		{"#000000", "#ffffff", "#ff0000", "#00ff00", "#0000ff"},
		{"#111111", "#111111", "#111111", "#111111"},
	}

	for _, hexes := range palettes {
		n := len(hexes)
		report, err := AnalyzePalette(mustColours(t, hexes...))
		if err != nil {
			t.Fatalf("AnalyzePalette(%v): %v", hexes, err)
		}
		if got, want := len(report.Combinations), n*(n-1); got != want {
			t.Errorf("n=%d: %d combinations, want %d", n, got, want)
		}
		wantRanked := min(5, n*(n-1))
		if len(report.Best) != wantRanked || len(report.Worst) != wantRanked {
			t.Errorf("n=%d: best=%d worst=%d, want %d each", n, len(report.Best), len(report.Worst), wantRanked)
		}
	}
}

func TestAnalyzePaletteInsufficient(t *testing.T) {
	for _, hexes := range [][]string{nil, {"#ffffff"}} {
		_, err := AnalyzePalette(mustColours(t, hexes...))
		if !errors.Is(err, ErrInsufficientColors) {
			t.Errorf("AnalyzePalette(%v) error = %v, want ErrInsufficientColors", hexes, err)
		}
	}
}

func TestAnalyzePaletteOrder(t *testing.T) {
	colours := mustColours(t, "#000000", "#ffffff", "#777777")
	report, err := AnalyzePalette(colours)
	if err != nil {
		t.Fatalf("AnalyzePalette: %v", err)
	}

	// Combinations keep palette order: (0,1), (0,2), (1,0), (1,2), (2,0), (2,1).
	wantPairs := [][2]string{
		{"#000000", "#ffffff"},
		{"#000000", "#777777"},
		{"#ffffff", "#000000"},
		{"#ffffff", "#777777"},
		{"#777777", "#000000"},
		{"#777777", "#ffffff"},
	}
	for i, want := range wantPairs {
		got := report.Combinations[i]
		if got.Foreground.Hex != want[0] || got.Background.Hex != want[1] {
			t.Errorf("combination %d = %s on %s, want %s on %s",
				i, got.Foreground.Hex, got.Background.Hex, want[0], want[1])
		}
	}

	// Best is descending, and the stable sort keeps black-on-white ahead of
	// white-on-black.
	best := report.Best
	if best[0].Foreground.Hex != "#000000" || best[1].Foreground.Hex != "#ffffff" {
		t.Errorf("best pairs out of order: %v, %v", best[0], best[1])
	}
	for i := 1; i < len(best); i++ {
		if best[i].Accessibility.ContrastRatio > best[i-1].Accessibility.ContrastRatio {
			t.Errorf("best not descending at %d", i)
		}
	}

	// Worst is the tail of the descending order, so its last entry is the
	// lowest ratio overall.
	last := report.Worst[len(report.Worst)-1]
	for _, c := range report.Combinations {
		if c.Accessibility.ContrastRatio < last.Accessibility.ContrastRatio {
			t.Errorf("worst tail %v is not the minimum", last)
		}
	}
}

func TestAnalyzePaletteRankedSlices(t *testing.T) {
	colours := mustColours(t, "#000000", "#222222", "#555555", "#999999", "#cccccc", "#ffffff")
	report, err := AnalyzePalette(colours)
	if err != nil {
		t.Fatalf("AnalyzePalette: %v", err)
	}
	if len(report.Combinations) != 30 {
		t.Fatalf("got %d combinations", len(report.Combinations))
	}

	top := report.Best[0].Accessibility
	if top.Grade != GradeExcellent || top.ContrastRatio < 20.9 {
		t.Errorf("best combination = %+v, want black/white", top)
	}
	for _, c := range report.Worst {
		if c.Accessibility.ContrastRatio > report.Best[len(report.Best)-1].Accessibility.ContrastRatio {
			t.Errorf("worst pair %v beats the best list", c)
		}
	}

	// Modifying the ranked slices must not disturb the full list.
	report.Best[0] = Combination{}
	if report.Combinations[0].Foreground.Hex != "#000000" {
		t.Error("Best aliases Combinations")
	}
}

func TestPaletteReportSummary(t *testing.T) {
	report, err := AnalyzePalette(mustColours(t, "#000000", "#ffffff", "#000001"))
	if err != nil {
		t.Fatalf("AnalyzePalette: %v", err)
	}
	summary := report.Summary()
	if summary[GradeExcellent] != 4 || summary[GradeFail] != 2 {
		t.Errorf("Summary() = %v", summary)
	}

	total := 0
	for _, n := range summary {
		total += n
	}
	if total != len(report.Combinations) {
		t.Errorf("summary counts %d, want %d", total, len(report.Combinations))
	}
}
