package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueforge/internal/accessibility"
	"github.com/jmylchreest/hueforge/internal/colour"
)

// analyzeFlags holds the analyze command flags.
type analyzeFlags struct {
	all    bool
	format string
}

// analysisJSON is the analyze command's JSON output.
type analysisJSON struct {
	Colors     []colour.Color                 `json:"colors"`
	Palette    accessibility.PaletteReport    `json:"palette"`
	ColorBlind accessibility.ColorBlindReport `json:"colorBlind"`
}

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	flags := &analyzeFlags{}

	cmd := &cobra.Command{
		Use:   "analyze <colour> <colour> [colour...]",
		Short: "Check the accessibility of a palette",
		Long: `Score every ordered pair of palette colours for WCAG contrast and check the
palette for colour-vision-deficiency risk.

The colour-vision check is a coarse channel-difference heuristic, not a
simulation; treat its output as a hint rather than a certification.

Examples:
  hueforge analyze "#1d3557" "#457b9d" "#a8dadc" "#f1faee" "#e63946"
  hueforge analyze --all --format json "#000000" "#ffffff" "#777777"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts, flags, args)
		},
	}

	cmd.Flags().BoolVarP(&flags.all, "all", "a", false, "list every combination, not just the best and worst")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "output format (text, json)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *rootOptions, flags *analyzeFlags, args []string) error {
	colours, err := parseColours(args)
	if err != nil {
		return err
	}

	report, err := accessibility.AnalyzePalette(colours)
	if err != nil {
		return fmt.Errorf("failed to analyse palette: %w", err)
	}
	cvd := accessibility.CheckColorBlindFriendly(colours)
	opts.logger.Debug("analysed palette", "colours", len(colours), "combinations", len(report.Combinations))

	out := cmd.OutOrStdout()
	switch flags.format {
	case "json":
		data, err := json.MarshalIndent(analysisJSON{Colors: colours, Palette: report, ColorBlind: cvd}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case "text":
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", flags.format)
	}

	t := opts.theme
	var b strings.Builder

	swatches := make([]string, len(colours))
	for i, c := range colours {
		swatches[i] = t.swatch(c)
	}
	fmt.Fprintf(&b, "%s %s\n\n", t.heading("Palette:"), strings.Join(swatches, " "))

	if flags.all {
		fmt.Fprintf(&b, "%s\n%s\n", t.heading("All combinations"), combinationTable(t, report.Combinations))
	} else {
		fmt.Fprintf(&b, "%s\n%s\n", t.heading("Best combinations"), combinationTable(t, report.Best))
		fmt.Fprintf(&b, "%s\n%s\n", t.heading("Worst combinations"), combinationTable(t, report.Worst))
	}

	summary := report.Summary()
	parts := make([]string, 0, len(summary))
	for _, g := range []accessibility.Grade{
		accessibility.GradeExcellent, accessibility.GradeGood, accessibility.GradePoor, accessibility.GradeFail,
	} {
		parts = append(parts, fmt.Sprintf("%s %d", t.grade(g), summary[g]))
	}
	fmt.Fprintf(&b, "%s %s\n\n", t.heading("Summary:"), strings.Join(parts, ", "))

	fmt.Fprintf(&b, "%s\n", t.heading("Colour vision (heuristic)"))
	fmt.Fprintf(&b, "  Protanopia:   %s\n", t.check(cvd.Protanopia))
	fmt.Fprintf(&b, "  Deuteranopia: %s\n", t.check(cvd.Deuteranopia))
	fmt.Fprintf(&b, "  Tritanopia:   %s\n", t.check(cvd.Tritanopia))
	for _, rec := range cvd.Recommendations {
		fmt.Fprintf(&b, "  - %s\n", rec)
	}

	_, err = fmt.Fprint(out, b.String())
	return err
}

// combinationTable renders pairs with their ratio, grade and levels.
func combinationTable(t *theme, combos []accessibility.Combination) string {
	table := NewTable([]string{"FOREGROUND", "BACKGROUND", "RATIO", "GRADE", "AA", "AAA", "AA LARGE", "RECOMMENDATION"})
	table.SetColumnMaxWidth(7, 40)
	for _, c := range combos {
		a := c.Accessibility
		table.AddRow([]string{
			t.swatch(c.Foreground),
			t.swatch(c.Background),
			fmt.Sprintf("%.2f:1", a.ContrastRatio),
			t.grade(a.Grade),
			t.check(a.Levels.AA),
			t.check(a.Levels.AAA),
			t.check(a.Levels.AALarge),
			a.Recommendation,
		})
	}
	return table.Render()
}

// parseColours builds colours from hex arguments.
func parseColours(args []string) ([]colour.Color, error) {
	colours := make([]colour.Color, len(args))
	for i, arg := range args {
		c, err := colour.New(arg)
		if err != nil {
			return nil, err
		}
		colours[i] = c
	}
	return colours, nil
}
