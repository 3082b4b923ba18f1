package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueforge/internal/accessibility"
)

func newContrastCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Check the contrast of a foreground/background pair",
		Long: `Compute the WCAG 2.x contrast ratio of a foreground colour on a background
colour and report which conformance levels it meets.

Example:
  hueforge contrast "#767676" "#ffffff"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := parseColours(args)
			if err != nil {
				return err
			}
			fg, bg := colours[0], colours[1]
			r := accessibility.Analyze(fg, bg)
			opts.logger.Debug("contrast", "foreground", fg.Hex, "background", bg.Hex, "ratio", r.ContrastRatio)

			t := opts.theme
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s on %s\n", t.swatch(fg), t.swatch(bg))
			fmt.Fprintf(out, "Contrast ratio:  %.2f:1\n", r.ContrastRatio)
			fmt.Fprintf(out, "Grade:           %s\n", t.grade(r.Grade))
			fmt.Fprintf(out, "AA normal text:  %s\n", t.check(r.Levels.AA))
			fmt.Fprintf(out, "AAA normal text: %s\n", t.check(r.Levels.AAA))
			fmt.Fprintf(out, "AA large text:   %s\n", t.check(r.Levels.AALarge))
			fmt.Fprintf(out, "AAA large text:  %s\n", t.check(r.Levels.AAALarge))
			fmt.Fprintf(out, "Recommendation:  %s\n", r.Recommendation)
			return nil
		},
	}
}
