package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueforge/internal/colour"
)

func newConvertCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "convert <colour> [colour...]",
		Short: "Show a colour as hex, RGB and HSL",
		Long: `Convert hex colours to RGB and HSL and show their approximate names.

Examples:
  hueforge convert "#2a9d8f"
  hueforge convert --format hsl ff0000 00ff00`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := parseColours(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format != "" {
				f, err := colour.ParseFormat(format)
				if err != nil {
					return err
				}
				for _, c := range colours {
					fmt.Fprintln(out, c.Format(f))
				}
				return nil
			}

			table := NewTable([]string{"COLOUR", "HEX", "RGB", "HSL", "NAME"})
			for _, c := range colours {
				table.AddRow([]string{
					opts.theme.swatch(c),
					c.Format(colour.FormatHex),
					c.Format(colour.FormatRGB),
					c.Format(colour.FormatHSL),
					c.Name,
				})
			}
			fmt.Fprint(out, table.Render())
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "print only this format (hex, rgb, hsl)")
	return cmd
}
