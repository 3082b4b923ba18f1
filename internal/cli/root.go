// Package cli provides the command-line interface for hueforge.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueforge/internal/colour"
	"github.com/jmylchreest/hueforge/internal/config"
	"github.com/jmylchreest/hueforge/internal/version"
)

// rootOptions holds global flag values and state shared by subcommands.
type rootOptions struct {
	verbose  bool
	quiet    bool
	noColour bool

	logger hclog.Logger
	theme  *theme
}

// NewRootCmd builds the hueforge command tree. Each call returns an
// independent tree, so tests can execute commands in isolation.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{
		logger: hclog.NewNullLogger(),
	}

	rootCmd := &cobra.Command{
		Use:   "hueforge",
		Short: "Generate colour palettes and check their accessibility",
		Long: `hueforge generates colour palettes, either at random or from colour
harmony rules (monochromatic, analogous, complementary, triadic), and scores
them for WCAG contrast compliance and colour-vision-deficiency risk.

Palettes can be printed as hex, RGB or HSL values, or exported as CSS custom
properties, a JSON document or a PNG swatch image.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose, opts.quiet)
			colour.DisableColourOutput = plainOutput(out, opts.noColour, os.LookupEnv)
			opts.theme = newTheme(out, colour.DisableColourOutput)
			opts.logger.Trace("initialised", "command", cmd.Name(), "colour", !colour.DisableColourOutput)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&opts.noColour, "no-colour", false, "disable ANSI colour output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newAnalyzeCmd(opts))
	rootCmd.AddCommand(newContrastCmd(opts))
	rootCmd.AddCommand(newConvertCmd(opts))

	return rootCmd
}

// plainOutput reports whether output to w must be unstyled. Either flag or
// environment can force it; non-terminal writers are always plain.
func plainOutput(w io.Writer, noColour bool, lookup func(string) (string, bool)) bool {
	return noColour || config.NoColourFromEnv(lookup) || !isTerminal(w)
}

// newLogger configures the CLI logger from the verbosity flags.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "hueforge",
		Output: w,
		Level:  level,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
