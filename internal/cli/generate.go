package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueforge/internal/colour"
	"github.com/jmylchreest/hueforge/internal/config"
	"github.com/jmylchreest/hueforge/internal/export"
	"github.com/jmylchreest/hueforge/internal/palette"
)

// generateFlags holds the generate command flags.
type generateFlags struct {
	mode    string
	base    string
	count   int
	seed    uint64
	format  string
	name    string
	output  string
	preview bool
}

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	flags := &generateFlags{}
	registry := export.DefaultRegistry()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a colour palette",
		Long: fmt.Sprintf(`Generate a colour palette at random or from a colour harmony rule.

Modes:
  random         - every colour drawn independently
  monochromatic  - tints and shades of the base hue
  analogous      - neighbouring hues in 30° steps
  complementary  - the base and its opposite hue, with lightness variations
  triadic        - three hues 120° apart, random hues beyond the third

Harmony modes derive the palette from --base; a random base is chosen when
it is omitted. Use --seed for reproducible output.

Formats:
  hex    - #RRGGBB, one colour per line
  rgb    - rgb(r, g, b), one colour per line
  hsl    - hsl(h, s, l), one colour per line
  %s

PNG output is written to <name>-<id>.png unless --output is given.

Defaults can be set with HUEFORGE_COUNT, HUEFORGE_MODE, HUEFORGE_SEED,
HUEFORGE_FORMAT and HUEFORGE_NO_COLOUR.

Examples:
  # Five random colours
  hueforge generate

  # Analogous palette around a base colour, with previews
  hueforge generate --mode analogous --base "#2a9d8f" --preview

  # Reproducible triadic palette exported as CSS
  hueforge generate -m triadic -b "#e63946" -c 6 --seed 42 -f css --name brand

  # Swatch image
  hueforge generate -m monochromatic -b "#457b9d" -f png -o swatch.png`,
			strings.Join(registry.Describe(), "\n  ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, flags, registry)
		},
	}

	cmd.Flags().StringVarP(&flags.mode, "mode", "m", string(palette.ModeRandom), "generation mode (random, monochromatic, analogous, complementary, triadic)")
	cmd.Flags().StringVarP(&flags.base, "base", "b", "", "base colour for harmony modes (#RRGGBB)")
	cmd.Flags().IntVarP(&flags.count, "count", "c", config.DefaultCount, fmt.Sprintf("number of colours (%d-%d)", config.MinCount, config.MaxCount))
	cmd.Flags().Uint64VarP(&flags.seed, "seed", "s", 0, "random seed for reproducible palettes")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "hex", "output format (hex, rgb, hsl, css, json, png)")
	cmd.Flags().StringVarP(&flags.name, "name", "n", export.DefaultPaletteName, "palette name used by css and json output")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default: stdout, or <name>-<id>.png for png)")
	cmd.Flags().BoolVarP(&flags.preview, "preview", "p", false, "show colour previews in terminal")

	return cmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, opts *rootOptions, flags *generateFlags, registry *export.Registry) error {
	cfg, err := resolveGenerateConfig(cmd, flags)
	if err != nil {
		return err
	}

	genOpts := []palette.Option{palette.WithLogger(opts.logger.Named("palette"))}
	if cfg.Seed != nil {
		genOpts = append(genOpts, palette.WithSeed(*cfg.Seed))
	}
	gen := palette.New(genOpts...)

	base := flags.base
	if cfg.Mode.IsHarmony() && base == "" {
		base = gen.RandomHex()
		opts.logger.Info("no base colour given, using a random base", "base", base)
	}

	opts.logger.Debug("generating palette", "mode", cfg.Mode, "count", cfg.Count, "base", base)
	colours, err := gen.Generate(base, cfg.Mode, cfg.Count)
	if err != nil {
		return fmt.Errorf("failed to generate palette: %w", err)
	}

	if f, err := colour.ParseFormat(cfg.Format); err == nil {
		text := renderText(colours, f, flags.preview && flags.output == "")
		if flags.output == "" {
			_, err := fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		}
		return writeOutput(opts, flags.output, []byte(text), cfg.Format)
	}

	exporter, ok := registry.Get(cfg.Format)
	if !ok {
		return fmt.Errorf("unsupported format: %s (supported: hex, rgb, hsl, %s)", cfg.Format, strings.Join(registry.List(), ", "))
	}

	p := export.NewPalette(flags.name, colours)
	data, err := registry.Export(exporter.Name(), p)
	if err != nil {
		return err
	}

	output := flags.output
	switch {
	case output == "" && exporter.Name() == "png":
		output = p.Filename(exporter.Extension())
	case output == "":
		_, err := cmd.OutOrStdout().Write(data)
		return err
	case filepath.Ext(output) != exporter.Extension():
		opts.logger.Warn("output file extension does not match format",
			"path", output, "format", exporter.Name(), "expected", exporter.Extension())
	}
	return writeOutput(opts, output, data, exporter.Name())
}

// writeOutput writes data to path and reports the file on stderr.
func writeOutput(opts *rootOptions, path string, data []byte, format string) error {
	opts.logger.Debug("writing palette", "path", path, "bytes", len(data))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	opts.logger.Info("wrote palette", "path", path, "format", format)
	return nil
}

// resolveGenerateConfig layers explicitly set flags over env and defaults.
func resolveGenerateConfig(cmd *cobra.Command, flags *generateFlags) (config.Config, error) {
	var o config.Overrides

	f := cmd.Flags()
	if f.Changed("mode") {
		mode, err := palette.ParseMode(flags.mode)
		if err != nil {
			return config.Config{}, err
		}
		o.Mode = &mode
	}
	if f.Changed("count") {
		o.Count = &flags.count
	}
	if f.Changed("seed") {
		o.Seed = &flags.seed
	}
	if f.Changed("format") {
		o.Format = &flags.format
	}

	return config.NewBuilder().WithEnvConfig().WithOverrides(o).Build()
}

// renderText formats colours one per line, optionally behind a swatch.
func renderText(colours []colour.Color, f colour.Format, preview bool) string {
	var b strings.Builder
	for _, c := range colours {
		if preview && !colour.DisableColourOutput {
			b.WriteString(colour.FormatWithPreview(c, f, previewWidth))
		} else {
			b.WriteString(c.Format(f))
		}
		b.WriteString("\n")
	}
	return b.String()
}
