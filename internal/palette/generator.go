package palette

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/hueforge/internal/colour"
)

// Step sizes and clamps for the harmony rules.
const (
	monoLightnessStep  = 20
	monoSaturationStep = 15
	analogousStep      = 30
	complementOffset   = 180
	triadOffset        = 120

	// complementaryJitter is the full width of the random lightness
	// perturbation applied to complementary filler colours.
	complementaryJitter = 40
)

// Generator builds palettes from a random source.
// A Generator built WithSeed or WithSource is not safe for concurrent use;
// the default source is.
type Generator struct {
	rng    colour.Source
	logger hclog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the generator deterministic for the given seed.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		var s [32]byte
		binary.LittleEndian.PutUint64(s[:8], seed)
		// #nosec G404 -- deterministic colour generation, not cryptography
		g.rng = rand.New(rand.NewChaCha8(s))
	}
}

// WithSource sets the random source used for random colours and fillers.
func WithSource(src colour.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.rng = src
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger hclog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates a Generator. Without options it draws from the package-level
// random generator and discards logs.
func New(opts ...Option) *Generator {
	g := &Generator{
		rng:    colour.DefaultSource(),
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RandomHex returns one random hex colour from the generator's source.
func (g *Generator) RandomHex() string {
	return colour.RandomHex(g.rng)
}

// Random returns count independently random colours. Duplicates are
// permitted. A count below one yields an empty palette.
func (g *Generator) Random(count int) []colour.Color {
	if count < 1 {
		return []colour.Color{}
	}

	colours := make([]colour.Color, count)
	for i := range colours {
		colours[i] = colour.Random(g.rng)
	}

	g.logger.Debug("generated random palette", "count", count)
	return colours
}

// Generate dispatches on mode: ModeRandom ignores base, every other mode
// derives the palette from it.
func (g *Generator) Generate(base string, mode Mode, count int) ([]colour.Color, error) {
	if mode == ModeRandom {
		return g.Random(count), nil
	}
	return g.Harmonious(base, mode, count)
}

// Harmonious derives count colours from base according to mode.
//
// Lightness and saturation are clamped rather than rejected when the
// harmony arithmetic drifts outside their range, and every hue is wrapped
// into [0, 360). Complementary colours beyond the first two and triadic
// colours beyond the first three consume one random draw each, in order.
func (g *Generator) Harmonious(base string, mode Mode, count int) ([]colour.Color, error) {
	if !mode.IsHarmony() {
		return nil, fmt.Errorf("%w: %s is not a harmony mode", ErrInvalidMode, mode)
	}

	rgb, err := colour.HexToRGB(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base colour: %w", err)
	}
	hsl := colour.RGBToHSL(rgb)

	if count < 1 {
		return []colour.Color{}, nil
	}

	var colours []colour.Color
	switch mode {
	case ModeMonochromatic:
		colours = monochromatic(hsl, count)
	case ModeAnalogous:
		colours = analogous(hsl, count)
	case ModeComplementary:
		colours, err = g.complementary(base, hsl, count)
	case ModeTriadic:
		colours = g.triadic(hsl, count)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}
	if err != nil {
		return nil, err
	}

	g.logger.Debug("generated harmonious palette",
		"mode", mode, "base", base, "base_hsl", hsl.String(), "count", len(colours))
	return colours, nil
}

func monochromatic(base colour.HSL, count int) []colour.Color {
	half := count / 2
	colours := make([]colour.Color, count)
	for i := range colours {
		offset := i - half
		l := clampInt(base.L+offset*monoLightnessStep, 10, 90)
		s := clampInt(base.S+offset*monoSaturationStep, 10, 100)
		colours[i] = colour.FromHSL(float64(base.H), float64(s), float64(l))
	}
	return colours
}

func analogous(base colour.HSL, count int) []colour.Color {
	half := count / 2
	colours := make([]colour.Color, count)
	for i := range colours {
		h := wrapDegrees(base.H + (i-half)*analogousStep)
		colours[i] = colour.FromHSL(float64(h), float64(base.S), float64(base.L))
	}
	return colours
}

func (g *Generator) complementary(baseHex string, base colour.HSL, count int) ([]colour.Color, error) {
	first, err := colour.New(baseHex)
	if err != nil {
		return nil, err
	}

	colours := make([]colour.Color, 0, count)
	colours = append(colours, first)

	compHue := wrapDegrees(base.H + complementOffset)
	if count > 1 {
		colours = append(colours, colour.FromHSL(float64(compHue), float64(base.S), float64(base.L)))
	}

	for i := 2; i < count; i++ {
		h := base.H
		if i%2 != 0 {
			h = compHue
		}
		l := float64(base.L) + (g.rng.Float64()-0.5)*complementaryJitter
		l = max(20, min(80, l))
		colours = append(colours, colour.FromHSL(float64(h), float64(base.S), l))
	}
	return colours, nil
}

func (g *Generator) triadic(base colour.HSL, count int) []colour.Color {
	colours := make([]colour.Color, 0, count)
	for i := range min(count, 3) {
		h := wrapDegrees(base.H + i*triadOffset)
		colours = append(colours, colour.FromHSL(float64(h), float64(base.S), float64(base.L)))
	}
	for i := 3; i < count; i++ {
		h := g.rng.IntN(360)
		colours = append(colours, colour.FromHSL(float64(h), float64(base.S), float64(base.L)))
	}
	return colours
}

func wrapDegrees(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
