// Package config resolves hueforge settings from defaults and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jmylchreest/hueforge/internal/palette"
)

// Environment variables read by WithEnvConfig.
const (
	EnvCount    = "HUEFORGE_COUNT"
	EnvMode     = "HUEFORGE_MODE"
	EnvSeed     = "HUEFORGE_SEED"
	EnvFormat   = "HUEFORGE_FORMAT"
	EnvNoColour = "HUEFORGE_NO_COLOUR"
)

// Palette size limits.
const (
	MinCount     = 1
	MaxCount     = 32
	DefaultCount = 5
)

// Config holds the settings shared by the generate command.
type Config struct {
	Count    int
	Mode     palette.Mode
	Seed     *uint64
	Format   string
	NoColour bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Count:  DefaultCount,
		Mode:   palette.ModeRandom,
		Format: "hex",
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	var errs []error
	if c.Count < MinCount || c.Count > MaxCount {
		errs = append(errs, fmt.Errorf("count must be between %d and %d, got %d", MinCount, MaxCount, c.Count))
	}
	if _, err := palette.ParseMode(string(c.Mode)); err != nil {
		errs = append(errs, err)
	}
	if c.Format == "" {
		errs = append(errs, errors.New("format must not be empty"))
	}
	return errors.Join(errs...)
}

// Overrides holds explicitly chosen values, typically command-line flags.
// Nil fields leave the lower layers untouched.
type Overrides struct {
	Count    *int
	Mode     *palette.Mode
	Seed     *uint64
	Format   *string
	NoColour *bool
}

// Builder constructs a Config from layered sources: defaults, then the
// environment, then overrides. Validation runs once, after every layer.
type Builder struct {
	config    Config
	useEnv    bool
	lookup    func(string) (string, bool)
	overrides Overrides
}

// NewBuilder creates a Builder starting from Default.
func NewBuilder() *Builder {
	return &Builder{
		config: Default(),
		lookup: os.LookupEnv,
	}
}

// WithConfig replaces the base configuration.
func (b *Builder) WithConfig(c Config) *Builder {
	b.config = c
	return b
}

// WithEnvConfig applies HUEFORGE_* environment variables over the base.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithLookup overrides how environment variables are read (useful for testing).
func (b *Builder) WithLookup(lookup func(string) (string, bool)) *Builder {
	b.lookup = lookup
	return b
}

// WithOverrides applies o over the defaults and the environment. An
// environment variable that fails to parse is ignored when o sets its field.
func (b *Builder) WithOverrides(o Overrides) *Builder {
	b.overrides = o
	return b
}

// Build resolves and validates the configuration.
func (b *Builder) Build() (Config, error) {
	c := b.config

	var envErrs map[string]error
	if b.useEnv {
		envErrs = applyEnv(&c, b.lookup)
	}

	o := b.overrides
	if o.Count != nil {
		c.Count = *o.Count
		delete(envErrs, EnvCount)
	}
	if o.Mode != nil {
		c.Mode = *o.Mode
		delete(envErrs, EnvMode)
	}
	if o.Seed != nil {
		seed := *o.Seed
		c.Seed = &seed
		delete(envErrs, EnvSeed)
	}
	if o.Format != nil {
		c.Format = strings.ToLower(*o.Format)
		delete(envErrs, EnvFormat)
	}
	if o.NoColour != nil {
		c.NoColour = *o.NoColour
		delete(envErrs, EnvNoColour)
	}

	for _, key := range []string{EnvCount, EnvMode, EnvSeed, EnvFormat, EnvNoColour} {
		if err := envErrs[key]; err != nil {
			return Config{}, err
		}
	}

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

// NoColourFromEnv reports whether HUEFORGE_NO_COLOUR is set to a true value.
// Unset, blank and unparsable values count as false.
func NoColourFromEnv(lookup func(string) (string, bool)) bool {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	v, _ := lookup(EnvNoColour)
	noColour, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && noColour
}

// applyEnv sets every parsable variable on c and returns the parse
// failures keyed by variable name.
func applyEnv(c *Config, lookup func(string) (string, bool)) map[string]error {
	errs := make(map[string]error)
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvCount); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs[EnvCount] = fmt.Errorf("%s: %w", EnvCount, err)
		} else {
			c.Count = n
		}
	}
	if v, ok := get(EnvMode); ok {
		m, err := palette.ParseMode(v)
		if err != nil {
			errs[EnvMode] = fmt.Errorf("%s: %w", EnvMode, err)
		} else {
			c.Mode = m
		}
	}
	if v, ok := get(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs[EnvSeed] = fmt.Errorf("%s: %w", EnvSeed, err)
		} else {
			c.Seed = &seed
		}
	}
	if v, ok := get(EnvFormat); ok {
		c.Format = strings.ToLower(v)
	}
	if v, ok := get(EnvNoColour); ok {
		noColour, err := strconv.ParseBool(v)
		if err != nil {
			errs[EnvNoColour] = fmt.Errorf("%s: %w", EnvNoColour, err)
		} else {
			c.NoColour = noColour
		}
	}
	return errs
}
