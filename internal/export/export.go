// Package export renders palettes into stylesheet, JSON and image formats.
package export

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmylchreest/hueforge/internal/colour"
)

// DefaultPaletteName is used when a palette is exported without a name.
const DefaultPaletteName = "palette"

// ErrEmptyPalette is returned by exporters that need at least one colour.
var ErrEmptyPalette = errors.New("palette has no colours")

// Palette wraps an ordered colour sequence with the metadata exports need.
type Palette struct {
	ID        uuid.UUID
	Name      string
	Colors    []colour.Color
	CreatedAt time.Time
}

// NewPalette creates a palette with a fresh ID and the current UTC time.
func NewPalette(name string, colours []colour.Color) *Palette {
	if strings.TrimSpace(name) == "" {
		name = DefaultPaletteName
	}
	return &Palette{
		ID:        uuid.New(),
		Name:      name,
		Colors:    slices.Clone(colours),
		CreatedAt: time.Now().UTC(),
	}
}

// Filename returns a default file name for the palette: its slug, the
// first block of its ID and ext.
func (p *Palette) Filename(ext string) string {
	slug := Slugify(p.Name)
	if slug == "" {
		slug = DefaultPaletteName
	}
	id, _, _ := strings.Cut(p.ID.String(), "-")
	return slug + "-" + id + ext
}

// Exporter renders a palette into one output format.
type Exporter interface {
	// Name returns the format name used on the command line (e.g. "css").
	Name() string

	// Description returns a one line summary of the format.
	Description() string

	// Extension returns the conventional file extension, including the dot.
	Extension() string

	// Export renders the palette.
	Export(p *Palette) ([]byte, error)
}

// Registry holds exporters by name.
type Registry struct {
	exporters map[string]Exporter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		exporters: make(map[string]Exporter),
	}
}

// DefaultRegistry returns a registry with every built-in exporter.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(CSS{})
	r.Register(JSON{})
	r.Register(PNG{})
	return r
}

// Register adds an exporter, replacing any with the same name.
func (r *Registry) Register(e Exporter) {
	r.exporters[e.Name()] = e
}

// Get returns the exporter with the given name.
func (r *Registry) Get(name string) (Exporter, bool) {
	e, ok := r.exporters[name]
	return e, ok
}

// List returns the registered exporter names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.exporters))
	for name := range r.exporters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Describe returns one "name - description" line per exporter, sorted by name.
func (r *Registry) Describe() []string {
	names := r.List()
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("%-6s - %s", name, r.exporters[name].Description())
	}
	return lines
}

// Export renders p with the named exporter.
func (r *Registry) Export(name string, p *Palette) ([]byte, error) {
	e, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown export format: %s (available: %s)", name, strings.Join(r.List(), ", "))
	}
	data, err := e.Export(p)
	if err != nil {
		return nil, fmt.Errorf("%s export failed: %w", name, err)
	}
	return data, nil
}

var whitespace = regexp.MustCompile(`\s+`)

// Slugify lower-cases s and replaces runs of whitespace with "-".
func Slugify(s string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
}
