package export

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/hueforge/internal/colour"
)

// isoTimestamp matches JavaScript's Date.toISOString output.
const isoTimestamp = "2006-01-02T15:04:05.000Z07:00"

// JSON renders a palette as an indented JSON document.
type JSON struct{}

// Name implements Exporter.
func (JSON) Name() string { return "json" }

// Description implements Exporter.
func (JSON) Description() string { return "JSON document with hex, RGB and HSL values" }

// Extension implements Exporter.
func (JSON) Extension() string { return ".json" }

// ColourJSON is one colour in the JSON export.
type ColourJSON struct {
	Name string     `json:"name"`
	Hex  string     `json:"hex"`
	RGB  colour.RGB `json:"rgb"`
	HSL  colour.HSL `json:"hsl"`
}

// PaletteJSON is the JSON export document.
type PaletteJSON struct {
	Name      string       `json:"name"`
	Colors    []ColourJSON `json:"colors"`
	CreatedAt string       `json:"createdAt"`
}

// Export implements Exporter. Unnamed colours are called "Color N".
func (JSON) Export(p *Palette) ([]byte, error) {
	doc := PaletteJSON{
		Name:      p.Name,
		Colors:    make([]ColourJSON, len(p.Colors)),
		CreatedAt: p.CreatedAt.UTC().Format(isoTimestamp),
	}
	for i, c := range p.Colors {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("Color %d", i+1)
		}
		doc.Colors[i] = ColourJSON{Name: name, Hex: c.Hex, RGB: c.RGB, HSL: c.HSL}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to convert to JSON: %w", err)
	}
	return append(data, '\n'), nil
}
