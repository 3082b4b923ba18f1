package export

import (
	"fmt"
	"strings"
)

// CSS renders a palette as a block of CSS custom properties.
type CSS struct{}

// Name implements Exporter.
func (CSS) Name() string { return "css" }

// Description implements Exporter.
func (CSS) Description() string { return "CSS custom properties in a :root block" }

// Extension implements Exporter.
func (CSS) Extension() string { return ".css" }

// Export implements Exporter. Each colour becomes --<palette>-<name>, where
// name is the slugified colour name or color-N when the colour is unnamed.
// Repeated names are suffixed with their position to keep properties unique.
func (CSS) Export(p *Palette) ([]byte, error) {
	prefix := Slugify(p.Name)
	if prefix == "" {
		prefix = DefaultPaletteName
	}
	names := PropertyNames(p)

	var b strings.Builder
	fmt.Fprintf(&b, "/* %s Color Palette */\n", p.Name)
	fmt.Fprintf(&b, "/* id: %s */\n", p.ID)
	b.WriteString(":root {\n")
	for i, c := range p.Colors {
		fmt.Fprintf(&b, "  --%s-%s: %s;\n", prefix, names[i], c.Hex)
	}
	b.WriteString("}\n\n")

	first := "color-1"
	if len(names) > 0 {
		first = names[0]
	}
	b.WriteString("/* Usage example:\n")
	fmt.Fprintf(&b, "  background-color: var(--%s-%s);\n", prefix, first)
	b.WriteString("*/\n")

	return []byte(b.String()), nil
}

// PropertyNames returns the custom property suffix used for each colour.
func PropertyNames(p *Palette) []string {
	names := make([]string, len(p.Colors))
	seen := make(map[string]bool, len(p.Colors))
	for i, c := range p.Colors {
		name := Slugify(c.Name)
		if name == "" {
			name = fmt.Sprintf("color-%d", i+1)
		}
		if seen[name] {
			name = fmt.Sprintf("%s-%d", name, i+1)
		}
		seen[name] = true
		names[i] = name
	}
	return names
}
