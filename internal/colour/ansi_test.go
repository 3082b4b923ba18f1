package colour

import (
	"strings"
	"testing"
)

func TestPreview(t *testing.T) {
	t.Cleanup(func() { DisableColourOutput = false })

	red := MustNew("#ff0000")

	DisableColourOutput = false
	got := Preview(red.RGB, 4)
	if !strings.HasPrefix(got, "\033[48;2;255;0;0m") || !strings.HasSuffix(got, "    \033[0m") {
		t.Errorf("Preview() = %q, want a 4 cell red block", got)
	}

	DisableColourOutput = true
	if got := Preview(red.RGB, 0); got != strings.Repeat(" ", defaultWidth) {
		t.Errorf("Preview() with colour disabled = %q, want %d spaces", got, defaultWidth)
	}
}

func TestPreviewWithText(t *testing.T) {
	t.Cleanup(func() { DisableColourOutput = false })

	tests := []struct {
		name  string
		hex   string
		text  string
		width int
		fg    string
		plain string
	}{
		{"dark background", "#000080", "AB", 6, "\033[38;2;255;255;255m", "  AB  "},
		{"light background", "#ffff99", "AB", 5, "\033[38;2;0;0;0m", " AB  "},
		{"truncated", "#000000", "#ABCDEF", 4, "\033[38;2;255;255;255m", "#ABC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := MustNew(tt.hex)

			DisableColourOutput = false
			got := PreviewWithText(c, tt.text, tt.width)
			if !strings.Contains(got, tt.fg+tt.plain) {
				t.Errorf("PreviewWithText() = %q, want %q", got, tt.fg+tt.plain)
			}

			DisableColourOutput = true
			if got := PreviewWithText(c, tt.text, tt.width); got != tt.plain {
				t.Errorf("plain PreviewWithText() = %q, want %q", got, tt.plain)
			}
		})
	}
}

func TestFormatWithPreview(t *testing.T) {
	t.Cleanup(func() { DisableColourOutput = false })
	DisableColourOutput = true

	got := FormatWithPreview(MustNew("#1a2b3c"), FormatRGB, 2)
	if got != "   rgb(26, 43, 60)" {
		t.Errorf("FormatWithPreview() = %q", got)
	}
}
