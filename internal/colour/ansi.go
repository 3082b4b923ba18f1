package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisableColourOutput turns every preview helper into plain text.
var DisableColourOutput = false

// Preview returns an ANSI true-colour block for a colour.
// Width specifies how many characters wide the block should be.
func Preview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	if DisableColourOutput {
		return strings.Repeat(" ", width)
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithText returns a colour block with text centred on it.
// The text is black on light colours and white on dark ones.
func PreviewWithText(c Color, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	if len(text) > width {
		text = text[:width]
	} else if len(text) < width {
		pad := (width - len(text)) / 2
		text = strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-len(text)-pad)
	}
	if DisableColourOutput {
		return text
	}

	var fg uint8 = 255
	if c.HSL.L > 55 {
		fg = 0
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.RGB.R, c.RGB.G, c.RGB.B, ansiSuffix)
	fgCode := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg, fg, fg, ansiSuffix)
	return bg + fgCode + text + ansiReset
}

// FormatWithPreview formats a colour as a preview block followed by text
// in the given format.
func FormatWithPreview(c Color, f Format, width int) string {
	return fmt.Sprintf("%s %s", Preview(c.RGB, width), c.Format(f))
}
