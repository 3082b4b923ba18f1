package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/hueforge/internal/accessibility"
	"github.com/jmylchreest/hueforge/internal/colour"
)

// Swatch geometry in pixels.
const (
	swatchWidth  = 120
	swatchHeight = 160
	labelMargin  = 8
)

var (
	labelDark  = colour.MustNew("#000000")
	labelLight = colour.MustNew("#ffffff")
)

// PNG renders a palette as a row of swatches labelled with their hex codes.
type PNG struct{}

// Name implements Exporter.
func (PNG) Name() string { return "png" }

// Description implements Exporter.
func (PNG) Description() string { return "PNG image with one labelled swatch per colour" }

// Extension implements Exporter.
func (PNG) Extension() string { return ".png" }

// Export implements Exporter.
func (PNG) Export(p *Palette) ([]byte, error) {
	img, err := Swatch(p.Colors)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// Swatch draws one swatchWidth x swatchHeight block per colour, left to
// right, with the hex code and name printed in whichever of black or white
// contrasts more with the block.
func Swatch(colours []colour.Color) (*image.RGBA, error) {
	if len(colours) == 0 {
		return nil, ErrEmptyPalette
	}

	img := image.NewRGBA(image.Rect(0, 0, swatchWidth*len(colours), swatchHeight))
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()

	for i, c := range colours {
		block := image.Rect(i*swatchWidth, 0, (i+1)*swatchWidth, swatchHeight)
		draw.Draw(img, block, image.NewUniform(c), image.Point{}, draw.Src)

		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(labelColour(c)),
			Face: face,
		}
		lines := []string{strings.ToUpper(c.Hex), c.Name}
		y := swatchHeight - labelMargin - (len(lines)-1)*lineHeight
		for _, line := range lines {
			if line == "" {
				continue
			}
			d.Dot = fixed.P(block.Min.X+labelMargin, y)
			d.DrawString(line)
			y += lineHeight
		}
	}
	return img, nil
}

func labelColour(bg colour.Color) color.Color {
	if accessibility.ContrastRatio(labelDark, bg) >= accessibility.ContrastRatio(labelLight, bg) {
		return labelDark
	}
	return labelLight
}
