package colour

// hueName is one entry of the named hue table. A hue matches when it lies
// within span degrees of centre, measured around the wheel.
type hueName struct {
	name   string
	centre int
	span   int
}

// hueNames is ordered; the first match wins, so boundary hues (e.g. 15°)
// resolve to the earlier entry.
var hueNames = []hueName{
	{name: "Red", centre: 0, span: 15},
	{name: "Orange", centre: 30, span: 15},
	{name: "Yellow", centre: 60, span: 15},
	{name: "Green", centre: 120, span: 30},
	{name: "Cyan", centre: 180, span: 15},
	{name: "Blue", centre: 240, span: 30},
	{name: "Purple", centre: 300, span: 15},
	{name: "Pink", centre: 330, span: 15},
}

// Name returns the approximate name of a hex colour.
func Name(hex string) (string, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return NameHSL(RGBToHSL(rgb)), nil
}

// NameHSL classifies a colour into a coarse hue family. Colours with less
// than 10% saturation are White, Black or Gray depending on lightness.
// This is a rough classifier and makes no colorimetric claims.
func NameHSL(hsl HSL) string {
	if hsl.S < 10 {
		switch {
		case hsl.L > 90:
			return "White"
		case hsl.L < 10:
			return "Black"
		default:
			return "Gray"
		}
	}

	for _, n := range hueNames {
		if hueDistance(hsl.H, n.centre) <= n.span {
			return n.name
		}
	}
	return "Unknown"
}

// hueDistance returns the shortest angular distance between two hues.
func hueDistance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	d %= 360
	if d > 180 {
		d = 360 - d
	}
	return d
}
