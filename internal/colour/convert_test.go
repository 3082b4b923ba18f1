package colour

import (
	"errors"
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    RGB
		wantErr bool
	}{
		{name: "red with hash", hex: "#ff0000", want: RGB{R: 255}},
		{name: "upper case", hex: "#00FF00", want: RGB{G: 255}},
		{name: "no hash", hex: "0000ff", want: RGB{B: 255}},
		{name: "mixed", hex: "#1a2B3c", want: RGB{R: 0x1a, G: 0x2b, B: 0x3c}},
		{name: "not a colour", hex: "notacolor", wantErr: true},
		{name: "shorthand", hex: "#fff", wantErr: true},
		{name: "with alpha", hex: "#ffffffff", wantErr: true},
		{name: "bad digit", hex: "#gg0000", wantErr: true},
		{name: "double hash", hex: "##ff0000", wantErr: true},
		{name: "empty", hex: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToRGB(tt.hex)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Fatalf("HexToRGB(%q) error = %v, want ErrInvalidFormat", tt.hex, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("HexToRGB(%q) unexpected error: %v", tt.hex, err)
			}
			if got != tt.want {
				t.Errorf("HexToRGB(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestRGBToHex(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    string
	}{
		{name: "black", want: "#000000"},
		{name: "white", r: 255, g: 255, b: 255, want: "#ffffff"},
		{name: "zero padded", r: 1, g: 2, b: 3, want: "#010203"},
		{name: "rounds", r: 254.6, g: 0.4, b: 127.5, want: "#ff0080"},
		{name: "clamps", r: 300, g: -20, b: 255.9, want: "#ff00ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBToHex(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("RGBToHex(%v, %v, %v) = %s, want %s", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r < 256; r++ {
		for g := 0; g < 256; g += 3 {
			for b := 0; b < 256; b += 5 {
				hex := RGBToHex(float64(r), float64(g), float64(b))
				got, err := HexToRGB(hex)
				if err != nil {
					t.Fatalf("HexToRGB(%s): %v", hex, err)
				}
				want := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				if got != want {
					t.Fatalf("round trip of %+v gave %+v", want, got)
				}
			}
		}
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSL
	}{
		{name: "red", rgb: RGB{R: 255}, want: HSL{H: 0, S: 100, L: 50}},
		{name: "green", rgb: RGB{G: 255}, want: HSL{H: 120, S: 100, L: 50}},
		{name: "blue", rgb: RGB{B: 255}, want: HSL{H: 240, S: 100, L: 50}},
		{name: "black", rgb: RGB{}, want: HSL{}},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: HSL{L: 100}},
		{name: "grey", rgb: RGB{R: 128, G: 128, B: 128}, want: HSL{L: 50}},
		{name: "magenta side", rgb: RGB{R: 255, B: 128}, want: HSL{H: 330, S: 100, L: 50}},
		{name: "hue rounding to 360 wraps", rgb: RGB{R: 255, B: 1}, want: HSL{H: 0, S: 100, L: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBToHSL(tt.rgb); got != tt.want {
				t.Errorf("RGBToHSL(%+v) = %+v, want %+v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestRGBToHSLFloatMatchesColorful(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				rgb := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				h, s, l := RGBToHSLFloat(rgb)

				wh, ws, wl := colorful.Color{
					R: float64(r) / 255,
					G: float64(g) / 255,
					B: float64(b) / 255,
				}.Hsl()

				if d := math.Abs(h - wh); math.Min(d, 360-d) > 1e-6 {
					t.Fatalf("%+v: hue %v, colorful %v", rgb, h, wh)
				}
				if math.Abs(s-ws*100) > 1e-6 || math.Abs(l-wl*100) > 1e-6 {
					t.Fatalf("%+v: s/l %v/%v, colorful %v/%v", rgb, s, l, ws*100, wl*100)
				}
			}
		}
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    RGB
	}{
		{name: "red", h: 0, s: 100, l: 50, want: RGB{R: 255}},
		{name: "green", h: 120, s: 100, l: 50, want: RGB{G: 255}},
		{name: "blue", h: 240, s: 100, l: 50, want: RGB{B: 255}},
		{name: "cyan", h: 180, s: 100, l: 50, want: RGB{G: 255, B: 255}},
		{name: "grey", h: 200, s: 0, l: 50, want: RGB{R: 128, G: 128, B: 128}},
		{name: "negative hue wraps", h: -120, s: 100, l: 50, want: RGB{B: 255}},
		{name: "hue above 360 wraps", h: 480, s: 100, l: 50, want: RGB{G: 255}},
		{name: "lightness clamps", h: 0, s: 100, l: 140, want: RGB{R: 255, G: 255, B: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSLToRGB(tt.h, tt.s, tt.l); got != tt.want {
				t.Errorf("HSLToRGB(%v, %v, %v) = %+v, want %+v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

// TestHSLRoundTrip checks that the unrounded HSL path reproduces every
// sampled RGB triple to within one unit per channel.
func TestHSLRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 3 {
		for g := 0; g < 256; g += 3 {
			for b := 0; b < 256; b += 3 {
				want := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				got := HSLToRGB(RGBToHSLFloat(want))
				if !withinChannels(got, want, 1) {
					t.Fatalf("float round trip of %+v gave %+v", want, got)
				}
			}
		}
	}
}

// TestHSLIntegerRoundTrip bounds the drift introduced by whole-degree and
// whole-percent HSL. Each quantisation step moves a channel by at most
// 0.5*2% + 0.5*0.5% + 0.5°/60 of full scale, about 5.3 units.
func TestHSLIntegerRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 5 {
			for b := 0; b < 256; b += 5 {
				want := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				hsl := RGBToHSL(want)
				got := HSLToRGB(float64(hsl.H), float64(hsl.S), float64(hsl.L))
				if !withinChannels(got, want, 6) {
					t.Fatalf("integer round trip of %+v via %+v gave %+v", want, hsl, got)
				}
			}
		}
	}

	// Primary and grey values survive exactly.
	for _, want := range []RGB{{R: 255}, {G: 255}, {B: 255}, {}, {R: 255, G: 255, B: 255}} {
		hsl := RGBToHSL(want)
		if got := HSLToRGB(float64(hsl.H), float64(hsl.S), float64(hsl.L)); got != want {
			t.Errorf("integer round trip of %+v gave %+v", want, got)
		}
	}
}

func TestWrapHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{-30, 330},
		{720 + 45, 45},
		{-390, 330},
	}
	for _, tt := range tests {
		if got := WrapHue(tt.in); got != tt.want {
			t.Errorf("WrapHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func withinChannels(a, b RGB, tol int) bool {
	diff := func(x, y uint8) int {
		d := int(x) - int(y)
		if d < 0 {
			return -d
		}
		return d
	}
	return diff(a.R, b.R) <= tol && diff(a.G, b.G) <= tol && diff(a.B, b.B) <= tol
}
