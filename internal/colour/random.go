package colour

import "math/rand/v2"

const hexDigits = "0123456789ABCDEF"

// Source is a uniform random number source. *rand.Rand from math/rand/v2
// satisfies it; a nil Source falls back to the package-level generator.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// #nosec G404 -- math/rand is intentional, colours are not secrets.
type globalSource struct{}

func (globalSource) IntN(n int) int   { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource returns the goroutine-safe package-level random source.
func DefaultSource() Source {
	return globalSource{}
}

// RandomHex returns a random "#RRGGBB" string built from six independent
// uniform hex digits. It is not suitable for cryptographic use.
func RandomHex(src Source) string {
	if src == nil {
		src = globalSource{}
	}

	buf := make([]byte, 7)
	buf[0] = '#'
	for i := 1; i < len(buf); i++ {
		buf[i] = hexDigits[src.IntN(len(hexDigits))]
	}
	return string(buf)
}

// Random returns a uniformly random Color.
func Random(src Source) Color {
	return MustNew(RandomHex(src))
}
