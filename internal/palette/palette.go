// internal/palette/palette.go
// Package palette maps model identifiers to their canonical colors and derives
// translucent variants of those colors.
package palette

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrLookup reports a model identifier (or display position) outside the canonical set.
	ErrLookup = errors.New("unknown model identifier")
	// ErrFormat reports a color string that is not "#" followed by exactly six hex digits.
	ErrFormat = errors.New("malformed hex color")
)

// RGB is an opaque 8-bit color triple.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex formats the triple as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Alpha returns the triple with the given opacity applied.
func (c RGB) Alpha(a float64) Color {
	return Color{RGB: c, A: clampAlpha(a)}
}

// Triple returns the channels as a three element slice, the shape client scripts expect.
func (c RGB) Triple() []int {
	return []int{int(c.R), int(c.G), int(c.B)}
}

// Color is an RGB triple with an opacity in [0,1].
type Color struct {
	RGB
	A float64 `json:"a"`
}

// String renders the color as a CSS rgba() value.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// MarshalText lets colors appear directly in JSON chart configurations.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// HexToRGB parses a #rrggbb string.
func HexToRGB(hex string) (RGB, error) {
	if !validHex(hex) {
		return RGB{}, fmt.Errorf("%w: %q", ErrFormat, hex)
	}
	parsed, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrFormat, hex, err)
	}
	r, g, b := parsed.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// MustHexToRGB is HexToRGB for package-level palettes known at compile time.
func MustHexToRGB(hex string) RGB {
	c, err := HexToRGB(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func validHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= '0' && ch <= '9':
		case ch >= 'a' && ch <= 'f':
		case ch >= 'A' && ch <= 'F':
		default:
			return false
		}
	}
	return true
}

func clampAlpha(a float64) float64 {
	switch {
	case math.IsNaN(a):
		return 1
	case a < 0:
		return 0
	case a > 1:
		return 1
	default:
		return a
	}
}

// alphaOr returns the first optional alpha, or 1 when none was supplied.
func alphaOr(alpha []float64) float64 {
	if len(alpha) == 0 {
		return 1
	}
	return alpha[0]
}
