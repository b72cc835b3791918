package gradient

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an immutable 8-bit RGB triple in sRGB space. It implements
// image/color.Color so it plugs directly into lipgloss styles.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA implements color.Color. Alpha is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// ParseHex parses "#rrggbb" or "#rgb" into a Color.
func ParseHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// FromColor converts any color.Color, discarding alpha.
func FromColor(c color.Color) Color {
	if g, ok := c.(Color); ok {
		return g
	}
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// linearColor is a color in linear light, each channel in [0,1]. It exists
// only while a perceptual blend is in flight.
type linearColor struct {
	r, g, b float64
}

func (c Color) linear() linearColor {
	return linearColor{
		r: srgbDecode(float64(c.R) / 255.0),
		g: srgbDecode(float64(c.G) / 255.0),
		b: srgbDecode(float64(c.B) / 255.0),
	}
}

func (c linearColor) sum() float64 {
	return c.r + c.g + c.b
}

func (c linearColor) srgb() Color {
	return Color{
		R: srgbEncode(c.r),
		G: srgbEncode(c.g),
		B: srgbEncode(c.b),
	}
}

func srgbDecode(x float64) float64 {
	if x <= 0.04045 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

// srgbEncode gamma-encodes one linear channel and scales it to 0..255,
// truncating rather than rounding.
func srgbEncode(x float64) uint8 {
	var v float64
	if x <= 0.0031308 {
		v = 12.92 * x
	} else {
		v = 1.055*math.Pow(x, 1.0/2.4) - 0.055
	}
	v *= 255.9999
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
