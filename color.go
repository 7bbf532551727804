package tetrabounds

import (
	"image/color"
	"math"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1. Colors are used to tint
// debug drawings and can be stored in an Object's Properties.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// WithAlpha returns a copy of the Color with its alpha set to the given value.
func (c Color) WithAlpha(alpha float32) Color {
	c.A = alpha
	return c
}

// Mix returns the Color linearly interpolated towards the other Color by the given percentage (0 to 1).
func (c Color) Mix(other Color, percent float32) Color {
	percent = clamp(percent, 0, 1)
	return Color{
		R: c.R + (other.R-c.R)*percent,
		G: c.G + (other.G-c.G)*percent,
		B: c.B + (other.B-c.B)*percent,
		A: c.A + (other.A-c.A)*percent,
	}
}

// ToSRGB returns the Color converted from linear space to sRGB.
func (c Color) ToSRGB() Color {
	convert := func(v float32) float32 {
		if v <= 0.0031308 {
			return v * 12.92
		}
		return float32(1.055*math.Pow(float64(v), 1/2.4) - 0.055)
	}
	return Color{convert(c.R), convert(c.G), convert(c.B), c.A}
}

// NRGBA returns the Color as a non-premultiplied 8-bit image/color value.
func (c Color) NRGBA() color.NRGBA {
	to8 := func(v float32) uint8 {
		return uint8(math.Round(float64(clamp(v, 0, 1)) * 255))
	}
	return color.NRGBA{to8(c.R), to8(c.G), to8(c.B), to8(c.A)}
}

// RGBA implements image/color.Color, so a Color can be drawn directly.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}
