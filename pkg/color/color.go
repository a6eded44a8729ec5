// Package color provides the floating-point RGB color type used throughout
// the renderer. Channels are nominally in [0, 1] but may exceed it during
// shading; clamping happens only at image export.
package color

import (
	stdcolor "image/color"
	gomath "math"

	"prism/pkg/math"
)

// Color is a floating-point RGB triple.
type Color struct {
	R, G, B float64
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

// Add returns the channel-wise sum of two colors.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Sub returns the channel-wise difference of two colors.
func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Mul returns the color scaled by s.
func (c Color) Mul(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Blend returns the Hadamard product of two colors.
func (c Color) Blend(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Equal reports whether two colors are equal within math.Epsilon per
// channel.
func (c Color) Equal(o Color) bool {
	return math.Approx(c.R, o.R) && math.Approx(c.G, o.G) && math.Approx(c.B, o.B)
}

// RGBA8 converts the color to opaque 8-bit RGBA, clamping each channel to
// 0..255.
func (c Color) RGBA8() stdcolor.RGBA {
	return stdcolor.RGBA{
		R: clampChannel(c.R),
		G: clampChannel(c.G),
		B: clampChannel(c.B),
		A: 255,
	}
}

func clampChannel(v float64) uint8 {
	return uint8(gomath.Min(255, gomath.Max(0, gomath.Round(v*255))))
}
