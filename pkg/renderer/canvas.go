package renderer

import (
	"image"

	"prism/pkg/color"
)

// Canvas is a dense row-major buffer of floating-point RGB pixels. Values
// may exceed [0, 1] while shading accumulates; clamping happens only in
// Image.
type Canvas struct {
	Width  int
	Height int

	pixels []color.Color
}

// NewCanvas allocates a black canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]color.Color, width*height),
	}
}

// WritePixel stores a color at (x, y). Writes outside the canvas are
// dropped.
func (c *Canvas) WritePixel(x, y int, col color.Color) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.pixels[y*c.Width+x] = col
}

// PixelAt returns the color at (x, y).
func (c *Canvas) PixelAt(x, y int) color.Color {
	return c.pixels[y*c.Width+x]
}

// Image converts the canvas into an 8-bit RGBA image, clamping each channel
// to 0..255.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			img.SetRGBA(x, y, c.PixelAt(x, y).RGBA8())
		}
	}

	return img
}
