package material

import (
	gomath "math"

	"prism/pkg/color"
	"prism/pkg/math"
)

// Pattern maps a point in pattern space to a color. Patterns carry their own
// transform so they can be scaled and rotated independently of the shape
// they texture.
type Pattern interface {
	ColorAt(point math.Tuple) color.Color
	TransformInverse() math.Matrix
}

// Scheme is the shared state of the two-color procedural patterns.
type Scheme struct {
	From, To color.Color

	Transform math.Matrix
	Inverse   math.Matrix
}

// NewScheme builds a scheme and caches the transform inverse.
func NewScheme(from, to color.Color, transform math.Matrix) Scheme {
	return Scheme{
		From:      from,
		To:        to,
		Transform: transform,
		Inverse:   transform.Inverse(),
	}
}

// TransformInverse returns the cached inverse of the pattern transform.
func (s Scheme) TransformInverse() math.Matrix { return s.Inverse }

// Solid is a constant-color pattern.
type Solid struct {
	C color.Color
}

func (s Solid) ColorAt(math.Tuple) color.Color { return s.C }

func (s Solid) TransformInverse() math.Matrix { return math.Identity() }

// Stripe alternates between two colors along x in unit-wide bands.
type Stripe struct {
	Scheme
}

func NewStripe(from, to color.Color, transform math.Matrix) Stripe {
	return Stripe{NewScheme(from, to, transform)}
}

func (p Stripe) ColorAt(point math.Tuple) color.Color {
	if math.Approx(gomath.Mod(gomath.Floor(point.X), 2), 0) {
		return p.From
	}
	return p.To
}

// Gradient blends linearly between two colors along x.
type Gradient struct {
	Scheme
}

func NewGradient(from, to color.Color, transform math.Matrix) Gradient {
	return Gradient{NewScheme(from, to, transform)}
}

func (p Gradient) ColorAt(point math.Tuple) color.Color {
	return p.From.Add(p.To.Sub(p.From).Mul(point.X - gomath.Floor(point.X)))
}

// Ring alternates between two colors in concentric rings on the xz plane.
type Ring struct {
	Scheme
}

func NewRing(from, to color.Color, transform math.Matrix) Ring {
	return Ring{NewScheme(from, to, transform)}
}

func (p Ring) ColorAt(point math.Tuple) color.Color {
	if math.Approx(gomath.Mod(gomath.Floor(gomath.Hypot(point.X, point.Z)), 2), 0) {
		return p.From
	}
	return p.To
}

// Checker alternates between two colors in a 3D checkerboard.
type Checker struct {
	Scheme
}

func NewChecker(from, to color.Color, transform math.Matrix) Checker {
	return Checker{NewScheme(from, to, transform)}
}

func (p Checker) ColorAt(point math.Tuple) color.Color {
	sum := gomath.Floor(point.X) + gomath.Floor(point.Y) + gomath.Floor(point.Z)
	if math.Approx(gomath.Mod(sum, 2), 0) {
		return p.From
	}
	return p.To
}

// ColorAtObject evaluates a pattern at a world-space point on a shape. The
// point travels world → object through the shape's cached inverse, then
// object → pattern through the pattern's own inverse.
func ColorAtObject(p Pattern, objectInverse math.Matrix, worldPoint math.Tuple) color.Color {
	objectPoint := objectInverse.MulTuple(worldPoint)
	return p.ColorAt(p.TransformInverse().MulTuple(objectPoint))
}
