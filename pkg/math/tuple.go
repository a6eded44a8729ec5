package math

import gomath "math"

// Tuple is a homogeneous 4-component value. W is 1 for points and 0 for
// vectors, which makes translation apply to the former and not the latter.
type Tuple struct {
	X, Y, Z, W float64
}

// NewPoint returns a point tuple (W = 1).
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector returns a vector tuple (W = 0).
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// Add returns the component-wise sum of two tuples.
func (a Tuple) Add(b Tuple) Tuple {
	return Tuple{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the component-wise difference of two tuples.
func (a Tuple) Sub(b Tuple) Tuple {
	return Tuple{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Neg returns the negation of the tuple.
func (a Tuple) Neg() Tuple {
	return Tuple{-a.X, -a.Y, -a.Z, -a.W}
}

// Mul returns the tuple scaled by s.
func (a Tuple) Mul(s float64) Tuple {
	return Tuple{a.X * s, a.Y * s, a.Z * s, a.W * s}
}

// Div returns the tuple scaled by 1/s.
func (a Tuple) Div(s float64) Tuple {
	return Tuple{a.X / s, a.Y / s, a.Z / s, a.W / s}
}

// Dot returns the dot product of two tuples.
func (a Tuple) Dot(b Tuple) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Cross returns the cross product of two vectors.
func (a Tuple) Cross(b Tuple) Tuple {
	return NewVector(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

// Magnitude returns the length of the tuple.
func (a Tuple) Magnitude() float64 {
	return gomath.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z + a.W*a.W)
}

// Normalize returns a unit tuple in the same direction. A zero tuple is
// returned unchanged; callers that must reject null vectors check the
// magnitude themselves.
func (a Tuple) Normalize() Tuple {
	d := a.Magnitude()
	if d == 0 {
		return a
	}
	return Tuple{a.X / d, a.Y / d, a.Z / d, a.W / d}
}

// Reflect returns the vector reflected about the given normal.
func (a Tuple) Reflect(normal Tuple) Tuple {
	return a.Sub(normal.Mul(2 * a.Dot(normal)))
}

// Equal reports whether two tuples are equal within Epsilon per component.
func (a Tuple) Equal(b Tuple) bool {
	return Approx(a.X, b.X) && Approx(a.Y, b.Y) && Approx(a.Z, b.Z) && Approx(a.W, b.W)
}
