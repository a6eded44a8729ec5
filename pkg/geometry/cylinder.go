package geometry

import (
	gomath "math"

	"prism/pkg/material"
	"prism/pkg/math"
)

// Cylinder is a unit-radius cylinder about the local y axis, truncated to
// (Minimum, Maximum) and optionally capped.
type Cylinder struct {
	props Props

	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates a cylinder spanning minimum < y < maximum. Use
// +-Inf for an unbounded cylinder.
func NewCylinder(m material.Material, transform math.Matrix, minimum, maximum float64, closed bool) *Cylinder {
	bounds := math.BoundingBox{
		Min: math.NewPoint(-1, minimum, -1),
		Max: math.NewPoint(1, maximum, 1),
	}
	return &Cylinder{
		props:   NewProps(m, transform, bounds),
		Minimum: minimum,
		Maximum: maximum,
		Closed:  closed,
	}
}

func (c *Cylinder) Props() *Props { return &c.props }

func (c *Cylinder) Intersect(worldRay math.Ray) []Intersection {
	return intersectLocal(c, worldRay, func(r math.Ray) []Intersection {
		var xs []Intersection

		a := r.Direction.X*r.Direction.X + r.Direction.Z*r.Direction.Z

		// A ray parallel to the y axis can only strike the caps.
		if math.Approx(a, 0) {
			return c.intersectCaps(r, xs)
		}

		b := 2*r.Origin.X*r.Direction.X + 2*r.Origin.Z*r.Direction.Z
		q := r.Origin.X*r.Origin.X + r.Origin.Z*r.Origin.Z - 1

		discriminant := b*b - 4*a*q
		if discriminant < 0 {
			return nil
		}

		root := gomath.Sqrt(discriminant)
		t0 := (-b - root) / (2 * a)
		t1 := (-b + root) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		y0 := r.Origin.Y + t0*r.Direction.Y
		if c.Minimum < y0 && y0 < c.Maximum {
			xs = append(xs, Intersection{T: t0, Object: c})
		}

		y1 := r.Origin.Y + t1*r.Direction.Y
		if c.Minimum < y1 && y1 < c.Maximum {
			xs = append(xs, Intersection{T: t1, Object: c})
		}

		return c.intersectCaps(r, xs)
	})
}

func checkCap(r math.Ray, t float64) bool {
	x := r.Origin.X + t*r.Direction.X
	z := r.Origin.Z + t*r.Direction.Z
	return math.Le(x*x+z*z, 1)
}

func (c *Cylinder) intersectCaps(r math.Ray, xs []Intersection) []Intersection {
	if !c.Closed || math.Approx(r.Direction.Y, 0) {
		return xs
	}

	t := (c.Minimum - r.Origin.Y) / r.Direction.Y
	if checkCap(r, t) {
		xs = append(xs, Intersection{T: t, Object: c})
	}

	t = (c.Maximum - r.Origin.Y) / r.Direction.Y
	if checkCap(r, t) {
		xs = append(xs, Intersection{T: t, Object: c})
	}

	return xs
}

func (c *Cylinder) NormalAt(worldPoint math.Tuple, _ Intersection) math.Tuple {
	return normalLocal(c, worldPoint, func(p math.Tuple) math.Tuple {
		distance := p.X*p.X + p.Z*p.Z

		switch {
		case distance < 1 && math.Ge(p.Y, c.Maximum-math.Epsilon):
			return math.NewVector(0, 1, 0)
		case distance < 1 && math.Le(p.Y, c.Minimum+math.Epsilon):
			return math.NewVector(0, -1, 0)
		default:
			return math.NewVector(p.X, 0, p.Z)
		}
	})
}
