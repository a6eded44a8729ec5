package geometry

import (
	gomath "math"

	"prism/pkg/material"
	"prism/pkg/math"
)

// Cube is the axis-aligned unit cube [-1, 1]^3 of its local frame.
type Cube struct {
	props Props
}

// NewCube creates a cube with the given material and transform.
func NewCube(m material.Material, transform math.Matrix) *Cube {
	bounds := math.BoundingBox{
		Min: math.NewPoint(-1, -1, -1),
		Max: math.NewPoint(1, 1, 1),
	}
	return &Cube{props: NewProps(m, transform, bounds)}
}

func (c *Cube) Props() *Props { return &c.props }

func (c *Cube) Intersect(worldRay math.Ray) []Intersection {
	return intersectLocal(c, worldRay, func(r math.Ray) []Intersection {
		tmin, tmax, hit := c.props.LocalBounds.IntersectInterval(r)
		if !hit {
			return nil
		}
		return []Intersection{
			{T: tmin, Object: c},
			{T: tmax, Object: c},
		}
	})
}

func (c *Cube) NormalAt(worldPoint math.Tuple, _ Intersection) math.Tuple {
	return normalLocal(c, worldPoint, func(p math.Tuple) math.Tuple {
		ax, ay, az := gomath.Abs(p.X), gomath.Abs(p.Y), gomath.Abs(p.Z)
		maxCoord := gomath.Max(ax, gomath.Max(ay, az))

		switch {
		case math.Approx(maxCoord, ax):
			return math.NewVector(p.X, 0, 0)
		case math.Approx(maxCoord, ay):
			return math.NewVector(0, p.Y, 0)
		default:
			return math.NewVector(0, 0, p.Z)
		}
	})
}
