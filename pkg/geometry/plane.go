package geometry

import (
	gomath "math"

	"prism/pkg/material"
	"prism/pkg/math"
)

// Plane is the infinite xz plane (y = 0) of its local frame.
type Plane struct {
	props Props
}

// NewPlane creates a plane with the given material and transform.
func NewPlane(m material.Material, transform math.Matrix) *Plane {
	bounds := math.BoundingBox{
		Min: math.NewPoint(gomath.Inf(-1), 0, gomath.Inf(-1)),
		Max: math.NewPoint(gomath.Inf(1), 0, gomath.Inf(1)),
	}
	return &Plane{props: NewProps(m, transform, bounds)}
}

func (p *Plane) Props() *Props { return &p.props }

func (p *Plane) Intersect(worldRay math.Ray) []Intersection {
	return intersectLocal(p, worldRay, func(r math.Ray) []Intersection {
		if gomath.Abs(r.Direction.Y) < math.Epsilon {
			return nil
		}
		return []Intersection{{T: -r.Origin.Y / r.Direction.Y, Object: p}}
	})
}

func (p *Plane) NormalAt(worldPoint math.Tuple, _ Intersection) math.Tuple {
	return normalLocal(p, worldPoint, func(math.Tuple) math.Tuple {
		return math.NewVector(0, 1, 0)
	})
}
