package geometry

import (
	gomath "math"

	"prism/pkg/material"
	"prism/pkg/math"
)

// Sphere is the unit sphere centered at the origin of its local frame.
type Sphere struct {
	props Props
}

// NewSphere creates a sphere with the given material and transform.
func NewSphere(m material.Material, transform math.Matrix) *Sphere {
	bounds := math.BoundingBox{
		Min: math.NewPoint(-1, -1, -1),
		Max: math.NewPoint(1, 1, 1),
	}
	return &Sphere{props: NewProps(m, transform, bounds)}
}

// NewGlassSphere creates a unit sphere with a glass material, a common
// ingredient of refraction scenes.
func NewGlassSphere(transform math.Matrix) *Sphere {
	return NewSphere(material.Glass(), transform)
}

func (s *Sphere) Props() *Props { return &s.props }

func (s *Sphere) Intersect(worldRay math.Ray) []Intersection {
	return intersectLocal(s, worldRay, func(r math.Ray) []Intersection {
		sphereToRay := r.Origin.Sub(math.NewPoint(0, 0, 0))

		a := r.Direction.Dot(r.Direction)
		b := 2 * r.Direction.Dot(sphereToRay)
		c := sphereToRay.Dot(sphereToRay) - 1

		discriminant := b*b - 4*a*c
		if discriminant < 0 {
			return nil
		}

		root := gomath.Sqrt(discriminant)
		return []Intersection{
			{T: (-b - root) / (2 * a), Object: s},
			{T: (-b + root) / (2 * a), Object: s},
		}
	})
}

func (s *Sphere) NormalAt(worldPoint math.Tuple, _ Intersection) math.Tuple {
	return normalLocal(s, worldPoint, func(objectPoint math.Tuple) math.Tuple {
		return objectPoint.Sub(math.NewPoint(0, 0, 0))
	})
}
