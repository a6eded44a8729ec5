package geometry

import (
	gomath "math"
	"sort"

	"prism/pkg/math"
)

// Intersection records one ray/shape hit. T may be negative for hits behind
// the ray origin. U and V carry triangle barycentrics and are zero for other
// shapes.
type Intersection struct {
	T      float64
	Object Shape
	U, V   float64
}

// SortIntersections orders a hit list ascending by t. Values within Epsilon
// of each other are treated as equal and keep their relative order.
func SortIntersections(xs []Intersection) {
	sort.SliceStable(xs, func(i, j int) bool {
		if math.Approx(xs[i].T, xs[j].T) {
			return false
		}
		return xs[i].T < xs[j].T
	})
}

// Hit returns the first intersection with t > 0 from a sorted list.
func Hit(xs []Intersection) (Intersection, bool) {
	for _, i := range xs {
		if i.T > 0 {
			return i, true
		}
	}
	return Intersection{}, false
}

// Computations is the state derived from a hit that the shading integrator
// consumes.
type Computations struct {
	Intersection Intersection

	Point      math.Tuple
	OverPoint  math.Tuple
	UnderPoint math.Tuple
	Eyev       math.Tuple
	Normalv    math.Tuple
	Reflectv   math.Tuple
	Inside     bool
	N1, N2     float64
}

// PrepareComputations derives the shading state for the chosen hit. The full
// sorted intersection list is scanned to resolve the refraction indices on
// either side of the hit: shapes toggle in and out of a container of
// currently-entered media, and an empty container contributes the vacuum
// index.
func PrepareComputations(hit Intersection, worldRay math.Ray, xs []Intersection) Computations {
	point := worldRay.Position(hit.T)
	eyev := worldRay.Direction.Neg()

	normalv := hit.Object.NormalAt(point, hit)
	inside := normalv.Dot(eyev) < 0
	if inside {
		normalv = normalv.Neg()
	}
	reflectv := worldRay.Direction.Reflect(normalv)

	overPoint := point.Add(normalv.Mul(math.Epsilon))
	underPoint := point.Sub(normalv.Mul(math.Epsilon))

	n1, n2 := 1.0, 1.0
	var containers []Shape

	for _, i := range xs {
		if i == hit {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].Props().Material.IndexOfRefraction
			}
		}

		if idx := indexOfShape(containers, i.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, i.Object)
		}

		if i == hit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Props().Material.IndexOfRefraction
			}
			break
		}
	}

	return Computations{
		Intersection: hit,
		Point:        point,
		OverPoint:    overPoint,
		UnderPoint:   underPoint,
		Eyev:         eyev,
		Normalv:      normalv,
		Reflectv:     reflectv,
		Inside:       inside,
		N1:           n1,
		N2:           n2,
	}
}

func indexOfShape(shapes []Shape, s Shape) int {
	for i, candidate := range shapes {
		if candidate == s {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at the hit's dielectric
// interface.
//
// https://graphics.stanford.edu/courses/cs148-10-summer/docs/2006--degreve--reflection_refraction.pdf
func (c Computations) Schlick() float64 {
	cos := c.Eyev.Dot(c.Normalv)

	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2T := n * n * (1.0 - cos*cos)

		if sin2T > 1.0 {
			return 1.0
		}

		cos = gomath.Sqrt(1.0 - sin2T)
	}

	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 *= r0

	return r0 + (1.0-r0)*gomath.Pow(1.0-cos, 5)
}
