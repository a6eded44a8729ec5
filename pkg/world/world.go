// Package world assembles shapes and lights and integrates the color seen
// along a ray, including reflection and refraction recursion.
package world

import (
	gomath "math"

	"prism/pkg/color"
	"prism/pkg/geometry"
	"prism/pkg/math"
)

// RecursionDepth is the default cap on reflect/refract recursion.
const RecursionDepth = 5

// World is a collection of shapes and lights. It is built additively during
// scene construction and read-only while rendering.
type World struct {
	Objects []geometry.Shape
	Lights  []Light
}

// ColorAt returns the color seen along a ray, black when nothing is hit.
func (w *World) ColorAt(worldRay math.Ray, depth int) color.Color {
	xs := w.Intersect(worldRay)

	hit, ok := geometry.Hit(xs)
	if !ok {
		return color.Black
	}

	return w.ShadeHit(geometry.PrepareComputations(hit, worldRay, xs), depth)
}

// Intersect collects the sorted intersections of the ray with every object.
func (w *World) Intersect(worldRay math.Ray) []geometry.Intersection {
	var xs []geometry.Intersection
	for _, obj := range w.Objects {
		xs = append(xs, obj.Intersect(worldRay)...)
	}

	geometry.SortIntersections(xs)
	return xs
}

// ShadeHit sums the surface contribution of every light plus the reflected
// and refracted colors. On surfaces that are both reflective and transparent
// the two are combined through the Schlick reflectance.
func (w *World) ShadeHit(comps geometry.Computations, depth int) color.Color {
	props := comps.Intersection.Object.Props()
	m := props.Material

	surface := color.Black
	for _, light := range w.Lights {
		intensity := light.IntensityAt(w, comps.OverPoint)

		surface = surface.Add(m.Lighting(
			props.TransformInverse,
			light.Origin(),
			light.Color(),
			comps.OverPoint,
			comps.Eyev,
			comps.Normalv,
			intensity,
		))
	}

	reflected := w.reflectedColor(comps, depth)
	refracted := w.refractedColor(comps, depth)

	if m.Reflectivity*m.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Mul(reflectance)).
			Add(refracted.Mul(1 - reflectance))
	}

	return surface.Add(reflected).Add(refracted)
}

// IsShadowed reports whether opaque geometry blocks the segment between
// lightPos and point.
func (w *World) IsShadowed(lightPos, point math.Tuple) bool {
	pointToLight := lightPos.Sub(point)

	distance := pointToLight.Magnitude()
	if distance == 0 {
		// The light sits on the point itself.
		return false
	}

	shadowRay := math.Ray{
		Origin:    point,
		Direction: pointToLight.Normalize(),
	}

	hit, ok := geometry.Hit(w.Intersect(shadowRay))
	return ok && hit.T < distance
}

func (w *World) reflectedColor(comps geometry.Computations, depth int) color.Color {
	reflectivity := comps.Intersection.Object.Props().Material.Reflectivity

	if math.Approx(reflectivity, 0) || depth == 0 {
		return color.Black
	}

	reflectionRay := math.Ray{
		Origin:    comps.OverPoint,
		Direction: comps.Reflectv,
	}

	return w.ColorAt(reflectionRay, depth-1).Mul(reflectivity)
}

func (w *World) refractedColor(comps geometry.Computations, depth int) color.Color {
	transparency := comps.Intersection.Object.Props().Material.Transparency

	// Snell's law: n1*sin(theta_i) = n2*sin(theta_t).
	nRatio := comps.N1 / comps.N2
	cosI := comps.Eyev.Dot(comps.Normalv)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)

	totalInternalReflection := sin2T > 1

	if math.Approx(transparency, 0) || depth == 0 || totalInternalReflection {
		return color.Black
	}

	cosT := gomath.Sqrt(1 - sin2T)
	direction := comps.Normalv.Mul(nRatio*cosI - cosT).Sub(comps.Eyev.Mul(nRatio))

	refractionRay := math.Ray{
		Origin:    comps.UnderPoint,
		Direction: direction,
	}

	return w.ColorAt(refractionRay, depth-1).Mul(transparency)
}
