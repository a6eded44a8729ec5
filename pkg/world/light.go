package world

import (
	"sync"

	"prism/pkg/color"
	"prism/pkg/math"
)

// Light is a world light source. IntensityAt returns the shadow attenuation
// of the light as seen from a surface point: 0 in full shadow, 1 fully lit,
// fractional inside an area light's penumbra.
type Light interface {
	IntensityAt(w *World, point math.Tuple) float64
	Origin() math.Tuple
	Color() color.Color
}

// PointLight is an infinitely small light casting hard shadows.
type PointLight struct {
	Position  math.Tuple
	Intensity color.Color
}

func (l PointLight) Origin() math.Tuple { return l.Position }

func (l PointLight) Color() color.Color { return l.Intensity }

// IntensityAt returns 0 if opaque geometry sits between the light and the
// point, and 1 otherwise.
func (l PointLight) IntensityAt(w *World, point math.Tuple) float64 {
	if w.IsShadowed(l.Position, point) {
		return 0
	}
	return 1
}

// AreaLight is a rectangular grid of light cells casting soft shadows. Each
// cell contributes one jittered sample; rendering cost grows with the cell
// count.
type AreaLight struct {
	Corner    math.Tuple
	UVec      math.Tuple
	USteps    int
	VVec      math.Tuple
	VSteps    int
	Samples   int
	Intensity color.Color

	jitter func() float64
}

// NewAreaLight builds an area light from its corner, the two full edge
// vectors with their cell counts, and the light color. jitter returns values
// in [0, 1) used to offset samples within their cells; nil defaults to a
// locked XorShift32 sequence, the one piece of mutable state shared across
// render workers.
func NewAreaLight(corner math.Tuple, fullUVec math.Tuple, usteps int, fullVVec math.Tuple, vsteps int, intensity color.Color, jitter func() float64) AreaLight {
	if jitter == nil {
		rng := math.NewXorShift32(1)
		var mu sync.Mutex
		jitter = func() float64 {
			mu.Lock()
			defer mu.Unlock()
			return rng.Float64()
		}
	}

	return AreaLight{
		Corner:    corner,
		UVec:      fullUVec.Div(float64(usteps)),
		USteps:    usteps,
		VVec:      fullVVec.Div(float64(vsteps)),
		VSteps:    vsteps,
		Samples:   usteps * vsteps,
		Intensity: intensity,
		jitter:    jitter,
	}
}

// Origin returns the center of the light rectangle; the Phong terms treat
// the light as sitting there.
func (l AreaLight) Origin() math.Tuple {
	return l.Corner.
		Add(l.UVec.Mul(float64(l.USteps) / 2)).
		Add(l.VVec.Mul(float64(l.VSteps) / 2))
}

func (l AreaLight) Color() color.Color { return l.Intensity }

// PointOnLight returns a jittered position inside cell (u, v).
func (l AreaLight) PointOnLight(u, v int) math.Tuple {
	return l.Corner.
		Add(l.UVec.Mul(float64(u) + l.jitter())).
		Add(l.VVec.Mul(float64(v) + l.jitter()))
}

// IntensityAt counts the cells with an unobstructed path to the point and
// returns the lit fraction.
func (l AreaLight) IntensityAt(w *World, point math.Tuple) float64 {
	total := 0.0

	for v := 0; v < l.VSteps; v++ {
		for u := 0; u < l.USteps; u++ {
			if !w.IsShadowed(l.PointOnLight(u, v), point) {
				total += 1.0
			}
		}
	}

	return total / float64(l.Samples)
}
