package math

import gomath "math"

// BoundingBox is an axis-aligned box. The empty box from NewBoundingBox is
// inverted-infinite, which is the identity for Merge.
type BoundingBox struct {
	Min, Max Tuple
}

// NewBoundingBox returns an empty box that any added point will shrink onto.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: NewPoint(gomath.Inf(1), gomath.Inf(1), gomath.Inf(1)),
		Max: NewPoint(gomath.Inf(-1), gomath.Inf(-1), gomath.Inf(-1)),
	}
}

// BoundingBoxOf returns the smallest box containing all the given points.
func BoundingBoxOf(points ...Tuple) BoundingBox {
	b := NewBoundingBox()
	for _, p := range points {
		b.Add(p)
	}
	return b
}

// Add widens the box to contain the given point.
func (b *BoundingBox) Add(p Tuple) {
	b.Min.X = gomath.Min(b.Min.X, p.X)
	b.Min.Y = gomath.Min(b.Min.Y, p.Y)
	b.Min.Z = gomath.Min(b.Min.Z, p.Z)

	b.Max.X = gomath.Max(b.Max.X, p.X)
	b.Max.Y = gomath.Max(b.Max.Y, p.Y)
	b.Max.Z = gomath.Max(b.Max.Z, p.Z)
}

// Merge widens the box to contain other.
func (b *BoundingBox) Merge(other BoundingBox) {
	b.Add(other.Min)
	b.Add(other.Max)
}

// ContainsPoint reports whether p lies inside the box, accepting boundary
// points within Epsilon.
func (b BoundingBox) ContainsPoint(p Tuple) bool {
	return Ge(p.X, b.Min.X) && Le(p.X, b.Max.X) &&
		Ge(p.Y, b.Min.Y) && Le(p.Y, b.Max.Y) &&
		Ge(p.Z, b.Min.Z) && Le(p.Z, b.Max.Z)
}

// ContainsBox reports whether other lies entirely inside the box.
func (b BoundingBox) ContainsBox(other BoundingBox) bool {
	return b.ContainsPoint(other.Min) && b.ContainsPoint(other.Max)
}

// Transform returns the axis-aligned envelope of the box's eight corners
// after applying m. Empty boxes pass through unchanged, and boxes with an
// infinite extent (planes, unbounded cylinders) collapse to the all-infinite
// box: multiplying infinite corners through a matrix would poison the result
// with NaNs, and the conservative envelope keeps group gating correct.
func (b BoundingBox) Transform(m Matrix) BoundingBox {
	if b.Max.X < b.Min.X {
		return b
	}
	if b.hasInfiniteExtent() {
		return BoundingBox{
			Min: NewPoint(gomath.Inf(-1), gomath.Inf(-1), gomath.Inf(-1)),
			Max: NewPoint(gomath.Inf(1), gomath.Inf(1), gomath.Inf(1)),
		}
	}

	corners := [8]Tuple{
		b.Min,
		NewPoint(b.Min.X, b.Min.Y, b.Max.Z),
		NewPoint(b.Min.X, b.Max.Y, b.Min.Z),
		NewPoint(b.Min.X, b.Max.Y, b.Max.Z),
		NewPoint(b.Max.X, b.Min.Y, b.Min.Z),
		NewPoint(b.Max.X, b.Min.Y, b.Max.Z),
		NewPoint(b.Max.X, b.Max.Y, b.Min.Z),
		b.Max,
	}

	out := NewBoundingBox()
	for _, c := range corners {
		out.Add(m.MulTuple(c))
	}
	return out
}

func (b BoundingBox) hasInfiniteExtent() bool {
	return gomath.IsInf(b.Min.X, 0) || gomath.IsInf(b.Min.Y, 0) || gomath.IsInf(b.Min.Z, 0) ||
		gomath.IsInf(b.Max.X, 0) || gomath.IsInf(b.Max.Y, 0) || gomath.IsInf(b.Max.Z, 0)
}

// checkAxis computes the parametric interval in which the ray is between the
// two slabs of one axis. Rays parallel to the slabs get an unbounded or empty
// interval depending on whether the origin lies between them.
func checkAxis(origin, direction, min, max float64) (float64, float64) {
	if gomath.Abs(direction) < Epsilon {
		if origin < min || origin > max {
			return gomath.Inf(1), gomath.Inf(-1)
		}
		return gomath.Inf(-1), gomath.Inf(1)
	}

	tmin := (min - origin) / direction
	tmax := (max - origin) / direction
	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

// IntersectInterval returns the parametric slab-test interval of the ray
// against the box, and whether the interval is non-empty.
func (b BoundingBox) IntersectInterval(r Ray) (float64, float64, bool) {
	xtmin, xtmax := checkAxis(r.Origin.X, r.Direction.X, b.Min.X, b.Max.X)
	ytmin, ytmax := checkAxis(r.Origin.Y, r.Direction.Y, b.Min.Y, b.Max.Y)
	ztmin, ztmax := checkAxis(r.Origin.Z, r.Direction.Z, b.Min.Z, b.Max.Z)

	tmin := gomath.Max(xtmin, gomath.Max(ytmin, ztmin))
	tmax := gomath.Min(xtmax, gomath.Min(ytmax, ztmax))

	return tmin, tmax, tmin <= tmax
}

// Intersect reports whether the ray passes through the box.
func (b BoundingBox) Intersect(r Ray) bool {
	_, _, hit := b.IntersectInterval(r)
	return hit
}

// Split bisects the box along its longest axis (x, y, z priority on ties)
// and returns the two halves sharing the midplane.
func (b BoundingBox) Split() (BoundingBox, BoundingBox) {
	dx := gomath.Abs(b.Max.X - b.Min.X)
	dy := gomath.Abs(b.Max.Y - b.Min.Y)
	dz := gomath.Abs(b.Max.Z - b.Min.Z)

	greatest := gomath.Max(dx, gomath.Max(dy, dz))

	x0, y0, z0 := b.Min.X, b.Min.Y, b.Min.Z
	x1, y1, z1 := b.Max.X, b.Max.Y, b.Max.Z

	switch {
	case Approx(greatest, dx):
		x0 = x0 + dx/2.0
		x1 = x0
	case Approx(greatest, dy):
		y0 = y0 + dy/2.0
		y1 = y0
	default:
		z0 = z0 + dz/2.0
		z1 = z0
	}

	left := BoundingBox{Min: b.Min, Max: NewPoint(x1, y1, z1)}
	right := BoundingBox{Min: NewPoint(x0, y0, z0), Max: b.Max}

	return left, right
}
