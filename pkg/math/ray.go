package math

// Ray represents a ray with an origin and a direction. The direction is not
// required to be unit length.
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// Position returns the point at parameter t along the ray.
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform returns a new ray with both origin and direction transformed
// by m.
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MulTuple(r.Origin),
		Direction: m.MulTuple(r.Direction),
	}
}
