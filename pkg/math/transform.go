package math

import (
	"errors"
	gomath "math"
)

// Transform construction errors. All factories that can produce a
// non-invertible matrix validate eagerly and return one of these instead.
var (
	ErrZeroScaling     = errors.New("cannot scale a component to zero")
	ErrDegenerateShear = errors.New("invalid relation between shear components")
	ErrEqualViewPoints = errors.New("view from and to points must be different")
	ErrNullUpVector    = errors.New("view up vector cannot be null")
	ErrCollinearViewUp = errors.New("view direction and up vector must not be collinear")
)

// Translation returns a matrix moving points by (x, y, z).
func Translation(x, y, z float64) Matrix {
	m := Identity()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scaling returns a matrix scaling by (x, y, z). Scaling any component to
// zero would collapse the transform, so it is rejected.
func Scaling(x, y, z float64) (Matrix, error) {
	if Approx(x, 0) || Approx(y, 0) || Approx(z, 0) {
		return Matrix{}, ErrZeroScaling
	}

	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m, nil
}

// RotationX returns a matrix rotating about the x axis by radians.
func RotationX(radians float64) Matrix {
	c, s := gomath.Cos(radians), gomath.Sin(radians)
	m := Identity()
	m[1][1], m[1][2] = c, -s
	m[2][1], m[2][2] = s, c
	return m
}

// RotationY returns a matrix rotating about the y axis by radians.
func RotationY(radians float64) Matrix {
	c, s := gomath.Cos(radians), gomath.Sin(radians)
	m := Identity()
	m[0][0], m[0][2] = c, s
	m[2][0], m[2][2] = -s, c
	return m
}

// RotationZ returns a matrix rotating about the z axis by radians.
func RotationZ(radians float64) Matrix {
	c, s := gomath.Cos(radians), gomath.Sin(radians)
	m := Identity()
	m[0][0], m[0][1] = c, -s
	m[1][0], m[1][1] = s, c
	return m
}

// Shearing returns a shear matrix where each component moves one coordinate
// in proportion to another. Component combinations that zero the determinant
// are rejected.
func Shearing(xy, xz, yx, yz, zx, zy float64) (Matrix, error) {
	m := Identity()
	m[0][1], m[0][2] = xy, xz
	m[1][0], m[1][2] = yx, yz
	m[2][0], m[2][1] = zx, zy

	if !m.Invertible() {
		return Matrix{}, ErrDegenerateShear
	}
	return m, nil
}

// View returns the transformation that orients the world so the eye sits at
// the origin looking down -z.
func View(from, to, up Tuple) (Matrix, error) {
	forward := to.Sub(from)
	if forward.Magnitude() == 0 {
		return Matrix{}, ErrEqualViewPoints
	}
	forward = forward.Normalize()

	if up.Magnitude() == 0 {
		return Matrix{}, ErrNullUpVector
	}
	left := forward.Cross(up.Normalize())
	if left.Magnitude() == 0 {
		return Matrix{}, ErrCollinearViewUp
	}
	trueUp := left.Cross(forward)

	orientation := Matrix{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}

	return orientation.Mul(Translation(-from.X, -from.Y, -from.Z)), nil
}
