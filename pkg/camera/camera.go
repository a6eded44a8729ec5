// Package camera maps canvas pixels to primary rays.
package camera

import (
	"errors"
	gomath "math"

	"prism/pkg/math"
)

// Camera construction errors.
var (
	ErrNullDimension       = errors.New("camera cannot have null dimensions")
	ErrStraightFieldOfView = errors.New("field of view angle cannot be straight")
)

// Camera projects a world onto a hsize x vsize canvas through a pinhole at
// the origin of its own frame, looking down -z.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64

	PixelSize  float64
	HalfWidth  float64
	HalfHeight float64

	Transform        math.Matrix
	TransformInverse math.Matrix
}

// New creates a camera with an identity view transform. The field of view
// must not be a multiple of pi, which would collapse the viewport.
func New(hsize, vsize int, fieldOfView float64) (*Camera, error) {
	if hsize <= 0 || vsize <= 0 {
		return nil, ErrNullDimension
	}
	if math.Approx(gomath.Mod(fieldOfView, gomath.Pi), 0) {
		return nil, ErrStraightFieldOfView
	}

	halfView := gomath.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect < 1 {
		halfWidth = halfView * aspect
		halfHeight = halfView
	} else {
		halfWidth = halfView
		halfHeight = halfView / aspect
	}

	return &Camera{
		HSize:            hsize,
		VSize:            vsize,
		FieldOfView:      fieldOfView,
		PixelSize:        (halfWidth * 2) / float64(hsize),
		HalfWidth:        halfWidth,
		HalfHeight:       halfHeight,
		Transform:        math.Identity(),
		TransformInverse: math.Identity(),
	}, nil
}

// SetTransform installs the view transform and refreshes the cached inverse.
func (c *Camera) SetTransform(transform math.Matrix) {
	c.Transform = transform
	c.TransformInverse = transform.Inverse()
}

// RayForPixel returns the ray passing through the center of pixel (x, y).
func (c *Camera) RayForPixel(x, y int) math.Ray {
	xoffset := (float64(x) + 0.5) * c.PixelSize
	yoffset := (float64(y) + 0.5) * c.PixelSize

	worldX := c.HalfWidth - xoffset
	worldY := c.HalfHeight - yoffset

	pixel := c.TransformInverse.MulTuple(math.NewPoint(worldX, worldY, -1))
	origin := c.TransformInverse.MulTuple(math.NewPoint(0, 0, 0))

	// The view transform is isomorphic, so pixel and origin never coincide.
	direction := pixel.Sub(origin).Normalize()

	return math.Ray{Origin: origin, Direction: direction}
}
