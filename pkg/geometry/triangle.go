package geometry

import (
	"errors"
	gomath "math"

	"prism/pkg/material"
	"prism/pkg/math"
)

// ErrCollinearTriangleSides reports triangle construction from three
// collinear vertices.
var ErrCollinearTriangleSides = errors.New("triangle sides must not be collinear")

// Triangle is a flat triangle defined by three vertices. The edge vectors
// and face normal are precomputed at construction.
type Triangle struct {
	props Props

	V0, V1, V2 math.Tuple
	E0, E1     math.Tuple
	Normal     math.Tuple
}

// NewTriangle creates a triangle from three vertices, rejecting collinear
// ones.
func NewTriangle(m material.Material, vertices [3]math.Tuple) (*Triangle, error) {
	v0, v1, v2 := vertices[0], vertices[1], vertices[2]

	e0 := v1.Sub(v0)
	e1 := v2.Sub(v0)

	normal := e1.Cross(e0)
	if normal.Magnitude() == 0 {
		return nil, ErrCollinearTriangleSides
	}
	normal = normal.Normalize()

	return &Triangle{
		props:  NewProps(m, math.Identity(), math.BoundingBoxOf(v0, v1, v2)),
		V0:     v0,
		V1:     v1,
		V2:     v2,
		E0:     e0,
		E1:     e1,
		Normal: normal,
	}, nil
}

func (t *Triangle) Props() *Props { return &t.props }

// Intersect runs the Moeller-Trumbore algorithm, producing the barycentric
// (u, v) coordinates alongside t.
func (t *Triangle) Intersect(worldRay math.Ray) []Intersection {
	return intersectLocal(t, worldRay, func(r math.Ray) []Intersection {
		return t.localIntersect(r, t)
	})
}

// localIntersect is shared with SmoothTriangle, which records itself as the
// intersected object.
func (t *Triangle) localIntersect(r math.Ray, object Shape) []Intersection {
	dirCrossE1 := r.Direction.Cross(t.E1)
	det := t.E0.Dot(dirCrossE1)

	if math.Approx(gomath.Abs(det), 0) {
		return nil
	}

	f := 1.0 / det
	p0ToOrigin := r.Origin.Sub(t.V0)
	u := f * p0ToOrigin.Dot(dirCrossE1)

	if u < 0 || u > 1 {
		return nil
	}

	originCrossE0 := p0ToOrigin.Cross(t.E0)
	v := f * r.Direction.Dot(originCrossE0)

	if v < 0 || u+v > 1 {
		return nil
	}

	return []Intersection{{
		T:      f * t.E1.Dot(originCrossE0),
		Object: object,
		U:      u,
		V:      v,
	}}
}

func (t *Triangle) NormalAt(worldPoint math.Tuple, _ Intersection) math.Tuple {
	return normalLocal(t, worldPoint, func(math.Tuple) math.Tuple {
		return t.Normal
	})
}

// SmoothTriangle interpolates per-vertex normals across the face using the
// hit's barycentric coordinates.
type SmoothTriangle struct {
	Triangle

	N0, N1, N2 math.Tuple
}

// NewSmoothTriangle creates a triangle with per-vertex normals.
func NewSmoothTriangle(m material.Material, vertices, normals [3]math.Tuple) (*SmoothTriangle, error) {
	t, err := NewTriangle(m, vertices)
	if err != nil {
		return nil, err
	}

	return &SmoothTriangle{
		Triangle: *t,
		N0:       normals[0],
		N1:       normals[1],
		N2:       normals[2],
	}, nil
}

func (t *SmoothTriangle) Props() *Props { return &t.props }

func (t *SmoothTriangle) Intersect(worldRay math.Ray) []Intersection {
	return intersectLocal(t, worldRay, func(r math.Ray) []Intersection {
		return t.localIntersect(r, t)
	})
}

func (t *SmoothTriangle) NormalAt(worldPoint math.Tuple, hit Intersection) math.Tuple {
	return normalLocal(t, worldPoint, func(math.Tuple) math.Tuple {
		n := t.N1.Mul(hit.U).
			Add(t.N2.Mul(hit.V)).
			Add(t.N0.Mul(1 - hit.U - hit.V))
		return n.Normalize()
	})
}
