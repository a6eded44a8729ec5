// Package geometry implements the shape hierarchy and ray intersection.
//
// Every shape stores its material, its local→world transform with the cached
// inverse, and both a local-space and a world-space bounding box. Shapes are
// immutable once a render starts; the caches refresh only through
// Props.SetTransform during scene construction.
package geometry

import (
	"prism/pkg/material"
	"prism/pkg/math"
)

// Shape is a renderable primitive. Intersect takes a world-space ray;
// NormalAt takes a world-space point plus the intersection that produced it
// (triangles need the barycentric coordinates).
type Shape interface {
	Props() *Props
	Intersect(worldRay math.Ray) []Intersection
	NormalAt(worldPoint math.Tuple, hit Intersection) math.Tuple
}

// Props is the state shared by all shape kinds.
type Props struct {
	Material         material.Material
	Transform        math.Matrix
	TransformInverse math.Matrix
	LocalBounds      math.BoundingBox
	WorldBounds      math.BoundingBox
}

// NewProps builds shared shape state and derives both caches.
func NewProps(m material.Material, transform math.Matrix, localBounds math.BoundingBox) Props {
	return Props{
		Material:         m,
		Transform:        transform,
		TransformInverse: transform.Inverse(),
		LocalBounds:      localBounds,
		WorldBounds:      localBounds.Transform(transform),
	}
}

// SetTransform replaces the transform and atomically refreshes the cached
// inverse and world bounds.
func (p *Props) SetTransform(transform math.Matrix) {
	p.Transform = transform
	p.TransformInverse = transform.Inverse()
	p.WorldBounds = p.LocalBounds.Transform(transform)
}

// WorldToObject converts a world-space point into the shape's local frame.
func (p *Props) WorldToObject(worldPoint math.Tuple) math.Tuple {
	return p.TransformInverse.MulTuple(worldPoint)
}

// intersectLocal transforms the world ray into the shape's frame and hands
// it to the shape-specific intersector.
func intersectLocal(s Shape, worldRay math.Ray, local func(math.Ray) []Intersection) []Intersection {
	objectRay := worldRay.Transform(s.Props().TransformInverse)
	return local(objectRay)
}

// normalLocal converts the world point to the shape's frame, asks the shape
// for its local normal, and carries the result back to world space through
// the transposed inverse.
func normalLocal(s Shape, worldPoint math.Tuple, local func(math.Tuple) math.Tuple) math.Tuple {
	inverse := s.Props().TransformInverse

	objectPoint := inverse.MulTuple(worldPoint)
	objectNormal := local(objectPoint)

	worldNormal := inverse.Transpose().MulTuple(objectNormal)
	worldNormal.W = 0

	return worldNormal.Normalize()
}
