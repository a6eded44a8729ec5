package geometry

import (
	"prism/pkg/material"
	"prism/pkg/math"
)

// Group is a container shape. Ancestor transforms are baked into leaves on
// insertion, so at render time the world ray is tested directly against each
// child and no per-level re-transformation happens.
type Group struct {
	props    Props
	children []Shape
}

// NewGroup creates an empty group with the given transform. The transform is
// composed into every child added later.
func NewGroup(transform math.Matrix) *Group {
	return &Group{props: NewProps(material.Default(), transform, math.NewBoundingBox())}
}

func (g *Group) Props() *Props { return &g.props }

// Children returns the group's direct children.
func (g *Group) Children() []Shape { return g.children }

// Push bakes the group's transform into the child (recursively for nested
// groups) and adopts it.
func (g *Group) Push(child Shape) {
	applyTransform(child, g.props.Transform)
	g.children = append(g.children, child)
	g.refreshBounds()
}

// PushAll adds every child in order.
func (g *Group) PushAll(children ...Shape) {
	for _, child := range children {
		g.Push(child)
	}
}

// applyTransform composes transform into the child's own, descendants first
// so nested groups stay consistent with their leaves.
func applyTransform(child Shape, transform math.Matrix) {
	if sub, ok := child.(*Group); ok {
		for _, grandchild := range sub.children {
			applyTransform(grandchild, transform)
		}
	}

	p := child.Props()
	p.SetTransform(transform.Mul(p.Transform))

	if sub, ok := child.(*Group); ok {
		sub.refreshBounds()
	}
}

// refreshBounds recomputes the cached box from the children. Children carry
// fully baked transforms, so their world bounds need no further mapping.
func (g *Group) refreshBounds() {
	b := math.NewBoundingBox()
	for _, child := range g.children {
		b.Merge(child.Props().WorldBounds)
	}
	g.props.LocalBounds = b
	g.props.WorldBounds = b
}

// Intersect tests the group's cached box first and only then recurses into
// the children, merging and sorting their hits.
func (g *Group) Intersect(worldRay math.Ray) []Intersection {
	if len(g.children) == 0 || !g.props.WorldBounds.Intersect(worldRay) {
		return nil
	}

	var xs []Intersection
	for _, child := range g.children {
		xs = append(xs, child.Intersect(worldRay)...)
	}

	SortIntersections(xs)
	return xs
}

// NormalAt is never reached for groups; intersections always reference
// leaves.
func (g *Group) NormalAt(math.Tuple, Intersection) math.Tuple {
	return math.Tuple{}
}

// Divide partitions groups with at least threshold children into two
// subgroups split along the longest axis of the group's box. Children not
// fully contained in either half stay in the parent. Subdivision recurses
// into all nested groups.
func (g *Group) Divide(threshold int) {
	if threshold <= len(g.children) {
		left, right := g.partitionChildren()

		if len(left) > 0 {
			g.makeSubgroup(left)
		}
		if len(right) > 0 {
			g.makeSubgroup(right)
		}
	}

	for _, child := range g.children {
		if sub, ok := child.(*Group); ok {
			sub.Divide(threshold)
		}
	}
}

// partitionChildren moves children strictly contained in one half of the
// split box out of the group. Their transforms are rewound by the group's
// inverse so that re-insertion through a subgroup composes back to the same
// world placement.
func (g *Group) partitionChildren() ([]Shape, []Shape) {
	leftBounds, rightBounds := g.props.WorldBounds.Split()

	var left, right, remaining []Shape
	for _, child := range g.children {
		childBounds := child.Props().WorldBounds

		switch {
		case leftBounds.ContainsBox(childBounds):
			applyTransform(child, g.props.TransformInverse)
			left = append(left, child)
		case rightBounds.ContainsBox(childBounds):
			applyTransform(child, g.props.TransformInverse)
			right = append(right, child)
		default:
			remaining = append(remaining, child)
		}
	}

	g.children = remaining
	g.refreshBounds()

	return left, right
}

func (g *Group) makeSubgroup(children []Shape) {
	sub := NewGroup(math.Identity())
	for _, child := range children {
		sub.Push(child)
	}
	g.Push(sub)
}
