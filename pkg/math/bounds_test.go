package math

import (
	gomath "math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBoundingBoxAdd(t *testing.T) {
	b := NewBoundingBox()
	b.Add(NewPoint(-5, 2, 0))
	b.Add(NewPoint(7, 0, -3))

	if diff := cmp.Diff(NewPoint(-5, 0, -3), b.Min, approx); diff != "" {
		t.Errorf("Min mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewPoint(7, 2, 0), b.Max, approx); diff != "" {
		t.Errorf("Max mismatch (-want +got):\n%s", diff)
	}
}

func TestBoundingBoxMerge(t *testing.T) {
	b := BoundingBox{Min: NewPoint(-5, -2, 0), Max: NewPoint(7, 4, 4)}
	b.Merge(BoundingBox{Min: NewPoint(8, -7, -2), Max: NewPoint(14, 2, 8)})

	if diff := cmp.Diff(NewPoint(-5, -7, -2), b.Min, approx); diff != "" {
		t.Errorf("Min mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewPoint(14, 4, 8), b.Max, approx); diff != "" {
		t.Errorf("Max mismatch (-want +got):\n%s", diff)
	}
}

func TestBoundingBoxContainsPoint(t *testing.T) {
	b := BoundingBox{Min: NewPoint(5, -2, 0), Max: NewPoint(11, 4, 7)}

	inside := []Tuple{
		NewPoint(5, -2, 0),
		NewPoint(11, 4, 7),
		NewPoint(8, 1, 3),
	}
	for _, p := range inside {
		if !b.ContainsPoint(p) {
			t.Errorf("ContainsPoint(%v) = false, want true", p)
		}
	}

	outside := []Tuple{
		NewPoint(3, 0, 3),
		NewPoint(8, -4, 3),
		NewPoint(8, 1, -1),
		NewPoint(13, 1, 3),
		NewPoint(8, 5, 3),
		NewPoint(8, 1, 8),
	}
	for _, p := range outside {
		if b.ContainsPoint(p) {
			t.Errorf("ContainsPoint(%v) = true, want false", p)
		}
	}
}

func TestBoundingBoxContainsBox(t *testing.T) {
	b := BoundingBox{Min: NewPoint(5, -2, 0), Max: NewPoint(11, 4, 7)}

	if !b.ContainsBox(BoundingBox{Min: NewPoint(6, -1, 1), Max: NewPoint(10, 3, 6)}) {
		t.Error("inner box reported as not contained")
	}
	if b.ContainsBox(BoundingBox{Min: NewPoint(4, -3, -1), Max: NewPoint(10, 3, 6)}) {
		t.Error("overhanging box reported as contained")
	}
}

func TestBoundingBoxTransform(t *testing.T) {
	b := BoundingBox{Min: NewPoint(-1, -1, -1), Max: NewPoint(1, 1, 1)}

	m := RotationX(gomath.Pi / 4).Mul(RotationY(gomath.Pi / 4))
	got := b.Transform(m)

	if diff := cmp.Diff(NewPoint(-1.41421, -1.70711, -1.70711), got.Min, approx); diff != "" {
		t.Errorf("Min mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewPoint(1.41421, 1.70711, 1.70711), got.Max, approx); diff != "" {
		t.Errorf("Max mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformingInfiniteBoxStaysConservative(t *testing.T) {
	plane := BoundingBox{
		Min: NewPoint(gomath.Inf(-1), 0, gomath.Inf(-1)),
		Max: NewPoint(gomath.Inf(1), 0, gomath.Inf(1)),
	}

	got := plane.Transform(RotationX(gomath.Pi / 4))

	// No NaNs: the envelope collapses to the all-infinite box, which any
	// ray intersects.
	if !got.Intersect(Ray{Origin: NewPoint(0, 5, 0), Direction: NewVector(0, 1, 0)}) {
		t.Error("transformed infinite box does not intersect a ray")
	}
}

func TestTransformingEmptyBoxStaysEmpty(t *testing.T) {
	empty := NewBoundingBox()

	got := empty.Transform(Translation(1, 2, 3))

	if got.Max.X >= got.Min.X {
		t.Error("transformed empty box is no longer empty")
	}
}

func TestBoundingBoxIntersect(t *testing.T) {
	b := BoundingBox{Min: NewPoint(-1, -1, -1), Max: NewPoint(1, 1, 1)}

	hits := []Ray{
		{Origin: NewPoint(5, 0.5, 0), Direction: NewVector(-1, 0, 0)},
		{Origin: NewPoint(-5, 0.5, 0), Direction: NewVector(1, 0, 0)},
		{Origin: NewPoint(0.5, 5, 0), Direction: NewVector(0, -1, 0)},
		{Origin: NewPoint(0.5, 0, -5), Direction: NewVector(0, 0, 1)},
		{Origin: NewPoint(0, 0.5, 0), Direction: NewVector(0, 0, 1)},
	}
	for _, r := range hits {
		if !b.Intersect(r) {
			t.Errorf("Intersect(%v) = false, want true", r)
		}
	}

	misses := []Ray{
		{Origin: NewPoint(-2, 0, 0), Direction: NewVector(2, 4, 6)},
		{Origin: NewPoint(0, -2, 0), Direction: NewVector(6, 2, 4)},
		{Origin: NewPoint(2, 0, 2), Direction: NewVector(0, 0, -1)},
		{Origin: NewPoint(2, 2, 0), Direction: NewVector(-1, 0, 0)},
	}
	for _, r := range misses {
		if b.Intersect(r) {
			t.Errorf("Intersect(%v) = true, want false", r)
		}
	}
}

func TestBoundingBoxIntersectMatchesInverseRayTransform(t *testing.T) {
	b := BoundingBox{Min: NewPoint(-1, -1, -1), Max: NewPoint(1, 1, 1)}
	m := Translation(2, 0, 0).Mul(RotationY(gomath.Pi / 3))

	rays := []Ray{
		{Origin: NewPoint(5, 0, 0), Direction: NewVector(-1, 0, 0)},
		{Origin: NewPoint(0, 5, 0), Direction: NewVector(0, -1, 0)},
		{Origin: NewPoint(-3, 1, 2), Direction: NewVector(1, -0.2, -0.4)},
	}

	for _, r := range rays {
		got := b.Transform(m).Intersect(r)
		want := b.Intersect(r.Transform(m.Inverse()))

		// The transformed box is a widened envelope, so it must hit at
		// least whenever the inversely-transformed ray hits the original.
		if want && !got {
			t.Errorf("transformed box misses ray %v that hits the original box", r)
		}
	}
}

func TestBoundingBoxSplit(t *testing.T) {
	b := BoundingBox{Min: NewPoint(-1, -4, -5), Max: NewPoint(9, 6, 5)}

	left, right := b.Split()

	// x is the longest axis on ties, so the box splits at x=4.
	if diff := cmp.Diff(NewPoint(-1, -4, -5), left.Min, approx); diff != "" {
		t.Errorf("left Min mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewPoint(4, 6, 5), left.Max, approx); diff != "" {
		t.Errorf("left Max mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewPoint(4, -4, -5), right.Min, approx); diff != "" {
		t.Errorf("right Min mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewPoint(9, 6, 5), right.Max, approx); diff != "" {
		t.Errorf("right Max mismatch (-want +got):\n%s", diff)
	}
}

func TestBoundingBoxSplitYAxis(t *testing.T) {
	b := BoundingBox{Min: NewPoint(-1, -2, -3), Max: NewPoint(1, 5, 3)}

	left, right := b.Split()

	if diff := cmp.Diff(NewPoint(1, 1.5, 3), left.Max, approx); diff != "" {
		t.Errorf("left Max mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewPoint(-1, 1.5, -3), right.Min, approx); diff != "" {
		t.Errorf("right Min mismatch (-want +got):\n%s", diff)
	}
}
