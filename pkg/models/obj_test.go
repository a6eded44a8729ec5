package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"prism/pkg/geometry"
	"prism/pkg/material"
	"prism/pkg/math"
)

var approx = cmpopts.EquateApprox(0, 1e-4)

func parse(t *testing.T, input string) *Model {
	t.Helper()

	model, err := ParseOBJ(strings.NewReader(input), material.Default())
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	return model
}

func triangles(t *testing.T, g *geometry.Group) []*geometry.Triangle {
	t.Helper()

	var out []*geometry.Triangle
	for _, child := range g.Children() {
		switch s := child.(type) {
		case *geometry.Triangle:
			out = append(out, s)
		case *geometry.SmoothTriangle:
			out = append(out, &s.Triangle)
		case *geometry.Group:
			out = append(out, triangles(t, s)...)
		default:
			t.Fatalf("unexpected child type %T", child)
		}
	}
	return out
}

func TestIgnoresUnrecognizedStatements(t *testing.T) {
	model := parse(t, strings.Join([]string{
		"There was a young lady named Bright",
		"who traveled much faster than light.",
		"She set out one day",
		"in a relative way,",
		"and came back the previous night.",
	}, "\n"))

	if len(model.groups) != 0 {
		t.Errorf("got %d groups, want 0", len(model.groups))
	}
}

func TestParsesTriangleFaces(t *testing.T) {
	model := parse(t, strings.Join([]string{
		"v -1 1 0",
		"v -1 0 0",
		"v 1 0 0",
		"v 1 1 0",
		"",
		"f 1 2 3",
		"f 1 3 4",
	}, "\n"))

	tris := triangles(t, model.Group())
	if len(tris) != 2 {
		t.Fatalf("got %d triangles, want 2", len(tris))
	}

	if diff := cmp.Diff(math.NewPoint(-1, 1, 0), tris[0].V0, approx); diff != "" {
		t.Errorf("t0.V0 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(math.NewPoint(-1, 0, 0), tris[0].V1, approx); diff != "" {
		t.Errorf("t0.V1 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(math.NewPoint(1, 0, 0), tris[0].V2, approx); diff != "" {
		t.Errorf("t0.V2 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(math.NewPoint(1, 1, 0), tris[1].V2, approx); diff != "" {
		t.Errorf("t1.V2 mismatch (-want +got):\n%s", diff)
	}
}

func TestFanTriangulatesPolygons(t *testing.T) {
	model := parse(t, strings.Join([]string{
		"v -1 1 0",
		"v -1 0 0",
		"v 1 0 0",
		"v 1 1 0",
		"v 0 2 0",
		"",
		"f 1 2 3 4 5",
	}, "\n"))

	tris := triangles(t, model.Group())
	if len(tris) != 3 {
		t.Fatalf("got %d triangles, want 3", len(tris))
	}

	// Every fan triangle shares the first vertex.
	for i, tri := range tris {
		if diff := cmp.Diff(math.NewPoint(-1, 1, 0), tri.V0, approx); diff != "" {
			t.Errorf("triangle %d V0 mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestNamedGroups(t *testing.T) {
	model := parse(t, strings.Join([]string{
		"v -1 1 0",
		"v -1 0 0",
		"v 1 0 0",
		"v 1 1 0",
		"",
		"g FirstGroup",
		"f 1 2 3",
		"g SecondGroup",
		"f 1 3 4",
	}, "\n"))

	if diff := cmp.Diff([]string{"FirstGroup", "SecondGroup"}, model.GroupNames()); diff != "" {
		t.Errorf("group names mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultGroupHoldsEarlyFaces(t *testing.T) {
	model := parse(t, strings.Join([]string{
		"v -1 1 0",
		"v -1 0 0",
		"v 1 0 0",
		"",
		"f 1 2 3",
		"g Named",
		"f 1 2 3",
	}, "\n"))

	if diff := cmp.Diff([]string{DefaultGroupName, "Named"}, model.GroupNames()); diff != "" {
		t.Errorf("group names mismatch (-want +got):\n%s", diff)
	}
}

func TestVertexNormalsProduceSmoothTriangles(t *testing.T) {
	model := parse(t, strings.Join([]string{
		"v 0 1 0",
		"v -1 0 0",
		"v 1 0 0",
		"",
		"vn -1 0 0",
		"vn 1 0 0",
		"vn 0 1 0",
		"",
		"f 1//3 2//1 3//2",
		"f 1/0/3 2/102/1 3/14/2",
	}, "\n"))

	root := model.Group()
	inner := root.Children()[0].(*geometry.Group)

	if len(inner.Children()) != 2 {
		t.Fatalf("got %d triangles, want 2", len(inner.Children()))
	}

	for i, child := range inner.Children() {
		smooth, ok := child.(*geometry.SmoothTriangle)
		if !ok {
			t.Fatalf("child %d is %T, want *geometry.SmoothTriangle", i, child)
		}
		if diff := cmp.Diff(math.NewVector(0, 1, 0), smooth.N0, approx); diff != "" {
			t.Errorf("child %d N0 mismatch (-want +got):\n%s", i, diff)
		}
		if diff := cmp.Diff(math.NewVector(-1, 0, 0), smooth.N1, approx); diff != "" {
			t.Errorf("child %d N1 mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestCollinearTrianglesAreSkippedSilently(t *testing.T) {
	model := parse(t, strings.Join([]string{
		"v 0 0 0",
		"v 1 1 1",
		"v 2 2 2",
		"v 1 0 0",
		"",
		"f 1 2 3",
		"f 1 2 4",
	}, "\n"))

	tris := triangles(t, model.Group())
	if len(tris) != 1 {
		t.Errorf("got %d triangles, want 1 (collinear face skipped)", len(tris))
	}
}

func TestInvalidVertexValueCarriesLineNumber(t *testing.T) {
	_, err := ParseOBJ(strings.NewReader(strings.Join([]string{
		"v 0 0 0",
		"v 1 one 1",
	}, "\n")), material.Default())

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if parseErr.Line != 2 || parseErr.Kind != InvalidValue {
		t.Errorf("got line %d kind %v, want line 2 kind InvalidValue", parseErr.Line, parseErr.Kind)
	}
}

func TestMissingVertexValue(t *testing.T) {
	_, err := ParseOBJ(strings.NewReader("v 1 2"), material.Default())

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if parseErr.Kind != MissingValue {
		t.Errorf("kind = %v, want MissingValue", parseErr.Kind)
	}
}

func TestFaceBeforeVerticesFails(t *testing.T) {
	_, err := ParseOBJ(strings.NewReader("f 1 2 3"), material.Default())

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if parseErr.Kind != InsufficientVertices {
		t.Errorf("kind = %v, want InsufficientVertices", parseErr.Kind)
	}
}

func TestModelGroupIntersects(t *testing.T) {
	model := parse(t, strings.Join([]string{
		"v -1 0 0",
		"v 1 0 0",
		"v 0 1 0",
		"",
		"f 1 2 3",
	}, "\n"))

	g := model.Group()

	r := math.Ray{
		Origin:    math.NewPoint(0, 0.5, -2),
		Direction: math.NewVector(0, 0, 1),
	}
	xs := g.Intersect(r)

	if len(xs) != 1 {
		t.Fatalf("got %d intersections, want 1", len(xs))
	}
	if !math.Approx(xs[0].T, 2) {
		t.Errorf("t = %v, want 2", xs[0].T)
	}
}
