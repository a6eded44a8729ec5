package color

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-4)

func TestColorArithmetic(t *testing.T) {
	c1 := Color{R: 0.9, G: 0.6, B: 0.75}
	c2 := Color{R: 0.7, G: 0.1, B: 0.25}

	if diff := cmp.Diff(Color{R: 1.6, G: 0.7, B: 1.0}, c1.Add(c2), approx); diff != "" {
		t.Errorf("Add mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Color{R: 0.2, G: 0.5, B: 0.5}, c1.Sub(c2), approx); diff != "" {
		t.Errorf("Sub mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Color{R: 0.4, G: 0.6, B: 0.8}, Color{R: 0.2, G: 0.3, B: 0.4}.Mul(2), approx); diff != "" {
		t.Errorf("Mul mismatch (-want +got):\n%s", diff)
	}
}

func TestColorBlend(t *testing.T) {
	c1 := Color{R: 1, G: 0.2, B: 0.4}
	c2 := Color{R: 0.9, G: 1, B: 0.1}

	if diff := cmp.Diff(Color{R: 0.9, G: 0.2, B: 0.04}, c1.Blend(c2), approx); diff != "" {
		t.Errorf("Blend mismatch (-want +got):\n%s", diff)
	}
}

func TestRGBA8Clamps(t *testing.T) {
	got := Color{R: 1.5, G: -0.5, B: 0.5}.RGBA8()

	if got.R != 255 || got.G != 0 || got.B != 128 || got.A != 255 {
		t.Errorf("RGBA8 = %v, want (255, 0, 128, 255)", got)
	}
}
