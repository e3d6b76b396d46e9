package geometry

import (
	"math"
	"testing"
)

func TestLayoutRightTriangle(t *testing.T) {
	layout, ok := NewSides(3, 4, 5).Layout(400, 200)
	if !ok {
		t.Fatalf("Layout failed: expected 3-4-5 to be drawable")
	}

	if math.Abs(layout.ApexAngle-math.Pi/2) > 1e-10 {
		t.Errorf("ApexAngle failed: expected %v, got %v", math.Pi/2, layout.ApexAngle)
	}

	// A right angle at the apex means the two legs are perpendicular
	legLeft := layout.Left.Sub(layout.Apex)
	legRight := layout.Right.Sub(layout.Apex)
	if math.Abs(legLeft.Dot(legRight)) > 1e-8 {
		t.Errorf("Apex is not a right angle: dot product %v", legLeft.Dot(legRight))
	}

	expectedBase := math.Acos(0.8) // (4²+5²−3²)/(2·4·5)
	if math.Abs(layout.BaseAngle-expectedBase) > 1e-10 {
		t.Errorf("BaseAngle failed: expected %v, got %v", expectedBase, layout.BaseAngle)
	}
}

func TestLayoutPlacement(t *testing.T) {
	layout, ok := NewSides(3, 4, 5).Layout(400, 200)
	if !ok {
		t.Fatalf("Layout failed: expected 3-4-5 to be drawable")
	}

	if layout.Left.Distance(NewPoint(40, 140)) > 1e-10 {
		t.Errorf("Left failed: expected (40, 140), got %v", layout.Left)
	}
	if layout.Right.Distance(NewPoint(360, 140)) > 1e-10 {
		t.Errorf("Right failed: expected (360, 140), got %v", layout.Right)
	}

	// Longest side takes 80% of the width
	if math.Abs(layout.Left.Distance(layout.Right)-320) > 1e-10 {
		t.Errorf("Baseline length failed: expected 320, got %v", layout.Left.Distance(layout.Right))
	}
	if math.Abs(layout.Scale-64) > 1e-10 {
		t.Errorf("Scale failed: expected 64, got %v", layout.Scale)
	}

	// The apex sits at the second-longest side's distance from Left
	if math.Abs(layout.Left.Distance(layout.Apex)-4*64) > 1e-9 {
		t.Errorf("Apex radius failed: expected 256, got %v", layout.Left.Distance(layout.Apex))
	}
	if math.Abs(layout.Right.Distance(layout.Apex)-3*64) > 1e-9 {
		t.Errorf("Apex far side failed: expected 192, got %v", layout.Right.Distance(layout.Apex))
	}
	if layout.Apex.Y >= layout.Left.Y {
		t.Errorf("Apex should be above the baseline, got %v", layout.Apex)
	}
}

func TestLayoutOrderAgnostic(t *testing.T) {
	a, okA := NewSides(3, 4, 5).Layout(400, 200)
	b, okB := NewSides(5, 3, 4).Layout(400, 200)
	c, okC := NewSides(4, 5, 3).Layout(400, 200)

	if !okA || !okB || !okC {
		t.Fatalf("Layout failed for a permutation of 3-4-5")
	}
	if a != b || a != c {
		t.Errorf("Layout should not depend on side labels: %v, %v, %v", a, b, c)
	}
}

func TestLayoutInvalid(t *testing.T) {
	cases := []Sides{
		NewSides(1, 1, 5),
		NewSides(1, 2, 3),
		NewSides(0, 0, 0),
		NewSides(math.NaN(), 1, 1),
	}

	for _, s := range cases {
		if _, ok := s.Layout(400, 200); ok {
			t.Errorf("%v: expected layout to be skipped", s)
		}
	}
}
