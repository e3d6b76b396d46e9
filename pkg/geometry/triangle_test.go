package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Right triangle with sides 3, 4, 5
	area := NewSides(3, 4, 5).Area()
	expected := 6.0 // (3 * 4) / 2 = 6

	if !area.Valid {
		t.Fatalf("Area failed: expected valid result for 3-4-5")
	}
	if math.Abs(area.Value-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area.Value)
	}
}

func TestTriangleAreaEquilateral(t *testing.T) {
	area := NewSides(5, 5, 5).Area()
	expected := 25 * math.Sqrt(3) / 4

	if !area.Valid {
		t.Fatalf("Area failed: expected valid result for 5-5-5")
	}
	if math.Abs(area.Value-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area.Value)
	}
}

func TestTriangleAreaMatchesHeron(t *testing.T) {
	cases := []Sides{
		NewSides(3, 4, 5),
		NewSides(7, 8, 9),
		NewSides(0.5, 0.7, 1.1),
		NewSides(120, 95.5, 60.25),
		NewSides(10, 10, 19.99),
	}

	for _, s := range cases {
		semi := (s.Side1 + s.Side2 + s.Base) / 2
		expected := math.Sqrt(semi * (semi - s.Side1) * (semi - s.Side2) * (semi - s.Base))

		area := s.Area()
		if !area.Valid || area.Value <= 0 {
			t.Errorf("%v: expected positive valid area, got %+v", s, area)
			continue
		}
		if math.Abs(area.Value-expected) > 1e-9*math.Max(1, expected) {
			t.Errorf("%v: expected %v, got %v", s, expected, area.Value)
		}
	}
}

func TestTriangleAreaInvalid(t *testing.T) {
	cases := map[string]Sides{
		"inequality":    NewSides(1, 1, 5),
		"degenerate":    NewSides(1, 2, 3),
		"degenerate2":   NewSides(2.5, 2.5, 5),
		"zero side":     NewSides(0, 4, 5),
		"negative side": NewSides(-3, 4, 5),
		"nan side":      NewSides(math.NaN(), 4, 5),
		"inf side":      NewSides(math.Inf(1), 4, 5),
	}

	for name, s := range cases {
		area := s.Area()
		if area.Valid {
			t.Errorf("%s: expected invalid area, got %+v", name, area)
		}
		if area.OrZero() != 0 {
			t.Errorf("%s: expected zero area, got %v", name, area.OrZero())
		}
	}
}

func TestTriangleValidate(t *testing.T) {
	if !NewSides(3, 4, 5).Validate() {
		t.Errorf("Validate failed: 3-4-5 should be valid")
	}
	if !NewSides(5, 3, 4).Validate() {
		t.Errorf("Validate failed: order must not matter")
	}
	if NewSides(1, 2, 3).Validate() {
		t.Errorf("Validate failed: degenerate triangle should be invalid")
	}
	if NewSides(1, 1, 5).Validate() {
		t.Errorf("Validate failed: 1-1-5 should be invalid")
	}
}

func TestTrianglePerimeter(t *testing.T) {
	perimeter := NewSides(3, 4, 5).Perimeter()
	expected := 12.0 // 3 + 4 + 5 = 12

	if math.Abs(perimeter-expected) > 1e-10 {
		t.Errorf("Perimeter failed: expected %v, got %v", expected, perimeter)
	}
}

func TestTriangleSorted(t *testing.T) {
	sorted := NewSides(3, 5, 4).Sorted()
	expected := [3]float64{5, 4, 3}

	if sorted != expected {
		t.Errorf("Sorted failed: expected %v, got %v", expected, sorted)
	}
}

func TestTriangleAreaExtremeScale(t *testing.T) {
	for _, k := range []float64{1e-150, 1e-90, 1e-10, 1, 1e10, 1e100, 1e150} {
		sides := NewSides(3*k, 4*k, 5*k)
		expected := 6 * k * k

		area := sides.Area()
		if !area.Valid {
			t.Errorf("k=%g: expected valid area, got %+v", k, area)
			continue
		}
		if math.Abs(area.Value-expected) > 1e-12*expected {
			t.Errorf("k=%g: expected %g, got %g", k, expected, area.Value)
		}

		// A drawable triangle always has an area
		if _, ok := sides.Layout(400, 200); !ok {
			t.Errorf("k=%g: expected layout to be drawable", k)
		}
	}
}

func TestTriangleAreaNeedle(t *testing.T) {
	// Thin triangle where the naive radicand loses most of its digits
	area := NewSides(100000, 99999.99979, 0.00029).Area()
	if !area.Valid || area.Value <= 0 {
		t.Errorf("Area failed: expected positive area for a thin triangle, got %+v", area)
	}
}

func TestTriangleString(t *testing.T) {
	if got := NewSides(3, 4.5, 5).String(); got != "3, 4.5, 5" {
		t.Errorf("String failed: expected %q, got %q", "3, 4.5, 5", got)
	}
}
