package geometry

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Sides holds the three side lengths of a triangle in meters.
// The fields carry no ordering: Base is not required to be the longest.
type Sides struct {
	Side1 float64 // right side
	Side2 float64 // left side
	Base  float64 // base or hypotenuse
}

// NewSides creates a new side triple
func NewSides(side1, side2, base float64) Sides {
	return Sides{Side1: side1, Side2: side2, Base: base}
}

// Area is the tagged result of an area computation.
// Value is always 0 when Valid is false.
type Area struct {
	Value float64
	Valid bool
}

// OrZero collapses the tagged result to a plain number, 0 meaning
// "not a triangle".
func (a Area) OrZero() float64 {
	if !a.Valid {
		return 0
	}
	return a.Value
}

// Slice returns the sides as {Side1, Side2, Base}
func (s Sides) Slice() [3]float64 {
	return [3]float64{s.Side1, s.Side2, s.Base}
}

// Sorted returns the sides in descending order
func (s Sides) Sorted() [3]float64 {
	sides := s.Slice()
	sort.Sort(sort.Reverse(sort.Float64Slice(sides[:])))
	return sides
}

// String formats the sides as "side1, side2, base" without trailing zeros
func (s Sides) String() string {
	return fmt.Sprintf("%s, %s, %s", formatLength(s.Side1), formatLength(s.Side2), formatLength(s.Base))
}

func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Validate reports whether the sides are positive finite numbers that
// satisfy the strict triangle inequality. Degenerate triangles fail.
func (s Sides) Validate() bool {
	a, b, c := s.Side1, s.Side2, s.Base
	for _, v := range [3]float64{a, b, c} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return false
		}
	}
	return a < b+c && b < a+c && c < a+b
}

// Perimeter returns the total length of all sides
func (s Sides) Perimeter() float64 {
	return s.Side1 + s.Side2 + s.Base
}

// Area computes the area with Heron's formula:
//
//	s = (a+b+c)/2
//	A = √(s(s−a)(s−b)(s−c))
//
// evaluated in Kahan's form on the sides sorted a ≥ b ≥ c,
//
//	A = ¼·√(a+(b+c))·√(c−(a−b))·√(c+(a−b))·√(a+(b−c))
//
// taking the root of each factor so the product neither overflows nor
// underflows for very large or very small triangles.
//
// Sides that do not form a triangle give an invalid Area instead of an error.
func (s Sides) Area() Area {
	if !s.Validate() {
		return Area{}
	}

	sorted := s.Sorted()
	a, b, c := sorted[0], sorted[1], sorted[2]

	factors := [4]float64{
		a + (b + c),
		c - (a - b),
		c + (a - b),
		a + (b - c),
	}

	area := 0.25
	for _, f := range factors {
		if f <= 0 {
			return Area{}
		}
		area *= math.Sqrt(f)
	}

	if math.IsInf(area, 0) || area <= 0 {
		return Area{}
	}
	return Area{Value: area, Valid: true}
}

// lawOfCosines returns the angle opposite side c in a triangle with sides
// a, b, c. The result is NaN when the sides cannot meet.
func lawOfCosines(a, b, c float64) float64 {
	return math.Acos((a*a + b*b - c*c) / (2 * a * b))
}
