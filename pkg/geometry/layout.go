package geometry

import "math"

// Layout placement ratios, relative to the drawing surface
const (
	LayoutWidthRatio    = 0.8 // share of the width taken by the longest side
	LayoutMarginRatio   = 0.1 // left margin before the longest side
	LayoutBaselineRatio = 0.7 // baseline position measured from the top
)

// Layout holds the vertices of a triangle placed on a drawing surface.
// The longest side lies on a horizontal baseline from Left to Right.
type Layout struct {
	Left  Point
	Apex  Point
	Right Point

	BaseAngle float64 // angle at Left, between the longest side and the next one
	ApexAngle float64 // angle at Apex, opposite the longest side
	Scale     float64 // surface units per meter
}

// Vertices returns the layout points in drawing order
func (l Layout) Vertices() [3]Point {
	return [3]Point{l.Left, l.Apex, l.Right}
}

// Layout places the triangle on a width×height surface. The longest side
// spans 80% of the width with a 10% margin on the left, on a baseline at 70%
// of the height. The third vertex is found by rotating from the left end by
// the law-of-cosines angle.
//
// The second result is false when the sides do not form a triangle; callers
// must skip drawing in that case.
func (s Sides) Layout(width, height float64) (Layout, bool) {
	if !s.Validate() {
		return Layout{}, false
	}

	sorted := s.Sorted()
	longest, near, far := sorted[0], sorted[1], sorted[2]

	apexAngle := lawOfCosines(near, far, longest)
	baseAngle := lawOfCosines(near, longest, far)
	if math.IsNaN(apexAngle) || math.IsNaN(baseAngle) {
		return Layout{}, false
	}

	scale := width * LayoutWidthRatio / longest
	margin := width * LayoutMarginRatio
	baseY := height * LayoutBaselineRatio

	left := NewPoint(margin, baseY)
	right := NewPoint(margin+longest*scale, baseY)
	radius := near * scale
	apex := left.Add(NewPoint(math.Cos(baseAngle), -math.Sin(baseAngle)).Mul(radius))

	return Layout{
		Left:      left,
		Apex:      apex,
		Right:     right,
		BaseAngle: baseAngle,
		ApexAngle: apexAngle,
		Scale:     scale,
	}, true
}
