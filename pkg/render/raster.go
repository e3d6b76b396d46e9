package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/philipparndt/lebna/pkg/geometry"
)

// Rasterize executes draw commands on a new width×height image
func Rasterize(cmds []Command, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	var path []geometry.Point
	closed := false

	for _, cmd := range cmds {
		switch cmd.Op {
		case OpClear:
			draw.Draw(img, img.Bounds(), image.NewUniform(cmd.Color), image.Point{}, draw.Src)
			path = path[:0]
			closed = false
		case OpMoveTo:
			path = append(path[:0], cmd.Point)
			closed = false
		case OpLineTo:
			path = append(path, cmd.Point)
		case OpClosePath:
			closed = true
		case OpFill:
			fillPolygon(img, path, cmd.Color)
		case OpStroke:
			strokePath(img, path, closed, cmd.Width, cmd.Color)
		case OpText:
			drawLabel(img, cmd.Point, cmd.Text, cmd.Color)
		}
	}

	return img
}

// Draw lays out, renders and rasterizes the sides in one step
func Draw(sides geometry.Sides, opts Options) *image.RGBA {
	return Rasterize(Commands(sides, opts), int(opts.Width), int(opts.Height))
}

// fillPolygon fills a convex polygon as a triangle fan
func fillPolygon(img *image.RGBA, path []geometry.Point, col color.RGBA) {
	if len(path) < 3 {
		return
	}
	origin := path[0]
	for i := 1; i+1 < len(path); i++ {
		fillTriangle(img, origin.X, origin.Y, path[i].X, path[i].Y, path[i+1].X, path[i+1].Y, col)
	}
}

// strokePath draws the path outline, joining the last point back to the
// first when the path was closed
func strokePath(img *image.RGBA, path []geometry.Point, closed bool, width float64, col color.RGBA) {
	if len(path) < 2 {
		return
	}
	count := len(path) - 1
	if closed {
		count = len(path)
	}
	for i := 0; i < count; i++ {
		a, b := path[i], path[(i+1)%len(path)]
		drawThickLine(img, round(a.X), round(a.Y), round(b.X), round(b.Y), width, col)
	}
}

// fillTriangle fills a triangle on an image using scanline algorithm
func fillTriangle(img *image.RGBA, x1, y1, x2, y2, x3, y3 float64, col color.RGBA) {
	vertices := [][2]float64{
		{x1, y1},
		{x2, y2},
		{x3, y3},
	}

	// Sort vertices by Y coordinate (top to bottom)
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	if vertices[1][1] > vertices[2][1] {
		vertices[1], vertices[2] = vertices[2], vertices[1]
	}
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}

	x1, y1 = vertices[0][0], vertices[0][1]
	x2, y2 = vertices[1][0], vertices[1][1]
	x3, y3 = vertices[2][0], vertices[2][1]

	bounds := img.Bounds()

	for y := int(math.Max(0, math.Ceil(y1))); y <= int(math.Min(float64(bounds.Max.Y-1), y3)); y++ {
		fy := float64(y)

		intersections := make([]float64, 0, 3)

		// Edge 1-2
		if y1 != y2 && fy >= y1 && fy <= y2 {
			t := (fy - y1) / (y2 - y1)
			intersections = append(intersections, x1+t*(x2-x1))
		}

		// Edge 2-3
		if y2 != y3 && fy >= y2 && fy <= y3 {
			t := (fy - y2) / (y3 - y2)
			intersections = append(intersections, x2+t*(x3-x2))
		}

		// Edge 1-3
		if y1 != y3 && fy >= y1 && fy <= y3 {
			t := (fy - y1) / (y3 - y1)
			intersections = append(intersections, x1+t*(x3-x1))
		}

		if len(intersections) < 2 {
			continue
		}

		xStart, xEnd := intersections[0], intersections[0]
		for _, x := range intersections[1:] {
			xStart = math.Min(xStart, x)
			xEnd = math.Max(xEnd, x)
		}

		// Clamp to image bounds
		xStart = math.Max(0, math.Ceil(xStart))
		xEnd = math.Min(float64(bounds.Max.X-1), xEnd)

		for x := int(xStart); x <= int(xEnd); x++ {
			img.SetRGBA(x, y, col)
		}
	}
}

// drawThickLine draws a line with a square brush of the given width
func drawThickLine(img *image.RGBA, x1, y1, x2, y2 int, width float64, col color.RGBA) {
	brush := int(math.Round(width))
	if brush <= 1 {
		drawLine(img, x1, y1, x2, y2, col)
		return
	}
	lo := -(brush - 1) / 2
	hi := lo + brush - 1
	for dy := lo; dy <= hi; dy++ {
		for dx := lo; dx <= hi; dx++ {
			drawLine(img, x1+dx, y1+dy, x2+dx, y2+dy, col)
		}
	}
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
