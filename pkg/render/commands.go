package render

import (
	"image/color"
	"strconv"

	"github.com/philipparndt/lebna/pkg/geometry"
)

// Op identifies a drawing operation
type Op int

const (
	OpClear Op = iota
	OpMoveTo
	OpLineTo
	OpClosePath
	OpFill
	OpStroke
	OpText
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpMoveTo:
		return "moveTo"
	case OpLineTo:
		return "lineTo"
	case OpClosePath:
		return "closePath"
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	case OpText:
		return "text"
	}
	return "op(" + strconv.Itoa(int(o)) + ")"
}

// Command is one immediate-mode drawing instruction. Only the fields that
// apply to Op are set.
type Command struct {
	Op    Op
	Point geometry.Point
	Color color.RGBA
	Width float64
	Text  string
}

// Options controls the drawing surface and style
type Options struct {
	Width       float64
	Height      float64
	Background  color.RGBA
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64
	Labels      bool // draw side lengths next to each side
}

// Default surface matches the form's fixed 400×200 drawing area
var (
	DefaultBackground = color.RGBA{255, 255, 255, 255}
	DefaultFill       = color.RGBA{0xFF, 0xD7, 0x00, 255} // #FFD700
	DefaultStroke     = color.RGBA{0, 0, 0, 255}
)

// DefaultOptions returns the default 400×200 surface style
func DefaultOptions() Options {
	return Options{
		Width:       400,
		Height:      200,
		Background:  DefaultBackground,
		Fill:        DefaultFill,
		Stroke:      DefaultStroke,
		StrokeWidth: 1,
	}
}

// Commands turns a side triple into the draw commands for one frame.
// The frame always starts with a clear; the triangle itself is only emitted
// when the sides can be laid out.
func Commands(sides geometry.Sides, opts Options) []Command {
	cmds := []Command{{Op: OpClear, Color: opts.Background}}

	layout, ok := sides.Layout(opts.Width, opts.Height)
	if !ok {
		return cmds
	}

	cmds = append(cmds,
		Command{Op: OpMoveTo, Point: layout.Left},
		Command{Op: OpLineTo, Point: layout.Apex},
		Command{Op: OpLineTo, Point: layout.Right},
		Command{Op: OpClosePath},
		Command{Op: OpFill, Color: opts.Fill},
		Command{Op: OpStroke, Color: opts.Stroke, Width: opts.StrokeWidth},
	)

	if opts.Labels {
		cmds = append(cmds, labelCommands(sides, layout, opts.Stroke)...)
	}

	return cmds
}

// labelCommands places each side's length at the midpoint of its edge.
// Left–Apex carries the second-longest side, Apex–Right the shortest and
// Right–Left the longest.
func labelCommands(sides geometry.Sides, layout geometry.Layout, col color.RGBA) []Command {
	sorted := sides.Sorted()
	lengths := [3]float64{sorted[1], sorted[2], sorted[0]}

	vertices := layout.Vertices()
	cmds := make([]Command, 0, len(vertices))
	for i := range vertices {
		a, b := vertices[i], vertices[(i+1)%len(vertices)]
		cmds = append(cmds, Command{
			Op:    OpText,
			Point: a.Midpoint(b),
			Color: col,
			Text:  strconv.FormatFloat(lengths[i], 'f', -1, 64),
		})
	}
	return cmds
}
