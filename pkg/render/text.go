package render

import (
	"image"
	"image/color"

	"github.com/philipparndt/lebna/pkg/geometry"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var labelFace font.Face = basicfont.Face7x13

// drawLabel draws text centered on the given point
func drawLabel(img *image.RGBA, at geometry.Point, text string, col color.RGBA) {
	if text == "" {
		return
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: labelFace,
	}

	width := d.MeasureString(text)
	metrics := labelFace.Metrics()
	height := metrics.Ascent + metrics.Descent

	d.Dot = fixed.Point26_6{
		X: fixed.I(round(at.X)) - width/2,
		Y: fixed.I(round(at.Y)) + height/2 - metrics.Descent,
	}
	d.DrawString(text)
}
