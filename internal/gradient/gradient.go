// Package gradient builds directional color gradients anchored to a model color.
package gradient

import (
	"github.com/mwiater/mathbench/internal/palette"
)

// Orientation selects the direction a gradient runs in.
type Orientation string

const (
	// Vertical runs top to bottom, used for upright bars.
	Vertical Orientation = "vertical"
	// Horizontal runs left to right, used for bars along the y index axis.
	Horizontal Orientation = "horizontal"
)

// Opacity stops for each orientation and the flat fallback used before layout.
const (
	VerticalStart   = 0.95
	VerticalEnd     = 0.15
	HorizontalStart = 0.20
	HorizontalEnd   = 0.95
	FlatAlpha       = 0.80
)

// Gradient receives color stops; it mirrors a canvas gradient object.
type Gradient interface {
	AddColorStop(offset float64, color string)
}

// Context is the slice of a 2D drawing context the builder needs.
type Context interface {
	CreateLinearGradient(x0, y0, x1, y1 float64) Gradient
}

// Area is the pixel rectangle data marks are plotted in.
type Area struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Build returns a gradient for rgb over area, or a flat rgba string when the
// plotted area (or the context) is not known yet. It has no side effects beyond
// the gradient object it creates, so repaint callbacks may call it repeatedly.
func Build(ctx Context, rgb palette.RGB, area *Area, o Orientation) any {
	if ctx == nil || area == nil {
		return Flat(rgb)
	}
	var g Gradient
	switch o {
	case Horizontal:
		g = ctx.CreateLinearGradient(area.Left, 0, area.Right, 0)
		g.AddColorStop(0, rgb.Alpha(HorizontalStart).String())
		g.AddColorStop(1, rgb.Alpha(HorizontalEnd).String())
	default:
		g = ctx.CreateLinearGradient(0, area.Top, 0, area.Bottom)
		g.AddColorStop(0, rgb.Alpha(VerticalStart).String())
		g.AddColorStop(1, rgb.Alpha(VerticalEnd).String())
	}
	return g
}

// Flat is the single-color fill used while layout is unresolved.
func Flat(rgb palette.RGB) string {
	return rgb.Alpha(FlatAlpha).String()
}
