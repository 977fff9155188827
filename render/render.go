// Package render maps world-space paddles onto a viewport and draws them through a Canvas
package render

import (
	"image/color"

	"github.com/lixenwraith/pong/vmath"
)

var (
	Black = color.RGBA{A: 0xff}
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Rect is an axis-aligned rectangle in viewport units (pixels or cells)
type Rect struct {
	X, Y, W, H float64
}

// Canvas is a drawing surface for one frame
type Canvas interface {
	Clear(c color.Color)
	FillRect(r Rect, c color.Color)
}

// Scale returns independent per-axis factors from world units to viewport units
// Aspect ratio is not preserved: shapes stretch to fill the viewport
func Scale(viewport, world vmath.Vec2) vmath.Vec2 {
	return vmath.V2(viewport.X/world.X, viewport.Y/world.Y)
}

// WorldRect transforms a world-space box into viewport space
func WorldRect(pos, size, scale vmath.Vec2) Rect {
	p := pos.Mul(scale)
	s := size.Mul(scale)
	return Rect{X: p.X, Y: p.Y, W: s.X, H: s.Y}
}

// Frame clears the canvas to black and fills each rect in white
func Frame(c Canvas, rects []Rect) {
	c.Clear(Black)
	for _, r := range rects {
		c.FillRect(r, White)
	}
}
