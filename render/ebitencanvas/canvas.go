// Package ebitencanvas draws frames onto an ebiten image
package ebitencanvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/pong/render"
)

// Canvas adapts an *ebiten.Image to render.Canvas; viewport units are pixels
type Canvas struct {
	dst *ebiten.Image
}

func New(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

// Viewport returns the drawable size in pixels
func (c *Canvas) Viewport() (w, h int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Clear(col color.Color) {
	c.dst.Fill(col)
}

func (c *Canvas) FillRect(r render.Rect, col color.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col, false)
}
