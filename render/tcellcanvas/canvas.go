// Package tcellcanvas rasterizes frames onto a tcell screen; viewport units are cells
package tcellcanvas

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/render"
)

// Canvas draws into a tcell.Screen back buffer; caller invokes Show
type Canvas struct {
	screen tcell.Screen
}

func New(screen tcell.Screen) *Canvas {
	return &Canvas{screen: screen}
}

// Viewport returns the screen size in cells
func (c *Canvas) Viewport() (w, h int) {
	return c.screen.Size()
}

func (c *Canvas) Clear(col color.Color) {
	c.screen.Fill(' ', tcell.StyleDefault.Background(toColor(col)))
}

// FillRect paints every cell whose centre falls inside r
func (c *Canvas) FillRect(r render.Rect, col color.Color) {
	w, h := c.screen.Size()
	x0, x1 := cellSpan(r.X, r.W, w)
	y0, y1 := cellSpan(r.Y, r.H, h)

	style := tcell.StyleDefault.Background(toColor(col))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// cellSpan returns the half-open cell range [lo, hi) whose centres lie in [start, start+size)
func cellSpan(start, size float64, limit int) (lo, hi int) {
	lo = int(math.Ceil(start - 0.5))
	hi = int(math.Ceil(start + size - 0.5))
	if lo < 0 {
		lo = 0
	}
	if hi > limit {
		hi = limit
	}
	return lo, hi
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
