package render

import "image/color"

// DrawOp is one recorded canvas call; Clear ops have Clear set and Rect zero
type DrawOp struct {
	Clear bool
	Rect  Rect
	Color color.Color
}

// Recorder is a Canvas that stores calls for inspection
type Recorder struct {
	Ops []DrawOp
}

func (r *Recorder) Clear(c color.Color) {
	r.Ops = append(r.Ops, DrawOp{Clear: true, Color: c})
}

func (r *Recorder) FillRect(rect Rect, c color.Color) {
	r.Ops = append(r.Ops, DrawOp{Rect: rect, Color: c})
}

// Rects returns the filled rectangles in draw order
func (r *Recorder) Rects() []Rect {
	var out []Rect
	for _, op := range r.Ops {
		if !op.Clear {
			out = append(out, op.Rect)
		}
	}
	return out
}

// Reset drops recorded ops
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
