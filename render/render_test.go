package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/pong/vmath"
)

const eps = 1e-9

func rectNear(a, b Rect) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.W-b.W) < eps && math.Abs(a.H-b.H) < eps
}

func TestScaleNonUniform(t *testing.T) {
	s := Scale(vmath.V2(640, 480), vmath.V2(200, 200))
	if math.Abs(s.X-3.2) > eps || math.Abs(s.Y-2.4) > eps {
		t.Errorf("Expected scale (3.2, 2.4), got (%v, %v)", s.X, s.Y)
	}
}

func TestWorldRect(t *testing.T) {
	scale := Scale(vmath.V2(640, 480), vmath.V2(200, 200))

	tests := []struct {
		name string
		pos  vmath.Vec2
		want Rect
	}{
		{"left centred", vmath.V2(0, 75), Rect{X: 0, Y: 180, W: 32, H: 120}},
		{"right centred", vmath.V2(190, 75), Rect{X: 608, Y: 180, W: 32, H: 120}},
		{"left top", vmath.V2(0, 0), Rect{X: 0, Y: 0, W: 32, H: 120}},
		{"left bottom", vmath.V2(0, 150), Rect{X: 0, Y: 360, W: 32, H: 120}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WorldRect(tt.pos, vmath.V2(10, 50), scale)
			if !rectNear(got, tt.want) {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestFrameClearsThenFills(t *testing.T) {
	var rec Recorder
	rects := []Rect{{X: 1, Y: 2, W: 3, H: 4}, {X: 5, Y: 6, W: 7, H: 8}}
	Frame(&rec, rects)

	if len(rec.Ops) != 3 {
		t.Fatalf("Expected 3 ops, got %d", len(rec.Ops))
	}
	if !rec.Ops[0].Clear || rec.Ops[0].Color != Black {
		t.Errorf("Expected first op to clear black, got %+v", rec.Ops[0])
	}
	for i, op := range rec.Ops[1:] {
		if op.Clear || op.Color != White || op.Rect != rects[i] {
			t.Errorf("op %d: expected white fill of %+v, got %+v", i+1, rects[i], op)
		}
	}

	rec.Reset()
	if len(rec.Rects()) != 0 {
		t.Errorf("Expected no rects after reset, got %d", len(rec.Rects()))
	}
}
