package paddle

import (
	"math"
	"testing"

	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/vmath"
)

var testSpec = Spec{Width: 10, Height: 50, Speed: 150, WorldHeight: 200}

func newLeft(y float64) *Paddle {
	return New(Binding{Up: "w", Down: "s"}, testSpec, vmath.V2(0, y))
}

func TestKeyPressSetsVelocity(t *testing.T) {
	tests := []struct {
		name    string
		key     input.Key
		wantDir Direction
		wantVel float64
	}{
		{"up key", "w", DirUp, -150},
		{"down key", "s", DirDown, 150},
		{"unrelated key", "i", DirNone, 0},
		{"none key", input.KeyNone, DirNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newLeft(75)
			p.OnKeyPress(tt.key)
			if p.Direction() != tt.wantDir {
				t.Errorf("Expected direction %v, got %v", tt.wantDir, p.Direction())
			}
			if p.Velocity() != tt.wantVel {
				t.Errorf("Expected velocity %v, got %v", tt.wantVel, p.Velocity())
			}
		})
	}
}

func TestUnrelatedKeyKeepsDirection(t *testing.T) {
	p := newLeft(75)
	p.OnKeyPress("s")
	p.OnKeyPress("k")
	if p.Velocity() != 150 {
		t.Errorf("Expected velocity 150 after unrelated press, got %v", p.Velocity())
	}
}

func TestLastPressWins(t *testing.T) {
	p := newLeft(75)
	p.OnKeyPress("w")
	p.OnKeyPress("s")
	if p.Direction() != DirDown {
		t.Fatalf("Expected down after pressing down last, got %v", p.Direction())
	}

	// Releasing the superseded key has no effect
	p.OnKeyRelease("w")
	if p.Direction() != DirDown {
		t.Errorf("Expected down to survive release of up key, got %v", p.Direction())
	}

	p.OnKeyRelease("s")
	if p.Direction() != DirNone {
		t.Errorf("Expected none after releasing driving key, got %v", p.Direction())
	}
}

func TestReleaseNonDrivingKey(t *testing.T) {
	p := newLeft(75)
	p.OnKeyPress("w")
	p.OnKeyRelease("s")
	if p.Direction() != DirUp {
		t.Errorf("Expected direction to remain up, got %v", p.Direction())
	}
	p.OnKeyRelease("x")
	if p.Direction() != DirUp {
		t.Errorf("Expected direction to remain up after unrelated release, got %v", p.Direction())
	}
}

func TestPressReleaseRoundTrip(t *testing.T) {
	for _, key := range []input.Key{"w", "s"} {
		p := newLeft(75)
		p.OnKeyPress(key)
		p.OnKeyRelease(key)
		if p.Direction() != DirNone {
			t.Errorf("key %s: expected none, got %v", key, p.Direction())
		}
		if p.Velocity() != 0 {
			t.Errorf("key %s: expected zero velocity, got %v", key, p.Velocity())
		}
	}
}

func TestUpdateClampsToTop(t *testing.T) {
	p := newLeft(75)
	p.OnKeyPress("w")
	p.UpdatePosition(1.0)
	if got := p.Position().Y; got != 0 {
		t.Errorf("Expected y 0 after clamping -75, got %v", got)
	}
	if !p.AtWall() {
		t.Error("Expected paddle to report AtWall at top")
	}
}

func TestUpdateIntegrates(t *testing.T) {
	p := newLeft(75)
	p.OnKeyPress("s")
	p.UpdatePosition(0.1)
	if got := p.Position().Y; math.Abs(got-90) > 1e-9 {
		t.Errorf("Expected y 90, got %v", got)
	}
	if p.AtWall() {
		t.Error("Expected paddle away from walls")
	}
}

func TestUpdateNoDirectionIsNoop(t *testing.T) {
	for _, dt := range []float64{0, 0.016, 1, 1e9, math.Inf(1)} {
		p := newLeft(42)
		p.UpdatePosition(dt)
		if got := p.Position().Y; got != 42 {
			t.Errorf("dt=%v: expected y 42, got %v", dt, got)
		}
	}
}

func TestClampInvariant(t *testing.T) {
	starts := []float64{0, 1, 75, 149.5, 150}
	dts := []float64{0, 1e-6, 0.008, 0.5, 1, 3, 1e6, math.Inf(1), -1, math.NaN()}
	keys := []input.Key{"w", "s", ""}

	for _, y := range starts {
		for _, dt := range dts {
			for _, key := range keys {
				p := newLeft(y)
				p.OnKeyPress(key)
				p.UpdatePosition(dt)
				got := p.Position().Y
				if got < 0 || got > testSpec.MaxY() || math.IsNaN(got) {
					t.Errorf("start=%v dt=%v key=%q: y=%v outside [0, %v]", y, dt, key, got, testSpec.MaxY())
				}
				if p.Position().X != 0 {
					t.Errorf("x changed to %v", p.Position().X)
				}
			}
		}
	}
}

func TestNewClampsStart(t *testing.T) {
	p := newLeft(500)
	if got := p.Position().Y; got != 150 {
		t.Errorf("Expected start y clamped to 150, got %v", got)
	}
}

func TestDirectionString(t *testing.T) {
	if DirNone.String() != "none" || DirUp.String() != "up" || DirDown.String() != "down" {
		t.Errorf("unexpected names: %s %s %s", DirNone, DirUp, DirDown)
	}
}
