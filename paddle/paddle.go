// Package paddle turns key events into vertical paddle motion inside a fixed world
package paddle

import (
	"math"

	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/vmath"
)

// Binding is the key pair driving one paddle
type Binding struct {
	Up   input.Key
	Down input.Key
}

// Spec holds the immutable physical parameters of a paddle
type Spec struct {
	Width       float64
	Height      float64
	Speed       float64 // world units per second
	WorldHeight float64
}

// MaxY is the largest legal top-left Y
func (s Spec) MaxY() float64 {
	return math.Max(0, s.WorldHeight-s.Height)
}

// Paddle is one player's control surface
// Invariant: 0 <= pos.Y <= spec.MaxY(); pos.X never changes after New
type Paddle struct {
	binding Binding
	spec    Spec
	pos     vmath.Vec2
	dir     Direction
}

// New creates a paddle at pos with Y clamped into the world
func New(binding Binding, spec Spec, pos vmath.Vec2) *Paddle {
	pos.Y = vmath.Clamp(pos.Y, 0, spec.MaxY())
	return &Paddle{
		binding: binding,
		spec:    spec,
		pos:     pos,
	}
}

// OnKeyPress sets direction if key matches a binding; last press wins
func (p *Paddle) OnKeyPress(key input.Key) {
	switch key {
	case p.binding.Up:
		p.dir = DirUp
	case p.binding.Down:
		p.dir = DirDown
	}
}

// OnKeyRelease clears direction only when key is the one currently driving it
func (p *Paddle) OnKeyRelease(key input.Key) {
	switch {
	case p.dir == DirUp && key == p.binding.Up:
		p.dir = DirNone
	case p.dir == DirDown && key == p.binding.Down:
		p.dir = DirNone
	}
}

// Velocity returns vertical velocity in world units per second
func (p *Paddle) Velocity() float64 {
	return p.dir.Sign() * p.spec.Speed
}

// UpdatePosition integrates velocity over dt seconds and clamps to the world
// Negative or NaN dt is treated as zero
func (p *Paddle) UpdatePosition(dt float64) {
	v := p.Velocity()
	if v == 0 || !(dt > 0) {
		return
	}
	p.pos.Y = vmath.Clamp(p.pos.Y+v*dt, 0, p.spec.MaxY())
}

// AtWall reports whether the paddle rests against the top or bottom wall
func (p *Paddle) AtWall() bool {
	return p.pos.Y <= 0 || p.pos.Y >= p.spec.MaxY()
}

// Position returns the top-left corner in world units
func (p *Paddle) Position() vmath.Vec2 { return p.pos }

// Size returns width and height in world units
func (p *Paddle) Size() vmath.Vec2 { return vmath.V2(p.spec.Width, p.spec.Height) }

// Direction returns the current movement direction
func (p *Paddle) Direction() Direction { return p.dir }

// Binding returns the key pair
func (p *Paddle) Binding() Binding { return p.binding }
