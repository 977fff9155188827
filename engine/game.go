// Package engine owns the two paddles and drives their update and render steps
package engine

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/paddle"
	"github.com/lixenwraith/pong/render"
	"github.com/lixenwraith/pong/vmath"
)

// Wall is the boundary a paddle came to rest against
type Wall uint8

const (
	WallTop Wall = iota
	WallBottom
)

func (w Wall) String() string {
	if w == WallBottom {
		return "bottom"
	}
	return "top"
}

// Bump reports a moving paddle arriving at a wall during an update
type Bump struct {
	Side config.Side
	Wall Wall
}

// BumpHandler receives bumps produced by Update
type BumpHandler interface {
	OnBump(Bump)
}

type player struct {
	side   config.Side
	paddle *paddle.Paddle
	wall   Wall
	atWall bool
}

func restingWall(p *paddle.Paddle) (Wall, bool) {
	if !p.AtWall() {
		return 0, false
	}
	if p.Position().Y <= 0 {
		return WallTop, true
	}
	return WallBottom, true
}

// Game is the simulation/render loop state
// All methods must be called from the single driver goroutine
type Game struct {
	world   vmath.Vec2
	players [2]player
	quit    map[input.Key]struct{}
	bumps   BumpHandler
	log     zerolog.Logger
	rects   []render.Rect
}

// Option customizes a Game
type Option func(*Game)

// WithBumpHandler routes wall arrivals to h
func WithBumpHandler(h BumpHandler) Option {
	return func(g *Game) { g.bumps = h }
}

// WithLogger sets the logger; default is a no-op logger
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// New creates both paddles vertically centred and flush against their walls
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		world: vmath.V2(cfg.WorldWidth, cfg.WorldHeight),
		quit:  make(map[input.Key]struct{}, len(cfg.Quit)),
		log:   zerolog.Nop(),
		rects: make([]render.Rect, 0, len(cfg.Players)),
	}
	for _, opt := range opts {
		opt(g)
	}

	for _, k := range cfg.Quit {
		g.quit[k] = struct{}{}
	}

	spec := paddle.Spec{
		Width:       cfg.PaddleWidth,
		Height:      cfg.PaddleHeight,
		Speed:       cfg.PaddleSpeed,
		WorldHeight: cfg.WorldHeight,
	}
	startY := cfg.WorldHeight/2 - cfg.PaddleHeight/2

	for i, pc := range cfg.Players {
		x := 0.0
		if pc.Side == config.SideRight {
			x = cfg.WorldWidth - cfg.PaddleWidth
		}
		p := paddle.New(paddle.Binding{Up: pc.Up, Down: pc.Down}, spec, vmath.V2(x, startY))
		wall, atWall := restingWall(p)
		g.players[i] = player{side: pc.Side, paddle: p, wall: wall, atWall: atWall}
		g.log.Debug().
			Stringer("side", pc.Side).
			Stringer("up", pc.Up).
			Stringer("down", pc.Down).
			Float64("x", x).
			Float64("y", p.Position().Y).
			Msg("paddle created")
	}
	return g
}

// KeyPress forwards a key press to both paddles
func (g *Game) KeyPress(k input.Key) {
	for i := range g.players {
		g.players[i].paddle.OnKeyPress(k)
	}
}

// KeyRelease forwards a key release to both paddles
func (g *Game) KeyRelease(k input.Key) {
	for i := range g.players {
		g.players[i].paddle.OnKeyRelease(k)
	}
}

// IsQuitKey reports whether k ends the game
func (g *Game) IsQuitKey(k input.Key) bool {
	_, ok := g.quit[k]
	return ok
}

// Update advances both paddles by dt seconds
func (g *Game) Update(dt float64) {
	for i := range g.players {
		pl := &g.players[i]
		moving := pl.paddle.Direction() != paddle.DirNone
		pl.paddle.UpdatePosition(dt)

		wall, atWall := restingWall(pl.paddle)
		if moving && atWall && (!pl.atWall || wall != pl.wall) {
			b := Bump{Side: pl.side, Wall: wall}
			g.log.Debug().Stringer("side", b.Side).Stringer("wall", b.Wall).Msg("bump")
			if g.bumps != nil {
				g.bumps.OnBump(b)
			}
		}
		pl.wall, pl.atWall = wall, atWall
	}
}

// Render draws both paddles scaled to a viewport of vw x vh units
func (g *Game) Render(c render.Canvas, vw, vh int) {
	scale := render.Scale(vmath.V2(float64(vw), float64(vh)), g.world)
	g.rects = g.rects[:0]
	for i := range g.players {
		p := g.players[i].paddle
		g.rects = append(g.rects, render.WorldRect(p.Position(), p.Size(), scale))
	}
	render.Frame(c, g.rects)
}

// PaddleState is a read-only snapshot of one paddle
type PaddleState struct {
	Side      config.Side
	Position  vmath.Vec2
	Direction paddle.Direction
	Velocity  float64
}

// Paddles returns snapshots in configuration order
func (g *Game) Paddles() [2]PaddleState {
	var out [2]PaddleState
	for i, pl := range g.players {
		out[i] = PaddleState{
			Side:      pl.side,
			Position:  pl.paddle.Position(),
			Direction: pl.paddle.Direction(),
			Velocity:  pl.paddle.Velocity(),
		}
	}
	return out
}
