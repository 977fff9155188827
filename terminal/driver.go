// Package terminal runs the game on a tcell screen
package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/render/tcellcanvas"
)

// maxDt bounds a single update after the process was stopped or starved
const maxDt = 0.25

// Driver feeds tcell events and timed ticks into an engine.Game
// Game state is only touched from the goroutine calling Run
type Driver struct {
	screen tcell.Screen
	game   *engine.Game
	canvas *tcellcanvas.Canvas
	holds  *input.HoldTracker
	tp     engine.TimeProvider
	clock  *engine.DeltaClock
	log    zerolog.Logger

	updateEvery time.Duration
	renderEvery time.Duration

	released []input.Key
}

// Option customizes a Driver
type Option func(*Driver)

// WithTimeProvider replaces the system clock
func WithTimeProvider(tp engine.TimeProvider) Option {
	return func(d *Driver) { d.tp = tp }
}

// WithLogger sets the logger; default is a no-op logger
func WithLogger(l zerolog.Logger) Option {
	return func(d *Driver) { d.log = l }
}

// WithHoldTimes overrides synthesized key-release timing
func WithHoldTimes(initial, repeat time.Duration) Option {
	return func(d *Driver) { d.holds = input.NewHoldTracker(initial, repeat) }
}

// New creates a driver over an initialized screen
func New(screen tcell.Screen, game *engine.Game, cfg config.Config, opts ...Option) *Driver {
	d := &Driver{
		screen:      screen,
		game:        game,
		canvas:      tcellcanvas.New(screen),
		holds:       input.NewHoldTracker(0, 0),
		tp:          engine.NewTimeProvider(),
		log:         zerolog.Nop(),
		updateEvery: cfg.UpdateInterval(),
		renderEvery: cfg.RenderInterval(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.clock = engine.NewDeltaClock(d.tp)
	return d
}

// Run services events and ticks until a quit key, context cancellation, or screen shutdown
func (d *Driver) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)

	core.Go(func() {
		d.screen.ChannelEvents(events, quit)
	})

	updateTicker := time.NewTicker(d.updateEvery)
	defer updateTicker.Stop()
	renderTicker := time.NewTicker(d.renderEvery)
	defer renderTicker.Stop()

	d.log.Info().
		Dur("update_every", d.updateEvery).
		Dur("render_every", d.renderEvery).
		Msg("terminal loop started")

	d.Draw()
	for {
		select {
		case <-ctx.Done():
			d.log.Info().Err(ctx.Err()).Msg("terminal loop cancelled")
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if d.HandleEvent(ev) {
				d.log.Info().Msg("quit requested")
				return nil
			}

		case <-updateTicker.C:
			d.Step()

		case <-renderTicker.C:
			d.Draw()
		}
	}
}

// HandleEvent applies one tcell event; returns true when the game should exit
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k := KeyOf(ev)
		if k == input.KeyNone {
			return false
		}
		if d.game.IsQuitKey(k) {
			return true
		}
		// Auto-repeat of a held key is not a new press
		if d.holds.Press(k, d.tp.Now()) {
			d.game.KeyPress(k)
		}

	case *tcell.EventResize:
		d.screen.Sync()
		d.Draw()

	case *tcell.EventFocus:
		if !ev.Focused {
			d.released = d.holds.Reset(d.released[:0])
			d.releaseAll()
		}
	}
	return false
}

// Step is one update tick: synthesize expired releases, then integrate
func (d *Driver) Step() {
	d.released = d.holds.Expire(d.tp.Now(), d.released[:0])
	d.releaseAll()
	d.game.Update(d.clock.Tick(maxDt))
}

// Draw is one render tick
func (d *Driver) Draw() {
	w, h := d.canvas.Viewport()
	d.game.Render(d.canvas, w, h)
	d.screen.Show()
}

func (d *Driver) releaseAll() {
	for _, k := range d.released {
		d.game.KeyRelease(k)
	}
}
