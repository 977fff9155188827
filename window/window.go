// Package window runs the game in a desktop window via ebiten
package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/render/ebitencanvas"
)

// Game adapts engine.Game to ebiten.Game
// Update is the update tick with a fixed dt of 1/TPS; Draw is the render tick
type Game struct {
	game *engine.Game
	log  zerolog.Logger
	tps  int

	pressed  []ebiten.Key
	released []ebiten.Key
}

// New wraps game for ebiten; tps must match the rate passed to ebiten.SetTPS
func New(game *engine.Game, tps int, log zerolog.Logger) *Game {
	return &Game{game: game, tps: tps, log: log}
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	g.released = inpututil.AppendJustReleasedKeys(g.released[:0])
	return g.step(g.pressed, g.released)
}

// step applies this tick's key transitions then advances the simulation
func (g *Game) step(pressed, released []ebiten.Key) error {
	for _, ek := range pressed {
		k := KeyOf(ek)
		if k == "" {
			continue
		}
		if g.game.IsQuitKey(k) {
			g.log.Info().Stringer("key", k).Msg("quit requested")
			return ebiten.Termination
		}
		g.game.KeyPress(k)
	}
	for _, ek := range released {
		if k := KeyOf(ek); k != "" {
			g.game.KeyRelease(k)
		}
	}

	g.game.Update(1 / float64(g.tps))
	return nil
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	c := ebitencanvas.New(screen)
	w, h := c.Viewport()
	g.game.Render(c, w, h)
}

// Layout implements ebiten.Game; the viewport tracks the window size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed or a quit key is pressed
func Run(cfg config.Config, game *engine.Game, log zerolog.Logger) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	if cfg.WindowResizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.UpdateRate)

	log.Info().
		Str("title", cfg.Title).
		Int("width", cfg.WindowWidth).
		Int("height", cfg.WindowHeight).
		Int("tps", cfg.UpdateRate).
		Msg("opening window")

	// Termination from Update ends RunGame with a nil error
	if err := ebiten.RunGame(New(game, cfg.UpdateRate, log)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
