// pong-term plays the game full-screen in a terminal
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/logging"
	"github.com/lixenwraith/pong/terminal"
)

func main() {
	// Log lines would corrupt the screen; hold them until it is released
	var deferred logging.Deferred
	log := logging.New(&deferred, zerolog.InfoLevel)

	code := run(log)
	deferred.Flush(os.Stderr)
	os.Exit(code)
}

func run(log zerolog.Logger) int {
	cfg := config.Default()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Error().Err(err).Msg("failed to create screen")
		return 1
	}
	if err := screen.Init(); err != nil {
		log.Error().Err(err).Msg("failed to initialize screen")
		return 1
	}
	core.RegisterCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer func() {
		core.RegisterCrashScreen(nil)
		screen.Fini()
	}()

	screen.HideCursor()
	screen.EnableFocus()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))

	sound := audio.NewSoundManager(cfg, log)
	if err := sound.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio disabled")
	}
	defer sound.Cleanup()

	game := engine.New(cfg, engine.WithBumpHandler(sound), engine.WithLogger(log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, h := screen.Size()
	log.Info().Int("cols", w).Int("rows", h).Msg("terminal ready")

	if err := terminal.New(screen, game, cfg, terminal.WithLogger(log)).Run(ctx); err != nil {
		log.Error().Err(err).Msg("terminal loop failed")
		return 1
	}
	return 0
}
