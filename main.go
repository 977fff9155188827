package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/logging"
	"github.com/lixenwraith/pong/window"
)

func main() {
	log := logging.New(os.Stderr, zerolog.InfoLevel)
	cfg := config.Default()

	// Non-fatal, game can run without sound
	sound := audio.NewSoundManager(cfg, log)
	if err := sound.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio disabled")
	}

	game := engine.New(cfg, engine.WithBumpHandler(sound), engine.WithLogger(log))

	err := window.Run(cfg, game, log)
	sound.Cleanup()
	if err != nil {
		log.Fatal().Err(err).Msg("graphics backend failed")
	}
}
