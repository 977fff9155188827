// Package config decodes and validates the game's fixed configuration
package config

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/pong/input"
)

//go:embed default.toml
var defaultTOML []byte

// Side identifies which wall a paddle is flush against
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

func parseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "left":
		return SideLeft, nil
	case "right":
		return SideRight, nil
	}
	return 0, fmt.Errorf("unknown side %q", s)
}

// Player binds a key pair to one side of the field
type Player struct {
	Side Side
	Up   input.Key
	Down input.Key
}

// Config is the resolved, validated game configuration
// It is passed by value and never mutated after Load
type Config struct {
	Title string

	WorldWidth  float64
	WorldHeight float64

	PaddleWidth  float64
	PaddleHeight float64
	PaddleSpeed  float64

	WindowWidth     int
	WindowHeight    int
	WindowResizable bool

	UpdateRate int // update ticks per second
	RenderRate int // render ticks per second (terminal driver)

	Players [2]Player
	Quit    []input.Key

	AudioEnabled bool
	AudioVolume  float64 // 0..1
	BumpFreq     float64 // Hz
	BumpDuration time.Duration
}

// UpdateInterval returns the fixed update tick period
func (c Config) UpdateInterval() time.Duration {
	return time.Second / time.Duration(c.UpdateRate)
}

// RenderInterval returns the render tick period
func (c Config) RenderInterval() time.Duration {
	return time.Second / time.Duration(c.RenderRate)
}

// file mirrors the TOML layout
type file struct {
	Title string `toml:"title"`
	World struct {
		Width  float64 `toml:"width"`
		Height float64 `toml:"height"`
	} `toml:"world"`
	Paddle struct {
		Width  float64 `toml:"width"`
		Height float64 `toml:"height"`
		Speed  float64 `toml:"speed"`
	} `toml:"paddle"`
	Window struct {
		Width     int  `toml:"width"`
		Height    int  `toml:"height"`
		Resizable bool `toml:"resizable"`
	} `toml:"window"`
	Loop struct {
		UpdateRate int `toml:"update_rate"`
		RenderRate int `toml:"render_rate"`
	} `toml:"loop"`
	Keys struct {
		Quit []string `toml:"quit"`
	} `toml:"keys"`
	Players []struct {
		Side string `toml:"side"`
		Up   string `toml:"up"`
		Down string `toml:"down"`
	} `toml:"players"`
	Audio struct {
		Enabled bool    `toml:"enabled"`
		Volume  float64 `toml:"volume"`
		BumpHz  float64 `toml:"bump_hz"`
		BumpMs  int     `toml:"bump_ms"`
	} `toml:"audio"`
}

// Default returns the embedded configuration
// Panics if the embedded file is invalid, which is a build defect
func Default() Config {
	cfg, err := Load(defaultTOML)
	if err != nil {
		panic(fmt.Sprintf("embedded config: %v", err))
	}
	return cfg
}

// Load parses TOML data into a validated Config
// Unknown keys, unknown key names, and inconsistent dimensions are errors
func Load(data []byte) (Config, error) {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config: unknown key %q", undecoded[0].String())
	}

	cfg := Config{
		Title:           f.Title,
		WorldWidth:      f.World.Width,
		WorldHeight:     f.World.Height,
		PaddleWidth:     f.Paddle.Width,
		PaddleHeight:    f.Paddle.Height,
		PaddleSpeed:     f.Paddle.Speed,
		WindowWidth:     f.Window.Width,
		WindowHeight:    f.Window.Height,
		WindowResizable: f.Window.Resizable,
		UpdateRate:      f.Loop.UpdateRate,
		RenderRate:      f.Loop.RenderRate,
		AudioEnabled:    f.Audio.Enabled,
		AudioVolume:     f.Audio.Volume,
		BumpFreq:        f.Audio.BumpHz,
		BumpDuration:    time.Duration(f.Audio.BumpMs) * time.Millisecond,
	}

	for _, name := range f.Keys.Quit {
		k, err := input.ParseKey(name)
		if err != nil {
			return Config{}, fmt.Errorf("keys.quit: %w", err)
		}
		cfg.Quit = append(cfg.Quit, k)
	}

	if len(f.Players) != len(cfg.Players) {
		return Config{}, fmt.Errorf("players: expected %d entries, got %d", len(cfg.Players), len(f.Players))
	}
	for i, fp := range f.Players {
		side, err := parseSide(fp.Side)
		if err != nil {
			return Config{}, fmt.Errorf("players[%d]: %w", i, err)
		}
		up, err := input.ParseKey(fp.Up)
		if err != nil {
			return Config{}, fmt.Errorf("players[%d].up: %w", i, err)
		}
		down, err := input.ParseKey(fp.Down)
		if err != nil {
			return Config{}, fmt.Errorf("players[%d].down: %w", i, err)
		}
		cfg.Players[i] = Player{Side: side, Up: up, Down: down}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.WorldWidth <= 0 || c.WorldHeight <= 0:
		return fmt.Errorf("world: dimensions must be positive, got %vx%v", c.WorldWidth, c.WorldHeight)
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0:
		return fmt.Errorf("paddle: dimensions must be positive, got %vx%v", c.PaddleWidth, c.PaddleHeight)
	case c.PaddleWidth > c.WorldWidth || c.PaddleHeight > c.WorldHeight:
		return fmt.Errorf("paddle: %vx%v does not fit world %vx%v", c.PaddleWidth, c.PaddleHeight, c.WorldWidth, c.WorldHeight)
	case c.PaddleSpeed <= 0:
		return fmt.Errorf("paddle: speed must be positive, got %v", c.PaddleSpeed)
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("window: size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	case c.UpdateRate <= 0 || c.RenderRate <= 0:
		return fmt.Errorf("loop: rates must be positive, got update=%d render=%d", c.UpdateRate, c.RenderRate)
	case c.AudioVolume < 0 || c.AudioVolume > 1:
		return fmt.Errorf("audio: volume must be within [0, 1], got %v", c.AudioVolume)
	case c.AudioEnabled && (c.BumpFreq <= 0 || c.BumpDuration <= 0):
		return fmt.Errorf("audio: bump tone needs positive frequency and duration")
	}

	if c.Players[0].Side == c.Players[1].Side {
		return fmt.Errorf("players: both bound to %s side", c.Players[0].Side)
	}

	seen := make(map[input.Key]string)
	claim := func(k input.Key, owner string) error {
		if prev, ok := seen[k]; ok {
			return fmt.Errorf("key %q bound to both %s and %s", k, prev, owner)
		}
		seen[k] = owner
		return nil
	}
	for _, p := range c.Players {
		if err := claim(p.Up, p.Side.String()+" up"); err != nil {
			return err
		}
		if err := claim(p.Down, p.Side.String()+" down"); err != nil {
			return err
		}
	}
	for _, k := range c.Quit {
		if err := claim(k, "quit"); err != nil {
			return err
		}
	}
	return nil
}
