// Package audio plays short tones for paddle wall bumps
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/engine"
)

const (
	sampleRate = beep.SampleRate(48000)

	// Stereo placement of each side's bumps
	sidePan = 0.6
	// Bottom-wall bumps sound lower
	bottomPitch = 0.75
)

// sink receives finished streamers; the speaker mixer in production
type sink interface {
	Add(s beep.Streamer)
}

// speakerSink adds to a mixer already playing on the speaker
type speakerSink struct {
	mixer *beep.Mixer
}

func (s speakerSink) Add(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// SoundManager manages bump tones; all methods are safe on an uninitialized manager
type SoundManager struct {
	mu          sync.Mutex
	out         sink
	volume      float64
	freq        float64
	duration    time.Duration
	enabled     bool
	initialized bool
	log         zerolog.Logger
}

// NewSoundManager creates a manager from config; call Initialize to open the device
func NewSoundManager(cfg config.Config, log zerolog.Logger) *SoundManager {
	return &SoundManager{
		volume:   cfg.AudioVolume,
		freq:     cfg.BumpFreq,
		duration: cfg.BumpDuration,
		enabled:  cfg.AudioEnabled,
		log:      log,
	}
}

// Initialize opens the speaker
// Failure is returned but the manager stays usable as a silent sink
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	mixer := &beep.Mixer{}
	speaker.Play(mixer)
	sm.out = speakerSink{mixer: mixer}
	sm.initialized = true
	return nil
}

// Cleanup stops playback and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.out = nil
	sm.initialized = false
}

// OnBump implements engine.BumpHandler
func (sm *SoundManager) OnBump(b engine.Bump) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.out == nil {
		return
	}

	st, err := sm.bumpStreamer(b)
	if err != nil {
		sm.log.Warn().Err(err).Msg("bump tone")
		return
	}
	sm.out.Add(st)
}

// bumpStreamer builds a finite, panned, attenuated sine blip for b
func (sm *SoundManager) bumpStreamer(b engine.Bump) (beep.Streamer, error) {
	freq := sm.freq
	if b.Wall == engine.WallBottom {
		freq *= bottomPitch
	}

	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}

	pan := -sidePan
	if b.Side == config.SideRight {
		pan = sidePan
	}

	var st beep.Streamer = beep.Take(sampleRate.N(sm.duration), tone)
	st = &effects.Pan{Streamer: st, Pan: pan}
	st = &effects.Volume{
		Streamer: st,
		Base:     2,
		Volume:   math.Log2(sm.volume),
		Silent:   sm.volume == 0,
	}
	return st, nil
}
