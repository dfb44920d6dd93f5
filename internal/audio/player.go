// Package audio plays short synthesized cues for gameplay events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// SampleRate is the output rate of the speaker.
const SampleRate = beep.SampleRate(44100)

// Player reacts to gameplay events. Play never blocks on the sound.
type Player interface {
	Play(events ...core.Event)
	Close()
}

// Nop is a muted Player.
type Nop struct{}

func (Nop) Play(...core.Event) {}
func (Nop) Close()             {}

// Beep plays cues through the system speaker.
type Beep struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	logger      *log.Logger
	initialized bool
}

// NewBeep creates a player with a linear master volume in [0, 1].
func NewBeep(volume float64, logger *log.Logger) *Beep {
	if logger == nil {
		logger = log.Default()
	}
	return &Beep{
		mixer:  &beep.Mixer{},
		volume: min(max(volume, 0), 1),
		logger: logger.WithPrefix("audio"),
	}
}

// Init opens the speaker and starts the mixer.
func (b *Beep) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.initialized = true
	b.logger.Debug("speaker ready", "rate", int(SampleRate))
	return nil
}

// Play queues the cue of every event that has one.
func (b *Beep) Play(events ...core.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	for _, e := range events {
		cue := Cue(e, SampleRate)
		if cue == nil {
			continue
		}
		speaker.Lock()
		b.mixer.Add(withVolume(cue, b.volume))
		speaker.Unlock()
	}
}

// Close silences pending cues and releases the speaker.
func (b *Beep) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	b.initialized = false
}
