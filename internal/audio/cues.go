package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Wave is an oscillator shape.
type Wave uint8

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// tone is a fixed-length oscillator.
type tone struct {
	freq  float64
	wave  Wave
	rate  beep.SampleRate
	phase float64
	left  int // Samples still to produce
}

func newTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) *tone {
	return &tone{freq: freq, wave: wave, rate: rate, left: rate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.left <= 0 {
		return 0, false
	}
	for i := range samples {
		if t.left == 0 {
			return i, true
		}
		var v float64
		switch t.wave {
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (t.phase - 0.5)
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}
		samples[i][0], samples[i][1] = v, v
		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.left--
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// fade applies a linear release over the last part of a streamer of known length.
type fade struct {
	s       beep.Streamer
	pos     int
	total   int
	release int
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	start := f.total - f.release
	for i := 0; i < n; i++ {
		if f.pos >= start && f.release > 0 {
			vol := float64(f.total-f.pos) / float64(f.release)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

// note is one step of a cue.
type note struct {
	freq float64
	d    time.Duration
	wave Wave
}

// sequence renders notes back to back, each with a short release to avoid clicks.
func sequence(rate beep.SampleRate, notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		total := rate.N(n.d)
		parts = append(parts, &fade{
			s:       newTone(n.freq, n.d, n.wave, rate),
			total:   total,
			release: min(total, rate.N(15*time.Millisecond)),
		})
	}
	return beep.Seq(parts...)
}

// withVolume scales s by a linear gain.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Cue returns the sound for a gameplay event, or nil when the event is silent.
func Cue(e core.Event, rate beep.SampleRate) beep.Streamer {
	switch e {
	case core.EventFlap:
		return withVolume(sequence(rate, note{620, 40 * time.Millisecond, WaveSine}), 0.3)
	case core.EventScore:
		return sequence(rate,
			note{988, 60 * time.Millisecond, WaveSquare},
			note{1319, 120 * time.Millisecond, WaveSquare},
		)
	case core.EventPowerUp:
		return sequence(rate,
			note{784, 50 * time.Millisecond, WaveSquare},
			note{988, 50 * time.Millisecond, WaveSquare},
			note{1319, 50 * time.Millisecond, WaveSquare},
			note{1568, 100 * time.Millisecond, WaveSquare},
		)
	case core.EventHit:
		return sequence(rate, note{110, 150 * time.Millisecond, WaveSaw})
	case core.EventGameOver:
		return sequence(rate,
			note{440, 150 * time.Millisecond, WaveSine},
			note{330, 150 * time.Millisecond, WaveSine},
			note{220, 300 * time.Millisecond, WaveSine},
		)
	default:
		return nil
	}
}
