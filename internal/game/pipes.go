package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PipeManager handles spawning, movement, and removal of pipes.
// Pipes are kept in spawn order, so the oldest (leftmost) pipe is first.
type PipeManager struct {
	pipes     []Pipe
	cfg       config.PipeConfig
	world     config.WorldConfig
	rng       *rand.Rand
	lastSpawn time.Duration // Session clock at the last spawn
}

// NewPipeManager creates a pipe manager drawing gap positions from rng.
func NewPipeManager(cfg config.PipeConfig, world config.WorldConfig, rng *rand.Rand) *PipeManager {
	pm := &PipeManager{
		pipes: make([]Pipe, 0, 8),
		cfg:   cfg,
		world: world,
		rng:   rng,
	}
	pm.Reset()
	return pm
}

// Reset clears all pipes. The first pipe spawns on the next frame.
func (pm *PipeManager) Reset() {
	pm.pipes = pm.pipes[:0]
	pm.lastSpawn = -pm.cfg.SpawnInterval
}

// Pipes returns the active pipes, oldest first.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// MaybeSpawn adds a pipe at the right edge once the spawn interval has
// elapsed on the session clock. Reports whether a pipe was added.
func (pm *PipeManager) MaybeSpawn(now time.Duration) bool {
	if now-pm.lastSpawn < pm.cfg.SpawnInterval {
		return false
	}
	pm.Spawn()
	pm.lastSpawn = now
	return true
}

// Spawn adds a pipe at the right edge with its gap centre drawn uniformly
// from [gap, worldH-gap), so the whole gap stays on screen.
func (pm *PipeManager) Spawn() {
	span := pm.world.Height - 2*pm.cfg.GapHeight
	pm.pipes = append(pm.pipes, Pipe{
		X:    pm.world.Width,
		GapY: pm.cfg.GapHeight + pm.rng.Intn(span),
	})
}

// Advance moves every pipe left by the configured speed and drops the ones
// whose right edge went past x=0. Returns how many were dropped.
func (pm *PipeManager) Advance() int {
	removed := 0
	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		p.X -= pm.cfg.Speed
		if p.Right(pm.cfg) < 0 {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	pm.pipes = kept
	return removed
}

// Collides reports whether r overlaps the upper or lower column of any pipe.
func (pm *PipeManager) Collides(r core.Rect) bool {
	for _, p := range pm.pipes {
		if r.Intersects(p.TopRect(pm.cfg)) || r.Intersects(p.BottomRect(pm.cfg, pm.world.Height)) {
			return true
		}
	}
	return false
}
