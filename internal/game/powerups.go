package game

import (
	"math/rand"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PowerUpArena stores power-ups in a dense slice with stable IDs.
// Collected power-ups stay in place as inactive entries until enough of
// them pile up, then they are swap-removed and the ID index is fixed up.
type PowerUpArena struct {
	items        []PowerUp
	slots        *intmap.Map[uint32, int] // ID -> index into items
	nextID       uint32
	inactive     int
	compactAfter int
}

// NewPowerUpArena creates an arena that compacts once compactAfter
// inactive entries accumulate. compactAfter <= 0 compacts on every pass.
func NewPowerUpArena(compactAfter int) *PowerUpArena {
	return &PowerUpArena{
		items:        make([]PowerUp, 0, 8),
		slots:        intmap.New[uint32, int](16),
		nextID:       1,
		compactAfter: compactAfter,
	}
}

// Reset removes every power-up. IDs keep increasing across resets.
func (a *PowerUpArena) Reset() {
	a.items = a.items[:0]
	a.slots.Clear()
	a.inactive = 0
}

// Add inserts an active power-up and returns its ID.
func (a *PowerUpArena) Add(x, y, size int) uint32 {
	id := a.nextID
	a.nextID++
	a.slots.Put(id, len(a.items))
	a.items = append(a.items, PowerUp{ID: id, X: x, Y: y, W: size, H: size, Active: true})
	return id
}

// Get returns the power-up with the given ID, if it is still stored.
func (a *PowerUpArena) Get(id uint32) (PowerUp, bool) {
	slot, ok := a.slots.Get(id)
	if !ok {
		return PowerUp{}, false
	}
	return a.items[slot], true
}

// Len returns the number of stored power-ups, active or not.
func (a *PowerUpArena) Len() int {
	return len(a.items)
}

// Active returns the active power-ups.
func (a *PowerUpArena) Active() []PowerUp {
	out := make([]PowerUp, 0, len(a.items)-a.inactive)
	for _, p := range a.items {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

func (a *PowerUpArena) deactivate(slot int) {
	if !a.items[slot].Active {
		return
	}
	a.items[slot].Active = false
	a.inactive++
}

// Advance moves active power-ups left. Power-ups that scroll off the left
// edge are deactivated.
func (a *PowerUpArena) Advance(speed int) {
	for i := range a.items {
		if !a.items[i].Active {
			continue
		}
		a.items[i].X -= speed
		if a.items[i].X+a.items[i].W < 0 {
			a.deactivate(i)
		}
	}
}

// Collect deactivates every active power-up overlapping r and returns how
// many were collected.
func (a *PowerUpArena) Collect(r core.Rect) int {
	n := 0
	for i := range a.items {
		if a.items[i].Active && r.Intersects(a.items[i].Rect()) {
			a.deactivate(i)
			n++
		}
	}
	return n
}

// Compact swap-removes inactive power-ups once the threshold is reached.
// Reports whether a compaction ran.
func (a *PowerUpArena) Compact() bool {
	if a.inactive == 0 || a.inactive < a.compactAfter {
		return false
	}
	for i := 0; i < len(a.items); {
		if a.items[i].Active {
			i++
			continue
		}
		a.slots.Del(a.items[i].ID)
		last := len(a.items) - 1
		if i != last {
			a.items[i] = a.items[last]
			a.slots.Put(a.items[i].ID, i)
		}
		a.items = a.items[:last]
	}
	a.inactive = 0
	return true
}

// powerUpSpawner places new power-ups according to the configured policy.
type powerUpSpawner struct {
	cfg        config.PowerUpConfig
	pipeCfg    config.PipeConfig
	world      config.WorldConfig
	rng        *rand.Rand
	lastSpawn  time.Duration
	lastPlaced uint32 // ID of the last centre-placed power-up, 0 if none
}

func (s *powerUpSpawner) reset() {
	s.lastSpawn = 0
	s.lastPlaced = 0
}

// maybeSpawn runs one placement attempt per elapsed interval. Attempts
// that find no suitable spot are silently skipped.
func (s *powerUpSpawner) maybeSpawn(now time.Duration, arena *PowerUpArena, pipes []Pipe) (uint32, bool) {
	if now-s.lastSpawn < s.cfg.SpawnInterval {
		return 0, false
	}
	s.lastSpawn = now
	return s.place(arena, pipes)
}

func (s *powerUpSpawner) place(arena *PowerUpArena, pipes []Pipe) (uint32, bool) {
	switch s.cfg.Placement {
	case config.PlacementRandom:
		return s.placeRandom(arena)
	case config.PlacementCentre:
		return s.placeCentre(arena, pipes)
	default:
		return s.placeGap(arena, pipes)
	}
}

// placeRandom drops a power-up on the right edge at any height.
func (s *powerUpSpawner) placeRandom(arena *PowerUpArena) (uint32, bool) {
	y := s.rng.Intn(s.world.Height - s.cfg.Size + 1)
	return arena.Add(s.world.Width, y, s.cfg.Size), true
}

// placeGap puts a power-up just behind the first pipe that has travelled
// more than PipeSpacing but less than half the world from the right edge.
// Needs at least two pipes.
func (s *powerUpSpawner) placeGap(arena *PowerUpArena, pipes []Pipe) (uint32, bool) {
	if len(pipes) < 2 {
		return 0, false
	}
	gap := s.pipeCfg.GapHeight
	for _, p := range pipes {
		dist := s.world.Width - p.X
		if dist <= s.cfg.PipeSpacing || dist >= s.world.Width/2 {
			continue
		}
		x := p.Right(s.pipeCfg) + s.rng.Intn(s.cfg.PipeSpacing-s.pipeCfg.Width)
		y := p.GapY - gap/4 + s.rng.Intn(max(gap/2, 1))
		return arena.Add(x, y, s.cfg.Size), true
	}
	return 0, false
}

// placeCentre puts a power-up in the middle of a random pipe's gap with a
// bounded vertical jitter, keeping MinSpacing from the previous one.
func (s *powerUpSpawner) placeCentre(arena *PowerUpArena, pipes []Pipe) (uint32, bool) {
	if len(pipes) == 0 {
		return 0, false
	}
	if prev, ok := arena.Get(s.lastPlaced); ok && s.world.Width-prev.X <= s.cfg.MinSpacing {
		return 0, false
	}
	p := pipes[s.rng.Intn(len(pipes))]
	half := s.pipeCfg.GapHeight/2 - s.cfg.Size/2 - s.cfg.SafeMargin
	jitter := 0
	if half > 0 {
		jitter = s.rng.Intn(2*half) - half
	}
	x := p.X + s.pipeCfg.Width/2
	y := p.GapY - s.cfg.Size/2 + jitter
	id := arena.Add(x, y, s.cfg.Size)
	s.lastPlaced = id
	return id, true
}
