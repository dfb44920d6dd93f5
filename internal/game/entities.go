package game

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player-controlled sprite. Only Y and Velocity change during
// a life; X stays at the spawn column.
type Bird struct {
	X, Y     int
	W, H     int
	Velocity float64 // Pixels per frame, positive is down
	Gravity  float64 // Velocity gained per frame
}

func newBird(cfg config.BirdConfig) Bird {
	return Bird{
		X:       cfg.X,
		Y:       cfg.Y,
		W:       cfg.Width,
		H:       cfg.Height,
		Gravity: cfg.Gravity,
	}
}

// Rect returns the bird's bounding box.
func (b Bird) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// reset puts the bird back at its spawn point. Gravity is restored too,
// which cancels any running power-up effect.
func (b *Bird) reset(cfg config.BirdConfig) {
	*b = newBird(cfg)
}

// Pipe is an obstacle: a column with a vertical gap centred on GapY.
// Width and gap height are shared by all pipes.
type Pipe struct {
	X    int
	GapY int
}

// Right returns the x-coordinate just past the pipe's right edge.
func (p Pipe) Right(cfg config.PipeConfig) int {
	return p.X + cfg.Width
}

// TopRect returns the upper column, from the top of the world to the gap.
func (p Pipe) TopRect(cfg config.PipeConfig) core.Rect {
	return core.NewRect(p.X, 0, cfg.Width, p.GapY-cfg.GapHeight/2)
}

// BottomRect returns the lower column, from the gap to the bottom of the world.
func (p Pipe) BottomRect(cfg config.PipeConfig, worldH int) core.Rect {
	y := p.GapY + cfg.GapHeight/2
	return core.NewRect(p.X, y, cfg.Width, worldH-y)
}

// PowerUp is a collectible. Inactive power-ups are neither drawn nor
// collided with, and are eventually compacted out of the arena.
type PowerUp struct {
	ID     uint32
	X, Y   int
	W, H   int
	Active bool
}

// Rect returns the power-up's bounding box.
func (p PowerUp) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}
