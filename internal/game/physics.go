package game

import "github.com/vovakirdan/tui-flappy/internal/config"

// flap overwrites the bird's velocity with the jump impulse.
// Repeated flaps in one frame have the same effect as one.
func (b *Bird) flap(impulse float64) {
	b.Velocity = impulse
}

// fall applies one frame of gravity. The position moves by the velocity
// truncated toward zero.
func (b *Bird) fall() {
	b.Velocity += b.Gravity
	b.Y += int(b.Velocity)
}

// outOfBounds reports whether any part of the bird left the world vertically.
func (b Bird) outOfBounds(world config.WorldConfig) bool {
	return b.Y < 0 || b.Y+b.H > world.Height
}
