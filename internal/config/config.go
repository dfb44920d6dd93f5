// Package config provides YAML-based game configuration loading and
// variant presets for the flappy game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all configuration for the flappy game.
type FlappyConfig struct {
	World    WorldConfig   `yaml:"world"`
	Bird     BirdConfig    `yaml:"bird"`
	Pipes    PipeConfig    `yaml:"pipes"`
	PowerUps PowerUpConfig `yaml:"powerups"`
	Rules    RulesConfig   `yaml:"rules"`
}

// WorldConfig defines the playfield in pixels and the frame pacing.
type WorldConfig struct {
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	FrameDelay time.Duration `yaml:"frame_delay"` // Simulated time per frame
}

// BirdConfig defines the controlled sprite.
type BirdConfig struct {
	X           int     `yaml:"x"` // Spawn position
	Y           int     `yaml:"y"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Gravity     float64 `yaml:"gravity"`      // Velocity gained per frame
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set by a flap (negative = up)
}

// PipeConfig defines obstacle geometry and spawning.
type PipeConfig struct {
	Width         int           `yaml:"width"`
	GapHeight     int           `yaml:"gap_height"`
	Speed         int           `yaml:"speed"` // Pixels per frame, leftwards
	SpawnInterval time.Duration `yaml:"spawn_interval"`
}

// Placement selects the power-up placement heuristic.
type Placement string

const (
	PlacementRandom Placement = "random" // Anywhere on the right edge
	PlacementGap    Placement = "gap"    // Just behind a pipe, inside its gap band
	PlacementCentre Placement = "centre" // Inside a random pipe's gap, spaced apart
)

// PowerUpConfig defines collectible power-ups.
type PowerUpConfig struct {
	Enabled        bool          `yaml:"enabled"`
	Placement      Placement     `yaml:"placement"`
	Size           int           `yaml:"size"`
	Bonus          int           `yaml:"bonus"`
	SpawnInterval  time.Duration `yaml:"spawn_interval"`
	GravityDivisor float64       `yaml:"gravity_divisor"`
	EffectDuration time.Duration `yaml:"effect_duration"` // 0 applies and reverts in one call
	PipeSpacing    int           `yaml:"pipe_spacing"`    // Gap placement: min distance from the right edge
	MinSpacing     int           `yaml:"min_spacing"`     // Centre placement: spacing between power-ups
	SafeMargin     int           `yaml:"safe_margin"`     // Centre placement: margin inside the gap
	CompactAfter   int           `yaml:"compact_after"`   // Inactive power-ups tolerated before compaction
}

// RulesConfig holds the feature flags that distinguish game variants.
type RulesConfig struct {
	StartScreen         bool `yaml:"start_screen"`
	Restart             bool `yaml:"restart"`
	Lives               int  `yaml:"lives"`
	InvincibilityFrames int  `yaml:"invincibility_frames"`
	HighScore           bool `yaml:"high_score"`
}

// TickRate returns the frames per second implied by the frame delay.
func (c FlappyConfig) TickRate() int {
	if c.World.FrameDelay <= 0 {
		return 60
	}
	rate := int(time.Second / c.World.FrameDelay)
	if rate < 1 {
		rate = 1
	}
	return rate
}

// Validate reports configuration values the game cannot run with.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.World.FrameDelay <= 0 {
		errs = append(errs, fmt.Errorf("frame_delay must be positive, got %s", c.World.FrameDelay))
	}
	if c.Bird.Width <= 0 || c.Bird.Height <= 0 {
		errs = append(errs, fmt.Errorf("bird size must be positive, got %dx%d", c.Bird.Width, c.Bird.Height))
	}
	if c.Bird.Y < 0 || c.Bird.Y+c.Bird.Height > c.World.Height {
		errs = append(errs, fmt.Errorf("bird spawn y=%d is outside the world", c.Bird.Y))
	}
	if c.Pipes.Width <= 0 || c.Pipes.Speed <= 0 {
		errs = append(errs, errors.New("pipe width and speed must be positive"))
	}
	if c.Pipes.GapHeight <= 0 || 2*c.Pipes.GapHeight >= c.World.Height {
		errs = append(errs, fmt.Errorf("gap_height %d must be positive and under half the world height", c.Pipes.GapHeight))
	}
	if c.Pipes.SpawnInterval <= 0 {
		errs = append(errs, errors.New("pipe spawn_interval must be positive"))
	}
	if c.Rules.Lives < 1 {
		errs = append(errs, fmt.Errorf("lives must be at least 1, got %d", c.Rules.Lives))
	}
	if c.Rules.InvincibilityFrames < 0 {
		errs = append(errs, errors.New("invincibility_frames must not be negative"))
	}

	if c.PowerUps.Enabled {
		switch c.PowerUps.Placement {
		case PlacementRandom, PlacementGap, PlacementCentre:
		default:
			errs = append(errs, fmt.Errorf("unknown power-up placement %q", c.PowerUps.Placement))
		}
		if c.PowerUps.Size <= 0 || c.PowerUps.Size >= c.World.Height {
			errs = append(errs, fmt.Errorf("power-up size %d out of range", c.PowerUps.Size))
		}
		if c.PowerUps.SpawnInterval <= 0 {
			errs = append(errs, errors.New("power-up spawn_interval must be positive"))
		}
		if c.PowerUps.GravityDivisor <= 0 {
			errs = append(errs, errors.New("gravity_divisor must be positive"))
		}
		if c.PowerUps.EffectDuration < 0 {
			errs = append(errs, errors.New("effect_duration must not be negative"))
		}
		if c.PowerUps.Placement == PlacementGap && c.PowerUps.PipeSpacing <= c.Pipes.Width {
			errs = append(errs, fmt.Errorf("pipe_spacing %d must exceed pipe width %d", c.PowerUps.PipeSpacing, c.Pipes.Width))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
