package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration, matching the
// embedded defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Width:      1200,
			Height:     600,
			FrameDelay: 20 * time.Millisecond,
		},
		Bird: BirdConfig{
			X:           50,
			Y:           300,
			Width:       40,
			Height:      40,
			Gravity:     0.25,
			JumpImpulse: -5,
		},
		Pipes: PipeConfig{
			Width:         80,
			GapHeight:     200,
			Speed:         2,
			SpawnInterval: 1500 * time.Millisecond,
		},
		PowerUps: PowerUpConfig{
			Enabled:        true,
			Placement:      PlacementGap,
			Size:           40,
			Bonus:          2,
			SpawnInterval:  5 * time.Second,
			GravityDivisor: 2,
			EffectDuration: 0,
			PipeSpacing:    150,
			MinSpacing:     300,
			SafeMargin:     20,
			CompactAfter:   16,
		},
		Rules: RulesConfig{
			StartScreen:         true,
			Restart:             true,
			Lives:               4,
			InvincibilityFrames: 50,
			HighScore:           true,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `flappy variants --dump`.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
