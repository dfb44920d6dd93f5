package config

import (
	"fmt"
	"strings"
	"time"
)

// Variant identifies one of the incremental game editions.
type Variant string

const (
	VariantClassic  Variant = "classic"  // One life, no screens, quits on death
	VariantScreens  Variant = "screens"  // Start and game-over screens, no restart
	VariantLives    Variant = "lives"    // Four lives, invincibility, restart, high score
	VariantPowerUps Variant = "powerups" // Lives plus collectible power-ups
)

// DefaultVariant is played when no variant is requested.
const DefaultVariant = VariantPowerUps

// VariantInfo describes a variant for menus and listings.
type VariantInfo struct {
	ID          Variant
	Title       string
	Description string
}

var variants = []VariantInfo{
	{VariantClassic, "Classic", "single life, the run ends on the first crash"},
	{VariantScreens, "Screens", "start and game-over screens, single life"},
	{VariantLives, "Lives", "4 lives with invincibility frames, restart and high score"},
	{VariantPowerUps, "Power-ups", "lives plus bonus power-ups that soften gravity"},
}

// Variants returns all variants in release order.
func Variants() []VariantInfo {
	out := make([]VariantInfo, len(variants))
	copy(out, variants)
	return out
}

// ParseVariant resolves a variant name (case-insensitive). Empty selects the default.
func ParseVariant(s string) (Variant, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultVariant, nil
	}
	for _, v := range variants {
		if string(v.ID) == s {
			return v.ID, nil
		}
	}
	return "", fmt.Errorf("unknown variant %q", s)
}

// Info returns the listing entry for v.
func (v Variant) Info() (VariantInfo, bool) {
	for _, info := range variants {
		if info.ID == v {
			return info, true
		}
	}
	return VariantInfo{}, false
}

// ApplyVariant overwrites the rule flags and timings that distinguish v
// and validates the result. Geometry and physics keep whatever the loaded
// config says.
func ApplyVariant(cfg *FlappyConfig, v Variant) error {
	switch v {
	case VariantClassic:
		cfg.Rules = RulesConfig{Lives: 1}
		cfg.PowerUps.Enabled = false
		cfg.Pipes.SpawnInterval = 1500 * time.Millisecond
		cfg.World.FrameDelay = 16 * time.Millisecond
	case VariantScreens:
		cfg.Rules = RulesConfig{StartScreen: true, Lives: 1}
		cfg.PowerUps.Enabled = false
		cfg.Pipes.SpawnInterval = 1400 * time.Millisecond
		cfg.World.FrameDelay = 16 * time.Millisecond
	case VariantLives:
		cfg.Rules = livesRules(cfg.Rules)
		cfg.PowerUps.Enabled = false
	case VariantPowerUps:
		cfg.Rules = livesRules(cfg.Rules)
		cfg.PowerUps.Enabled = true
		if cfg.PowerUps.Placement == "" {
			cfg.PowerUps.Placement = PlacementGap
		}
	default:
		return fmt.Errorf("unknown variant %q", v)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s variant: %w", v, err)
	}
	return nil
}

// livesRules keeps configured life counts but forces the multi-life feature set.
func livesRules(r RulesConfig) RulesConfig {
	out := RulesConfig{
		StartScreen:         true,
		Restart:             true,
		Lives:               r.Lives,
		InvincibilityFrames: r.InvincibilityFrames,
		HighScore:           true,
	}
	if out.Lives < 2 {
		out.Lives = 4
	}
	return out
}
