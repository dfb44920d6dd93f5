package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultFlappyConfig(), cfg)
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultFlappyConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 50, cfg.TickRate())
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("pipes:\n  spawn_interval: 1400ms\nrules:\n  lives: 2\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1400*time.Millisecond, cfg.Pipes.SpawnInterval)
	assert.Equal(t, 2, cfg.Rules.Lives)
	// Untouched keys keep defaults.
	assert.Equal(t, 200, cfg.Pipes.GapHeight)
	assert.Equal(t, 0.25, cfg.Bird.Gravity)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("pipes:\n  gap_height: 400\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "gap_height")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		want   string
	}{
		{"zero lives", func(c *FlappyConfig) { c.Rules.Lives = 0 }, "lives"},
		{"zero frame delay", func(c *FlappyConfig) { c.World.FrameDelay = 0 }, "frame_delay"},
		{"bird outside", func(c *FlappyConfig) { c.Bird.Y = 590 }, "bird spawn"},
		{"bad placement", func(c *FlappyConfig) { c.PowerUps.Placement = "corner" }, "placement"},
		{"zero divisor", func(c *FlappyConfig) { c.PowerUps.GravityDivisor = 0 }, "gravity_divisor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestValidateIgnoresDisabledPowerUps(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.PowerUps.Enabled = false
	cfg.PowerUps.Placement = "corner"
	assert.NoError(t, cfg.Validate())
}

func TestApplyVariant(t *testing.T) {
	tests := []struct {
		variant     Variant
		startScreen bool
		restart     bool
		lives       int
		powerUps    bool
		highScore   bool
		interval    time.Duration
	}{
		{VariantClassic, false, false, 1, false, false, 1500 * time.Millisecond},
		{VariantScreens, true, false, 1, false, false, 1400 * time.Millisecond},
		{VariantLives, true, true, 4, false, true, 1500 * time.Millisecond},
		{VariantPowerUps, true, true, 4, true, true, 1500 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			require.NoError(t, ApplyVariant(&cfg, tt.variant))
			assert.Equal(t, tt.startScreen, cfg.Rules.StartScreen)
			assert.Equal(t, tt.restart, cfg.Rules.Restart)
			assert.Equal(t, tt.lives, cfg.Rules.Lives)
			assert.Equal(t, tt.powerUps, cfg.PowerUps.Enabled)
			assert.Equal(t, tt.highScore, cfg.Rules.HighScore)
			assert.Equal(t, tt.interval, cfg.Pipes.SpawnInterval)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestApplyVariantValidatesEnabledPowerUps(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"pipe spacing", "powerups:\n  enabled: false\n  pipe_spacing: 60\n", "pipe_spacing"},
		{"size", "powerups:\n  enabled: false\n  size: 600\n", "power-up size"},
		{"divisor", "powerups:\n  enabled: false\n  gravity_divisor: 0\n", "gravity_divisor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			require.NoError(t, err, "disabled power-ups are not checked on load")

			lives := cfg
			require.NoError(t, ApplyVariant(&lives, VariantLives))

			err = ApplyVariant(&cfg, VariantPowerUps)
			assert.ErrorContains(t, err, tt.want)
			assert.ErrorContains(t, err, "powerups variant")
		})
	}
}

func TestApplyVariantUnknown(t *testing.T) {
	cfg := DefaultFlappyConfig()
	assert.Error(t, ApplyVariant(&cfg, "turbo"))
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("")
	require.NoError(t, err)
	assert.Equal(t, DefaultVariant, v)

	v, err = ParseVariant(" Classic ")
	require.NoError(t, err)
	assert.Equal(t, VariantClassic, v)

	_, err = ParseVariant("nope")
	assert.Error(t, err)

	assert.Len(t, Variants(), 4)
	info, ok := VariantLives.Info()
	assert.True(t, ok)
	assert.Equal(t, "Lives", info.Title)
}
