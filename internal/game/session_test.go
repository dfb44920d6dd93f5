package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var (
	noInput   = core.NewInputFrame()
	jumpInput = core.InputOf(core.ActionJump)
)

func mustNew(v config.Variant) *Session {
	s, err := New(v, config.DefaultFlappyConfig())
	if err != nil {
		panic(err)
	}
	return s
}

// newTestSession builds a powerups session, lets mutate adjust the
// effective config, and reseeds.
func newTestSession(mutate func(*config.FlappyConfig)) *Session {
	s := mustNew(config.VariantPowerUps)
	if mutate != nil {
		mutate(&s.cfg)
	}
	s.Reset(core.RuntimeConfig{ScreenW: 120, ScreenH: 30, Seed: 42})
	return s
}

// skipStart drops the start screen and power-ups so play begins without an impulse.
func skipStart(c *config.FlappyConfig) {
	c.Rules.StartScreen = false
	c.PowerUps.Enabled = false
}

func TestGravityAccumulates(t *testing.T) {
	s := newTestSession(skipStart)
	require.Equal(t, ModePlaying, s.Mode())

	y := 300
	for n := 1; n <= 46; n++ {
		res := s.Step(noInput)
		y += n / 4 // int(0.25 * n)
		require.Equal(t, y, s.bird.Y, "frame %d", n)
		require.Equal(t, 0.25*float64(n), s.bird.Velocity, "frame %d", n)
		require.Equal(t, 4, res.State.Lives)
	}
	assert.Equal(t, 553, s.bird.Y)

	// Frame 47 pushes the bottom edge past 600: one life lost, bird respawns.
	res := s.Step(noInput)
	assert.True(t, res.Has(core.EventHit))
	assert.Equal(t, 3, res.State.Lives)
	assert.Equal(t, 300, s.bird.Y)
	assert.Zero(t, s.bird.Velocity)
	assert.Zero(t, s.invincibility, "boundary losses do not grant invincibility")

	// Same fall again from the spawn point.
	for n := 48; n <= 93; n++ {
		s.Step(noInput)
	}
	assert.Equal(t, 3, s.State().Lives)
	s.Step(noInput)
	assert.Equal(t, 2, s.State().Lives)
	assert.Equal(t, 0, s.State().Score)
}

func TestJumpOverwritesVelocity(t *testing.T) {
	for _, v := range []float64{7, 0, -20} {
		s := newTestSession(skipStart)
		s.bird.Velocity = v
		y := s.bird.Y

		res := s.Step(jumpInput)
		assert.True(t, res.Has(core.EventFlap))
		assert.Equal(t, -4.75, s.bird.Velocity, "prior velocity %v", v)
		assert.Equal(t, y-4, s.bird.Y)
	}
}

func TestStartScreenFreezesAndFirstFlap(t *testing.T) {
	s := newTestSession(nil)
	require.Equal(t, ModeStart, s.Mode())

	for i := 0; i < 10; i++ {
		res := s.Step(noInput)
		assert.False(t, res.State.Started)
	}
	assert.Equal(t, 300, s.bird.Y)
	assert.Empty(t, s.pipes.Pipes())
	assert.Zero(t, s.clock)

	res := s.Step(jumpInput)
	assert.True(t, res.State.Started)
	assert.True(t, res.Has(core.EventFlap))
	assert.Equal(t, ModePlaying, s.Mode())
	assert.Equal(t, -5.0, s.bird.Velocity)
	assert.Equal(t, 300, s.bird.Y, "the transition frame does not move the bird")
}

func TestScoreOnPipeRemoval(t *testing.T) {
	s := newTestSession(skipStart)
	s.pipes.pipes = []Pipe{{X: -78, GapY: 300}}

	res := s.Step(noInput)
	assert.Equal(t, 0, res.State.Score, "right edge at exactly 0 is still on screen")

	res = s.Step(noInput)
	assert.Equal(t, 1, res.State.Score)
	assert.True(t, res.Has(core.EventScore))
}

func TestPipeHitStartsInvincibility(t *testing.T) {
	s := newTestSession(skipStart)
	s.pipes.pipes = []Pipe{{X: 40, GapY: 500}} // Top column covers the bird

	res := s.Step(noInput)
	require.True(t, res.Has(core.EventHit))
	assert.Equal(t, 3, res.State.Lives)
	assert.Equal(t, 50, s.invincibility)
	assert.Equal(t, 300, s.bird.Y)

	// Still overlapping the pipe, but hits are ignored.
	for i := 0; i < 10; i++ {
		res = s.Step(noInput)
		assert.False(t, res.Has(core.EventHit))
	}
	assert.Equal(t, 3, s.State().Lives)
	assert.Equal(t, 40, s.invincibility)
}

func TestGameOverAndRestart(t *testing.T) {
	s := newTestSession(func(c *config.FlappyConfig) {
		c.Rules.Lives = 1
		c.PowerUps.Enabled = false
	})
	s.SetHighScore(3)
	s.Step(jumpInput)
	s.score = 7

	var res core.StepResult
	for i := 0; i < 200 && !res.State.GameOver; i++ {
		res = s.Step(noInput)
	}
	require.True(t, res.State.GameOver)
	assert.True(t, res.Has(core.EventHit))
	assert.True(t, res.Has(core.EventGameOver))
	assert.Equal(t, 0, res.State.Lives)
	assert.Equal(t, 7, res.State.HighScore)
	assert.False(t, res.State.Quit)

	// Entities are frozen until a key arrives.
	frames, pipes := s.frames, append([]Pipe(nil), s.pipes.Pipes()...)
	for i := 0; i < 20; i++ {
		s.Step(noInput)
	}
	assert.Equal(t, frames, s.frames)
	assert.Equal(t, pipes, s.pipes.Pipes())

	res = s.Step(jumpInput)
	assert.True(t, res.Has(core.EventRestart))
	assert.Equal(t, ModeStart, s.Mode())
	assert.Equal(t, 0, res.State.Score)
	assert.Equal(t, 1, res.State.Lives)
	assert.Equal(t, 7, res.State.HighScore)
	assert.Empty(t, s.pipes.Pipes())
	assert.Zero(t, s.powerUps.Len())
	assert.Equal(t, newBird(s.cfg.Bird), s.bird)
}

func TestVariantQuitRules(t *testing.T) {
	die := func(s *Session) core.StepResult {
		var res core.StepResult
		for i := 0; i < 500 && !res.State.GameOver; i++ {
			res = s.Step(noInput)
		}
		return res
	}

	t.Run("classic quits on death", func(t *testing.T) {
		s := mustNew(config.VariantClassic)
		require.Equal(t, ModePlaying, s.Mode())
		res := die(s)
		assert.True(t, res.State.GameOver)
		assert.True(t, res.State.Quit)
	})

	t.Run("screens quits on key", func(t *testing.T) {
		s := mustNew(config.VariantScreens)
		s.Step(jumpInput)
		res := die(s)
		require.True(t, res.State.GameOver)
		assert.False(t, res.State.Quit)
		res = s.Step(jumpInput)
		assert.True(t, res.State.Quit)
		assert.False(t, res.Has(core.EventRestart))
	})

	t.Run("quit action", func(t *testing.T) {
		s := mustNew(config.VariantLives)
		res := s.Step(core.InputOf(core.ActionQuit))
		assert.True(t, res.State.Quit)
	})
}

func TestPowerUpPickup(t *testing.T) {
	s := newTestSession(func(c *config.FlappyConfig) {
		c.Rules.StartScreen = false
	})
	s.powerUps.Add(52, 300, 40)

	res := s.Step(noInput)
	assert.True(t, res.Has(core.EventPowerUp))
	assert.Equal(t, 2, res.State.Score)
	assert.Empty(t, s.powerUps.Active())
	assert.Equal(t, 0.25, s.bird.Gravity, "zero-duration effect reverts immediately")

	res = s.Step(noInput)
	assert.False(t, res.Has(core.EventPowerUp), "collected power-ups stay inactive")
	assert.Equal(t, 2, res.State.Score)
}

func TestTimedPowerUpEffect(t *testing.T) {
	s := newTestSession(func(c *config.FlappyConfig) {
		c.Rules.StartScreen = false
		c.PowerUps.EffectDuration = 100 * time.Millisecond
	})
	s.powerUps.Add(52, 300, 40)

	s.Step(noInput)
	assert.Equal(t, 0.125, s.bird.Gravity)
	for i := 0; i < 4; i++ {
		s.Step(noInput)
	}
	assert.Equal(t, 0.125, s.bird.Gravity)
	s.Step(noInput)
	assert.Equal(t, 0.25, s.bird.Gravity)
}

func TestSimultaneousPickupsDoNotStack(t *testing.T) {
	s := newTestSession(func(c *config.FlappyConfig) {
		c.Rules.StartScreen = false
		c.PowerUps.EffectDuration = 100 * time.Millisecond
	})
	s.powerUps.Add(52, 300, 40)
	s.powerUps.Add(60, 310, 40)

	res := s.Step(noInput)
	assert.True(t, res.Has(core.EventPowerUp))
	assert.Equal(t, 4, res.State.Score, "bonus per power-up")
	assert.Equal(t, 0.125, s.bird.Gravity, "gravity divided once")
}

func TestPowerUpsSpawnDuringPlay(t *testing.T) {
	s := newTestSession(func(c *config.FlappyConfig) {
		c.Rules.StartScreen = false
		c.Rules.Lives = 100
		c.PowerUps.Placement = config.PlacementRandom
	})
	for i := 0; i < 250; i++ {
		s.Step(noInput)
	}
	assert.Equal(t, 1, s.powerUps.Len(), "one power-up after 5s of play")
}

func TestLivesNeverNegative(t *testing.T) {
	s := newTestSession(skipStart)
	for i := 0; i < 2000; i++ {
		res := s.Step(noInput)
		require.GreaterOrEqual(t, res.State.Lives, 0)
	}
	assert.True(t, s.State().GameOver)
	assert.Equal(t, 0, s.State().Lives)
}

func TestSessionDeterminism(t *testing.T) {
	run := func() Frame {
		s := mustNew(config.VariantPowerUps)
		s.Reset(core.RuntimeConfig{Seed: 12345})
		for i := 0; i < 1500; i++ {
			in := noInput
			if i%18 == 0 {
				in = jumpInput
			}
			s.Step(in)
		}
		return s.Frame()
	}
	assert.Equal(t, run(), run())
}

func TestRegisteredVariants(t *testing.T) {
	list := registry.List()
	require.Len(t, list, 4)
	ids := make([]string, len(list))
	for i, info := range list {
		ids[i] = info.ID
	}
	assert.Equal(t, []string{"classic", "screens", "lives", "powerups"}, ids)

	g, err := registry.Create("lives", config.DefaultFlappyConfig())
	require.NoError(t, err)
	assert.Equal(t, "Flappy Lives", g.Title())
	assert.False(t, g.(*Session).Config().PowerUps.Enabled)

	_, err = registry.Create("nope", config.DefaultFlappyConfig())
	assert.Error(t, err)
}

func TestNewRejectsInvalidVariantConfig(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.PowerUps.Enabled = false
	cfg.PowerUps.PipeSpacing = 60
	require.NoError(t, cfg.Validate())

	_, err := New(config.VariantPowerUps, cfg)
	assert.ErrorContains(t, err, "pipe_spacing")

	_, err = registry.Create(string(config.VariantPowerUps), cfg)
	assert.ErrorContains(t, err, "pipe_spacing")

	s, err := New(config.VariantLives, cfg)
	require.NoError(t, err)
	assert.Equal(t, "lives", s.ID())
}
