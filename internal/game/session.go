// Package game implements the flappy game core: a frame-stepped session
// that owns the bird, pipes and power-ups, and moves between the start,
// playing and game-over screens. It is pure logic; adapters feed it input
// frames and draw the snapshots it produces.
package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Mode is the screen the session is on.
type Mode uint8

const (
	ModeStart Mode = iota
	ModePlaying
	ModeGameOver
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// gravityEffect tracks a running power-up gravity reduction.
type gravityEffect struct {
	active bool
	saved  float64       // Gravity before the effect
	until  time.Duration // Session clock at which gravity is restored
}

// Session is one player's game. It is owned by a single loop and is not
// safe for concurrent use.
type Session struct {
	variant config.Variant
	title   string
	cfg     config.FlappyConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	mode  Mode
	bird  Bird
	alive bool

	pipes    *PipeManager
	powerUps *PowerUpArena
	spawner  powerUpSpawner
	effect   gravityEffect

	score         int
	lives         int
	highScore     int
	invincibility int           // Frames left during which pipe hits are ignored
	clock         time.Duration // Simulated time spent playing this run
	frames        int
	quit          bool
}

// New creates a session for the given variant. The variant rules are
// applied on top of cfg and the result must validate. An unknown variant
// keeps cfg as is.
func New(v config.Variant, cfg config.FlappyConfig) (*Session, error) {
	title := string(v)
	if info, ok := v.Info(); ok {
		title = info.Title
		if err := config.ApplyVariant(&cfg, v); err != nil {
			return nil, err
		}
	} else if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		variant: v,
		title:   title,
		cfg:     cfg,
	}
	s.Reset(core.DefaultConfig())
	return s, nil
}

// ID returns the variant identifier.
func (s *Session) ID() string {
	return string(s.variant)
}

// Title returns the display name.
func (s *Session) Title() string {
	return "Flappy " + s.title
}

// Config returns the effective configuration, variant rules included.
func (s *Session) Config() config.FlappyConfig {
	return s.cfg
}

// Reset starts a fresh session, reseeding the RNG from rc.Seed.
// The known high score survives a reset.
func (s *Session) Reset(rc core.RuntimeConfig) {
	s.runtime = rc
	s.rng = rand.New(rand.NewSource(rc.Seed))
	s.pipes = NewPipeManager(s.cfg.Pipes, s.cfg.World, s.rng)
	s.powerUps = NewPowerUpArena(s.cfg.PowerUps.CompactAfter)
	s.spawner = powerUpSpawner{
		cfg:     s.cfg.PowerUps,
		pipeCfg: s.cfg.Pipes,
		world:   s.cfg.World,
		rng:     s.rng,
	}
	s.quit = false
	s.restart()
}

// restart clears the run: score, lives, bird, pipes, power-ups and timers.
func (s *Session) restart() {
	s.bird = newBird(s.cfg.Bird)
	s.alive = true
	s.score = 0
	s.lives = s.cfg.Rules.Lives
	s.invincibility = 0
	s.effect = gravityEffect{}
	s.clock = 0
	s.frames = 0
	s.pipes.Reset()
	s.powerUps.Reset()
	s.spawner.reset()
	s.mode = ModeStart
	if !s.cfg.Rules.StartScreen {
		s.mode = ModePlaying
	}
}

// SetHighScore seeds the best score known to the session, e.g. from a file.
func (s *Session) SetHighScore(score int) {
	s.highScore = max(s.highScore, score)
}

// Mode returns the current screen.
func (s *Session) Mode() Mode {
	return s.mode
}

// Step advances the session by one frame.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	if in.Has(core.ActionQuit) {
		s.quit = true
		return core.StepResult{State: s.State()}
	}

	switch s.mode {
	case ModeStart:
		if in.Has(core.ActionJump) {
			s.mode = ModePlaying
			s.bird.flap(s.cfg.Bird.JumpImpulse)
			events = append(events, core.EventFlap)
		}
	case ModeGameOver:
		if in.Has(core.ActionJump) {
			if s.cfg.Rules.Restart {
				s.restart()
				events = append(events, core.EventRestart)
			} else {
				s.quit = true
			}
		}
	case ModePlaying:
		events = s.tick(in, events)
	}

	return core.StepResult{State: s.State(), Events: events}
}

// tick runs one playing frame: spawn, move, collide, then evaluate game over.
func (s *Session) tick(in core.InputFrame, events []core.Event) []core.Event {
	s.clock += s.cfg.World.FrameDelay
	s.frames++

	if in.Has(core.ActionJump) {
		s.bird.flap(s.cfg.Bird.JumpImpulse)
		events = append(events, core.EventFlap)
	}

	if s.cfg.PowerUps.Enabled {
		s.spawner.maybeSpawn(s.clock, s.powerUps, s.pipes.Pipes())
	}
	s.expireEffect()

	if s.invincibility > 0 {
		s.invincibility--
	}

	s.bird.fall()
	if s.bird.outOfBounds(s.cfg.World) {
		events = s.loseLife(events, false)
	}

	if s.alive {
		s.pipes.MaybeSpawn(s.clock)
	}

	if passed := s.pipes.Advance(); passed > 0 && s.alive {
		s.score += passed
		events = append(events, core.EventScore)
	}

	if s.alive && s.invincibility == 0 && s.pipes.Collides(s.bird.Rect()) {
		events = s.loseLife(events, true)
	}

	if s.cfg.PowerUps.Enabled {
		s.powerUps.Advance(s.cfg.Pipes.Speed)
		if s.alive {
			if n := s.powerUps.Collect(s.bird.Rect()); n > 0 {
				s.score += n * s.cfg.PowerUps.Bonus
				// Effects do not stack: further pickups in the same frame
				// would only restart the same timer.
				s.applyEffect()
				events = append(events, core.EventPowerUp)
			}
		}
		s.powerUps.Compact()
	}

	if !s.alive {
		s.mode = ModeGameOver
		s.highScore = max(s.highScore, s.score)
		events = append(events, core.EventGameOver)
		if !s.cfg.Rules.StartScreen && !s.cfg.Rules.Restart {
			s.quit = true
		}
	}
	return events
}

// loseLife takes one life. With lives left the bird respawns, and a pipe
// hit also starts the invincibility window.
func (s *Session) loseLife(events []core.Event, pipeHit bool) []core.Event {
	if s.lives <= 0 {
		return events
	}
	s.lives--
	events = append(events, core.EventHit)
	if s.lives == 0 {
		s.alive = false
		return events
	}
	s.bird.reset(s.cfg.Bird)
	s.effect = gravityEffect{}
	if pipeHit {
		s.invincibility = s.cfg.Rules.InvincibilityFrames
	}
	return events
}

// applyEffect divides gravity for EffectDuration. A zero duration applies
// and reverts in the same call. A pickup during a running effect extends it.
func (s *Session) applyEffect() {
	d := s.cfg.PowerUps.EffectDuration
	if s.effect.active {
		s.effect.until = s.clock + d
		return
	}
	saved := s.bird.Gravity
	s.bird.Gravity = saved / s.cfg.PowerUps.GravityDivisor
	if d <= 0 {
		s.bird.Gravity = saved
		return
	}
	s.effect = gravityEffect{active: true, saved: saved, until: s.clock + d}
}

func (s *Session) expireEffect() {
	if s.effect.active && s.clock >= s.effect.until {
		s.bird.Gravity = s.effect.saved
		s.effect = gravityEffect{}
	}
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:     s.score,
		Lives:     s.lives,
		HighScore: s.highScore,
		Started:   s.mode != ModeStart,
		GameOver:  s.mode == ModeGameOver,
		Quit:      s.quit,
	}
}

// Register every variant with the registry.
func init() {
	for _, info := range config.Variants() {
		v := info.ID
		registry.Register(string(v), func(cfg config.FlappyConfig) (registry.Game, error) {
			return New(v, cfg)
		})
	}
}
