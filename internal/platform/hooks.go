// Package platform holds the glue shared by the terminal and window
// adapters: audio cues, score persistence and event logging around a game.
package platform

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// highScorer is implemented by games that display a persisted high score.
type highScorer interface {
	SetHighScore(score int)
}

// configured is implemented by games that expose their effective config.
type configured interface {
	Config() config.FlappyConfig
}

// Hooks reacts to step results. Every field is optional.
type Hooks struct {
	Audio     audio.Player
	Store     *storage.Store
	HighScore *highscore.File
	Logger    *log.Logger

	seed   int64
	frames int  // Playing frames in the current run
	saved  bool // Whether the current run has been recorded
	rules  config.RulesConfig
	custom bool // Whether rules came from the game
}

// Attach prepares the hooks for a freshly reset game and seeds its
// high score from the file and the score history.
func (h *Hooks) Attach(g registry.Game, seed int64) {
	h.seed = seed
	h.frames = 0
	h.saved = false
	h.custom = false
	if c, ok := g.(configured); ok {
		h.rules = c.Config().Rules
		h.custom = true
	}

	best := 0
	if h.HighScore != nil && h.persistHighScore() {
		n, err := h.HighScore.Load()
		if err != nil {
			h.logger().Warn("could not read high score", "path", h.HighScore.Path(), "error", err)
		}
		best = max(best, n)
	}
	if h.Store != nil {
		n, err := h.Store.HighScore(g.ID())
		if err != nil {
			h.logger().Warn("could not read score history", "error", err)
		}
		best = max(best, n)
	}
	if hs, ok := g.(highScorer); ok {
		hs.SetHighScore(best)
	}
}

// OnStep plays cues and, once per finished run, records the score.
func (h *Hooks) OnStep(g registry.Game, res core.StepResult) {
	if res.State.Started && !res.State.GameOver {
		h.frames++
	}
	if len(res.Events) == 0 {
		return
	}
	if h.Audio != nil {
		h.Audio.Play(res.Events...)
	}

	for _, e := range res.Events {
		switch e {
		case core.EventHit:
			h.logger().Debug("life lost", "game", g.ID(), "lives", res.State.Lives)
		case core.EventRestart:
			h.frames = 0
			h.saved = false
			h.logger().Debug("restart", "game", g.ID())
		case core.EventGameOver:
			h.recordRun(g, res.State)
		}
	}
}

// recordRun writes the finished run to the score history and the
// high-score file. Failures are logged; play continues.
func (h *Hooks) recordRun(g registry.Game, st core.GameState) {
	if h.saved {
		return
	}
	h.saved = true
	h.logger().Info("game over", "game", g.ID(), "score", st.Score, "frames", h.frames)

	if h.Store != nil && st.Score > 0 {
		if _, err := h.Store.SaveRun(storage.Run{
			Variant: g.ID(),
			Score:   st.Score,
			Frames:  h.frames,
			Seed:    h.seed,
		}); err != nil {
			h.logger().Error("could not save run", "error", err)
		}
	}

	if h.HighScore != nil && h.persistHighScore() {
		best, err := h.HighScore.Record(st.Score)
		if err != nil {
			h.logger().Error("could not write high score", "path", h.HighScore.Path(), "error", err)
			return
		}
		if best == st.Score && st.Score > 0 {
			h.logger().Info("new high score", "game", g.ID(), "score", best)
		}
	}
}

// persistHighScore reports whether the game's rules keep a high score.
// Games without a config always do.
func (h *Hooks) persistHighScore() bool {
	return !h.custom || h.rules.HighScore
}

func (h *Hooks) logger() *log.Logger {
	if h.Logger == nil {
		return log.Default()
	}
	return h.Logger
}
