package platform

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

type recordingPlayer struct {
	events []core.Event
}

func (p *recordingPlayer) Play(events ...core.Event) { p.events = append(p.events, events...) }
func (p *recordingPlayer) Close()                    {}

func newHooks(t *testing.T) (*Hooks, *recordingPlayer) {
	t.Helper()
	dir := t.TempDir()

	store, err := storage.Open(filepath.Join(dir, "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	hs, err := highscore.NewFile(filepath.Join(dir, "highscore.txt"))
	require.NoError(t, err)

	player := &recordingPlayer{}
	return &Hooks{
		Audio:     player,
		Store:     store,
		HighScore: hs,
		Logger:    log.New(io.Discard),
	}, player
}

// playToGameOver flaps once and falls until the run ends.
func playToGameOver(t *testing.T, h *Hooks, g *game.Session) core.StepResult {
	t.Helper()
	res := g.Step(core.InputOf(core.ActionJump))
	h.OnStep(g, res)
	for i := 0; i < 1000 && !res.State.GameOver; i++ {
		res = g.Step(core.NewInputFrame())
		h.OnStep(g, res)
	}
	require.True(t, res.State.GameOver)
	return res
}

func TestHooksRecordFinishedRun(t *testing.T) {
	h, player := newHooks(t)
	_, err := h.HighScore.Record(5)
	require.NoError(t, err)

	cfg := config.DefaultFlappyConfig()
	cfg.Rules.Lives = 2
	g := newGame(t, config.VariantLives, cfg)
	g.Reset(core.RuntimeConfig{Seed: 9})
	h.Attach(g, 9)
	assert.Equal(t, 5, g.State().HighScore, "seeded from the high-score file")

	playToGameOver(t, h, g)

	assert.Contains(t, player.events, core.EventFlap)
	assert.Contains(t, player.events, core.EventHit)
	assert.Contains(t, player.events, core.EventGameOver)
	assert.Positive(t, h.frames)

	// Score 0 is not worth a history row, and the file keeps the max.
	runs, err := h.Store.TopScores("lives", 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
	best, err := h.HighScore.Load()
	require.NoError(t, err)
	assert.Equal(t, 5, best)
}

func TestHooksSaveScoringRunOnce(t *testing.T) {
	h, _ := newHooks(t)

	g := newGame(t, config.VariantLives, config.DefaultFlappyConfig())
	h.Attach(g, 3)

	st := core.GameState{Score: 12, Started: true, GameOver: true}
	res := core.StepResult{State: st, Events: []core.Event{core.EventGameOver}}
	h.OnStep(g, res)
	h.OnStep(g, res)

	runs, err := h.Store.TopScores("lives", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 12, runs[0].Score)
	assert.Equal(t, int64(3), runs[0].Seed)

	best, err := h.HighScore.Load()
	require.NoError(t, err)
	assert.Equal(t, 12, best)

	// A restart arms recording again.
	h.OnStep(g, core.StepResult{Events: []core.Event{core.EventRestart}})
	h.OnStep(g, core.StepResult{State: core.GameState{Score: 4, GameOver: true}, Events: []core.Event{core.EventGameOver}})
	runs, err = h.Store.TopScores("lives", 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	best, err = h.HighScore.Load()
	require.NoError(t, err)
	assert.Equal(t, 12, best)
}

func TestHooksSkipFileForVariantsWithoutHighScore(t *testing.T) {
	h, _ := newHooks(t)

	g := newGame(t, config.VariantClassic, config.DefaultFlappyConfig())
	h.Attach(g, 1)
	h.OnStep(g, core.StepResult{State: core.GameState{Score: 8, GameOver: true}, Events: []core.Event{core.EventGameOver}})

	best, err := h.HighScore.Load()
	require.NoError(t, err)
	assert.Zero(t, best)

	high, err := h.Store.HighScore("classic")
	require.NoError(t, err)
	assert.Equal(t, 8, high, "history is kept for every variant")
}

func newGame(t *testing.T, v config.Variant, cfg config.FlappyConfig) *game.Session {
	t.Helper()
	g, err := game.New(v, cfg)
	require.NoError(t, err)
	return g
}
