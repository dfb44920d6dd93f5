package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

type stubGame struct {
	id    string
	width int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func stubFactory(id string) Factory {
	return func(cfg config.FlappyConfig) (Game, error) {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return &stubGame{id: id, width: cfg.World.Width}, nil
	}
}

func TestRegisterListCreate(t *testing.T) {
	Register("stub-a", stubFactory("stub-a"))
	Register("stub-b", stubFactory("stub-b"))

	assert.True(t, Exists("stub-a"))
	assert.False(t, Exists("stub-missing"))

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	ia, ib := indexOf(ids, "stub-a"), indexOf(ids, "stub-b")
	require.NotEqual(t, -1, ia)
	require.NotEqual(t, -1, ib)
	assert.Less(t, ia, ib, "listing keeps registration order")

	cfg := config.DefaultFlappyConfig()
	cfg.World.Width = 321
	g, err := Create("stub-b", cfg)
	require.NoError(t, err)
	assert.Equal(t, "Stub stub-b", g.Title())
	assert.Equal(t, 321, g.(*stubGame).width)

	_, err = Create("stub-missing", cfg)
	assert.ErrorContains(t, err, "unknown game")

	cfg.Rules.Lives = 0
	_, err = Create("stub-b", cfg)
	assert.ErrorContains(t, err, "lives")
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", stubFactory("stub-dup"))
	assert.Panics(t, func() { Register("stub-dup", stubFactory("stub-dup")) })
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
