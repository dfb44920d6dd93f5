package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Model is the Bubble Tea model that drives one game.
//
// Ticks only run while the game is playing. On the start and game-over
// screens the model stops scheduling ticks and steps the game once per
// key press instead, so an idle screen costs nothing.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	hooks      *platform.Hooks
	config     core.RuntimeConfig
	interval   time.Duration
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	waiting    bool // No tick scheduled; the next key steps the game
	quitting   bool
	backToMenu bool
	standalone bool // Back quits the program instead of returning to a menu
}

// NewModel creates a model for the given game. A zero seed is replaced
// with the current time.
func NewModel(game registry.Game, hooks *platform.Hooks, cfg core.RuntimeConfig, interval time.Duration) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if hooks == nil {
		hooks = &platform.Hooks{}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		hooks:      hooks,
		config:     cfg,
		interval:   interval,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.hooks.Attach(m.game, m.config.Seed)
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game renders in world coordinates; only the buffer changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if m.waiting {
			return m, nil
		}
		return m, m.step()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	idle := !m.gameState.Started || m.gameState.GameOver
	if m.inputFrame.Has(core.ActionBack) && idle {
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.waiting && m.inputFrame.Has(core.ActionJump) {
		return m, m.step()
	}
	return m, nil
}

// step runs one simulation step with the buffered input and decides
// whether to keep ticking.
func (m *Model) step() tea.Cmd {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State
	m.hooks.OnStep(m.game, result)

	if result.State.Quit {
		m.quitting = true
		return tea.Quit
	}

	m.waiting = !result.State.Started || result.State.GameOver
	if m.waiting {
		return nil
	}
	return tickCmd(m.interval)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("flappy_%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the terminal until the player quits or goes back.
// Returns true when the player asked for the menu.
func Run(game registry.Game, hooks *platform.Hooks, cfg core.RuntimeConfig, interval time.Duration) (backToMenu bool, err error) {
	model := NewModel(game, hooks, cfg, interval)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}
	if m, ok := finalModel.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
