// Package window presents a game in a desktop window using Ebitengine.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/platform"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Framer is implemented by games that can describe a frame in world pixels.
type Framer interface {
	Frame() game.Frame
}

// Debug font cell size of ebitenutil.DebugPrint.
const (
	glyphW = 6
	glyphH = 16
)

var (
	skyColor     = color.RGBA{0x4e, 0xc0, 0xca, 0xff}
	pipeColor    = color.RGBA{0x3c, 0xa0, 0x3c, 0xff}
	pipeCapColor = color.RGBA{0x6c, 0xe0, 0x5a, 0xff}
	birdColor    = color.RGBA{0xf5, 0xd0, 0x2e, 0xff}
	eyeColor     = color.RGBA{0xf0, 0x80, 0x20, 0xff}
	powerUpColor = color.RGBA{0x40, 0x90, 0xff, 0xff}
	shadeColor   = color.RGBA{0x00, 0x00, 0x00, 0x90}
)

var jumpKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp}
var quitKeys = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}

// Window implements ebiten.Game around a registry.Game.
type Window struct {
	game   registry.Game
	framer Framer
	hooks  *platform.Hooks
	state  core.GameState
	world  core.Rect
	frames int
}

// New wraps g. The game must implement Framer.
func New(g registry.Game, hooks *platform.Hooks, rc core.RuntimeConfig) (*Window, error) {
	f, ok := g.(Framer)
	if !ok {
		return nil, fmt.Errorf("window: game %q cannot be drawn in a window", g.ID())
	}
	if hooks == nil {
		hooks = &platform.Hooks{}
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	g.Reset(rc)
	hooks.Attach(g, rc.Seed)

	return &Window{
		game:   g,
		framer: f,
		hooks:  hooks,
		state:  g.State(),
		world:  f.Frame().World,
	}, nil
}

// readInput collects the actions triggered since the last update.
func readInput(justPressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	for _, k := range jumpKeys {
		if justPressed(k) {
			in.Set(core.ActionJump)
		}
	}
	for _, k := range quitKeys {
		if justPressed(k) {
			in.Set(core.ActionQuit)
		}
	}
	return in
}

// shouldStep reports whether a frame should be simulated. Idle screens
// only advance when a key arrives.
func shouldStep(st core.GameState, in core.InputFrame) bool {
	if in.Has(core.ActionQuit) {
		return true
	}
	idle := !st.Started || st.GameOver
	return !idle || in.Has(core.ActionJump)
}

// Update advances the simulation by one tick.
func (w *Window) Update() error {
	w.frames++
	in := readInput(inpututil.IsKeyJustPressed)
	if !shouldStep(w.state, in) {
		return nil
	}

	res := w.game.Step(in)
	w.state = res.State
	w.hooks.OnStep(w.game, res)

	if res.State.Quit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	f := w.framer.Frame()
	screen.Fill(skyColor)

	for _, p := range f.Pipes {
		fillRect(screen, p.Top, pipeColor)
		fillRect(screen, p.Bottom, pipeColor)
		fillRect(screen, capRect(p.Top, true), pipeCapColor)
		fillRect(screen, capRect(p.Bottom, false), pipeCapColor)
	}
	for _, r := range f.PowerUps {
		fillRect(screen, r, powerUpColor)
	}

	if !f.Invincible || (w.frames/8)%2 == 0 {
		fillRect(screen, f.Bird, birdColor)
		eye := core.NewRect(f.Bird.X+f.Bird.W*2/3, f.Bird.Y+f.Bird.H/4, f.Bird.W/4, f.Bird.H/4)
		fillRect(screen, eye, eyeColor)
	}

	ebitenutil.DebugPrintAt(screen, f.HUD, 8, 4)
	if f.HighScore > 0 {
		best := fmt.Sprintf("Best: %d", f.HighScore)
		ebitenutil.DebugPrintAt(screen, best, f.World.W-8-len(best)*glyphW, 4)
	}

	if len(f.Messages) > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(f.World.W), float32(f.World.H), shadeColor, false)
		for i, at := range messageLayout(f.Messages, f.World) {
			ebitenutil.DebugPrintAt(screen, f.Messages[i], at.X, at.Y)
		}
	}
}

// Layout keeps the logical screen at world size; Ebitengine scales it.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.world.W, w.world.H
}

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// capRect is the lip drawn at the gap end of a pipe column.
func capRect(r core.Rect, top bool) core.Rect {
	const h = 12
	if r.H < h {
		return r
	}
	c := core.NewRect(r.X-4, r.Y, r.W+8, h)
	if top {
		c.Y = r.Bottom() - h
	}
	return c
}

// messageLayout centres the overlay lines in the world and returns the
// top-left corner of each line.
func messageLayout(lines []string, world core.Rect) []image.Point {
	out := make([]image.Point, len(lines))
	top := world.Y + (world.H-len(lines)*glyphH)/2
	for i, line := range lines {
		out[i] = image.Point{
			X: world.X + (world.W-len([]rune(line))*glyphW)/2,
			Y: top + i*glyphH,
		}
	}
	return out
}

// Run opens the window and blocks until the game quits or the window closes.
func Run(g registry.Game, hooks *platform.Hooks, rc core.RuntimeConfig, interval time.Duration, scale float64) error {
	w, err := New(g, hooks, rc)
	if err != nil {
		return err
	}

	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(w.world.W)*scale), int(float64(w.world.H)*scale))
	ebiten.SetWindowTitle(g.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps(interval))

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// tps converts a tick interval to Ebitengine ticks per second.
func tps(interval time.Duration) int {
	if interval <= 0 {
		return ebiten.DefaultTPS
	}
	n := int((time.Second + interval/2) / interval)
	return max(n, 1)
}
