package game

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for terminal rendering
const (
	BirdChar    = '●'
	BirdEye     = '▶'
	PipeChar    = '█'
	PipeCapTop  = '▄'
	PipeCapBot  = '▀'
	PowerUpChar = '◆'
)

// PipeRects is the pair of columns of one pipe, in world pixels.
type PipeRects struct {
	Top, Bottom core.Rect
}

// Frame is a read-only snapshot of everything a presentation adapter
// needs to draw one frame. All rectangles are in world pixels.
type Frame struct {
	Mode       Mode
	World      core.Rect
	Bird       core.Rect
	Invincible bool
	Pipes      []PipeRects
	PowerUps   []core.Rect
	Score      int
	Lives      int
	HighScore  int
	HUD        string
	Messages   []string // Centred overlay text, empty while playing
}

// Frame builds the snapshot of the current state.
func (s *Session) Frame() Frame {
	f := Frame{
		Mode:       s.mode,
		World:      core.NewRect(0, 0, s.cfg.World.Width, s.cfg.World.Height),
		Bird:       s.bird.Rect(),
		Invincible: s.invincibility > 0,
		Score:      s.score,
		Lives:      s.lives,
		HighScore:  s.highScore,
		HUD:        fmt.Sprintf("Score: %d Lives: %d", s.score, s.lives),
	}
	for _, p := range s.pipes.Pipes() {
		f.Pipes = append(f.Pipes, PipeRects{
			Top:    p.TopRect(s.cfg.Pipes),
			Bottom: p.BottomRect(s.cfg.Pipes, s.cfg.World.Height),
		})
	}
	for _, p := range s.powerUps.Active() {
		f.PowerUps = append(f.PowerUps, p.Rect())
	}

	switch s.mode {
	case ModeStart:
		f.Messages = []string{"FLAPPY " + s.title, "Press SPACE to start"}
	case ModeGameOver:
		f.Messages = []string{"GAME OVER", fmt.Sprintf("Score: %d", s.score)}
		if s.cfg.Rules.HighScore {
			f.Messages = append(f.Messages, fmt.Sprintf("High score: %d", s.highScore))
		}
		if s.cfg.Rules.Restart {
			f.Messages = append(f.Messages, "Press SPACE to play again")
		} else {
			f.Messages = append(f.Messages, "Press SPACE to exit")
		}
	}
	return f
}

// Render draws the current state scaled from world pixels to screen cells.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	f := s.Frame()
	w, h := dst.Width(), dst.Height()
	scale := func(r core.Rect) core.Rect {
		return r.Scale(f.World.W, f.World.H, w, h)
	}

	for _, p := range f.Pipes {
		top := scale(p.Top)
		dst.DrawRect(top, PipeChar, core.ColorGreen)
		if !top.Empty() {
			dst.DrawHLine(top.X, top.Bottom()-1, top.W, PipeCapTop, core.ColorBrightGreen)
		}
		bottom := scale(p.Bottom)
		dst.DrawRect(bottom, PipeChar, core.ColorGreen)
		if !bottom.Empty() {
			dst.DrawHLine(bottom.X, bottom.Y, bottom.W, PipeCapBot, core.ColorBrightGreen)
		}
	}

	for _, r := range f.PowerUps {
		dst.DrawRect(scale(r), PowerUpChar, core.ColorBrightYellow)
	}

	// Blink while invincible
	if !f.Invincible || s.frames/4%2 == 0 {
		b := scale(f.Bird)
		dst.DrawRect(b, BirdChar, core.ColorYellow)
		dst.SetColored(b.Right()-1, b.Y, BirdEye, core.ColorOrange)
	}

	dst.DrawText(1, 0, " "+f.HUD+" ", core.ColorWhite)
	if s.cfg.Rules.HighScore {
		best := fmt.Sprintf(" Best: %d ", f.HighScore)
		dst.DrawText(w-len(best)-1, 0, best, core.ColorGray)
	}

	if len(f.Messages) > 0 {
		drawMessageBox(dst, f.Messages)
	}
}

// drawMessageBox draws the lines in a bordered box in the middle of the screen.
func drawMessageBox(dst *core.Screen, lines []string) {
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorCyan)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightYellow
		}
		dst.DrawTextCentered(box.Y+1+i, l, c)
	}
}
