package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func newTestPipes(seed int64) *PipeManager {
	cfg := config.DefaultFlappyConfig()
	return NewPipeManager(cfg.Pipes, cfg.World, rand.New(rand.NewSource(seed)))
}

func TestPipeRemovedOnlyWhenRightEdgeOffScreen(t *testing.T) {
	pm := newTestPipes(1)
	pm.Spawn()

	if got := pm.Pipes()[0].X; got != 1200 {
		t.Fatalf("spawn x = %d, want 1200", got)
	}

	for i := 0; i < 600; i++ {
		pm.Advance()
	}
	if got := pm.Pipes()[0].X; got != 0 {
		t.Fatalf("after 600 frames x = %d, want 0", got)
	}

	// Frame 601: x=-2, right edge 78, still on screen.
	if removed := pm.Advance(); removed != 0 {
		t.Fatalf("frame 601 removed %d pipes", removed)
	}

	// Right edge reaches exactly 0 at x=-80 and the pipe stays.
	for i := 0; i < 39; i++ {
		pm.Advance()
	}
	if got := pm.Pipes()[0].X; got != -80 {
		t.Fatalf("x = %d, want -80", got)
	}

	if removed := pm.Advance(); removed != 1 {
		t.Fatalf("pipe with right edge -2 not removed")
	}
	if len(pm.Pipes()) != 0 {
		t.Errorf("expected no pipes, got %d", len(pm.Pipes()))
	}
}

func TestPipeGapStaysOnScreen(t *testing.T) {
	pm := newTestPipes(7)
	for i := 0; i < 1000; i++ {
		pm.Spawn()
	}
	for _, p := range pm.Pipes() {
		if p.GapY < 200 || p.GapY >= 400 {
			t.Fatalf("gap centre %d outside [200, 400)", p.GapY)
		}
		top := p.TopRect(pm.cfg)
		bottom := p.BottomRect(pm.cfg, pm.world.Height)
		if top.H <= 0 || bottom.Bottom() != 600 {
			t.Fatalf("pipe %+v has bad rects %+v %+v", p, top, bottom)
		}
	}
}

func TestPipeSpawnInterval(t *testing.T) {
	pm := newTestPipes(1)
	frame := config.DefaultFlappyConfig().World.FrameDelay

	var spawnedAt []int
	for i := 1; i <= 160; i++ {
		if pm.MaybeSpawn(frame * time.Duration(i)) {
			spawnedAt = append(spawnedAt, i)
		}
	}

	want := []int{1, 76, 151}
	if len(spawnedAt) != len(want) {
		t.Fatalf("spawned at %v, want %v", spawnedAt, want)
	}
	for i := range want {
		if spawnedAt[i] != want[i] {
			t.Errorf("spawn %d at frame %d, want %d", i, spawnedAt[i], want[i])
		}
	}
}

func TestPipeCollision(t *testing.T) {
	pm := newTestPipes(1)
	pm.pipes = []Pipe{{X: 50, GapY: 300}} // Gap spans y=200..400

	tests := []struct {
		name string
		bird core.Rect
		want bool
	}{
		{"inside gap", core.NewRect(50, 220, 40, 40), false},
		{"touching top column", core.NewRect(50, 200, 40, 40), false},
		{"touching bottom column", core.NewRect(50, 360, 40, 40), false},
		{"into top column", core.NewRect(50, 199, 40, 40), true},
		{"into bottom column", core.NewRect(50, 361, 40, 40), true},
		{"left of pipe", core.NewRect(10, 100, 40, 40), false},
		{"overlapping left edge", core.NewRect(11, 100, 40, 40), true},
		{"right of pipe", core.NewRect(130, 100, 40, 40), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pm.Collides(tt.bird); got != tt.want {
				t.Errorf("Collides(%+v) = %v, want %v", tt.bird, got, tt.want)
			}
		})
	}
}
