// Package registry provides a registry of game variant factories.
// Variants register themselves in init() functions, allowing the platform
// adapters to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game is the interface every playable variant implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, audio, and rendering.
type Game interface {
	// ID returns the variant identifier (e.g., "classic", "powerups").
	// Used for CLI flags and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the session.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID    string
	Title string
	Order int // Registration order, used for menus
}

// Factory creates a new instance of a variant from a loaded configuration.
// The factory applies its own variant rules on top of cfg and rejects a
// result the variant cannot run with.
type Factory func(cfg config.FlappyConfig) (Game, error)

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Panics if a variant with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g, err := f(config.DefaultFlappyConfig())
	if err != nil {
		panic(fmt.Sprintf("registry: game %q rejects the default config: %v", id, err))
	}
	infos[id] = GameInfo{ID: id, Title: g.Title(), Order: len(infos)}
}

// List returns information about all registered variants in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Order < result[j].Order
	})

	return result
}

// Create instantiates a variant by its ID.
// Returns an error if the ID is not registered.
func Create(id string, cfg config.FlappyConfig) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: game %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
