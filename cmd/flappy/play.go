package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

var flagScale float64

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start playing the given variant in the terminal.

Controls:
  Space/W/Up  - Flap; also starts and restarts
  Esc/B       - Leave from the start or game-over screen
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Examples:
  flappy play
  flappy play classic
  flappy play lives --seed 7 --fps 30
  flappy play --config ./my-flappy.yaml`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{annotationTUI: "true"},
	RunE:        runPlay,
}

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Start playing the given variant in a desktop window.

Controls:
  Space/W/Up  - Flap; also starts and restarts
  Q/Esc       - Quit

Examples:
  flappy window
  flappy window screens --scale 0.75`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the world size")
}

// prepare creates the game's hooks and returns a cleanup for them.
func prepare() (*platform.Hooks, func(), error) {
	store, err := openStore(false)
	if err != nil {
		return nil, nil, err
	}
	hooks, err := newHooks(store)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, nil, err
	}
	cleanup := func() {
		hooks.Audio.Close()
		if store != nil {
			store.Close()
		}
	}
	return hooks, cleanup, nil
}

func runPlay(_ *cobra.Command, args []string) error {
	v, err := resolveVariant(args)
	if err != nil {
		return err
	}
	game, err := createGame(v)
	if err != nil {
		return err
	}

	hooks, cleanup, err := prepare()
	if err != nil {
		return err
	}
	defer cleanup()

	rc := terminalConfig()
	logger.Info("starting", "variant", v, "seed", rc.Seed)
	_, err = tui.Run(game, hooks, rc, tui.GameInterval(game, rc.TickRate))
	return err
}

func runWindow(_ *cobra.Command, args []string) error {
	v, err := resolveVariant(args)
	if err != nil {
		return err
	}
	game, err := createGame(v)
	if err != nil {
		return err
	}

	hooks, cleanup, err := prepare()
	if err != nil {
		return err
	}
	defer cleanup()

	rc := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	logger.Info("opening window", "variant", v, "seed", rc.Seed)
	return window.Run(game, hooks, rc, tui.GameInterval(game, rc.TickRate), flagScale)
}
