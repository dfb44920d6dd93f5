package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play, Tab for the scoreboard.
Leaving a game returns to the menu.

Examples:
  flappy menu
  flappy menu --fps 30
  flappy menu --db ./flappy.db`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationTUI: "true"},
	RunE:        runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	hooks, cleanup, err := prepare()
	if err != nil {
		return err
	}
	defer cleanup()

	rc := terminalConfig()
	for {
		res, err := tui.RunMenu(hooks.Store, rc)
		if err != nil {
			return err
		}
		rc = res.Config

		if res.Quit {
			return nil
		}

		if res.WantsScoreboard {
			back, err := tui.RunScoreboard(hooks.Store, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}
			continue
		}

		game, err := registry.Create(res.GameID, cfg)
		if err != nil {
			return err
		}

		run := rc
		if run.Seed == 0 {
			run.Seed = time.Now().UnixNano()
		}
		if _, err := tui.Run(game, hooks, run, tui.GameInterval(game, run.TickRate)); err != nil {
			return err
		}
	}
}
