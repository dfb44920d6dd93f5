// flappy is a side-scrolling flappy game for the terminal, a desktop
// window, or remote play over SSH.
//
// Usage:
//
//	flappy play [variant]    - Play in the terminal
//	flappy window [variant]  - Play in a desktop window
//	flappy menu              - Pick a variant interactively
//	flappy serve             - Start SSH server for remote play
//	flappy scores [variant]  - Show the run history
//	flappy variants          - List the variants
//
// Global flags:
//
//	--fps <rate>      - Tick rate (default: derived from the frame delay)
//	--seed <value>    - RNG seed for reproducible pipe layouts
//	--db <path>       - Run history database (default: ~/.arcade/flappy.db)
//	--config <path>   - Game config YAML
//	--variant <name>  - classic, screens, lives or powerups
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/storage"

	// Register the variants
	_ "github.com/vovakirdan/tui-flappy/internal/game"
)

var (
	flagFPS           int
	flagSeed          int64
	flagDBPath        string
	flagConfig        string
	flagVariant       string
	flagLogLevel      string
	flagLogFile       string
	flagMute          bool
	flagVolume        float64
	flagHighScoreFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		closeLogFile()
		os.Exit(1)
	}
	closeLogFile()
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide a bird through an endless row of pipes",
	Long: `Flappy is a side-scrolling game: flap to stay airborne and pass
through the gaps between pipes. Every pipe you clear scores a point.

Variants:
  classic   - One life, the run ends on the first crash
  screens   - Start and game-over screens
  lives     - Several lives, invincibility after a hit, restart, high score
  powerups  - Lives plus collectible power-ups that soften gravity

Examples:
  flappy play
  flappy play classic --seed 42
  flappy window powerups
  flappy menu
  flappy serve --ssh :2222
  flappy scores lives`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = derived from frame delay)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run history database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagVariant, "variant", "", "Variant to play (default: powerups)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")
	pf.Float64Var(&flagVolume, "volume", 0.5, "Sound volume between 0 and 1")
	pf.StringVar(&flagHighScoreFile, "highscore-file", highscore.DefaultPath, "Path to the high-score file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(variantsCmd)
}
