package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/platform"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// annotationTUI marks commands that take over the terminal. Their logs
// are discarded unless --log-file is given.
const annotationTUI = "tui"

var (
	logger  = log.Default()
	logFile *os.File
)

func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	case cmd.Annotations[annotationTUI] != "":
		w = io.Discard
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return nil
}

func closeLogFile() {
	if logFile != nil {
		logFile.Close()
	}
}

// resolveVariant picks the variant from the first argument, then --variant.
func resolveVariant(args []string) (config.Variant, error) {
	name := flagVariant
	if len(args) > 0 {
		name = args[0]
	}
	v, err := config.ParseVariant(name)
	if err != nil {
		return "", fmt.Errorf("%w (run 'flappy variants' to list them)", err)
	}
	return v, nil
}

func loadConfig() (config.FlappyConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "world", fmt.Sprintf("%dx%d", cfg.World.Width, cfg.World.Height),
		"frame_delay", cfg.World.FrameDelay)
	return cfg, nil
}

func createGame(v config.Variant) (registry.Game, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return registry.Create(string(v), cfg)
}

// openStore opens the run history. Unless required, a failure is logged
// and play continues without history.
func openStore(required bool) (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		if required {
			return nil, err
		}
		logger.Warn("could not open run history", "path", flagDBPath, "error", err)
		return nil, nil
	}
	return store, nil
}

func newAudio() (audio.Player, error) {
	if flagMute {
		return audio.Nop{}, nil
	}
	b := audio.NewBeep(flagVolume, logger)
	if err := b.Init(); err != nil {
		return nil, fmt.Errorf("%w (use --mute to play without sound)", err)
	}
	return b, nil
}

// newHooks wires audio, run history and the high-score file.
func newHooks(store *storage.Store) (*platform.Hooks, error) {
	player, err := newAudio()
	if err != nil {
		return nil, err
	}

	hooks := &platform.Hooks{Audio: player, Store: store, Logger: logger}
	hs, err := highscore.NewFile(flagHighScoreFile)
	if err != nil {
		logger.Warn("high score disabled", "error", err)
	} else {
		hooks.HighScore = hs
	}
	return hooks, nil
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
