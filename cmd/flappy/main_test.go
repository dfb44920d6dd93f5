package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func TestResolveVariant(t *testing.T) {
	t.Cleanup(func() { flagVariant = "" })

	v, err := resolveVariant(nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultVariant, v)

	flagVariant = "lives"
	v, err = resolveVariant(nil)
	require.NoError(t, err)
	assert.Equal(t, config.VariantLives, v)

	v, err = resolveVariant([]string{"Classic"})
	require.NoError(t, err)
	assert.Equal(t, config.VariantClassic, v, "argument wins over --variant")

	_, err = resolveVariant([]string{"hardcore"})
	assert.ErrorContains(t, err, "flappy variants")
}

func TestCreateGameAppliesVariant(t *testing.T) {
	g, err := createGame(config.VariantScreens)
	require.NoError(t, err)
	assert.Equal(t, "screens", g.ID())
	assert.Equal(t, "Flappy Screens", g.Title())
}

func TestCreateGameRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("powerups:\n  enabled: false\n  pipe_spacing: 60\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	old := flagConfig
	flagConfig = path
	t.Cleanup(func() { flagConfig = old })

	_, err := createGame(config.VariantPowerUps)
	assert.ErrorContains(t, err, "pipe_spacing")

	_, err = createGame(config.VariantClassic)
	assert.NoError(t, err)
}

func TestPrintRuns(t *testing.T) {
	var buf bytes.Buffer
	printRuns(&buf, config.VariantLives, nil)
	assert.Contains(t, buf.String(), "No runs recorded yet.")
	assert.Contains(t, buf.String(), "flappy play lives")

	buf.Reset()
	at := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	printRuns(&buf, config.VariantLives, []storage.Run{
		{Score: 9, Frames: 400, Seed: 7, CreatedAt: at},
		{Score: 3, Frames: 120, Seed: 8, CreatedAt: at},
	})
	out := buf.String()
	assert.Contains(t, out, "High Scores - Lives")
	assert.Contains(t, out, "2026-03-01 12:30")
	assert.Contains(t, out, "Best: 9")
}

func TestScoresCommandReadsStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := storage.Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveRun(storage.Run{Variant: "classic", Score: 4})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	old := flagDBPath
	flagDBPath = dbPath
	t.Cleanup(func() { flagDBPath = old })

	var buf bytes.Buffer
	scoresCmd.SetOut(&buf)
	t.Cleanup(func() { scoresCmd.SetOut(nil) })

	require.NoError(t, runScores(scoresCmd, []string{"classic"}))
	assert.Contains(t, buf.String(), "Best: 4")
}

func TestPrintVariantsMarksDefault(t *testing.T) {
	var buf bytes.Buffer
	printVariants(&buf)
	out := buf.String()
	for _, info := range config.Variants() {
		assert.Contains(t, out, string(info.ID))
	}
	assert.Contains(t, out, "* powerups")
}

func TestPortOf(t *testing.T) {
	assert.Equal(t, "23234", portOf(":23234"))
	assert.Equal(t, "2222", portOf("0.0.0.0:2222"))
	assert.Equal(t, "weird", portOf("weird"))
}
