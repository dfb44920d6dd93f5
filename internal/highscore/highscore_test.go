package highscore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileIsZero(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "none", "hs.txt"))
	require.NoError(t, err)

	n, err := f.Load()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRecordKeepsMaximum(t *testing.T) {
	tests := []struct {
		stored, score, want int
	}{
		{0, 0, 0},
		{0, 5, 5},
		{10, 3, 10},
		{10, 10, 10},
		{10, 11, 11},
	}
	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "hs.txt")
		f, err := NewFile(path)
		require.NoError(t, err)
		if tt.stored > 0 {
			_, err := f.Record(tt.stored)
			require.NoError(t, err)
		}

		got, err := f.Record(tt.score)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)

		n, err := f.Load()
		require.NoError(t, err)
		assert.Equal(t, tt.want, n, "persisted value for stored=%d score=%d", tt.stored, tt.score)
	}
}

func TestLoadPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hs.txt")
	require.NoError(t, os.WriteFile(path, []byte("42"), 0o644))

	f, err := NewFile(path)
	require.NoError(t, err)
	n, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	require.NoError(t, os.WriteFile(path, []byte("forty-two"), 0o644))
	_, err = f.Load()
	assert.Error(t, err)
}
