// Package highscore persists the best score as a single plain-text integer.
package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultPath is the high-score file used when none is configured.
const DefaultPath = "~/.arcade/flappy_highscore.txt"

// File is a high score stored in a text file. There is no locking; the
// last writer wins.
type File struct {
	path string
}

// NewFile returns a store for path. A leading ~ is expanded to the home directory.
func NewFile(path string) (*File, error) {
	if path == "" {
		path = DefaultPath
	}
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("highscore: failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return &File{path: path}, nil
}

// Path returns the resolved file path.
func (f *File) Path() string {
	return f.path
}

// Load returns the stored high score. A missing file reads as 0.
func (f *File) Load() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: read %s: %w", f.path, err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("highscore: parse %s: %w", f.path, err)
	}
	return n, nil
}

// Record stores max(stored, score) and returns it. The file is only
// rewritten when score beats the stored value.
func (f *File) Record(score int) (int, error) {
	stored, err := f.Load()
	if err != nil {
		return 0, err
	}
	if score <= stored {
		return stored, nil
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return stored, fmt.Errorf("highscore: create directory: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(strconv.Itoa(score)+"\n"), 0o644); err != nil {
		return stored, fmt.Errorf("highscore: write %s: %w", f.path, err)
	}
	return score, nil
}
