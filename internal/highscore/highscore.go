// Package highscore persists the best score between sessions.
//
// Both stores satisfy tetris.HighScoreStore. FileStore keeps a single
// integer in a text file; DBStore keeps it in the SQLite database shared
// with the game history, which is what the SSH server uses.
package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// GameID identifies this game's rows in the shared database.
const GameID = "tetris"

// ErrNoPath is returned by NewFileStore when no file is configured.
var ErrNoPath = errors.New("highscore: no file path configured")

// FileStore keeps the high score as decimal text in one file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. A leading ~ is expanded.
func NewFileStore(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrNoPath
	}
	expanded, err := storage.ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("highscore: %w", err)
	}
	return &FileStore{path: expanded}, nil
}

// Path returns the file the store reads and writes.
func (f *FileStore) Path() string { return f.path }

// Load returns the stored score. A missing file, or one whose content is
// not an integer, reads as 0 without error.
func (f *FileStore) Load() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read %s: %w", f.path, err)
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		return 0, nil
	}
	return score, nil
}

// Save overwrites the file with score.
func (f *FileStore) Save(score int) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory: %w", err)
	}

	// Replace atomically.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strconv.Itoa(score)+"\n"), 0o644); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("highscore: cannot replace %s: %w", f.path, err)
	}
	return nil
}

// DBStore keeps the high score in the SQLite store.
type DBStore struct {
	store  *storage.Store
	gameID string
}

// NewDBStore wraps an open storage.Store.
func NewDBStore(store *storage.Store) *DBStore {
	return &DBStore{store: store, gameID: GameID}
}

// Load returns the best recorded score.
func (d *DBStore) Load() (int, error) {
	return d.store.HighScore(d.gameID)
}

// Save records score unless a higher one is already stored.
func (d *DBStore) Save(score int) error {
	return d.store.SetHighScore(d.gameID, score)
}
