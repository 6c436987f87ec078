package highscore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	_ tetris.HighScoreStore = (*FileStore)(nil)
	_ tetris.HighScoreStore = (*DBStore)(nil)
)

func TestFileStoreMissingFile(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "nope", "high_score.txt"))
	require.NoError(t, err)

	score, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestNewFileStoreRejectsEmptyPath(t *testing.T) {
	for _, path := range []string{"", "   "} {
		store, err := NewFileStore(path)
		require.ErrorIs(t, err, ErrNoPath)
		assert.Nil(t, store)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dir", "high_score.txt")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(1500))
	require.NoError(t, store.Save(2100))

	score, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 2100, score)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2100\n", string(data))
	assert.NoFileExists(t, path+".tmp")
}

func TestFileStoreUnparsableContent(t *testing.T) {
	cases := map[string]string{
		"garbage":  "not a number",
		"empty":    "",
		"negative": "-40",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "high_score.txt")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			store, err := NewFileStore(path)
			require.NoError(t, err)

			score, err := store.Load()
			require.NoError(t, err)
			assert.Zero(t, score)
		})
	}
}

func TestFileStoreToleratesWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_score.txt")
	require.NoError(t, os.WriteFile(path, []byte("  700\r\n"), 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	score, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 700, score)
}

func TestFileStoreSaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	// Parent "directory" is a regular file
	store, err := NewFileStore(filepath.Join(blocker, "high_score.txt"))
	require.NoError(t, err)

	err = store.Save(10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "highscore:")
}

func TestFileStoreExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	store, err := NewFileStore("~/.arcade/high_score.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".arcade", "high_score.txt"), store.Path())
}

func TestDBStore(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := NewDBStore(db)

	score, err := store.Load()
	require.NoError(t, err)
	assert.Zero(t, score)

	require.NoError(t, store.Save(300))
	require.NoError(t, store.Save(100))

	score, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, 300, score)

	_, err = db.SaveGame(storage.GameResult{GameID: GameID, Score: 900, Level: 2, Lines: 6})
	require.NoError(t, err)

	score, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, 900, score, "finished games count toward the best score")
}

func TestSessionWithFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_score.txt")
	require.NoError(t, os.WriteFile(path, []byte("1200"), 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	s := tetris.New(tetris.Options{Seed: 1, HighScores: store})
	s.Start()
	assert.Equal(t, 1200, s.HighScore())

	// A later Start sees changes written by someone else
	require.NoError(t, os.WriteFile(path, []byte("4000"), 0o644))
	s.Start()
	assert.Equal(t, 4000, s.HighScore())
}
