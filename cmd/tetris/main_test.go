package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/highscore"
)

func setConfigFlag(t *testing.T, path string) {
	t.Helper()
	old := flagConfig
	flagConfig = path
	t.Cleanup(func() { flagConfig = old })
}

func TestOpenHighScoresWithoutDatabaseOrPath(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.HighScore.Backend = config.BackendSQLite
	cfg.HighScore.Path = ""

	var buf bytes.Buffer
	scores := openHighScores(cfg, nil, log.New(&buf))

	assert.Nil(t, scores, "no store and no path should keep the score in memory")
	assert.Contains(t, buf.String(), "in memory")
}

func TestOpenHighScoresFallsBackToFile(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.HighScore.Backend = config.BackendSQLite
	cfg.HighScore.Path = filepath.Join(t.TempDir(), "best.txt")

	scores := openHighScores(cfg, nil, log.New(io.Discard))

	fs, ok := scores.(*highscore.FileStore)
	require.True(t, ok, "got %T, want *highscore.FileStore", scores)
	assert.Equal(t, cfg.HighScore.Path, fs.Path())
}

func TestConfigCommandPrintsYAML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	setConfigFlag(t, "")

	var out bytes.Buffer
	configCmd.SetOut(&out)
	t.Cleanup(func() { configCmd.SetOut(nil) })

	require.NoError(t, runConfig(configCmd, nil))
	assert.Contains(t, out.String(), "tick_ms: 50")
}

func TestCommandsReturnConfigErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_ms: 0\n"), 0o644))
	setConfigFlag(t, path)

	runs := map[string]func() error{
		"config": func() error { return runConfig(configCmd, nil) },
		"scores": func() error { return runScores(scoresCmd, nil) },
		"play":   func() error { return runPlay(playCmd, nil) },
		"serve":  func() error { return runServe(serveCmd, nil) },
	}
	for name, run := range runs {
		t.Run(name, func(t *testing.T) {
			err := run()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "tick_ms")
		})
	}
}
