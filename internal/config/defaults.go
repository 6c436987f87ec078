package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		TickMS: 50,
		Seed:   0,
		HighScore: HighScoreConfig{
			Backend: BackendFile,
			Path:    "~/.arcade/high_score.txt",
		},
		Storage: StorageConfig{
			DB: "~/.arcade/scores.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.arcade/tetris.log",
		},
		SSH: SSHConfig{
			Addr:           ":23234",
			HostKey:        ".ssh/tetris_ed25519",
			IdleTimeoutMin: 30,
		},
	}
}
