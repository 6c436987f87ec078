// Package config loads the YAML configuration for the game and its servers.
package config

import "time"

// High score backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// TetrisConfig contains all configuration for the game, the SSH server and
// the spectator feed.
type TetrisConfig struct {
	TickMS    int             `yaml:"tick_ms"` // UI frame interval; gravity is timed separately
	Seed      int64           `yaml:"seed"`    // 0 picks a time-based seed
	HighScore HighScoreConfig `yaml:"highscore"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
	Spectate  SpectateConfig  `yaml:"spectate"`
	SSH       SSHConfig       `yaml:"ssh"`
}

// HighScoreConfig selects where the best score lives.
type HighScoreConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path"`    // text file for the file backend
}

// StorageConfig locates the SQLite game history.
type StorageConfig struct {
	DB string `yaml:"db"`
}

// LogConfig controls the charmbracelet logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // used by interactive play, which owns the terminal
}

// SpectateConfig enables the websocket feed. An empty address disables it.
type SpectateConfig struct {
	Addr string `yaml:"addr"`
}

// SSHConfig configures `tetris serve`.
type SSHConfig struct {
	Addr           string `yaml:"addr"`
	HostKey        string `yaml:"host_key"`
	IdleTimeoutMin int    `yaml:"idle_timeout_min"`
}

// Tick returns the UI frame interval.
func (c TetrisConfig) Tick() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMin) * time.Minute
}
