package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// ConfigName is the file name looked up in the config directories.
const ConfigName = "tetris.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.arcade/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
//
// Fields missing from a file keep their default values. Only an explicit
// customPath that cannot be read or parsed is an error.
func Load(customPath string) (TetrisConfig, error) {
	cfg := defaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(ConfigName), filepath.Join("configs", ConfigName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := cfg
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			return fileCfg, nil
		}
	}

	return cfg, nil
}

// defaults returns the embedded default YAML, or the hard-coded values
// if the embedded file does not parse.
func defaults() TetrisConfig {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate reports the first invalid field.
func (c TetrisConfig) Validate() error {
	if c.TickMS <= 0 {
		return fmt.Errorf("config: tick_ms must be positive, got %d", c.TickMS)
	}
	switch c.HighScore.Backend {
	case BackendFile:
		if c.HighScore.Path == "" {
			return fmt.Errorf("config: highscore.path is required for the file backend")
		}
	case BackendSQLite:
		if c.Storage.DB == "" {
			return fmt.Errorf("config: storage.db is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("config: unknown highscore.backend %q", c.HighScore.Backend)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if c.SSH.IdleTimeoutMin < 0 {
		return fmt.Errorf("config: ssh.idle_timeout_min must not be negative")
	}
	return nil
}

// LogLevel returns the parsed log level, defaulting to info.
func (c TetrisConfig) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Dump renders the configuration as YAML.
func (c TetrisConfig) Dump() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
