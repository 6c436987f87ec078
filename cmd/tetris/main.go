// tetris is a falling-blocks game for the terminal.
//
// Usage:
//
//	tetris play      - Open the menu and play in this terminal
//	tetris scores    - Show the best finished games
//	tetris serve     - Start an SSH server; every connection plays its own game
//	tetris config    - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.arcade/configs, ./configs)
//	--log-level <level> - debug, info, warn or error
//	--db <path>         - Scores database (default: ~/.arcade/scores.db)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/highscore"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagDBPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Falling blocks in your terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `A terminal tetris with a persistent high score, a shared
leaderboard, an SSH server and a websocket spectator feed.

Available commands:
  play     - Play in this terminal
  scores   - View the best finished games
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  tetris play
  tetris play --seed 42 --spectate localhost:8080
  tetris serve --ssh :2222
  tetris scores --limit 20`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies global flag overrides.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagDBPath != "" {
		cfg.Storage.DB = flagDBPath
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// terminalSize returns the size of the terminal on stdout, or the default
// screen size when stdout is not a terminal.
func terminalSize() (int, int) {
	def := core.DefaultConfig()
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return def.ScreenW, def.ScreenH
	}
	return w, h
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, cfg config.TetrisConfig) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           cfg.LogLevel(),
	})
}

// openLogFile opens path for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	path, err := storage.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// openHighScores returns the configured high score backend. The sqlite
// backend needs store; without it the file backend is used, and without a
// file path the best score lives in memory only. A nil result means the
// session keeps it in memory.
func openHighScores(cfg config.TetrisConfig, store *storage.Store, logger *log.Logger) tetris.HighScoreStore {
	if cfg.HighScore.Backend == config.BackendSQLite {
		if store != nil {
			return highscore.NewDBStore(store)
		}
		if cfg.HighScore.Path == "" {
			logger.Warn("sqlite high score backend unavailable and no highscore.path, keeping it in memory")
			return nil
		}
		logger.Warn("sqlite high score backend unavailable, using file", "path", cfg.HighScore.Path)
	}

	fs, err := highscore.NewFileStore(cfg.HighScore.Path)
	if err != nil {
		logger.Warn("high score file unavailable, keeping it in memory", "error", err)
		return nil
	}
	return fs
}
