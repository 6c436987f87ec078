package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/spectate"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	flagSeed     int64
	flagTickMS   int
	flagSpectate string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Open the main menu and play.

Controls:
  Left/H, Right/L   - Move
  Up/X/Z            - Rotate
  Down/J            - Soft drop
  Space             - Hard drop
  Enter             - New game
  P                 - Pause
  Esc               - End game
  B                 - Back to menu (paused or game over)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Logs go to log.file from the config, since the game owns the terminal.

Examples:
  tetris play
  tetris play --seed 42
  tetris play --spectate localhost:8080`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Piece sequence seed (0 = config or time)")
	playCmd.Flags().IntVar(&flagTickMS, "tick", 0, "UI frame interval in ms (0 = config)")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve the spectator feed on this address")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagTickMS > 0 {
		cfg.TickMS = flagTickMS
	}
	if flagSpectate != "" {
		cfg.Spectate.Addr = flagSpectate
	}

	var logOut io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := openLogFile(cfg.Log.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v; logging disabled\n", err)
		} else {
			defer f.Close()
			logOut = f
		}
	}
	logger := newLogger(logOut, cfg)

	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
	} else {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var publisher tui.Publisher
	if cfg.Spectate.Addr != "" {
		hub := spectate.NewHub(logger)
		publisher = hub
		server := spectate.NewServer(cfg.Spectate.Addr, hub, logger)
		go func() {
			if err := server.ListenAndServe(ctx); err != nil {
				logger.Error("spectator feed stopped", "error", err)
			}
		}()
	}

	width, height := terminalSize()

	scores := openHighScores(cfg, store, logger)
	session := tetris.New(tetris.Options{
		Seed:       cfg.Seed,
		HighScores: scores,
		Logger:     logger,
	})

	logger.Info("starting", "seed", cfg.Seed, "tick", cfg.Tick(), "backend", cfg.HighScore.Backend)
	start := time.Now()

	err = tui.Run(tui.AppOptions{
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: tui.TickRateFor(cfg.Tick()),
			Seed:     cfg.Seed,
		},
		Session:    session,
		HighScores: scores,
		Game: tui.GameOptions{
			Store:     store,
			Publisher: publisher,
			Source:    "local",
			Logger:    logger,
		},
	})
	logger.Info("exiting", "played", time.Since(start).Round(time.Second), "best", session.HighScore())
	return err
}
