package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/spectate"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagSSHAddr       string
	flagHostKey       string
	flagIdleTimeout   int
	flagServeSpectate string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tetris SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game behind the main menu. All players
share the leaderboard and the best score through the scores database.

Host key handling:
  - If --host-key (or ssh.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  tetris serve                           # Listen on :23234
  tetris serve --ssh :2222               # Listen on port 2222
  tetris serve --host-key ./my_host_key  # Use specific host key
  tetris serve --spectate :8080          # Also stream every game over websocket

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeSpectate, "spectate", "", "Serve the spectator feed on this address")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSSHAddr != "" {
		cfg.SSH.Addr = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.SSH.IdleTimeoutMin = flagIdleTimeout
	}
	if flagServeSpectate != "" {
		cfg.Spectate.Addr = flagServeSpectate
	}

	logger := newLogger(os.Stderr, cfg)

	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be shared", "error", err)
	} else {
		defer store.Close()
	}

	hostKey := cfg.SSH.HostKey
	if hostKey != "" {
		if hostKey, err = storage.ExpandHome(hostKey); err != nil {
			return err
		}
	}

	var publisher tui.Publisher
	var feed *spectate.Server
	if cfg.Spectate.Addr != "" {
		hub := spectate.NewHub(logger.WithPrefix("tetris-spectate"))
		publisher = hub
		feed = spectate.NewServer(cfg.Spectate.Addr, hub, logger.WithPrefix("tetris-spectate"))
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.SSH.Addr,
		HostKeyPath: hostKey,
		IdleTimeout: cfg.SSH.IdleTimeout(),
		TickRate:    tui.TickRateFor(cfg.Tick()),
		Seed:        cfg.Seed,
	}, store, publisher, logger.WithPrefix("tetris-ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting tetris SSH server on %s\n", cfg.SSH.Addr)
	fmt.Printf("Connect with: ssh -t localhost -p %s\n", portOf(cfg.SSH.Addr))
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return server.ListenAndServe(ctx) })
	if feed != nil {
		g.Go(func() error { return feed.ListenAndServe(ctx) })
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
