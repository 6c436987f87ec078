package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/highscore"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Publisher receives a snapshot after every step. The spectate hub is one.
type Publisher interface {
	Publish(source string, snap tetris.Snapshot)
	Forget(source string)
}

// GameOptions holds the collaborators of a GameModel.
type GameOptions struct {
	Store     *storage.Store // game history; may be nil
	Publisher Publisher      // may be nil
	Source    string         // name used when publishing
	Logger    *log.Logger
}

// GameModel runs one tetris.Session in the terminal.
type GameModel struct {
	session    *tetris.Session
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       GameOptions
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the finished game has been recorded
}

// NewGameModel creates a model that drives session. The session is started
// if it has not been already.
func NewGameModel(session *tetris.Session, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if session.Phase() != tetris.PhaseFalling {
		session.Start()
	}

	return GameModel{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:     cfg,
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  session.State(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey queues the key's action for the next step.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu only when nothing is in play
	if m.keyMapper.IsBack(msg) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleTick applies queued input, advances gravity and records a
// finished game once.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionStart) {
		m.scoreSaved = false
	}

	result := m.session.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordGame()
		m.scoreSaved = true
	}

	if m.opts.Publisher != nil {
		m.opts.Publisher.Publish(m.opts.Source, m.session.Snapshot())
	}

	return m, tickCmd(m.config.TickRate)
}

// recordGame appends the finished game to the history. Failures are logged.
func (m GameModel) recordGame() {
	if m.opts.Store == nil || m.session.Score() == 0 {
		return
	}
	result := storage.GameResult{
		GameID: highscore.GameID,
		Score:  m.session.Score(),
		Level:  m.session.Level(),
		Lines:  m.session.Lines(),
	}
	if _, err := m.opts.Store.SaveGame(result); err != nil {
		m.opts.Logger.Warn("could not record game", "score", result.Score, "error", err)
		return
	}
	m.opts.Logger.Info("game recorded", "source", m.opts.Source, "score", result.Score, "level", result.Level, "lines", result.Lines)
}

// saveScreenshot writes the current frame as plain text.
func (m *GameModel) saveScreenshot() {
	m.draw()

	dir, err := storage.ExpandHome("~/.arcade/screenshots")
	if err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}

	name := fmt.Sprintf("tetris_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// draw renders the session into the screen buffer.
func (m GameModel) draw() {
	m.screen.Clear()
	area := core.NewRect(0, 0, m.screen.Width(), m.screen.Height())
	board := core.NewRect(0, 0, BoardWidth, BoardHeight)
	if !board.Fits(area) {
		m.screen.DrawTextCentered(m.screen.Height()/2, "Terminal too small")
		m.screen.DrawTextCentered(m.screen.Height()/2+1, fmt.Sprintf("need %dx%d", BoardWidth, BoardHeight+1))
		return
	}
	board = board.CenterIn(area)
	DrawBoard(m.screen, m.session.Snapshot(), board.X, board.Y)
}

// View renders the board and the help footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(m.help.View(m.keyMapper.Keys()))
	footer = lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, footer)
	return RenderScreen(m.screen) + "\n" + footer
}

// Session returns the driven session.
func (m GameModel) Session() *tetris.Session {
	return m.session
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
