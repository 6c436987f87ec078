package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScores
)

// AppOptions configures an AppModel.
type AppOptions struct {
	Config     core.RuntimeConfig
	Session    *tetris.Session       // the one session this app drives
	HighScores tetris.HighScoreStore // read for the menu; may be nil
	Game       GameOptions
}

// AppModel manages the flow menu -> game or scoreboard -> menu.
// It owns exactly one tetris.Session for its whole lifetime; choosing Play
// again resumes or restarts that session.
type AppModel struct {
	opts     AppOptions
	config   core.RuntimeConfig
	current  screenKind
	menu     MenuModel
	game     GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewAppModel creates the top-level model.
func NewAppModel(opts AppOptions) AppModel {
	m := AppModel{
		opts:   opts,
		config: opts.Config,
	}
	m.menu = NewMenuModel(m.config, m.best())
	return m
}

// best returns the stored high score, or the session's if the store fails.
func (m AppModel) best() int {
	if m.opts.HighScores != nil {
		if v, err := m.opts.HighScores.Load(); err == nil {
			return max(v, m.opts.Session.HighScore())
		}
	}
	return m.opts.Session.HighScore()
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Selected() {
	case ChoicePlay:
		m.game = NewGameModel(m.opts.Session, m.config, m.opts.Game)
		m.current = screenGame
		return m, m.game.Init()
	case ChoiceScores:
		m.scores = NewScoreboardModel(m.opts.Game.Store, m.config.ScreenW, m.config.ScreenH)
		m.current = screenScores
		return m, m.scores.Init()
	}

	return m, cmd
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.toMenu()
	}
	return m, cmd
}

func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.toMenu()
	}
	return m, cmd
}

// toMenu returns to a fresh menu. Pending game ticks are dropped by the
// menu, which ends the tick loop.
func (m AppModel) toMenu() (tea.Model, tea.Cmd) {
	m.current = screenMenu
	m.menu = NewMenuModel(m.config, m.best())
	return m, m.menu.Init()
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.current {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Run starts the app in the local terminal.
func Run(opts AppOptions) error {
	p := tea.NewProgram(
		NewAppModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
