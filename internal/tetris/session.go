package tetris

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Phase is the lifecycle state of a Session.
type Phase int

const (
	PhaseInitializing Phase = iota // before the first Start, and during Start
	PhaseFalling                   // normal play
	PhaseGameOver                  // topped out or terminated; waits for Start
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseFalling:
		return "falling"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// HighScoreStore persists the best score. Both calls may block.
// The session treats every error as "no value" or "not saved".
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// memoryStore keeps the high score for the lifetime of the process only.
type memoryStore struct {
	best int
}

func (m *memoryStore) Load() (int, error) { return m.best, nil }

func (m *memoryStore) Save(score int) error {
	m.best = score
	return nil
}

// Options configures a Session. Zero values are replaced by defaults.
type Options struct {
	Seed       int64          // 0 means time-based
	Clock      Clock          // defaults to SystemClock
	HighScores HighScoreStore // defaults to an in-memory store
	Logger     *log.Logger    // defaults to a discarding logger
}

// Session is one game of falling blocks. It owns the grid, the falling and
// preview pieces, score, level and the descent timer.
//
// A Session is not safe for concurrent use: the caller drives it with one
// action or one Tick at a time.
type Session struct {
	grid    Grid
	current Piece
	next    Piece

	score     int
	highScore int
	level     int
	lines     int
	speed     time.Duration

	paused      bool
	phase       Phase
	lastDescent time.Time

	rng    *rand.Rand
	clock  Clock
	store  HighScoreStore
	logger *log.Logger
}

// New creates a session in PhaseInitializing. Call Start to begin a game.
func New(opts Options) *Session {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.HighScores == nil {
		opts.HighScores = &memoryStore{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Session{
		level:  1,
		speed:  SpeedFor(1),
		phase:  PhaseInitializing,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		clock:  opts.Clock,
		store:  opts.HighScores,
		logger: opts.Logger,
	}
}

// Start discards any game in progress and begins a fresh one.
func (s *Session) Start() {
	s.phase = PhaseInitializing
	s.grid = Grid{}
	s.score = 0
	s.level = 1
	s.lines = 0
	s.speed = SpeedFor(1)
	s.paused = false
	s.loadHighScore()

	s.next = s.draw()
	s.spawn()
	if s.phase != PhaseGameOver {
		s.phase = PhaseFalling
	}
	s.logger.Debug("game started", "current", s.current.Kind, "next", s.next.Kind)
}

// Terminate ends the current game. The board is kept for display.
func (s *Session) Terminate() {
	if s.phase != PhaseGameOver {
		s.logger.Debug("game terminated", "score", s.score)
	}
	s.phase = PhaseGameOver
}

// TogglePause flips the pause flag.
func (s *Session) TogglePause() {
	s.paused = !s.paused
}

// MoveLeft nudges the falling piece one column left if it fits.
func (s *Session) MoveLeft() {
	s.shift(-1)
}

// MoveRight nudges the falling piece one column right if it fits.
func (s *Session) MoveRight() {
	s.shift(1)
}

// Rotate turns the falling piece clockwise if the result fits in place.
// There is no wall kick: a blocked rotation is ignored.
func (s *Session) Rotate() {
	if !s.acceptsMoves() {
		return
	}
	if candidate := s.current.Rotated(); !Collides(&s.grid, candidate) {
		s.current = candidate
	}
}

// SoftDrop moves the falling piece down one row, locking it if it cannot move.
func (s *Session) SoftDrop() {
	if !s.acceptsMoves() {
		return
	}
	s.descend()
}

// HardDrop moves the falling piece to the lowest row it can reach and locks it.
func (s *Session) HardDrop() {
	if !s.acceptsMoves() {
		return
	}
	for {
		below := s.current.Moved(0, 1)
		if Collides(&s.grid, below) {
			break
		}
		s.current = below
	}
	s.lockAndRespawn()
}

// Tick polls the descent timer. When at least one descent interval has
// passed since the last descent, the falling piece moves down one row.
// Ticks while paused or outside PhaseFalling do nothing.
func (s *Session) Tick() {
	if s.paused || s.phase != PhaseFalling {
		return
	}
	now := s.clock.Now()
	if now.Sub(s.lastDescent) >= s.speed {
		s.descend()
		s.lastDescent = now
	}
}

// Apply performs a single action. Actions the session does not know are ignored.
func (s *Session) Apply(a core.Action) {
	switch a {
	case core.ActionStart:
		s.Start()
	case core.ActionTerminate:
		s.Terminate()
	case core.ActionPause:
		s.TogglePause()
	case core.ActionLeft:
		s.MoveLeft()
	case core.ActionRight:
		s.MoveRight()
	case core.ActionRotate:
		s.Rotate()
	case core.ActionSoftDrop:
		s.SoftDrop()
	case core.ActionHardDrop:
		s.HardDrop()
	}
}

// Step applies the actions of one input frame in arrival order and then
// ticks. Repeated actions are applied once each.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions {
		s.Apply(a)
	}
	s.Tick()
	return core.StepResult{State: s.State()}
}

// State returns the coarse status used by the platform layer.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.phase == PhaseGameOver,
		Paused:   s.paused,
	}
}

// Phase returns the lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// Paused reports whether automatic descent is suspended.
func (s *Session) Paused() bool { return s.paused }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Level returns the current level.
func (s *Session) Level() int { return s.level }

// Lines returns the number of rows cleared in this game.
func (s *Session) Lines() int { return s.lines }

// Speed returns the current descent interval.
func (s *Session) Speed() time.Duration { return s.speed }

// HighScore returns the best score known to the session.
func (s *Session) HighScore() int { return s.highScore }

func (s *Session) acceptsMoves() bool {
	return s.phase == PhaseFalling && !s.paused
}

func (s *Session) shift(dx int) {
	if !s.acceptsMoves() {
		return
	}
	if moved := s.current.Moved(dx, 0); !Collides(&s.grid, moved) {
		s.current = moved
	}
}

// descend moves the falling piece one row down or locks it in place.
func (s *Session) descend() {
	below := s.current.Moved(0, 1)
	if Collides(&s.grid, below) {
		s.lockAndRespawn()
		return
	}
	s.current = below
}

func (s *Session) lockAndRespawn() {
	Commit(&s.grid, s.current)
	cleared := ClearLines(&s.grid)
	s.logger.Debug("piece locked", "kind", s.current.Kind, "x", s.current.X, "y", s.current.Y, "cleared", cleared)
	s.award(cleared)
	s.spawn()
}

// award converts cleared rows into score, level and speed, then raises
// the high score when it is beaten.
func (s *Session) award(cleared int) {
	if cleared > 0 {
		s.score += Points(cleared)
		s.lines += cleared

		level := LevelFor(s.score, s.level)
		if level != s.level {
			s.logger.Debug("level up", "from", s.level, "to", level, "score", s.score)
		}
		s.level = level
		s.speed = SpeedFor(level)
	}

	if s.score > s.highScore {
		s.highScore = s.score
		if err := s.store.Save(s.highScore); err != nil {
			s.logger.Warn("could not save high score", "score", s.highScore, "error", err)
		}
	}
}

// spawn promotes the preview piece, draws a new preview and checks for top-out.
func (s *Session) spawn() {
	s.current = s.next
	s.next = s.draw()
	s.lastDescent = s.clock.Now()

	if Collides(&s.grid, s.current) {
		s.phase = PhaseGameOver
		s.logger.Debug("game over", "score", s.score, "level", s.level, "lines", s.lines)
	}
}

// draw returns a uniformly random piece at the spawn anchor.
func (s *Session) draw() Piece {
	return NewPiece(Kinds[s.rng.Intn(len(Kinds))])
}

func (s *Session) loadHighScore() {
	best, err := s.store.Load()
	if err != nil {
		s.logger.Warn("could not load high score", "error", err)
		return
	}
	s.highScore = max(best, 0)
}
