package tetris

import "time"

// Snapshot is a read-only copy of a session for rendering.
type Snapshot struct {
	Board     Grid    // locked cells with the falling piece drawn in
	Falling   []Point // grid cells of the falling piece
	Current   Kind
	Next      Kind
	NextShape Shape
	Score     int
	HighScore int
	Level     int
	Lines     int
	Speed     time.Duration
	Paused    bool
	GameOver  bool
	Phase     Phase
}

// Snapshot copies the session state. The session grid is not modified.
func (s *Session) Snapshot() Snapshot {
	board := s.grid
	var falling []Point
	if s.phase != PhaseInitializing {
		falling = s.current.Cells()
		for _, c := range falling {
			board.Set(c.X, c.Y, true)
		}
	}

	return Snapshot{
		Board:     board,
		Falling:   falling,
		Current:   s.current.Kind,
		Next:      s.next.Kind,
		NextShape: s.next.Shape,
		Score:     s.score,
		HighScore: s.highScore,
		Level:     s.level,
		Lines:     s.lines,
		Speed:     s.speed,
		Paused:    s.paused,
		GameOver:  s.phase == PhaseGameOver,
		Phase:     s.phase,
	}
}

// Rows renders the board, falling piece included, as strings of '#' and '.'.
func (s Snapshot) Rows() []string {
	return s.Board.Rows()
}
