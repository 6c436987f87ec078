// Package spectate broadcasts game snapshots to websocket watchers.
//
// Watchers connect to /ws and receive one JSON message per changed frame
// of every published game. The feed is read-only: anything a watcher
// sends is discarded.
package spectate

import (
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// MessageTypeSnapshot tags a board update.
const MessageTypeSnapshot = "snapshot"

// Message is the wire form of a tetris.Snapshot.
type Message struct {
	Type      string   `json:"type"`
	Source    string   `json:"source"`
	Phase     string   `json:"phase"`
	Rows      []string `json:"rows"` // top to bottom, '#' filled, '.' empty
	Current   string   `json:"current"`
	Next      string   `json:"next"`
	NextRows  []string `json:"next_rows"`
	Score     int      `json:"score"`
	HighScore int      `json:"high_score"`
	Level     int      `json:"level"`
	Lines     int      `json:"lines"`
	SpeedMS   int64    `json:"speed_ms"`
	Paused    bool     `json:"paused"`
	GameOver  bool     `json:"game_over"`
}

// NewMessage converts a snapshot for the wire.
func NewMessage(source string, snap tetris.Snapshot) Message {
	return Message{
		Type:      MessageTypeSnapshot,
		Source:    source,
		Phase:     snap.Phase.String(),
		Rows:      snap.Rows(),
		Current:   snap.Current.String(),
		Next:      snap.Next.String(),
		NextRows:  snap.NextShape.Rows(),
		Score:     snap.Score,
		HighScore: snap.HighScore,
		Level:     snap.Level,
		Lines:     snap.Lines,
		SpeedMS:   snap.Speed.Milliseconds(),
		Paused:    snap.Paused,
		GameOver:  snap.GameOver,
	}
}
