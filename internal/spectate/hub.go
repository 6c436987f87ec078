package spectate

import (
	"bytes"
	"encoding/json"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// watcherBuffer is how many frames may queue for one watcher before it is
// dropped as too slow.
const watcherBuffer = 32

// watcher is one connected websocket client.
type watcher struct {
	send chan *websocket.PreparedMessage
	once sync.Once
}

func (w *watcher) close() {
	w.once.Do(func() { close(w.send) })
}

// Hub fans snapshots out to watchers. It is safe for concurrent use; every
// game session may publish from its own goroutine.
type Hub struct {
	mu       sync.Mutex
	watchers map[*watcher]struct{}
	last     map[string][]byte // latest frame per source
	logger   *log.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		watchers: make(map[*watcher]struct{}),
		last:     make(map[string][]byte),
		logger:   logger,
	}
}

// Publish sends the snapshot to every watcher. Frames identical to the
// previous one from the same source are skipped.
func (h *Hub) Publish(source string, snap tetris.Snapshot) {
	data, err := json.Marshal(NewMessage(source, snap))
	if err != nil {
		h.logger.Error("cannot encode snapshot", "source", source, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if bytes.Equal(h.last[source], data) {
		return
	}
	h.last[source] = data

	if len(h.watchers) == 0 {
		return
	}

	msg, err := websocket.NewPreparedMessage(websocket.TextMessage, data)
	if err != nil {
		h.logger.Error("cannot prepare frame", "error", err)
		return
	}
	for w := range h.watchers {
		select {
		case w.send <- msg:
		default:
			h.logger.Warn("dropping slow watcher")
			delete(h.watchers, w)
			w.close()
		}
	}
}

// Forget removes the last frame of a source that stopped playing.
func (h *Hub) Forget(source string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.last, source)
}

// Watchers returns the number of connected watchers.
func (h *Hub) Watchers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.watchers)
}

// subscribe registers a watcher and queues the latest frame of every source.
func (h *Hub) subscribe() *watcher {
	w := &watcher{send: make(chan *websocket.PreparedMessage, watcherBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()

	for source, data := range h.last {
		msg, err := websocket.NewPreparedMessage(websocket.TextMessage, data)
		if err != nil {
			h.logger.Error("cannot prepare frame", "source", source, "error", err)
			continue
		}
		select {
		case w.send <- msg:
		default:
		}
	}
	h.watchers[w] = struct{}{}
	return w
}

// unsubscribe removes a watcher if it is still registered.
func (h *Hub) unsubscribe(w *watcher) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.watchers[w]; ok {
		delete(h.watchers, w)
		w.close()
	}
}

// Close disconnects every watcher.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for w := range h.watchers {
		delete(h.watchers, w)
		w.close()
	}
}
