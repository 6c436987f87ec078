package spectate

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func startedSnapshot(t *testing.T) (*tetris.Session, tetris.Snapshot) {
	t.Helper()
	s := tetris.New(tetris.Options{Seed: 11})
	s.Start()
	return s, s.Snapshot()
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestNewMessage(t *testing.T) {
	_, snap := startedSnapshot(t)

	msg := NewMessage("alice", snap)

	assert.Equal(t, MessageTypeSnapshot, msg.Type)
	assert.Equal(t, "alice", msg.Source)
	assert.Equal(t, "falling", msg.Phase)
	assert.Len(t, msg.Rows, tetris.Height)
	assert.Equal(t, snap.Rows(), msg.Rows)
	assert.Len(t, msg.NextRows, tetris.ShapeSize)
	assert.Equal(t, snap.Next.String(), msg.Next)
	assert.Equal(t, int64(500), msg.SpeedMS)
	assert.Equal(t, 1, msg.Level)
	assert.False(t, msg.GameOver)

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"snapshot"`)
	assert.Contains(t, string(data), `"speed_ms":500`)
}

func TestHubReplaysLatestFrame(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	s, first := startedSnapshot(t)
	hub.Publish("p1", first)
	s.SoftDrop()
	hub.Publish("p1", s.Snapshot())

	conn := dial(t, srv)
	msg := readMessage(t, conn)

	assert.Equal(t, "p1", msg.Source)
	assert.Equal(t, s.Snapshot().Rows(), msg.Rows, "only the latest frame is replayed")
}

func TestHubBroadcastsChanges(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	a := dial(t, srv)
	b := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Watchers() == 2 }, 2*time.Second, 10*time.Millisecond)

	s, snap := startedSnapshot(t)
	hub.Publish("p1", snap)
	hub.Publish("p1", snap) // unchanged, skipped
	s.HardDrop()
	hub.Publish("p1", s.Snapshot())

	for _, conn := range []*websocket.Conn{a, b} {
		first := readMessage(t, conn)
		second := readMessage(t, conn)
		assert.Equal(t, snap.Rows(), first.Rows)
		assert.Equal(t, s.Snapshot().Rows(), second.Rows)
	}
}

func TestHubIgnoresWatcherInput(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Watchers() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"move","action":"left"}`)))

	s, snap := startedSnapshot(t)
	hub.Publish("p1", snap)
	msg := readMessage(t, conn)
	assert.Equal(t, snap.Rows(), msg.Rows)
	assert.Equal(t, snap, s.Snapshot(), "watcher input never reaches a session")
}

func TestHubDropsDisconnectedWatcher(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Watchers() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.Watchers() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHubDropsSlowWatcher(t *testing.T) {
	hub := NewHub(nil)
	w := hub.subscribe()

	s, _ := startedSnapshot(t)
	// Every soft drop changes the frame; nobody drains w.send
	for range watcherBuffer + 1 {
		s.SoftDrop()
		hub.Publish("p1", s.Snapshot())
	}

	assert.Zero(t, hub.Watchers())
	n := 0
	for range w.send {
		n++
	}
	assert.Equal(t, watcherBuffer, n, "queued frames stay readable after the drop")
}

func TestServerShutdown(t *testing.T) {
	hub := NewHub(nil)
	server := NewServer("127.0.0.1:0", hub, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
