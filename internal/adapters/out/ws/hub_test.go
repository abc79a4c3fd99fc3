package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()

	hub := NewHub(slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(t.Context())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	return hub
}

func dial(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, ServeWS(hub, w, r))
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		defer resp.Body.Close()
	}
	t.Cleanup(func() {
		conn.Close()
	})

	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) envelope {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(data, &env))
	return env
}

func Test_Hub_BroadcastReachesConnectedClient(t *testing.T) {
	hub := startHub(t)
	conn := dial(t, hub)

	hub.BroadcastToAll("OrderNotification", map[string]string{
		"orderId": "a2f1",
		"title":   "Success",
	})

	env := readEnvelope(t, conn)
	assert.Equal(t, "OrderNotification", env.Event)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a2f1", data["orderId"])
	assert.Equal(t, "Success", data["title"])
}

func Test_Hub_BroadcastReachesEveryClient(t *testing.T) {
	hub := startHub(t)
	first := dial(t, hub)
	second := dial(t, hub)

	hub.BroadcastToAll("OrderNotification", map[string]string{"orderId": "b3c2"})

	for _, conn := range []*websocket.Conn{first, second} {
		env := readEnvelope(t, conn)
		assert.Equal(t, "OrderNotification", env.Event)
	}
}

func Test_Hub_DisconnectedClientDoesNotBlockBroadcast(t *testing.T) {
	hub := startHub(t)
	gone := dial(t, hub)
	alive := dial(t, hub)

	require.NoError(t, gone.Close())
	// Give the hub time to process the unregister.
	time.Sleep(100 * time.Millisecond)

	hub.BroadcastToAll("OrderNotification", map[string]string{"orderId": "c4d3"})

	env := readEnvelope(t, alive)
	assert.Equal(t, "OrderNotification", env.Event)
}

func Test_Hub_UnserializablePayloadIsDropped(t *testing.T) {
	hub := startHub(t)
	conn := dial(t, hub)

	hub.BroadcastToAll("OrderNotification", func() {})
	hub.BroadcastToAll("OrderNotification", map[string]string{"orderId": "d5e4"})

	env := readEnvelope(t, conn)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "d5e4", data["orderId"])
}
