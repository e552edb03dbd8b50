package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// One broadcaster and one keepalive pinger write to the same client at the
// same time; every text frame must still arrive intact.
func TestRealtimeHub_BroadcastAndPingShareOneWriter(t *testing.T) {
	hub := NewRealtimeHub()
	upgrader := websocket.Upgrader{}
	registered := make(chan *WSClient, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		cl := &WSClient{UserID: 7, Conn: conn}
		hub.Register(cl)
		registered <- cl
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer client.Close()

	cl := <-registered
	const n = 25

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			hub.BroadcastDiaryEvent(7, "entry.updated", map[string]int{"seq": i})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			_ = cl.WriteMessage(websocket.PingMessage, nil)
		}
	}()

	// ReadMessage skips control frames, so exactly n text frames arrive
	for i := 0; i < n; i++ {
		require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))
		mt, msg, err := client.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, websocket.TextMessage, mt)

		var payload struct {
			Event string `json:"event"`
		}
		require.NoError(t, json.Unmarshal(msg, &payload))
		assert.Equal(t, "entry.updated", payload.Event)
	}
	wg.Wait()
}

func TestRealtimeHub_BroadcastOnlyReachesOwner(t *testing.T) {
	hub := NewRealtimeHub()
	upgrader := websocket.Upgrader{}
	registered := make(chan *WSClient, 2)
	var nextUser uint = 1
	var mu sync.Mutex

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		mu.Lock()
		uid := nextUser
		nextUser++
		mu.Unlock()
		cl := &WSClient{UserID: uid, Conn: conn}
		hub.Register(cl)
		registered <- cl
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	owner, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer owner.Close()
	<-registered
	other, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer other.Close()
	<-registered

	hub.BroadcastDiaryEvent(1, "entry.deleted", map[string]string{"id": "x"})

	require.NoError(t, owner.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := owner.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(msg), "entry.deleted")

	// the other user's socket stays silent
	require.NoError(t, other.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err = other.ReadMessage()
	assert.Error(t, err)
}
