package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func TestPreviewKeepAlivePingsBeforeDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		connection, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		defer connection.Close()

		stopPings := previewKeepAlive(connection, 200*time.Millisecond)
		defer stopPings()

		for {
			if _, _, err := connection.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer client.Close()

	pinged := make(chan struct{}, 1)
	client.SetPingHandler(func(appData string) error {
		select {
		case pinged <- struct{}{}:
		default:
		}
		return client.WriteControl(websocket.PongMessage, nil, time.Now().Add(time.Second))
	})

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := client.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// An idle viewer must be pinged before the read deadline expires.
	select {
	case <-pinged:
	case <-closed:
		t.Fatal("connection closed before any ping arrived")
	case <-time.After(time.Second):
		t.Fatal("no ping received before the read deadline")
	}
}
