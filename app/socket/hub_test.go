package socket

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
	"worksuite/global"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	global.Logger = zerolog.Nop()
	os.Exit(m.Run())
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(url, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readWithDeadline(t *testing.T, conn *websocket.Conn) []byte {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

func TestBroadcastReachesOtherClientsNotSender(t *testing.T) {
	hub := NewHub(nil, "")
	ts := httptest.NewServer(http.HandlerFunc(hub.Serve))
	defer ts.Close()

	a := dial(t, ts.URL)
	b := dial(t, ts.URL)
	c := dial(t, ts.URL)
	time.Sleep(50 * time.Millisecond) // let all three register

	if err := a.WriteMessage(websocket.TextMessage, []byte(`{"kind":"item.updated","id":"x"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, conn := range []*websocket.Conn{b, c} {
		if got := readWithDeadline(t, conn); string(got) != `{"kind":"item.updated","id":"x"}` {
			t.Fatalf("unexpected frame %s", got)
		}
	}

	// the sender must not hear its own frame
	_ = a.SetReadDeadline(time.Now().Add(150 * time.Millisecond))
	if _, msg, err := a.ReadMessage(); err == nil {
		t.Fatalf("sender received its own frame: %s", msg)
	}
}

func TestDisconnectedClientIsForgotten(t *testing.T) {
	hub := NewHub(nil, "")
	ts := httptest.NewServer(http.HandlerFunc(hub.Serve))
	defer ts.Close()

	a := dial(t, ts.URL)
	b := dial(t, ts.URL)
	time.Sleep(50 * time.Millisecond)

	b.Close()
	time.Sleep(50 * time.Millisecond)

	hub.mu.RLock()
	n := len(hub.clients)
	hub.mu.RUnlock()
	if n != 1 {
		t.Fatalf("expected 1 remaining client, got %d", n)
	}

	// broadcasting after the disconnect must not wedge
	if err := a.WriteMessage(websocket.TextMessage, []byte("ping")); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestRedisRelayBridgesInstances(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb1 := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	rdb2 := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	hub1 := NewHub(rdb1, "suite:broadcast")
	hub2 := NewHub(rdb2, "suite:broadcast")
	ts1 := httptest.NewServer(http.HandlerFunc(hub1.Serve))
	ts2 := httptest.NewServer(http.HandlerFunc(hub2.Serve))
	defer ts1.Close()
	defer ts2.Close()
	time.Sleep(100 * time.Millisecond) // let both relays subscribe

	sender := dial(t, ts1.URL)
	remote := dial(t, ts2.URL)
	time.Sleep(50 * time.Millisecond)

	if err := sender.WriteMessage(websocket.TextMessage, []byte(`{"kind":"sync"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := readWithDeadline(t, remote); string(got) != `{"kind":"sync"}` {
		t.Fatalf("relayed frame mismatch: %s", got)
	}

	// the publishing instance must suppress its own relayed frame
	_ = sender.SetReadDeadline(time.Now().Add(150 * time.Millisecond))
	if _, msg, err := sender.ReadMessage(); err == nil {
		t.Fatalf("echo not suppressed: %s", msg)
	}
}
