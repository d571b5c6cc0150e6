package socket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"worksuite/global"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

// Hub fans every inbound WebSocket message out to all other connected
// clients, verbatim. No session or item state is tracked and every send is
// best-effort: a slow consumer's frame is dropped, not waited on. With a
// Redis client configured, frames are also relayed across instances over
// pub/sub, tagged with the publishing instance id to suppress echo.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*client]struct{}
	instance string
	rdb      *redis.Client
	channel  string
	upgrader websocket.Upgrader
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

type envelope struct {
	Src  string `json:"src"`
	Data string `json:"data"`
}

func NewHub(rdb *redis.Client, channel string) *Hub {
	h := &Hub{
		clients:  make(map[*client]struct{}),
		instance: uuid.NewString(),
		rdb:      rdb,
		channel:  channel,
		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
	}
	if rdb != nil {
		go h.relay()
	}
	return h
}

// Serve upgrades the request and pumps messages until the client goes away.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		global.Logger.Warn().Err(err).Msg("websocket upgrade")
		return
	}
	c := &client{conn: conn, send: make(chan []byte, 32)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	global.Logger.Debug().Msg("websocket client connected")

	go c.writeLoop()
	h.readLoop(c)
}

func (h *Hub) readLoop(c *client) {
	defer func() {
		h.mu.Lock()
		delete(h.clients, c)
		h.mu.Unlock()
		close(c.send)
		c.conn.Close()
		global.Logger.Debug().Msg("websocket client disconnected")
	}()
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		h.broadcast(c, msg)
		h.publish(msg)
	}
}

// broadcast delivers to every local client except the sender. Sends never
// block; a full buffer drops the frame for that client only.
func (h *Hub) broadcast(from *client, msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if c == from {
			continue
		}
		select {
		case c.send <- msg:
		default:
		}
	}
}

func (h *Hub) publish(msg []byte) {
	if h.rdb == nil {
		return
	}
	b, _ := json.Marshal(envelope{Src: h.instance, Data: string(msg)})
	if err := h.rdb.Publish(context.Background(), h.channel, b).Err(); err != nil {
		global.Logger.Warn().Err(err).Msg("publish broadcast frame")
	}
}

// relay rebroadcasts frames published by other instances.
func (h *Hub) relay() {
	sub := h.rdb.Subscribe(context.Background(), h.channel)
	for msg := range sub.Channel() {
		var env envelope
		if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
			continue
		}
		if env.Src == h.instance {
			continue
		}
		h.broadcast(nil, []byte(env.Data))
	}
}

func (c *client) writeLoop() {
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
