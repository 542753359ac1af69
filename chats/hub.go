package chats

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"suratguide/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 << 10
	sendBuffer     = 16
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// Client is one websocket conversation with the assistant.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks open assistant connections so they can be closed on shutdown.
type Hub struct {
	assistant  *Assistant
	log        *logger.Logger
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once
	ctx        context.Context
	cancel     context.CancelFunc

	mu    sync.Mutex
	count int
}

func NewHub(a *Assistant, log *logger.Logger) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		assistant:  a,
		log:        log.With("component", "chat-hub"),
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.setCount(len(h.clients))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.setCount(len(h.clients))
			}

		case <-h.done:
			for c := range h.clients {
				_ = c.conn.Close()
				delete(h.clients, c)
			}
			h.setCount(0)
			return
		}
	}
}

// Stop closes every connection and ends Run. Safe to call more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		h.cancel()
		close(h.done)
	})
}

// Connections is the number of open websocket clients.
func (h *Hub) Connections() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}

func (h *Hub) setCount(n int) {
	h.mu.Lock()
	h.count = n
	h.mu.Unlock()
}

// GET /ws/chat
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	hub := h.hub
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.log.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &Client{hub: hub, conn: conn, send: make(chan []byte, sendBuffer)}
	if data, err := json.Marshal(botMessage(Greeting)); err == nil {
		c.send <- data
	}

	select {
	case hub.register <- c:
	case <-hub.done:
		_ = conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

// question accepts {"question": ...}, {"text": ...} or a bare text frame. Blank
// questions come back as "".
func question(raw []byte) string {
	var in struct {
		Question string `json:"question"`
		Text     string `json:"text"`
	}
	q := string(raw)
	if err := json.Unmarshal(raw, &in); err == nil {
		q = in.Question
		if strings.TrimSpace(q) == "" {
			q = in.Text
		}
	}
	if strings.TrimSpace(q) == "" {
		return ""
	}
	return q
}

func (c *Client) push(data []byte) bool {
	select {
	case c.send <- data:
		return true
	case <-c.hub.done:
		return false
	default:
		return false
	}
}

func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.log.Debug("websocket closed", "error", err)
			}
			return
		}

		q := question(raw)
		if q == "" {
			continue
		}

		data, err := json.Marshal(botMessage(c.hub.assistant.Ask(c.hub.ctx, q)))
		if err != nil {
			continue
		}
		if !c.push(data) {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.hub.done:
			return
		}
	}
}
