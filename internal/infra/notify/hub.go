package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"hydro-command/internal/domain/alert"

	"github.com/cockroachdb/errors"
	"github.com/gorilla/websocket"
)

var ErrHubStopped = errors.New("websocket hub stopped")

type envelope struct {
	Type    string       `json:"type"`
	Payload AlertMessage `json:"payload"`
}

// Hub fans alert messages out to websocket subscribers. Run must be started
// before clients register.
type Hub struct {
	clients    map[*Client]struct{}
	broadcast  chan AlertMessage
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan AlertMessage, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			h.mu.Unlock()
			slog.Debug("websocket client registered", "remote", c.remote, "device_id", c.deviceID)

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			raw, err := json.Marshal(envelope{Type: "alert", Payload: msg})
			if err != nil {
				slog.Error("failed to encode alert for websocket", "error", err)
				continue
			}
			h.mu.Lock()
			for c := range h.clients {
				if c.deviceID != "" && c.deviceID != msg.DeviceID {
					continue
				}
				select {
				case c.send <- raw:
				default:
					slog.Warn("websocket client too slow, dropping", "remote", c.remote)
					delete(h.clients, c)
					close(c.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Serve registers conn and blocks until the connection closes. deviceID
// restricts delivery to one device; empty subscribes to all.
func (h *Hub) Serve(conn *websocket.Conn, deviceID string) {
	c := &Client{
		hub:      h,
		conn:     conn,
		send:     make(chan []byte, 16),
		deviceID: deviceID,
		remote:   conn.RemoteAddr().String(),
	}
	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return
	}
	go c.writePump()
	c.readPump()
}

func (h *Hub) NotifyAlerts(ctx context.Context, records []*alert.Record) error {
	select {
	case <-h.done:
		return ErrHubStopped
	default:
	}
	for _, r := range records {
		select {
		case h.broadcast <- NewAlertMessage(r):
		case <-h.done:
			return ErrHubStopped
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
