package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	sendBuffer   = 16
	writeTimeout = 10 * time.Second
	pongTimeout  = 60 * time.Second
	pingPeriod   = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

type streamClient struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks WebSocket stream clients and broadcasts series updates to all of them.
type Hub struct {
	logger  *zap.Logger
	metrics Metrics

	mu      sync.RWMutex
	clients map[*streamClient]struct{}
}

func NewHub(metrics Metrics, logger *zap.Logger) *Hub {
	return &Hub{
		logger:  logger.Named("stream_hub"),
		metrics: metrics,
		clients: make(map[*streamClient]struct{}),
	}
}

// OnUpdate broadcasts the update. A client whose buffer is full misses it.
func (h *Hub) OnUpdate(_ context.Context, update model.SeriesUpdate) error {
	payload, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("marshal %s update: %w", update.Resolution, err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			h.logger.Debug("stream client too slow, update dropped",
				zap.String("remote_addr", c.conn.RemoteAddr().String()))
		}
	}
	return nil
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) add(conn *websocket.Conn) *streamClient {
	c := &streamClient{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	h.metrics.SetWebsocketClients(n)
	return c
}

func (h *Hub) remove(c *streamClient) {
	h.mu.Lock()
	delete(h.clients, c)
	n := len(h.clients)
	h.mu.Unlock()

	h.metrics.SetWebsocketClients(n)
}

// writeLoop drains the client buffer and keeps the connection alive with pings.
func (h *Hub) writeLoop(ctx context.Context, c *streamClient) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.logger.Debug("stream write failed", zap.Error(err))
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				h.logger.Debug("stream ping failed", zap.Error(err))
				return
			}
		}
	}
}
