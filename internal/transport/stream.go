package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// stream upgrades to a WebSocket, pushes the current series and then every update. Clients switch
// the active resolution by sending {"resolution":"day"}.
func (s *Server) stream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	c := s.hub.add(conn)
	defer s.hub.remove(c)

	s.logger.Debug("stream client connected", zap.String("remote_addr", r.RemoteAddr))

	if update, err := s.charts.Snapshot(s.charts.Resolution()); err == nil {
		if payload, err := json.Marshal(update); err == nil {
			c.send <- payload
		}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.hub.writeLoop(ctx, c)
		cancel()
		_ = conn.Close()
	}()

	s.readLoop(ctx, c)
	cancel()
	<-done

	s.logger.Debug("stream client disconnected", zap.String("remote_addr", r.RemoteAddr))
}

func (s *Server) readLoop(ctx context.Context, c *streamClient) {
	_ = c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	for ctx.Err() == nil {
		var req resolutionRequest
		if err := c.conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				s.logger.Debug("stream read failed", zap.Error(err))
			}
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(pongTimeout))

		if err := s.charts.SetResolution(ctx, req.Resolution); err != nil {
			payload, _ := json.Marshal(errorResponse{Success: false, Error: err.Error()})
			select {
			case c.send <- payload:
			default:
			}
		}
	}
}
