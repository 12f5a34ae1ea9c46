// Package transport exposes the burn chart over HTTP and WebSocket.
package transport

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const (
	summaryMaxAge      = 20 * time.Second
	recentBlocksMaxAge = 10 * time.Second
)

// Server routes HTTP requests to the chart adapter, the summary service and the stream hub.
type Server struct {
	logger    *zap.Logger
	registry  *model.Registry
	charts    Charts
	summaries Summaries
	hub       *Hub
	metrics   Metrics
	now       func() time.Time
}

func NewServer(
	registry *model.Registry,
	charts Charts,
	summaries Summaries,
	hub *Hub,
	metrics Metrics,
	logger *zap.Logger,
) (*Server, error) {
	if registry == nil {
		return nil, errors.New("resolution registry is required")
	}
	if charts == nil {
		return nil, errors.New("charts is required")
	}
	if summaries == nil {
		return nil, errors.New("summary service is required")
	}
	if hub == nil {
		return nil, errors.New("stream hub is required")
	}
	if metrics == nil {
		return nil, errors.New("http metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &Server{
		logger:    logger.Named("http"),
		registry:  registry,
		charts:    charts,
		summaries: summaries,
		hub:       hub,
		metrics:   metrics,
		now:       time.Now,
	}, nil
}

// Handler returns the routed, CORS-enabled handler.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.instrument)

	r.HandleFunc("/health", s.health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/burned", s.burned).Methods(http.MethodGet)
	api.HandleFunc("/recent-blocks", s.recentBlocks).Methods(http.MethodGet)
	api.HandleFunc("/recently-burned/{period}", s.recentlyBurned).Methods(http.MethodGet)
	api.HandleFunc("/resolution", s.resolution).Methods(http.MethodGet)
	api.HandleFunc("/resolution", s.setResolution).Methods(http.MethodPut)
	api.HandleFunc("/stream", s.stream).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization"},
	})
	return c.Handler(r)
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)

		var route string
		if cr := mux.CurrentRoute(r); cr != nil {
			route, _ = cr.GetPathTemplate()
		}
		s.metrics.ObserveRequest(route, rec.code, started)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// Hijack lets the WebSocket upgrader take over the connection.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer %T does not support hijacking", r.ResponseWriter)
	}
	r.code = http.StatusSwitchingProtocols
	return h.Hijack()
}
