package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http_server",
		Name:      "requests_total",
		Help:      "Count of HTTP requests by route and status code.",
	}, []string{"route", "code"})
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http_server",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
	websocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "http_server",
		Name:      "websocket_clients",
		Help:      "Number of connected WebSocket clients.",
	})
)

// HTTPServer tracks metrics for the HTTP transport.
type HTTPServer struct{}

func NewHTTPServer() *HTTPServer {
	return &HTTPServer{}
}

func (m HTTPServer) ObserveRequest(route string, code int, started time.Time) {
	if route == "" {
		route = "unknown"
	}
	httpRequestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
	httpRequestDuration.WithLabelValues(route).Observe(time.Since(started).Seconds())
}

// SetWebsocketClients records the number of connected stream clients.
func (m HTTPServer) SetWebsocketClients(n int) {
	websocketClients.Set(float64(n))
}
