package metrics

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	streamerTickTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "streamer",
		Name:      "tick_total",
		Help:      "Count of refresh ticks by outcome.",
	}, []string{"resolution", "status"})

	streamerTickDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "streamer",
		Name:      "tick_duration_seconds",
		Help:      "Duration of a refresh tick.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"resolution", "status"})

	streamerRenderTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "streamer",
		Name:      "render_total",
		Help:      "Count of series updates pushed to presenters.",
	}, []string{"resolution", "status"})
)

// Streamer tracks metrics for the streaming chart adapter.
type Streamer struct{}

func NewStreamer() *Streamer {
	return &Streamer{}
}

// ObserveTick records a tick outcome and duration. Stale merges count as their own status.
func (m Streamer) ObserveTick(resolution model.Resolution, err error, started time.Time) {
	status := "success"
	switch {
	case errors.Is(err, model.ErrStaleNoOp):
		status = "stale"
	case err != nil:
		status = "error"
	}
	streamerTickTotal.WithLabelValues(string(resolution), status).Inc()
	streamerTickDuration.WithLabelValues(string(resolution), status).
		Observe(time.Since(started).Seconds())
}

// ObserveRender records a presenter push.
func (m Streamer) ObserveRender(resolution model.Resolution, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	streamerRenderTotal.WithLabelValues(string(resolution), status).Inc()
}
