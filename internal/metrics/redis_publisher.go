package metrics

import (
	"time"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	redisPublishTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "redis_publisher",
		Name:      "publish_total",
		Help:      "Count of series updates published to Redis.",
	}, []string{"resolution", "status"})
	redisPublishDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "redis_publisher",
		Name:      "publish_duration_seconds",
		Help:      "Duration of a Redis publish.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"resolution", "status"})
)

// RedisPublisher tracks metrics for Redis pub/sub publishing.
type RedisPublisher struct{}

func NewRedisPublisher() *RedisPublisher {
	return &RedisPublisher{}
}

func (m RedisPublisher) ObservePublish(resolution model.Resolution, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	redisPublishTotal.WithLabelValues(string(resolution), status).Inc()
	redisPublishDuration.WithLabelValues(string(resolution), status).Observe(time.Since(started).Seconds())
}
