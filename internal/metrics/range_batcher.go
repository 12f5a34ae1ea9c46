package metrics

import (
	"time"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rangeBatcherFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "range_batcher",
		Name:      "fetch_total",
		Help:      "Count of batched reading fetches.",
	}, []string{"resolution", "status"})

	rangeBatcherFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "range_batcher",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of a batched reading fetch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"resolution", "status"})

	rangeBatcherReadings = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "range_batcher",
		Name:      "readings",
		Help:      "Number of cumulative readings returned per fetch.",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 31, 50},
	}, []string{"resolution"})
)

// RangeBatcher tracks metrics for cumulative reading fetches.
type RangeBatcher struct{}

func NewRangeBatcher() *RangeBatcher {
	return &RangeBatcher{}
}

// ObserveFetch records a fetch outcome, its duration and the readings it produced.
func (m RangeBatcher) ObserveFetch(resolution model.Resolution, err error, readings int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	rangeBatcherFetchTotal.WithLabelValues(string(resolution), status).Inc()
	rangeBatcherFetchDuration.WithLabelValues(string(resolution), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		rangeBatcherReadings.WithLabelValues(string(resolution)).Observe(float64(readings))
	}
}
