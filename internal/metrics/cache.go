package metrics

import (
	"errors"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheMergeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "merge_total",
		Help:      "Count of series merges by outcome.",
	}, []string{"resolution", "status"})

	cachePoints = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "points",
		Help:      "Number of deltas cached per resolution.",
	}, []string{"resolution"})

	cacheCursor = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "cursor_block",
		Help:      "Highest merged block per resolution.",
	}, []string{"resolution"})
)

// Cache tracks the state of the multi period cache.
type Cache struct{}

func NewCache() *Cache {
	return &Cache{}
}

// ObserveMerge records a merge outcome. Gauges only move on a successful merge.
func (m Cache) ObserveMerge(resolution model.Resolution, err error, points int, cursor uint64) {
	status := "success"
	switch {
	case errors.Is(err, model.ErrStaleNoOp):
		status = "stale"
	case err != nil:
		status = "error"
	}
	cacheMergeTotal.WithLabelValues(string(resolution), status).Inc()
	if err != nil {
		return
	}
	cachePoints.WithLabelValues(string(resolution)).Set(float64(points))
	cacheCursor.WithLabelValues(string(resolution)).Set(float64(cursor))
}
