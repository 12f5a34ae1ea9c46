package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	subgraphRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "subgraph_client",
		Name:      "requests_total",
		Help:      "Count of subgraph GraphQL requests.",
	}, []string{"operation", "status"})
	subgraphRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "subgraph_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of subgraph GraphQL requests.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2, 5, 10},
	}, []string{"operation", "status"})
)

// SubgraphClient tracks metrics for subgraph requests.
type SubgraphClient struct{}

func NewSubgraphClient() *SubgraphClient {
	return &SubgraphClient{}
}

// Observe records duration and status of a subgraph request.
func (m SubgraphClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	subgraphRequestsTotal.WithLabelValues(operation, status).Inc()
	subgraphRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
