package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blockbookRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txledger7000",
		Subsystem: "blockbook_client",
		Name:      "operations_total",
		Help:      "Count of Blockbook RPC operations.",
	}, []string{"operation", "status"})
	blockbookRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txledger7000",
		Subsystem: "blockbook_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of Blockbook RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// BlockbookClient tracks metrics for RPC calls to a Blockbook endpoint.
type BlockbookClient struct{}

// NewBlockbookClient constructs a metrics collector for Blockbook calls.
func NewBlockbookClient() *BlockbookClient {
	return &BlockbookClient{}
}

// Observe records a single RPC call outcome and duration.
func (m BlockbookClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	blockbookRequestsTotal.WithLabelValues(operation, status).Inc()
	blockbookRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
