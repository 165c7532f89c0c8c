package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	codecOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainprofile7000",
		Subsystem: "codec",
		Name:      "operations_total",
		Help:      "Count of coin codec operations.",
	}, []string{"operation", "coin", "network", "status"})
	codecOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainprofile7000",
		Subsystem: "codec",
		Name:      "operation_duration_seconds",
		Help:      "Duration of coin codec operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "coin", "network", "status"})
)

// Codec tracks metrics for coin codec operations.
type Codec struct {
	coin    string
	network string
}

// NewCodec constructs a metrics collector for codec operations.
func NewCodec(coin, network string) *Codec {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Codec{coin: coin, network: network}
}

// Observe records a single codec operation outcome and duration.
func (m Codec) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	codecOperationsTotal.WithLabelValues(operation, m.coin, m.network, status).Inc()
	codecOperationDuration.WithLabelValues(operation, m.coin, m.network, status).Observe(time.Since(started).Seconds())
}
