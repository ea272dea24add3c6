package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	wagersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_wagers_total",
			Help: "Wager placements by result",
		},
		[]string{"result"},
	)

	settlementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_settlements_total",
			Help: "Settlement attempts by outcome and result",
		},
		[]string{"outcome", "result"},
	)

	pointsPaidTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_points_paid_total",
			Help: "Points credited to bettors by settlements",
		},
	)

	settleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_settle_duration_ms",
			Help:    "Settlement transaction duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
		[]string{"result"},
	)
)

// RecordWager counts one placement. result is "success" or an error kind.
func RecordWager(result string) {
	wagersTotal.WithLabelValues(result).Inc()
}

// RecordSettlement counts one settlement attempt and, on success, the points
// it paid out.
func RecordSettlement(outcome string, result string, paid int64, started time.Time) {
	settlementsTotal.WithLabelValues(outcome, result).Inc()
	if result == "success" && paid > 0 {
		pointsPaidTotal.Add(float64(paid))
	}
	settleDuration.WithLabelValues(result).Observe(float64(time.Since(started).Milliseconds()))
}
