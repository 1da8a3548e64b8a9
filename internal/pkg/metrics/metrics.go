package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "estate_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	bookingAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estate_booking_attempts_total",
			Help: "Plot booking attempts by outcome",
		},
		[]string{"outcome"},
	)
	fanoutFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estate_fanout_failures_total",
			Help: "Post-booking side effects that failed, by kind",
		},
		[]string{"kind"},
	)
	txRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estate_tx_retries_total",
			Help: "Transactions re-run after a write conflict, by store",
		},
		[]string{"store"},
	)
)

const (
	FanoutClientNotification  = "client_notification"
	FanoutManagerNotification = "manager_notification"
	FanoutManagerTask         = "manager_task"
	FanoutManagerLookup       = "manager_lookup"
)

func ObserveHTTPRequest(method, path string, status int, d time.Duration) {
	if path == "" {
		path = "unmatched"
	}
	httpRequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(d.Seconds())
}

// RecordBookingAttempt counts a booking call; outcome is "success" or an error code.
func RecordBookingAttempt(outcome string) {
	bookingAttempts.WithLabelValues(outcome).Inc()
}

func RecordFanoutFailure(kind string) {
	fanoutFailures.WithLabelValues(kind).Inc()
}

func RecordTxRetry(store string) {
	txRetries.WithLabelValues(store).Inc()
}
