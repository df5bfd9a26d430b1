package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(
		paymentVerifyRequests,
		paymentVerifyDuration,
		paymentCreditedCents,
	)
}

var (
	// Count of verify calls grouped by result and bounded reason.
	// result: ok|fail
	// reason (fail only): too_short|no_reference|below_minimum|replay|storage|unknown
	paymentVerifyRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_verify_requests_total",
			Help: "Count of M-Pesa message verification attempts by result and reason.",
		},
		[]string{"result", "reason"},
	)

	// Latency of the verify flow grouped by result.
	paymentVerifyDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_verify_duration_seconds",
			Help:    "Duration of the verification flow in seconds.",
			Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"result"},
	)

	paymentCreditedCents = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_credited_cents_total",
			Help: "Total KES cents credited through accepted activations.",
		},
	)
)

func IncPaymentVerify(result, reason string) {
	paymentVerifyRequests.WithLabelValues(result, reason).Inc()
}

func ObservePaymentVerify(result string, d time.Duration) {
	paymentVerifyDuration.WithLabelValues(result).Observe(d.Seconds())
}

func AddPaymentCredited(cents int64) {
	paymentCreditedCents.Add(float64(cents))
}
