package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(subscriptionsActivated, subscriptionsLapsed)
}

var (
	subscriptionsActivated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "subscriptions_activated_total",
			Help: "Subscription windows granted through payment verification.",
		},
	)

	subscriptionsLapsed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "subscriptions_lapsed_total",
			Help: "Subscriptions observed newly lapsed by the expiry sweep.",
		},
	)
)

func IncSubscriptionsActivated()  { subscriptionsActivated.Inc() }
func AddSubscriptionsLapsed(n int) { subscriptionsLapsed.Add(float64(n)) }
