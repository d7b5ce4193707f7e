package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the checkout handler
	CheckoutDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_duration_seconds",
		Help:    "Latency of checkout requests",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of orders created at checkout
	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of orders created",
	})

	// Admin status transitions, labeled by resulting status
	OrderStatusUpdates = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_status_updates_total",
		Help: "Total number of order status updates",
	}, []string{"status"})
)

func Init() {
	prometheus.MustRegister(
		CheckoutDuration,
		OrdersCreated,
		OrderStatusUpdates,
	)
}
