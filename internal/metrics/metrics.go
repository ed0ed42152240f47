package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	InquiriesReceived    prometheus.Counter
	RepliesSent          prometheus.Counter
	DispatchCycles       prometheus.Counter
	DeliverySuccesses    prometheus.Counter
	DeliveryFailures     prometheus.Counter
	NotificationsSkipped prometheus.Counter
	PendingNotifications prometheus.Gauge
	DispatchDuration     prometheus.Histogram
}

// NewMetrics creates new Prometheus metrics
func NewMetrics() *Metrics {
	return &Metrics{
		InquiriesReceived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aitech_backend_inquiries_received_total",
			Help: "Total number of contact form submissions received",
		}),
		RepliesSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aitech_backend_replies_sent_total",
			Help: "Total number of admin replies submitted",
		}),
		DispatchCycles: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aitech_backend_dispatch_cycles_total",
			Help: "Total number of mail dispatcher poll cycles",
		}),
		DeliverySuccesses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aitech_backend_delivery_successes_total",
			Help: "Total number of reply emails delivered",
		}),
		DeliveryFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aitech_backend_delivery_failures_total",
			Help: "Total number of reply emails that failed to send",
		}),
		NotificationsSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aitech_backend_notifications_skipped_total",
			Help: "Total number of notifications skipped because of their type",
		}),
		PendingNotifications: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "aitech_backend_pending_notifications",
			Help: "Number of notifications currently waiting for dispatch",
		}),
		DispatchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "aitech_backend_dispatch_duration_seconds",
			Help:    "Time spent per mail dispatcher cycle",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
