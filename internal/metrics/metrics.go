package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewOrdersOverdue returns a gauge holding the number of overdue orders found by the last scan.
func NewOrdersOverdue() prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "orders_overdue",
		Help: "Number of late or stale in-progress orders at the last overdue scan",
	})
}

// NewCouriersOverloaded returns a gauge holding the number of couriers above the active-order threshold.
func NewCouriersOverloaded() prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "couriers_overloaded",
		Help: "Number of couriers with more active orders than the overload threshold",
	})
}

// NewCascadedOrdersTotal returns a counter of orders removed together with their courier.
func NewCascadedOrdersTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "courier_cascaded_orders_total",
		Help: "Total number of orders deleted by courier cascade",
	})
}

// NewDispatchEventsTotal returns a counter of processed order events by action.
func NewDispatchEventsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_events_total",
		Help: "Total number of order events handled by the dispatcher",
	}, []string{"action"})
}

// NewHTTPRequestsTotal returns a counter of served requests by method, route and status.
func NewHTTPRequestsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
}

// NewHTTPRequestDuration returns a latency histogram by method, route and status.
func NewHTTPRequestDuration() *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
}

// Set groups the collectors registered by the application.
type Set struct {
	OrdersOverdue       prometheus.Gauge
	CouriersOverloaded  prometheus.Gauge
	CascadedOrdersTotal prometheus.Counter
	DispatchEventsTotal *prometheus.CounterVec
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewSet creates every collector.
func NewSet() *Set {
	return &Set{
		OrdersOverdue:       NewOrdersOverdue(),
		CouriersOverloaded:  NewCouriersOverloaded(),
		CascadedOrdersTotal: NewCascadedOrdersTotal(),
		DispatchEventsTotal: NewDispatchEventsTotal(),
		HTTPRequestsTotal:   NewHTTPRequestsTotal(),
		HTTPRequestDuration: NewHTTPRequestDuration(),
	}
}

// Register registers the collectors in reg.
func (s *Set) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		s.OrdersOverdue,
		s.CouriersOverloaded,
		s.CascadedOrdersTotal,
		s.DispatchEventsTotal,
		s.HTTPRequestsTotal,
		s.HTTPRequestDuration,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
