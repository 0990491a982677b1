package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"logistics-dispatch/internal/http/handlers"
)

const requestTimeout = 5 * time.Second

// Deps lists the handlers mounted by New. Metrics may be nil to leave /metrics unmounted.
type Deps struct {
	Base        *handlers.Handlers
	Orders      *handlers.OrderHandler
	Couriers    *handlers.CourierHandler
	Reports     *handlers.ReportHandler
	Metrics     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(d.Middlewares...)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	r.Route("/orders", func(r chi.Router) {
		o := d.Orders
		r.Post("/", o.Create)
		r.Get("/", o.List)
		r.Get("/overdue", o.Overdue)
		r.Get("/next-id", o.NextID)
		r.Get("/stats/status", o.StatsByStatus)
		r.Get("/stats/city", o.StatsByCity)
		r.Get("/stats/average-delay", o.AverageDelay)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", o.GetByID)
			r.Put("/", o.Update)
			r.Delete("/", o.Delete)
			r.Post("/assign", o.Assign)
			r.Post("/status", o.ChangeStatus)
		})
	})

	r.Route("/couriers", func(r chi.Router) {
		c := d.Couriers
		r.Post("/", c.Create)
		r.Get("/", c.List)
		r.Get("/available", c.Available)
		r.Get("/overloaded", c.Overloaded)
		r.Get("/best", c.Best)
		r.Get("/next-id", c.NextID)
		r.Get("/stats/zone", c.StatsByZone)
		r.Get("/stats/availability", c.StatsByAvailability)
		r.Get("/stats/workload", c.StatsByWorkload)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", c.GetByID)
			r.Put("/", c.Update)
			r.Delete("/", c.Delete)
			r.Put("/availability", c.SetAvailability)
			r.Get("/orders/count", c.OrderCount)
		})
	})

	r.Get("/reports/summary", d.Reports.Summary)

	r.NotFound(d.Base.NotFound)
	r.MethodNotAllowed(d.Base.MethodNotAllowed)

	return r
}
