package dispatch

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"logistics-dispatch/internal/apperr"
	"logistics-dispatch/internal/domain"
	"logistics-dispatch/internal/logx"
)

// Processor turns order events into order and courier service calls.
type Processor struct {
	orders   OrderPort
	couriers CourierPort
	logger   logx.Logger
	events   *prometheus.CounterVec
	factory  *actionFactory
	now      func() time.Time
}

// NewProcessor creates a Processor. events may be nil.
func NewProcessor(orders OrderPort, couriers CourierPort, logger logx.Logger, events *prometheus.CounterVec) *Processor {
	logger = logx.OrNop(logger)
	p := &Processor{
		orders:   orders,
		couriers: couriers,
		logger:   logger,
		events:   events,
		now:      func() time.Time { return time.Now().UTC() },
	}
	p.factory = newActionFactory(
		p.onCreated,
		p.changeStatus(domain.StatusDelivered),
		p.changeStatus(domain.StatusCancelled),
		p.changeStatus(domain.StatusLate),
	)
	return p
}

// Handle processes a single Event. Unknown statuses are ignored.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	fn, ok := p.factory.get(e.Status)
	if !ok {
		p.count("ignored")
		p.logger.Debug("order event ignored",
			logx.Int64("order_id", e.OrderID),
			logx.String("status", e.Status),
		)
		return nil
	}
	if err := fn(ctx, e); err != nil {
		return err
	}
	p.count(normalizeStatus(e.Status))
	return nil
}

func (p *Processor) count(action string) {
	if p.events != nil {
		p.events.WithLabelValues(action).Inc()
	}
}

// onCreated stores a pending order and assigns the best courier of the city zone.
// Without an available courier the order stays pending. Once the order is stored
// the event is acknowledged; assignment failures are only logged.
func (p *Processor) onCreated(ctx context.Context, e Event) error {
	date := e.Date
	if date.IsZero() {
		date = p.now()
	}
	o := domain.NewOrder(date, e.City, e.ClientID)

	id, err := p.orders.Create(ctx, &o)
	if errors.Is(err, apperr.ErrInvalid) {
		p.logger.Warn("order event rejected",
			logx.String("status", e.Status),
			logx.String("city", e.City),
			logx.Int64("client_id", e.ClientID),
		)
		return nil
	}
	if err != nil {
		return err
	}

	c, err := p.couriers.Best(ctx, e.City)
	if errors.Is(err, apperr.ErrNotFound) {
		p.logger.Info("no courier available",
			logx.Int64("order_id", id),
			logx.String("zone", e.City),
		)
		return nil
	}
	if err == nil {
		err = p.orders.AssignCourier(ctx, id, c.ID)
	}
	if err != nil {
		p.logger.Warn("order stored without courier",
			logx.Int64("order_id", id),
			logx.String("zone", e.City),
			logx.Err(err),
		)
	}
	return nil
}

func (p *Processor) changeStatus(status domain.OrderStatus) actionFunc {
	return func(ctx context.Context, e Event) error {
		err := p.orders.ChangeStatus(ctx, e.OrderID, status)
		if errors.Is(err, apperr.ErrNotFound) {
			return nil
		}
		return err
	}
}
