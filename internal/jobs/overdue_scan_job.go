package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"logistics-dispatch/internal/domain"
	"logistics-dispatch/internal/logx"
)

// DefaultOverdueSchedule runs the scan once a minute.
const DefaultOverdueSchedule = "@every 1m"

type overdueSource interface {
	Overdue(ctx context.Context) ([]domain.Order, error)
}

type overloadSource interface {
	ListOverloaded(ctx context.Context) ([]domain.CourierLoad, error)
}

// OverdueScanJob periodically counts overdue orders and overloaded couriers
// and exports both counts as gauges.
type OverdueScanJob struct {
	orders     overdueSource
	couriers   overloadSource
	overdue    prometheus.Gauge
	overloaded prometheus.Gauge
	schedule   string
	timeout    time.Duration
	cron       *cron.Cron
	logger     logx.Logger
}

// NewOverdueScanJob creates the job. An empty schedule means DefaultOverdueSchedule.
func NewOverdueScanJob(
	orders overdueSource,
	couriers overloadSource,
	overdue, overloaded prometheus.Gauge,
	schedule string,
	timeout time.Duration,
	logger logx.Logger,
) *OverdueScanJob {
	if schedule == "" {
		schedule = DefaultOverdueSchedule
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	logger = logx.OrNop(logger)
	return &OverdueScanJob{
		orders:     orders,
		couriers:   couriers,
		overdue:    overdue,
		overloaded: overloaded,
		schedule:   schedule,
		timeout:    timeout,
		cron:       cron.New(),
		logger:     logger.With(logx.String("component", "overdue_scan_job")),
	}
}

// Start registers the scan on its schedule and starts the scheduler.
func (j *OverdueScanJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		if err := j.Scan(ctx); err != nil {
			j.logger.Error("overdue scan failed", logx.Err(err))
		}
	}); err != nil {
		return fmt.Errorf("schedule overdue scan %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("overdue scan job started", logx.String("schedule", j.schedule))
	return nil
}

// Stop stops the scheduler and waits for a running scan to finish.
func (j *OverdueScanJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("overdue scan job stopped")
}

// Scan runs one pass and updates the gauges.
func (j *OverdueScanJob) Scan(ctx context.Context) error {
	late, err := j.orders.Overdue(ctx)
	if err != nil {
		return fmt.Errorf("overdue orders: %w", err)
	}
	overloaded, err := j.couriers.ListOverloaded(ctx)
	if err != nil {
		return fmt.Errorf("overloaded couriers: %w", err)
	}

	j.overdue.Set(float64(len(late)))
	j.overloaded.Set(float64(len(overloaded)))

	if len(late) > 0 || len(overloaded) > 0 {
		j.logger.Warn("overdue scan",
			logx.Int("overdue_orders", len(late)),
			logx.Int("overloaded_couriers", len(overloaded)),
		)
	} else {
		j.logger.Debug("overdue scan: nothing to report")
	}
	return nil
}
