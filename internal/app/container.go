package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/dig"

	"logistics-dispatch/internal/config"
	"logistics-dispatch/internal/http/handlers"
	"logistics-dispatch/internal/http/middleware"
	"logistics-dispatch/internal/http/router"
	"logistics-dispatch/internal/jobs"
	"logistics-dispatch/internal/logx"
	"logistics-dispatch/internal/metrics"
	"logistics-dispatch/internal/repository"
	"logistics-dispatch/internal/service/courier"
	"logistics-dispatch/internal/service/dispatch"
	"logistics-dispatch/internal/service/order"
	"logistics-dispatch/internal/service/report"
	"logistics-dispatch/internal/transport/kafka"
)

const (
	dbConnectRetries = 10
	dbConnectDelay   = time.Second
)

type dbConnectFunc func(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	loadConfig func() (*config.Config, error)
	dbConnect  dbConnectFunc
	migrate    func(dsn string) error
	logFatalf  func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		loadConfig: config.Load,
		dbConnect:  connectDbWithRetry,
		migrate:    repository.Migrate,
		logFatalf:  log.Fatalf,
	}
}

// WithConfig replaces environment and flag loading with a fixed configuration
func (b *ContainerBuilder) WithConfig(cfg *config.Config) *ContainerBuilder {
	if cfg != nil {
		b.loadConfig = func() (*config.Config, error) { return cfg, nil }
	}
	return b
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithMigrate sets the schema migration function
func (b *ContainerBuilder) WithMigrate(fn func(dsn string) error) *ContainerBuilder {
	if fn != nil {
		b.migrate = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds the HTTP service container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds the Kafka worker container.
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container, err := b.base(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerJobs(container); err != nil {
		return nil, fmt.Errorf("jobs: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container, err := b.base(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerKafka(container); err != nil {
		return nil, fmt.Errorf("kafka: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) base(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect, b.migrate); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the HTTP service container with default dependencies.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the worker container with default dependencies.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context, loadConfig func() (*config.Config, error)) error {
	return provideAll(container,
		func() context.Context { return ctx },
		loadConfig,
		NewLogger,
		newRegistry,
		newMetrics,
	)
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func newMetrics(reg *prometheus.Registry) (*metrics.Set, error) {
	set := metrics.NewSet()
	if err := set.Register(reg); err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	return set, nil
}

func registerDb(container *dig.Container, dbConnect dbConnectFunc, migrate func(string) error) error {
	providerDB := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		pool, err := dbConnect(ctx, logger, cfg.DB.DSN(), dbConnectRetries, dbConnectDelay)
		if err != nil {
			return nil, err
		}
		if err := migrate(cfg.DB.DSN()); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("database schema is up to date")
		return pool, nil
	}
	return provideAll(container, providerDB)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewOrderRepo,
		repository.NewCourierRepo,
		func(repo *repository.OrderRepo, cfg *config.Config, logger logx.Logger) *order.Service {
			return order.NewService(repo, cfg.Service.OperationTimeout, logger.With(logx.String("service", "order")))
		},
		func(repo *repository.CourierRepo, cfg *config.Config, logger logx.Logger, m *metrics.Set) *courier.Service {
			return courier.NewService(repo, cfg.Service.OperationTimeout, logger.With(logx.String("service", "courier")), m.CascadedOrdersTotal)
		},
		func(orders *order.Service, couriers *courier.Service) *report.Service {
			return report.NewService(orders, couriers)
		},
		func(orders *order.Service, couriers *courier.Service, logger logx.Logger, m *metrics.Set) *dispatch.Processor {
			return dispatch.NewProcessor(orders, couriers, logger.With(logx.String("service", "dispatch")), m.DispatchEventsTotal)
		},
	)
}

func registerJobs(container *dig.Container) error {
	return provideAll(container,
		func(orders *order.Service, couriers *courier.Service, cfg *config.Config, logger logx.Logger, m *metrics.Set) *jobs.OverdueScanJob {
			return jobs.NewOverdueScanJob(
				orders, couriers,
				m.OrdersOverdue, m.CouriersOverloaded,
				cfg.Jobs.OverdueScanSchedule,
				cfg.Service.OperationTimeout,
				logger,
			)
		},
		func(logger logx.Logger, scan *jobs.OverdueScanJob) *jobs.JobManager {
			return jobs.NewJobManager(logger, scan)
		},
	)
}

func registerKafka(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config, logger logx.Logger, p *dispatch.Processor) (*kafka.Consumer, error) {
			return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, p.Handle)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	routerProvider := func(
		base *handlers.Handlers,
		orders *handlers.OrderHandler,
		couriers *handlers.CourierHandler,
		reports *handlers.ReportHandler,
		reg *prometheus.Registry,
		m *metrics.Set,
		logger logx.Logger,
	) http.Handler {
		return router.New(router.Deps{
			Base:     base,
			Orders:   orders,
			Couriers: couriers,
			Reports:  reports,
			Metrics:  promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
			Middlewares: []func(http.Handler) http.Handler{
				middleware.Observability(logger, m.HTTPRequestsTotal, m.HTTPRequestDuration),
			},
		})
	}
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewOrderUsecase,
		handlers.NewOrderHandler,
		handlers.NewCourierUsecase,
		handlers.NewCourierHandler,
		handlers.NewReportUsecase,
		handlers.NewReportHandler,
		routerProvider,
		serverProvider,
	)
}
