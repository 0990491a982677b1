package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"logistics-dispatch/internal/config"
	"logistics-dispatch/internal/jobs"
	"logistics-dispatch/internal/logx"
)

// Runner runs the HTTP service.
type Runner struct {
	runFn func(*dig.Container) error
	exit  func(int)
}

// NewRunner returns a Runner for the HTTP service.
func NewRunner() *Runner {
	return &Runner{runFn: run, exit: os.Exit}
}

// MustRun starts the HTTP server using the provided DI container and exits the process on failure.
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := loggerFrom(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		_ = logger.Sync()
		if r.exit != nil {
			r.exit(1)
		}
	}
}

// MustRun starts the HTTP service with a default Runner.
func MustRun(container *dig.Container) {
	NewRunner().MustRun(container)
}

func loggerFrom(container *dig.Container) logx.Logger {
	var logger logx.Logger = logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })
	return logger
}

type runIn struct {
	dig.In

	Ctx    context.Context
	Server *http.Server
	Pool   *pgxpool.Pool
	Logger logx.Logger
	Config *config.Config   `optional:"true"`
	Jobs   *jobs.JobManager `optional:"true"`
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

func appRun(in runIn) error {
	if in.Jobs != nil {
		if err := in.Jobs.StartAll(); err != nil {
			closeResources(in.Pool, in.Server, in.Logger)
			return fmt.Errorf("start jobs: %w", err)
		}
	}

	serveErr := startServer(in.Server, in.Logger)

	var err error
	select {
	case <-in.Ctx.Done():
		in.Logger.Info("shutting down logistics-dispatch...")
		err = in.Ctx.Err()
	case err = <-serveErr:
		in.Logger.Error("http server stopped", logx.Err(err))
	}

	timeout := 15 * time.Second
	if in.Config != nil && in.Config.Service.ShutdownTimeout > 0 {
		timeout = in.Config.Service.ShutdownTimeout
	}
	gracefulShutdown(in.Server, in.Logger, timeout)
	if in.Jobs != nil {
		in.Jobs.StopAll()
	}
	closeResources(in.Pool, in.Server, in.Logger)
	return err
}

func startServer(server *http.Server, logger logx.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("logistics-dispatch listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen: %w", err)
		}
		close(errCh)
	}()
	return errCh
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Warn("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(pool *pgxpool.Pool, server *http.Server, logger logx.Logger) {
	if err := server.Close(); err != nil {
		logger.Warn("server close error", logx.Err(err))
	}
	if pool != nil {
		pool.Close()
	}
	_ = logger.Sync()
}
