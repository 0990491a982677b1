package jobs

import (
	"logistics-dispatch/internal/logx"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs of the application.
type JobManager struct {
	jobs    []Job
	started []Job
	logger  logx.Logger
}

// NewJobManager creates a manager for jobs.
func NewJobManager(logger logx.Logger, jobs ...Job) *JobManager {
	logger = logx.OrNop(logger)
	return &JobManager{jobs: jobs, logger: logger}
}

// StartAll starts every job. On failure the already started jobs are stopped.
func (jm *JobManager) StartAll() error {
	for _, j := range jm.jobs {
		if err := j.Start(); err != nil {
			jm.StopAll()
			return err
		}
		jm.started = append(jm.started, j)
	}
	jm.logger.Info("jobs started", logx.Int("count", len(jm.started)))
	return nil
}

// StopAll stops started jobs in reverse order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
