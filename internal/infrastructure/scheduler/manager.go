// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"haitch/internal/shared/logger"
)

// BatchJob defines the interface for a scheduled batch processing job.
// Each Execute call processes a batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SchedulerManager manages all scheduled jobs using gocron v2.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	// Track whether the scheduler has been started
	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterKnowledgeUploadJobs registers the knowledge-base upload job.
// It scans for pending answered questions and pushes them through the
// upload pipeline on each tick. The job runs in singleton mode so a slow
// batch is never overlapped by the next tick.
func (m *SchedulerManager) RegisterKnowledgeUploadJobs(
	questionUploadJob BatchJob,
	interval time.Duration,
) error {
	if interval <= 0 {
		interval = time.Minute
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			// The upload pipeline polls the remote parser without a
			// deadline, so the batch context is only cancellable on
			// shutdown rather than bounded by a timeout.
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			m.processKnowledgeUploads(ctx, questionUploadJob)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("knowledge", "question-upload"),
		gocron.WithName("knowledge-question-upload"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered knowledge upload jobs", "interval", interval.String())
	return nil
}

// RegisterTicketUploadJobs registers the resolved-ticket upload job. Tickets
// whose resolution has not yet been pushed to the knowledge base are uploaded
// on each tick, same singleton semantics as the question job.
func (m *SchedulerManager) RegisterTicketUploadJobs(
	ticketUploadJob BatchJob,
	interval time.Duration,
) error {
	if interval <= 0 {
		interval = time.Minute
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			m.processKnowledgeUploads(ctx, ticketUploadJob)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("knowledge", "ticket-upload"),
		gocron.WithName("knowledge-ticket-upload"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered ticket upload jobs", "interval", interval.String())
	return nil
}

func (m *SchedulerManager) processKnowledgeUploads(ctx context.Context, job BatchJob) {
	m.logger.Debugw("processing knowledge uploads started")

	startTime := time.Now().UTC()

	uploadedCount, err := job.Execute(ctx)
	if err != nil {
		// Don't log error if context was cancelled (graceful shutdown)
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("failed to process knowledge uploads",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if uploadedCount > 0 {
		m.logger.Infow("knowledge uploads processed",
			"count", uploadedCount,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("no pending knowledge uploads",
			"duration", time.Since(startTime),
		)
	}
}

// Start starts the scheduler and all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler.
// It waits for all running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// Jobs returns all registered jobs for inspection.
func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
