// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

// OutboxDispatcher drains due outbox messages.
type OutboxDispatcher interface {
	DispatchDue(ctx context.Context) error
}

// RatingRefresher re-fetches domain metrics for inventory entries whose
// rating data has gone stale.
type RatingRefresher interface {
	RefreshStaleRatings(ctx context.Context) (int, error)
}

// OverdueSweeper marks pending invoices past their due date as overdue.
type OverdueSweeper interface {
	MarkOverdueInvoices(ctx context.Context) (int, error)
}

// Manager owns the single gocron instance behind every background job.
type Manager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

func NewManager(log logger.Interface) (*Manager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		return nil, err
	}

	return &Manager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterOutboxJob polls the outbox table on a short interval. The
// dispatcher itself handles per-message retry, so a failed run only
// delays delivery by one interval.
func (m *Manager) RegisterOutboxJob(dispatcher OutboxDispatcher, pollSeconds int) error {
	if pollSeconds <= 0 {
		pollSeconds = 5
	}
	interval := time.Duration(pollSeconds) * time.Second

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			defer cancel()
			m.dispatchOutbox(ctx, dispatcher)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("outbox"),
		gocron.WithName("outbox-dispatcher"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered outbox job", "interval", interval.String())
	return nil
}

func (m *Manager) dispatchOutbox(ctx context.Context, dispatcher OutboxDispatcher) {
	if err := dispatcher.DispatchDue(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("failed to dispatch outbox batch", "error", err)
	}
}

// RegisterInventoryJobs registers the nightly rating refresh at 04:00 UTC.
func (m *Manager) RegisterInventoryJobs(refresher RatingRefresher) error {
	_, err := m.scheduler.NewJob(
		gocron.CronJob("0 4 * * *", false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			m.refreshRatings(ctx, refresher)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("inventory", "rating-refresh"),
		gocron.WithName("inventory-rating-refresh"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered inventory jobs", "rating_refresh", "04:00 UTC")
	return nil
}

func (m *Manager) refreshRatings(ctx context.Context, refresher RatingRefresher) {
	m.logger.Debugw("rating refresh started")

	startTime := time.Now()
	count, err := refresher.RefreshStaleRatings(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("rating refresh failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if count > 0 {
		m.logger.Infow("domain ratings refreshed",
			"count", count,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("no stale domain ratings",
			"duration", time.Since(startTime),
		)
	}
}

// RegisterInvoiceJobs registers the daily overdue sweep at 02:00 UTC.
func (m *Manager) RegisterInvoiceJobs(sweeper OverdueSweeper) error {
	_, err := m.scheduler.NewJob(
		gocron.CronJob("0 2 * * *", false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			m.sweepOverdue(ctx, sweeper)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("invoice", "overdue-sweep"),
		gocron.WithName("invoice-overdue-sweep"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered invoice jobs", "overdue_sweep", "02:00 UTC")
	return nil
}

func (m *Manager) sweepOverdue(ctx context.Context, sweeper OverdueSweeper) {
	m.logger.Debugw("overdue invoice sweep started")

	count, err := sweeper.MarkOverdueInvoices(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("overdue invoice sweep failed", "error", err)
		return
	}

	if count > 0 {
		m.logger.Infow("invoices marked overdue", "count", count)
	}
}

// Start starts the scheduler and all registered jobs.
func (m *Manager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler and waits for running jobs.
func (m *Manager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler stopped")
	return nil
}

// IsStarted reports whether the scheduler is running.
func (m *Manager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}
