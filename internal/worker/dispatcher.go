package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"premium-reconciler/internal/pkg/clock"
	"premium-reconciler/internal/usecase/shared"

	"golang.org/x/time/rate"
)

const (
	maxErrorLength = 500
	defaultLease   = 2 * time.Minute
)

type DispatcherConfig struct {
	PollInterval  time.Duration
	BatchSize     int32
	MaxAttempts   int32
	RatePerSecond float64
	// Lease is how long a taken batch stays invisible to other dispatchers.
	// It must exceed the time to send one batch.
	Lease time.Duration
}

type DispatchReport struct {
	Claimed int
	Sent    int
	Retried int
	Failed  int
}

// Dispatcher drains the notification outbox. A failed delivery only affects
// its own job.
type Dispatcher struct {
	uow     shared.UnitOfWork
	sink    Sink
	cfg     DispatcherConfig
	clock   clock.Clock
	limiter *rate.Limiter

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewDispatcher(uow shared.UnitOfWork, sink Sink, cfg DispatcherConfig, clk clock.Clock) *Dispatcher {
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if cfg.Lease <= 0 {
		cfg.Lease = defaultLease
	}
	return &Dispatcher{
		uow:     uow,
		sink:    sink,
		cfg:     cfg,
		clock:   clk,
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		return
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	d.cancel = cancel
	d.done = make(chan struct{})
	go d.loop(loopCtx, d.done)

	slog.Info("notification dispatcher started", slog.Float64("rate_per_second", d.cfg.RatePerSecond))
}

func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	cancel, done := d.cancel, d.done
	d.cancel, d.done = nil, nil
	d.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		slog.Info("notification dispatcher stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	for {
		report, err := d.DispatchOnce(ctx)
		if err != nil && ctx.Err() == nil {
			slog.Error("notification dispatch failed", slog.String("error", err.Error()))
		}

		// A full batch means more work is probably waiting.
		if err == nil && int32(report.Claimed) >= d.cfg.BatchSize { // #nosec G115 -- batch size is small
			if ctx.Err() != nil {
				return
			}
			continue
		}
		if !sleep(ctx, d.cfg.PollInterval) {
			return
		}
	}
}

// DispatchOnce leases one batch of due jobs and attempts each of them. The
// lease is taken in its own short transaction; each outcome is written in
// another. Jobs left unsent when ctx ends reappear once the lease runs out.
func (d *Dispatcher) DispatchOnce(ctx context.Context) (DispatchReport, error) {
	var jobs []shared.NotificationJob
	now := d.clock.Now()
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		jobs, err = tx.Notifications().LeaseDue(ctx, tx.DB(), now, now.Add(d.cfg.Lease), d.cfg.BatchSize)
		return err
	})
	if err != nil {
		return DispatchReport{}, err
	}

	report := DispatchReport{Claimed: len(jobs)}
	for _, job := range jobs {
		if err := d.limiter.Wait(ctx); err != nil {
			return report, err
		}

		next := d.attempt(ctx, job)
		// A finished send is recorded even when shutdown cancelled ctx.
		err := d.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
			return tx.Notifications().UpdateJob(ctx, tx.DB(), next, d.clock.Now())
		})
		if err != nil {
			return report, err
		}

		switch next.Status {
		case shared.JobStatusSent:
			report.Sent++
		case shared.JobStatusFailed:
			report.Failed++
		default:
			report.Retried++
		}
	}
	return report, nil
}

// attempt sends job and returns it with its next state.
func (d *Dispatcher) attempt(ctx context.Context, job shared.NotificationJob) shared.NotificationJob {
	attrs := []any{
		slog.String("job_id", job.ID.String()),
		slog.String("kind", job.Kind),
		slog.Int64("recipient", job.Recipient.Int64()),
	}

	err := d.sink.Send(ctx, job)
	if err == nil {
		job.Status = shared.JobStatusSent
		job.LastError = nil
		slog.Debug("notification sent", attrs...)
		return job
	}

	job.Attempts++
	msg := truncateError(err)
	job.LastError = &msg
	attrs = append(attrs, slog.Int("attempts", int(job.Attempts)), slog.String("error", msg))

	if job.Attempts >= d.cfg.MaxAttempts {
		job.Status = shared.JobStatusFailed
		slog.Error("notification failed permanently", attrs...)
		return job
	}

	job.Status = shared.JobStatusQueued
	job.RunAt = d.clock.Now().Add(RetryDelay(job.Attempts))
	slog.Warn("notification delivery failed, retry scheduled", append(attrs, slog.Time("next_run", job.RunAt))...)
	return job
}

// RetryDelay grows linearly: 20s after the first failure, 30s after the second.
func RetryDelay(attempts int32) time.Duration {
	return time.Duration(attempts*10+10) * time.Second
}

// truncateError keeps the stored message valid UTF-8.
func truncateError(err error) string {
	r := []rune(err.Error())
	if len(r) > maxErrorLength {
		r = r[:maxErrorLength]
	}
	return string(r)
}
