package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"premium-reconciler/internal/domain/order"
	"premium-reconciler/internal/domain/payment"
	"premium-reconciler/internal/infra/ledger"
	"premium-reconciler/internal/pkg/clock"
	"premium-reconciler/internal/pkg/errs"
	"premium-reconciler/internal/usecase/commands"
)

const stackLines = 12

type ReconcilerConfig struct {
	StartupDelay time.Duration
	Interval     time.Duration
	// IdleInterval replaces Interval after a cycle that had nothing to match.
	IdleInterval time.Duration
	FetchLimit   int
}

// CycleReport summarizes one reconciliation pass.
type CycleReport struct {
	Expired   int64
	Pending   int
	Fetched   int
	Matched   int
	Confirmed int
	// Idle is set when the cycle ended early: no pending orders or an empty
	// ledger page.
	Idle bool
}

type Reconciler struct {
	orders   commands.OrderCommands
	payments commands.PaymentCommands
	ledger   LedgerSource
	settings payment.Settings
	cfg      ReconcilerConfig
	clock    clock.Clock

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewReconciler(
	orders commands.OrderCommands,
	payments commands.PaymentCommands,
	source LedgerSource,
	settings payment.Settings,
	cfg ReconcilerConfig,
	clk clock.Clock,
) *Reconciler {
	return &Reconciler{
		orders:   orders,
		payments: payments,
		ledger:   source,
		settings: settings,
		cfg:      cfg,
		clock:    clk,
	}
}

// Start launches the loop and returns immediately. Calling Start on a
// running reconciler is a no-op.
func (r *Reconciler) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r.cancel = cancel
	r.done = make(chan struct{})
	go r.loop(loopCtx, r.done)

	slog.Info("reconciler started",
		slog.String("destination", r.settings.Destination),
		slog.Duration("interval", r.cfg.Interval),
	)
}

// Stop signals the loop and waits for the in-flight cycle to finish or ctx
// to expire.
func (r *Reconciler) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		slog.Info("reconciler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Reconciler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	if !sleep(ctx, r.cfg.StartupDelay) {
		return
	}
	for {
		report := r.safeCycle(ctx)

		wait := r.cfg.Interval
		if report.Idle {
			wait = r.cfg.IdleInterval
		}
		if !sleep(ctx, wait) {
			return
		}
	}
}

// safeCycle never lets a cycle failure, panics included, escape the loop.
func (r *Reconciler) safeCycle(ctx context.Context) (report CycleReport) {
	defer func() {
		if v := recover(); v != nil {
			err := errs.WithStack(fmt.Errorf("reconcile cycle panic: %v", v))
			slog.Error("reconcile cycle panicked",
				slog.Any("panic", v),
				slog.Any("stack", errs.ExtractStackLines(err, stackLines)),
			)
			report = CycleReport{}
		}
	}()

	report, err := r.RunCycle(ctx)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
	case errs.Is(err, ledger.ErrTransport), errs.Is(err, ledger.ErrDecode):
		slog.Warn("ledger fetch failed", slog.String("error", err.Error()))
		report.Idle = true
	default:
		slog.Error("reconcile cycle failed",
			slog.String("error", err.Error()),
			slog.Any("stack", errs.ExtractStackLines(err, stackLines)),
		)
	}
	return report
}

// RunCycle performs one pass: expire, list, fetch, match, confirm. A failed
// confirmation is logged and does not stop the remaining matches.
func (r *Reconciler) RunCycle(ctx context.Context) (CycleReport, error) {
	var report CycleReport
	now := r.clock.Now()

	expired, err := r.orders.ExpireStale(ctx, now, r.settings.Retention)
	if err != nil {
		return report, errs.Wrap(err, "expire stale orders")
	}
	report.Expired = expired
	if expired > 0 {
		slog.Info("expired stale orders", slog.Int64("count", expired))
	}

	pending, err := r.orders.ListPending(ctx)
	if err != nil {
		return report, errs.Wrap(err, "list pending orders")
	}
	report.Pending = len(pending)
	if len(pending) == 0 {
		report.Idle = true
		return report, nil
	}

	txs, err := r.ledger.FetchRecent(ctx, r.settings.Destination, r.cfg.FetchLimit)
	if err != nil {
		return report, err
	}
	report.Fetched = len(txs)
	if len(txs) == 0 {
		slog.Debug("ledger returned no transactions")
		report.Idle = true
		return report, nil
	}

	matches := payment.FindMatches(r.settings.Destination, pending, txs)
	report.Matched = len(matches)

	for _, m := range matches {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		if r.apply(ctx, m) {
			report.Confirmed++
		}
	}
	return report, nil
}

func (r *Reconciler) apply(ctx context.Context, m payment.Match) bool {
	attrs := matchAttrs(m.Order, m.Transaction)

	result, err := r.payments.ConfirmPayment(ctx, m)
	if err != nil {
		slog.Error("failed to confirm payment", append(attrs, slog.String("error", err.Error()))...)
		return false
	}
	if !result.Confirmed {
		slog.Debug("order already settled", attrs...)
		return false
	}

	slog.Info("payment confirmed", append(attrs, slog.Time("active_until", result.ActiveUntil))...)
	return true
}

func matchAttrs(o *order.Order, tx payment.Transaction) []any {
	return []any{
		slog.Int64("owner_id", o.Owner().Int64()),
		slog.String("order_id", o.ID().String()),
		slog.String("code", o.Code().String()),
		slog.String("tx_hash", tx.Hash),
	}
}

// sleep reports false when ctx ends first.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
