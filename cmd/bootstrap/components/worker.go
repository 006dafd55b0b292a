package components

import (
	"context"
	"log/slog"

	"premium-reconciler/internal/pkg/config"
	"premium-reconciler/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(cfg config.Config) worker.ReconcilerConfig {
			return worker.ReconcilerConfig{
				StartupDelay: cfg.Reconciler.StartupDelay,
				Interval:     cfg.Reconciler.Interval,
				IdleInterval: cfg.Reconciler.IdleInterval,
				FetchLimit:   cfg.Ledger.FetchLimit,
			}
		},
		func(cfg config.Config) worker.DispatcherConfig {
			return worker.DispatcherConfig{
				PollInterval:  cfg.Notifier.PollInterval,
				BatchSize:     cfg.Notifier.BatchSize,
				MaxAttempts:   cfg.Notifier.MaxAttempts,
				RatePerSecond: cfg.Notifier.RatePerSecond,
				Lease:         cfg.Notifier.Lease,
			}
		},
		worker.NewReconciler,
		worker.NewDispatcher,
	),
	fx.Invoke(startWorkers),
)

// startWorkers ties both loops to the app lifecycle. Stop waits for the
// in-flight cycle within fx's stop timeout.
func startWorkers(lc fx.Lifecycle, r *worker.Reconciler, d *worker.Dispatcher, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			r.Start(ctx)
			d.Start(ctx)
			logger.Info("background workers started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			rErr := r.Stop(ctx)
			dErr := d.Stop(ctx)
			if rErr != nil {
				return rErr
			}
			return dErr
		},
	})
}
