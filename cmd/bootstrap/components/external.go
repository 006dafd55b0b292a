package components

import (
	"log/slog"

	"premium-reconciler/internal/infra/ledger"
	"premium-reconciler/internal/infra/notifier"
	"premium-reconciler/internal/pkg/config"
	"premium-reconciler/internal/worker"

	"go.uber.org/fx"
)

var ExternalModule = fx.Module("external",
	fx.Provide(
		fx.Annotate(
			NewLedgerClient,
			fx.As(new(worker.LedgerSource)),
		),
		NewNotificationSink,
	),
)

func NewLedgerClient(cfg config.Config) (*ledger.Client, error) {
	return ledger.NewClient(ledger.Config{
		BaseURL: cfg.Ledger.APIURL,
		APIKey:  cfg.Ledger.APIKey,
		Timeout: cfg.Ledger.Timeout,
	})
}

// NewNotificationSink posts to the front-end webhook, or only logs when no
// webhook is configured.
func NewNotificationSink(cfg config.Config, logger *slog.Logger) worker.Sink {
	if cfg.Notifier.WebhookURL == "" {
		logger.Warn("NOTIFY_WEBHOOK_URL is empty, notifications will only be logged")
		return notifier.NewLogSink(logger)
	}
	return notifier.NewWebhookSink(cfg.Notifier.WebhookURL, cfg.Notifier.WebhookSecret, cfg.Notifier.Timeout)
}
