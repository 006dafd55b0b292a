package bootstrap

import (
	"log/slog"

	"premium-reconciler/internal/handler/middleware"
	"premium-reconciler/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger shares the request logger's handler so worker and HTTP lines look
// the same. It also becomes the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()
	slog.SetDefault(logger)
	return logger
}
