package bootstrap

import (
	"premium-reconciler/internal/domain/order"
	"premium-reconciler/internal/domain/payment"
	"premium-reconciler/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewPaymentSettings,
	),
)

// NewPaymentSettings resolves the destination (OFFICIAL_ONLY included) and the
// price every order is charged.
func NewPaymentSettings(cfg config.Config) (payment.Settings, error) {
	destination, err := cfg.Payment.ResolveDestination()
	if err != nil {
		return payment.Settings{}, err
	}
	price, err := order.NewAmount(cfg.Payment.PriceTON)
	if err != nil {
		return payment.Settings{}, err
	}
	return payment.Settings{
		Destination: destination,
		Price:       price,
		GrantPeriod: cfg.Payment.PremiumPeriod,
		Retention:   cfg.Payment.OrderRetention,
	}, nil
}
