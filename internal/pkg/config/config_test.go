//go:build unit

package config_test

import (
	"testing"
	"time"

	"premium-reconciler/internal/pkg/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "p")
	t.Setenv("DB_NAME", "n")
	t.Setenv("JWT_SECRET", "s")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults follow the reference polling cadence", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TON_DEST_ADDRESS", "EQdest")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "EQdest", cfg.Payment.Destination)
		assert.True(t, decimal.NewFromInt(1).Equal(cfg.Payment.PriceTON))
		assert.Equal(t, 30*24*time.Hour, cfg.Payment.PremiumPeriod)
		assert.Equal(t, 24*time.Hour, cfg.Payment.OrderRetention)
		assert.Equal(t, 3*time.Second, cfg.Reconciler.StartupDelay)
		assert.Equal(t, 15*time.Second, cfg.Reconciler.Interval)
		assert.Equal(t, 12*time.Second, cfg.Reconciler.IdleInterval)
		assert.Equal(t, 40, cfg.Ledger.FetchLimit)
		assert.Equal(t, 20*time.Second, cfg.Ledger.Timeout)
		assert.InDelta(t, 25.0, cfg.Notifier.RatePerSecond, 0.0001)
		assert.Equal(t, int32(10), cfg.Notifier.BatchSize)
		assert.Equal(t, 2*time.Minute, cfg.Notifier.Lease)
	})

	t.Run("decimal price is parsed exactly", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TON_DEST_ADDRESS", "EQdest")
		t.Setenv("PREMIUM_PRICE_TON", "2.5")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "2.5", cfg.Payment.PriceTON.String())
	})

	t.Run("official mode overrides destination", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TON_DEST_ADDRESS", "EQsomethingElse")
		t.Setenv("OFFICIAL_ONLY", "true")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, config.DefaultOfficialAddress, cfg.Payment.Destination)
	})

	t.Run("missing destination fails", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TON_DEST_ADDRESS", "")

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("non-positive price fails", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TON_DEST_ADDRESS", "EQdest")
		t.Setenv("PREMIUM_PRICE_TON", "0")

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
}
