//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"premium-reconciler/internal/domain/entitlement"
	"premium-reconciler/internal/domain/order"
	"premium-reconciler/internal/domain/payment"
	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/infra"
	sqlc "premium-reconciler/internal/infra/sqlc/generated"
	"premium-reconciler/internal/usecase/commands"
	"premium-reconciler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const grantPeriod = 30 * 24 * time.Hour

func testSettings(t *testing.T) payment.Settings {
	return payment.Settings{
		Destination: "EQDest",
		Price:       mustAmount(t, "1"),
		GrantPeriod: grantPeriod,
		Retention:   24 * time.Hour,
	}
}

func pendingOrder(t *testing.T, owner user.ID, code string) *order.Order {
	t.Helper()
	c, err := order.NewCode(code)
	require.NoError(t, err)
	return order.ReconstructOrder(uuid.New(), owner, c, mustAmount(t, "1"),
		fixedNow.Add(-time.Hour), nil, order.StatusPending)
}

func TestConfirmPayment(t *testing.T) {
	owner := user.ID(7)

	t.Run("success: confirms, grants and enqueues notification", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewPaymentCommands(m.uow, testSettings(t), m.clock)
		o := pendingOrder(t, owner, "BHEK-7-AB12")
		match := payment.Match{Order: o, Transaction: payment.Transaction{Hash: "h", Value: decimal.NewFromInt(1)}}

		var saved *entitlement.Entitlement
		var job shared.NewNotificationJob
		gomock.InOrder(
			m.orders.EXPECT().Confirm(gomock.Any(), nil, o.ID(), fixedNow).Return(true, nil),
			m.users.EXPECT().FindEntitlement(gomock.Any(), nil, owner).
				Return(entitlement.Reconstruct(owner, nil), nil),
			m.users.EXPECT().SaveEntitlement(gomock.Any(), nil, gomock.Any(), fixedNow).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, e *entitlement.Entitlement, _ time.Time) error {
					saved = e
					return nil
				}),
			m.notifications.EXPECT().CreateJob(gomock.Any(), nil, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, j shared.NewNotificationJob) (uuid.UUID, error) {
					job = j
					return uuid.New(), nil
				}),
		)

		res, err := uc.ConfirmPayment(context.Background(), match)
		require.NoError(t, err)
		assert.True(t, res.Confirmed)
		assert.Equal(t, fixedNow.Add(grantPeriod), res.ActiveUntil)

		require.NotNil(t, saved)
		assert.Equal(t, fixedNow.Add(grantPeriod), *saved.ActiveUntil())

		assert.Equal(t, shared.NotificationKindPremiumActivated, job.Kind)
		assert.Equal(t, owner, job.Recipient)
		assert.Equal(t, fixedNow, job.RunAt)
		var payload shared.PremiumActivatedPayload
		require.NoError(t, json.Unmarshal(job.Payload, &payload))
		assert.Equal(t, o.ID(), payload.OrderID)
		assert.Equal(t, "BHEK-7-AB12", payload.Code)
		assert.Contains(t, payload.Text, "Premium active until")
	})

	t.Run("success: unknown owner gets a fresh entitlement", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewPaymentCommands(m.uow, testSettings(t), m.clock)
		o := pendingOrder(t, owner, "BHEK-7-AB12")

		m.orders.EXPECT().Confirm(gomock.Any(), nil, o.ID(), fixedNow).Return(true, nil)
		m.users.EXPECT().FindEntitlement(gomock.Any(), nil, owner).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))
		m.users.EXPECT().SaveEntitlement(gomock.Any(), nil, gomock.Any(), fixedNow).Return(nil)
		m.notifications.EXPECT().CreateJob(gomock.Any(), nil, gomock.Any()).Return(uuid.New(), nil)

		res, err := uc.ConfirmPayment(context.Background(), payment.Match{Order: o})
		require.NoError(t, err)
		assert.True(t, res.Confirmed)
	})

	t.Run("no-op: already confirmed order grants nothing", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewPaymentCommands(m.uow, testSettings(t), m.clock)
		o := pendingOrder(t, owner, "BHEK-7-AB12")

		m.orders.EXPECT().Confirm(gomock.Any(), nil, o.ID(), fixedNow).Return(false, nil)

		res, err := uc.ConfirmPayment(context.Background(), payment.Match{Order: o})
		require.NoError(t, err)
		assert.False(t, res.Confirmed)
		assert.True(t, res.ActiveUntil.IsZero())
	})

	t.Run("success: confirmed_at never predates creation", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewPaymentCommands(m.uow, testSettings(t), m.clock)
		c, err := order.NewCode("BHEK-7-AB12")
		require.NoError(t, err)
		ahead := fixedNow.Add(time.Minute)
		o := order.ReconstructOrder(uuid.New(), owner, c, mustAmount(t, "1"), ahead, nil, order.StatusPending)

		m.orders.EXPECT().Confirm(gomock.Any(), nil, o.ID(), ahead).Return(true, nil)
		m.users.EXPECT().FindEntitlement(gomock.Any(), nil, owner).Return(entitlement.Reconstruct(owner, nil), nil)
		m.users.EXPECT().SaveEntitlement(gomock.Any(), nil, gomock.Any(), fixedNow).Return(nil)
		m.notifications.EXPECT().CreateJob(gomock.Any(), nil, gomock.Any()).Return(uuid.New(), nil)

		res, err := uc.ConfirmPayment(context.Background(), payment.Match{Order: o})
		require.NoError(t, err)
		assert.True(t, res.Confirmed)
	})

	t.Run("error: match without order", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewPaymentCommands(m.uow, testSettings(t), m.clock)

		_, err := uc.ConfirmPayment(context.Background(), payment.Match{})
		assert.ErrorIs(t, err, commands.ErrInvalidMatch)
	})
}

func TestGrantResetsWindow(t *testing.T) {
	m := newTxMocks(t)
	uc := commands.NewPaymentCommands(m.uow, testSettings(t), m.clock)
	owner := user.ID(9)

	// One second later the window restarts from the new now, it does not stack.
	earlier := fixedNow.Add(-time.Second).Add(grantPeriod)
	m.users.EXPECT().FindEntitlement(gomock.Any(), nil, owner).
		Return(entitlement.Reconstruct(owner, &earlier), nil)
	m.users.EXPECT().SaveEntitlement(gomock.Any(), nil, gomock.Any(), fixedNow).Return(nil)

	status, err := uc.Grant(context.Background(), owner, grantPeriod)
	require.NoError(t, err)
	assert.Equal(t, entitlement.StateActive, status.State)
	require.NotNil(t, status.ActiveUntil)
	assert.Equal(t, fixedNow.Add(grantPeriod), *status.ActiveUntil)
}
