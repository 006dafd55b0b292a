package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"premium-reconciler/internal/domain/entitlement"
	"premium-reconciler/internal/domain/payment"
	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/infra"
	"premium-reconciler/internal/pkg/clock"
	"premium-reconciler/internal/pkg/errs"
	"premium-reconciler/internal/usecase/shared"
)

var ErrInvalidMatch = errs.New("match carries no order")

type ConfirmResult struct {
	// Confirmed is false when another pass already settled the order; nothing
	// was granted or enqueued in that case.
	Confirmed   bool
	ActiveUntil time.Time
}

type paymentCommandsImpl struct {
	uow      shared.UnitOfWork
	settings payment.Settings
	clock    clock.Clock
}

func NewPaymentCommands(uow shared.UnitOfWork, settings payment.Settings, clk clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{uow: uow, settings: settings, clock: clk}
}

func (c *paymentCommandsImpl) ConfirmPayment(ctx context.Context, m payment.Match) (*ConfirmResult, error) {
	if m.Order == nil {
		return nil, ErrInvalidMatch
	}
	o := m.Order

	result := &ConfirmResult{}
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		confirmed, err := tx.Orders().Confirm(ctx, tx.DB(), o.ID(), o.ConfirmedAtFor(now))
		if err != nil {
			return err
		}
		if !confirmed {
			return nil
		}

		ent, err := grantInTx(ctx, tx, o.Owner(), now, c.settings.GrantPeriod)
		if err != nil {
			return err
		}

		until := *ent.ActiveUntil()
		payload, err := json.Marshal(shared.PremiumActivatedPayload{
			OrderID:     o.ID(),
			Code:        o.Code().String(),
			AmountTON:   o.ExpectedAmount().String(),
			ActiveUntil: until,
			Text:        premiumActivatedText(until),
		})
		if err != nil {
			return errs.Wrap(err, "encode notification payload")
		}

		if _, err := tx.Notifications().CreateJob(ctx, tx.DB(), shared.NewNotificationJob{
			Kind:      shared.NotificationKindPremiumActivated,
			Topic:     shared.NotificationTopicPayments,
			Recipient: o.Owner(),
			Payload:   payload,
			RunAt:     now,
		}); err != nil {
			return err
		}

		result.Confirmed = true
		result.ActiveUntil = until
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *paymentCommandsImpl) Grant(ctx context.Context, owner user.ID, period time.Duration) (entitlement.Status, error) {
	var status entitlement.Status
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		ent, err := grantInTx(ctx, tx, owner, now, period)
		if err != nil {
			return err
		}
		status = ent.StatusAt(now)
		return nil
	})
	return status, err
}

func grantInTx(ctx context.Context, tx shared.Tx, owner user.ID, now time.Time, period time.Duration) (*entitlement.Entitlement, error) {
	ent, err := tx.Users().FindEntitlement(ctx, tx.DB(), owner)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		ent = entitlement.New(owner)
	}
	if err := ent.Grant(now, period); err != nil {
		return nil, err
	}
	if err := tx.Users().SaveEntitlement(ctx, tx.DB(), ent, now); err != nil {
		return nil, err
	}
	return ent, nil
}

func premiumActivatedText(until time.Time) string {
	return fmt.Sprintf("Premium active until %s UTC.", until.UTC().Format("2006-01-02 15:04"))
}
