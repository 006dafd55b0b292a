package commands

import (
	"context"
	"log/slog"
	"time"

	"premium-reconciler/internal/domain/order"
	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/infra"
	"premium-reconciler/internal/pkg/clock"
	"premium-reconciler/internal/pkg/errs"
	"premium-reconciler/internal/usecase/shared"

	"github.com/google/uuid"
)

// maxCodeAttempts bounds regeneration when a random code collides with one
// issued before.
const maxCodeAttempts = 8

var (
	ErrCodeSpaceExhausted = errs.New("could not allocate a fresh order code")
	ErrOrderCreation      = errs.New("order creation failed")
)

type orderCommandsImpl struct {
	uow   shared.UnitOfWork
	codes order.CodeGenerator
	clock clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, codes order.CodeGenerator, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{uow: uow, codes: codes, clock: clk}
}

func (c *orderCommandsImpl) CreateOrder(ctx context.Context, owner user.ID, amount order.Amount) (*order.Order, error) {
	if _, err := user.NewID(owner.Int64()); err != nil {
		return nil, err
	}

	var created *order.Order
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		// Serializes concurrent creations for the same owner.
		if err := tx.Users().EnsureLocked(ctx, tx.DB(), owner, now); err != nil {
			return err
		}

		replaced, err := tx.Orders().DeletePendingByOwner(ctx, tx.DB(), owner)
		if err != nil {
			return err
		}

		code, err := c.reserveFreshCode(ctx, tx, owner, now)
		if err != nil {
			return err
		}

		o, err := order.NewOrder(owner, code, amount, now)
		if err != nil {
			return err
		}
		if err := tx.Orders().Create(ctx, tx.DB(), o); err != nil {
			return err
		}

		if replaced > 0 {
			slog.Info("replaced pending order",
				slog.Int64("owner_id", owner.Int64()),
				slog.Int64("replaced", replaced),
			)
		}
		created = o
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrOrderCreation)
	}
	return created, nil
}

func (c *orderCommandsImpl) reserveFreshCode(ctx context.Context, tx shared.Tx, owner user.ID, now time.Time) (order.Code, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := c.codes.Generate(owner)
		if err != nil {
			return order.Code{}, err
		}
		fresh, err := tx.Orders().ReserveCode(ctx, tx.DB(), code, now)
		if err != nil {
			return order.Code{}, err
		}
		if fresh {
			return code, nil
		}
		slog.Debug("order code collision, regenerating",
			slog.Int64("owner_id", owner.Int64()),
			slog.Int("attempt", attempt),
		)
	}
	return order.Code{}, ErrCodeSpaceExhausted
}

func (c *orderCommandsImpl) ListPending(ctx context.Context) ([]*order.Order, error) {
	var pending []*order.Order
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		pending, err = tx.Orders().ListPending(ctx, tx.DB())
		return err
	})
	return pending, err
}

func (c *orderCommandsImpl) ExpireStale(ctx context.Context, now time.Time, retention time.Duration) (int64, error) {
	var n int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Orders().ExpireStale(ctx, tx.DB(), now.Add(-retention))
		return err
	})
	return n, err
}

// Confirm is a no-op returning false for unknown or already settled orders.
func (c *orderCommandsImpl) Confirm(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	var ok bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindByID(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}
		if o.Status().IsTerminal() {
			return nil
		}
		ok, err = tx.Orders().Confirm(ctx, tx.DB(), id, o.ConfirmedAtFor(now))
		return err
	})
	return ok, err
}
