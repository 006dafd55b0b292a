package order

import (
	"time"

	"premium-reconciler/internal/domain/user"

	"github.com/google/uuid"
)

type Order struct {
	id             uuid.UUID
	owner          user.ID
	code           Code
	expectedAmount Amount
	createdAt      time.Time
	confirmedAt    *time.Time
	status         Status
}

func NewOrder(owner user.ID, code Code, amount Amount, now time.Time) (*Order, error) {
	if owner <= 0 {
		return nil, user.ErrInvalidID
	}
	if code.IsZero() {
		return nil, ErrInvalidCode
	}
	if !amount.Decimal().IsPositive() {
		return nil, ErrInvalidAmount
	}
	return &Order{
		id:             uuid.New(),
		owner:          owner,
		code:           code,
		expectedAmount: amount,
		createdAt:      now,
		status:         StatusPending,
	}, nil
}

func ReconstructOrder(
	id uuid.UUID,
	owner user.ID,
	code Code,
	amount Amount,
	createdAt time.Time,
	confirmedAt *time.Time,
	status Status,
) *Order {
	return &Order{
		id:             id,
		owner:          owner,
		code:           code,
		expectedAmount: amount,
		createdAt:      createdAt,
		confirmedAt:    confirmedAt,
		status:         status,
	}
}

func (o *Order) IsPending() bool {
	return o.status == StatusPending
}

// ConfirmedAtFor never returns an instant before creation, so clock skew
// between writer and reconciler cannot break confirmed_at >= created_at.
func (o *Order) ConfirmedAtFor(now time.Time) time.Time {
	if now.Before(o.createdAt) {
		return o.createdAt
	}
	return now
}

func (o *Order) ID() uuid.UUID           { return o.id }
func (o *Order) Owner() user.ID          { return o.owner }
func (o *Order) Code() Code              { return o.code }
func (o *Order) ExpectedAmount() Amount  { return o.expectedAmount }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }
func (o *Order) ConfirmedAt() *time.Time { return o.confirmedAt }
func (o *Order) Status() Status          { return o.status }
