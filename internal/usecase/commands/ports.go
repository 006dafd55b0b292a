package commands

//go:generate mockgen -source=ports.go -destination=../../testutil/mock/commands/commands.go -package=commandsmock

import (
	"context"
	"time"

	"premium-reconciler/internal/domain/entitlement"
	"premium-reconciler/internal/domain/order"
	"premium-reconciler/internal/domain/payment"
	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderCommands interface {
	// CreateOrder replaces any pending order of owner with a fresh one.
	CreateOrder(ctx context.Context, owner user.ID, amount order.Amount) (*order.Order, error)
	ListPending(ctx context.Context) ([]*order.Order, error)
	// ExpireStale is idempotent for a fixed now.
	ExpireStale(ctx context.Context, now time.Time, retention time.Duration) (int64, error)
	// Confirm is a no-op returning false unless the order is pending.
	Confirm(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
}

type PaymentCommands interface {
	// ConfirmPayment confirms the matched order, grants the entitlement and
	// enqueues the owner notification in one transaction.
	ConfirmPayment(ctx context.Context, m payment.Match) (*ConfirmResult, error)
	// Grant overwrites owner's entitlement to now+period.
	Grant(ctx context.Context, owner user.ID, period time.Duration) (entitlement.Status, error)
}

type UserCommands interface {
	// RegisterUser creates or refreshes the owner's profile. joined_at is
	// kept from the first registration.
	RegisterUser(ctx context.Context, req RegisterUserRequest) (*shared.UserSnapshot, error)
}

type RewardCommands interface {
	// Claim awards the daily points once per UTC day. A repeat claim is not
	// an error: it returns AlreadyClaimed.
	Claim(ctx context.Context, owner user.ID) (*ClaimResult, error)
	GrantPoints(ctx context.Context, req GrantPointsRequest) (int64, error)
	// Broadcast enqueues text for every registered user. Delivery pacing is
	// the dispatcher's concern.
	Broadcast(ctx context.Context, text string) (*BroadcastResult, error)
}
