package shared

//go:generate mockgen -source=uow.go -destination=../../testutil/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"premium-reconciler/internal/domain/entitlement"
	"premium-reconciler/internal/domain/order"
	"premium-reconciler/internal/domain/reward"
	"premium-reconciler/internal/domain/user"
	sqlc "premium-reconciler/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Orders() OrderRepository
	Users() UserRepository
	Rewards() RewardRepository
	Notifications() NotificationRepository
	DB() sqlc.DBTX
}

type OrderRepository interface {
	// ReserveCode records code as issued and reports false if it was issued
	// before.
	ReserveCode(ctx context.Context, tx sqlc.DBTX, code order.Code, issuedAt time.Time) (bool, error)
	DeletePendingByOwner(ctx context.Context, tx sqlc.DBTX, owner user.ID) (int64, error)
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error)
	ListPending(ctx context.Context, tx sqlc.DBTX) ([]*order.Order, error)
	ExpireStale(ctx context.Context, tx sqlc.DBTX, cutoff time.Time) (int64, error)
	// Confirm reports whether this call performed the PENDING -> CONFIRMED
	// transition.
	Confirm(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) (bool, error)
}

type UserRepository interface {
	// EnsureLocked creates the owner row if missing and locks it until the
	// transaction ends.
	EnsureLocked(ctx context.Context, tx sqlc.DBTX, owner user.ID, now time.Time) error
	UpsertProfile(ctx context.Context, tx sqlc.DBTX, p *user.Profile) (*UserSnapshot, error)
	FindEntitlement(ctx context.Context, tx sqlc.DBTX, owner user.ID) (*entitlement.Entitlement, error)
	SaveEntitlement(ctx context.Context, tx sqlc.DBTX, e *entitlement.Entitlement, now time.Time) error
	AddPoints(ctx context.Context, tx sqlc.DBTX, owner user.ID, delta int64) (int64, error)
	ListIDs(ctx context.Context, tx sqlc.DBTX) ([]user.ID, error)
}

type RewardRepository interface {
	// RecordClaim reports false when owner already claimed on day.
	RecordClaim(ctx context.Context, tx sqlc.DBTX, owner user.ID, day reward.Day, at time.Time) (bool, error)
	AppendLog(ctx context.Context, tx sqlc.DBTX, owner user.ID, adj reward.Adjustment, at time.Time) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, job NewNotificationJob) (uuid.UUID, error)
	// LeaseDue hides the returned jobs from other callers until leaseUntil.
	LeaseDue(ctx context.Context, tx sqlc.DBTX, now, leaseUntil time.Time, limit int32) ([]NotificationJob, error)
	UpdateJob(ctx context.Context, tx sqlc.DBTX, job NotificationJob, now time.Time) error
}
