package queries

//go:generate mockgen -source=ports.go -destination=../../testutil/mock/queries/queries.go -package=queriesmock

import (
	"context"

	"premium-reconciler/internal/domain/entitlement"
	"premium-reconciler/internal/domain/reward"
	"premium-reconciler/internal/domain/user"
)

type OrderReadStore interface {
	FindRecentByOwner(ctx context.Context, owner user.ID, limit int32) ([]*OrderView, error)
	FindPendingByOwner(ctx context.Context, owner user.ID) (*OrderView, error)
}

type OrderQueries interface {
	RecentForOwner(ctx context.Context, owner user.ID, limit int) ([]*OrderView, error)
	PendingInstructions(ctx context.Context, owner user.ID) (*PaymentInstructions, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, owner user.ID) (*UserView, error)
	Leaderboard(ctx context.Context, limit int32) ([]*LeaderboardEntry, error)
}

type EntitlementQueries interface {
	Status(ctx context.Context, owner user.ID) (entitlement.Status, error)
}

type ClaimReadStore interface {
	CountByOwner(ctx context.Context, owner user.ID) (int64, error)
	ClaimedOn(ctx context.Context, owner user.ID, day reward.Day) (bool, error)
}

type RewardQueries interface {
	Points(ctx context.Context, owner user.ID) (int64, error)
	Leaderboard(ctx context.Context, limit int) ([]*LeaderboardEntry, error)
	ClaimStatus(ctx context.Context, owner user.ID) (*ClaimStatusView, error)
}
