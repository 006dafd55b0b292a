package repository

import (
	"context"
	"time"

	"premium-reconciler/internal/domain/reward"
	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/infra"
	sqlc "premium-reconciler/internal/infra/sqlc/generated"
	"premium-reconciler/internal/pkg/pgconv"
)

type RewardWriteQueries interface {
	InsertDailyClaim(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertDailyClaimParams) (int64, error)
	InsertPointsLog(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPointsLogParams) error
}

type RewardRepository struct {
	queries RewardWriteQueries
}

func NewRewardRepository(queries RewardWriteQueries) *RewardRepository {
	return &RewardRepository{queries: queries}
}

func (r *RewardRepository) RecordClaim(ctx context.Context, tx sqlc.DBTX, owner user.ID, day reward.Day, at time.Time) (bool, error) {
	n, err := r.queries.InsertDailyClaim(ctx, tx, sqlc.InsertDailyClaimParams{
		UserID:    owner.Int64(),
		Day:       pgconv.DateToPgtype(day.Time()),
		ClaimedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record daily claim", err)
	}
	return n == 1, nil
}

func (r *RewardRepository) AppendLog(ctx context.Context, tx sqlc.DBTX, owner user.ID, adj reward.Adjustment, at time.Time) error {
	err := r.queries.InsertPointsLog(ctx, tx, sqlc.InsertPointsLogParams{
		UserID:    owner.Int64(),
		Delta:     adj.Delta(),
		Reason:    adj.Reason(),
		ByAdmin:   adj.ByAdmin(),
		CreatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append points log", err)
	}
	return nil
}
