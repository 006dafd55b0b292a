package readstore

import (
	"context"

	"premium-reconciler/internal/domain/reward"
	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/infra"
	sqlc "premium-reconciler/internal/infra/sqlc/generated"
	"premium-reconciler/internal/pkg/pgconv"
)

type ClaimReadQueries interface {
	CountDailyClaims(ctx context.Context, db sqlc.DBTX, userID int64) (int64, error)
	GetDailyClaim(ctx context.Context, db sqlc.DBTX, arg sqlc.GetDailyClaimParams) (sqlc.DailyClaim, error)
}

type ClaimReadStore struct {
	queries ClaimReadQueries
	db      sqlc.DBTX
}

func NewClaimReadStore(queries ClaimReadQueries, db sqlc.DBTX) *ClaimReadStore {
	return &ClaimReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ClaimReadStore) CountByOwner(ctx context.Context, owner user.ID) (int64, error) {
	n, err := r.queries.CountDailyClaims(ctx, r.db, owner.Int64())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count daily claims", err)
	}
	return n, nil
}

func (r *ClaimReadStore) ClaimedOn(ctx context.Context, owner user.ID, day reward.Day) (bool, error) {
	_, err := r.queries.GetDailyClaim(ctx, r.db, sqlc.GetDailyClaimParams{
		UserID: owner.Int64(),
		Day:    pgconv.DateToPgtype(day.Time()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to find daily claim", err)
	}
	return true, nil
}
