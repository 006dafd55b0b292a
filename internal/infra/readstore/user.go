package readstore

import (
	"context"

	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/infra"
	sqlc "premium-reconciler/internal/infra/sqlc/generated"
	"premium-reconciler/internal/pkg/pgconv"
	"premium-reconciler/internal/usecase/queries"
)

type UserReadQueries interface {
	GetUser(ctx context.Context, db sqlc.DBTX, userID int64) (sqlc.User, error)
	ListLeaderboard(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListLeaderboardRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, owner user.ID) (*queries.UserView, error) {
	row, err := r.queries.GetUser(ctx, r.db, owner.Int64())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.UserView{
		Owner:        row.UserID,
		Username:     row.Username,
		FirstName:    row.FirstName,
		JoinedAt:     pgconv.TimeFromPgtype(row.JoinedAt),
		PremiumUntil: pgconv.TimePtrFromPgtype(row.PremiumUntil),
		Points:       row.Points,
	}, nil
}

func (r *UserReadStore) Leaderboard(ctx context.Context, limit int32) ([]*queries.LeaderboardEntry, error) {
	rows, err := r.queries.ListLeaderboard(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list leaderboard", err)
	}

	result := make([]*queries.LeaderboardEntry, len(rows))
	for i, row := range rows {
		result[i] = &queries.LeaderboardEntry{
			Owner:     row.UserID,
			Username:  row.Username,
			FirstName: row.FirstName,
			Points:    row.Points,
		}
	}
	return result, nil
}
