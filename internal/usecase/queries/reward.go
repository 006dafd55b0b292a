package queries

import (
	"context"

	"premium-reconciler/internal/domain/reward"
	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/infra"
	"premium-reconciler/internal/pkg/clock"
	"premium-reconciler/internal/pkg/errs"
)

var ErrUserNotFound = errs.New("user not found")

type rewardQueriesImpl struct {
	users        UserReadStore
	claims       ClaimReadStore
	clock        clock.Clock
	defaultLimit int
}

func NewRewardQueries(users UserReadStore, claims ClaimReadStore, clk clock.Clock, leaderboardLimit int) RewardQueries {
	return &rewardQueriesImpl{users: users, claims: claims, clock: clk, defaultLimit: leaderboardLimit}
}

func (q *rewardQueriesImpl) Points(ctx context.Context, owner user.ID) (int64, error) {
	u, err := q.users.FindByID(ctx, owner)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return u.Points, nil
}

// Leaderboard ranks by points descending, ties broken by lower owner id.
func (q *rewardQueriesImpl) Leaderboard(ctx context.Context, limit int) ([]*LeaderboardEntry, error) {
	if limit <= 0 {
		limit = q.defaultLimit
	}
	limit = min(limit, MaxListLimit)

	entries, err := q.users.Leaderboard(ctx, int32(limit)) // #nosec G115 -- bounded above
	if err != nil {
		return nil, err
	}
	for i, e := range entries {
		e.Rank = i + 1
	}
	return entries, nil
}

func (q *rewardQueriesImpl) ClaimStatus(ctx context.Context, owner user.ID) (*ClaimStatusView, error) {
	today := reward.DayOf(q.clock.Now())

	total, err := q.claims.CountByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	claimed, err := q.claims.ClaimedOn(ctx, owner, today)
	if err != nil {
		return nil, err
	}

	return &ClaimStatusView{
		Owner:        owner.Int64(),
		TotalClaims:  total,
		ClaimedToday: claimed,
		Day:          today.Key(),
	}, nil
}
