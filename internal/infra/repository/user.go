package repository

import (
	"context"
	"time"

	"premium-reconciler/internal/domain/entitlement"
	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/infra"
	sqlc "premium-reconciler/internal/infra/sqlc/generated"
	"premium-reconciler/internal/pkg/pgconv"
	"premium-reconciler/internal/usecase/shared"
)

type UserWriteQueries interface {
	EnsureUser(ctx context.Context, db sqlc.DBTX, arg sqlc.EnsureUserParams) error
	LockUser(ctx context.Context, db sqlc.DBTX, userID int64) (int64, error)
	UpsertUserProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertUserProfileParams) (sqlc.User, error)
	GetUser(ctx context.Context, db sqlc.DBTX, userID int64) (sqlc.User, error)
	GrantPremium(ctx context.Context, db sqlc.DBTX, arg sqlc.GrantPremiumParams) error
	AddUserPoints(ctx context.Context, db sqlc.DBTX, arg sqlc.AddUserPointsParams) (int64, error)
	ListUserIDs(ctx context.Context, db sqlc.DBTX) ([]int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) EnsureLocked(ctx context.Context, tx sqlc.DBTX, owner user.ID, now time.Time) error {
	err := r.queries.EnsureUser(ctx, tx, sqlc.EnsureUserParams{
		UserID:   owner.Int64(),
		JoinedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to ensure user", err)
	}
	if _, err := r.queries.LockUser(ctx, tx, owner.Int64()); err != nil {
		return infra.WrapRepoErr("failed to lock user", err)
	}
	return nil
}

func (r *UserRepository) UpsertProfile(ctx context.Context, tx sqlc.DBTX, p *user.Profile) (*shared.UserSnapshot, error) {
	row, err := r.queries.UpsertUserProfile(ctx, tx, sqlc.UpsertUserProfileParams{
		UserID:    p.ID().Int64(),
		Username:  p.Username(),
		FirstName: p.FirstName(),
		JoinedAt:  pgconv.TimeToPgtype(p.JoinedAt()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert user profile", err)
	}
	return toUserSnapshot(row), nil
}

func (r *UserRepository) FindEntitlement(ctx context.Context, tx sqlc.DBTX, owner user.ID) (*entitlement.Entitlement, error) {
	row, err := r.queries.GetUser(ctx, tx, owner.Int64())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return entitlement.Reconstruct(owner, pgconv.TimePtrFromPgtype(row.PremiumUntil)), nil
}

// SaveEntitlement writes active_until, creating the owner row (joined at now)
// when it does not exist yet.
func (r *UserRepository) SaveEntitlement(ctx context.Context, tx sqlc.DBTX, e *entitlement.Entitlement, now time.Time) error {
	err := r.queries.GrantPremium(ctx, tx, sqlc.GrantPremiumParams{
		UserID:       e.Owner().Int64(),
		JoinedAt:     pgconv.TimeToPgtype(now),
		PremiumUntil: pgconv.TimePtrToPgtype(e.ActiveUntil()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save entitlement", err)
	}
	return nil
}

func (r *UserRepository) AddPoints(ctx context.Context, tx sqlc.DBTX, owner user.ID, delta int64) (int64, error) {
	total, err := r.queries.AddUserPoints(ctx, tx, sqlc.AddUserPointsParams{
		UserID: owner.Int64(),
		Points: delta,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to add points", err)
	}
	return total, nil
}

func (r *UserRepository) ListIDs(ctx context.Context, tx sqlc.DBTX) ([]user.ID, error) {
	rows, err := r.queries.ListUserIDs(ctx, tx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user IDs", err)
	}
	ids := make([]user.ID, len(rows))
	for i, id := range rows {
		ids[i] = user.ID(id)
	}
	return ids, nil
}

func toUserSnapshot(row sqlc.User) *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:           user.ID(row.UserID),
		Username:     row.Username,
		FirstName:    row.FirstName,
		JoinedAt:     pgconv.TimeFromPgtype(row.JoinedAt),
		PremiumUntil: pgconv.TimePtrFromPgtype(row.PremiumUntil),
		Points:       row.Points,
	}
}
