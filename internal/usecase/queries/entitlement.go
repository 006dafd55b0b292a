package queries

import (
	"context"

	"premium-reconciler/internal/domain/entitlement"
	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/infra"
	"premium-reconciler/internal/pkg/clock"
)

type entitlementQueriesImpl struct {
	users UserReadStore
	clock clock.Clock
}

func NewEntitlementQueries(users UserReadStore, clk clock.Clock) EntitlementQueries {
	return &entitlementQueriesImpl{users: users, clock: clk}
}

// Status reports Unregistered for owners with no user record.
func (q *entitlementQueriesImpl) Status(ctx context.Context, owner user.ID) (entitlement.Status, error) {
	u, err := q.users.FindByID(ctx, owner)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return entitlement.StatusOf(nil, q.clock.Now()), nil
		}
		return entitlement.Status{}, err
	}
	return entitlement.Reconstruct(owner, u.PremiumUntil).StatusAt(q.clock.Now()), nil
}
