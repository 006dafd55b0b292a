//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"premium-reconciler/internal/domain/entitlement"
	"premium-reconciler/internal/domain/payment"
	"premium-reconciler/internal/domain/reward"
	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/infra"
	"premium-reconciler/internal/pkg/clock"
	queriesmock "premium-reconciler/internal/testutil/mock/queries"
	"premium-reconciler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func notFound() error {
	return infra.WrapRepoErr("row missing", nil, infra.KindNotFound)
}

func TestPendingInstructions(t *testing.T) {
	ctx := context.Background()
	settings := payment.Settings{Destination: "EQDest"}

	t.Run("success: renders links for the pending order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		view := &queries.OrderView{
			ID:        uuid.New(),
			Owner:     7,
			Code:      "BHEK-7-AB12",
			AmountTON: decimal.RequireFromString("1.5"),
			Status:    "PENDING",
			CreatedAt: now,
		}
		store.EXPECT().FindPendingByOwner(ctx, user.ID(7)).Return(view, nil)

		got, err := queries.NewOrderQueries(store, settings).PendingInstructions(ctx, user.ID(7))

		require.NoError(t, err)
		assert.Equal(t, view.ID, got.OrderID)
		assert.Equal(t, "EQDest", got.Destination)
		assert.Equal(t, "ton://transfer/EQDest?amount=1500000000&text=BHEK-7-AB12", got.Links.Native)
		assert.Equal(t, "https://t.me/wallet/send/EQDest?amount=1.5&asset=TON&text=BHEK-7-AB12", got.Links.Telegram)
	})

	t.Run("failure: no pending order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		store.EXPECT().FindPendingByOwner(ctx, user.ID(7)).Return(nil, notFound())

		_, err := queries.NewOrderQueries(store, settings).PendingInstructions(ctx, user.ID(7))

		assert.ErrorIs(t, err, queries.ErrNoPendingOrder)
	})
}

func TestRecentForOwner(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int32
	}{
		{name: "zero falls back to default", limit: 0, wantLimit: queries.DefaultRecentOrders},
		{name: "in range is kept", limit: 12, wantLimit: 12},
		{name: "over max is clamped", limit: 500, wantLimit: queries.MaxListLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockOrderReadStore(ctrl)
			store.EXPECT().FindRecentByOwner(gomock.Any(), user.ID(3), tt.wantLimit).Return(nil, nil)

			_, err := queries.NewOrderQueries(store, payment.Settings{}).RecentForOwner(context.Background(), user.ID(3), tt.limit)
			require.NoError(t, err)
		})
	}
}

func TestEntitlementStatus(t *testing.T) {
	ctx := context.Background()
	future := now.Add(48 * time.Hour)
	past := now.Add(-time.Minute)

	tests := []struct {
		name      string
		view      *queries.UserView
		err       error
		wantState entitlement.State
		wantErr   bool
	}{
		{name: "unregistered owner", err: notFound(), wantState: entitlement.StateUnregistered},
		{name: "never paid", view: &queries.UserView{Owner: 5}, wantState: entitlement.StateInactive},
		{name: "window elapsed", view: &queries.UserView{Owner: 5, PremiumUntil: &past}, wantState: entitlement.StateInactive},
		{name: "window open", view: &queries.UserView{Owner: 5, PremiumUntil: &future}, wantState: entitlement.StateActive},
		{name: "storage failure", err: errors.New("boom"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			users := queriesmock.NewMockUserReadStore(ctrl)
			users.EXPECT().FindByID(ctx, user.ID(5)).Return(tt.view, tt.err)

			got, err := queries.NewEntitlementQueries(users, clock.NewMockClock(now)).Status(ctx, user.ID(5))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantState, got.State)
		})
	}
}

func TestRewardQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("points for unknown owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := queriesmock.NewMockUserReadStore(ctrl)
		users.EXPECT().FindByID(ctx, user.ID(9)).Return(nil, notFound())

		q := queries.NewRewardQueries(users, queriesmock.NewMockClaimReadStore(ctrl), clock.NewMockClock(now), 10)
		_, err := q.Points(ctx, user.ID(9))

		assert.ErrorIs(t, err, queries.ErrUserNotFound)
	})

	t.Run("leaderboard uses default limit and assigns ranks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := queriesmock.NewMockUserReadStore(ctrl)
		users.EXPECT().Leaderboard(ctx, int32(10)).Return([]*queries.LeaderboardEntry{
			{Owner: 2, Points: 40},
			{Owner: 1, Points: 40},
		}, nil)

		q := queries.NewRewardQueries(users, queriesmock.NewMockClaimReadStore(ctrl), clock.NewMockClock(now), 10)
		got, err := q.Leaderboard(ctx, 0)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].Rank)
		assert.Equal(t, 2, got[1].Rank)
	})

	t.Run("claim status reports today in UTC", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		claims := queriesmock.NewMockClaimReadStore(ctrl)
		today := reward.DayOf(now)
		claims.EXPECT().CountByOwner(ctx, user.ID(4)).Return(int64(3), nil)
		claims.EXPECT().ClaimedOn(ctx, user.ID(4), today).Return(true, nil)

		q := queries.NewRewardQueries(queriesmock.NewMockUserReadStore(ctrl), claims, clock.NewMockClock(now), 10)
		got, err := q.ClaimStatus(ctx, user.ID(4))

		require.NoError(t, err)
		assert.Equal(t, &queries.ClaimStatusView{Owner: 4, TotalClaims: 3, ClaimedToday: true, Day: today.Key()}, got)
	})
}
