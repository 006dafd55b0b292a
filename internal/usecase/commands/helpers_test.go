//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"premium-reconciler/internal/pkg/clock"
	"premium-reconciler/internal/usecase/shared"
	sharedmock "premium-reconciler/internal/testutil/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type txMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	orders        *sharedmock.MockOrderRepository
	users         *sharedmock.MockUserRepository
	rewards       *sharedmock.MockRewardRepository
	notifications *sharedmock.MockNotificationRepository
	clock         *clock.MockClock
}

// newTxMocks wires a UnitOfWork whose Within runs fn against mocked
// repositories. DB() returns nil; repositories ignore it under test.
func newTxMocks(t *testing.T) *txMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &txMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		orders:        sharedmock.NewMockOrderRepository(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		rewards:       sharedmock.NewMockRewardRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		clock:         clock.NewMockClock(fixedNow),
	}

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Orders().Return(m.orders).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().Rewards().Return(m.rewards).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()
	return m
}
