//go:build e2e

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"premium-reconciler/internal/domain/order"
	"premium-reconciler/internal/domain/payment"
	"premium-reconciler/internal/domain/user"
	sqlc "premium-reconciler/internal/infra/sqlc/generated"
	"premium-reconciler/internal/infra/uow"
	"premium-reconciler/internal/pkg/clock"
	"premium-reconciler/internal/testutil/pgtest"
	"premium-reconciler/internal/usecase/commands"
	"premium-reconciler/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var storeNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// scriptedCodes hands out codes in order and repeats the last one.
type scriptedCodes struct {
	mu    sync.Mutex
	codes []string
	next  int
}

func (s *scriptedCodes) Generate(user.ID) (order.Code, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.codes[min(s.next, len(s.codes)-1)]
	s.next++
	return order.NewCode(v)
}

type StoreTestSuite struct {
	suite.Suite
	pool  *pgxpool.Pool
	uow   shared.UnitOfWork
	clock *clock.MockClock
	price order.Amount
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupSuite() {
	s.pool, _ = pgtest.NewDatabase(s.T())
	s.uow = uow.NewPostgresUoW(s.pool, sqlc.New())
	price, err := order.NewAmount(decimal.NewFromInt(1))
	s.Require().NoError(err)
	s.price = price
}

func (s *StoreTestSuite) SetupTest() {
	pgtest.Reset(s.T(), s.pool)
	s.clock = clock.NewMockClock(storeNow)
}

func (s *StoreTestSuite) settings() payment.Settings {
	return payment.Settings{
		Destination: "EQTestDestination",
		Price:       s.price,
		GrantPeriod: 30 * 24 * time.Hour,
		Retention:   24 * time.Hour,
	}
}

func (s *StoreTestSuite) orderStatus(o *order.Order) string {
	var status string
	err := s.pool.QueryRow(context.Background(), "SELECT status FROM orders WHERE id = $1", o.ID()).Scan(&status)
	s.Require().NoError(err)
	return status
}

func (s *StoreTestSuite) confirmedAt(o *order.Order) time.Time {
	var at time.Time
	err := s.pool.QueryRow(context.Background(), "SELECT confirmed_at FROM orders WHERE id = $1", o.ID()).Scan(&at)
	s.Require().NoError(err)
	return at
}

func (s *StoreTestSuite) count(query string, args ...any) int {
	var n int
	s.Require().NoError(s.pool.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

func (s *StoreTestSuite) TestExpiryBoundaryAndIdempotence() {
	ctx := context.Background()
	uc := commands.NewOrderCommands(s.uow, order.NewRandomCodeGenerator("BHEK"), s.clock)

	s.clock.Set(storeNow.Add(-24*time.Hour - time.Second))
	stale, err := uc.CreateOrder(ctx, user.ID(1), s.price)
	s.Require().NoError(err)

	s.clock.Set(storeNow.Add(-24*time.Hour + time.Second))
	fresh, err := uc.CreateOrder(ctx, user.ID(2), s.price)
	s.Require().NoError(err)

	expired, err := uc.ExpireStale(ctx, storeNow, 24*time.Hour)
	s.Require().NoError(err)
	s.Equal(int64(1), expired)
	s.Equal("EXPIRED", s.orderStatus(stale))
	s.Equal("PENDING", s.orderStatus(fresh))

	again, err := uc.ExpireStale(ctx, storeNow, 24*time.Hour)
	s.Require().NoError(err)
	s.Zero(again)
	s.Equal("EXPIRED", s.orderStatus(stale))
	s.Equal("PENDING", s.orderStatus(fresh))
}

func (s *StoreTestSuite) TestSinglePendingPerOwner() {
	ctx := context.Background()
	uc := commands.NewOrderCommands(s.uow, order.NewRandomCodeGenerator("BHEK"), s.clock)

	const workers = 8
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.CreateOrder(ctx, user.ID(7), s.price); err != nil {
				errCh <- err
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		s.NoError(err)
	}

	s.Equal(1, s.count("SELECT count(*) FROM orders WHERE user_id = $1 AND status = 'PENDING'", int64(7)))

	pending, err := uc.ListPending(ctx)
	s.Require().NoError(err)
	s.Len(pending, 1)
}

func (s *StoreTestSuite) TestCodesAreNeverReused() {
	ctx := context.Background()
	codes := &scriptedCodes{codes: []string{"BHEK-7-0001", "BHEK-7-0001", "BHEK-7-0002"}}
	uc := commands.NewOrderCommands(s.uow, codes, s.clock)

	first, err := uc.CreateOrder(ctx, user.ID(7), s.price)
	s.Require().NoError(err)
	s.Equal("BHEK-7-0001", first.Code().String())

	// The replacement deletes the first order, but its code stays burned.
	second, err := uc.CreateOrder(ctx, user.ID(7), s.price)
	s.Require().NoError(err)
	s.Equal("BHEK-7-0002", second.Code().String())
	s.Equal(0, s.count("SELECT count(*) FROM orders WHERE code = 'BHEK-7-0001'"))
	s.Equal(2, s.count("SELECT count(*) FROM order_codes"))
}

func (s *StoreTestSuite) TestDoubleConfirmGrantsOnce() {
	ctx := context.Background()
	orders := commands.NewOrderCommands(s.uow, order.NewRandomCodeGenerator("BHEK"), s.clock)
	payments := commands.NewPaymentCommands(s.uow, s.settings(), s.clock)

	o, err := orders.CreateOrder(ctx, user.ID(9), s.price)
	s.Require().NoError(err)
	match := payment.Match{Order: o, Transaction: payment.Transaction{Hash: "h1", Comment: o.Code().String(), Value: decimal.NewFromInt(1)}}

	s.clock.Add(time.Minute)
	first, err := payments.ConfirmPayment(ctx, match)
	s.Require().NoError(err)
	s.True(first.Confirmed)
	s.Equal(storeNow.Add(time.Minute+30*24*time.Hour), first.ActiveUntil)

	confirmedAt := s.confirmedAt(o)
	s.True(confirmedAt.Equal(storeNow.Add(time.Minute)))

	s.clock.Add(time.Minute)
	second, err := payments.ConfirmPayment(ctx, match)
	s.Require().NoError(err)
	s.False(second.Confirmed)

	ok, err := orders.Confirm(ctx, o.ID(), s.clock.Now())
	s.Require().NoError(err)
	s.False(ok)

	s.Equal("CONFIRMED", s.orderStatus(o))
	s.True(s.confirmedAt(o).Equal(confirmedAt), "confirmed_at must not move on a repeated confirm")
	s.Equal(1, s.count("SELECT count(*) FROM notification_jobs WHERE recipient = $1", int64(9)))

	var until time.Time
	s.Require().NoError(s.pool.QueryRow(ctx, "SELECT premium_until FROM users WHERE user_id = 9").Scan(&until))
	s.True(until.Equal(first.ActiveUntil))

	// Once confirmed, expiry leaves the order alone.
	_, err = orders.ExpireStale(ctx, storeNow.Add(72*time.Hour), 24*time.Hour)
	s.Require().NoError(err)
	s.Equal("CONFIRMED", s.orderStatus(o))
}

func (s *StoreTestSuite) TestClaimOncePerDay() {
	ctx := context.Background()
	rewards := commands.NewRewardCommands(s.uow, commands.RewardPolicy{ClaimPoints: 10}, s.clock)

	first, err := rewards.Claim(ctx, user.ID(3))
	s.Require().NoError(err)
	s.False(first.AlreadyClaimed)
	s.Equal(int64(10), first.Points)

	s.clock.Add(6 * time.Hour)
	again, err := rewards.Claim(ctx, user.ID(3))
	s.Require().NoError(err)
	s.True(again.AlreadyClaimed)
	s.Equal(int64(10), again.Points)

	s.clock.Set(time.Date(2026, 3, 15, 0, 0, 1, 0, time.UTC))
	nextDay, err := rewards.Claim(ctx, user.ID(3))
	s.Require().NoError(err)
	s.False(nextDay.AlreadyClaimed)
	s.Equal(int64(20), nextDay.Points)

	s.Equal(2, s.count("SELECT count(*) FROM daily_claims WHERE user_id = 3"))
	s.Equal(2, s.count("SELECT count(*) FROM points_log WHERE user_id = 3 AND NOT by_admin"))
}

func (s *StoreTestSuite) TestGrantPointsAndBroadcast() {
	ctx := context.Background()
	rewards := commands.NewRewardCommands(s.uow, commands.RewardPolicy{ClaimPoints: 10}, s.clock)

	total, err := rewards.GrantPoints(ctx, commands.GrantPointsRequest{Target: user.ID(4), Delta: 50, Reason: "event"})
	s.Require().NoError(err)
	s.Equal(int64(50), total)

	total, err = rewards.GrantPoints(ctx, commands.GrantPointsRequest{Target: user.ID(4), Delta: -70, Reason: "refund"})
	s.Require().NoError(err)
	s.Equal(int64(-20), total)

	_, err = rewards.GrantPoints(ctx, commands.GrantPointsRequest{Target: user.ID(5), Delta: 1})
	s.Require().NoError(err)

	res, err := rewards.Broadcast(ctx, "hello")
	s.Require().NoError(err)
	s.Equal(2, res.Enqueued)
	s.Equal(2, s.count("SELECT count(*) FROM notification_jobs WHERE kind = 'broadcast'"))
}
