//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"premium-reconciler/internal/domain/order"
	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/infra"
	sqlc "premium-reconciler/internal/infra/sqlc/generated"
	"premium-reconciler/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderWriteQueries struct {
	mock.Mock
}

func (m *MockOrderWriteQueries) InsertOrderCode(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOrderCodeParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderWriteQueries) DeletePendingOrdersByUser(ctx context.Context, db sqlc.DBTX, userID int64) (int64, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderWriteQueries) CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockOrderWriteQueries) GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Order, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Order), args.Error(1)
}

func (m *MockOrderWriteQueries) ListPendingOrders(ctx context.Context, db sqlc.DBTX) ([]sqlc.Order, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Order), args.Error(1)
}

func (m *MockOrderWriteQueries) ExpireStaleOrders(ctx context.Context, db sqlc.DBTX, createdAt pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, createdAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderWriteQueries) ConfirmOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.ConfirmOrderParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func orderRow(t *testing.T, status string) sqlc.Order {
	t.Helper()
	return sqlc.Order{
		ID:        uuid.New(),
		UserID:    7,
		Code:      "BHEK-7-AB12",
		AmountTon: pgconv.DecimalToNumeric(decimal.RequireFromString("1.5")),
		CreatedAt: pgconv.TimeToPgtype(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		Status:    status,
	}
}

func TestOrderRepository_ReserveCode(t *testing.T) {
	code, err := order.NewCode("BHEK-7-AB12")
	require.NoError(t, err)
	now := time.Now().UTC()

	tests := []struct {
		name     string
		rows     int64
		mockErr  error
		want     bool
		wantKind infra.RepositoryErrorKind
	}{
		{name: "fresh code", rows: 1, want: true},
		{name: "code issued before", rows: 0, want: false},
		{
			name:     "database error",
			mockErr:  &pgconn.PgError{Code: "57014"},
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockOrderWriteQueries)
			q.On("InsertOrderCode", mock.Anything, mock.Anything, sqlc.InsertOrderCodeParams{
				Code:     "BHEK-7-AB12",
				IssuedAt: pgconv.TimeToPgtype(now),
			}).Return(tt.rows, tt.mockErr)

			got, err := NewOrderRepository(q).ReserveCode(context.Background(), nil, code, now)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestOrderRepository_Confirm(t *testing.T) {
	id := uuid.New()
	at := time.Now().UTC()

	tests := []struct {
		name    string
		rows    int64
		mockErr error
		want    bool
		wantErr bool
	}{
		{name: "transitioned", rows: 1, want: true},
		{name: "already terminal", rows: 0, want: false},
		{name: "database error", mockErr: assert.AnError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockOrderWriteQueries)
			q.On("ConfirmOrder", mock.Anything, mock.Anything, sqlc.ConfirmOrderParams{
				ID:          id,
				ConfirmedAt: pgconv.TimeToPgtype(at),
			}).Return(tt.rows, tt.mockErr)

			got, err := NewOrderRepository(q).Confirm(context.Background(), nil, id, at)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderRepository_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		row := orderRow(t, "PENDING")
		q := new(MockOrderWriteQueries)
		q.On("GetOrderByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		got, err := NewOrderRepository(q).FindByID(context.Background(), nil, row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, got.ID())
		assert.Equal(t, user.ID(7), got.Owner())
		assert.Equal(t, "BHEK-7-AB12", got.Code().String())
		assert.True(t, got.ExpectedAmount().Decimal().Equal(decimal.RequireFromString("1.5")))
		assert.True(t, got.IsPending())
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		q := new(MockOrderWriteQueries)
		q.On("GetOrderByID", mock.Anything, mock.Anything, id).Return(sqlc.Order{}, pgx.ErrNoRows)

		_, err := NewOrderRepository(q).FindByID(context.Background(), nil, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("corrupt status", func(t *testing.T) {
		row := orderRow(t, "REFUNDED")
		q := new(MockOrderWriteQueries)
		q.On("GetOrderByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		_, err := NewOrderRepository(q).FindByID(context.Background(), nil, row.ID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestOrderRepository_ListPending(t *testing.T) {
	rows := []sqlc.Order{orderRow(t, "PENDING"), orderRow(t, "PENDING")}
	rows[1].Code = "BHEK-8-CD34"
	rows[1].UserID = 8

	q := new(MockOrderWriteQueries)
	q.On("ListPendingOrders", mock.Anything, mock.Anything).Return(rows, nil)

	got, err := NewOrderRepository(q).ListPending(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, rows[0].ID, got[0].ID())
	assert.Equal(t, "BHEK-8-CD34", got[1].Code().String())
}

func TestOrderRepository_ExpireStale(t *testing.T) {
	cutoff := time.Now().UTC().Add(-24 * time.Hour)
	q := new(MockOrderWriteQueries)
	q.On("ExpireStaleOrders", mock.Anything, mock.Anything, pgconv.TimeToPgtype(cutoff)).Return(int64(3), nil)

	n, err := NewOrderRepository(q).ExpireStale(context.Background(), nil, cutoff)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
