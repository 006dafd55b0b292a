package repository

import (
	"context"
	"time"

	"premium-reconciler/internal/domain/order"
	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/infra"
	"premium-reconciler/internal/infra/repository/converter"
	sqlc "premium-reconciler/internal/infra/sqlc/generated"
	"premium-reconciler/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderWriteQueries interface {
	InsertOrderCode(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOrderCodeParams) (int64, error)
	DeletePendingOrdersByUser(ctx context.Context, db sqlc.DBTX, userID int64) (int64, error)
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) error
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Order, error)
	ListPendingOrders(ctx context.Context, db sqlc.DBTX) ([]sqlc.Order, error)
	ExpireStaleOrders(ctx context.Context, db sqlc.DBTX, createdAt pgtype.Timestamptz) (int64, error)
	ConfirmOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.ConfirmOrderParams) (int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{queries: queries}
}

// ReserveCode reports false when code was issued before, to any owner.
func (r *OrderRepository) ReserveCode(ctx context.Context, tx sqlc.DBTX, code order.Code, issuedAt time.Time) (bool, error) {
	n, err := r.queries.InsertOrderCode(ctx, tx, sqlc.InsertOrderCodeParams{
		Code:     code.String(),
		IssuedAt: pgconv.TimeToPgtype(issuedAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to reserve order code", err)
	}
	return n == 1, nil
}

func (r *OrderRepository) DeletePendingByOwner(ctx context.Context, tx sqlc.DBTX, owner user.ID) (int64, error) {
	n, err := r.queries.DeletePendingOrdersByUser(ctx, tx, owner.Int64())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete pending orders", err)
	}
	return n, nil
}

func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	if err := r.queries.CreateOrder(ctx, tx, converter.OrderToInfra(o)); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}
	o, err := converter.OrderFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode order", err, infra.KindDBFailure)
	}
	return o, nil
}

func (r *OrderRepository) ListPending(ctx context.Context, tx sqlc.DBTX) ([]*order.Order, error) {
	rows, err := r.queries.ListPendingOrders(ctx, tx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending orders", err)
	}
	orders, err := converter.OrdersFromInfra(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode pending orders", err, infra.KindDBFailure)
	}
	return orders, nil
}

// ExpireStale expires every pending order created strictly before cutoff.
func (r *OrderRepository) ExpireStale(ctx context.Context, tx sqlc.DBTX, cutoff time.Time) (int64, error) {
	n, err := r.queries.ExpireStaleOrders(ctx, tx, pgconv.TimeToPgtype(cutoff))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire stale orders", err)
	}
	return n, nil
}

func (r *OrderRepository) Confirm(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) (bool, error) {
	n, err := r.queries.ConfirmOrder(ctx, tx, sqlc.ConfirmOrderParams{
		ID:          id,
		ConfirmedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to confirm order", err)
	}
	return n == 1, nil
}
