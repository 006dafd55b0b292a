package readstore

import (
	"context"

	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/infra"
	sqlc "premium-reconciler/internal/infra/sqlc/generated"
	"premium-reconciler/internal/pkg/pgconv"
	"premium-reconciler/internal/usecase/queries"
)

type OrderViewQueries interface {
	ListRecentOrdersByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRecentOrdersByUserParams) ([]sqlc.Order, error)
	GetPendingOrderByUser(ctx context.Context, db sqlc.DBTX, userID int64) (sqlc.Order, error)
}

type OrderReadStore struct {
	queries OrderViewQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderViewQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindRecentByOwner(ctx context.Context, owner user.ID, limit int32) ([]*queries.OrderView, error) {
	rows, err := r.queries.ListRecentOrdersByUser(ctx, r.db, sqlc.ListRecentOrdersByUserParams{
		UserID: owner.Int64(),
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent orders", err)
	}

	result := make([]*queries.OrderView, 0, len(rows))
	for _, row := range rows {
		view, err := toOrderView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode order", err, infra.KindDBFailure)
		}
		result = append(result, view)
	}
	return result, nil
}

func (r *OrderReadStore) FindPendingByOwner(ctx context.Context, owner user.ID) (*queries.OrderView, error) {
	row, err := r.queries.GetPendingOrderByUser(ctx, r.db, owner.Int64())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pending order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pending order", err)
	}

	view, err := toOrderView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode order", err, infra.KindDBFailure)
	}
	return view, nil
}

func toOrderView(row sqlc.Order) (*queries.OrderView, error) {
	amount, err := pgconv.DecimalFromNumeric(row.AmountTon)
	if err != nil {
		return nil, err
	}
	return &queries.OrderView{
		ID:          row.ID,
		Owner:       row.UserID,
		Code:        row.Code,
		AmountTON:   amount,
		Status:      row.Status,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		ConfirmedAt: pgconv.TimePtrFromPgtype(row.ConfirmedAt),
	}, nil
}
