package converter

import (
	"premium-reconciler/internal/domain/order"
	"premium-reconciler/internal/domain/user"
	sqlc "premium-reconciler/internal/infra/sqlc/generated"
	"premium-reconciler/internal/pkg/errs"
	"premium-reconciler/internal/pkg/pgconv"
)

func OrderToInfra(o *order.Order) sqlc.CreateOrderParams {
	return sqlc.CreateOrderParams{
		ID:        o.ID(),
		UserID:    o.Owner().Int64(),
		Code:      o.Code().String(),
		AmountTon: pgconv.DecimalToNumeric(o.ExpectedAmount().Decimal()),
		CreatedAt: pgconv.TimeToPgtype(o.CreatedAt()),
	}
}

func OrderFromInfra(row sqlc.Order) (*order.Order, error) {
	code, err := order.NewCode(row.Code)
	if err != nil {
		return nil, errs.Wrapf(err, "order %s", row.ID)
	}
	raw, err := pgconv.DecimalFromNumeric(row.AmountTon)
	if err != nil {
		return nil, errs.Wrapf(err, "order %s amount", row.ID)
	}
	amount, err := order.NewAmount(raw)
	if err != nil {
		return nil, errs.Wrapf(err, "order %s amount", row.ID)
	}
	status := order.Status(row.Status)
	if !status.IsValid() {
		return nil, errs.Newf("order %s has unknown status %q", row.ID, row.Status)
	}

	return order.ReconstructOrder(
		row.ID,
		user.ID(row.UserID),
		code,
		amount,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.ConfirmedAt),
		status,
	), nil
}

func OrdersFromInfra(rows []sqlc.Order) ([]*order.Order, error) {
	out := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		o, err := OrderFromInfra(row)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}
