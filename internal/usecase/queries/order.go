package queries

import (
	"context"

	"premium-reconciler/internal/domain/order"
	"premium-reconciler/internal/domain/payment"
	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/infra"
	"premium-reconciler/internal/pkg/errs"
)

var ErrNoPendingOrder = errs.New("no pending order")

type orderQueriesImpl struct {
	store       OrderReadStore
	destination string
}

func NewOrderQueries(store OrderReadStore, settings payment.Settings) OrderQueries {
	return &orderQueriesImpl{store: store, destination: settings.Destination}
}

// RecentForOwner lists newest orders first.
func (q *orderQueriesImpl) RecentForOwner(ctx context.Context, owner user.ID, limit int) ([]*OrderView, error) {
	limit = ValidateLimit(limit)
	return q.store.FindRecentByOwner(ctx, owner, int32(limit)) // #nosec G115 -- bounded by ValidateLimit
}

func (q *orderQueriesImpl) PendingInstructions(ctx context.Context, owner user.ID) (*PaymentInstructions, error) {
	view, err := q.store.FindPendingByOwner(ctx, owner)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoPendingOrder
		}
		return nil, err
	}
	return InstructionsFor(q.destination, view)
}

// InstructionsFor renders payment instructions for view.
func InstructionsFor(destination string, view *OrderView) (*PaymentInstructions, error) {
	code, err := order.NewCode(view.Code)
	if err != nil {
		return nil, err
	}
	amount, err := order.NewAmount(view.AmountTON)
	if err != nil {
		return nil, err
	}
	return &PaymentInstructions{
		OrderID:     view.ID,
		Code:        view.Code,
		AmountTON:   view.AmountTON,
		Destination: destination,
		Links:       payment.BuildLinks(destination, amount, code),
	}, nil
}

func ToOrderView(o *order.Order) *OrderView {
	return &OrderView{
		ID:          o.ID(),
		Owner:       o.Owner().Int64(),
		Code:        o.Code().String(),
		AmountTON:   o.ExpectedAmount().Decimal(),
		Status:      o.Status().String(),
		CreatedAt:   o.CreatedAt(),
		ConfirmedAt: o.ConfirmedAt(),
	}
}
