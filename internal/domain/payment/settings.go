package payment

import (
	"time"

	"premium-reconciler/internal/domain/order"
)

// Settings is the immutable payment configuration shared by order creation
// and reconciliation.
type Settings struct {
	Destination string
	Price       order.Amount
	GrantPeriod time.Duration
	Retention   time.Duration
}
