package payment

import (
	"github.com/shopspring/decimal"
)

// Transaction is one inbound transfer as seen on the ledger. It lives only for
// the duration of a reconciliation cycle.
type Transaction struct {
	Hash        string
	Destination string
	Comment     string
	// Value is in TON. A record whose value could not be read carries zero,
	// which can never satisfy an order.
	Value decimal.Decimal
}

const nanoExp = -9

// TONFromNano converts ledger base units to TON exactly.
func TONFromNano(nano int64) decimal.Decimal {
	return decimal.New(nano, nanoExp)
}
