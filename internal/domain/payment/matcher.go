package payment

import (
	"strings"

	"premium-reconciler/internal/domain/order"

	"github.com/shopspring/decimal"
)

// Epsilon absorbs rounding in the reference unit.
var Epsilon = decimal.New(1, -9)

type Match struct {
	Order       *order.Order
	Transaction Transaction
}

// FindMatches pairs pending orders with satisfying transactions for destination.
//
// The first satisfying transaction in feed order wins for each order. A
// transaction is not consumed by a match: two orders sharing a code would both
// match it, and store-level code uniqueness is what prevents that.
// FindMatches has no side effects and does not mutate its inputs.
func FindMatches(destination string, pending []*order.Order, txs []Transaction) []Match {
	var matches []Match
	for _, o := range pending {
		if o == nil || !o.IsPending() {
			continue
		}
		for _, tx := range txs {
			if satisfies(destination, o, tx) {
				matches = append(matches, Match{Order: o, Transaction: tx})
				break
			}
		}
	}
	return matches
}

func satisfies(destination string, o *order.Order, tx Transaction) bool {
	if tx.Destination != destination {
		return false
	}
	if strings.TrimSpace(tx.Comment) != o.Code().String() {
		return false
	}
	return tx.Value.Add(Epsilon).GreaterThanOrEqual(o.ExpectedAmount().Decimal())
}
