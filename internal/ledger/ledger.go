package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/txledger7000-backend/internal/model"
)

// BalancePoint is the tracked address balance immediately before and after a
// transaction, in display units.
type BalancePoint struct {
	Before decimal.Decimal
	After  decimal.Decimal
}

// Reconstruct walks the classified transactions in their given newest-first
// order and derives per-transaction balances anchored to the current balance.
// The accumulator holds the cumulative net change relative to "now"; undoing
// it yields the balance as it stood just before each transaction.
//
// Callers must guarantee the newest-first order: the chaining is internally
// consistent along any order, but only reflects real chronology for the
// correct one.
func Reconstruct(currentBalance decimal.Decimal, txs []model.ClassifiedTransaction) []BalancePoint {
	points := make([]BalancePoint, len(txs))
	cumulative := decimal.Zero

	for i, tx := range txs {
		if tx.Direction == model.DirectionOutgoing {
			cumulative = cumulative.Sub(tx.Amount)
		} else {
			cumulative = cumulative.Add(tx.Amount)
		}

		before := currentBalance.Sub(cumulative)

		after := before
		if tx.Direction == model.DirectionOutgoing {
			after = before.Sub(tx.Amount)
		} else {
			after = before.Add(tx.Amount)
		}

		points[i] = BalancePoint{Before: before, After: after}
	}

	return points
}
