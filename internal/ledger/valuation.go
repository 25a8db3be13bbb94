package ledger

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/txledger7000-backend/internal/model"
	"github.com/goodnatureofminers/txledger7000-backend/pkg/workerpool"
)

// valuate fills fiat amount and fee for every in-interval transaction with
// one tickers lookup per transaction. Lookups fan out concurrently and are
// re-joined by index, so row order and balance math are unaffected by
// completion order. Any lookup failure aborts the whole run: a report with
// silently zeroed fiat fields for some rows would be misleading.
func (s *Service) valuate(ctx context.Context, currency string, txs []model.EnrichedTransaction) error {
	pending := make([]int, 0, len(txs))
	for i := range txs {
		if txs[i].WithinInterval {
			pending = append(pending, i)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	workers := s.concurrency
	if workers <= 0 {
		workers = 1
	}
	if workers > len(pending) {
		workers = len(pending)
	}

	return workerpool.ForEach(ctx, workers, len(pending), func(ctx context.Context, n int) error {
		tx := &txs[pending[n]]

		tickers, err := s.prices.GetTickers(ctx, tx.BlockTime)
		if err != nil {
			return fmt.Errorf("fetch tickers for transaction %s: %w", tx.TxID, err)
		}
		rate, err := tickers.Rate(currency)
		if err != nil {
			return fmt.Errorf("transaction %s: %w", tx.TxID, err)
		}

		tx.FiatAmount = tx.Amount.Mul(rate)
		tx.FiatFees = tx.Fees.Mul(rate)
		return nil
	})
}
