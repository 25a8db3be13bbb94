// Package ledger reconciles the transaction history of a single address into
// a balance-consistent, fiat-valued report.
package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/txledger7000-backend/internal/config"
	"github.com/goodnatureofminers/txledger7000-backend/internal/model"
)

const defaultFiatCurrency = "usd"

// Service builds transaction reports. Each run is a pure function of the
// address data, the report options and the price data at call time; nothing
// is shared between runs.
type Service struct {
	prices      PriceSource
	logger      *zap.Logger
	concurrency int
	now         func() time.Time
}

// NewService constructs the report engine. Concurrency bounds the parallel
// tickers lookups; values below one mean sequential lookups.
func NewService(prices PriceSource, logger *zap.Logger, concurrency int) *Service {
	return &Service{
		prices:      prices,
		logger:      logger,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// BuildReport classifies every transaction, reconstructs per-transaction
// balances anchored to the current balance, localizes timestamps, values the
// in-interval subset in fiat and returns the filtered report.
//
// The transactions in result must be ordered newest-first.
func (s *Service) BuildReport(ctx context.Context, result *model.AddressResult, opts config.ReportOptions) (*model.Report, error) {
	window, err := ResolveWindow(opts, s.now())
	if err != nil {
		return nil, err
	}

	currency := strings.ToLower(opts.FiatCurrency)
	if currency == "" {
		currency = defaultFiatCurrency
	}

	balanceSat, err := ParseSatoshis(result.Balance)
	if err != nil {
		return nil, fmt.Errorf("address balance: %w", err)
	}
	currentBalance := SatoshisToBTC(balanceSat)

	s.logger.Info("generating transaction report",
		zap.String("address", result.Address),
		zap.String("start", window.Start.Format(dayLayout)),
		zap.String("end", window.End.Format(dayLayout)),
		zap.String("timezone", window.Label),
		zap.String("fiat", currency),
		zap.Int("transactions", len(result.Transactions)))

	classified := make([]model.ClassifiedTransaction, 0, len(result.Transactions))
	for _, tx := range result.Transactions {
		c, err := Classify(result.Address, tx)
		if err != nil {
			return nil, err
		}
		classified = append(classified, c)
	}

	// Balance chaining needs the full unfiltered list; out-of-interval
	// transactions still move the accumulator.
	points := Reconstruct(currentBalance, classified)

	enriched := make([]model.EnrichedTransaction, len(classified))
	for i, c := range classified {
		day, timestamp, local := window.Localize(c.BlockTime)
		enriched[i] = model.EnrichedTransaction{
			ClassifiedTransaction: c,
			Day:                   day,
			Timestamp:             timestamp,
			Timezone:              window.Label,
			FiatAmount:            decimal.Zero,
			FiatFees:              decimal.Zero,
			BalanceBefore:         points[i].Before,
			BalanceAfter:          points[i].After,
			WithinInterval:        window.Contains(local),
		}
	}

	if err := s.valuate(ctx, currency, enriched); err != nil {
		return nil, err
	}

	rows := make([]model.EnrichedTransaction, 0, len(enriched))
	for _, tx := range enriched {
		if tx.WithinInterval {
			rows = append(rows, tx)
		}
	}

	s.logger.Info("transaction report ready",
		zap.String("address", result.Address),
		zap.Int("rows", len(rows)))

	return &model.Report{
		Address:      result.Address,
		StartDate:    window.Start,
		EndDate:      window.End,
		Timezone:     window.Label,
		FiatCurrency: currency,
		Transactions: rows,
	}, nil
}
