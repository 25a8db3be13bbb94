package ledger

import (
	"context"

	"github.com/goodnatureofminers/txledger7000-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// PriceSource quotes fiat rates at a given Unix timestamp. The quoted
	// rate is only valid for its own timestamp; the engine performs one
	// lookup per in-interval transaction with no caching in between.
	PriceSource interface {
		GetTickers(ctx context.Context, timestamp int64) (*model.Tickers, error)
	}
)
