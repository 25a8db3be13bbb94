package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction tells whether the tracked address spent or received funds.
type Direction string

const (
	DirectionIncoming Direction = "Incoming"
	DirectionOutgoing Direction = "Outgoing"
)

// ConfirmationType marks whether a transaction is confirmed on chain.
type ConfirmationType string

const (
	TypeConfirmed   ConfirmationType = "Confirmed"
	TypeUnconfirmed ConfirmationType = "Unconfirmed"
)

// ClassifiedTransaction is a raw transaction with direction, net amount and
// counterparties derived relative to the tracked address. Amounts are in
// display units (BTC).
type ClassifiedTransaction struct {
	Transaction

	Direction     Direction
	Type          ConfirmationType
	SelfTransfer  bool
	Amount        decimal.Decimal
	Fees          decimal.Decimal
	FromAddresses string
	ToAddresses   string
}

// EnrichedTransaction extends a classified transaction with localized
// timestamps, reconstructed balances and fiat valuation.
type EnrichedTransaction struct {
	ClassifiedTransaction

	Day            string
	Timestamp      string
	Timezone       string
	FiatAmount     decimal.Decimal
	FiatFees       decimal.Decimal
	BalanceBefore  decimal.Decimal
	BalanceAfter   decimal.Decimal
	WithinInterval bool
}

// Report is the final in-interval transaction set for one address and window.
// Transactions keep the source order, newest-first.
type Report struct {
	Address      string
	StartDate    time.Time
	EndDate      time.Time
	Timezone     string
	FiatCurrency string
	Transactions []EnrichedTransaction
}
