package model

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// AddressResult is the Blockbook bb_getaddress payload for a single address.
// Transactions are ordered newest-first; balance reconstruction depends on
// that order and the engine never re-sorts them.
type AddressResult struct {
	Page               int           `json:"page"`
	TotalPages         int           `json:"totalPages"`
	ItemsOnPage        int           `json:"itemsOnPage"`
	Address            string        `json:"address"`
	Balance            string        `json:"balance"`
	TotalReceived      string        `json:"totalReceived"`
	TotalSent          string        `json:"totalSent"`
	UnconfirmedBalance string        `json:"unconfirmedBalance"`
	UnconfirmedTxs     int           `json:"unconfirmedTxs"`
	Txs                int           `json:"txs"`
	Transactions       []Transaction `json:"transactions"`
}

// Transaction is a raw Blockbook transaction. Values are satoshi strings.
type Transaction struct {
	TxID          string `json:"txid"`
	Version       int32  `json:"version"`
	Vin           []Vin  `json:"vin"`
	Vout          []Vout `json:"vout"`
	BlockHash     string `json:"blockHash,omitempty"`
	BlockHeight   int64  `json:"blockHeight"`
	Confirmations uint32 `json:"confirmations"`
	BlockTime     int64  `json:"blockTime"`
	Size          uint32 `json:"size"`
	VSize         uint32 `json:"vsize"`
	Value         string `json:"value"`
	ValueIn       string `json:"valueIn"`
	Fees          string `json:"fees"`
	Hex           string `json:"hex,omitempty"`
}

// Vin is a single transaction input. Addresses may be empty when the input
// script does not resolve to an address.
type Vin struct {
	TxID      string   `json:"txid"`
	Vout      uint32   `json:"vout,omitempty"`
	Sequence  int64    `json:"sequence"`
	N         int      `json:"n"`
	Addresses []string `json:"addresses"`
	IsAddress bool     `json:"isAddress"`
	Value     string   `json:"value"`
	Hex       string   `json:"hex,omitempty"`
	IsOwn     bool     `json:"isOwn,omitempty"`
}

// Vout is a single transaction output.
type Vout struct {
	Value     string   `json:"value"`
	N         int      `json:"n"`
	Hex       string   `json:"hex"`
	Addresses []string `json:"addresses"`
	IsAddress bool     `json:"isAddress"`
	Spent     bool     `json:"spent,omitempty"`
	IsOwn     bool     `json:"isOwn,omitempty"`
}

// Tickers is the bb_gettickers payload: fiat rates quoted at a timestamp.
// Rates are decoded as json.Number so that no binary float enters the money
// path.
type Tickers struct {
	Timestamp int64                  `json:"ts"`
	Rates     map[string]json.Number `json:"rates"`
}

// Rate returns the quoted rate for a fiat currency code.
func (t *Tickers) Rate(currency string) (decimal.Decimal, error) {
	raw, ok := t.Rates[currency]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("no %q rate in tickers response", currency)
	}
	rate, err := decimal.NewFromString(raw.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse %q rate: %w", currency, err)
	}
	return rate, nil
}
