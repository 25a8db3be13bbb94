package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/txledger7000-backend/internal/model"
)

// addressSeparator joins counterparty addresses in a report field.
const addressSeparator = ", "

// Classify derives direction, net moved amount and counterparty addresses for
// one transaction relative to the tracked address. Every transaction yields
// exactly one classification; transactions that cannot be fiat-valued later
// are still classified here.
func Classify(tracked string, tx model.Transaction) (model.ClassifiedTransaction, error) {
	if tracked == "" {
		return model.ClassifiedTransaction{}, errors.New("tracked address is required")
	}
	if tx.TxID == "" {
		return model.ClassifiedTransaction{}, errors.New("transaction missing txid")
	}
	if tx.BlockTime <= 0 {
		return model.ClassifiedTransaction{}, fmt.Errorf("transaction %s missing block time", tx.TxID)
	}

	classified := model.ClassifiedTransaction{Transaction: tx}

	classified.Type = model.TypeConfirmed
	if tx.Confirmations == 0 {
		classified.Type = model.TypeUnconfirmed
	}

	// Fee is recorded regardless of direction; an absent field means zero.
	fees := decimal.Zero
	if tx.Fees != "" {
		sat, err := ParseSatoshis(tx.Fees)
		if err != nil {
			return model.ClassifiedTransaction{}, fmt.Errorf("transaction %s fees: %w", tx.TxID, err)
		}
		fees = sat
	}
	classified.Fees = SatoshisToBTC(fees)

	if isSender(tracked, tx.Vin) {
		return classifyOutgoing(tracked, tx, classified)
	}
	return classifyIncoming(tracked, tx, classified)
}

func classifyOutgoing(tracked string, tx model.Transaction, classified model.ClassifiedTransaction) (model.ClassifiedTransaction, error) {
	classified.Direction = model.DirectionOutgoing

	amountIn := decimal.Zero
	for _, vin := range tx.Vin {
		if !containsAddress(vin.Addresses, tracked) {
			continue
		}
		value, err := ParseSatoshis(vin.Value)
		if err != nil {
			return model.ClassifiedTransaction{}, fmt.Errorf("transaction %s input %d: %w", tx.TxID, vin.N, err)
		}
		amountIn = amountIn.Add(value)
	}

	// A transaction that partially returns change to the tracked address only
	// moved the difference out; subtracting the sent-back outputs isolates the
	// externally spent portion.
	net := amountIn
	for _, vout := range tx.Vout {
		if !containsAddress(vout.Addresses, tracked) {
			continue
		}
		classified.SelfTransfer = true
		value, err := ParseSatoshis(vout.Value)
		if err != nil {
			return model.ClassifiedTransaction{}, fmt.Errorf("transaction %s output %d: %w", tx.TxID, vout.N, err)
		}
		net = net.Sub(value)
	}

	classified.Amount = SatoshisToBTC(net)
	classified.FromAddresses = tracked

	recipients := make([]string, 0, len(tx.Vout))
	for _, vout := range tx.Vout {
		if containsAddress(vout.Addresses, tracked) || len(vout.Addresses) == 0 {
			continue
		}
		recipients = append(recipients, vout.Addresses[0])
	}
	classified.ToAddresses = joinDistinct(recipients)

	return classified, nil
}

func classifyIncoming(tracked string, tx model.Transaction, classified model.ClassifiedTransaction) (model.ClassifiedTransaction, error) {
	classified.Direction = model.DirectionIncoming

	amount := decimal.Zero
	for _, vout := range tx.Vout {
		if !containsAddress(vout.Addresses, tracked) {
			continue
		}
		value, err := ParseSatoshis(vout.Value)
		if err != nil {
			return model.ClassifiedTransaction{}, fmt.Errorf("transaction %s output %d: %w", tx.TxID, vout.N, err)
		}
		amount = amount.Add(value)
	}
	classified.Amount = SatoshisToBTC(amount)

	senders := make([]string, 0, len(tx.Vin))
	for _, vin := range tx.Vin {
		if len(vin.Addresses) == 0 {
			continue
		}
		senders = append(senders, vin.Addresses[0])
	}
	classified.FromAddresses = joinDistinct(senders)
	classified.ToAddresses = tracked

	return classified, nil
}

func isSender(tracked string, vins []model.Vin) bool {
	for _, vin := range vins {
		if containsAddress(vin.Addresses, tracked) {
			return true
		}
	}
	return false
}

func containsAddress(addresses []string, address string) bool {
	for _, a := range addresses {
		if a == address {
			return true
		}
	}
	return false
}

// joinDistinct joins addresses preserving first-seen order.
func joinDistinct(addresses []string) string {
	seen := make(map[string]struct{}, len(addresses))
	distinct := addresses[:0]
	for _, a := range addresses {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		distinct = append(distinct, a)
	}
	return strings.Join(distinct, addressSeparator)
}
