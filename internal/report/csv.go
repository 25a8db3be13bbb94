// Package report renders a transaction report into its delimited artifact.
package report

import (
	"fmt"
	"strings"

	"github.com/goodnatureofminers/txledger7000-backend/internal/model"
)

const (
	baseCurrencyLabel = "BTC"
	fileDateLayout    = "2006-January-02"
	fileExtension     = "csv"
)

// Render produces the semicolon-delimited report body: one header line plus
// one line per in-interval transaction, in the report's (newest-first) order.
// Base amounts carry 8 fractional digits, fiat amounts 2.
func Render(r *model.Report) []byte {
	fiat := strings.ToUpper(r.FiatCurrency)

	var b strings.Builder
	fmt.Fprintf(&b,
		"Day;Timestamp;Timezone;Tx;Type;Direction;From;To;Amount [%s];Amount [%s];Fees [%s];Fees [%s];Pre Balance;Post Balance",
		baseCurrencyLabel, fiat, baseCurrencyLabel, fiat)

	for _, tx := range r.Transactions {
		b.WriteByte('\n')
		fmt.Fprintf(&b, "%s;%s;%s;%s;%s;%s;%s;%s;%s;%s;%s;%s;%s;%s",
			tx.Day,
			tx.Timestamp,
			tx.Timezone,
			tx.TxID,
			tx.Type,
			tx.Direction,
			tx.FromAddresses,
			tx.ToAddresses,
			tx.Amount.StringFixed(8),
			tx.FiatAmount.StringFixed(2),
			tx.Fees.StringFixed(8),
			tx.FiatFees.StringFixed(2),
			tx.BalanceBefore.StringFixed(8),
			tx.BalanceAfter.StringFixed(8))
	}

	return []byte(b.String())
}

// FileName derives the deterministic artifact name from the address and the
// window boundary dates.
func FileName(r *model.Report) string {
	return fmt.Sprintf("transaction_report_%s_%s_%s.%s",
		r.Address,
		r.StartDate.Format(fileDateLayout),
		r.EndDate.Format(fileDateLayout),
		fileExtension)
}
