package report

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodnatureofminers/txledger7000-backend/internal/model"
)

func testReport() *model.Report {
	tx := model.EnrichedTransaction{
		ClassifiedTransaction: model.ClassifiedTransaction{
			Transaction: model.Transaction{TxID: "tx-newest"},
			Direction:   model.DirectionOutgoing,
			Type:        model.TypeConfirmed,
			Amount:      decimal.RequireFromString("0.3"),
			Fees:        decimal.RequireFromString("0.0001"),

			FromAddresses: "bc1tracked",
			ToAddresses:   "bc1recipient",
		},
		Day:            "2024-03-18",
		Timestamp:      "2024-03-18T16:40:00Z",
		Timezone:       "UTC",
		FiatAmount:     decimal.RequireFromString("19500"),
		FiatFees:       decimal.RequireFromString("6.5"),
		BalanceBefore:  decimal.RequireFromString("1.3"),
		BalanceAfter:   decimal.RequireFromString("1.0"),
		WithinInterval: true,
	}

	return &model.Report{
		Address:      "bc1tracked",
		StartDate:    time.Date(2024, time.March, 18, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, time.March, 19, 23, 59, 59, 0, time.UTC),
		Timezone:     "UTC",
		FiatCurrency: "usd",
		Transactions: []model.EnrichedTransaction{tx},
	}
}

func TestRender(t *testing.T) {
	lines := strings.Split(string(Render(testReport())), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t,
		"Day;Timestamp;Timezone;Tx;Type;Direction;From;To;Amount [BTC];Amount [USD];Fees [BTC];Fees [USD];Pre Balance;Post Balance",
		lines[0])
	assert.Equal(t,
		"2024-03-18;2024-03-18T16:40:00Z;UTC;tx-newest;Confirmed;Outgoing;bc1tracked;bc1recipient;0.30000000;19500.00;0.00010000;6.50;1.30000000;1.00000000",
		lines[1])
}

func TestRenderEmptyReport(t *testing.T) {
	rep := testReport()
	rep.Transactions = nil

	lines := strings.Split(string(Render(rep)), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "Day;Timestamp;"))
}

func TestRenderPreservesRowOrder(t *testing.T) {
	rep := testReport()
	second := rep.Transactions[0]
	second.TxID = "tx-older"
	rep.Transactions = append(rep.Transactions, second)

	lines := strings.Split(string(Render(rep)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], ";tx-newest;")
	assert.Contains(t, lines[2], ";tx-older;")
}

func TestFileName(t *testing.T) {
	assert.Equal(t,
		"transaction_report_bc1tracked_2024-March-18_2024-March-19.csv",
		FileName(testReport()))
}
