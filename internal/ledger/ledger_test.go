package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/goodnatureofminers/txledger7000-backend/internal/model"
)

func classifiedTx(direction model.Direction, amount string) model.ClassifiedTransaction {
	return model.ClassifiedTransaction{
		Direction: direction,
		Amount:    decimal.RequireFromString(amount),
	}
}

func TestReconstructSingleOutgoing(t *testing.T) {
	current := decimal.RequireFromString("1.0")
	txs := []model.ClassifiedTransaction{
		classifiedTx(model.DirectionOutgoing, "0.3"),
	}

	points := Reconstruct(current, txs)
	require.Len(t, points, 1)

	requireAmount(t, "1.3", points[0].Before)
	requireAmount(t, "1.0", points[0].After)
}

func TestReconstructChainsAcrossDirections(t *testing.T) {
	current := decimal.RequireFromString("1.0")
	txs := []model.ClassifiedTransaction{
		classifiedTx(model.DirectionOutgoing, "0.3"),
		classifiedTx(model.DirectionIncoming, "0.5"),
	}

	points := Reconstruct(current, txs)
	require.Len(t, points, 2)

	requireAmount(t, "1.3", points[0].Before)
	requireAmount(t, "1.0", points[0].After)
	requireAmount(t, "0.8", points[1].Before)
	requireAmount(t, "1.3", points[1].After)
}

func TestReconstructChainingInvariant(t *testing.T) {
	// The reconstructed ledger must chain without gaps: each transaction's
	// post-balance equals the next-newer transaction's pre-balance, and the
	// newest transaction's post-balance equals the supplied current balance.
	current := decimal.RequireFromString("2.71828182")
	txs := []model.ClassifiedTransaction{
		classifiedTx(model.DirectionOutgoing, "0.00000001"),
		classifiedTx(model.DirectionIncoming, "1.5"),
		classifiedTx(model.DirectionOutgoing, "0.33333333"),
		classifiedTx(model.DirectionOutgoing, "2.0"),
		classifiedTx(model.DirectionIncoming, "0.1"),
		classifiedTx(model.DirectionIncoming, "3.99999999"),
	}

	points := Reconstruct(current, txs)
	require.Len(t, points, len(txs))

	require.True(t, points[0].After.Equal(current),
		"newest post-balance %s != current balance %s", points[0].After, current)

	for i := 0; i < len(points)-1; i++ {
		require.True(t, points[i+1].After.Equal(points[i].Before),
			"tx %d post-balance %s != tx %d pre-balance %s",
			i+1, points[i+1].After, i, points[i].Before)
	}
}

func TestReconstructEmpty(t *testing.T) {
	points := Reconstruct(decimal.RequireFromString("1.0"), nil)
	require.Empty(t, points)
}
