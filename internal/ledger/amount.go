package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// satoshiScale is the number of decimal digits between satoshis and BTC.
const satoshiScale = 8

// ParseSatoshis parses a base-unit value string as an exact decimal.
func ParseSatoshis(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse satoshi value %q: %w", value, err)
	}
	return d, nil
}

// SatoshisToBTC converts base units to display units. The conversion is a
// decimal exponent shift and therefore exact.
func SatoshisToBTC(sat decimal.Decimal) decimal.Decimal {
	return sat.Shift(-satoshiScale)
}

// BTCToSatoshis converts display units back to base units.
func BTCToSatoshis(btc decimal.Decimal) decimal.Decimal {
	return btc.Shift(satoshiScale)
}
