package rustgen

import (
	"math/big"
)

// variantName derives the constant name of an enumerated value: a "negative"
// prefix plus magnitude below zero, a fixed zero marker, a "positive" prefix
// plus magnitude above it.
func variantName(v *big.Int) string {
	switch v.Sign() {
	case -1:
		return "N" + new(big.Int).Abs(v).String()
	case 0:
		return "Z"
	default:
		return "P" + v.String()
	}
}
