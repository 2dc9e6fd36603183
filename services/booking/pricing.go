package booking

import "math"

// RoundPrice rounds a computed total to two decimals. This mirrors the
// pricing the marketplace displays; it is not fixed-point arithmetic and
// should not feed a billing ledger without revisiting.
func RoundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}
