package utils

// QuantityByFraction returns how much of the base asset the given fraction of
// a quote balance buys at price. Fees are not deducted.
func QuantityByFraction(balance float64, price float64, fraction float64) float64 {
	// Handle edge cases
	if price <= 0 || balance <= 0 || fraction <= 0 {
		return 0
	}

	return balance * fraction / price
}
