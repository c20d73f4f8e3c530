package impl

import "math"

// roundMoney rounds to two decimal places, the precision wallet balances and
// fees are stored with.
func roundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// clampFee bounds a raw fee to the configured [min, max] window.
func clampFee(fee, minFee, maxFee float64) float64 {
	if fee < minFee {
		return minFee
	}
	if fee > maxFee {
		return maxFee
	}

	return fee
}
