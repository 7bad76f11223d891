package utils

import "math"

// Round2 rounds to two decimal places, the precision every price in the API
// responses uses.
func Round2(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return math.Round(v*100) / 100
}
