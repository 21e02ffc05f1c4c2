package measure

import "math"

// Undefined is the sentinel SerialCorrelation returns when the coefficient does not exist.
const Undefined = -99999.0

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v float64) bool {
	return v == Undefined
}

// SerialCorrelation returns the lag-1 Pearson correlation between consecutive bytes,
// pairing data[i-1] with data[i] for every i in [1, len(data)).
//
// The coefficient is computed with the sum formula
//
//	num   = n*Σxy - Σx*Σy
//	denom = sqrt((n*Σx² - (Σx)²) * (n*Σy² - (Σy)²))
//
// with n = len(data)-1. It returns Undefined when fewer than two bytes are given or the
// denominator is not strictly positive (constant input); the result is never NaN.
func SerialCorrelation(data []byte) float64 {
	if len(data) < 2 {
		return Undefined
	}

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := 1; i < len(data); i++ {
		x := float64(data[i-1])
		y := float64(data[i])
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
		sumY2 += y * y
	}

	n := float64(len(data) - 1)
	num := n*sumXY - sumX*sumY
	denom := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))

	// a NaN denominator fails the comparison as well
	if !(denom > 0) {
		return Undefined
	}

	return num / denom
}
