package measure

import (
	"math"

	"github.com/arloliu/ent/format"
	"github.com/arloliu/ent/freq"
)

// ChiSquare computes the chi-square statistic of the table against a uniform distribution
// and its upper-tail p-value.
//
// The expected count of every symbol is total/alphabet and the sum runs over the whole
// alphabet, including symbols with zero observations. For an empty table the expected count
// is zero and both results are NaN.
//
// Returns:
//   - chisq: Σ (observed - expected)² / expected
//   - pValue: see PValue
func ChiSquare(t freq.Table) (chisq, pValue float64) {
	expected := float64(t.Total()) / float64(t.Symbols())

	for symbol := 0; symbol < t.Symbols(); symbol++ {
		diff := float64(t.Count(symbol)) - expected
		chisq += diff * diff / expected
	}

	return chisq, PValue(chisq, t.Mode())
}

// PValue approximates the probability that a uniform source would produce a chi-square
// statistic at least as large as chisq.
//
// It uses z = sqrt(chisq - df) and returns 1 - 0.5*erfc(-z/√2). When chisq is below the
// mode's degrees of freedom the square root argument is negative and the result is NaN;
// callers decide how to present that.
func PValue(chisq float64, mode format.Mode) float64 {
	z := math.Sqrt(chisq - float64(mode.DegreesOfFreedom()))

	return 1.0 - 0.5*math.Erfc(-z/math.Sqrt2)
}
