package measure

import (
	"math"

	"github.com/arloliu/ent/format"
	"github.com/arloliu/ent/freq"
)

// Entropy returns the Shannon entropy of the table in bits per symbol.
//
// Symbols that never occurred contribute nothing; an empty table has entropy 0.
// The result lies in [0, log2(alphabet)].
func Entropy(t freq.Table) float64 {
	if t.Total() == 0 {
		return 0
	}

	total := float64(t.Total())
	var entropy float64
	for symbol := 0; symbol < t.Symbols(); symbol++ {
		count := t.Count(symbol)
		if count == 0 {
			continue
		}
		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}

	return entropy
}

// CompressionPercent returns the space an ideal entropy coder would save, in percent:
// 100*(1-entropy) in bit mode and 100*(1-entropy/8) in byte mode.
func CompressionPercent(entropy float64, mode format.Mode) float64 {
	if mode == format.ModeBit {
		return 100.0 * (1.0 - entropy)
	}

	return 100.0 * (1.0 - entropy/8.0)
}
