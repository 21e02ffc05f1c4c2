package freq

import (
	"math/bits"

	"github.com/arloliu/ent/format"
)

// Occurrence is one row of a byte-mode frequency table.
type Occurrence struct {
	Value    byte
	Count    int
	Fraction float64
}

// BitOccurrence is one row of a bit-mode frequency table. Index 0 of the pair describes
// zero bits, index 1 describes one bits.
type BitOccurrence struct {
	Count    int
	Fraction float64
}

// Table holds per-symbol occurrence counts for one buffer in one mode.
type Table struct {
	counts [256]int
	total  int
	mode   format.Mode
}

// Count tabulates data in the given mode with a single pass over the buffer.
//
// Parameters:
//   - data: Input buffer (not modified)
//   - mode: format.ModeByte or format.ModeBit; any other value is treated as byte mode
//
// Returns:
//   - Table: Occurrence counts for every symbol of the mode's alphabet
func Count(data []byte, mode format.Mode) Table {
	if mode != format.ModeBit {
		mode = format.ModeByte
	}

	t := Table{mode: mode}

	if mode == format.ModeBit {
		ones := 0
		for _, b := range data {
			ones += bits.OnesCount8(b)
		}
		t.total = 8 * len(data)
		t.counts[1] = ones
		t.counts[0] = t.total - ones

		return t
	}

	for _, b := range data {
		t.counts[b]++
	}
	t.total = len(data)

	return t
}

// Mode returns the mode the table was counted in.
func (t Table) Mode() format.Mode {
	return t.mode
}

// Total returns the number of symbols counted: len(data) in byte mode, 8*len(data) in bit mode.
func (t Table) Total() int {
	return t.total
}

// Symbols returns the alphabet size of the table's mode.
func (t Table) Symbols() int {
	return t.mode.AlphabetSize()
}

// Count returns the occurrences of symbol, or 0 when symbol is outside the alphabet.
func (t Table) Count(symbol int) int {
	if symbol < 0 || symbol >= t.Symbols() {
		return 0
	}

	return t.counts[symbol]
}

// Counts returns a copy of the counters for the table's alphabet.
func (t Table) Counts() []int {
	out := make([]int, t.Symbols())
	copy(out, t.counts[:t.Symbols()])

	return out
}

// Probability returns count/total for symbol. It is NaN for an empty table.
func (t Table) Probability(symbol int) float64 {
	return float64(t.Count(symbol)) / float64(t.total)
}

// Occurrences returns all 256 byte-mode rows, including symbols that never occurred.
// A bit-mode table yields the two bit rows as values 0 and 1 followed by zero rows.
func (t Table) Occurrences() []Occurrence {
	out := make([]Occurrence, 256)
	for i := range out {
		out[i] = Occurrence{
			Value:    byte(i),
			Count:    t.counts[i],
			Fraction: float64(t.counts[i]) / float64(t.total),
		}
	}

	return out
}

// BitOccurrences returns the (count, fraction) rows for bit 0 and bit 1.
// It is only meaningful for a table counted in bit mode.
func (t Table) BitOccurrences() [2]BitOccurrence {
	var out [2]BitOccurrence
	for i := range out {
		out[i] = BitOccurrence{
			Count:    t.counts[i],
			Fraction: float64(t.counts[i]) / float64(t.total),
		}
	}

	return out
}
