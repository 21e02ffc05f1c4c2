// Package ent computes statistical randomness measures over an in-memory byte buffer.
//
// It is the numeric core of a randomness analyzer in the tradition of the classic `ent`
// tool: given a buffer and an analysis mode it reports Shannon entropy, the ideal
// compression an entropy coder could reach, a chi-square test against the uniform
// distribution with its p-value, the arithmetic mean, a Monte-Carlo estimate of Pi, the
// lag-1 serial correlation coefficient and the full frequency table.
//
// # Basic Usage
//
//	data, _ := os.ReadFile("random.bin")
//
//	res := ent.Analyze(data, false) // byte mode
//	fmt.Printf("entropy=%.6f bits/byte chi2=%.2f p=%.4f\n", res.Entropy, res.ChiSquare, res.PValue)
//
//	bits := ent.Analyze(data, true) // bit mode
//	fmt.Printf("ones=%.4f\n", bits.BitFrequencies[1].Fraction)
//
// With functional options:
//
//	res, err := ent.AnalyzeWithOptions(data, ent.WithMode(format.ModeBit))
//
// # Modes
//
// In byte mode (format.ModeByte) every byte is one of 256 symbols. In bit mode
// (format.ModeBit) every byte contributes its eight bits, least significant first, as
// symbols of a 2-letter alphabet. The mean, Pi estimate and serial correlation always
// work on raw byte values, whatever the mode.
//
// # Degenerate Input
//
// Analysis never fails. Statistics that cannot be computed are reported in-band: the mean
// of an empty buffer is NaN, the Pi estimate of a buffer shorter than 6 bytes is 0, the
// serial correlation of a constant or single-byte buffer is measure.Undefined, and the
// p-value is NaN when the chi-square statistic falls below the degrees of freedom.
//
// # Concurrency
//
// Analyze keeps no state between calls; different buffers can be analyzed from different
// goroutines without synchronization.
//
// # Package Structure
//
// This package is a thin aggregator. The individual statistics live in the measure
// package and the frequency counter in the freq package; use them directly to compute a
// single statistic.
package ent

import (
	"github.com/arloliu/ent/format"
	"github.com/arloliu/ent/freq"
	"github.com/arloliu/ent/internal/options"
	"github.com/arloliu/ent/measure"
)

// Result holds every statistic computed for one buffer.
//
// A Result owns all of its memory; slices are freshly allocated for every analysis and are
// never shared between calls.
type Result struct {
	// Mode is the analysis mode the symbol statistics were computed in.
	Mode format.Mode

	// Samples is the number of symbols processed: len(data) in byte mode, 8*len(data) in bit mode.
	Samples int

	// Entropy is the Shannon entropy in bits per symbol, in [0, log2(alphabet)].
	Entropy float64

	// CompressionPercent is the saving an ideal entropy coder would achieve.
	CompressionPercent float64

	// ChiSquare is the goodness-of-fit statistic against the uniform distribution.
	ChiSquare float64

	// PValue is the upper-tail probability of ChiSquare; NaN when ChiSquare is below the
	// degrees of freedom.
	PValue float64

	// Mean is the arithmetic mean of the raw byte values; NaN for an empty buffer.
	Mean float64

	// PiEstimate is the Monte-Carlo estimate of Pi; 0 when fewer than 6 bytes were given.
	PiEstimate float64

	// SerialCorrelation is the lag-1 correlation of consecutive bytes, or measure.Undefined.
	SerialCorrelation float64

	// ByteFrequencies lists all 256 byte values; nil in bit mode.
	ByteFrequencies []freq.Occurrence

	// BitFrequencies holds the rows for bit 0 and bit 1; nil in byte mode.
	BitFrequencies *[2]freq.BitOccurrence
}

// SerialCorrelationDefined reports whether SerialCorrelation holds a real coefficient
// rather than the measure.Undefined sentinel.
func (r Result) SerialCorrelationDefined() bool {
	return !measure.IsUndefined(r.SerialCorrelation)
}

// Analyze computes all statistics for data.
//
// Parameters:
//   - data: Input buffer; it is only read. May be empty.
//   - bitMode: Analyze symbols as bits (true) or bytes (false)
//
// Returns:
//   - Result: The complete statistics record
func Analyze(data []byte, bitMode bool) Result {
	return AnalyzeMode(data, format.ModeFor(bitMode))
}

// AnalyzeMode computes all statistics for data in the given mode.
// An invalid mode is treated as format.ModeByte.
func AnalyzeMode(data []byte, mode format.Mode) Result {
	if !mode.Valid() {
		mode = format.ModeByte
	}

	// one table feeds both the entropy estimator and the chi-square test
	table := freq.Count(data, mode)

	entropy := measure.Entropy(table)
	chisq, pValue := measure.ChiSquare(table)

	res := Result{
		Mode:               mode,
		Samples:            table.Total(),
		Entropy:            entropy,
		CompressionPercent: measure.CompressionPercent(entropy, mode),
		ChiSquare:          chisq,
		PValue:             pValue,
		Mean:               measure.Mean(data),
		PiEstimate:         measure.MonteCarloPi(data),
		SerialCorrelation:  measure.SerialCorrelation(data),
	}

	if mode == format.ModeBit {
		bitFreq := table.BitOccurrences()
		res.BitFrequencies = &bitFreq
	} else {
		res.ByteFrequencies = table.Occurrences()
	}

	return res
}

// AnalyzeWithOptions computes all statistics for data, configured by options.
//
// Available options:
//   - WithMode(format.ModeByte|format.ModeBit)
//   - WithBitMode(true|false)
//
// Returns an error only when an option is invalid.
//
// Example:
//
//	res, err := ent.AnalyzeWithOptions(data, ent.WithMode(format.ModeBit))
//	if err != nil {
//	    return err
//	}
func AnalyzeWithOptions(data []byte, opts ...AnalyzeOption) (Result, error) {
	cfg := defaultAnalyzeConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Result{}, err
	}

	return AnalyzeMode(data, cfg.Mode), nil
}
