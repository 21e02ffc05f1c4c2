// Package measure implements the individual randomness statistics computed over a byte buffer.
//
// Every function is a pure, sequential reduction: no state survives a call and the
// summation order is fixed, so repeated calls on the same input are bit-identical.
//
// # Statistics
//
//   - Entropy / CompressionPercent: Shannon entropy of a freq.Table and the saving an ideal
//     entropy coder would achieve
//   - ChiSquare / PValue: goodness-of-fit against the uniform distribution, with an
//     upper-tail p-value from a normal approximation
//   - Mean: arithmetic mean of the raw byte values
//   - MonteCarloPi: Pi estimated from 48-bit coordinate pairs
//   - SerialCorrelation: lag-1 Pearson correlation of consecutive bytes
//
// # Degenerate Input
//
// Degenerate input is reported in-band, never as an error:
//
//	| Condition                      | Statistic         | Value               |
//	|--------------------------------|-------------------|---------------------|
//	| empty buffer                   | Mean              | NaN                 |
//	| empty buffer                   | Entropy           | 0                   |
//	| empty buffer                   | ChiSquare         | NaN (expected == 0) |
//	| fewer than 6 bytes             | MonteCarloPi      | 0                   |
//	| fewer than 2 bytes or constant | SerialCorrelation | Undefined (-99999)  |
//	| chi-square below df            | PValue            | NaN                 |
package measure
