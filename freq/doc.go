// Package freq tabulates symbol occurrences over a byte buffer.
//
// A Table is a fixed-size value: 256 counters in byte mode, of which only the first two are
// used in bit mode. Counting never allocates and never fails; an empty buffer produces a
// table whose counts and total are all zero, and consumers that divide by Total() must
// handle that case themselves.
//
// In bit mode every byte contributes eight symbols, bit 0 (least significant) through
// bit 7 (most significant), so Total() is 8*len(data).
package freq
