package hash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint computes the xxHash64 of the given buffer.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Hex formats a fingerprint as 16 lowercase hex digits.
func Hex(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
