package measure

import "math"

const (
	piChunkSize = 6
	piRadiusSq  = uint64(1) << 48
)

// MonteCarloPi estimates Pi from the buffer.
//
// The buffer is split into consecutive 6-byte chunks; trailing bytes that do not fill a
// chunk are ignored. Bytes 0-2 and 3-5 of a chunk form big-endian 24-bit coordinates x
// and y, and the chunk is a hit when the point falls inside the quarter circle of radius
// 2^24. The estimate is 4*hits/chunks, or 0 when the buffer holds no complete chunk.
func MonteCarloPi(data []byte) float64 {
	var hits, chunks int

	for i := 0; i+piChunkSize <= len(data); i += piChunkSize {
		x := uint64(data[i])<<16 | uint64(data[i+1])<<8 | uint64(data[i+2])
		y := uint64(data[i+3])<<16 | uint64(data[i+4])<<8 | uint64(data[i+5])
		if x*x+y*y < piRadiusSq {
			hits++
		}
		chunks++
	}

	if chunks == 0 {
		return 0.0
	}

	return 4.0 * float64(hits) / float64(chunks)
}

// PiError returns the relative error of estimate against math.Pi, in percent.
func PiError(estimate float64) float64 {
	return 100.0 * math.Abs(math.Pi-estimate) / math.Pi
}
