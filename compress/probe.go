package compress

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/arloliu/ent/format"
)

// ErrRoundTrip is returned by Probe when a codec fails to reproduce its input.
var ErrRoundTrip = errors.New("decompressed data does not match input")

var defaultProbeTypes = []format.CompressionType{
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// DefaultProbeTypes returns the codecs Probe runs when none are named.
func DefaultProbeTypes() []format.CompressionType {
	return append([]format.CompressionType(nil), defaultProbeTypes...)
}

// Probe compresses data with each requested codec and reports the achieved sizes.
//
// Every codec must decompress its own output back to data; otherwise Probe stops
// and returns an error wrapping ErrRoundTrip. Results keep the order of types.
//
// Parameters:
//   - data: Buffer to probe (not modified)
//   - types: Codecs to run; DefaultProbeTypes() when empty
//
// Returns:
//   - []CompressionStats: One entry per requested codec
//   - error: Unknown compression type, codec failure, or ErrRoundTrip
func Probe(data []byte, types ...format.CompressionType) ([]CompressionStats, error) {
	if len(types) == 0 {
		types = defaultProbeTypes
	}

	stats := make([]CompressionStats, 0, len(types))
	for _, ct := range types {
		codec, err := GetCodec(ct)
		if err != nil {
			return nil, err
		}

		s, err := probeCodec(codec, ct, data)
		if err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, nil
}

func probeCodec(codec Codec, ct format.CompressionType, data []byte) (CompressionStats, error) {
	start := time.Now()
	compressed, err := codec.Compress(data)
	if err != nil {
		return CompressionStats{}, fmt.Errorf("%s compression failed: %w", ct, err)
	}
	compressTime := time.Since(start)

	start = time.Now()
	restored, err := codec.Decompress(compressed)
	if err != nil {
		return CompressionStats{}, fmt.Errorf("%s round trip failed: %w", ct, err)
	}
	decompressTime := time.Since(start)

	if !bytes.Equal(restored, data) {
		return CompressionStats{}, fmt.Errorf("%s: %w", ct, ErrRoundTrip)
	}

	s := CompressionStats{
		Algorithm:           ct,
		OriginalSize:        int64(len(data)),
		CompressedSize:      int64(len(compressed)),
		CompressionTimeNs:   compressTime.Nanoseconds(),
		DecompressionTimeNs: decompressTime.Nanoseconds(),
	}
	s.Ratio = s.CompressionRatio()

	return s, nil
}
