// Package compress runs real general-purpose compressors over an analyzed buffer.
//
// The entropy estimator reports an ideal compression percentage derived from the
// order-0 symbol distribution. Real compressors also exploit repetition and context,
// so on structured input they can beat that figure, and on random input they add a
// few bytes of framing. Probing a buffer with several codecs shows both effects.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): returns the input unchanged, a baseline row
//   - Zstd (format.CompressionZstd): best ratio; pure Go by default, cgo libzstd
//     when built with the gozstd tag
//   - S2 (format.CompressionS2): Snappy-compatible block format, fast
//   - LZ4 (format.CompressionLZ4): LZ4 block format, fastest decompression
//
// # Probing
//
//	stats, err := compress.Probe(data, format.CompressionZstd, format.CompressionLZ4)
//	if err != nil {
//	    return err
//	}
//	for _, s := range stats {
//	    fmt.Printf("%s: %.2f%% saved\n", s.Algorithm, s.SpaceSavings())
//	}
//
// Every probed codec must round-trip the buffer exactly; a mismatch is reported as
// ErrRoundTrip.
//
// # Thread Safety
//
// All codec implementations are stateless values backed by sync.Pool'd encoders and
// can be shared across goroutines.
package compress
