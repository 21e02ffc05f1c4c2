package compress

// ZstdCompressor provides Zstandard compression.
//
// It gives the highest ratio of the built-in codecs and is the closest practical
// approximation of the ideal compression figure on structured input.
//
// The default build uses klauspost/compress/zstd with pooled encoders and decoders.
// Building with the gozstd tag and cgo enabled switches to valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// zstdLevel is the compression level for the cgo codec, the libzstd default.
const zstdLevel = 3

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
