package compress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ent/format"
)

type corruptingCodec struct{}

func (corruptingCodec) Compress(data []byte) ([]byte, error) {
	return append([]byte(nil), data...), nil
}

func (corruptingCodec) Decompress(data []byte) ([]byte, error) {
	out := append([]byte(nil), data...)
	if len(out) > 0 {
		out[0] ^= 0xFF
	}

	return out, nil
}

type failingCodec struct{}

func (failingCodec) Compress([]byte) ([]byte, error) {
	return nil, errors.New("boom")
}

func (failingCodec) Decompress([]byte) ([]byte, error) {
	return nil, nil
}

func TestProbe_DefaultTypes(t *testing.T) {
	data := make([]byte, 64*1024)

	stats, err := Probe(data)
	require.NoError(t, err)
	require.Len(t, stats, len(DefaultProbeTypes()))

	for i, s := range stats {
		require.Equal(t, DefaultProbeTypes()[i], s.Algorithm)
		require.Equal(t, int64(len(data)), s.OriginalSize)
		require.Positive(t, s.CompressedSize)
		require.InDelta(t, s.CompressionRatio(), s.Ratio, 1e-12)
		require.Greater(t, s.SpaceSavings(), 90.0, "zeros compress well with %s", s.Algorithm)
		require.GreaterOrEqual(t, s.CompressionTimeNs, int64(0))
		require.GreaterOrEqual(t, s.DecompressionTimeNs, int64(0))
	}
}

func TestProbe_KeepsRequestedOrder(t *testing.T) {
	types := []format.CompressionType{format.CompressionLZ4, format.CompressionNone, format.CompressionZstd}

	stats, err := Probe([]byte("order matters, order matters, order matters"), types...)
	require.NoError(t, err)
	require.Len(t, stats, 3)
	for i, ct := range types {
		require.Equal(t, ct, stats[i].Algorithm)
	}

	require.Equal(t, stats[1].OriginalSize, stats[1].CompressedSize)
	require.InDelta(t, 0.0, stats[1].SpaceSavings(), 1e-12)
}

func TestProbe_RandomDataDoesNotCompress(t *testing.T) {
	data := randomData(3, 256*1024)

	stats, err := Probe(data, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4)
	require.NoError(t, err)

	for _, s := range stats {
		require.Less(t, s.SpaceSavings(), 1.0, "%s should not beat random data", s.Algorithm)
	}
}

func TestProbe_Empty(t *testing.T) {
	stats, err := Probe(nil, format.CompressionS2, format.CompressionLZ4)
	require.NoError(t, err)

	for _, s := range stats {
		require.Zero(t, s.OriginalSize)
		require.Zero(t, s.CompressedSize)
		require.InDelta(t, 100.0, s.SpaceSavings(), 1e-12)
	}
}

func TestProbe_UnknownType(t *testing.T) {
	_, err := Probe([]byte{1, 2, 3}, format.CompressionZstd, format.CompressionType(9))
	require.ErrorContains(t, err, "unsupported compression type")
}

func TestProbe_DoesNotModifyInput(t *testing.T) {
	data := randomData(11, 4096)
	snapshot := append([]byte(nil), data...)

	_, err := Probe(data, format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4)
	require.NoError(t, err)
	require.Equal(t, snapshot, data)
}

func TestProbeCodec_Failures(t *testing.T) {
	_, err := probeCodec(corruptingCodec{}, format.CompressionNone, []byte("abc"))
	require.ErrorIs(t, err, ErrRoundTrip)

	_, err = probeCodec(failingCodec{}, format.CompressionZstd, []byte("abc"))
	require.ErrorContains(t, err, "Zstd compression failed: boom")
}

func TestDefaultProbeTypes_ReturnsCopy(t *testing.T) {
	types := DefaultProbeTypes()
	types[0] = format.CompressionNone

	require.Equal(t, format.CompressionZstd, DefaultProbeTypes()[0])
}

func BenchmarkProbe(b *testing.B) {
	data := randomData(42, 1024*1024)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for range b.N {
		if _, err := Probe(data); err != nil {
			b.Fatal(err)
		}
	}
}
