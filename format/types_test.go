package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModeProperties(t *testing.T) {
	tests := []struct {
		mode     Mode
		alphabet int
		df       int
		perByte  int
		maxH     float64
		name     string
		unit     string
	}{
		{ModeByte, 256, 255, 1, 8, "Byte", "byte"},
		{ModeBit, 2, 1, 8, 1, "Bit", "bit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.mode.Valid())
			require.Equal(t, tt.alphabet, tt.mode.AlphabetSize())
			require.Equal(t, tt.df, tt.mode.DegreesOfFreedom())
			require.Equal(t, tt.perByte, tt.mode.SymbolsPerByte())
			require.Equal(t, tt.maxH, tt.mode.MaxEntropy())
			require.Equal(t, tt.name, tt.mode.String())
			require.Equal(t, tt.unit, tt.mode.Unit())
		})
	}

	require.False(t, Mode(0).Valid())
	require.Equal(t, "Unknown", Mode(99).String())
}

func TestModeFor(t *testing.T) {
	require.Equal(t, ModeBit, ModeFor(true))
	require.Equal(t, ModeByte, ModeFor(false))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" BIT ")
	require.NoError(t, err)
	require.Equal(t, ModeBit, m)

	m, err = ParseMode("byte")
	require.NoError(t, err)
	require.Equal(t, ModeByte, m)

	_, err = ParseMode("nibble")
	require.Error(t, err)
}

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}

func TestParseCompressionTypes(t *testing.T) {
	types, err := ParseCompressionTypes("zstd, LZ4,,s2,zstd")
	require.NoError(t, err)
	require.Equal(t, []CompressionType{CompressionZstd, CompressionLZ4, CompressionS2}, types)

	types, err = ParseCompressionTypes("")
	require.NoError(t, err)
	require.Empty(t, types)

	_, err = ParseCompressionTypes("zstd,brotli")
	require.ErrorContains(t, err, "brotli")
}
