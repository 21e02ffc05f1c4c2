package format

import (
	"fmt"
	"strings"
)

type (
	Mode            uint8
	CompressionType uint8
)

const (
	ModeByte Mode = 0x1 // ModeByte analyzes the buffer as a sequence of 256-valued symbols.
	ModeBit  Mode = 0x2 // ModeBit analyzes every byte as eight 2-valued symbols, LSB first.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// ModeFor maps the classic bit-mode flag onto a Mode.
func ModeFor(bitMode bool) Mode {
	if bitMode {
		return ModeBit
	}

	return ModeByte
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m == ModeByte || m == ModeBit
}

// AlphabetSize returns the number of distinct symbols in the mode: 256 or 2.
func (m Mode) AlphabetSize() int {
	if m == ModeBit {
		return 2
	}

	return 256
}

// DegreesOfFreedom returns the chi-square degrees of freedom, AlphabetSize()-1.
func (m Mode) DegreesOfFreedom() int {
	return m.AlphabetSize() - 1
}

// SymbolsPerByte returns how many symbols a single input byte contributes.
func (m Mode) SymbolsPerByte() int {
	if m == ModeBit {
		return 8
	}

	return 1
}

// MaxEntropy returns log2(AlphabetSize()), the entropy of a perfectly uniform source.
func (m Mode) MaxEntropy() float64 {
	if m == ModeBit {
		return 1
	}

	return 8
}

// Unit returns the name of one symbol, used by reports ("byte" or "bit").
func (m Mode) Unit() string {
	if m == ModeBit {
		return "bit"
	}

	return "byte"
}

func (m Mode) String() string {
	switch m {
	case ModeByte:
		return "Byte"
	case ModeBit:
		return "Bit"
	default:
		return "Unknown"
	}
}

// ParseMode parses a mode name, case-insensitively ("byte" or "bit").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "byte", "bytes":
		return ModeByte, nil
	case "bit", "bits":
		return ModeBit, nil
	default:
		return 0, fmt.Errorf("invalid analysis mode: %q", s)
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType parses a compression algorithm name, case-insensitively.
func ParseCompressionType(s string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "noop":
		return CompressionNone, nil
	case "zstd", "zstandard":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("invalid compression type: %q", s)
	}
}

// ParseCompressionTypes parses a comma separated list of compression algorithm names.
// Empty elements are skipped and duplicates are removed, keeping the first occurrence.
func ParseCompressionTypes(list string) ([]CompressionType, error) {
	var types []CompressionType
	seen := make(map[CompressionType]bool)

	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}

		ct, err := ParseCompressionType(name)
		if err != nil {
			return nil, err
		}

		if seen[ct] {
			continue
		}
		seen[ct] = true
		types = append(types, ct)
	}

	return types, nil
}
