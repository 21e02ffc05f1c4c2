package report

import (
	"encoding/json"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/ent/internal/pool"
	"github.com/arloliu/ent/measure"
)

// document is the serialized form of a Report. Undefined statistics are nil
// pointers so they encode as null rather than failing on NaN.
type document struct {
	Input              string           `json:"input" yaml:"input"`
	Size               int              `json:"size" yaml:"size"`
	XXH64              string           `json:"xxh64" yaml:"xxh64"`
	Mode               string           `json:"mode" yaml:"mode"`
	Samples            int              `json:"samples" yaml:"samples"`
	Entropy            *float64         `json:"entropy" yaml:"entropy"`
	CompressionPercent *float64         `json:"compression_percent" yaml:"compression_percent"`
	ChiSquare          *float64         `json:"chi_square" yaml:"chi_square"`
	PValue             *float64         `json:"p_value" yaml:"p_value"`
	Mean               *float64         `json:"mean" yaml:"mean"`
	PiEstimate         *float64         `json:"pi_estimate" yaml:"pi_estimate"`
	PiErrorPercent     *float64         `json:"pi_error_percent" yaml:"pi_error_percent"`
	SerialCorrelation  *float64         `json:"serial_correlation" yaml:"serial_correlation"`
	Frequencies        []occurrenceDoc  `json:"frequencies,omitempty" yaml:"frequencies,omitempty"`
	Compression        []compressionDoc `json:"compression,omitempty" yaml:"compression,omitempty"`
}

type occurrenceDoc struct {
	Value    int      `json:"value" yaml:"value"`
	Count    int      `json:"count" yaml:"count"`
	Fraction *float64 `json:"fraction" yaml:"fraction"`
}

type compressionDoc struct {
	Algorithm        string   `json:"algorithm" yaml:"algorithm"`
	OriginalSize     int64    `json:"original_size" yaml:"original_size"`
	CompressedSize   int64    `json:"compressed_size" yaml:"compressed_size"`
	Ratio            *float64 `json:"ratio" yaml:"ratio"`
	SpaceSavings     *float64 `json:"space_savings" yaml:"space_savings"`
	CompressTimeNs   int64    `json:"compress_time_ns" yaml:"compress_time_ns"`
	DecompressTimeNs int64    `json:"decompress_time_ns" yaml:"decompress_time_ns"`
}

// defined returns nil for NaN and infinities, otherwise a pointer to v.
func defined(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}

func newDocument(r Report, cfg RenderConfig) document {
	res := r.Result

	doc := document{
		Input:              r.Name,
		Size:               r.Size,
		XXH64:              r.FingerprintHex(),
		Mode:               res.Mode.Unit(),
		Samples:            res.Samples,
		Entropy:            defined(res.Entropy),
		CompressionPercent: defined(res.CompressionPercent),
		ChiSquare:          defined(res.ChiSquare),
		PValue:             defined(res.PValue),
		Mean:               defined(res.Mean),
		PiEstimate:         defined(res.PiEstimate),
		PiErrorPercent:     defined(measure.PiError(res.PiEstimate)),
	}

	if res.SerialCorrelationDefined() {
		doc.SerialCorrelation = defined(res.SerialCorrelation)
	}

	if cfg.Occurrences {
		if res.BitFrequencies != nil {
			for value, o := range res.BitFrequencies {
				doc.Frequencies = append(doc.Frequencies, occurrenceDoc{Value: value, Count: o.Count, Fraction: defined(o.Fraction)})
			}
		}
		for _, o := range res.ByteFrequencies {
			doc.Frequencies = append(doc.Frequencies, occurrenceDoc{Value: int(o.Value), Count: o.Count, Fraction: defined(o.Fraction)})
		}
	}

	for _, s := range r.Compression {
		doc.Compression = append(doc.Compression, compressionDoc{
			Algorithm:        s.Algorithm.String(),
			OriginalSize:     s.OriginalSize,
			CompressedSize:   s.CompressedSize,
			Ratio:            defined(s.CompressionRatio()),
			SpaceSavings:     defined(s.SpaceSavings()),
			CompressTimeNs:   s.CompressionTimeNs,
			DecompressTimeNs: s.DecompressionTimeNs,
		})
	}

	return doc
}

func renderJSON(bb *pool.ByteBuffer, r Report, cfg RenderConfig) error {
	enc := json.NewEncoder(bb)
	enc.SetIndent("", "  ")

	return enc.Encode(newDocument(r, cfg))
}

func renderYAML(bb *pool.ByteBuffer, r Report, cfg RenderConfig) error {
	enc := yaml.NewEncoder(bb)
	enc.SetIndent(2)

	if err := enc.Encode(newDocument(r, cfg)); err != nil {
		return err
	}

	return enc.Close()
}
