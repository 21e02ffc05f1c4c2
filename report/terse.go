package report

import (
	"encoding/csv"
	"strconv"

	"github.com/arloliu/ent/format"
	"github.com/arloliu/ent/internal/pool"
)

// renderTerse writes the classic CSV layout. The first column tags the row kind:
// 0/1 header and statistics, 2/3 frequency table, 4/5 compression probe.
func renderTerse(bb *pool.ByteBuffer, r Report, cfg RenderConfig) error {
	res := r.Result
	w := csv.NewWriter(bb)

	samplesLabel := "File-bytes"
	if res.Mode == format.ModeBit {
		samplesLabel = "File-bits"
	}

	rows := [][]string{
		{"0", samplesLabel, "Entropy", "Chi-square", "Mean", "Monte-Carlo-Pi", "Serial-Correlation"},
		{
			"1",
			strconv.Itoa(res.Samples),
			formatFloat(res.Entropy, 6),
			formatFloat(res.ChiSquare, 6),
			formatFloat(res.Mean, 6),
			formatFloat(res.PiEstimate, 6),
			formatCorrelation(res.SerialCorrelation, res.SerialCorrelationDefined()),
		},
	}

	if cfg.Occurrences {
		rows = append(rows, []string{"2", "Value", "Occurrences", "Fraction"})
		if res.Mode == format.ModeBit && res.BitFrequencies != nil {
			for value, o := range res.BitFrequencies {
				if o.Count > 0 {
					rows = append(rows, []string{"3", strconv.Itoa(value), strconv.Itoa(o.Count), formatFloat(o.Fraction, 6)})
				}
			}
		} else {
			for _, o := range res.ByteFrequencies {
				if o.Count > 0 {
					rows = append(rows, []string{"3", strconv.Itoa(int(o.Value)), strconv.Itoa(o.Count), formatFloat(o.Fraction, 6)})
				}
			}
		}
	}

	if len(r.Compression) > 0 {
		rows = append(rows, []string{"4", "Algorithm", "Compressed-bytes", "Space-savings"})
		for _, s := range r.Compression {
			rows = append(rows, []string{
				"5",
				s.Algorithm.String(),
				strconv.FormatInt(s.CompressedSize, 10),
				formatFloat(s.SpaceSavings(), 6),
			})
		}
	}

	return w.WriteAll(rows)
}

func formatCorrelation(v float64, defined bool) string {
	if !defined {
		return undefinedText
	}

	return formatFloat(v, 6)
}
