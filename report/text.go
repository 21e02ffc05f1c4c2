package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/ent"
	"github.com/arloliu/ent/format"
	"github.com/arloliu/ent/internal/pool"
	"github.com/arloliu/ent/measure"
)

const undefinedText = "undefined"

// formatFloat formats v with prec decimals, or "undefined" for NaN.
func formatFloat(v float64, prec int) string {
	if math.IsNaN(v) {
		return undefinedText
	}

	return strconv.FormatFloat(v, 'f', prec, 64)
}

// formatChance phrases a p-value the way the classic report does.
func formatChance(p float64) string {
	switch {
	case math.IsNaN(p):
		return "an undefined percentage"
	case p < 0.0001:
		return "less than 0.01 percent"
	case p > 0.9999:
		return "more than 99.99 percent"
	default:
		return strconv.FormatFloat(p*100, 'f', 2, 64) + " percent"
	}
}

func renderText(bb *pool.ByteBuffer, r Report, cfg RenderConfig) error {
	res := r.Result
	unit := res.Mode.Unit()

	if cfg.Header {
		fmt.Fprintf(bb, "%s: %d bytes, xxh64 %s\n\n", r.Name, r.Size, r.FingerprintHex())
	}

	if cfg.Occurrences {
		writeOccurrenceTable(bb, res)
	}

	fmt.Fprintf(bb, "Entropy = %s bits per %s.\n\n", formatFloat(res.Entropy, 6), unit)

	fmt.Fprintf(bb, "Optimum compression would reduce the size\nof this %d %s file by %d percent.\n\n",
		res.Samples, unit, int(res.CompressionPercent))

	fmt.Fprintf(bb, "Chi square distribution for %d samples is %s, and randomly\nwould exceed this value %s of the times.\n\n",
		res.Samples, formatFloat(res.ChiSquare, 2), formatChance(res.PValue))

	fmt.Fprintf(bb, "Arithmetic mean value of data bytes is %s (127.5 = random).\n", formatFloat(res.Mean, 4))

	fmt.Fprintf(bb, "Monte Carlo value for Pi is %s (error %s percent).\n",
		formatFloat(res.PiEstimate, 9), formatFloat(measure.PiError(res.PiEstimate), 2))

	switch {
	case res.SerialCorrelationDefined():
		fmt.Fprintf(bb, "Serial correlation coefficient is %s (totally uncorrelated = 0.0).\n",
			formatFloat(res.SerialCorrelation, 6))
	case r.Size < 2:
		_, _ = bb.WriteString("Serial correlation coefficient is undefined (fewer than two bytes).\n")
	default:
		_, _ = bb.WriteString("Serial correlation coefficient is undefined (all values equal!).\n")
	}

	if len(r.Compression) > 0 {
		_, _ = bb.WriteString("\n")
		for _, s := range r.Compression {
			verb := "reduced"
			if s.SpaceSavings() < 0 {
				verb = "increased"
			}
			fmt.Fprintf(bb, "%s compression %s the size of this %d byte file by %s percent (%d bytes).\n",
				s.Algorithm, verb, s.OriginalSize, formatFloat(math.Abs(s.SpaceSavings()), 2), s.CompressedSize)
		}
	}

	return nil
}

// writeOccurrenceTable writes the rows of every symbol that occurs at least once.
func writeOccurrenceTable(bb *pool.ByteBuffer, res ent.Result) {
	if res.Mode == format.ModeBit && res.BitFrequencies != nil {
		_, _ = bb.WriteString("Value Occurrences Fraction\n")
		for value, o := range res.BitFrequencies {
			if o.Count == 0 {
				continue
			}
			fmt.Fprintf(bb, "%3d   %10d   %s\n", value, o.Count, formatFloat(o.Fraction, 6))
		}
	} else {
		_, _ = bb.WriteString("Value Char Occurrences Fraction\n")
		for _, o := range res.ByteFrequencies {
			if o.Count == 0 {
				continue
			}
			fmt.Fprintf(bb, "%3d   %c   %10d   %s\n", o.Value, printable(o.Value), o.Count, formatFloat(o.Fraction, 6))
		}
	}

	total := 1.0
	if res.Samples == 0 {
		total = math.NaN()
	}
	fmt.Fprintf(bb, "\nTotal:    %10d   %s\n\n", res.Samples, formatFloat(total, 6))
}

func printable(b byte) rune {
	if b < 0x20 || b >= 0x7F {
		return ' '
	}

	return rune(b)
}
