package report

import (
	"fmt"
	"io"

	"github.com/arloliu/ent"
	"github.com/arloliu/ent/compress"
	"github.com/arloliu/ent/internal/hash"
	"github.com/arloliu/ent/internal/options"
	"github.com/arloliu/ent/internal/pool"
)

// Report is everything known about one analyzed input.
type Report struct {
	// Name identifies the input, a file path or "stdin"
	Name string

	// Size is the input length in bytes
	Size int

	// Fingerprint is the xxHash64 of the input
	Fingerprint uint64

	// Result holds the randomness statistics
	Result ent.Result

	// Compression holds the compression probe results, empty when no probe ran
	Compression []compress.CompressionStats
}

// New assembles a Report for data.
//
// Parameters:
//   - name: Input name shown in the report
//   - data: The analyzed buffer, used for its size and fingerprint
//   - res: Analysis result of data
//   - probes: Compression probe results of data, may be nil
//
// Returns:
//   - Report: The assembled report
func New(name string, data []byte, res ent.Result, probes []compress.CompressionStats) Report {
	return Report{
		Name:        name,
		Size:        len(data),
		Fingerprint: hash.Fingerprint(data),
		Result:      res,
		Compression: probes,
	}
}

// FingerprintHex returns the fingerprint as 16 lowercase hex digits.
func (r Report) FingerprintHex() string {
	return hash.Hex(r.Fingerprint)
}

// RenderConfig holds the renderer settings.
type RenderConfig struct {
	// Occurrences adds the per-symbol frequency table to the output
	Occurrences bool

	// Header prefixes text output with the input name, size and fingerprint
	Header bool
}

// RenderOption configures Render.
type RenderOption = options.Option[*RenderConfig]

// WithOccurrences enables or disables the frequency table.
func WithOccurrences(enabled bool) RenderOption {
	return options.NoError(func(cfg *RenderConfig) {
		cfg.Occurrences = enabled
	})
}

// WithHeader enables or disables the per-input header line of the text format.
func WithHeader(enabled bool) RenderOption {
	return options.NoError(func(cfg *RenderConfig) {
		cfg.Header = enabled
	})
}

type renderFunc func(bb *pool.ByteBuffer, r Report, cfg RenderConfig) error

var renderers = map[Format]renderFunc{
	FormatText:  renderText,
	FormatTerse: renderTerse,
	FormatJSON:  renderJSON,
	FormatYAML:  renderYAML,
}

// Render writes r to w in the given format.
//
// The report is rendered into a pooled buffer first and written with a single
// Write call, so w never receives a partial report from a failed render.
//
// Parameters:
//   - w: Destination
//   - r: Report to render
//   - f: Output format
//   - opts: Renderer options
//
// Returns:
//   - error: Unknown format, encoding error or write error
func Render(w io.Writer, r Report, f Format, opts ...RenderOption) error {
	render, ok := renderers[f]
	if !ok {
		return fmt.Errorf("unsupported report format: %s", f)
	}

	var cfg RenderConfig
	if err := options.Apply(&cfg, opts...); err != nil {
		return err
	}

	bb := pool.GetReportBuffer()
	defer pool.PutReportBuffer(bb)

	if err := render(bb, r, cfg); err != nil {
		return fmt.Errorf("failed to render %s report: %w", f, err)
	}

	if _, err := bb.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s report: %w", f, err)
	}

	return nil
}
