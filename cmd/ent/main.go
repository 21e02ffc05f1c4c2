// Command ent measures the randomness of files or standard input.
//
// It reports entropy, the ideal order-0 compression, a chi-square test against
// the uniform distribution, the arithmetic mean, a Monte Carlo estimate of Pi and
// the lag-1 serial correlation, optionally followed by what real compressors
// achieve on the same bytes.
//
// Usage:
//
//	ent [flags] [file ...]
//
// With no file, or when file is -, ent reads standard input.
//
// Flags:
//
//	-b            treat input as a stream of bits
//	-c            print the occurrence count of every symbol
//	-t            terse CSV output, same as -format terse
//	-format name  text, terse, json or yaml (default "text")
//	-z list       comma separated codecs to probe: none, zstd, s2, lz4 or all
//	-v            verbose logging to standard error
//
// Environment:
//
//	ENT_BIT_MODE, ENT_FORMAT, ENT_PROBE and ENT_LOG_LEVEL set the defaults of
//	-b, -format, -z and the log level.
//
// Exit status is 0 on success, 1 when an input cannot be read or a report cannot
// be written, and 2 on invalid usage.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/ent"
	"github.com/arloliu/ent/compress"
	"github.com/arloliu/ent/format"
	"github.com/arloliu/ent/internal/pool"
	"github.com/arloliu/ent/report"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const stdinName = "-"

type options struct {
	bitMode     bool
	occurrences bool
	format      report.Format
	probe       []format.CompressionType
	inputs      []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	opts, err := parseArgs(args, stderr, log)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		log.Error(err)
		return exitUsage
	}

	status := exitOK
	for _, input := range opts.inputs {
		entry := log.WithField("input", displayName(input))
		if err := analyzeInput(input, stdin, stdout, opts, entry); err != nil {
			entry.Error(err)
			status = exitFailure
		}
	}

	return status
}

func parseArgs(args []string, stderr io.Writer, log *logrus.Logger) (options, error) {
	env, err := loadSettings()
	if err != nil {
		return options{}, err
	}

	fs := flag.NewFlagSet("ent", flag.ContinueOnError)
	fs.SetOutput(stderr)

	bitMode := fs.Bool("b", env.BitMode, "treat input as a stream of bits")
	occurrences := fs.Bool("c", false, "print the occurrence count of every symbol")
	terse := fs.Bool("t", false, "terse CSV output, same as -format terse")
	formatName := fs.String("format", env.Format, "output format: text, terse, json or yaml")
	probe := fs.String("z", env.Probe, "comma separated codecs to probe: none, zstd, s2, lz4 or all")
	verbose := fs.Bool("v", false, "verbose logging to standard error")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	level, err := resolveLogLevel(env.LogLevel, *verbose)
	if err != nil {
		return options{}, err
	}
	log.SetLevel(level)

	f, err := resolveFormat(*formatName, *terse)
	if err != nil {
		return options{}, err
	}

	types, err := parseProbe(*probe)
	if err != nil {
		return options{}, err
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		inputs = []string{stdinName}
	}

	return options{
		bitMode:     *bitMode,
		occurrences: *occurrences,
		format:      f,
		probe:       types,
		inputs:      inputs,
	}, nil
}

func analyzeInput(input string, stdin io.Reader, stdout io.Writer, opts options, log *logrus.Entry) error {
	bb := pool.GetInputBuffer()
	defer pool.PutInputBuffer(bb)

	if err := load(bb, input, stdin); err != nil {
		return err
	}
	data := bb.Bytes()

	res, err := ent.AnalyzeWithOptions(data, ent.WithBitMode(opts.bitMode))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"bytes": len(data),
		"mode":  res.Mode,
	}).Debug("analyzed input")

	var probes []compress.CompressionStats
	if len(opts.probe) > 0 {
		probes, err = compress.Probe(data, opts.probe...)
		if err != nil {
			return fmt.Errorf("compression probe failed: %w", err)
		}
		log.WithField("codecs", len(probes)).Debug("probed compression")
	}

	r := report.New(displayName(input), data, res, probes)

	return report.Render(stdout, r, opts.format,
		report.WithOccurrences(opts.occurrences),
		report.WithHeader(len(opts.inputs) > 1),
	)
}

func load(bb *pool.ByteBuffer, input string, stdin io.Reader) error {
	if input == stdinName {
		if _, err := bb.ReadFrom(stdin); err != nil {
			return fmt.Errorf("failed to read standard input: %w", err)
		}

		return nil
	}

	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := bb.ReadFrom(f); err != nil {
		return fmt.Errorf("failed to read %s: %w", input, err)
	}

	return nil
}

func displayName(input string) string {
	if input == stdinName {
		return "stdin"
	}

	return input
}
