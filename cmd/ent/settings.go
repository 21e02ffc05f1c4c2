package main

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/arloliu/ent/compress"
	"github.com/arloliu/ent/format"
	"github.com/arloliu/ent/report"
)

// envPrefix namespaces the environment variables, e.g. ENT_FORMAT.
const envPrefix = "ent"

// settings holds the environment defaults. Command line flags override them.
type settings struct {
	BitMode  bool   `split_words:"true" default:"false" envconfig:"BIT_MODE"`
	Format   string `default:"text" envconfig:"FORMAT"`
	Probe    string `envconfig:"PROBE"`
	LogLevel string `split_words:"true" default:"warning" envconfig:"LOG_LEVEL"`
}

func loadSettings() (settings, error) {
	var s settings
	if err := envconfig.Process(envPrefix, &s); err != nil {
		return settings{}, fmt.Errorf("invalid environment: %w", err)
	}

	return s, nil
}

// parseProbe resolves the -z value. "all" selects every real codec.
func parseProbe(list string) ([]format.CompressionType, error) {
	if strings.EqualFold(strings.TrimSpace(list), "all") {
		return compress.DefaultProbeTypes(), nil
	}

	return format.ParseCompressionTypes(list)
}

// resolveFormat applies the classic -t shorthand on top of the -format value.
func resolveFormat(name string, terse bool) (report.Format, error) {
	if terse {
		return report.FormatTerse, nil
	}

	return report.ParseFormat(name)
}

func resolveLogLevel(name string, verbose bool) (logrus.Level, error) {
	if verbose {
		return logrus.DebugLevel, nil
	}

	level, err := logrus.ParseLevel(name)
	if err != nil {
		return 0, fmt.Errorf("invalid log level: %w", err)
	}

	return level, nil
}
