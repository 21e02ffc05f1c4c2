package ent

import (
	"fmt"

	"github.com/arloliu/ent/format"
	"github.com/arloliu/ent/internal/options"
)

// AnalyzeConfig holds the settings of one analysis.
type AnalyzeConfig struct {
	Mode format.Mode
}

// defaultAnalyzeConfig returns the default config (byte mode).
func defaultAnalyzeConfig() AnalyzeConfig {
	return AnalyzeConfig{
		Mode: format.ModeByte,
	}
}

// AnalyzeOption is a functional option for AnalyzeConfig.
type AnalyzeOption = options.Option[*AnalyzeConfig]

// WithMode sets the analysis mode. It fails for modes other than format.ModeByte and
// format.ModeBit.
func WithMode(mode format.Mode) AnalyzeOption {
	return options.New(func(cfg *AnalyzeConfig) error {
		if !mode.Valid() {
			return fmt.Errorf("invalid analysis mode: %s", mode)
		}
		cfg.Mode = mode

		return nil
	})
}

// WithBitMode selects bit mode when enabled is true and byte mode otherwise.
func WithBitMode(enabled bool) AnalyzeOption {
	return options.NoError(func(cfg *AnalyzeConfig) {
		cfg.Mode = format.ModeFor(enabled)
	})
}
