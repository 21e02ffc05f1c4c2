package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type probeConfig struct {
	Window   int
	Name     string
	Verbose  bool
	LastCall string
}

func withWindow(n int) Option[*probeConfig] {
	return New(func(c *probeConfig) error {
		if n <= 0 {
			return errors.New("window must be positive")
		}
		c.Window = n
		c.LastCall = "window"

		return nil
	})
}

func withName(name string) Option[*probeConfig] {
	return NoError(func(c *probeConfig) {
		c.Name = name
		c.LastCall = "name"
	})
}

func withVerbose() Option[*probeConfig] {
	return NoError(func(c *probeConfig) {
		c.Verbose = true
		c.LastCall = "verbose"
	})
}

func TestOption_New(t *testing.T) {
	cfg := &probeConfig{}

	t.Run("applies accepted value", func(t *testing.T) {
		require.NoError(t, withWindow(42).apply(cfg))
		require.Equal(t, 42, cfg.Window)
		require.Equal(t, "window", cfg.LastCall)
	})

	t.Run("propagates rejection", func(t *testing.T) {
		err := withWindow(-1).apply(cfg)
		require.EqualError(t, err, "window must be positive")
		require.Equal(t, 42, cfg.Window)
	})
}

func TestOption_NoError(t *testing.T) {
	cfg := &probeConfig{}

	require.NoError(t, withName("stdin").apply(cfg))
	require.Equal(t, "stdin", cfg.Name)

	require.NoError(t, withVerbose().apply(cfg))
	require.True(t, cfg.Verbose)
	require.Equal(t, "verbose", cfg.LastCall)
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &probeConfig{}

		err := Apply(cfg, withWindow(10), withName("a"), withName("b"), withVerbose())
		require.NoError(t, err)
		require.Equal(t, 10, cfg.Window)
		require.Equal(t, "b", cfg.Name, "later options win")
		require.Equal(t, "verbose", cfg.LastCall)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &probeConfig{}

		err := Apply(cfg, withWindow(5), withWindow(0), withName("never"))
		require.Error(t, err)
		require.Equal(t, 5, cfg.Window)
		require.Empty(t, cfg.Name)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &probeConfig{}

		var verbose Option[*probeConfig]
		err := Apply(cfg, nil, withName("x"), verbose)
		require.NoError(t, err)
		require.Equal(t, "x", cfg.Name)
		require.False(t, cfg.Verbose)
	})

	t.Run("empty option list", func(t *testing.T) {
		cfg := &probeConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, probeConfig{}, *cfg)
	})
}
