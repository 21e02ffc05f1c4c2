package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type cliResult struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)

	return cliResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func cycle(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}

	return data
}

func TestRun_TextFromFile(t *testing.T) {
	path := writeFile(t, "cycle.bin", cycle(4096))

	res := runCLI(t, "", path)

	require.Equal(t, exitOK, res.code, res.stderr)
	assert.True(t, strings.HasPrefix(res.stdout, "Entropy = 8.000000 bits per byte.\n"))
	assert.Contains(t, res.stdout, "of this 4096 byte file by 0 percent.")
	assert.Empty(t, res.stderr)
}

func TestRun_Stdin(t *testing.T) {
	res := runCLI(t, "hello, entropy", "-t")

	require.Equal(t, exitOK, res.code, res.stderr)
	assert.True(t, strings.HasPrefix(res.stdout, "0,File-bytes,Entropy,"))
	assert.Contains(t, res.stdout, "\n1,14,")

	res = runCLI(t, "hello, entropy", "-t", "-")
	require.Equal(t, exitOK, res.code)
	assert.Contains(t, res.stdout, "\n1,14,")
}

func TestRun_BitModeAndOccurrences(t *testing.T) {
	res := runCLI(t, "\x0f", "-b", "-c")

	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Value Occurrences Fraction\n")
	assert.Contains(t, res.stdout, "Entropy = 1.000000 bits per bit.")
}

func TestRun_JSONWithProbe(t *testing.T) {
	res := runCLI(t, strings.Repeat("abcdefgh", 512), "-format", "json", "-z", "zstd,lz4")

	require.Equal(t, exitOK, res.code, res.stderr)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &doc))
	require.Equal(t, "stdin", doc["input"])
	require.Equal(t, 4096.0, doc["size"])

	compression, ok := doc["compression"].([]any)
	require.True(t, ok)
	require.Len(t, compression, 2)
}

func TestRun_ProbeAll(t *testing.T) {
	res := runCLI(t, strings.Repeat("x", 1000), "-z", "all")

	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Zstd compression reduced")
	assert.Contains(t, res.stdout, "S2 compression reduced")
	assert.Contains(t, res.stdout, "LZ4 compression reduced")
}

func TestRun_MultipleInputsGetHeaders(t *testing.T) {
	a := writeFile(t, "a.bin", []byte("aaaa"))
	b := writeFile(t, "b.bin", cycle(256))

	res := runCLI(t, "", a, b)

	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, a+": 4 bytes, xxh64 ")
	assert.Contains(t, res.stdout, b+": 256 bytes, xxh64 ")
	assert.Equal(t, 2, strings.Count(res.stdout, "Entropy = "))
}

func TestRun_MissingInputContinues(t *testing.T) {
	good := writeFile(t, "good.bin", cycle(64))
	missing := filepath.Join(t.TempDir(), "missing.bin")

	res := runCLI(t, "", missing, good)

	require.Equal(t, exitFailure, res.code)
	assert.Contains(t, res.stderr, "missing.bin")
	assert.Contains(t, res.stdout, good+": 64 bytes")
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-q"}},
		{"bad format", []string{"-format", "xml"}},
		{"bad codec", []string{"-z", "brotli"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, "data", tt.args...)
			require.Equal(t, exitUsage, res.code)
			require.Empty(t, res.stdout)
			require.NotEmpty(t, res.stderr)
		})
	}
}

func TestRun_Help(t *testing.T) {
	res := runCLI(t, "", "-h")

	require.Equal(t, exitOK, res.code)
	assert.Contains(t, res.stderr, "-format")
	assert.Empty(t, res.stdout)
}

func TestRun_Verbose(t *testing.T) {
	res := runCLI(t, "abc", "-v")

	require.Equal(t, exitOK, res.code)
	assert.Contains(t, res.stderr, "analyzed input")
	assert.Contains(t, res.stderr, "input=stdin")
	assert.Contains(t, res.stderr, "bytes=3")
}

// ==============================================================================
// Environment
// ==============================================================================

func TestRun_EnvironmentDefaults(t *testing.T) {
	t.Setenv("ENT_FORMAT", "yaml")
	t.Setenv("ENT_BIT_MODE", "true")
	t.Setenv("ENT_PROBE", "s2")

	res := runCLI(t, "\xff\x00")

	require.Equal(t, exitOK, res.code, res.stderr)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &doc))
	require.Equal(t, "bit", doc["mode"])
	require.Equal(t, 16, doc["samples"])
	require.Len(t, doc["compression"], 1)
}

func TestRun_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("ENT_FORMAT", "json")

	res := runCLI(t, "abc", "-format", "text")
	require.Equal(t, exitOK, res.code)
	assert.True(t, strings.HasPrefix(res.stdout, "Entropy = "))

	res = runCLI(t, "abc", "-t")
	require.Equal(t, exitOK, res.code)
	assert.True(t, strings.HasPrefix(res.stdout, "0,File-bytes"))
}

func TestRun_InvalidEnvironment(t *testing.T) {
	t.Setenv("ENT_BIT_MODE", "maybe")

	res := runCLI(t, "abc")
	require.Equal(t, exitUsage, res.code)
	assert.Contains(t, res.stderr, "invalid environment")
}

func TestRun_InvalidLogLevel(t *testing.T) {
	t.Setenv("ENT_LOG_LEVEL", "chatty")

	res := runCLI(t, "abc")
	require.Equal(t, exitUsage, res.code)
	assert.Contains(t, res.stderr, "invalid log level")

	res = runCLI(t, "abc", "-v")
	require.Equal(t, exitOK, res.code, "-v overrides the environment level")
}

func TestParseProbe(t *testing.T) {
	types, err := parseProbe("")
	require.NoError(t, err)
	require.Empty(t, types)

	types, err = parseProbe(" ALL ")
	require.NoError(t, err)
	require.Len(t, types, 3)
}
