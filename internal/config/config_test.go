package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "semdiff.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
timeout: 250ms
semantic: true
mode: lines
format: unified
context_lines: 5
`)

	cfg := Default()
	require.NoError(t, Load(path, &cfg))

	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.True(t, cfg.Semantic)
	assert.Equal(t, ModeLines, cfg.Mode)
	assert.Equal(t, FormatUnified, cfg.Format)
	assert.Equal(t, 5, cfg.ContextLines)

	// Keys absent from the file keep their defaults.
	assert.True(t, cfg.HalfMatch)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.NoError(t, cfg.Validate())
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("DIFF_FORMAT", "json")
	path := writeConfig(t, "format: ${DIFF_FORMAT}\n")

	cfg := Default()
	require.NoError(t, Load(path, &cfg))

	assert.Equal(t, FormatJSON, cfg.Format)
}

func TestEnvOverride(t *testing.T) {
	path := writeConfig(t, `
timeout: 2s
half_match: true
color: never
`)

	t.Setenv("SEMDIFF_TIMEOUT", "10ms")
	t.Setenv("SEMDIFF_HALF_MATCH", "false")
	t.Setenv("SEMDIFF_COLOR", "always")
	t.Setenv("SEMDIFF_CONTEXT_LINES", "7")

	cfg := Default()
	require.NoError(t, Load(path, &cfg))

	assert.Equal(t, 10*time.Millisecond, cfg.Timeout)
	assert.False(t, cfg.HalfMatch)
	assert.Equal(t, ColorAlways, cfg.Color)
	assert.Equal(t, 7, cfg.ContextLines)
}

func TestEnvOverrideRejectsBadDuration(t *testing.T) {
	t.Setenv("SEMDIFF_TIMEOUT", "soon")

	cfg := Default()
	err := ApplyEnv(&cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEMDIFF_TIMEOUT")
}

func TestEnvOverrideRejectsMalformedValues(t *testing.T) {
	type TestCase struct {
		Name string

		Env   string
		Value string
	}

	for _, tc := range []TestCase{
		{"Word for a bool", "SEMDIFF_EXHAUSTIVE", "yes"},
		{"Misspelled bool", "SEMDIFF_SEMANTIC", "treu"},
		{"Trailing garbage on an int", "SEMDIFF_CONTEXT_LINES", "3x"},
		{"Fractional int", "SEMDIFF_CONTEXT_LINES", "2.5"},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			t.Setenv(tc.Env, tc.Value)

			cfg := Default()
			err := ApplyEnv(&cfg)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.Env)
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestEnvOverrideBoolSpellings(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", "t"} {
		t.Setenv("SEMDIFF_EXHAUSTIVE", v)

		cfg := Default()
		require.NoError(t, ApplyEnv(&cfg), v)
		assert.True(t, cfg.Exhaustive, v)
	}

	t.Setenv("SEMDIFF_HALF_MATCH", "0")
	cfg := Default()
	require.NoError(t, ApplyEnv(&cfg))
	assert.False(t, cfg.HalfMatch)
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg := Default()
	require.NoError(t, LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"), &cfg))

	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	cfg := Default()

	err := Load(filepath.Join(t.TempDir(), "missing.yaml"), &cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = Load(writeConfig(t, "timeout: [1, 2]\n"), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestValidate(t *testing.T) {
	type TestCase struct {
		Name string

		Modify func(*Config)

		Valid bool
	}

	for _, tc := range []TestCase{
		{"Defaults", func(*Config) {}, true},
		{"Lines mode", func(c *Config) { c.Mode = ModeLines }, true},
		{"Unknown mode", func(c *Config) { c.Mode = "words" }, false},
		{"Unknown format", func(c *Config) { c.Format = "xml" }, false},
		{"Unknown color", func(c *Config) { c.Color = "sometimes" }, false},
		{"Negative context", func(c *Config) { c.ContextLines = -1 }, false},
		{"Zero context", func(c *Config) { c.ContextLines = 0 }, false},
		{"One context line", func(c *Config) { c.ContextLines = 1 }, true},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			cfg := Default()
			tc.Modify(&cfg)

			err := cfg.Validate()
			if tc.Valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}
