// Package config provides YAML configuration loading with environment variable override.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up in the working directory
// when no --config flag is given.
const DefaultPath = ".semdiff.yaml"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Output formats.
const (
	FormatText    = "text"
	FormatHTML    = "html"
	FormatUnified = "unified"
	FormatJSON    = "json"
)

// Diff granularities.
const (
	ModeChars = "chars"
	ModeLines = "lines"
)

// Color policies.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings of the semdiff tool.
type Config struct {
	// Time budget of one diff. Ignored when Exhaustive is set.
	Timeout time.Duration `yaml:"timeout" env:"SEMDIFF_TIMEOUT"`
	// Search for an optimal script without a deadline.
	Exhaustive bool `yaml:"exhaustive" env:"SEMDIFF_EXHAUSTIVE"`
	HalfMatch  bool `yaml:"half_match" env:"SEMDIFF_HALF_MATCH"`
	// Apply the semantic cleanup to the raw script.
	Semantic     bool   `yaml:"semantic" env:"SEMDIFF_SEMANTIC"`
	Mode         string `yaml:"mode" env:"SEMDIFF_MODE"`
	Format       string `yaml:"format" env:"SEMDIFF_FORMAT"`
	ContextLines int    `yaml:"context_lines" env:"SEMDIFF_CONTEXT_LINES"`
	Color        string `yaml:"color" env:"SEMDIFF_COLOR"`
	// NFC-normalize both inputs before diffing.
	Normalize bool `yaml:"normalize" env:"SEMDIFF_NORMALIZE"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Timeout:      time.Second,
		HalfMatch:    true,
		Mode:         ModeChars,
		Format:       FormatText,
		ContextLines: 3,
		Color:        ColorAuto,
	}
}

// Validate reports the first setting that is out of range.
func (c Config) Validate() error {
	if !oneOf(c.Mode, ModeChars, ModeLines) {
		return fmt.Errorf("%w: mode %q (want %s or %s)", ErrInvalid, c.Mode, ModeChars, ModeLines)
	}
	if !oneOf(c.Format, FormatText, FormatHTML, FormatUnified, FormatJSON) {
		return fmt.Errorf("%w: format %q", ErrInvalid, c.Format)
	}
	if !oneOf(c.Color, ColorAuto, ColorAlways, ColorNever) {
		return fmt.Errorf("%w: color %q", ErrInvalid, c.Color)
	}
	if c.ContextLines < 1 {
		return fmt.Errorf("%w: context_lines %d is not positive", ErrInvalid, c.ContextLines)
	}
	return nil
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// Load reads a YAML configuration file into the given struct.
// It also applies environment variable overrides using struct tags.
// Keys absent from the file keep the values already in out.
func Load(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	// Expand environment variables in the YAML
	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), out); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	return ApplyEnv(out)
}

// LoadOrDefault tries to load config from path. A missing file leaves out
// untouched apart from environment overrides.
func LoadOrDefault(path string, out any) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return ApplyEnv(out)
	}
	return Load(path, out)
}

var durationType = reflect.TypeOf(time.Duration(0))

// ApplyEnv sets struct fields from environment variables.
// It uses the `env` struct tag to determine the env var name.
func ApplyEnv(v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}

	t := val.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := val.Field(i)

		envTag := field.Tag.Get("env")
		if envTag == "" || !fieldVal.CanSet() {
			continue
		}
		envVal, ok := os.LookupEnv(envTag)
		if !ok {
			continue
		}

		switch {
		case fieldVal.Type() == durationType:
			d, err := time.ParseDuration(envVal)
			if err != nil {
				return fmt.Errorf("%s: %w", envTag, err)
			}
			fieldVal.SetInt(int64(d))
		case fieldVal.Kind() == reflect.String:
			fieldVal.SetString(envVal)
		case fieldVal.Kind() == reflect.Int, fieldVal.Kind() == reflect.Int64:
			n, err := cast.ToInt64E(envVal)
			if err != nil {
				return fmt.Errorf("%s: %w", envTag, err)
			}
			fieldVal.SetInt(n)
		case fieldVal.Kind() == reflect.Bool:
			b, err := cast.ToBoolE(envVal)
			if err != nil {
				return fmt.Errorf("%s: %w", envTag, err)
			}
			fieldVal.SetBool(b)
		}
	}
	return nil
}
